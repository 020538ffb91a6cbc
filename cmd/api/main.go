// Package main is the entry point for the Finance App API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/finance-app/backend/config"
	"github.com/finance-app/backend/internal/infra/db"
	"github.com/finance-app/backend/internal/infra/dependency"
	"github.com/finance-app/backend/internal/integration/persistence"
	"github.com/finance-app/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting Finance App API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.CategoryModel{},
		&model.EntryModel{},
		&model.WalletModel{},
		&model.CreditCardModel{},
		&model.BudgetModel{},
		&model.RecurringTemplateModel{},
		&model.InvoiceModel{},
		&model.GoalModel{},
		&model.GoalMemberModel{},
		&model.NotificationModel{},
		&model.IntegrationLogModel{},
		&model.PlanModel{},
		&model.FeatureModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Seed reference data
	if err := persistence.SeedSystemCategories(database.DB()); err != nil {
		slog.Error("Failed to seed system categories", "error", err)
		os.Exit(1)
	}
	if err := persistence.SeedPlans(database.DB()); err != nil {
		slog.Error("Failed to seed plans", "error", err)
		os.Exit(1)
	}

	if cfg.Scheduler.Secret == "" {
		slog.Warn("SCHEDULER_SECRET not set, scheduler endpoints will reject all requests")
	}

	// Wire dependencies
	injector, err := dependency.NewInjector(cfg, database.DB())
	if err != nil {
		slog.Error("Failed to wire dependencies", "error", err)
		os.Exit(1)
	}
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
