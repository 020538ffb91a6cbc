package recurring

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	"github.com/finance-app/backend/internal/integration/persistence"
	"github.com/finance-app/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get underlying connection: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.RecurringTemplateModel{},
		&model.CategoryModel{},
		&model.EntryModel{},
		&model.IntegrationLogModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newUseCase(db *gorm.DB) (*ProcessTemplatesUseCase, adapter.RecurringRepository, adapter.EntryRepository, adapter.IntegrationLogRepository) {
	recurringRepo := persistence.NewRecurringRepository(db)
	entryRepo := persistence.NewEntryRepository(db)
	logRepo := persistence.NewIntegrationLogRepository(db)
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewProcessTemplatesUseCase(recurringRepo, entryRepo, logRepo, discard), recurringRepo, entryRepo, logRepo
}

func TestProcessTemplates_MaterializesOnePeriodPerRun(t *testing.T) {
	db := newTestDB(t)
	uc, recurringRepo, entryRepo, _ := newUseCase(db)
	ctx := context.Background()

	userID := uuid.New()
	template := entity.NewRecurringTemplate(
		userID,
		"Aluguel",
		decimal.RequireFromString("1500"),
		entity.EntryKindExpense,
		entity.FrequencyMonthly,
		time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
		nil,
	)
	if err := recurringRepo.Create(ctx, template); err != nil {
		t.Fatalf("failed to create template: %v", err)
	}

	today := time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)

	// First run catches up only one period, the start date itself.
	output, err := uc.Execute(ctx, ProcessTemplatesInput{Today: today, RequesterIP: "10.0.0.1"})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if output.Processed != 1 || output.Skipped != 0 || output.Failed != 0 {
		t.Fatalf("first run = processed %d skipped %d failed %d, want 1/0/0",
			output.Processed, output.Skipped, output.Failed)
	}

	entries, err := entryRepo.FindByFilter(ctx, adapter.EntryFilter{UserID: userID})
	if err != nil {
		t.Fatalf("failed to list entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entry count = %d, want 1", len(entries))
	}
	if got := entries[0].Entry.Date; !got.Equal(time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("entry date = %v, want the template start date", got)
	}

	// Second run advances exactly one more period.
	output, err = uc.Execute(ctx, ProcessTemplatesInput{Today: today, RequesterIP: "10.0.0.1"})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if output.Processed != 1 {
		t.Fatalf("second run processed = %d, want 1", output.Processed)
	}

	templates, err := recurringRepo.FindAllActive(ctx)
	if err != nil {
		t.Fatalf("failed to reload templates: %v", err)
	}
	if len(templates) != 1 {
		t.Fatalf("template count = %d, want 1", len(templates))
	}
	last := templates[0].LastProcessedAt
	if last == nil || !last.Equal(time.Date(2026, time.February, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("lastProcessedAt = %v, want 2026-02-15", last)
	}
}

func TestProcessTemplates_SkipsNotYetDue(t *testing.T) {
	db := newTestDB(t)
	uc, recurringRepo, entryRepo, _ := newUseCase(db)
	ctx := context.Background()

	userID := uuid.New()
	template := entity.NewRecurringTemplate(
		userID,
		"Assinatura",
		decimal.RequireFromString("49.90"),
		entity.EntryKindExpense,
		entity.FrequencyMonthly,
		time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
		nil,
	)
	if err := recurringRepo.Create(ctx, template); err != nil {
		t.Fatalf("failed to create template: %v", err)
	}

	today := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)
	output, err := uc.Execute(ctx, ProcessTemplatesInput{Today: today, RequesterIP: "10.0.0.1"})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if output.Processed != 0 || output.Skipped != 1 {
		t.Errorf("run = processed %d skipped %d, want 0/1", output.Processed, output.Skipped)
	}

	entries, err := entryRepo.FindByFilter(ctx, adapter.EntryFilter{UserID: userID})
	if err != nil {
		t.Fatalf("failed to list entries: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("entry count = %d, want 0", len(entries))
	}
}

func TestProcessTemplates_WritesAuditLog(t *testing.T) {
	db := newTestDB(t)
	uc, _, _, logRepo := newUseCase(db)
	ctx := context.Background()

	today := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)
	if _, err := uc.Execute(ctx, ProcessTemplatesInput{Today: today, RequesterIP: "10.0.0.1"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	logs, err := logRepo.FindRecent(ctx, entity.IntegrationRecurringScheduler, 10)
	if err != nil {
		t.Fatalf("failed to load integration logs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("log count = %d, want 1", len(logs))
	}
	if logs[0].Status != entity.IntegrationStatusSuccess {
		t.Errorf("log status = %q, want success", logs[0].Status)
	}
	if logs[0].Message != "processed=0 skipped=0 failed=0" {
		t.Errorf("log message = %q", logs[0].Message)
	}
	if logs[0].RequesterIP != "10.0.0.1" {
		t.Errorf("requester ip = %q, want 10.0.0.1", logs[0].RequesterIP)
	}
}
