package invoice

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	"github.com/finance-app/backend/internal/integration/email"
	"github.com/finance-app/backend/internal/integration/email/templates"
	"github.com/finance-app/backend/internal/integration/persistence"
	"github.com/finance-app/backend/internal/integration/persistence/model"
)

type reminderFixture struct {
	uc               *ProcessRemindersUseCase
	userRepo         adapter.UserRepository
	invoiceRepo      adapter.InvoiceRepository
	notificationRepo adapter.NotificationRepository
	sender           *email.MockEmailSender
}

func newReminderFixture(t *testing.T) *reminderFixture {
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
		&model.UserModel{},
		&model.InvoiceModel{},
		&model.NotificationModel{},
		&model.IntegrationLogModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to build email renderer: %v", err)
	}

	f := &reminderFixture{
		userRepo:         persistence.NewUserRepository(db),
		invoiceRepo:      persistence.NewInvoiceRepository(db),
		notificationRepo: persistence.NewNotificationRepository(db),
		sender:           email.NewMockEmailSender(),
	}
	f.uc = NewProcessRemindersUseCase(
		f.invoiceRepo,
		f.userRepo,
		f.notificationRepo,
		persistence.NewIntegrationLogRepository(db),
		f.sender,
		renderer,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return f
}

func TestProcessReminders_NotifiesUserInsideWindow(t *testing.T) {
	f := newReminderFixture(t)
	ctx := context.Background()

	user := entity.NewUser("ana@email.com", "Ana", "hash")
	if err := f.userRepo.Create(ctx, user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	today := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)
	light := entity.NewInvoice(user.ID, "Conta de luz", decimal.RequireFromString("180.45"), 12)
	water := entity.NewInvoice(user.ID, "Conta de água", decimal.RequireFromString("75.00"), 14)
	for _, inv := range []*entity.Invoice{light, water} {
		if err := f.invoiceRepo.Create(ctx, inv); err != nil {
			t.Fatalf("failed to create invoice: %v", err)
		}
	}

	output, err := f.uc.Execute(ctx, ProcessRemindersInput{Today: today, RequesterIP: "10.0.0.1"})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if output.UsersNotified != 1 || output.InvoicesDue != 2 || output.Failed != 0 {
		t.Fatalf("run = users %d invoices %d failed %d, want 1/2/0",
			output.UsersNotified, output.InvoicesDue, output.Failed)
	}

	// One consolidated email covering both invoices.
	if len(f.sender.SentEmails) != 1 {
		t.Fatalf("sent emails = %d, want 1", len(f.sender.SentEmails))
	}
	sent := f.sender.SentEmails[0]
	if sent.To != "ana@email.com" {
		t.Errorf("email to = %q, want ana@email.com", sent.To)
	}
	if sent.Subject != "Lembrete: contas a vencer" {
		t.Errorf("email subject = %q", sent.Subject)
	}
	if !strings.Contains(sent.HTML, "Conta de luz") || !strings.Contains(sent.HTML, "Conta de água") {
		t.Errorf("email body is missing an invoice description")
	}

	// The in-app notification mirrors the email.
	notifications, err := f.notificationRepo.FindByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("failed to list notifications: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("notification count = %d, want 1", len(notifications))
	}
	if notifications[0].Title != "Contas a vencer" {
		t.Errorf("notification title = %q", notifications[0].Title)
	}
	if notifications[0].Kind != entity.NotificationKindAlert {
		t.Errorf("notification kind = %q, want alert", notifications[0].Kind)
	}
}

func TestProcessReminders_SkipsPaidAndDistantInvoices(t *testing.T) {
	f := newReminderFixture(t)
	ctx := context.Background()

	user := entity.NewUser("bruno@email.com", "Bruno", "hash")
	if err := f.userRepo.Create(ctx, user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	today := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)

	paid := entity.NewInvoice(user.ID, "Internet", decimal.RequireFromString("120.00"), 12)
	paymentDate := time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC)
	paid.LastPaymentAt = &paymentDate

	distant := entity.NewInvoice(user.ID, "Seguro", decimal.RequireFromString("300.00"), 28)

	for _, inv := range []*entity.Invoice{paid, distant} {
		if err := f.invoiceRepo.Create(ctx, inv); err != nil {
			t.Fatalf("failed to create invoice: %v", err)
		}
	}

	output, err := f.uc.Execute(ctx, ProcessRemindersInput{Today: today, RequesterIP: "10.0.0.1"})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if output.UsersNotified != 0 || output.InvoicesDue != 0 {
		t.Errorf("run = users %d invoices %d, want 0/0", output.UsersNotified, output.InvoicesDue)
	}
	if len(f.sender.SentEmails) != 0 {
		t.Errorf("sent emails = %d, want 0", len(f.sender.SentEmails))
	}
}

func TestProcessReminders_HonorsEmailOptOut(t *testing.T) {
	f := newReminderFixture(t)
	ctx := context.Background()

	user := entity.NewUser("carla@email.com", "Carla", "hash")
	if err := f.userRepo.Create(ctx, user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	user.EmailNotifications = false
	if err := f.userRepo.Update(ctx, user); err != nil {
		t.Fatalf("failed to disable email notifications: %v", err)
	}

	today := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)
	inv := entity.NewInvoice(user.ID, "Academia", decimal.RequireFromString("99.90"), 11)
	if err := f.invoiceRepo.Create(ctx, inv); err != nil {
		t.Fatalf("failed to create invoice: %v", err)
	}

	output, err := f.uc.Execute(ctx, ProcessRemindersInput{Today: today, RequesterIP: "10.0.0.1"})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if output.UsersNotified != 1 {
		t.Fatalf("users notified = %d, want 1", output.UsersNotified)
	}

	// The notification is still recorded; only the email is suppressed.
	if len(f.sender.SentEmails) != 0 {
		t.Errorf("sent emails = %d, want 0", len(f.sender.SentEmails))
	}
	notifications, err := f.notificationRepo.FindByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("failed to list notifications: %v", err)
	}
	if len(notifications) != 1 {
		t.Errorf("notification count = %d, want 1", len(notifications))
	}
}
