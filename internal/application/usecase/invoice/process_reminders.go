// Package invoice contains use cases for recurring bill invoices and their
// due-date reminders.
package invoice

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	"github.com/finance-app/backend/internal/domain/schedule"
)

// ProcessRemindersInput represents one reminder scheduler invocation.
type ProcessRemindersInput struct {
	Today       time.Time
	RequesterIP string
}

// ProcessRemindersOutput summarizes the run.
type ProcessRemindersOutput struct {
	UsersNotified int
	InvoicesDue   int
	Failed        int
	Details       []string
}

// ProcessRemindersUseCase runs one pass over all active invoices, sending
// each affected user a single consolidated email covering every invoice that
// is unpaid this month and inside the reminder window. An in-app
// notification mirrors the email. Per-user failures are isolated, and every
// run leaves an integration audit record.
type ProcessRemindersUseCase struct {
	invoiceRepo      adapter.InvoiceRepository
	userRepo         adapter.UserRepository
	notificationRepo adapter.NotificationRepository
	logRepo          adapter.IntegrationLogRepository
	emailSender      adapter.EmailSender
	emailRenderer    adapter.EmailRenderer
	logger           *slog.Logger
}

// NewProcessRemindersUseCase creates a new ProcessRemindersUseCase instance.
func NewProcessRemindersUseCase(
	invoiceRepo adapter.InvoiceRepository,
	userRepo adapter.UserRepository,
	notificationRepo adapter.NotificationRepository,
	logRepo adapter.IntegrationLogRepository,
	emailSender adapter.EmailSender,
	emailRenderer adapter.EmailRenderer,
	logger *slog.Logger,
) *ProcessRemindersUseCase {
	return &ProcessRemindersUseCase{
		invoiceRepo:      invoiceRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		logRepo:          logRepo,
		emailSender:      emailSender,
		emailRenderer:    emailRenderer,
		logger:           logger,
	}
}

// Execute performs the reminder pass.
func (uc *ProcessRemindersUseCase) Execute(ctx context.Context, input ProcessRemindersInput) (*ProcessRemindersOutput, error) {
	auditLog := entity.NewIntegrationLog(entity.IntegrationInvoiceScheduler, input.RequesterIP)

	invoices, err := uc.invoiceRepo.FindAllActive(ctx)
	if err != nil {
		auditLog.Status = entity.IntegrationStatusError
		auditLog.Message = "failed to load active invoices"
		auditLog.Details = []string{err.Error()}
		if logErr := uc.logRepo.Create(ctx, auditLog); logErr != nil {
			uc.logger.Error("failed to write integration log", "error", logErr)
		}
		return nil, fmt.Errorf("failed to load active invoices: %w", err)
	}

	// Consolidate: one reminder per user regardless of invoice count.
	owedByUser := make(map[uuid.UUID][]*entity.Invoice)
	for _, inv := range invoices {
		if schedule.ReminderOwed(inv, input.Today) {
			owedByUser[inv.UserID] = append(owedByUser[inv.UserID], inv)
		}
	}

	output := &ProcessRemindersOutput{}
	userIDs := make([]uuid.UUID, 0, len(owedByUser))
	for id := range owedByUser {
		userIDs = append(userIDs, id)
	}
	sort.Slice(userIDs, func(i, j int) bool {
		return userIDs[i].String() < userIDs[j].String()
	})

	for _, userID := range userIDs {
		owed := owedByUser[userID]
		output.InvoicesDue += len(owed)

		if err := uc.notifyUser(ctx, userID, owed, input.Today); err != nil {
			output.Failed++
			detail := fmt.Sprintf("user %s: %v", userID, err)
			output.Details = append(output.Details, detail)
			uc.logger.Error("invoice reminder failed", "user_id", userID, "error", err)
			continue
		}

		output.UsersNotified++
		output.Details = append(output.Details,
			fmt.Sprintf("user %s reminded about %d invoice(s)", userID, len(owed)))
	}

	auditLog.Status = entity.IntegrationStatusSuccess
	if output.Failed > 0 {
		auditLog.Status = entity.IntegrationStatusError
	}
	auditLog.Message = fmt.Sprintf("users=%d invoices=%d failed=%d", output.UsersNotified, output.InvoicesDue, output.Failed)
	auditLog.Details = output.Details
	if err := uc.logRepo.Create(ctx, auditLog); err != nil {
		uc.logger.Error("failed to write integration log", "error", err)
	}

	uc.logger.Info("invoice reminder run finished",
		"users_notified", output.UsersNotified,
		"invoices_due", output.InvoicesDue,
		"failed", output.Failed,
	)

	return output, nil
}

// notifyUser sends the consolidated email and records the in-app
// notification for one user.
func (uc *ProcessRemindersUseCase) notifyUser(ctx context.Context, userID uuid.UUID, owed []*entity.Invoice, today time.Time) error {
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}

	sort.Slice(owed, func(i, j int) bool {
		return schedule.DaysUntilDue(owed[i], today) < schedule.DaysUntilDue(owed[j], today)
	})

	lines := make([]adapter.ReminderLine, 0, len(owed))
	summary := make([]string, 0, len(owed))
	for _, inv := range owed {
		days := schedule.DaysUntilDue(inv, today)
		lines = append(lines, adapter.ReminderLine{
			Description: inv.Description,
			Amount:      inv.Amount.StringFixed(2),
			DueDate:     schedule.DueDateThisMonth(inv, today).Format("02/01/2006"),
			Severity:    string(schedule.Severity(days)),
		})
		summary = append(summary, inv.Description)
	}

	notification := entity.NewNotification(
		userID,
		"Contas a vencer",
		fmt.Sprintf("Você tem %d conta(s) vencendo em breve: %s", len(owed), strings.Join(summary, ", ")),
		entity.NotificationKindAlert,
	)
	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	if !user.EmailNotifications {
		return nil
	}

	html, text, err := uc.emailRenderer.RenderInvoiceReminder(adapter.RenderReminderInput{
		UserName: user.Name,
		Lines:    lines,
	})
	if err != nil {
		return fmt.Errorf("render reminder: %w", err)
	}

	if _, err := uc.emailSender.Send(ctx, adapter.SendEmailInput{
		To:      user.Email,
		Name:    user.Name,
		Subject: "Lembrete: contas a vencer",
		HTML:    html,
		Text:    text,
	}); err != nil {
		return fmt.Errorf("send reminder email: %w", err)
	}

	return nil
}
