// Package recurring contains use cases for recurring entry templates.
package recurring

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	"github.com/finance-app/backend/internal/domain/schedule"
)

// ProcessTemplatesInput represents one scheduler invocation.
type ProcessTemplatesInput struct {
	Today       time.Time
	RequesterIP string
}

// ProcessTemplatesOutput summarizes the run.
type ProcessTemplatesOutput struct {
	Processed int
	Skipped   int
	Failed    int
	Details   []string
}

// ProcessTemplatesUseCase runs one pass over all active templates. Each due
// template materializes exactly one entry and advances its marker by one
// period; catching up a long gap takes repeated invocations. Failures are
// isolated per template so one broken row never blocks the batch, and every
// run leaves an integration audit record.
type ProcessTemplatesUseCase struct {
	recurringRepo adapter.RecurringRepository
	entryRepo     adapter.EntryRepository
	logRepo       adapter.IntegrationLogRepository
	logger        *slog.Logger
}

// NewProcessTemplatesUseCase creates a new ProcessTemplatesUseCase instance.
func NewProcessTemplatesUseCase(
	recurringRepo adapter.RecurringRepository,
	entryRepo adapter.EntryRepository,
	logRepo adapter.IntegrationLogRepository,
	logger *slog.Logger,
) *ProcessTemplatesUseCase {
	return &ProcessTemplatesUseCase{
		recurringRepo: recurringRepo,
		entryRepo:     entryRepo,
		logRepo:       logRepo,
		logger:        logger,
	}
}

// Execute performs the scheduler pass.
func (uc *ProcessTemplatesUseCase) Execute(ctx context.Context, input ProcessTemplatesInput) (*ProcessTemplatesOutput, error) {
	auditLog := entity.NewIntegrationLog(entity.IntegrationRecurringScheduler, input.RequesterIP)

	templates, err := uc.recurringRepo.FindAllActive(ctx)
	if err != nil {
		auditLog.Status = entity.IntegrationStatusError
		auditLog.Message = "failed to load active templates"
		auditLog.Details = []string{err.Error()}
		if logErr := uc.logRepo.Create(ctx, auditLog); logErr != nil {
			uc.logger.Error("failed to write integration log", "error", logErr)
		}
		return nil, fmt.Errorf("failed to load active templates: %w", err)
	}

	output := &ProcessTemplatesOutput{}
	for _, template := range templates {
		entry := schedule.Tick(template, input.Today)
		if entry == nil {
			output.Skipped++
			continue
		}

		if err := uc.processOne(ctx, template, entry); err != nil {
			output.Failed++
			detail := fmt.Sprintf("template %s: %v", template.ID, err)
			output.Details = append(output.Details, detail)
			uc.logger.Error("recurring template failed",
				"template_id", template.ID,
				"user_id", template.UserID,
				"error", err,
			)
			continue
		}

		output.Processed++
		output.Details = append(output.Details,
			fmt.Sprintf("template %s materialized entry dated %s", template.ID, entry.Date.Format("2006-01-02")))
	}

	auditLog.Status = entity.IntegrationStatusSuccess
	if output.Failed > 0 {
		auditLog.Status = entity.IntegrationStatusError
	}
	auditLog.Message = fmt.Sprintf("processed=%d skipped=%d failed=%d", output.Processed, output.Skipped, output.Failed)
	auditLog.Details = output.Details
	if err := uc.logRepo.Create(ctx, auditLog); err != nil {
		uc.logger.Error("failed to write integration log", "error", err)
	}

	uc.logger.Info("recurring scheduler run finished",
		"processed", output.Processed,
		"skipped", output.Skipped,
		"failed", output.Failed,
	)

	return output, nil
}

// processOne persists the materialized entry and moves the template marker.
// Tick already mutated LastProcessedAt in memory; it only sticks when the
// entry write succeeds.
func (uc *ProcessTemplatesUseCase) processOne(ctx context.Context, template *entity.RecurringTemplate, entry *entity.Entry) error {
	if err := uc.entryRepo.Create(ctx, entry); err != nil {
		return fmt.Errorf("create entry: %w", err)
	}
	if err := uc.recurringRepo.AdvanceLastProcessed(ctx, template); err != nil {
		return fmt.Errorf("advance marker: %w", err)
	}
	return nil
}
