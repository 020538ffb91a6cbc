// Package entry contains use cases for financial entries.
package entry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

// CreateEntryInput represents the input for entry creation.
type CreateEntryInput struct {
	UserID              uuid.UUID
	Kind                entity.EntryKind
	Description         string
	Amount              decimal.Decimal
	Date                time.Time
	PaymentMethod       entity.PaymentMethod
	InstallmentCount    int
	StartingInstallment int
	CategoryID          *uuid.UUID
	WalletID            *uuid.UUID
	CreditCardID        *uuid.UUID
	GoalID              *uuid.UUID
}

// CreateEntryOutput represents the output of entry creation.
type CreateEntryOutput struct {
	Entry *entity.Entry
}

// CreateEntryUseCase handles entry creation logic. Income entries linked to
// a goal also credit the goal's saved-amount ledger.
type CreateEntryUseCase struct {
	entryRepo    adapter.EntryRepository
	categoryRepo adapter.CategoryRepository
	walletRepo   adapter.WalletRepository
	cardRepo     adapter.CreditCardRepository
	goalRepo     adapter.GoalRepository
}

// NewCreateEntryUseCase creates a new CreateEntryUseCase instance.
func NewCreateEntryUseCase(
	entryRepo adapter.EntryRepository,
	categoryRepo adapter.CategoryRepository,
	walletRepo adapter.WalletRepository,
	cardRepo adapter.CreditCardRepository,
	goalRepo adapter.GoalRepository,
) *CreateEntryUseCase {
	return &CreateEntryUseCase{
		entryRepo:    entryRepo,
		categoryRepo: categoryRepo,
		walletRepo:   walletRepo,
		cardRepo:     cardRepo,
		goalRepo:     goalRepo,
	}
}

// Execute performs the entry creation.
func (uc *CreateEntryUseCase) Execute(ctx context.Context, input CreateEntryInput) (*CreateEntryOutput, error) {
	if input.Kind != entity.EntryKindIncome && input.Kind != entity.EntryKindExpense {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryKind,
			"entry kind must be 'income' or 'expense'",
			domainerror.ErrInvalidEntryKind,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}

	if input.InstallmentCount > 1 && input.PaymentMethod != entity.PaymentMethodCredit {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidInstallments,
			"installments require the credit payment method",
			domainerror.ErrInvalidInstallments,
		)
	}
	if input.StartingInstallment > 1 && input.StartingInstallment > input.InstallmentCount {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidInstallments,
			"starting installment cannot exceed the installment count",
			domainerror.ErrInvalidInstallments,
		)
	}

	if err := uc.validateReferences(ctx, input); err != nil {
		return nil, err
	}

	entry := entity.NewEntry(
		input.UserID,
		input.Kind,
		strings.TrimSpace(input.Description),
		input.Amount,
		input.Date,
		input.PaymentMethod,
		input.InstallmentCount,
		input.StartingInstallment,
	)
	entry.CategoryID = input.CategoryID
	entry.WalletID = input.WalletID
	entry.CreditCardID = input.CreditCardID
	entry.GoalID = input.GoalID
	if input.Kind == entity.EntryKindIncome {
		entry.InstallmentsPaid = 1
	}

	if err := uc.entryRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	// Ledger side: income linked to a goal counts toward its saved amount.
	if entry.Kind == entity.EntryKindIncome && entry.GoalID != nil {
		if err := uc.goalRepo.AddAmount(ctx, *entry.GoalID, entry.Amount); err != nil {
			return nil, fmt.Errorf("failed to credit goal amount: %w", err)
		}
	}

	return &CreateEntryOutput{
		Entry: entry,
	}, nil
}

// validateReferences checks that every referenced record exists and is
// visible to the caller.
func (uc *CreateEntryUseCase) validateReferences(ctx context.Context, input CreateEntryInput) error {
	if input.CategoryID != nil {
		category, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil || !category.BelongsTo(input.UserID) {
			return domainerror.NewEntryError(
				domainerror.ErrCodeEntryCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
	}

	if input.WalletID != nil {
		if _, err := uc.walletRepo.FindByOwner(ctx, *input.WalletID, input.UserID); err != nil {
			return domainerror.NewEntryError(
				domainerror.ErrCodeEntryWalletNotFound,
				"wallet not found",
				domainerror.ErrWalletNotFound,
			)
		}
	}

	if input.CreditCardID != nil {
		if _, err := uc.cardRepo.FindByOwner(ctx, *input.CreditCardID, input.UserID); err != nil {
			return domainerror.NewEntryError(
				domainerror.ErrCodeEntryCardNotFound,
				"credit card not found",
				domainerror.ErrCardNotFound,
			)
		}
	}

	if input.GoalID != nil {
		member, err := uc.goalRepo.IsMember(ctx, *input.GoalID, input.UserID)
		if err != nil || !member {
			return domainerror.NewEntryError(
				domainerror.ErrCodeEntryGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
	}

	return nil
}
