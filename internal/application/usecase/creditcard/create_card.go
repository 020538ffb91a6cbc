// Package creditcard contains credit-card-related use cases.
package creditcard

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

// CreateCardInput represents the input for credit card creation.
type CreateCardInput struct {
	UserID          uuid.UUID
	Name            string
	Brand           string
	Limit           decimal.Decimal
	ClosingDay      int
	DueDay          int
	PaymentWalletID *uuid.UUID
}

// CreateCardOutput represents the output of credit card creation.
type CreateCardOutput struct {
	Card *entity.CreditCard
}

// CreateCardUseCase handles credit card creation logic.
type CreateCardUseCase struct {
	cardRepo   adapter.CreditCardRepository
	walletRepo adapter.WalletRepository
}

// NewCreateCardUseCase creates a new CreateCardUseCase instance.
func NewCreateCardUseCase(
	cardRepo adapter.CreditCardRepository,
	walletRepo adapter.WalletRepository,
) *CreateCardUseCase {
	return &CreateCardUseCase{
		cardRepo:   cardRepo,
		walletRepo: walletRepo,
	}
}

// Execute performs the credit card creation.
func (uc *CreateCardUseCase) Execute(ctx context.Context, input CreateCardInput) (*CreateCardOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewPlanningError(
			domainerror.ErrCodeMissingCardFields,
			"credit card name is required",
			domainerror.ErrCardNotFound,
		)
	}

	if !isValidDayOfMonth(input.ClosingDay) || !isValidDayOfMonth(input.DueDay) {
		return nil, domainerror.NewPlanningError(
			domainerror.ErrCodeInvalidCardDay,
			"closing and due days must be between 1 and 31",
			domainerror.ErrInvalidCardDay,
		)
	}

	if input.PaymentWalletID != nil {
		if _, err := uc.walletRepo.FindByOwner(ctx, *input.PaymentWalletID, input.UserID); err != nil {
			return nil, domainerror.NewPlanningError(
				domainerror.ErrCodeWalletNotFound,
				"payment wallet not found",
				domainerror.ErrWalletNotFound,
			)
		}
	}

	card := entity.NewCreditCard(input.UserID, name, input.Brand, input.Limit, input.ClosingDay, input.DueDay)
	card.PaymentWalletID = input.PaymentWalletID

	if err := uc.cardRepo.Create(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to create credit card: %w", err)
	}

	return &CreateCardOutput{
		Card: card,
	}, nil
}

func isValidDayOfMonth(day int) bool {
	return day >= 1 && day <= 31
}
