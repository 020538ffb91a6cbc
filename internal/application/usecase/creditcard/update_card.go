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

// UpdateCardInput represents the input for credit card update. Nil pointers
// leave the corresponding field untouched.
type UpdateCardInput struct {
	CardID          uuid.UUID
	UserID          uuid.UUID
	Name            *string
	Brand           *string
	Limit           *decimal.Decimal
	ClosingDay      *int
	DueDay          *int
	PaymentWalletID *uuid.UUID
}

// UpdateCardOutput represents the output of credit card update.
type UpdateCardOutput struct {
	Card *entity.CreditCard
}

// UpdateCardUseCase handles credit card update logic.
type UpdateCardUseCase struct {
	cardRepo   adapter.CreditCardRepository
	walletRepo adapter.WalletRepository
}

// NewUpdateCardUseCase creates a new UpdateCardUseCase instance.
func NewUpdateCardUseCase(
	cardRepo adapter.CreditCardRepository,
	walletRepo adapter.WalletRepository,
) *UpdateCardUseCase {
	return &UpdateCardUseCase{
		cardRepo:   cardRepo,
		walletRepo: walletRepo,
	}
}

// Execute performs the credit card update.
func (uc *UpdateCardUseCase) Execute(ctx context.Context, input UpdateCardInput) (*UpdateCardOutput, error) {
	card, err := uc.cardRepo.FindByOwner(ctx, input.CardID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewPlanningError(
				domainerror.ErrCodeMissingCardFields,
				"credit card name is required",
				domainerror.ErrCardNotFound,
			)
		}
		card.Name = name
	}
	if input.Brand != nil {
		card.Brand = *input.Brand
	}
	if input.Limit != nil {
		card.Limit = *input.Limit
	}
	if input.ClosingDay != nil {
		if !isValidDayOfMonth(*input.ClosingDay) {
			return nil, domainerror.NewPlanningError(
				domainerror.ErrCodeInvalidCardDay,
				"closing day must be between 1 and 31",
				domainerror.ErrInvalidCardDay,
			)
		}
		card.ClosingDay = *input.ClosingDay
	}
	if input.DueDay != nil {
		if !isValidDayOfMonth(*input.DueDay) {
			return nil, domainerror.NewPlanningError(
				domainerror.ErrCodeInvalidCardDay,
				"due day must be between 1 and 31",
				domainerror.ErrInvalidCardDay,
			)
		}
		card.DueDay = *input.DueDay
	}
	if input.PaymentWalletID != nil {
		if _, err := uc.walletRepo.FindByOwner(ctx, *input.PaymentWalletID, input.UserID); err != nil {
			return nil, domainerror.NewPlanningError(
				domainerror.ErrCodeWalletNotFound,
				"payment wallet not found",
				domainerror.ErrWalletNotFound,
			)
		}
		card.PaymentWalletID = input.PaymentWalletID
	}

	if err := uc.cardRepo.Update(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to update credit card: %w", err)
	}

	return &UpdateCardOutput{
		Card: card,
	}, nil
}
