// Package creditcard contains credit-card-related use cases.
package creditcard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
)

// DeleteCardInput represents the input for credit card deletion.
type DeleteCardInput struct {
	CardID uuid.UUID
	UserID uuid.UUID
}

// DeleteCardUseCase handles credit card deletion logic.
type DeleteCardUseCase struct {
	cardRepo adapter.CreditCardRepository
}

// NewDeleteCardUseCase creates a new DeleteCardUseCase instance.
func NewDeleteCardUseCase(cardRepo adapter.CreditCardRepository) *DeleteCardUseCase {
	return &DeleteCardUseCase{
		cardRepo: cardRepo,
	}
}

// Execute performs the credit card deletion.
func (uc *DeleteCardUseCase) Execute(ctx context.Context, input DeleteCardInput) error {
	if _, err := uc.cardRepo.FindByOwner(ctx, input.CardID, input.UserID); err != nil {
		return err
	}

	if err := uc.cardRepo.Delete(ctx, input.CardID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete credit card: %w", err)
	}

	return nil
}
