// Package creditcard contains credit-card-related use cases.
package creditcard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
)

// ListCardsInput represents the input for listing credit cards.
type ListCardsInput struct {
	UserID uuid.UUID
}

// ListCardsOutput represents cards with their open invoice totals.
type ListCardsOutput struct {
	Cards []*entity.CreditCardWithInvoice
}

// ListCardsUseCase lists the user's cards. The open invoice is the sum of
// credit entries on the card that still have unpaid installments; the
// available limit is the card limit minus that sum.
type ListCardsUseCase struct {
	cardRepo  adapter.CreditCardRepository
	entryRepo adapter.EntryRepository
}

// NewListCardsUseCase creates a new ListCardsUseCase instance.
func NewListCardsUseCase(
	cardRepo adapter.CreditCardRepository,
	entryRepo adapter.EntryRepository,
) *ListCardsUseCase {
	return &ListCardsUseCase{
		cardRepo:  cardRepo,
		entryRepo: entryRepo,
	}
}

// Execute performs the card listing.
func (uc *ListCardsUseCase) Execute(ctx context.Context, input ListCardsInput) (*ListCardsOutput, error) {
	cards, err := uc.cardRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list credit cards: %w", err)
	}

	result := make([]*entity.CreditCardWithInvoice, 0, len(cards))
	for _, card := range cards {
		open, err := uc.entryRepo.FindOpenByCard(ctx, card.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load open entries: %w", err)
		}

		invoice := decimal.Zero
		for _, e := range open {
			invoice = invoice.Add(e.Amount)
		}

		result = append(result, &entity.CreditCardWithInvoice{
			CreditCard:     card,
			OpenInvoice:    invoice,
			AvailableLimit: card.Limit.Sub(invoice),
		})
	}

	return &ListCardsOutput{
		Cards: result,
	}, nil
}
