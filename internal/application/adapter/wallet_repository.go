// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/domain/entity"
)

// WalletRepository defines the interface for wallet persistence operations.
type WalletRepository interface {
	Create(ctx context.Context, wallet *entity.Wallet) error
	FindByOwner(ctx context.Context, id, userID uuid.UUID) (*entity.Wallet, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Wallet, error)
	Update(ctx context.Context, wallet *entity.Wallet) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// CreditCardRepository defines the interface for credit card persistence operations.
type CreditCardRepository interface {
	Create(ctx context.Context, card *entity.CreditCard) error
	FindByOwner(ctx context.Context, id, userID uuid.UUID) (*entity.CreditCard, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CreditCard, error)
	Update(ctx context.Context, card *entity.CreditCard) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
