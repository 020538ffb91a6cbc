// Package wallet contains wallet-related use cases.
package wallet

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
)

// DeleteWalletInput represents the input for wallet deletion.
type DeleteWalletInput struct {
	WalletID uuid.UUID
	UserID   uuid.UUID
}

// DeleteWalletUseCase handles wallet deletion logic.
type DeleteWalletUseCase struct {
	walletRepo adapter.WalletRepository
}

// NewDeleteWalletUseCase creates a new DeleteWalletUseCase instance.
func NewDeleteWalletUseCase(walletRepo adapter.WalletRepository) *DeleteWalletUseCase {
	return &DeleteWalletUseCase{
		walletRepo: walletRepo,
	}
}

// Execute performs the wallet deletion.
func (uc *DeleteWalletUseCase) Execute(ctx context.Context, input DeleteWalletInput) error {
	if _, err := uc.walletRepo.FindByOwner(ctx, input.WalletID, input.UserID); err != nil {
		return err
	}

	if err := uc.walletRepo.Delete(ctx, input.WalletID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete wallet: %w", err)
	}

	return nil
}
