// Package wallet contains wallet-related use cases.
package wallet

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

// UpdateWalletInput represents the input for wallet update. Nil pointers
// leave the corresponding field untouched.
type UpdateWalletInput struct {
	WalletID       uuid.UUID
	UserID         uuid.UUID
	Name           *string
	Type           *entity.WalletType
	InitialBalance *decimal.Decimal
}

// UpdateWalletOutput represents the output of wallet update.
type UpdateWalletOutput struct {
	Wallet *entity.Wallet
}

// UpdateWalletUseCase handles wallet update logic.
type UpdateWalletUseCase struct {
	walletRepo adapter.WalletRepository
}

// NewUpdateWalletUseCase creates a new UpdateWalletUseCase instance.
func NewUpdateWalletUseCase(walletRepo adapter.WalletRepository) *UpdateWalletUseCase {
	return &UpdateWalletUseCase{
		walletRepo: walletRepo,
	}
}

// Execute performs the wallet update.
func (uc *UpdateWalletUseCase) Execute(ctx context.Context, input UpdateWalletInput) (*UpdateWalletOutput, error) {
	wallet, err := uc.walletRepo.FindByOwner(ctx, input.WalletID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewPlanningError(
				domainerror.ErrCodeMissingWalletFields,
				"wallet name is required",
				domainerror.ErrWalletNotFound,
			)
		}
		wallet.Name = name
	}
	if input.Type != nil {
		if !isValidWalletType(*input.Type) {
			return nil, domainerror.NewPlanningError(
				domainerror.ErrCodeMissingWalletFields,
				"wallet type must be 'checking', 'cash', 'savings' or 'investment'",
				domainerror.ErrWalletNotFound,
			)
		}
		wallet.Type = *input.Type
	}
	if input.InitialBalance != nil {
		wallet.InitialBalance = *input.InitialBalance
	}

	if err := uc.walletRepo.Update(ctx, wallet); err != nil {
		return nil, fmt.Errorf("failed to update wallet: %w", err)
	}

	return &UpdateWalletOutput{
		Wallet: wallet,
	}, nil
}
