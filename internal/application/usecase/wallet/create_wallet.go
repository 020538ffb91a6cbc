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

// CreateWalletInput represents the input for wallet creation.
type CreateWalletInput struct {
	UserID         uuid.UUID
	Name           string
	Type           entity.WalletType
	InitialBalance decimal.Decimal
}

// CreateWalletOutput represents the output of wallet creation.
type CreateWalletOutput struct {
	Wallet *entity.Wallet
}

// CreateWalletUseCase handles wallet creation logic.
type CreateWalletUseCase struct {
	walletRepo adapter.WalletRepository
}

// NewCreateWalletUseCase creates a new CreateWalletUseCase instance.
func NewCreateWalletUseCase(walletRepo adapter.WalletRepository) *CreateWalletUseCase {
	return &CreateWalletUseCase{
		walletRepo: walletRepo,
	}
}

// Execute performs the wallet creation.
func (uc *CreateWalletUseCase) Execute(ctx context.Context, input CreateWalletInput) (*CreateWalletOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewPlanningError(
			domainerror.ErrCodeMissingWalletFields,
			"wallet name is required",
			domainerror.ErrWalletNotFound,
		)
	}

	if !isValidWalletType(input.Type) {
		return nil, domainerror.NewPlanningError(
			domainerror.ErrCodeMissingWalletFields,
			"wallet type must be 'checking', 'cash', 'savings' or 'investment'",
			domainerror.ErrWalletNotFound,
		)
	}

	wallet := entity.NewWallet(input.UserID, name, input.Type, input.InitialBalance)
	if err := uc.walletRepo.Create(ctx, wallet); err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	return &CreateWalletOutput{
		Wallet: wallet,
	}, nil
}

func isValidWalletType(t entity.WalletType) bool {
	switch t {
	case entity.WalletTypeChecking, entity.WalletTypeCash, entity.WalletTypeSavings, entity.WalletTypeInvestment:
		return true
	}
	return false
}
