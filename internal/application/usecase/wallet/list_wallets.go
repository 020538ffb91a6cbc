// Package wallet contains wallet-related use cases.
package wallet

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
)

// ListWalletsInput represents the input for listing wallets.
type ListWalletsInput struct {
	UserID uuid.UUID
}

// ListWalletsOutput represents wallets with their derived balances.
type ListWalletsOutput struct {
	Wallets []*entity.WalletWithBalance
}

// ListWalletsUseCase lists the user's wallets with current balances. The
// balance is the initial balance plus the net of debit entries on the wallet.
type ListWalletsUseCase struct {
	walletRepo adapter.WalletRepository
	entryRepo  adapter.EntryRepository
}

// NewListWalletsUseCase creates a new ListWalletsUseCase instance.
func NewListWalletsUseCase(
	walletRepo adapter.WalletRepository,
	entryRepo adapter.EntryRepository,
) *ListWalletsUseCase {
	return &ListWalletsUseCase{
		walletRepo: walletRepo,
		entryRepo:  entryRepo,
	}
}

// Execute performs the wallet listing.
func (uc *ListWalletsUseCase) Execute(ctx context.Context, input ListWalletsInput) (*ListWalletsOutput, error) {
	wallets, err := uc.walletRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}

	result := make([]*entity.WalletWithBalance, 0, len(wallets))
	for _, w := range wallets {
		net, err := uc.entryRepo.SumDebitByWallet(ctx, w.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to compute wallet balance: %w", err)
		}
		result = append(result, &entity.WalletWithBalance{
			Wallet:  w,
			Balance: w.InitialBalance.Add(net),
		})
	}

	return &ListWalletsOutput{
		Wallets: result,
	}, nil
}
