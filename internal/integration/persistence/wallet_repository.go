// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/integration/persistence/model"
)

// walletRepository implements the adapter.WalletRepository interface.
type walletRepository struct {
	db *gorm.DB
}

// NewWalletRepository creates a new wallet repository instance.
func NewWalletRepository(db *gorm.DB) adapter.WalletRepository {
	return &walletRepository{
		db: db,
	}
}

func (r *walletRepository) Create(ctx context.Context, wallet *entity.Wallet) error {
	walletModel := model.WalletFromEntity(wallet)
	result := r.db.WithContext(ctx).Create(walletModel)
	return result.Error
}

func (r *walletRepository) FindByOwner(ctx context.Context, id, userID uuid.UUID) (*entity.Wallet, error) {
	var walletModel model.WalletModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&walletModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewPlanningError(
				domainerror.ErrCodeWalletNotFound,
				"wallet not found",
				domainerror.ErrWalletNotFound,
			)
		}
		return nil, result.Error
	}
	return walletModel.ToEntity(), nil
}

func (r *walletRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Wallet, error) {
	var walletModels []model.WalletModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&walletModels)
	if result.Error != nil {
		return nil, result.Error
	}

	wallets := make([]*entity.Wallet, len(walletModels))
	for i, wm := range walletModels {
		wallets[i] = wm.ToEntity()
	}
	return wallets, nil
}

func (r *walletRepository) Update(ctx context.Context, wallet *entity.Wallet) error {
	walletModel := model.WalletFromEntity(wallet)
	result := r.db.WithContext(ctx).Save(walletModel)
	return result.Error
}

func (r *walletRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.WalletModel{})
	return result.Error
}

// creditCardRepository implements the adapter.CreditCardRepository interface.
type creditCardRepository struct {
	db *gorm.DB
}

// NewCreditCardRepository creates a new credit card repository instance.
func NewCreditCardRepository(db *gorm.DB) adapter.CreditCardRepository {
	return &creditCardRepository{
		db: db,
	}
}

func (r *creditCardRepository) Create(ctx context.Context, card *entity.CreditCard) error {
	cardModel := model.CreditCardFromEntity(card)
	result := r.db.WithContext(ctx).Create(cardModel)
	return result.Error
}

func (r *creditCardRepository) FindByOwner(ctx context.Context, id, userID uuid.UUID) (*entity.CreditCard, error) {
	var cardModel model.CreditCardModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&cardModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewPlanningError(
				domainerror.ErrCodeCardNotFound,
				"credit card not found",
				domainerror.ErrCardNotFound,
			)
		}
		return nil, result.Error
	}
	return cardModel.ToEntity(), nil
}

func (r *creditCardRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CreditCard, error) {
	var cardModels []model.CreditCardModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&cardModels)
	if result.Error != nil {
		return nil, result.Error
	}

	cards := make([]*entity.CreditCard, len(cardModels))
	for i, cm := range cardModels {
		cards[i] = cm.ToEntity()
	}
	return cards, nil
}

func (r *creditCardRepository) Update(ctx context.Context, card *entity.CreditCard) error {
	cardModel := model.CreditCardFromEntity(card)
	result := r.db.WithContext(ctx).Save(cardModel)
	return result.Error
}

func (r *creditCardRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.CreditCardModel{})
	return result.Error
}
