package persistence

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-app/backend/internal/domain/entity"
	"github.com/finance-app/backend/internal/integration/persistence/model"
)

type seedCategory struct {
	name string
	icon string
	kind entity.EntryKind
}

// defaultCategories are the system categories shared by every user. They are
// inserted once and never mutated through the API.
var defaultCategories = []seedCategory{
	{name: "Alimentação", icon: "utensils", kind: entity.EntryKindExpense},
	{name: "Transporte", icon: "car", kind: entity.EntryKindExpense},
	{name: "Moradia", icon: "home", kind: entity.EntryKindExpense},
	{name: "Saúde", icon: "heart-pulse", kind: entity.EntryKindExpense},
	{name: "Lazer", icon: "gamepad", kind: entity.EntryKindExpense},
	{name: "Educação", icon: "graduation-cap", kind: entity.EntryKindExpense},
	{name: "Salário", icon: "briefcase", kind: entity.EntryKindIncome},
	{name: "Investimentos", icon: "trending-up", kind: entity.EntryKindIncome},
	{name: "Outros", icon: "tag", kind: entity.EntryKindExpense},
}

// SeedSystemCategories inserts the shared default categories if none exist.
func SeedSystemCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.CategoryModel{}).Where("user_id IS NULL").Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count system categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	models := make([]model.CategoryModel, 0, len(defaultCategories))
	for _, c := range defaultCategories {
		models = append(models, model.CategoryModel{
			ID:        uuid.New(),
			UserID:    nil,
			Name:      c.name,
			Icon:      c.icon,
			Color:     entity.DefaultCategoryColor,
			Kind:      string(c.kind),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if err := db.Create(&models).Error; err != nil {
		return fmt.Errorf("failed to seed system categories: %w", err)
	}

	slog.Info("Seeded system categories", "count", len(models))
	return nil
}

// SeedPlans inserts the subscription plan reference data if none exists.
func SeedPlans(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.PlanModel{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count plans: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	premiumID := uuid.New()
	plans := []model.PlanModel{
		{
			ID:           uuid.New(),
			Name:         "Gratuito",
			MonthlyPrice: decimal.Zero,
			CreatedAt:    now,
		},
		{
			ID:           premiumID,
			Name:         "Premium",
			MonthlyPrice: decimal.NewFromFloat(29.90),
			CreatedAt:    now,
			Features: []model.FeatureModel{
				{ID: uuid.New(), PlanID: premiumID, Code: "export_data", Label: "Exportar Dados"},
				{ID: uuid.New(), PlanID: premiumID, Code: "unlimited_goals", Label: "Metas Ilimitadas"},
				{ID: uuid.New(), PlanID: premiumID, Code: "multiple_wallets", Label: "Múltiplas Carteiras"},
			},
		},
	}

	if err := db.Create(&plans).Error; err != nil {
		return fmt.Errorf("failed to seed plans: %w", err)
	}

	slog.Info("Seeded subscription plans", "count", len(plans))
	return nil
}
