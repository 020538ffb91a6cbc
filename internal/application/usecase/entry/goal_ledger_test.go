package entry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/integration/persistence"
	"github.com/finance-app/backend/internal/integration/persistence/model"
)

type ledgerFixture struct {
	createUC *CreateEntryUseCase
	deleteUC *DeleteEntryUseCase
	goalRepo adapter.GoalRepository
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get underlying connection: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.CategoryModel{},
		&model.EntryModel{},
		&model.GoalModel{},
		&model.GoalMemberModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	entryRepo := persistence.NewEntryRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	walletRepo := persistence.NewWalletRepository(db)
	cardRepo := persistence.NewCreditCardRepository(db)
	goalRepo := persistence.NewGoalRepository(db)

	return &ledgerFixture{
		createUC: NewCreateEntryUseCase(entryRepo, categoryRepo, walletRepo, cardRepo, goalRepo),
		deleteUC: NewDeleteEntryUseCase(entryRepo, goalRepo),
		goalRepo: goalRepo,
	}
}

func TestGoalLedger_IncomeRoundTrip(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	userID := uuid.New()
	goal := entity.NewGoal(userID, "Viagem", decimal.RequireFromString("5000"), nil)
	if err := f.goalRepo.Create(ctx, goal); err != nil {
		t.Fatalf("failed to create goal: %v", err)
	}

	output, err := f.createUC.Execute(ctx, CreateEntryInput{
		UserID:        userID,
		Kind:          entity.EntryKindIncome,
		Description:   "Depósito na meta",
		Amount:        decimal.RequireFromString("350.75"),
		Date:          time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
		PaymentMethod: entity.PaymentMethodDebit,
		GoalID:        &goal.ID,
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	credited, err := f.goalRepo.FindByID(ctx, goal.ID)
	if err != nil {
		t.Fatalf("failed to reload goal: %v", err)
	}
	if !credited.CurrentAmount.Equal(decimal.RequireFromString("350.75")) {
		t.Errorf("current amount after create = %s, want 350.75", credited.CurrentAmount)
	}

	// Deleting the entry reverses the contribution.
	err = f.deleteUC.Execute(ctx, DeleteEntryInput{EntryID: output.Entry.ID, UserID: userID})
	if err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	restored, err := f.goalRepo.FindByID(ctx, goal.ID)
	if err != nil {
		t.Fatalf("failed to reload goal: %v", err)
	}
	if !restored.CurrentAmount.IsZero() {
		t.Errorf("current amount after delete = %s, want 0", restored.CurrentAmount)
	}
}

func TestGoalLedger_ExpenseNeverDebits(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	userID := uuid.New()
	goal := entity.NewGoal(userID, "Reforma", decimal.RequireFromString("10000"), nil)
	if err := f.goalRepo.Create(ctx, goal); err != nil {
		t.Fatalf("failed to create goal: %v", err)
	}

	output, err := f.createUC.Execute(ctx, CreateEntryInput{
		UserID:        userID,
		Kind:          entity.EntryKindExpense,
		Description:   "Material de obra",
		Amount:        decimal.RequireFromString("800"),
		Date:          time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
		PaymentMethod: entity.PaymentMethodDebit,
		GoalID:        &goal.ID,
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	reloaded, err := f.goalRepo.FindByID(ctx, goal.ID)
	if err != nil {
		t.Fatalf("failed to reload goal: %v", err)
	}
	if !reloaded.CurrentAmount.IsZero() {
		t.Errorf("current amount = %s, want 0 (expenses never touch the ledger)", reloaded.CurrentAmount)
	}

	if err := f.deleteUC.Execute(ctx, DeleteEntryInput{EntryID: output.Entry.ID, UserID: userID}); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	reloaded, err = f.goalRepo.FindByID(ctx, goal.ID)
	if err != nil {
		t.Fatalf("failed to reload goal: %v", err)
	}
	if !reloaded.CurrentAmount.IsZero() {
		t.Errorf("current amount after delete = %s, want 0", reloaded.CurrentAmount)
	}
}

func TestGoalLedger_ForeignEntryBehavesAsMissing(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	ownerID := uuid.New()
	output, err := f.createUC.Execute(ctx, CreateEntryInput{
		UserID:        ownerID,
		Kind:          entity.EntryKindExpense,
		Description:   "Mercado",
		Amount:        decimal.RequireFromString("42"),
		Date:          time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
		PaymentMethod: entity.PaymentMethodDebit,
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	err = f.deleteUC.Execute(ctx, DeleteEntryInput{EntryID: output.Entry.ID, UserID: uuid.New()})
	var entryErr *domainerror.EntryError
	if !errors.As(err, &entryErr) {
		t.Fatalf("foreign delete error = %v, want an entry error", err)
	}
	if entryErr.Code != domainerror.ErrCodeEntryNotFound {
		t.Errorf("error code = %s, want %s", entryErr.Code, domainerror.ErrCodeEntryNotFound)
	}
}

func TestCreateEntry_RejectsGoalOutsideMembership(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	ownerID := uuid.New()
	goal := entity.NewGoal(ownerID, "Reserva", decimal.RequireFromString("20000"), nil)
	if err := f.goalRepo.Create(ctx, goal); err != nil {
		t.Fatalf("failed to create goal: %v", err)
	}

	_, err := f.createUC.Execute(ctx, CreateEntryInput{
		UserID:        uuid.New(),
		Kind:          entity.EntryKindIncome,
		Description:   "Depósito",
		Amount:        decimal.RequireFromString("10"),
		Date:          time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
		PaymentMethod: entity.PaymentMethodDebit,
		GoalID:        &goal.ID,
	})
	var entryErr *domainerror.EntryError
	if !errors.As(err, &entryErr) {
		t.Fatalf("error = %v, want an entry error", err)
	}
	if entryErr.Code != domainerror.ErrCodeEntryGoalNotFound {
		t.Errorf("error code = %s, want %s", entryErr.Code, domainerror.ErrCodeEntryGoalNotFound)
	}
}
