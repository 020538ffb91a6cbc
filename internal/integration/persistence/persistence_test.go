package persistence

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

	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
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
		&model.UserModel{},
		&model.EntryModel{},
		&model.GoalModel{},
		&model.GoalMemberModel{},
		&model.NotificationModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func TestEntryRepository_UpdateRejectsStaleVersion(t *testing.T) {
	db := newTestDB(t)
	repo := NewEntryRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	entry := entity.NewEntry(
		userID,
		entity.EntryKindExpense,
		"Mercado",
		decimal.RequireFromString("89.90"),
		time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC),
		entity.PaymentMethodDebit,
		1,
		1,
	)
	if err := repo.Create(ctx, entry); err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}

	// Two readers load the same version of the row.
	first, err := repo.FindByOwner(ctx, entry.ID, userID)
	if err != nil {
		t.Fatalf("failed to load entry: %v", err)
	}
	second, err := repo.FindByOwner(ctx, entry.ID, userID)
	if err != nil {
		t.Fatalf("failed to load entry: %v", err)
	}

	first.Description = "Mercado da esquina"
	if err := repo.Update(ctx, first); err != nil {
		t.Fatalf("first update failed: %v", err)
	}
	if first.Version != 2 {
		t.Errorf("version after update = %d, want 2", first.Version)
	}

	// The loser of the race still carries the old version token.
	second.Description = "Padaria"
	err = repo.Update(ctx, second)
	var entryErr *domainerror.EntryError
	if !errors.As(err, &entryErr) {
		t.Fatalf("stale update error = %v, want an entry error", err)
	}
	if entryErr.Code != domainerror.ErrCodeEntryConflict {
		t.Errorf("error code = %s, want %s", entryErr.Code, domainerror.ErrCodeEntryConflict)
	}

	reloaded, err := repo.FindByOwner(ctx, entry.ID, userID)
	if err != nil {
		t.Fatalf("failed to reload entry: %v", err)
	}
	if reloaded.Description != "Mercado da esquina" {
		t.Errorf("description = %q, want the winner's write", reloaded.Description)
	}
}

func TestGoalRepository_AddAmountAndContributions(t *testing.T) {
	db := newTestDB(t)
	goalRepo := NewGoalRepository(db)
	entryRepo := NewEntryRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	memberID := uuid.New()
	goal := entity.NewGoal(ownerID, "Viagem", decimal.RequireFromString("5000"), nil)
	if err := goalRepo.Create(ctx, goal); err != nil {
		t.Fatalf("failed to create goal: %v", err)
	}

	if err := goalRepo.AddAmount(ctx, goal.ID, decimal.RequireFromString("150.50")); err != nil {
		t.Fatalf("AddAmount failed: %v", err)
	}
	reloaded, err := goalRepo.FindByID(ctx, goal.ID)
	if err != nil {
		t.Fatalf("failed to reload goal: %v", err)
	}
	if !reloaded.CurrentAmount.Equal(decimal.RequireFromString("150.50")) {
		t.Errorf("current amount = %s, want 150.50", reloaded.CurrentAmount)
	}

	if err := goalRepo.AddAmount(ctx, uuid.New(), decimal.NewFromInt(10)); err == nil {
		t.Error("AddAmount on a missing goal should fail")
	}

	// Only income entries linked to the goal count as contributions.
	date := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	newLinked := func(userID uuid.UUID, kind entity.EntryKind, amount string) *entity.Entry {
		e := entity.NewEntry(userID, kind, "Depósito", decimal.RequireFromString(amount), date, entity.PaymentMethodDebit, 1, 1)
		e.GoalID = &goal.ID
		return e
	}
	unlinked := entity.NewEntry(ownerID, entity.EntryKindIncome, "Salário", decimal.RequireFromString("3000"), date, entity.PaymentMethodDebit, 1, 1)

	for _, e := range []*entity.Entry{
		newLinked(ownerID, entity.EntryKindIncome, "100"),
		newLinked(ownerID, entity.EntryKindIncome, "50.50"),
		newLinked(memberID, entity.EntryKindIncome, "30"),
		newLinked(ownerID, entity.EntryKindExpense, "999"),
		unlinked,
	} {
		if err := entryRepo.Create(ctx, e); err != nil {
			t.Fatalf("failed to create entry: %v", err)
		}
	}

	contributions, err := goalRepo.ContributionsByUser(ctx, goal.ID)
	if err != nil {
		t.Fatalf("ContributionsByUser failed: %v", err)
	}
	if len(contributions) != 2 {
		t.Fatalf("contributor count = %d, want 2", len(contributions))
	}
	if !contributions[ownerID].Equal(decimal.RequireFromString("150.50")) {
		t.Errorf("owner contribution = %s, want 150.50", contributions[ownerID])
	}
	if !contributions[memberID].Equal(decimal.RequireFromString("30")) {
		t.Errorf("member contribution = %s, want 30", contributions[memberID])
	}
}

func TestGoalRepository_Membership(t *testing.T) {
	db := newTestDB(t)
	goalRepo := NewGoalRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	invitedID := uuid.New()
	strangerID := uuid.New()
	goal := entity.NewGoal(ownerID, "Reserva", decimal.RequireFromString("20000"), nil)
	if err := goalRepo.Create(ctx, goal); err != nil {
		t.Fatalf("failed to create goal: %v", err)
	}
	if err := goalRepo.AddMember(ctx, entity.NewGoalMember(goal.ID, invitedID, entity.GoalRoleMember)); err != nil {
		t.Fatalf("failed to add member: %v", err)
	}

	tests := []struct {
		name   string
		userID uuid.UUID
		want   bool
	}{
		{"owner", ownerID, true},
		{"invited member", invitedID, true},
		{"stranger", strangerID, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := goalRepo.IsMember(ctx, goal.ID, tt.userID)
			if err != nil {
				t.Fatalf("IsMember failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsMember = %v, want %v", got, tt.want)
			}
		})
	}

	// Invited goals show up in the member's listing too.
	visible, err := goalRepo.FindVisibleToUser(ctx, invitedID)
	if err != nil {
		t.Fatalf("FindVisibleToUser failed: %v", err)
	}
	if len(visible) != 1 || visible[0].ID != goal.ID {
		t.Errorf("visible goals = %d, want the shared goal", len(visible))
	}
}

func TestNotificationRepository_MarkReadIsOwnerScoped(t *testing.T) {
	db := newTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	otherID := uuid.New()
	notification := entity.NewNotification(ownerID, "Contas a vencer", "Você tem 1 conta vencendo em breve", entity.NotificationKindAlert)
	if err := repo.Create(ctx, notification); err != nil {
		t.Fatalf("failed to create notification: %v", err)
	}

	// Another user cannot mark it read.
	if err := repo.MarkRead(ctx, notification.ID, otherID); err == nil {
		t.Error("MarkRead by a non-owner should fail")
	}
	unread, err := repo.CountUnread(ctx, ownerID)
	if err != nil {
		t.Fatalf("CountUnread failed: %v", err)
	}
	if unread != 1 {
		t.Errorf("unread = %d, want 1", unread)
	}

	if err := repo.MarkRead(ctx, notification.ID, ownerID); err != nil {
		t.Fatalf("MarkRead by the owner failed: %v", err)
	}
	unread, err = repo.CountUnread(ctx, ownerID)
	if err != nil {
		t.Fatalf("CountUnread failed: %v", err)
	}
	if unread != 0 {
		t.Errorf("unread = %d, want 0", unread)
	}
}
