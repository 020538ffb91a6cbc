package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/integration/adapters"
	"github.com/finance-app/backend/internal/integration/persistence"
	"github.com/finance-app/backend/internal/integration/persistence/model"
)

type accountFixture struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	getProfile      *GetProfileUseCase
	changePassword  *ChangePasswordUseCase
	deleteAccount   *DeleteAccountUseCase
}

func newAccountFixture(t *testing.T) *accountFixture {
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

	if err := db.AutoMigrate(&model.UserModel{}, &model.RefreshTokenModel{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService("test-secret", tokenRepo)

	return &accountFixture{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		getProfile:      NewGetProfileUseCase(userRepo),
		changePassword:  NewChangePasswordUseCase(userRepo, passwordService),
		deleteAccount:   NewDeleteAccountUseCase(userRepo, passwordService, tokenService),
	}
}

func (f *accountFixture) createUser(t *testing.T, email, name, password string) *entity.User {
	t.Helper()
	hash, err := f.passwordService.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := entity.NewUser(email, name, hash)
	if err := f.userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func TestGetProfile_ReturnsAccountData(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	user := f.createUser(t, "ana@email.com", "Ana", "SenhaForte1")

	output, err := f.getProfile.Execute(ctx, GetProfileInput{UserID: user.ID})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if output.User.Email != "ana@email.com" || output.User.Name != "Ana" {
		t.Errorf("profile = %s/%s, want ana@email.com/Ana", output.User.Email, output.User.Name)
	}
	if !output.User.EmailNotifications {
		t.Error("new accounts default to email notifications on")
	}
}

func TestChangePassword_RotatesHash(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	user := f.createUser(t, "ana@email.com", "Ana", "SenhaForte1")

	err := f.changePassword.Execute(ctx, ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "SenhaForte1",
		NewPassword:     "SenhaNova123",
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	reloaded, err := f.userRepo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if err := f.passwordService.VerifyPassword(reloaded.PasswordHash, "SenhaNova123"); err != nil {
		t.Error("new password does not verify")
	}
	if err := f.passwordService.VerifyPassword(reloaded.PasswordHash, "SenhaForte1"); err == nil {
		t.Error("old password still verifies")
	}
}

func TestChangePassword_RejectsWrongCurrent(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	user := f.createUser(t, "ana@email.com", "Ana", "SenhaForte1")

	err := f.changePassword.Execute(ctx, ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "SenhaErrada",
		NewPassword:     "SenhaNova123",
	})
	assertAuthCode(t, err, domainerror.ErrCodeInvalidCredentials)

	reloaded, err := f.userRepo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if err := f.passwordService.VerifyPassword(reloaded.PasswordHash, "SenhaForte1"); err != nil {
		t.Error("original password must survive a rejected change")
	}
}

func TestChangePassword_RejectsWeakNew(t *testing.T) {
	f := newAccountFixture(t)

	user := f.createUser(t, "ana@email.com", "Ana", "SenhaForte1")

	err := f.changePassword.Execute(context.Background(), ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "SenhaForte1",
		NewPassword:     "curta",
	})
	assertAuthCode(t, err, domainerror.ErrCodeWeakPassword)
}

func TestDeleteAccount_RemovesUserAndTokens(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	user := f.createUser(t, "ana@email.com", "Ana", "SenhaForte1")
	pair, err := f.tokenService.GenerateTokenPair(ctx, user.ID, user.Email, false)
	if err != nil {
		t.Fatalf("failed to generate tokens: %v", err)
	}

	err = f.deleteAccount.Execute(ctx, DeleteAccountInput{
		UserID:       user.ID,
		Password:     "SenhaForte1",
		Confirmation: "DELETE",
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if _, err := f.userRepo.FindByID(ctx, user.ID); !errors.Is(err, domainerror.ErrUserNotFound) {
		t.Errorf("find after delete = %v, want ErrUserNotFound", err)
	}
	valid, err := f.tokenService.IsRefreshTokenValid(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("failed to check refresh token: %v", err)
	}
	if valid {
		t.Error("refresh token must be invalidated with the account")
	}
}

func TestDeleteAccount_RequiresConfirmationPhrase(t *testing.T) {
	f := newAccountFixture(t)

	user := f.createUser(t, "ana@email.com", "Ana", "SenhaForte1")

	err := f.deleteAccount.Execute(context.Background(), DeleteAccountInput{
		UserID:       user.ID,
		Password:     "SenhaForte1",
		Confirmation: "delete",
	})
	assertAuthCode(t, err, domainerror.ErrCodeInvalidConfirmation)
}

func TestDeleteAccount_RejectsWrongPassword(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	user := f.createUser(t, "ana@email.com", "Ana", "SenhaForte1")

	err := f.deleteAccount.Execute(ctx, DeleteAccountInput{
		UserID:   user.ID,
		Password: "SenhaErrada",
	})
	assertAuthCode(t, err, domainerror.ErrCodeInvalidCredentials)

	if _, err := f.userRepo.FindByID(ctx, user.ID); err != nil {
		t.Error("account must survive a rejected deletion")
	}
}
