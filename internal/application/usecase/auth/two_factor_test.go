package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/pquerna/otp/totp"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/integration/adapters"
	"github.com/finance-app/backend/internal/integration/persistence"
	"github.com/finance-app/backend/internal/integration/persistence/model"
)

func newTwoFactorFixture(t *testing.T) (adapter.UserRepository, *EnableTwoFactorUseCase, *ConfirmTwoFactorUseCase) {
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

	if err := db.AutoMigrate(&model.UserModel{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	userRepo := persistence.NewUserRepository(db)
	totpService := adapters.NewTOTPService()
	return userRepo,
		NewEnableTwoFactorUseCase(userRepo, totpService),
		NewConfirmTwoFactorUseCase(userRepo, totpService)
}

func assertAuthCode(t *testing.T, err error, want domainerror.AuthErrorCode) {
	t.Helper()
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("error = %v, want an auth error", err)
	}
	if authErr.Code != want {
		t.Errorf("error code = %s, want %s", authErr.Code, want)
	}
}

func TestTwoFactor_EnableStoresPendingSecret(t *testing.T) {
	userRepo, enable, _ := newTwoFactorFixture(t)
	ctx := context.Background()

	user := entity.NewUser("ana@email.com", "Ana", "hash")
	if err := userRepo.Create(ctx, user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	output, err := enable.Execute(ctx, EnableTwoFactorInput{UserID: user.ID})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if output.Secret == "" {
		t.Error("expected a non-empty secret")
	}
	if !strings.HasPrefix(output.ProvisioningURL, "otpauth://") {
		t.Errorf("provisioning url = %q, want an otpauth url", output.ProvisioningURL)
	}

	reloaded, err := userRepo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if reloaded.TwoFactorSecret != output.Secret {
		t.Error("secret was not persisted")
	}
	if reloaded.TwoFactorEnabled {
		t.Error("enrollment must stay unarmed until confirmed")
	}
}

func TestTwoFactor_ConfirmArmsWithValidCode(t *testing.T) {
	userRepo, enable, confirm := newTwoFactorFixture(t)
	ctx := context.Background()

	user := entity.NewUser("ana@email.com", "Ana", "hash")
	if err := userRepo.Create(ctx, user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	output, err := enable.Execute(ctx, EnableTwoFactorInput{UserID: user.ID})
	if err != nil {
		t.Fatalf("enable returned error: %v", err)
	}

	code, err := totp.GenerateCode(output.Secret, time.Now())
	if err != nil {
		t.Fatalf("failed to generate code: %v", err)
	}

	if err := confirm.Execute(ctx, ConfirmTwoFactorInput{UserID: user.ID, Code: code}); err != nil {
		t.Fatalf("confirm returned error: %v", err)
	}

	reloaded, err := userRepo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if !reloaded.TwoFactorEnabled {
		t.Error("two-factor was not enabled after confirmation")
	}
}

func TestTwoFactor_ConfirmRejectsInvalidCode(t *testing.T) {
	userRepo, enable, confirm := newTwoFactorFixture(t)
	ctx := context.Background()

	user := entity.NewUser("ana@email.com", "Ana", "hash")
	if err := userRepo.Create(ctx, user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	if _, err := enable.Execute(ctx, EnableTwoFactorInput{UserID: user.ID}); err != nil {
		t.Fatalf("enable returned error: %v", err)
	}

	err := confirm.Execute(ctx, ConfirmTwoFactorInput{UserID: user.ID, Code: "000000"})
	assertAuthCode(t, err, domainerror.ErrCodeInvalidTwoFactor)

	reloaded, err := userRepo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if reloaded.TwoFactorEnabled {
		t.Error("two-factor must stay disabled after a failed confirmation")
	}
}

func TestTwoFactor_ConfirmWithoutEnrollment(t *testing.T) {
	userRepo, _, confirm := newTwoFactorFixture(t)
	ctx := context.Background()

	user := entity.NewUser("ana@email.com", "Ana", "hash")
	if err := userRepo.Create(ctx, user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	err := confirm.Execute(ctx, ConfirmTwoFactorInput{UserID: user.ID, Code: "123456"})
	assertAuthCode(t, err, domainerror.ErrCodeTwoFactorNotInitiated)
}

func TestTwoFactor_EnableWhenAlreadyEnabled(t *testing.T) {
	userRepo, enable, _ := newTwoFactorFixture(t)
	ctx := context.Background()

	user := entity.NewUser("ana@email.com", "Ana", "hash")
	if err := userRepo.Create(ctx, user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	user.TwoFactorSecret = "EXISTINGSECRET"
	user.TwoFactorEnabled = true
	if err := userRepo.Update(ctx, user); err != nil {
		t.Fatalf("failed to arm two-factor: %v", err)
	}

	_, err := enable.Execute(ctx, EnableTwoFactorInput{UserID: user.ID})
	assertAuthCode(t, err, domainerror.ErrCodeTwoFactorEnabled)
}
