package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/integration/adapters"
	"github.com/finance-app/backend/internal/integration/email"
	"github.com/finance-app/backend/internal/integration/email/templates"
	"github.com/finance-app/backend/internal/integration/persistence"
	"github.com/finance-app/backend/internal/integration/persistence/model"
)

type passwordResetFixture struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	forgot          *ForgotPasswordUseCase
	reset           *ResetPasswordUseCase
	sender          *email.MockEmailSender
}

func newPasswordResetFixture(t *testing.T) *passwordResetFixture {
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

	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}

	userRepo := persistence.NewUserRepository(db)
	passwordService := adapters.NewPasswordService()
	sender := email.NewMockEmailSender()

	return &passwordResetFixture{
		userRepo:        userRepo,
		passwordService: passwordService,
		forgot:          NewForgotPasswordUseCase(userRepo, sender, renderer, "http://localhost:5173"),
		reset:           NewResetPasswordUseCase(userRepo, passwordService),
		sender:          sender,
	}
}

func (f *passwordResetFixture) createUser(t *testing.T, email, name, password string) *entity.User {
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

func TestForgotPassword_StoresTokenAndSendsEmail(t *testing.T) {
	f := newPasswordResetFixture(t)
	ctx := context.Background()

	user := f.createUser(t, "ana@email.com", "Ana", "SenhaAntiga1")

	output, err := f.forgot.Execute(ctx, ForgotPasswordInput{Email: "ana@email.com"})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if output.Message == "" {
		t.Error("expected a non-empty message")
	}

	reloaded, err := f.userRepo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if reloaded.RecoveryToken == nil || *reloaded.RecoveryToken == "" {
		t.Fatal("recovery token was not stored")
	}
	if reloaded.RecoveryTokenExpiry == nil {
		t.Fatal("recovery token expiry was not stored")
	}
	remaining := time.Until(*reloaded.RecoveryTokenExpiry)
	if remaining < 55*time.Minute || remaining > 65*time.Minute {
		t.Errorf("token expiry in %s, want about one hour", remaining)
	}

	if len(f.sender.SentEmails) != 1 {
		t.Fatalf("sent %d emails, want 1", len(f.sender.SentEmails))
	}
	sent := f.sender.SentEmails[0]
	if sent.To != "ana@email.com" {
		t.Errorf("email to = %q, want ana@email.com", sent.To)
	}
	if sent.Subject != "Redefinição de Senha - Finance App" {
		t.Errorf("subject = %q", sent.Subject)
	}
	wantLink := "http://localhost:5173/reset-password?token=" + *reloaded.RecoveryToken
	if !strings.Contains(sent.HTML, wantLink) {
		t.Error("html body does not carry the reset link")
	}
	if !strings.Contains(sent.Text, wantLink) {
		t.Error("text body does not carry the reset link")
	}
}

func TestForgotPassword_UnknownEmailGetsGenericAnswer(t *testing.T) {
	f := newPasswordResetFixture(t)

	output, err := f.forgot.Execute(context.Background(), ForgotPasswordInput{Email: "ninguem@email.com"})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if output.Message == "" {
		t.Error("expected the generic message")
	}
	if len(f.sender.SentEmails) != 0 {
		t.Errorf("sent %d emails, want 0", len(f.sender.SentEmails))
	}
}

func TestForgotPassword_RejectsMalformedEmail(t *testing.T) {
	f := newPasswordResetFixture(t)

	_, err := f.forgot.Execute(context.Background(), ForgotPasswordInput{Email: "not-an-email"})
	assertAuthCode(t, err, domainerror.ErrCodeInvalidEmail)
}

func TestResetPassword_ChangesPasswordAndClearsToken(t *testing.T) {
	f := newPasswordResetFixture(t)
	ctx := context.Background()

	user := f.createUser(t, "ana@email.com", "Ana", "SenhaAntiga1")
	if _, err := f.forgot.Execute(ctx, ForgotPasswordInput{Email: "ana@email.com"}); err != nil {
		t.Fatalf("forgot returned error: %v", err)
	}
	withToken, err := f.userRepo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	token := *withToken.RecoveryToken

	if _, err := f.reset.Execute(ctx, ResetPasswordInput{Token: token, NewPassword: "SenhaNova123"}); err != nil {
		t.Fatalf("reset returned error: %v", err)
	}

	reloaded, err := f.userRepo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if err := f.passwordService.VerifyPassword(reloaded.PasswordHash, "SenhaNova123"); err != nil {
		t.Error("new password does not verify")
	}
	if err := f.passwordService.VerifyPassword(reloaded.PasswordHash, "SenhaAntiga1"); err == nil {
		t.Error("old password still verifies")
	}
	if reloaded.RecoveryToken != nil || reloaded.RecoveryTokenExpiry != nil {
		t.Error("recovery token was not cleared")
	}

	// The token is single-use.
	_, err = f.reset.Execute(ctx, ResetPasswordInput{Token: token, NewPassword: "OutraSenha123"})
	assertAuthCode(t, err, domainerror.ErrCodeInvalidResetToken)
}

func TestResetPassword_RejectsUnknownToken(t *testing.T) {
	f := newPasswordResetFixture(t)

	_, err := f.reset.Execute(context.Background(), ResetPasswordInput{
		Token:       "nao-existe",
		NewPassword: "SenhaNova123",
	})
	assertAuthCode(t, err, domainerror.ErrCodeInvalidResetToken)
}

func TestResetPassword_RejectsExpiredToken(t *testing.T) {
	f := newPasswordResetFixture(t)
	ctx := context.Background()

	user := f.createUser(t, "ana@email.com", "Ana", "SenhaAntiga1")
	token := "token-expirado"
	expiry := time.Now().UTC().Add(-time.Minute)
	user.RecoveryToken = &token
	user.RecoveryTokenExpiry = &expiry
	if err := f.userRepo.Update(ctx, user); err != nil {
		t.Fatalf("failed to store expired token: %v", err)
	}

	_, err := f.reset.Execute(ctx, ResetPasswordInput{Token: token, NewPassword: "SenhaNova123"})
	assertAuthCode(t, err, domainerror.ErrCodeExpiredResetToken)
}

func TestResetPassword_RejectsWeakPassword(t *testing.T) {
	f := newPasswordResetFixture(t)
	ctx := context.Background()

	user := f.createUser(t, "ana@email.com", "Ana", "SenhaAntiga1")
	if _, err := f.forgot.Execute(ctx, ForgotPasswordInput{Email: "ana@email.com"}); err != nil {
		t.Fatalf("forgot returned error: %v", err)
	}
	withToken, err := f.userRepo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}

	_, err = f.reset.Execute(ctx, ResetPasswordInput{
		Token:       *withToken.RecoveryToken,
		NewPassword: "curta",
	})
	assertAuthCode(t, err, domainerror.ErrCodeWeakPassword)
}
