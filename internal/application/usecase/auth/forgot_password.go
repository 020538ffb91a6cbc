// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

// recoveryTokenTTL is how long a password reset link stays usable.
const recoveryTokenTTL = time.Hour

// ForgotPasswordInput represents the input for a forgot password request.
type ForgotPasswordInput struct {
	Email string
}

// ForgotPasswordOutput represents the output of a forgot password request.
type ForgotPasswordOutput struct {
	Message string
}

// ForgotPasswordUseCase issues a password recovery token and emails the
// reset link. The response never reveals whether the email is registered.
type ForgotPasswordUseCase struct {
	userRepo      adapter.UserRepository
	emailSender   adapter.EmailSender
	emailRenderer adapter.EmailRenderer
	frontendURL   string
}

// NewForgotPasswordUseCase creates a new ForgotPasswordUseCase instance.
func NewForgotPasswordUseCase(
	userRepo adapter.UserRepository,
	emailSender adapter.EmailSender,
	emailRenderer adapter.EmailRenderer,
	frontendURL string,
) *ForgotPasswordUseCase {
	return &ForgotPasswordUseCase{
		userRepo:      userRepo,
		emailSender:   emailSender,
		emailRenderer: emailRenderer,
		frontendURL:   frontendURL,
	}
}

// Execute performs the forgot password request.
func (uc *ForgotPasswordUseCase) Execute(ctx context.Context, input ForgotPasswordInput) (*ForgotPasswordOutput, error) {
	if !emailRegex.MatchString(input.Email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	output := &ForgotPasswordOutput{
		Message: "Se o email estiver cadastrado, enviaremos as instruções de redefinição",
	}

	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		// Unknown emails get the same answer to prevent enumeration.
		slog.Debug("password reset requested for unknown email", "email", input.Email)
		return output, nil
	}

	token := uuid.NewString()
	expiry := time.Now().UTC().Add(recoveryTokenTTL)
	user.RecoveryToken = &token
	user.RecoveryTokenExpiry = &expiry
	if err := uc.userRepo.Update(ctx, user); err != nil {
		slog.Error("failed to store recovery token", "error", err, "userID", user.ID)
		return output, nil
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", uc.frontendURL, token)
	html, text, err := uc.emailRenderer.RenderPasswordReset(adapter.RenderPasswordResetInput{
		UserName:  user.Name,
		ResetURL:  resetURL,
		ExpiresIn: "1 hora",
	})
	if err != nil {
		slog.Error("failed to render password reset email", "error", err, "userID", user.ID)
		return output, nil
	}

	_, err = uc.emailSender.Send(ctx, adapter.SendEmailInput{
		To:      user.Email,
		Name:    user.Name,
		Subject: "Redefinição de Senha - Finance App",
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		// Delivery failure is logged, not surfaced: the generic answer stands.
		slog.Error("failed to send password reset email", "error", err, "userID", user.ID)
		return output, nil
	}

	slog.Info("password reset email sent", "userID", user.ID)
	return output, nil
}
