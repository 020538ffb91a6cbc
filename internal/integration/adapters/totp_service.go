// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"github.com/pquerna/otp/totp"

	"github.com/finance-app/backend/internal/application/adapter"
)

// totpIssuer is the issuer shown in authenticator apps.
const totpIssuer = "Finance App"

// totpService implements the adapter.TOTPService interface.
type totpService struct{}

// NewTOTPService creates a new TOTP service instance.
func NewTOTPService() adapter.TOTPService {
	return &totpService{}
}

// GenerateSecret generates a new shared secret and the otpauth provisioning
// URL for the given account.
func (s *totpService) GenerateSecret(accountEmail string) (string, string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: accountEmail,
	})
	if err != nil {
		return "", "", err
	}
	return key.Secret(), key.URL(), nil
}

// ValidateCode checks a 6-digit code against the shared secret.
func (s *totpService) ValidateCode(secret, code string) bool {
	return totp.Validate(code, secret)
}
