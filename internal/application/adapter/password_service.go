// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService defines the interface for password hashing and verification.
type PasswordService interface {
	// HashPassword hashes a plain text password using bcrypt.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text password with a hashed password.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePasswordStrength validates if a password meets minimum requirements.
	ValidatePasswordStrength(password string) error
}

// TOTPService defines the interface for time-based one-time password operations
// backing two-factor authentication.
type TOTPService interface {
	// GenerateSecret generates a new shared secret and the otpauth
	// provisioning URL for the given account.
	GenerateSecret(accountEmail string) (secret, provisioningURL string, err error)

	// ValidateCode checks a 6-digit code against the shared secret.
	ValidateCode(secret, code string) bool
}
