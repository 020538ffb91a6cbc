package dto

// ChangePasswordRequest represents the request body for a password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// DeleteAccountRequest represents the request body for account deletion.
// Confirmation, when present, must be the literal word DELETE.
type DeleteAccountRequest struct {
	Password     string `json:"password" binding:"required"`
	Confirmation string `json:"confirmation"`
}
