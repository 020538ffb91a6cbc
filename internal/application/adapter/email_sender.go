// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// ReminderLine is one invoice row in a due-date reminder email.
type ReminderLine struct {
	Description string
	Amount      string
	DueDate     string
	Severity    string
}

// RenderReminderInput represents the input for rendering a reminder email.
type RenderReminderInput struct {
	UserName string
	Lines    []ReminderLine
}

// RenderPasswordResetInput represents the input for rendering a password
// reset email.
type RenderPasswordResetInput struct {
	UserName  string
	ResetURL  string
	ExpiresIn string
}

// EmailRenderer defines the interface for rendering email bodies.
type EmailRenderer interface {
	// RenderInvoiceReminder renders the consolidated due-date reminder,
	// returning HTML and plain-text bodies.
	RenderInvoiceReminder(input RenderReminderInput) (html, text string, err error)

	// RenderPasswordReset renders the password reset link email.
	RenderPasswordReset(input RenderPasswordResetInput) (html, text string, err error)
}
