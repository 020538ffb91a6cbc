// Package templates provides email template rendering functionality.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/finance-app/backend/internal/application/adapter"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

//go:embed *.html *.txt
var templateFS embed.FS

// Renderer handles email template rendering.
type Renderer struct {
	htmlTemplates *htmltemplate.Template
	textTemplates *texttemplate.Template
}

// NewRenderer creates a new template renderer.
func NewRenderer() (*Renderer, error) {
	htmlTmpl, err := htmltemplate.ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML templates: %w", err)
	}

	textTmpl, err := texttemplate.ParseFS(templateFS, "*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text templates: %w", err)
	}

	return &Renderer{
		htmlTemplates: htmlTmpl,
		textTemplates: textTmpl,
	}, nil
}

// RenderInvoiceReminder renders the consolidated due-date reminder email.
func (r *Renderer) RenderInvoiceReminder(input adapter.RenderReminderInput) (string, string, error) {
	html, text, err := r.render("invoice_reminder", input)
	if err != nil {
		return "", "", domainerror.NewEmailError(
			domainerror.ErrCodeTemplateRenderFailed,
			"failed to render invoice reminder",
			err,
		)
	}
	return html, text, nil
}

// RenderPasswordReset renders the password reset link email.
func (r *Renderer) RenderPasswordReset(input adapter.RenderPasswordResetInput) (string, string, error) {
	html, text, err := r.render("password_reset", input)
	if err != nil {
		return "", "", domainerror.NewEmailError(
			domainerror.ErrCodeTemplateRenderFailed,
			"failed to render password reset",
			err,
		)
	}
	return html, text, nil
}

// render renders both HTML and text versions of a template.
func (r *Renderer) render(templateName string, data interface{}) (string, string, error) {
	var htmlBuf bytes.Buffer
	if err := r.htmlTemplates.ExecuteTemplate(&htmlBuf, templateName+".html", data); err != nil {
		return "", "", fmt.Errorf("failed to render HTML template %s: %w", templateName, err)
	}

	var textBuf bytes.Buffer
	if err := r.textTemplates.ExecuteTemplate(&textBuf, templateName+".txt", data); err != nil {
		// Fall back to empty text if no text template exists
		return htmlBuf.String(), "", nil
	}

	return htmlBuf.String(), textBuf.String(), nil
}

// Ensure the renderer satisfies the application interface.
var _ adapter.EmailRenderer = (*Renderer)(nil)
