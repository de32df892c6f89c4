package model

import (
	"strings"

	"github.com/google/uuid"
)

// Well-known template names the backend itself renders.
const (
	TemplatePasswordReset = "password-reset"
	TemplateWelcome       = "welcome"
)

// EmailTemplate is a stored mail body with {{placeholder}} slots.
type EmailTemplate struct {
	BaseModel
	Name     string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name" validate:"required"`
	Subject  string `gorm:"type:varchar(255)" json:"subject" validate:"required"`
	Body     string `gorm:"type:text" json:"body"`
	Category string `gorm:"type:varchar(100)" json:"category"`
}

// Render substitutes {{key}} placeholders in the subject and body.
func (t EmailTemplate) Render(vars map[string]string) (subject, body string) {
	subject, body = t.Subject, t.Body
	for key, value := range vars {
		placeholder := "{{" + key + "}}"
		subject = strings.ReplaceAll(subject, placeholder, value)
		body = strings.ReplaceAll(body, placeholder, value)
	}
	return subject, body
}

var DefaultEmailTemplates = []EmailTemplate{
	{
		BaseModel: BaseModel{ID: uuid.MustParse("a7d70000-0001-4b6c-9a5d-2a1908070600")},
		Name:      TemplatePasswordReset,
		Subject:   "Reset your Myers Security password",
		Body:      "Hi {{name}},\n\nSomeone asked to reset the password for {{email}}. If that was you, contact your administrator to complete the reset.\n\nThe Myers Security team",
		Category:  "Account",
	},
	{
		BaseModel: BaseModel{ID: uuid.MustParse("a7d70000-0002-4b6c-9a5d-2a1908070600")},
		Name:      TemplateWelcome,
		Subject:   "Welcome to the Myers Security portal",
		Body:      "Hi {{name}},\n\nYour account is ready. Sign in with {{email}} to get started.\n\nThe Myers Security team",
		Category:  "Account",
	},
	{
		BaseModel: BaseModel{ID: uuid.MustParse("a7d70000-0003-4b6c-9a5d-2a1908070600")},
		Name:      "invoice-reminder",
		Subject:   "Invoice {{number}} is due",
		Body:      "Hello {{owner}},\n\nInvoice {{number}} for {{dispensary}} is due on {{due_date}}.\n\nMyers Security billing",
		Category:  "Billing",
	},
}
