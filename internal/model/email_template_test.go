package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go-secadmin-ws/internal/model"
)

func TestEmailTemplateRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		tpl         model.EmailTemplate
		vars        map[string]string
		wantSubject string
		wantBody    string
	}{
		{
			name:        "substitutes in subject and body",
			tpl:         model.EmailTemplate{Subject: "Hello {{name}}", Body: "Account {{email}} is ready, {{name}}."},
			vars:        map[string]string{"name": "Rita", "email": "rita@example.com"},
			wantSubject: "Hello Rita",
			wantBody:    "Account rita@example.com is ready, Rita.",
		},
		{
			name:        "repeated placeholder replaced everywhere",
			tpl:         model.EmailTemplate{Subject: "{{number}}", Body: "Invoice {{number}} ({{number}}) is due."},
			vars:        map[string]string{"number": "INV-7"},
			wantSubject: "INV-7",
			wantBody:    "Invoice INV-7 (INV-7) is due.",
		},
		{
			name:        "unmatched slots stay literal",
			tpl:         model.EmailTemplate{Subject: "Hi {{name}}", Body: "Due {{due_date}}"},
			vars:        map[string]string{"name": "Joel"},
			wantSubject: "Hi Joel",
			wantBody:    "Due {{due_date}}",
		},
		{
			name:        "no vars leaves template untouched",
			tpl:         model.EmailTemplate{Subject: "Plain subject", Body: "Plain body"},
			vars:        nil,
			wantSubject: "Plain subject",
			wantBody:    "Plain body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			subject, body := tt.tpl.Render(tt.vars)
			require.Equal(t, tt.wantSubject, subject)
			require.Equal(t, tt.wantBody, body)
		})
	}
}

func TestPasswordResetTemplateRendersUserFields(t *testing.T) {
	t.Parallel()

	var reset *model.EmailTemplate
	for i := range model.DefaultEmailTemplates {
		if model.DefaultEmailTemplates[i].Name == model.TemplatePasswordReset {
			reset = &model.DefaultEmailTemplates[i]
		}
	}
	require.NotNil(t, reset)

	subject, body := reset.Render(map[string]string{
		"name":  "Front Desk",
		"email": "viewer@myers.security",
	})
	require.NotContains(t, subject, "{{")
	require.NotContains(t, body, "{{")
	require.Contains(t, body, "Front Desk")
	require.Contains(t, body, "viewer@myers.security")
}
