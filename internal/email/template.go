package email

import (
	"fmt"
	"html/template"
	"strings"
)

const invitationHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <style>
    body { font-family: Arial, sans-serif; color: #333; margin: 0; padding: 0; }
    .container { max-width: 560px; margin: 0 auto; padding: 24px; }
    .card { border: 1px solid #e2e2e2; border-radius: 8px; padding: 32px; }
    .button { display: inline-block; background-color: #2563eb; color: #ffffff;
      padding: 12px 24px; border-radius: 6px; text-decoration: none; }
    .muted { color: #6b7280; font-size: 13px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="card">
      <h2>Join {{.OrgName}} on ScrumSan</h2>
      <p>{{.InviterName}} invited you to join <strong>{{.OrgName}}</strong> as <strong>{{.Role}}</strong>.</p>
      <p><a class="button" href="{{.AcceptURL}}">Accept invitation</a></p>
      <p class="muted">This invitation expires on {{.ExpiresAt.Format "Jan 2, 2006"}}.
        If you were not expecting it, you can safely ignore this email.</p>
    </div>
  </div>
</body>
</html>`

const invitationTextTemplate = `{{.InviterName}} invited you to join {{.OrgName}} on ScrumSan as {{.Role}}.

Accept the invitation: {{.AcceptURL}}

This invitation expires on {{.ExpiresAt.Format "Jan 2, 2006"}}. If you were not expecting it, you can safely ignore this email.`

func renderTemplate(text string, data any) (string, error) {
	tpl, err := template.New("email").Parse(text)
	if err != nil {
		return "", fmt.Errorf("could not parse template: %w", err)
	}

	var out strings.Builder
	if err := tpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("could not execute template: %w", err)
	}

	return out.String(), nil
}
