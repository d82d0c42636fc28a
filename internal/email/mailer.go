package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"github.com/lufutu/scrumsan-sub003/pkg/logger"
)

// Config holds the SMTP relay settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// IsConfigured reports whether the config names a usable relay.
func (c Config) IsConfigured() bool {
	return c.Host != "" && c.Port != 0 && c.From != ""
}

// New returns an SMTP-backed Mailer when the config names a relay,
// otherwise a fallback that only logs the invitation link. The fallback
// keeps local setups working without an outbound mail path.
func New(config Config) Mailer {
	if !config.IsConfigured() {
		return &logMailer{}
	}

	return &smtpMailer{config: config}
}

type smtpMailer struct {
	config Config
}

func (m *smtpMailer) SendInvitation(ctx context.Context, invitation Invitation) error {
	subject := fmt.Sprintf("You've been invited to join %s", invitation.OrgName)

	html, err := renderTemplate(invitationHTMLTemplate, invitation)
	if err != nil {
		return fmt.Errorf("could not render invitation email: %w", err)
	}

	text, err := renderTemplate(invitationTextTemplate, invitation)
	if err != nil {
		return fmt.Errorf("could not render invitation email: %w", err)
	}

	if err := m.send(invitation.To, subject, html, text); err != nil {
		return fmt.Errorf("could not send invitation email: %w", err)
	}

	logger.Get(ctx).Info("sent invitation email",
		zap.String("to", invitation.To),
		zap.String("org", invitation.OrgName))

	return nil
}

// send writes a multipart/alternative message so clients without HTML
// support still get the plain-text part.
func (m *smtpMailer) send(to string, subject string, html string, text string) error {
	from := m.config.From
	if m.config.FromName != "" {
		from = fmt.Sprintf("%s <%s>", m.config.FromName, m.config.From)
	}

	const boundary = "scrumsan-alt-boundary"

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=%q\r\n", boundary))
	msg.WriteString("\r\n")

	msg.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(text)
	msg.WriteString("\r\n")

	msg.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(html)
	msg.WriteString("\r\n")

	msg.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)

	var auth smtp.Auth
	if m.config.Username != "" {
		auth = smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	}

	return smtp.SendMail(addr, auth, m.config.From, []string{to}, []byte(msg.String()))
}

// logMailer stands in when no relay is configured. Invitation links are
// logged so operators can hand them out manually.
type logMailer struct{}

func (m *logMailer) SendInvitation(ctx context.Context, invitation Invitation) error {
	logger.Get(ctx).Info("smtp is not configured, logging invitation link instead",
		zap.String("to", invitation.To),
		zap.String("org", invitation.OrgName),
		zap.String("acceptUrl", invitation.AcceptURL),
		zap.Time("expiresAt", invitation.ExpiresAt))

	return nil
}
