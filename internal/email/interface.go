// Package email delivers transactional mail over an SMTP relay, with a
// logging fallback for environments where no relay is configured.
package email

import (
	"context"
	"time"
)

// Invitation carries the data rendered into an invitation email.
type Invitation struct {
	// To is the recipient address.
	To string
	// OrgName is the display name of the inviting organization.
	OrgName string
	// InviterName is the display name of the member who sent the invite.
	InviterName string
	// Role is the role offered to the invitee.
	Role string
	// AcceptURL is the link the invitee follows to accept.
	AcceptURL string
	// ExpiresAt is when the invitation stops being acceptable.
	ExpiresAt time.Time
}

// Mailer delivers transactional mail.
//
//go:generate mockgen -package mockemail -source=interface.go -destination=mock/mockemail.go *
type Mailer interface {
	// SendInvitation renders and delivers an invitation email.
	SendInvitation(ctx context.Context, invitation Invitation) error
}
