package domain

import "time"

// InvitationStatus represents the lifecycle state of an invitation.
type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "PENDING"
	InvitationStatusAccepted InvitationStatus = "ACCEPTED"
	InvitationStatusRevoked  InvitationStatus = "REVOKED"
)

// Invitation is a pending offer for an email address to join an organization
// with a given role. The token is a secret the invitee presents to accept.
type Invitation struct {
	ID    InvitationID `json:"id"`
	OrgID OrgID        `json:"orgId"`

	Email string `json:"email"`
	Role  Role   `json:"role"`
	// PermissionSetID is the permission set the new member will receive on
	// acceptance, if any.
	PermissionSetID *PermissionSetID `json:"permissionSetId,omitempty"`

	// Token is never returned by list endpoints; it only travels in the
	// invitation email.
	Token  string           `json:"-"`
	Status InvitationStatus `json:"status"`

	InvitedBy UserID    `json:"invitedBy"`
	ExpiresAt time.Time `json:"expiresAt"`

	CreatedAt  time.Time `json:"createdAt"`
	AcceptedAt time.Time `json:"acceptedAt,omitzero"`
}
