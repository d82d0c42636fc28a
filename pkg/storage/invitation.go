package storage

import (
	"context"

	"github.com/lufutu/scrumsan-sub003/pkg/domain"
)

// InvitationStorage defines persistence operations for invitations.
type InvitationStorage interface {
	// CreateInvitation inserts an invitation. Returns ErrDuplicate when a
	// pending invitation for the same address already exists in the
	// organization.
	CreateInvitation(ctx context.Context, invitation domain.Invitation) (*domain.Invitation, error)
	// InvitationByID fetches an invitation scoped to an organization.
	InvitationByID(ctx context.Context, orgID domain.OrgID, id domain.InvitationID) (*domain.Invitation, error)
	// InvitationByToken fetches an invitation by its opaque token. Returns nil
	// when not found.
	InvitationByToken(ctx context.Context, token string) (*domain.Invitation, error)
	// Invitations lists an organization's invitations, newest first.
	Invitations(ctx context.Context, orgID domain.OrgID) ([]domain.Invitation, error)
	// UpdateInvitationStatus transitions an invitation and returns the updated
	// row, or nil when the invitation does not exist.
	UpdateInvitationStatus(ctx context.Context, id domain.InvitationID, status domain.InvitationStatus) (*domain.Invitation, error)
}
