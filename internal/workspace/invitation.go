package workspace

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lufutu/scrumsan-sub003/pkg/domain"
	"github.com/lufutu/scrumsan-sub003/pkg/serrors"
	"github.com/lufutu/scrumsan-sub003/pkg/storage"
)

// newInviteToken returns an opaque URL-safe secret for an invitation link.
func newInviteToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("could not generate token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func (w *workspace) Invite(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	params InviteParams) (*domain.Invitation, error) {
	actor, set, err := w.Actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	if err := requireTeamManage(actor, set); err != nil {
		return nil, err
	}

	address := strings.ToLower(strings.TrimSpace(params.Email))
	if address == "" || !strings.Contains(address, "@") {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid email address")
	}
	if !domain.ValidRole(params.Role) {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown role %q", params.Role)
	}
	if params.Role == domain.RoleOwner && actor.Role != domain.RoleOwner {
		return nil, serrors.With(serrors.ErrForbidden, "only owners may invite new owners")
	}
	if params.PermissionSetID != nil {
		res, err := w.storage.PermissionSetByID(ctx, orgID, *params.PermissionSetID)
		if err != nil {
			return nil, fmt.Errorf("could not get permission set: %w", err)
		}
		if res == nil {
			return nil, serrors.With(serrors.ErrNotFound, "permission set not found")
		}
	}

	token, err := newInviteToken()
	if err != nil {
		return nil, err
	}

	var invitation *domain.Invitation
	if err := w.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.CreateInvitation(ctx, domain.Invitation{
			OrgID:           orgID,
			Email:           address,
			Role:            params.Role,
			PermissionSetID: params.PermissionSetID,
			Token:           token,
			Status:          domain.InvitationStatusPending,
			InvitedBy:       userID,
			ExpiresAt:       time.Now().Add(w.options.InviteTTL),
		})
		if err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				return serrors.Wrap(serrors.ErrConflict, err, "a pending invitation for %s already exists", address)
			}

			return fmt.Errorf("could not create invitation: %w", err)
		}
		invitation = res

		// The email job commits atomically with the invitation row.
		if _, err := tx.AddJob(ctx, InvitationEmailArgs{
			OrgID:        orgID,
			InvitationID: invitation.ID,
			maxAttempts:  w.options.MaxAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not enqueue invitation email: %w", err)
		}

		return appendAudit(ctx, tx, orgID, userID, "invitation.create", "invitation",
			invitation.ID.String(), map[string]any{"email": address, "role": string(params.Role)})
	}); err != nil {
		return nil, err
	}

	w.notify(ctx, orgID, "invitation", "created", invitation.ID.String())

	return invitation, nil
}

func (w *workspace) Invitations(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID) ([]domain.Invitation, error) {
	actor, set, err := w.Actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	if err := requireTeamView(actor, set); err != nil {
		return nil, err
	}

	invitations, err := w.storage.Invitations(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("could not list invitations: %w", err)
	}

	return invitations, nil
}

func (w *workspace) AcceptInvitation(ctx context.Context,
	userID domain.UserID,
	params AcceptParams) (*domain.Member, error) {
	invitation, err := w.storage.InvitationByToken(ctx, params.Token)
	if err != nil {
		return nil, fmt.Errorf("could not get invitation: %w", err)
	}
	if invitation == nil {
		return nil, serrors.With(serrors.ErrNotFound, "invitation not found")
	}

	switch {
	case invitation.Status != domain.InvitationStatusPending:
		return nil, serrors.With(serrors.ErrConflict, "invitation is no longer pending")
	case time.Now().After(invitation.ExpiresAt):
		return nil, serrors.With(serrors.ErrConflict, "invitation has expired")
	case !strings.EqualFold(invitation.Email, params.Email):
		// The token alone is not enough, it has to be presented by the
		// invited address.
		return nil, serrors.With(serrors.ErrForbidden, "invitation was issued to a different address")
	}

	var member *domain.Member
	if err := w.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.AddMember(ctx, domain.Member{
			OrgID:           invitation.OrgID,
			UserID:          userID,
			Role:            invitation.Role,
			PermissionSetID: invitation.PermissionSetID,
			DisplayName:     params.DisplayName,
			Email:           invitation.Email,
		})
		if err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				return serrors.Wrap(serrors.ErrConflict, err, "already a member of this organization")
			}

			return fmt.Errorf("could not add member: %w", err)
		}
		member = res

		if _, err := tx.UpdateInvitationStatus(ctx, invitation.ID, domain.InvitationStatusAccepted); err != nil {
			return fmt.Errorf("could not update invitation: %w", err)
		}

		return appendAudit(ctx, tx, invitation.OrgID, userID, "invitation.accept", "invitation",
			invitation.ID.String(), map[string]any{"email": invitation.Email})
	}); err != nil {
		return nil, err
	}

	w.notify(ctx, invitation.OrgID, "member", "created", member.ID.String())

	return member, nil
}

func (w *workspace) RevokeInvitation(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	id domain.InvitationID) error {
	actor, set, err := w.Actor(ctx, orgID, userID)
	if err != nil {
		return err
	}
	if err := requireTeamManage(actor, set); err != nil {
		return err
	}

	invitation, err := w.storage.InvitationByID(ctx, orgID, id)
	if err != nil {
		return fmt.Errorf("could not get invitation: %w", err)
	}
	if invitation == nil {
		return serrors.With(serrors.ErrNotFound, "invitation not found")
	}
	if invitation.Status != domain.InvitationStatusPending {
		return serrors.With(serrors.ErrConflict, "invitation is no longer pending")
	}

	if err := w.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if _, err := tx.UpdateInvitationStatus(ctx, id, domain.InvitationStatusRevoked); err != nil {
			return fmt.Errorf("could not update invitation: %w", err)
		}

		return appendAudit(ctx, tx, orgID, userID, "invitation.revoke", "invitation",
			id.String(), map[string]any{"email": invitation.Email})
	}); err != nil {
		return err
	}

	w.notify(ctx, orgID, "invitation", "deleted", id.String())

	return nil
}
