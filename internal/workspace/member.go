package workspace

import (
	"context"
	"fmt"

	"github.com/lufutu/scrumsan-sub003/pkg/domain"
	"github.com/lufutu/scrumsan-sub003/pkg/serrors"
	"github.com/lufutu/scrumsan-sub003/pkg/storage"
)

// targetMember loads a member and verifies it belongs to the organization, so
// a member ID from another tenant behaves exactly like a missing one.
func (w *workspace) targetMember(ctx context.Context,
	orgID domain.OrgID,
	memberID domain.MemberID) (*domain.Member, error) {
	member, err := w.storage.MemberByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("could not get member: %w", err)
	}
	if member == nil || member.OrgID != orgID {
		return nil, serrors.With(serrors.ErrNotFound, "member not found")
	}

	return member, nil
}

func (w *workspace) Members(ctx context.Context, userID domain.UserID, orgID domain.OrgID) ([]domain.Member, error) {
	actor, set, err := w.Actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	if err := requireTeamView(actor, set); err != nil {
		return nil, err
	}

	members, err := w.storage.Members(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("could not list members: %w", err)
	}

	return members, nil
}

//nolint:gocognit
func (w *workspace) UpdateMember(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	memberID domain.MemberID,
	updates MemberUpdates) (*domain.Member, error) {
	actor, set, err := w.Actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}

	target, err := w.targetMember(ctx, orgID, memberID)
	if err != nil {
		return nil, err
	}

	// Display-name-only updates on your own membership need no extra
	// permission.
	selfRename := target.UserID == userID && updates.Role == nil && updates.PermissionSetID == nil
	if !selfRename {
		if err := requireTeamManage(actor, set); err != nil {
			return nil, err
		}
	}

	stored := storage.MemberUpdates{DisplayName: updates.DisplayName}

	if updates.Role != nil {
		role := *updates.Role
		if !domain.ValidRole(role) {
			return nil, serrors.With(serrors.ErrBadRequest, "unknown role %q", role)
		}
		// Only owners may hand out or take away ownership.
		if (role == domain.RoleOwner || target.Role == domain.RoleOwner) && actor.Role != domain.RoleOwner {
			return nil, serrors.With(serrors.ErrForbidden, "only owners may change ownership")
		}
		if target.Role == domain.RoleOwner && role != domain.RoleOwner {
			owners, err := w.storage.CountMembersByRole(ctx, orgID, domain.RoleOwner)
			if err != nil {
				return nil, fmt.Errorf("could not count owners: %w", err)
			}
			if owners <= 1 {
				return nil, serrors.With(serrors.ErrConflict, "organization must keep at least one owner")
			}
		}
		stored.Role = &role
	}

	if updates.PermissionSetID != nil {
		if *updates.PermissionSetID == nil {
			stored.ClearPermissionSet = true
		} else {
			setID := **updates.PermissionSetID
			res, err := w.storage.PermissionSetByID(ctx, orgID, setID)
			if err != nil {
				return nil, fmt.Errorf("could not get permission set: %w", err)
			}
			if res == nil {
				return nil, serrors.With(serrors.ErrNotFound, "permission set not found")
			}
			stored.PermissionSetID = &setID
		}
	}

	var member *domain.Member
	if err := w.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.UpdateMember(ctx, memberID, stored)
		if err != nil {
			return fmt.Errorf("could not update member: %w", err)
		}
		if res == nil {
			return serrors.With(serrors.ErrNotFound, "member not found")
		}
		member = res

		return appendAudit(ctx, tx, orgID, userID, "member.update", "member",
			memberID.String(), nil)
	}); err != nil {
		return nil, err
	}

	w.notify(ctx, orgID, "member", "updated", memberID.String())

	return member, nil
}

func (w *workspace) RemoveMember(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	memberID domain.MemberID) error {
	actor, set, err := w.Actor(ctx, orgID, userID)
	if err != nil {
		return err
	}

	target, err := w.targetMember(ctx, orgID, memberID)
	if err != nil {
		return err
	}

	if target.UserID != userID {
		if err := requireTeamManage(actor, set); err != nil {
			return err
		}
		if target.Role == domain.RoleOwner && actor.Role != domain.RoleOwner {
			return serrors.With(serrors.ErrForbidden, "only owners may remove an owner")
		}
	}

	if target.Role == domain.RoleOwner {
		owners, err := w.storage.CountMembersByRole(ctx, orgID, domain.RoleOwner)
		if err != nil {
			return fmt.Errorf("could not count owners: %w", err)
		}
		if owners <= 1 {
			return serrors.With(serrors.ErrConflict, "organization must keep at least one owner")
		}
	}

	if err := w.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		removed, err := tx.RemoveMember(ctx, memberID)
		if err != nil {
			return fmt.Errorf("could not remove member: %w", err)
		}
		if !removed {
			return serrors.With(serrors.ErrNotFound, "member not found")
		}

		return appendAudit(ctx, tx, orgID, userID, "member.remove", "member",
			memberID.String(), map[string]any{"email": target.Email})
	}); err != nil {
		return err
	}

	w.notify(ctx, orgID, "member", "deleted", memberID.String())

	return nil
}

func (w *workspace) UpsertProfile(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	memberID domain.MemberID,
	profile domain.Profile) (*domain.Profile, error) {
	actor, set, err := w.Actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}

	target, err := w.targetMember(ctx, orgID, memberID)
	if err != nil {
		return nil, err
	}

	if target.UserID != userID {
		if err := requireTeamManage(actor, set); err != nil {
			return nil, err
		}
	}

	profile.MemberID = memberID
	res, err := w.storage.UpsertProfile(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("could not upsert profile: %w", err)
	}

	return res, nil
}

func (w *workspace) MemberProfile(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	memberID domain.MemberID) (*domain.Profile, error) {
	actor, set, err := w.Actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}

	target, err := w.targetMember(ctx, orgID, memberID)
	if err != nil {
		return nil, err
	}

	if target.UserID != userID {
		if err := requireTeamView(actor, set); err != nil {
			return nil, err
		}
	}

	profile, err := w.storage.ProfileByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("could not get profile: %w", err)
	}
	if profile == nil {
		return nil, serrors.With(serrors.ErrNotFound, "profile not found")
	}

	return profile, nil
}

func (w *workspace) AddTimeOff(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	memberID domain.MemberID,
	entry domain.TimeOffEntry) (*domain.TimeOffEntry, error) {
	actor, set, err := w.Actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}

	target, err := w.targetMember(ctx, orgID, memberID)
	if err != nil {
		return nil, err
	}

	if target.UserID != userID {
		if err := requireTeamManage(actor, set); err != nil {
			return nil, err
		}
	}

	if entry.EndsOn.Before(entry.StartsOn) {
		return nil, serrors.With(serrors.ErrBadRequest, "time off must end on or after its start")
	}

	entry.MemberID = memberID
	res, err := w.storage.AddTimeOff(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("could not add time off: %w", err)
	}

	return res, nil
}

func (w *workspace) TimeOff(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	memberID domain.MemberID) ([]domain.TimeOffEntry, error) {
	actor, set, err := w.Actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}

	target, err := w.targetMember(ctx, orgID, memberID)
	if err != nil {
		return nil, err
	}

	if target.UserID != userID {
		if err := requireTeamView(actor, set); err != nil {
			return nil, err
		}
	}

	entries, err := w.storage.TimeOffByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("could not list time off: %w", err)
	}

	return entries, nil
}

func (w *workspace) DeleteTimeOff(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	memberID domain.MemberID,
	id domain.TimeOffID) error {
	actor, set, err := w.Actor(ctx, orgID, userID)
	if err != nil {
		return err
	}

	target, err := w.targetMember(ctx, orgID, memberID)
	if err != nil {
		return err
	}

	if target.UserID != userID {
		if err := requireTeamManage(actor, set); err != nil {
			return err
		}
	}

	deleted, err := w.storage.DeleteTimeOff(ctx, memberID, id)
	if err != nil {
		return fmt.Errorf("could not delete time off: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "time off entry not found")
	}

	return nil
}
