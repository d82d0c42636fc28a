package workspace

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lufutu/scrumsan-sub003/internal/permission"
	"github.com/lufutu/scrumsan-sub003/pkg/domain"
	"github.com/lufutu/scrumsan-sub003/pkg/serrors"
	"github.com/lufutu/scrumsan-sub003/pkg/storage"
)

// validateConfig runs dependency validation and folds every violation into
// one bad-request error so clients see all problems at once.
func validateConfig(config domain.PermissionConfig) error {
	if violations := permission.ValidateDependencies(config); len(violations) > 0 {
		return serrors.With(serrors.ErrBadRequest, "invalid permission config: %s", strings.Join(violations, "; "))
	}

	return nil
}

func (w *workspace) CreatePermissionSet(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	name string,
	config domain.PermissionConfig) (*domain.PermissionSet, error) {
	actor, set, err := w.Actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	if err := requireTeamManage(actor, set); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "name is required")
	}
	if err := validateConfig(config); err != nil {
		return nil, err
	}

	var res *domain.PermissionSet
	if err := w.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.CreatePermissionSet(ctx, domain.PermissionSet{
			OrgID:  orgID,
			Name:   name,
			Config: config,
		})
		if err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				return serrors.Wrap(serrors.ErrConflict, err, "permission set %q already exists", name)
			}

			return fmt.Errorf("could not create permission set: %w", err)
		}
		res = stored

		return appendAudit(ctx, tx, orgID, userID, "permissionSet.create", "permissionSet",
			res.ID.String(), map[string]any{"name": name})
	}); err != nil {
		return nil, err
	}

	w.notify(ctx, orgID, "permissionSet", "created", res.ID.String())

	return res, nil
}

func (w *workspace) PermissionSets(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID) ([]domain.PermissionSet, error) {
	actor, set, err := w.Actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	if err := requireTeamView(actor, set); err != nil {
		return nil, err
	}

	sets, err := w.storage.PermissionSets(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("could not list permission sets: %w", err)
	}

	return sets, nil
}

func (w *workspace) UpdatePermissionSet(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	id domain.PermissionSetID,
	updates storage.PermissionSetUpdates) (*domain.PermissionSet, error) {
	actor, set, err := w.Actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	if err := requireTeamManage(actor, set); err != nil {
		return nil, err
	}

	if updates.Config != nil {
		if err := validateConfig(*updates.Config); err != nil {
			return nil, err
		}
	}

	var res *domain.PermissionSet
	if err := w.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.UpdatePermissionSet(ctx, orgID, id, updates)
		if err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				return serrors.Wrap(serrors.ErrConflict, err, "permission set name already taken")
			}

			return fmt.Errorf("could not update permission set: %w", err)
		}
		if stored == nil {
			return serrors.With(serrors.ErrNotFound, "permission set not found")
		}
		res = stored

		return appendAudit(ctx, tx, orgID, userID, "permissionSet.update", "permissionSet",
			id.String(), nil)
	}); err != nil {
		return nil, err
	}

	// Members holding this set get new effective permissions immediately.
	w.notify(ctx, orgID, "permissionSet", "updated", id.String())

	return res, nil
}

func (w *workspace) DeletePermissionSet(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	id domain.PermissionSetID) error {
	actor, set, err := w.Actor(ctx, orgID, userID)
	if err != nil {
		return err
	}
	if err := requireTeamManage(actor, set); err != nil {
		return err
	}

	if err := w.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		deleted, err := tx.DeletePermissionSet(ctx, orgID, id)
		if err != nil {
			return fmt.Errorf("could not delete permission set: %w", err)
		}
		if !deleted {
			return serrors.With(serrors.ErrNotFound, "permission set not found")
		}

		return appendAudit(ctx, tx, orgID, userID, "permissionSet.delete", "permissionSet",
			id.String(), nil)
	}); err != nil {
		return err
	}

	w.notify(ctx, orgID, "permissionSet", "deleted", id.String())

	return nil
}
