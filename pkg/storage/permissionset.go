package storage

import (
	"context"

	"github.com/lufutu/scrumsan-sub003/pkg/domain"
)

// PermissionSetUpdates describes optional fields applied to a permission set.
type PermissionSetUpdates struct {
	Name   *string
	Config *domain.PermissionConfig
}

// PermissionSetStorage defines persistence operations for permission sets.
// Dependency validation happens in the service layer before anything reaches
// this interface.
type PermissionSetStorage interface {
	// CreatePermissionSet inserts a permission set. Returns ErrDuplicate when
	// the name is taken within the organization.
	CreatePermissionSet(ctx context.Context, set domain.PermissionSet) (*domain.PermissionSet, error)
	// PermissionSetByID fetches a permission set scoped to an organization.
	// Returns nil when not found.
	PermissionSetByID(ctx context.Context, orgID domain.OrgID, id domain.PermissionSetID) (*domain.PermissionSet, error)
	// PermissionSets lists an organization's permission sets ordered by name.
	PermissionSets(ctx context.Context, orgID domain.OrgID) ([]domain.PermissionSet, error)
	// UpdatePermissionSet applies updates and returns the updated row, or nil
	// when the set does not exist.
	UpdatePermissionSet(ctx context.Context,
		orgID domain.OrgID,
		id domain.PermissionSetID,
		updates PermissionSetUpdates) (*domain.PermissionSet, error)
	// DeletePermissionSet deletes a permission set. Members referencing it fall
	// back to their role defaults via the schema's ON DELETE SET NULL.
	DeletePermissionSet(ctx context.Context, orgID domain.OrgID, id domain.PermissionSetID) (bool, error)
}
