package storage

import (
	"context"

	"github.com/lufutu/scrumsan-sub003/pkg/domain"
)

// OrgUpdates describes optional fields applied to an organization. Only
// non-nil fields are written.
type OrgUpdates struct {
	Name        *string
	Slug        *string
	Description *string
}

// OrgStorage defines persistence operations for tenant organizations.
// Lookups exclude soft-deleted rows and return nil when nothing matches.
type OrgStorage interface {
	// CreateOrg inserts an organization and returns the stored row. Returns
	// ErrDuplicate when the slug is taken.
	CreateOrg(ctx context.Context, org domain.Organization) (*domain.Organization, error)
	// OrgByID fetches an organization by ID.
	OrgByID(ctx context.Context, id domain.OrgID) (*domain.Organization, error)
	// OrgBySlug fetches an organization by its unique slug.
	OrgBySlug(ctx context.Context, slug string) (*domain.Organization, error)
	// UpdateOrg applies updates and returns the updated row, or nil when the
	// organization does not exist.
	UpdateOrg(ctx context.Context, id domain.OrgID, updates OrgUpdates) (*domain.Organization, error)
	// OrgsForUser lists all organizations the given user is a member of,
	// ordered by creation time.
	OrgsForUser(ctx context.Context, userID domain.UserID) ([]domain.Organization, error)
}
