package domain

import (
	"time"

	"github.com/google/uuid"
)

// Organization is a tenant. Every other entity hangs off an organization and
// is isolated to it.
type Organization struct {
	// ID is the unique identifier of the organization.
	ID OrgID `json:"id"`
	// Name is the display name chosen by the creator.
	Name string `json:"name"`
	// Slug is the URL-safe unique identifier derived from the name. Slugs are
	// globally unique across organizations.
	Slug string `json:"slug"`
	// Description is optional free-form text.
	Description string `json:"description"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the organization was soft-deleted; zero means live.
	DeletedAt time.Time `json:"-"`
}

// Ref addresses an entity by either its UUID or its slug. Request paths accept
// both forms; UUID references to slugged resources are answered with a
// redirect to the canonical slug URL.
type Ref struct {
	// ID is set when the reference parsed as a UUID.
	ID string
	// Slug is set otherwise.
	Slug string
}

// ParseRef classifies a raw path segment as a UUID or a slug reference.
func ParseRef(raw string) Ref {
	if id, err := uuid.Parse(raw); err == nil {
		return Ref{ID: id.String()}
	}

	return Ref{Slug: raw}
}

// IsID reports whether the reference is a UUID reference.
func (r Ref) IsID() bool { return r.ID != "" }

// String returns the raw reference value.
func (r Ref) String() string {
	if r.ID != "" {
		return r.ID
	}

	return r.Slug
}
