package storage

import (
	"context"
	"time"

	"github.com/lufutu/scrumsan-sub003/pkg/domain"
)

// ProjectUpdates describes optional fields applied to a project.
type ProjectUpdates struct {
	Name        *string
	Slug        *string
	Description *string
}

// ProjectStorage defines persistence operations for projects and member
// engagements. Project lookups exclude soft-deleted rows.
type ProjectStorage interface {
	// CreateProject inserts a project. Returns ErrDuplicate when the slug is
	// taken within the organization.
	CreateProject(ctx context.Context, project domain.Project) (*domain.Project, error)
	// ProjectByID fetches a project scoped to an organization.
	ProjectByID(ctx context.Context, orgID domain.OrgID, id domain.ProjectID) (*domain.Project, error)
	// ProjectBySlug fetches a project by its org-unique slug.
	ProjectBySlug(ctx context.Context, orgID domain.OrgID, slug string) (*domain.Project, error)
	// Projects lists all live projects of an organization.
	Projects(ctx context.Context, orgID domain.OrgID) ([]domain.Project, error)
	// AssignedProjects lists the projects the member holds an open engagement on.
	AssignedProjects(ctx context.Context, orgID domain.OrgID, memberID domain.MemberID) ([]domain.Project, error)
	// UpdateProject applies updates and returns the updated row, or nil when
	// the project does not exist.
	UpdateProject(ctx context.Context,
		orgID domain.OrgID,
		id domain.ProjectID,
		updates ProjectUpdates) (*domain.Project, error)
	// DeleteProject soft-deletes a project and returns the deleted row, or nil
	// when it was not found.
	DeleteProject(ctx context.Context, orgID domain.OrgID, id domain.ProjectID) (*domain.Project, error)

	// AddEngagement inserts an engagement on a project.
	AddEngagement(ctx context.Context, engagement domain.Engagement) (*domain.Engagement, error)
	// Engagements lists all engagements of a project ordered by start date.
	Engagements(ctx context.Context, projectID domain.ProjectID) ([]domain.Engagement, error)
	// EndEngagement closes an open engagement by setting its end date.
	// Reports whether a row was updated.
	EndEngagement(ctx context.Context,
		projectID domain.ProjectID,
		id domain.EngagementID,
		endsOn time.Time) (bool, error)
}
