package storage

import (
	"context"
	"time"

	"github.com/lufutu/scrumsan-sub003/pkg/domain"
)

// SprintUpdates describes optional fields applied to a sprint.
type SprintUpdates struct {
	Name     *string
	Slug     *string
	Goal     *string
	Status   *domain.SprintStatus
	StartsOn *time.Time
	EndsOn   *time.Time
}

// SprintStorage defines persistence operations for sprints.
type SprintStorage interface {
	// CreateSprint inserts a sprint. Returns ErrDuplicate when the slug is
	// taken within the project, or when a second ACTIVE sprint would violate
	// the one-active-per-project constraint.
	CreateSprint(ctx context.Context, sprint domain.Sprint) (*domain.Sprint, error)
	// SprintByID fetches a sprint scoped to an organization.
	SprintByID(ctx context.Context, orgID domain.OrgID, id domain.SprintID) (*domain.Sprint, error)
	// SprintBySlug fetches a sprint by its project-unique slug.
	SprintBySlug(ctx context.Context, projectID domain.ProjectID, slug string) (*domain.Sprint, error)
	// Sprints lists the sprints of a project, newest first.
	Sprints(ctx context.Context, projectID domain.ProjectID) ([]domain.Sprint, error)
	// UpdateSprint applies updates and returns the updated row. Returns
	// ErrDuplicate when activating a sprint while another one is active.
	UpdateSprint(ctx context.Context, orgID domain.OrgID, id domain.SprintID, updates SprintUpdates) (*domain.Sprint, error)
	// SprintTaskCounts aggregates the sprint's tasks grouped by status.
	SprintTaskCounts(ctx context.Context, id domain.SprintID) (*domain.SprintStats, error)
	// DeleteSprint deletes a sprint. Tasks referencing it move back to the
	// backlog via ON DELETE SET NULL. Reports whether a row was deleted.
	DeleteSprint(ctx context.Context, orgID domain.OrgID, id domain.SprintID) (bool, error)
}
