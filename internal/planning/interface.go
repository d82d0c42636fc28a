// Package planning implements project-scoped operations: projects and their
// engagements, kanban boards and columns, sprints and tasks. Every operation
// is gated by the permission engine; assignment to a project through an open
// engagement is what unlocks the Assigned permission scopes.
package planning

import (
	"context"
	"time"

	"github.com/lufutu/scrumsan-sub003/pkg/domain"
	"github.com/lufutu/scrumsan-sub003/pkg/storage"
)

// ProjectParams carries the caller-supplied fields for creating a project.
type ProjectParams struct {
	Name        string
	Description string
}

// EngagementParams carries the caller-supplied fields for adding an
// engagement.
type EngagementParams struct {
	MemberID     domain.MemberID
	Role         string
	HoursPerWeek int
	StartsOn     time.Time
}

// SprintParams carries the caller-supplied fields for creating a sprint.
type SprintParams struct {
	Name     string
	Goal     string
	StartsOn time.Time
	EndsOn   time.Time
}

// TaskParams carries the caller-supplied fields for creating a task.
type TaskParams struct {
	ProjectID   domain.ProjectID
	Title       string
	Description string
	Priority    domain.TaskPriority
	DueOn       time.Time
}

// TaskPlacement describes where a task should move. Exactly one style of
// placement applies: onto a board column, into a sprint, or back to the
// backlog (clearing everything).
type TaskPlacement struct {
	// ColumnID places the task on the column's board.
	ColumnID *domain.ColumnID
	// Position orders the task within the target column.
	Position *int
	// SprintID places the task into a sprint.
	SprintID *domain.SprintID
	// Backlog clears board, column and sprint placement.
	Backlog bool
}

// TaskChanges carries the mutable scalar fields of a task.
type TaskChanges struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority
	DueOn       *time.Time
}

// TaskListFilter narrows a task listing.
type TaskListFilter struct {
	ProjectID        *domain.ProjectID
	BoardID          *domain.BoardID
	SprintID         *domain.SprintID
	Backlog          bool
	AssigneeMemberID *domain.MemberID
	Status           *domain.TaskStatus

	Cursor string
	Limit  uint
}

//go:generate mockgen -package mockplanning -source=interface.go -destination=mock/mockplanning.go *
type Planning interface {
	// CreateProject creates a project with a slug derived from its name.
	CreateProject(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrgID,
		params ProjectParams) (*domain.Project, error)
	// ProjectByRef resolves a project by slug or UUID reference.
	ProjectByRef(ctx context.Context, userID domain.UserID, orgID domain.OrgID, ref domain.Ref) (*domain.Project, error)
	// Projects lists the projects visible to the caller: everything with the
	// all scope, otherwise only assigned projects.
	Projects(ctx context.Context, userID domain.UserID, orgID domain.OrgID) ([]domain.Project, error)
	// UpdateProject updates a project's name, slug or description.
	UpdateProject(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrgID,
		id domain.ProjectID,
		updates storage.ProjectUpdates) (*domain.Project, error)
	// DeleteProject soft-deletes a project.
	DeleteProject(ctx context.Context, userID domain.UserID, orgID domain.OrgID, id domain.ProjectID) error

	// AddEngagement assigns a member to a project.
	AddEngagement(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrgID,
		projectID domain.ProjectID,
		params EngagementParams) (*domain.Engagement, error)
	// Engagements lists a project's engagements.
	Engagements(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrgID,
		projectID domain.ProjectID) ([]domain.Engagement, error)
	// EndEngagement closes an open engagement.
	EndEngagement(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrgID,
		projectID domain.ProjectID,
		id domain.EngagementID) error

	// CreateBoard creates a board under a project.
	CreateBoard(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrgID,
		projectID domain.ProjectID,
		name string) (*domain.Board, error)
	// BoardByRef resolves a board by slug or UUID reference within a project.
	BoardByRef(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrgID,
		projectID domain.ProjectID,
		ref domain.Ref) (*domain.Board, error)
	// Boards lists a project's boards.
	Boards(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrgID,
		projectID domain.ProjectID) ([]domain.Board, error)
	// UpdateBoard updates a board's name or slug.
	UpdateBoard(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrgID,
		id domain.BoardID,
		updates storage.BoardUpdates) (*domain.Board, error)
	// DeleteBoard soft-deletes a board.
	DeleteBoard(ctx context.Context, userID domain.UserID, orgID domain.OrgID, id domain.BoardID) error

	// CreateColumn adds a column to a board.
	CreateColumn(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrgID,
		boardID domain.BoardID,
		name string,
		position int) (*domain.Column, error)
	// Columns lists a board's columns ordered by position.
	Columns(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrgID,
		boardID domain.BoardID) ([]domain.Column, error)
	// UpdateColumn renames or reorders a column.
	UpdateColumn(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrgID,
		boardID domain.BoardID,
		id domain.ColumnID,
		updates storage.ColumnUpdates) (*domain.Column, error)
	// DeleteColumn removes a column; its tasks fall back to the backlog.
	DeleteColumn(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrgID,
		boardID domain.BoardID,
		id domain.ColumnID) error

	// CreateSprint creates a planned sprint.
	CreateSprint(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrgID,
		projectID domain.ProjectID,
		params SprintParams) (*domain.Sprint, error)
	// SprintByRef resolves a sprint by slug or UUID reference within a project.
	SprintByRef(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrgID,
		projectID domain.ProjectID,
		ref domain.Ref) (*domain.Sprint, error)
	// Sprints lists a project's sprints, newest first.
	Sprints(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrgID,
		projectID domain.ProjectID) ([]domain.Sprint, error)
	// UpdateSprint updates a sprint's name, goal or dates.
	UpdateSprint(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrgID,
		id domain.SprintID,
		updates storage.SprintUpdates) (*domain.Sprint, error)
	// StartSprint transitions a planned sprint to active. At most one sprint
	// per project may be active.
	StartSprint(ctx context.Context, userID domain.UserID, orgID domain.OrgID, id domain.SprintID) (*domain.Sprint, error)
	// FinishSprint transitions an active sprint to completed.
	FinishSprint(ctx context.Context, userID domain.UserID, orgID domain.OrgID, id domain.SprintID) (*domain.Sprint, error)
	// SprintStats aggregates the sprint's task counts by status.
	SprintStats(ctx context.Context, userID domain.UserID, orgID domain.OrgID, id domain.SprintID) (*domain.SprintStats, error)
	// DeleteSprint removes a sprint; its tasks move back to the backlog.
	DeleteSprint(ctx context.Context, userID domain.UserID, orgID domain.OrgID, id domain.SprintID) error

	// CreateTask creates a backlog task in a project.
	CreateTask(ctx context.Context, userID domain.UserID, orgID domain.OrgID, params TaskParams) (*domain.Task, error)
	// TaskByID fetches a single task.
	TaskByID(ctx context.Context, userID domain.UserID, orgID domain.OrgID, id domain.TaskID) (*domain.Task, error)
	// Tasks lists tasks matching the filter, newest first, with an RFC3339
	// cursor for pagination.
	Tasks(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrgID,
		filter TaskListFilter) ([]domain.Task, string, error)
	// UpdateTask changes a task's scalar fields.
	UpdateTask(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrgID,
		id domain.TaskID,
		changes TaskChanges) (*domain.Task, error)
	// MoveTask places a task on a column, into a sprint or back to the
	// backlog.
	MoveTask(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrgID,
		id domain.TaskID,
		placement TaskPlacement) (*domain.Task, error)
	// AssignTask sets or clears the task's assignee.
	AssignTask(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrgID,
		id domain.TaskID,
		assignee *domain.MemberID) (*domain.Task, error)
	// DeleteTask soft-deletes a task.
	DeleteTask(ctx context.Context, userID domain.UserID, orgID domain.OrgID, id domain.TaskID) error
}
