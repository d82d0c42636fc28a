package storage

import (
	"context"
	"time"

	"github.com/lufutu/scrumsan-sub003/pkg/domain"
)

// TaskUpdates describes optional fields applied to a task. Board and sprint
// placement use a pointer-to-pointer so callers can distinguish "leave as is"
// (nil) from "clear" (pointer to nil).
type TaskUpdates struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority

	BoardID          **domain.BoardID
	ColumnID         **domain.ColumnID
	SprintID         **domain.SprintID
	AssigneeMemberID **domain.MemberID

	Position *int
	DueOn    *time.Time
}

// TaskFilter narrows a task listing. Zero-value fields are ignored.
type TaskFilter struct {
	OrgID     domain.OrgID
	ProjectID *domain.ProjectID
	BoardID   *domain.BoardID
	SprintID  *domain.SprintID
	// Backlog restricts the listing to tasks without the given placement.
	Backlog bool

	AssigneeMemberID *domain.MemberID
	Status           *domain.TaskStatus

	// Cursor resumes a previous page. Tasks created at or before the cursor
	// are returned.
	Cursor *time.Time
	Limit  uint
}

// TaskPage is one page of a task listing.
type TaskPage struct {
	Tasks []domain.Task
	// NextCursor is nil on the last page.
	NextCursor *time.Time
}

// TaskStorage defines persistence operations for tasks. Lookups exclude
// soft-deleted rows.
type TaskStorage interface {
	// CreateTask inserts a task.
	CreateTask(ctx context.Context, task domain.Task) (*domain.Task, error)
	// TaskByID fetches a task scoped to an organization. Returns nil when not
	// found.
	TaskByID(ctx context.Context, orgID domain.OrgID, id domain.TaskID) (*domain.Task, error)
	// Tasks lists tasks matching the filter, newest first.
	Tasks(ctx context.Context, filter TaskFilter) (*TaskPage, error)
	// UpdateTask applies updates and returns the updated row, or nil when the
	// task does not exist.
	UpdateTask(ctx context.Context, orgID domain.OrgID, id domain.TaskID, updates TaskUpdates) (*domain.Task, error)
	// DeleteTask soft-deletes a task and returns the deleted row.
	DeleteTask(ctx context.Context, orgID domain.OrgID, id domain.TaskID) (*domain.Task, error)
}
