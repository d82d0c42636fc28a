package domain

import "time"

// TaskStatus represents the workflow state of a task.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// TaskPriority orders tasks by urgency.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

// Task is a unit of work. A task always belongs to a project; it sits in the
// backlog until placed on a board column and/or into a sprint.
type Task struct {
	ID        TaskID    `json:"id"`
	OrgID     OrgID     `json:"orgId"`
	ProjectID ProjectID `json:"projectId"`

	// BoardID and ColumnID are nil while the task is not on a board.
	BoardID  *BoardID  `json:"boardId,omitempty"`
	ColumnID *ColumnID `json:"columnId,omitempty"`
	// SprintID is nil while the task is in the backlog.
	SprintID *SprintID `json:"sprintId,omitempty"`

	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`

	// AssigneeMemberID is nil while the task is unassigned.
	AssigneeMemberID *MemberID `json:"assigneeMemberId,omitempty"`

	// Position orders the task within its column.
	Position int       `json:"position"`
	DueOn    time.Time `json:"dueOn,omitzero"`

	CreatedBy UserID    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DeletedAt time.Time `json:"-"`
}
