package domain

import "time"

// Board is a kanban board within a project.
type Board struct {
	ID        BoardID   `json:"id"`
	OrgID     OrgID     `json:"orgId"`
	ProjectID ProjectID `json:"projectId"`

	Name string `json:"name"`
	// Slug is unique within the project.
	Slug string `json:"slug"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DeletedAt time.Time `json:"-"`
}

// Column is a single ordered column on a board. Tasks reference the column
// they currently sit in.
type Column struct {
	ID      ColumnID `json:"id"`
	BoardID BoardID  `json:"boardId"`

	Name     string `json:"name"`
	Position int    `json:"position"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
