package domain

import "time"

// SprintStatus represents the lifecycle state of a sprint.
type SprintStatus string

const (
	// SprintStatusPlanned indicates the sprint has been created but not started.
	SprintStatusPlanned SprintStatus = "PLANNED"
	// SprintStatusActive indicates the sprint is in progress. A project has at
	// most one active sprint at a time.
	SprintStatusActive SprintStatus = "ACTIVE"
	// SprintStatusCompleted indicates the sprint has been finished.
	SprintStatusCompleted SprintStatus = "COMPLETED"
)

// Sprint is a time-boxed iteration within a project.
type Sprint struct {
	ID        SprintID  `json:"id"`
	ProjectID ProjectID `json:"projectId"`

	Name string `json:"name"`
	// Slug is unique within the project.
	Slug   string       `json:"slug"`
	Goal   string       `json:"goal"`
	Status SprintStatus `json:"status"`

	StartsOn time.Time `json:"startsOn,omitzero"`
	EndsOn   time.Time `json:"endsOn,omitzero"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SprintStats aggregates task counts for a sprint, keyed by task status.
type SprintStats struct {
	SprintID SprintID       `json:"sprintId"`
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
}
