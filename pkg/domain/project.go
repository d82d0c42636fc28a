package domain

import "time"

// Project groups boards, sprints and tasks under an organization.
type Project struct {
	ID    ProjectID `json:"id"`
	OrgID OrgID     `json:"orgId"`

	Name string `json:"name"`
	// Slug is unique within the organization.
	Slug        string `json:"slug"`
	Description string `json:"description"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DeletedAt time.Time `json:"-"`
}

// Engagement records a member's allocated hours and role on a project. A
// member is considered assigned to a project while they hold an engagement
// that has not ended.
type Engagement struct {
	ID        EngagementID `json:"id"`
	ProjectID ProjectID    `json:"projectId"`
	MemberID  MemberID     `json:"memberId"`

	Role         string `json:"role"`
	HoursPerWeek int    `json:"hoursPerWeek"`

	StartsOn time.Time `json:"startsOn"`
	// EndsOn is zero while the engagement is open.
	EndsOn time.Time `json:"endsOn,omitzero"`

	CreatedAt time.Time `json:"createdAt"`
}
