package domain

import "time"

// ScopedFlags is the capability quartet for categories that distinguish
// between all resources and assigned resources.
type ScopedFlags struct {
	ViewAll        bool `json:"viewAll"`
	ViewAssigned   bool `json:"viewAssigned"`
	ManageAll      bool `json:"manageAll"`
	ManageAssigned bool `json:"manageAssigned"`
}

// TeamFlags covers the team-members category, which has no assigned scope.
type TeamFlags struct {
	ViewAll   bool `json:"viewAll"`
	ManageAll bool `json:"manageAll"`
}

// WorklogFlags covers the worklogs category, which only has a manage flag.
type WorklogFlags struct {
	ManageAll bool `json:"manageAll"`
}

// PermissionConfig is the full boolean capability schema of a permission set.
// The schema is closed: five categories, each with a fixed set of flags.
type PermissionConfig struct {
	TeamMembers TeamFlags    `json:"teamMembers"`
	Projects    ScopedFlags  `json:"projects"`
	Invoicing   ScopedFlags  `json:"invoicing"`
	Clients     ScopedFlags  `json:"clients"`
	Worklogs    WorklogFlags `json:"worklogs"`
}

// PermissionSet is a named, reusable bundle of capability flags that can be
// attached to members in place of their role's default permissions.
type PermissionSet struct {
	ID    PermissionSetID `json:"id"`
	OrgID OrgID           `json:"orgId"`

	Name   string           `json:"name"`
	Config PermissionConfig `json:"config"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
