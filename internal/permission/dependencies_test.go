package permission_test

import (
	"testing"

	"github.com/lufutu/scrumsan-sub003/internal/permission"
	"github.com/lufutu/scrumsan-sub003/pkg/domain"
	"github.com/stretchr/testify/require"
)

func TestValidateDependencies_ValidConfigs(t *testing.T) {
	t.Parallel()

	for name, config := range map[string]domain.PermissionConfig{
		"empty":      {},
		"all flags":  fullConfig(),
		"view only":  {Projects: domain.ScopedFlags{ViewAll: true, ViewAssigned: true}},
		"worklogs":   {Worklogs: domain.WorklogFlags{ManageAll: true}},
		"consistent": {TeamMembers: domain.TeamFlags{ViewAll: true, ManageAll: true}},
	} {
		require.Empty(t, permission.ValidateDependencies(config), name)
	}
}

func TestValidateDependencies_OneErrorPerViolatedPair(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		config domain.PermissionConfig
		want   int
	}{
		{
			name:   "team manage without view",
			config: domain.PermissionConfig{TeamMembers: domain.TeamFlags{ManageAll: true}},
			want:   1,
		},
		{
			name:   "projects manage all without view all",
			config: domain.PermissionConfig{Projects: domain.ScopedFlags{ManageAll: true}},
			want:   1,
		},
		{
			name:   "projects manage assigned without view assigned",
			config: domain.PermissionConfig{Projects: domain.ScopedFlags{ManageAssigned: true}},
			want:   1,
		},
		{
			name:   "invoicing both scopes violated",
			config: domain.PermissionConfig{Invoicing: domain.ScopedFlags{ManageAll: true, ManageAssigned: true}},
			want:   2,
		},
		{
			name:   "clients both scopes violated",
			config: domain.PermissionConfig{Clients: domain.ScopedFlags{ManageAll: true, ManageAssigned: true}},
			want:   2,
		},
		{
			name: "every pair violated",
			config: domain.PermissionConfig{
				TeamMembers: domain.TeamFlags{ManageAll: true},
				Projects:    domain.ScopedFlags{ManageAll: true, ManageAssigned: true},
				Invoicing:   domain.ScopedFlags{ManageAll: true, ManageAssigned: true},
				Clients:     domain.ScopedFlags{ManageAll: true, ManageAssigned: true},
				Worklogs:    domain.WorklogFlags{ManageAll: true},
			},
			want: 7,
		},
		{
			name: "mixed valid and violated",
			config: domain.PermissionConfig{
				Projects:  domain.ScopedFlags{ViewAll: true, ManageAll: true, ManageAssigned: true},
				Invoicing: domain.ScopedFlags{ViewAssigned: true, ManageAssigned: true},
			},
			want: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			violations := permission.ValidateDependencies(tc.config)
			require.Len(t, violations, tc.want)
			for _, v := range violations {
				require.NotEmpty(t, v)
			}
		})
	}
}

// Property from the decision table: the result is non-empty iff at least one
// manage flag is set while its paired view flag is not. Enumerate every
// single-flag configuration.
func TestValidateDependencies_SingleFlagEnumeration(t *testing.T) {
	t.Parallel()

	type flagCase struct {
		name     string
		config   domain.PermissionConfig
		violates bool
	}
	cases := []flagCase{
		{"team view", domain.PermissionConfig{TeamMembers: domain.TeamFlags{ViewAll: true}}, false},
		{"team manage", domain.PermissionConfig{TeamMembers: domain.TeamFlags{ManageAll: true}}, true},
		{"projects viewAll", domain.PermissionConfig{Projects: domain.ScopedFlags{ViewAll: true}}, false},
		{"projects viewAssigned", domain.PermissionConfig{Projects: domain.ScopedFlags{ViewAssigned: true}}, false},
		{"projects manageAll", domain.PermissionConfig{Projects: domain.ScopedFlags{ManageAll: true}}, true},
		{"projects manageAssigned", domain.PermissionConfig{Projects: domain.ScopedFlags{ManageAssigned: true}}, true},
		{"invoicing manageAll", domain.PermissionConfig{Invoicing: domain.ScopedFlags{ManageAll: true}}, true},
		{"invoicing manageAssigned", domain.PermissionConfig{Invoicing: domain.ScopedFlags{ManageAssigned: true}}, true},
		{"clients manageAll", domain.PermissionConfig{Clients: domain.ScopedFlags{ManageAll: true}}, true},
		{"clients manageAssigned", domain.PermissionConfig{Clients: domain.ScopedFlags{ManageAssigned: true}}, true},
		{"worklogs manage", domain.PermissionConfig{Worklogs: domain.WorklogFlags{ManageAll: true}}, false},
	}

	for _, tc := range cases {
		violations := permission.ValidateDependencies(tc.config)
		if tc.violates {
			require.NotEmpty(t, violations, tc.name)
		} else {
			require.Empty(t, violations, tc.name)
		}
	}
}
