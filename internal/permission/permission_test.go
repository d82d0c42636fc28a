package permission_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lufutu/scrumsan-sub003/internal/permission"
	"github.com/lufutu/scrumsan-sub003/pkg/domain"
	"github.com/stretchr/testify/require"
)

var allActions = []permission.Action{
	permission.ActionTeamViewAll,
	permission.ActionTeamManageAll,
	permission.ActionProjectsViewAll,
	permission.ActionProjectsViewAssigned,
	permission.ActionProjectsManageAll,
	permission.ActionProjectsManageAssigned,
	permission.ActionInvoicingViewAll,
	permission.ActionInvoicingViewAssigned,
	permission.ActionInvoicingManageAll,
	permission.ActionInvoicingManageAssigned,
	permission.ActionClientsViewAll,
	permission.ActionClientsViewAssigned,
	permission.ActionClientsManageAll,
	permission.ActionClientsManageAssigned,
	permission.ActionWorklogsManageAll,
}

func fullConfig() domain.PermissionConfig {
	all := domain.ScopedFlags{ViewAll: true, ViewAssigned: true, ManageAll: true, ManageAssigned: true}

	return domain.PermissionConfig{
		TeamMembers: domain.TeamFlags{ViewAll: true, ManageAll: true},
		Projects:    all,
		Invoicing:   all,
		Clients:     all,
		Worklogs:    domain.WorklogFlags{ManageAll: true},
	}
}

func TestHasPermission_OwnerAlwaysPasses(t *testing.T) {
	t.Parallel()

	emptySet := &domain.PermissionSet{Config: domain.PermissionConfig{}}
	for _, action := range allActions {
		require.True(t, permission.HasPermission(domain.RoleOwner, nil, action), string(action))
		require.True(t, permission.HasPermission(domain.RoleOwner, emptySet, action), string(action))
	}
	// even unknown actions
	require.True(t, permission.HasPermission(domain.RoleOwner, nil, "nonsense.flag"))
}

func TestHasPermission_GuestOnlyViewsAssignedProjects(t *testing.T) {
	t.Parallel()

	// a permissive set attached to a guest changes nothing
	set := &domain.PermissionSet{Config: fullConfig()}
	for _, action := range allActions {
		want := action == permission.ActionProjectsViewAssigned
		require.Equal(t, want, permission.HasPermission(domain.RoleGuest, nil, action), string(action))
		require.Equal(t, want, permission.HasPermission(domain.RoleGuest, set, action), string(action))
	}
}

func TestHasPermission_MemberDefault(t *testing.T) {
	t.Parallel()

	// without a set, members may only view assigned projects
	for _, action := range allActions {
		want := action == permission.ActionProjectsViewAssigned
		require.Equal(t, want, permission.HasPermission(domain.RoleMember, nil, action), string(action))
	}
}

func TestHasPermission_MemberWithSet(t *testing.T) {
	t.Parallel()

	set := &domain.PermissionSet{Config: domain.PermissionConfig{
		TeamMembers: domain.TeamFlags{ViewAll: true},
		Projects:    domain.ScopedFlags{ViewAll: true, ManageAssigned: true, ViewAssigned: true},
	}}

	cases := map[permission.Action]bool{
		permission.ActionTeamViewAll:           true,
		permission.ActionTeamManageAll:         false,
		permission.ActionProjectsViewAll:       true,
		permission.ActionProjectsManageAll:     false,
		permission.ActionProjectsViewAssigned:  true,
		permission.ActionProjectsManageAssigned: true,
		permission.ActionInvoicingViewAll:      false,
		permission.ActionWorklogsManageAll:     false,
	}
	for action, want := range cases {
		require.Equal(t, want, permission.HasPermission(domain.RoleMember, set, action), string(action))
	}
}

func TestHasPermission_AdminWithAndWithoutSet(t *testing.T) {
	t.Parallel()

	// unattached admins pass everything
	for _, action := range allActions {
		require.True(t, permission.HasPermission(domain.RoleAdmin, nil, action), string(action))
	}

	// an attached set restricts admins like anyone else
	set := &domain.PermissionSet{Config: domain.PermissionConfig{
		Projects: domain.ScopedFlags{ViewAll: true},
	}}
	require.True(t, permission.HasPermission(domain.RoleAdmin, set, permission.ActionProjectsViewAll))
	require.False(t, permission.HasPermission(domain.RoleAdmin, set, permission.ActionProjectsManageAll))
}

func TestHasPermission_UnknownActionsDenied(t *testing.T) {
	t.Parallel()

	set := &domain.PermissionSet{Config: fullConfig()}
	for _, action := range []permission.Action{
		"",
		"projects",
		"projects.",
		"projects.fly",
		"unknown.viewAll",
		"teamMembers.viewAssigned",
		"worklogs.viewAll",
	} {
		require.False(t, permission.HasPermission(domain.RoleMember, set, action), string(action))
	}
}

func TestHasPermissionWithContext_MatchesHasPermission(t *testing.T) {
	t.Parallel()

	sets := []*domain.PermissionSet{
		nil,
		{Config: domain.PermissionConfig{}},
		{Config: fullConfig()},
		{Config: domain.PermissionConfig{Projects: domain.ScopedFlags{ViewAssigned: true, ManageAssigned: true}}},
	}
	roles := []domain.Role{domain.RoleOwner, domain.RoleAdmin, domain.RoleMember, domain.RoleGuest}

	for _, role := range roles {
		for _, set := range sets {
			member := domain.Member{ID: domain.MemberID(uuid.New()), Role: role}
			for _, action := range allActions {
				require.Equal(t,
					permission.HasPermission(role, set, action),
					permission.HasPermissionWithContext(member, set, action),
					"role=%s action=%s", role, action)
			}
		}
	}
}
