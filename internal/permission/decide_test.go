package permission_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lufutu/scrumsan-sub003/internal/permission"
	"github.com/lufutu/scrumsan-sub003/pkg/domain"
	"github.com/stretchr/testify/require"
)

func member(role domain.Role) domain.Member {
	return domain.Member{
		ID:     domain.MemberID(uuid.New()),
		OrgID:  domain.OrgID(uuid.New()),
		UserID: domain.UserID(uuid.New()),
		Role:   role,
	}
}

func TestCanPerformAction_OwnerAlwaysPasses(t *testing.T) {
	t.Parallel()

	owner := member(domain.RoleOwner)
	for _, verb := range []permission.Verb{
		permission.VerbView, permission.VerbCreate, permission.VerbUpdate, permission.VerbDelete,
	} {
		for _, resource := range []permission.ResourceType{
			permission.ResourceProject, permission.ResourceTask, permission.ResourceMember,
			permission.ResourceInvoice, permission.ResourceClient, permission.ResourceWorklog,
		} {
			require.True(t, permission.CanPerformAction(owner, nil, verb,
				permission.Resource{Type: resource}))
		}
	}
}

func TestCanPerformAction_ResourceOwnerViewsAndUpdatesOwn(t *testing.T) {
	t.Parallel()

	// a guest with no permissions at all still handles their own resources
	guest := member(domain.RoleGuest)
	own := permission.Resource{Type: permission.ResourceTask, OwnerID: guest.UserID}

	require.True(t, permission.CanPerformAction(guest, nil, permission.VerbView, own))
	require.True(t, permission.CanPerformAction(guest, nil, permission.VerbUpdate, own))

	// but not delete or create
	require.False(t, permission.CanPerformAction(guest, nil, permission.VerbDelete, own))
	require.False(t, permission.CanPerformAction(guest, nil, permission.VerbCreate, own))

	// someone else's resource stays closed
	other := permission.Resource{Type: permission.ResourceTask, OwnerID: domain.UserID(uuid.New())}
	require.False(t, permission.CanPerformAction(guest, nil, permission.VerbUpdate, other))
}

func TestCanPerformAction_ScopeMapping(t *testing.T) {
	t.Parallel()

	m := member(domain.RoleMember)

	viewAssignedOnly := &domain.PermissionSet{Config: domain.PermissionConfig{
		Projects: domain.ScopedFlags{ViewAssigned: true},
	}}
	manageAll := &domain.PermissionSet{Config: domain.PermissionConfig{
		Projects: domain.ScopedFlags{ViewAll: true, ManageAll: true},
	}}

	assigned := permission.Resource{Type: permission.ResourceProject, Assigned: true}
	unassigned := permission.Resource{Type: permission.ResourceProject}

	// assigned-only viewer sees assigned projects, nothing else
	require.True(t, permission.CanPerformAction(m, viewAssignedOnly, permission.VerbView, assigned))
	require.False(t, permission.CanPerformAction(m, viewAssignedOnly, permission.VerbView, unassigned))
	require.False(t, permission.CanPerformAction(m, viewAssignedOnly, permission.VerbUpdate, assigned))

	// manage-all covers every project regardless of assignment
	require.True(t, permission.CanPerformAction(m, manageAll, permission.VerbUpdate, unassigned))
	require.True(t, permission.CanPerformAction(m, manageAll, permission.VerbDelete, assigned))
	require.True(t, permission.CanPerformAction(m, manageAll, permission.VerbView, unassigned))
}

func TestCanPerformAction_CategoryMapping(t *testing.T) {
	t.Parallel()

	m := member(domain.RoleMember)
	set := &domain.PermissionSet{Config: domain.PermissionConfig{
		TeamMembers: domain.TeamFlags{ViewAll: true},
		Worklogs:    domain.WorklogFlags{ManageAll: true},
	}}

	// boards, sprints and tasks fall under the projects category
	for _, rt := range []permission.ResourceType{
		permission.ResourceBoard, permission.ResourceSprint, permission.ResourceTask,
	} {
		require.False(t, permission.CanPerformAction(m, set, permission.VerbView,
			permission.Resource{Type: rt}))
	}

	require.True(t, permission.CanPerformAction(m, set, permission.VerbView,
		permission.Resource{Type: permission.ResourceMember}))
	require.False(t, permission.CanPerformAction(m, set, permission.VerbUpdate,
		permission.Resource{Type: permission.ResourceMember}))

	require.True(t, permission.CanPerformAction(m, set, permission.VerbUpdate,
		permission.Resource{Type: permission.ResourceWorklog}))

	// unknown resource types are denied
	require.False(t, permission.CanPerformAction(m, set, permission.VerbView,
		permission.Resource{Type: "spaceship"}))
}

func TestCanPerformAction_GuestAssignedProjects(t *testing.T) {
	t.Parallel()

	guest := member(domain.RoleGuest)

	require.True(t, permission.CanPerformAction(guest, nil, permission.VerbView,
		permission.Resource{Type: permission.ResourceProject, Assigned: true}))
	require.False(t, permission.CanPerformAction(guest, nil, permission.VerbView,
		permission.Resource{Type: permission.ResourceProject}))
	require.False(t, permission.CanPerformAction(guest, nil, permission.VerbUpdate,
		permission.Resource{Type: permission.ResourceProject, Assigned: true}))
}
