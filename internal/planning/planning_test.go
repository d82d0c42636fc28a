package planning_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/lufutu/scrumsan-sub003/internal/planning"
	mockrealtime "github.com/lufutu/scrumsan-sub003/internal/realtime/mock"
	"github.com/lufutu/scrumsan-sub003/pkg/domain"
	"github.com/lufutu/scrumsan-sub003/pkg/serrors"
	"github.com/lufutu/scrumsan-sub003/pkg/storage"
	mockstorage "github.com/lufutu/scrumsan-sub003/pkg/storage/mock"
)

var (
	testOrgID     = domain.OrgID(uuid.MustParse("11111111-1111-1111-1111-111111111111"))
	testUserID    = domain.UserID(uuid.MustParse("22222222-2222-2222-2222-222222222222"))
	testProjectID = domain.ProjectID(uuid.MustParse("33333333-3333-3333-3333-333333333333"))
)

func newTestPlanning(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, planning.Planning) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	pub := mockrealtime.NewMockPublisher(ctrl)
	pub.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	p := planning.New(st, pub)

	return ctrl, st, p
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func testMember(role domain.Role) *domain.Member {
	return &domain.Member{
		ID:     domain.MemberID(uuid.New()),
		OrgID:  testOrgID,
		UserID: testUserID,
		Role:   role,
		Email:  "actor@example.com",
	}
}

// memberWithSet attaches a permission set to a plain member. The matching
// PermissionSetByID expectation must be wired by the caller.
func memberWithSet(set *domain.PermissionSet) *domain.Member {
	member := testMember(domain.RoleMember)
	member.PermissionSetID = &set.ID

	return member
}

func assignedOnlySet() *domain.PermissionSet {
	return &domain.PermissionSet{
		ID:    domain.PermissionSetID(uuid.New()),
		OrgID: testOrgID,
		Name:  "contractors",
		Config: domain.PermissionConfig{
			Projects: domain.ScopedFlags{ViewAssigned: true, ManageAssigned: true},
		},
	}
}

// expectActor wires the membership lookup every operation starts with.
func expectActor(st *mockstorage.MockStorage, member *domain.Member) {
	st.EXPECT().MemberByUser(gomock.Any(), testOrgID, testUserID).Return(member, nil)
}

func expectActorWithSet(st *mockstorage.MockStorage, member *domain.Member, set *domain.PermissionSet) {
	expectActor(st, member)
	st.EXPECT().PermissionSetByID(gomock.Any(), testOrgID, set.ID).Return(set, nil)
}

func testProject() *domain.Project {
	return &domain.Project{
		ID:    testProjectID,
		OrgID: testOrgID,
		Name:  "Apollo",
		Slug:  "apollo",
	}
}

func TestPlanning_CreateProject(t *testing.T) {
	ctrl, st, p := newTestPlanning(t)

	expectActor(st, testMember(domain.RoleAdmin))
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CreateProject(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, project domain.Project) (*domain.Project, error) {
				if project.Slug != "apollo-11" {
					t.Fatalf("expected slug apollo-11, got %q", project.Slug)
				}
				project.ID = testProjectID

				return &project, nil
			},
		)
		tx.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(&domain.AuditEntry{}, nil)
	})

	project, err := p.CreateProject(context.Background(), testUserID, testOrgID,
		planning.ProjectParams{Name: "Apollo 11"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if project.ID != testProjectID {
		t.Fatalf("unexpected project %v", project.ID)
	}
}

func TestPlanning_CreateProject_SlugCollision(t *testing.T) {
	ctrl, st, p := newTestPlanning(t)

	expectActor(st, testMember(domain.RoleOwner))
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		first := tx.EXPECT().CreateProject(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicate)
		tx.EXPECT().CreateProject(gomock.Any(), gomock.Any()).After(first).DoAndReturn(
			func(_ context.Context, project domain.Project) (*domain.Project, error) {
				if !strings.HasPrefix(project.Slug, "apollo-") {
					t.Fatalf("expected suffixed slug, got %q", project.Slug)
				}

				return &project, nil
			},
		)
		tx.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(&domain.AuditEntry{}, nil)
	})

	if _, err := p.CreateProject(context.Background(), testUserID, testOrgID,
		planning.ProjectParams{Name: "Apollo"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPlanning_CreateProject_MemberForbidden(t *testing.T) {
	_, st, p := newTestPlanning(t)

	expectActor(st, testMember(domain.RoleMember))

	_, err := p.CreateProject(context.Background(), testUserID, testOrgID,
		planning.ProjectParams{Name: "Apollo"})
	if !errors.Is(err, serrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestPlanning_CreateProject_NonMemberHidden(t *testing.T) {
	_, st, p := newTestPlanning(t)

	st.EXPECT().MemberByUser(gomock.Any(), testOrgID, testUserID).Return(nil, nil)

	_, err := p.CreateProject(context.Background(), testUserID, testOrgID,
		planning.ProjectParams{Name: "Apollo"})
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected not found for non-member, got %v", err)
	}
}

func TestPlanning_ProjectByRef_Slug(t *testing.T) {
	_, st, p := newTestPlanning(t)

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().ProjectBySlug(gomock.Any(), testOrgID, "apollo").Return(testProject(), nil)

	project, err := p.ProjectByRef(context.Background(), testUserID, testOrgID,
		domain.Ref{Slug: "apollo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if project.ID != testProjectID {
		t.Fatalf("unexpected project %v", project.ID)
	}
}

func TestPlanning_ProjectByRef_HiddenFromUnassignedMember(t *testing.T) {
	_, st, p := newTestPlanning(t)

	set := assignedOnlySet()
	member := memberWithSet(set)
	expectActorWithSet(st, member, set)
	st.EXPECT().ProjectBySlug(gomock.Any(), testOrgID, "apollo").Return(testProject(), nil)
	st.EXPECT().AssignedProjects(gomock.Any(), testOrgID, member.ID).Return([]domain.Project{}, nil)

	_, err := p.ProjectByRef(context.Background(), testUserID, testOrgID,
		domain.Ref{Slug: "apollo"})
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected hidden project, got %v", err)
	}
}

func TestPlanning_ProjectByRef_VisibleToAssignedMember(t *testing.T) {
	_, st, p := newTestPlanning(t)

	set := assignedOnlySet()
	member := memberWithSet(set)
	expectActorWithSet(st, member, set)
	st.EXPECT().ProjectBySlug(gomock.Any(), testOrgID, "apollo").Return(testProject(), nil)
	st.EXPECT().AssignedProjects(gomock.Any(), testOrgID, member.ID).
		Return([]domain.Project{*testProject()}, nil)

	project, err := p.ProjectByRef(context.Background(), testUserID, testOrgID,
		domain.Ref{Slug: "apollo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if project.Slug != "apollo" {
		t.Fatalf("unexpected project %q", project.Slug)
	}
}

func TestPlanning_Projects_AllScope(t *testing.T) {
	_, st, p := newTestPlanning(t)

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().Projects(gomock.Any(), testOrgID).Return([]domain.Project{*testProject()}, nil)

	projects, err := p.Projects(context.Background(), testUserID, testOrgID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(projects))
	}
}

func TestPlanning_Projects_AssignedScope(t *testing.T) {
	_, st, p := newTestPlanning(t)

	// Default members fall back to their assigned projects.
	member := testMember(domain.RoleMember)
	expectActor(st, member)
	st.EXPECT().AssignedProjects(gomock.Any(), testOrgID, member.ID).
		Return([]domain.Project{*testProject()}, nil)

	projects, err := p.Projects(context.Background(), testUserID, testOrgID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(projects))
	}
}

func TestPlanning_UpdateProject_NormalizesSlug(t *testing.T) {
	ctrl, st, p := newTestPlanning(t)

	expectActor(st, testMember(domain.RoleAdmin))
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateProject(gomock.Any(), testOrgID, testProjectID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.OrgID, _ domain.ProjectID,
				updates storage.ProjectUpdates) (*domain.Project, error) {
				if updates.Slug == nil || *updates.Slug != "apollo-next" {
					t.Fatalf("expected normalized slug, got %v", updates.Slug)
				}

				return testProject(), nil
			},
		)
		tx.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(&domain.AuditEntry{}, nil)
	})

	raw := "Apollo Next"
	if _, err := p.UpdateProject(context.Background(), testUserID, testOrgID, testProjectID,
		storage.ProjectUpdates{Slug: &raw}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPlanning_DeleteProject_NotFound(t *testing.T) {
	ctrl, st, p := newTestPlanning(t)

	expectActor(st, testMember(domain.RoleOwner))
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().DeleteProject(gomock.Any(), testOrgID, testProjectID).Return(nil, nil)
	})

	err := p.DeleteProject(context.Background(), testUserID, testOrgID, testProjectID)
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPlanning_AddEngagement(t *testing.T) {
	ctrl, st, p := newTestPlanning(t)

	target := &domain.Member{
		ID:    domain.MemberID(uuid.New()),
		OrgID: testOrgID,
		Role:  domain.RoleMember,
	}

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().MemberByID(gomock.Any(), target.ID).Return(target, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().AddEngagement(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, engagement domain.Engagement) (*domain.Engagement, error) {
				if engagement.StartsOn.IsZero() {
					t.Fatal("expected startsOn to default to now")
				}

				return &engagement, nil
			},
		)
		tx.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(&domain.AuditEntry{}, nil)
	})

	if _, err := p.AddEngagement(context.Background(), testUserID, testOrgID, testProjectID,
		planning.EngagementParams{MemberID: target.ID, Role: "developer", HoursPerWeek: 20}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPlanning_AddEngagement_CrossTenantMemberHidden(t *testing.T) {
	_, st, p := newTestPlanning(t)

	stranger := &domain.Member{
		ID:    domain.MemberID(uuid.New()),
		OrgID: domain.OrgID(uuid.New()),
		Role:  domain.RoleMember,
	}

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().MemberByID(gomock.Any(), stranger.ID).Return(stranger, nil)

	_, err := p.AddEngagement(context.Background(), testUserID, testOrgID, testProjectID,
		planning.EngagementParams{MemberID: stranger.ID})
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPlanning_AddEngagement_NegativeHours(t *testing.T) {
	_, st, p := newTestPlanning(t)

	target := &domain.Member{ID: domain.MemberID(uuid.New()), OrgID: testOrgID}
	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().MemberByID(gomock.Any(), target.ID).Return(target, nil)

	_, err := p.AddEngagement(context.Background(), testUserID, testOrgID, testProjectID,
		planning.EngagementParams{MemberID: target.ID, HoursPerWeek: -5})
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestPlanning_EndEngagement_NotOpen(t *testing.T) {
	ctrl, st, p := newTestPlanning(t)

	engagementID := domain.EngagementID(uuid.New())
	expectActor(st, testMember(domain.RoleAdmin))
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().EndEngagement(gomock.Any(), testProjectID, engagementID, gomock.Any()).
			Return(false, nil)
	})

	err := p.EndEngagement(context.Background(), testUserID, testOrgID, testProjectID, engagementID)
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
