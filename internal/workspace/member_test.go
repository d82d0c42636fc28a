package workspace_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/lufutu/scrumsan-sub003/internal/workspace"
	"github.com/lufutu/scrumsan-sub003/pkg/domain"
	"github.com/lufutu/scrumsan-sub003/pkg/serrors"
	"github.com/lufutu/scrumsan-sub003/pkg/storage"
	mockstorage "github.com/lufutu/scrumsan-sub003/pkg/storage/mock"
)

func otherMember(role domain.Role) *domain.Member {
	return &domain.Member{
		ID:     domain.MemberID(uuid.New()),
		OrgID:  testOrgID,
		UserID: domain.UserID(uuid.New()),
		Role:   role,
		Email:  "target@example.com",
	}
}

func TestWorkspace_Members(t *testing.T) {
	_, st, w := newTestWorkspace(t)

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().Members(gomock.Any(), testOrgID).Return([]domain.Member{*testMember(domain.RoleOwner)}, nil)

	members, err := w.Members(context.Background(), testUserID, testOrgID)
	if err != nil || len(members) != 1 {
		t.Fatalf("unexpected: members=%d err=%v", len(members), err)
	}
}

func TestWorkspace_Members_DefaultMemberForbidden(t *testing.T) {
	_, st, w := newTestWorkspace(t)

	// A member without a permission set only has projects.viewAssigned.
	expectActor(st, testMember(domain.RoleMember))
	_, err := w.Members(context.Background(), testUserID, testOrgID)
	if !errors.Is(err, serrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestWorkspace_Members_MemberWithTeamView(t *testing.T) {
	_, st, w := newTestWorkspace(t)

	setID := domain.PermissionSetID(uuid.New())
	actor := testMember(domain.RoleMember)
	actor.PermissionSetID = &setID

	expectActor(st, actor)
	st.EXPECT().PermissionSetByID(gomock.Any(), testOrgID, setID).Return(&domain.PermissionSet{
		ID:     setID,
		OrgID:  testOrgID,
		Config: domain.PermissionConfig{TeamMembers: domain.TeamFlags{ViewAll: true}},
	}, nil)
	st.EXPECT().Members(gomock.Any(), testOrgID).Return(nil, nil)

	if _, err := w.Members(context.Background(), testUserID, testOrgID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWorkspace_UpdateMember_RoleChange(t *testing.T) {
	ctrl, st, w := newTestWorkspace(t)
	target := otherMember(domain.RoleMember)
	admin := domain.RoleAdmin

	expectActor(st, testMember(domain.RoleOwner))
	st.EXPECT().MemberByID(gomock.Any(), target.ID).Return(target, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateMember(gomock.Any(), target.ID, gomock.Any()).
			Return(&domain.Member{ID: target.ID, Role: admin}, nil)
		tx.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(&domain.AuditEntry{}, nil)
	})

	res, err := w.UpdateMember(context.Background(), testUserID, testOrgID, target.ID, workspace.MemberUpdates{Role: &admin})
	if err != nil || res.Role != admin {
		t.Fatalf("unexpected: res=%+v err=%v", res, err)
	}
}

func TestWorkspace_UpdateMember_OnlyOwnersTouchOwnership(t *testing.T) {
	_, st, w := newTestWorkspace(t)
	target := otherMember(domain.RoleMember)
	owner := domain.RoleOwner

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().MemberByID(gomock.Any(), target.ID).Return(target, nil)

	_, err := w.UpdateMember(context.Background(), testUserID, testOrgID, target.ID, workspace.MemberUpdates{Role: &owner})
	if !errors.Is(err, serrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestWorkspace_UpdateMember_LastOwnerStays(t *testing.T) {
	_, st, w := newTestWorkspace(t)
	actor := testMember(domain.RoleOwner)
	member := domain.RoleMember

	expectActor(st, actor)
	st.EXPECT().MemberByID(gomock.Any(), actor.ID).Return(actor, nil)
	st.EXPECT().CountMembersByRole(gomock.Any(), testOrgID, domain.RoleOwner).Return(int64(1), nil)

	_, err := w.UpdateMember(context.Background(), testUserID, testOrgID, actor.ID, workspace.MemberUpdates{Role: &member})
	if !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestWorkspace_UpdateMember_AttachUnknownSet(t *testing.T) {
	_, st, w := newTestWorkspace(t)
	target := otherMember(domain.RoleMember)
	setID := domain.PermissionSetID(uuid.New())
	ref := &setID

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().MemberByID(gomock.Any(), target.ID).Return(target, nil)
	st.EXPECT().PermissionSetByID(gomock.Any(), testOrgID, setID).Return(nil, nil)

	_, err := w.UpdateMember(context.Background(), testUserID, testOrgID, target.ID,
		workspace.MemberUpdates{PermissionSetID: &ref})
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWorkspace_UpdateMember_DetachSet(t *testing.T) {
	ctrl, st, w := newTestWorkspace(t)
	target := otherMember(domain.RoleMember)
	var detach *domain.PermissionSetID

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().MemberByID(gomock.Any(), target.ID).Return(target, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateMember(gomock.Any(), target.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.MemberID, updates storage.MemberUpdates) (*domain.Member, error) {
				if !updates.ClearPermissionSet {
					t.Fatalf("expected ClearPermissionSet to be set")
				}

				return target, nil
			},
		)
		tx.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(&domain.AuditEntry{}, nil)
	})

	if _, err := w.UpdateMember(context.Background(), testUserID, testOrgID, target.ID,
		workspace.MemberUpdates{PermissionSetID: &detach}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWorkspace_UpdateMember_CrossTenantTargetHidden(t *testing.T) {
	_, st, w := newTestWorkspace(t)
	target := otherMember(domain.RoleMember)
	target.OrgID = domain.OrgID(uuid.New())
	name := "New Name"

	expectActor(st, testMember(domain.RoleOwner))
	st.EXPECT().MemberByID(gomock.Any(), target.ID).Return(target, nil)

	_, err := w.UpdateMember(context.Background(), testUserID, testOrgID, target.ID,
		workspace.MemberUpdates{DisplayName: &name})
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWorkspace_RemoveMember_SelfLeave(t *testing.T) {
	ctrl, st, w := newTestWorkspace(t)
	actor := testMember(domain.RoleMember)

	expectActor(st, actor)
	st.EXPECT().MemberByID(gomock.Any(), actor.ID).Return(actor, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RemoveMember(gomock.Any(), actor.ID).Return(true, nil)
		tx.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(&domain.AuditEntry{}, nil)
	})

	if err := w.RemoveMember(context.Background(), testUserID, testOrgID, actor.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWorkspace_RemoveMember_LastOwner(t *testing.T) {
	_, st, w := newTestWorkspace(t)
	actor := testMember(domain.RoleOwner)

	expectActor(st, actor)
	st.EXPECT().MemberByID(gomock.Any(), actor.ID).Return(actor, nil)
	st.EXPECT().CountMembersByRole(gomock.Any(), testOrgID, domain.RoleOwner).Return(int64(1), nil)

	err := w.RemoveMember(context.Background(), testUserID, testOrgID, actor.ID)
	if !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestWorkspace_RemoveMember_MemberForbidden(t *testing.T) {
	_, st, w := newTestWorkspace(t)
	target := otherMember(domain.RoleMember)

	expectActor(st, testMember(domain.RoleMember))
	st.EXPECT().MemberByID(gomock.Any(), target.ID).Return(target, nil)

	err := w.RemoveMember(context.Background(), testUserID, testOrgID, target.ID)
	if !errors.Is(err, serrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestWorkspace_RemoveMember_AdminCannotRemoveOwner(t *testing.T) {
	_, st, w := newTestWorkspace(t)
	target := otherMember(domain.RoleOwner)

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().MemberByID(gomock.Any(), target.ID).Return(target, nil)

	err := w.RemoveMember(context.Background(), testUserID, testOrgID, target.ID)
	if !errors.Is(err, serrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestWorkspace_UpsertProfile_Self(t *testing.T) {
	_, st, w := newTestWorkspace(t)
	actor := testMember(domain.RoleGuest)

	expectActor(st, actor)
	st.EXPECT().MemberByID(gomock.Any(), actor.ID).Return(actor, nil)
	st.EXPECT().UpsertProfile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, profile domain.Profile) (*domain.Profile, error) {
			if profile.MemberID != actor.ID {
				t.Fatalf("profile bound to wrong member")
			}

			return &profile, nil
		},
	)

	if _, err := w.UpsertProfile(context.Background(), testUserID, testOrgID, actor.ID,
		domain.Profile{Title: "Engineer"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWorkspace_UpsertProfile_OtherForbidden(t *testing.T) {
	_, st, w := newTestWorkspace(t)
	target := otherMember(domain.RoleMember)

	expectActor(st, testMember(domain.RoleMember))
	st.EXPECT().MemberByID(gomock.Any(), target.ID).Return(target, nil)

	_, err := w.UpsertProfile(context.Background(), testUserID, testOrgID, target.ID, domain.Profile{})
	if !errors.Is(err, serrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestWorkspace_AddTimeOff_Validation(t *testing.T) {
	_, st, w := newTestWorkspace(t)
	actor := testMember(domain.RoleMember)

	expectActor(st, actor)
	st.EXPECT().MemberByID(gomock.Any(), actor.ID).Return(actor, nil)

	start := time.Now()
	_, err := w.AddTimeOff(context.Background(), testUserID, testOrgID, actor.ID, domain.TimeOffEntry{
		StartsOn: start,
		EndsOn:   start.Add(-24 * time.Hour),
	})
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestWorkspace_DeleteTimeOff_NotFound(t *testing.T) {
	_, st, w := newTestWorkspace(t)
	actor := testMember(domain.RoleMember)
	entryID := domain.TimeOffID(uuid.New())

	expectActor(st, actor)
	st.EXPECT().MemberByID(gomock.Any(), actor.ID).Return(actor, nil)
	st.EXPECT().DeleteTimeOff(gomock.Any(), actor.ID, entryID).Return(false, nil)

	err := w.DeleteTimeOff(context.Background(), testUserID, testOrgID, actor.ID, entryID)
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
