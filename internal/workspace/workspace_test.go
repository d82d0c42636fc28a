package workspace_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	mockrealtime "github.com/lufutu/scrumsan-sub003/internal/realtime/mock"
	"github.com/lufutu/scrumsan-sub003/internal/workspace"
	"github.com/lufutu/scrumsan-sub003/pkg/domain"
	"github.com/lufutu/scrumsan-sub003/pkg/serrors"
	"github.com/lufutu/scrumsan-sub003/pkg/storage"
	mockstorage "github.com/lufutu/scrumsan-sub003/pkg/storage/mock"
)

var (
	testOrgID  = domain.OrgID(uuid.MustParse("11111111-1111-1111-1111-111111111111"))
	testUserID = domain.UserID(uuid.MustParse("22222222-2222-2222-2222-222222222222"))
)

func newTestWorkspace(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, workspace.Workspace) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	pub := mockrealtime.NewMockPublisher(ctrl)
	pub.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	w := workspace.New(st, pub, workspace.Options{InviteTTL: 7 * 24 * time.Hour, MaxAttempts: 3})

	return ctrl, st, w
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

// expectActor wires the membership lookup every operation starts with.
func expectActor(st *mockstorage.MockStorage, member *domain.Member) {
	st.EXPECT().MemberByUser(gomock.Any(), testOrgID, testUserID).Return(member, nil)
}

func TestWorkspace_CreateOrg(t *testing.T) {
	ctrl, st, w := newTestWorkspace(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CreateOrg(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, org domain.Organization) (*domain.Organization, error) {
				if org.Slug != "acme-web" {
					t.Fatalf("expected slug acme-web, got %q", org.Slug)
				}
				org.ID = testOrgID

				return &org, nil
			},
		)
		tx.EXPECT().AddMember(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, member domain.Member) (*domain.Member, error) {
				if member.Role != domain.RoleOwner {
					t.Fatalf("expected creator to become owner, got %s", member.Role)
				}

				return &member, nil
			},
		)
		tx.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(&domain.AuditEntry{}, nil)
	})

	org, err := w.CreateOrg(context.Background(), testUserID, workspace.OrgParams{Name: "Acme Web"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if org.Slug != "acme-web" {
		t.Fatalf("unexpected slug %q", org.Slug)
	}
}

func TestWorkspace_CreateOrg_SlugCollision(t *testing.T) {
	ctrl, st, w := newTestWorkspace(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		first := tx.EXPECT().CreateOrg(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicate)
		tx.EXPECT().CreateOrg(gomock.Any(), gomock.Any()).After(first).DoAndReturn(
			func(_ context.Context, org domain.Organization) (*domain.Organization, error) {
				if !strings.HasPrefix(org.Slug, "acme-") || org.Slug == "acme" {
					t.Fatalf("expected suffixed slug, got %q", org.Slug)
				}

				return &org, nil
			},
		)
		tx.EXPECT().AddMember(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, member domain.Member) (*domain.Member, error) { return &member, nil },
		)
		tx.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(&domain.AuditEntry{}, nil)
	})

	if _, err := w.CreateOrg(context.Background(), testUserID, workspace.OrgParams{Name: "Acme"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWorkspace_CreateOrg_EmptyName(t *testing.T) {
	_, _, w := newTestWorkspace(t)

	_, err := w.CreateOrg(context.Background(), testUserID, workspace.OrgParams{})
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestWorkspace_OrgByRef(t *testing.T) {
	_, st, w := newTestWorkspace(t)
	org := &domain.Organization{ID: testOrgID, Slug: "acme"}

	// by slug, caller is a member
	st.EXPECT().OrgBySlug(gomock.Any(), "acme").Return(org, nil)
	expectActor(st, testMember(domain.RoleGuest))
	res, err := w.OrgByRef(context.Background(), testUserID, domain.ParseRef("acme"))
	if err != nil || res.ID != testOrgID {
		t.Fatalf("unexpected: res=%+v err=%v", res, err)
	}

	// by UUID
	st.EXPECT().OrgByID(gomock.Any(), testOrgID).Return(org, nil)
	expectActor(st, testMember(domain.RoleMember))
	if _, err := w.OrgByRef(context.Background(), testUserID, domain.ParseRef(testOrgID.String())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// caller is not a member: the org must look like it does not exist
	st.EXPECT().OrgBySlug(gomock.Any(), "acme").Return(org, nil)
	st.EXPECT().MemberByUser(gomock.Any(), testOrgID, testUserID).Return(nil, nil)
	_, err = w.OrgByRef(context.Background(), testUserID, domain.ParseRef("acme"))
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// unknown slug
	st.EXPECT().OrgBySlug(gomock.Any(), "ghost").Return(nil, nil)
	_, err = w.OrgByRef(context.Background(), testUserID, domain.ParseRef("ghost"))
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWorkspace_UpdateOrg(t *testing.T) {
	ctrl, st, w := newTestWorkspace(t)
	name := "Acme 2"

	expectActor(st, testMember(domain.RoleAdmin))
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateOrg(gomock.Any(), testOrgID, gomock.Any()).
			Return(&domain.Organization{ID: testOrgID, Name: name}, nil)
		tx.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(&domain.AuditEntry{}, nil)
	})

	org, err := w.UpdateOrg(context.Background(), testUserID, testOrgID, storage.OrgUpdates{Name: &name})
	if err != nil || org.Name != name {
		t.Fatalf("unexpected: org=%+v err=%v", org, err)
	}
}

func TestWorkspace_UpdateOrg_Forbidden(t *testing.T) {
	_, st, w := newTestWorkspace(t)

	expectActor(st, testMember(domain.RoleMember))
	name := "Acme 2"
	_, err := w.UpdateOrg(context.Background(), testUserID, testOrgID, storage.OrgUpdates{Name: &name})
	if !errors.Is(err, serrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestWorkspace_UpdateOrg_SlugTaken(t *testing.T) {
	ctrl, st, w := newTestWorkspace(t)
	slug := "taken"

	expectActor(st, testMember(domain.RoleOwner))
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateOrg(gomock.Any(), testOrgID, gomock.Any()).Return(nil, storage.ErrDuplicate)
	})

	_, err := w.UpdateOrg(context.Background(), testUserID, testOrgID, storage.OrgUpdates{Slug: &slug})
	if !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestWorkspace_AuditTrail(t *testing.T) {
	_, st, w := newTestWorkspace(t)
	cursorTime := time.Now().Add(-time.Hour).UTC().Truncate(time.Second)

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().AuditEntries(gomock.Any(), testOrgID, gomock.Any(), uint(10)).Return(&storage.AuditPage{
		Entries:    []domain.AuditEntry{{Action: "org.update"}},
		NextCursor: &cursorTime,
	}, nil)

	entries, next, err := w.AuditTrail(context.Background(), testUserID, testOrgID, "", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || next == "" {
		t.Fatalf("unexpected page: entries=%d next=%q", len(entries), next)
	}
}

func TestWorkspace_AuditTrail_MemberForbidden(t *testing.T) {
	_, st, w := newTestWorkspace(t)

	expectActor(st, testMember(domain.RoleMember))
	_, _, err := w.AuditTrail(context.Background(), testUserID, testOrgID, "", 10)
	if !errors.Is(err, serrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestWorkspace_AuditTrail_InvalidCursor(t *testing.T) {
	_, st, w := newTestWorkspace(t)

	expectActor(st, testMember(domain.RoleOwner))
	_, _, err := w.AuditTrail(context.Background(), testUserID, testOrgID, "yesterday", 10)
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}
