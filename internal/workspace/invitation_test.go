package workspace_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/mock/gomock"

	"github.com/lufutu/scrumsan-sub003/internal/workspace"
	"github.com/lufutu/scrumsan-sub003/pkg/domain"
	"github.com/lufutu/scrumsan-sub003/pkg/serrors"
	"github.com/lufutu/scrumsan-sub003/pkg/storage"
	mockstorage "github.com/lufutu/scrumsan-sub003/pkg/storage/mock"
)

func TestWorkspace_Invite(t *testing.T) {
	ctrl, st, w := newTestWorkspace(t)
	invitationID := domain.InvitationID(uuid.New())

	expectActor(st, testMember(domain.RoleAdmin))
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, invitation domain.Invitation) (*domain.Invitation, error) {
				if invitation.Email != "dev@example.com" {
					t.Fatalf("expected normalized email, got %q", invitation.Email)
				}
				if invitation.Token == "" {
					t.Fatalf("expected a token to be generated")
				}
				if invitation.Status != domain.InvitationStatusPending {
					t.Fatalf("expected pending status, got %s", invitation.Status)
				}
				if time.Until(invitation.ExpiresAt) <= 6*24*time.Hour {
					t.Fatalf("expected expiry roughly one TTL away, got %s", invitation.ExpiresAt)
				}
				invitation.ID = invitationID

				return &invitation, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
				emailArgs, ok := args.(workspace.InvitationEmailArgs)
				if !ok || emailArgs.InvitationID != invitationID || emailArgs.OrgID != testOrgID {
					t.Fatalf("unexpected job args: %+v", args)
				}

				return true, nil
			},
		)
		tx.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(&domain.AuditEntry{}, nil)
	})

	invitation, err := w.Invite(context.Background(), testUserID, testOrgID, workspace.InviteParams{
		Email: "  Dev@Example.com ",
		Role:  domain.RoleMember,
	})
	if err != nil || invitation.ID != invitationID {
		t.Fatalf("unexpected: invitation=%+v err=%v", invitation, err)
	}
}

func TestWorkspace_Invite_Validation(t *testing.T) {
	_, st, w := newTestWorkspace(t)

	expectActor(st, testMember(domain.RoleAdmin))
	_, err := w.Invite(context.Background(), testUserID, testOrgID, workspace.InviteParams{
		Email: "not-an-address",
		Role:  domain.RoleMember,
	})
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}

	expectActor(st, testMember(domain.RoleAdmin))
	_, err = w.Invite(context.Background(), testUserID, testOrgID, workspace.InviteParams{
		Email: "dev@example.com",
		Role:  domain.Role("superuser"),
	})
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}

	// admins cannot hand out ownership
	expectActor(st, testMember(domain.RoleAdmin))
	_, err = w.Invite(context.Background(), testUserID, testOrgID, workspace.InviteParams{
		Email: "dev@example.com",
		Role:  domain.RoleOwner,
	})
	if !errors.Is(err, serrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestWorkspace_Invite_PendingDuplicate(t *testing.T) {
	ctrl, st, w := newTestWorkspace(t)

	expectActor(st, testMember(domain.RoleOwner))
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicate)
	})

	_, err := w.Invite(context.Background(), testUserID, testOrgID, workspace.InviteParams{
		Email: "dev@example.com",
		Role:  domain.RoleMember,
	})
	if !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func pendingInvitation() *domain.Invitation {
	return &domain.Invitation{
		ID:        domain.InvitationID(uuid.New()),
		OrgID:     testOrgID,
		Email:     "dev@example.com",
		Role:      domain.RoleMember,
		Token:     "tok",
		Status:    domain.InvitationStatusPending,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestWorkspace_AcceptInvitation(t *testing.T) {
	ctrl, st, w := newTestWorkspace(t)
	invitation := pendingInvitation()

	st.EXPECT().InvitationByToken(gomock.Any(), "tok").Return(invitation, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().AddMember(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, member domain.Member) (*domain.Member, error) {
				if member.OrgID != testOrgID || member.Role != domain.RoleMember {
					t.Fatalf("unexpected membership: %+v", member)
				}
				member.ID = domain.MemberID(uuid.New())

				return &member, nil
			},
		)
		tx.EXPECT().UpdateInvitationStatus(gomock.Any(), invitation.ID, domain.InvitationStatusAccepted).
			Return(invitation, nil)
		tx.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(&domain.AuditEntry{}, nil)
	})

	member, err := w.AcceptInvitation(context.Background(), testUserID, workspace.AcceptParams{
		Token: "tok",
		// case differences on the address do not matter
		Email:       "Dev@Example.com",
		DisplayName: "Dev",
	})
	if err != nil || member.Email != "dev@example.com" {
		t.Fatalf("unexpected: member=%+v err=%v", member, err)
	}
}

func TestWorkspace_AcceptInvitation_Rejections(t *testing.T) {
	_, st, w := newTestWorkspace(t)

	// unknown token
	st.EXPECT().InvitationByToken(gomock.Any(), "tok").Return(nil, nil)
	_, err := w.AcceptInvitation(context.Background(), testUserID, workspace.AcceptParams{Token: "tok", Email: "dev@example.com"})
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// already accepted
	accepted := pendingInvitation()
	accepted.Status = domain.InvitationStatusAccepted
	st.EXPECT().InvitationByToken(gomock.Any(), "tok").Return(accepted, nil)
	_, err = w.AcceptInvitation(context.Background(), testUserID, workspace.AcceptParams{Token: "tok", Email: "dev@example.com"})
	if !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// expired
	expired := pendingInvitation()
	expired.ExpiresAt = time.Now().Add(-time.Minute)
	st.EXPECT().InvitationByToken(gomock.Any(), "tok").Return(expired, nil)
	_, err = w.AcceptInvitation(context.Background(), testUserID, workspace.AcceptParams{Token: "tok", Email: "dev@example.com"})
	if !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// wrong address
	st.EXPECT().InvitationByToken(gomock.Any(), "tok").Return(pendingInvitation(), nil)
	_, err = w.AcceptInvitation(context.Background(), testUserID, workspace.AcceptParams{Token: "tok", Email: "other@example.com"})
	if !errors.Is(err, serrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestWorkspace_AcceptInvitation_AlreadyMember(t *testing.T) {
	ctrl, st, w := newTestWorkspace(t)
	invitation := pendingInvitation()

	st.EXPECT().InvitationByToken(gomock.Any(), "tok").Return(invitation, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().AddMember(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicate)
	})

	_, err := w.AcceptInvitation(context.Background(), testUserID, workspace.AcceptParams{
		Token: "tok",
		Email: "dev@example.com",
	})
	if !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestWorkspace_RevokeInvitation(t *testing.T) {
	ctrl, st, w := newTestWorkspace(t)
	invitation := pendingInvitation()

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().InvitationByID(gomock.Any(), testOrgID, invitation.ID).Return(invitation, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateInvitationStatus(gomock.Any(), invitation.ID, domain.InvitationStatusRevoked).
			Return(invitation, nil)
		tx.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(&domain.AuditEntry{}, nil)
	})

	if err := w.RevokeInvitation(context.Background(), testUserID, testOrgID, invitation.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWorkspace_RevokeInvitation_NotPending(t *testing.T) {
	_, st, w := newTestWorkspace(t)
	invitation := pendingInvitation()
	invitation.Status = domain.InvitationStatusRevoked

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().InvitationByID(gomock.Any(), testOrgID, invitation.ID).Return(invitation, nil)

	err := w.RevokeInvitation(context.Background(), testUserID, testOrgID, invitation.ID)
	if !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}
