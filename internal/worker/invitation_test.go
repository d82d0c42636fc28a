package worker_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lufutu/scrumsan-sub003/internal/email"
	mockemail "github.com/lufutu/scrumsan-sub003/internal/email/mock"
	"github.com/lufutu/scrumsan-sub003/internal/worker"
	"github.com/lufutu/scrumsan-sub003/internal/workspace"
	"github.com/lufutu/scrumsan-sub003/pkg/domain"
	"github.com/lufutu/scrumsan-sub003/pkg/logger"
	mockstorage "github.com/lufutu/scrumsan-sub003/pkg/storage/mock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

var (
	testOrgID        = domain.OrgID(uuid.MustParse("11111111-1111-1111-1111-111111111111"))
	testInvitationID = domain.InvitationID(uuid.MustParse("77777777-7777-7777-7777-777777777777"))
)

func makeJob(id int64) *river.Job[workspace.InvitationEmailArgs] {
	return &river.Job[workspace.InvitationEmailArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   workspace.InvitationEmailArgs{OrgID: testOrgID, InvitationID: testInvitationID},
	}
}

func pendingInvitation() *domain.Invitation {
	return &domain.Invitation{
		ID:        testInvitationID,
		OrgID:     testOrgID,
		Email:     "dev@example.com",
		Role:      domain.RoleMember,
		Token:     "tok-123",
		Status:    domain.InvitationStatusPending,
		InvitedBy: domain.UserID(uuid.New()),
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
}

func TestInvitationEmailWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invitation := pendingInvitation()

	st := mockstorage.NewMockStorage(ctrl)
	st.EXPECT().InvitationByID(gomock.Any(), testOrgID, testInvitationID).Return(invitation, nil)
	st.EXPECT().OrgByID(gomock.Any(), testOrgID).Return(&domain.Organization{
		ID:   testOrgID,
		Name: "Acme",
	}, nil)
	st.EXPECT().MemberByUser(gomock.Any(), testOrgID, invitation.InvitedBy).Return(&domain.Member{
		DisplayName: "Alex",
	}, nil)

	mailer := mockemail.NewMockMailer(ctrl)
	mailer.EXPECT().SendInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg email.Invitation) error {
			require.Equal(t, "dev@example.com", msg.To)
			require.Equal(t, "Acme", msg.OrgName)
			require.Equal(t, "Alex", msg.InviterName)
			require.True(t, strings.HasPrefix(msg.AcceptURL, "http://app.local/invitations/accept?token="))
			require.Contains(t, msg.AcceptURL, "tok-123")

			return nil
		},
	)

	w := worker.NewInvitationEmailWorker(st, mailer, "http://app.local")
	require.NoError(t, w.Work(context.Background(), makeJob(1)))
}

func TestInvitationEmailWorker_Work_RevokedCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invitation := pendingInvitation()
	invitation.Status = domain.InvitationStatusRevoked

	st := mockstorage.NewMockStorage(ctrl)
	st.EXPECT().InvitationByID(gomock.Any(), testOrgID, testInvitationID).Return(invitation, nil)

	w := worker.NewInvitationEmailWorker(st, mockemail.NewMockMailer(ctrl), "http://app.local")

	err := w.Work(context.Background(), makeJob(2))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.True(t, errors.As(err, &cancelErr))
}

func TestInvitationEmailWorker_Work_MissingInvitationCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mockstorage.NewMockStorage(ctrl)
	st.EXPECT().InvitationByID(gomock.Any(), testOrgID, testInvitationID).Return(nil, nil)

	w := worker.NewInvitationEmailWorker(st, mockemail.NewMockMailer(ctrl), "http://app.local")

	err := w.Work(context.Background(), makeJob(3))
	var cancelErr *river.JobCancelError
	require.True(t, errors.As(err, &cancelErr))
}

func TestInvitationEmailWorker_Work_SendFailureRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invitation := pendingInvitation()

	st := mockstorage.NewMockStorage(ctrl)
	st.EXPECT().InvitationByID(gomock.Any(), testOrgID, testInvitationID).Return(invitation, nil)
	st.EXPECT().OrgByID(gomock.Any(), testOrgID).Return(&domain.Organization{ID: testOrgID, Name: "Acme"}, nil)
	st.EXPECT().MemberByUser(gomock.Any(), testOrgID, invitation.InvitedBy).Return(nil, nil)

	mailer := mockemail.NewMockMailer(ctrl)
	mailer.EXPECT().SendInvitation(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	w := worker.NewInvitationEmailWorker(st, mailer, "http://app.local")

	err := w.Work(context.Background(), makeJob(4))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.False(t, errors.As(err, &cancelErr))
}
