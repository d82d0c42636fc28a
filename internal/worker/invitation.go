package worker

import (
	"context"
	"fmt"
	"net/url"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"github.com/lufutu/scrumsan-sub003/internal/email"
	"github.com/lufutu/scrumsan-sub003/internal/workspace"
	"github.com/lufutu/scrumsan-sub003/pkg/domain"
	"github.com/lufutu/scrumsan-sub003/pkg/logger"
	"github.com/lufutu/scrumsan-sub003/pkg/storage"
)

// InvitationEmailWorker is a River worker that delivers invitation emails. It
// loads the invitation at execution time rather than carrying the payload in
// the job args, so an invitation revoked between enqueue and execution is
// never mailed out.
type InvitationEmailWorker struct {
	river.WorkerDefaults[workspace.InvitationEmailArgs]

	storage storage.Storage
	mailer  email.Mailer
	// baseURL is the public frontend URL accept links are built against.
	baseURL string
}

// NewInvitationEmailWorker constructs an InvitationEmailWorker.
func NewInvitationEmailWorker(storage storage.Storage, mailer email.Mailer, baseURL string) *InvitationEmailWorker {
	return &InvitationEmailWorker{
		storage: storage,
		mailer:  mailer,
		baseURL: baseURL,
	}
}

// Work sends the invitation email for one job. Invitations that are no longer
// pending or already expired cancel the job instead of retrying.
func (w *InvitationEmailWorker) Work(ctx context.Context, job *river.Job[workspace.InvitationEmailArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID),
		zap.String("invitationID", job.Args.InvitationID.String()))

	invitation, err := w.storage.InvitationByID(ctx, job.Args.OrgID, job.Args.InvitationID)
	if err != nil {
		logger.Error(ctx, "error loading invitation", zap.Error(err))

		return fmt.Errorf("could not get invitation: %w", err)
	}
	if invitation == nil {
		return river.JobCancel(fmt.Errorf("invitation no longer exists")) //nolint: wrapcheck
	}
	if invitation.Status != domain.InvitationStatusPending {
		return river.JobCancel(fmt.Errorf("invitation is %s", invitation.Status)) //nolint: wrapcheck
	}

	org, err := w.storage.OrgByID(ctx, invitation.OrgID)
	if err != nil {
		return fmt.Errorf("could not get organization: %w", err)
	}
	if org == nil {
		return river.JobCancel(fmt.Errorf("organization no longer exists")) //nolint: wrapcheck
	}

	if err := w.mailer.SendInvitation(ctx, email.Invitation{
		To:          invitation.Email,
		OrgName:     org.Name,
		InviterName: w.inviterName(ctx, invitation),
		Role:        string(invitation.Role),
		AcceptURL:   w.acceptURL(invitation.Token),
		ExpiresAt:   invitation.ExpiresAt,
	}); err != nil {
		logger.Error(ctx, "error sending invitation email", zap.Error(err))

		return fmt.Errorf("could not send invitation email: %w", err)
	}

	logger.Info(ctx, "invitation email sent")

	return nil
}

// inviterName resolves a display name for the inviting member. Delivery must
// not fail on a lookup problem, so errors degrade to the organization name
// standing alone in the email.
func (w *InvitationEmailWorker) inviterName(ctx context.Context, invitation *domain.Invitation) string {
	inviter, err := w.storage.MemberByUser(ctx, invitation.OrgID, invitation.InvitedBy)
	if err != nil || inviter == nil {
		return ""
	}
	if inviter.DisplayName != "" {
		return inviter.DisplayName
	}

	return inviter.Email
}

func (w *InvitationEmailWorker) acceptURL(token string) string {
	return w.baseURL + "/invitations/accept?token=" + url.QueryEscape(token)
}
