package workspace

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"

	"github.com/lufutu/scrumsan-sub003/pkg/domain"
)

// InvitationEmailArgs is the payload of an invitation email job. The
// invitation ID is the unique key so re-submitting the same invitation never
// enqueues a second email.
type InvitationEmailArgs struct {
	// OrgID scopes the invitation lookup.
	OrgID domain.OrgID `json:"org_id"`
	// InvitationID identifies the invitation whose email should be sent.
	InvitationID domain.InvitationID `json:"invitation_id" river:"unique"`

	// maxAttempts configures how many times River retries delivery.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the worker.
func (args InvitationEmailArgs) Kind() string { return "InvitationEmailJob" }

// InsertOpts returns the River options controlling retries and uniqueness.
func (args InvitationEmailArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		// one email job per invitation across all non-discarded states
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
