package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs.
// The args parameter carries the job payload and opts can customize insertion
// behavior such as queue name or uniqueness. The boolean result reports
// whether the job was actually inserted; unique jobs that already exist are
// skipped.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. It is atomic with
	// respect to any surrounding transaction.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
