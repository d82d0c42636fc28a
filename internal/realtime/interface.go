// Package realtime fans out change notifications to connected clients
// through redis pub/sub. Each organization gets its own channel, and a
// debouncer coalesces mutation bursts so subscribers refetch once
// instead of once per write.
package realtime

import (
	"context"

	"github.com/lufutu/scrumsan-sub003/pkg/domain"
)

// Event tells subscribers which entity changed so they can invalidate
// their caches. It intentionally carries no payload.
type Event struct {
	// Entity is the kind of record that changed, for example "task".
	Entity string `json:"entity"`
	// Action is one of "created", "updated" or "deleted".
	Action string `json:"action"`
	// ID identifies the changed record.
	ID string `json:"id"`
}

// Publisher delivers change events to an organization's channel.
//
//go:generate mockgen -package mockrealtime -source=interface.go -destination=mock/mockrealtime.go *
type Publisher interface {
	// Publish sends the event to every subscriber of the organization.
	Publish(ctx context.Context, orgID domain.OrgID, event Event) error
	// Close releases the publisher's resources.
	Close() error
}
