package realtime

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lufutu/scrumsan-sub003/pkg/domain"
	"github.com/lufutu/scrumsan-sub003/pkg/logger"
)

type debounceKey struct {
	orgID  domain.OrgID
	entity string
}

// Debouncer coalesces events per organization and entity kind: the
// first event in a burst starts a timer, later events within the window
// replace the pending one, and only the last event is published when
// the timer fires. A board drag produces one "task updated" per window
// instead of one per reorder.
type Debouncer struct {
	next   Publisher
	window time.Duration

	// baseCtx outlives request contexts so a pending publish is not
	// canceled when the request that queued it returns. Flushes detach
	// from its cancellation so shutdown still delivers pending events.
	baseCtx context.Context

	mu      sync.Mutex
	pending map[debounceKey]*time.Timer
	events  map[debounceKey]Event
	closed  bool
}

// NewDebouncer wraps a publisher with trailing-edge debouncing.
func NewDebouncer(ctx context.Context, next Publisher, window time.Duration) *Debouncer {
	return &Debouncer{
		next:    next,
		window:  window,
		baseCtx: ctx,
		pending: make(map[debounceKey]*time.Timer),
		events:  make(map[debounceKey]Event),
	}
}

func (d *Debouncer) Publish(_ context.Context, orgID domain.OrgID, event Event) error {
	key := debounceKey{orgID: orgID, entity: event.Entity}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}

	d.events[key] = event
	if _, ok := d.pending[key]; ok {
		return nil
	}

	d.pending[key] = time.AfterFunc(d.window, func() {
		if err := d.flush(key); err != nil {
			logger.Get(d.baseCtx).Error("could not publish debounced event", zap.Error(err))
		}
	})

	return nil
}

func (d *Debouncer) flush(key debounceKey) error {
	d.mu.Lock()
	event, ok := d.events[key]
	delete(d.events, key)
	delete(d.pending, key)
	d.mu.Unlock()

	if !ok {
		return nil
	}

	if err := d.next.Publish(context.WithoutCancel(d.baseCtx), key.orgID, event); err != nil {
		return fmt.Errorf("could not publish event for entity %q: %w", key.entity, err)
	}

	return nil
}

// Close flushes everything still pending and closes the wrapped
// publisher.
func (d *Debouncer) Close() error {
	d.mu.Lock()
	d.closed = true

	keys := make([]debounceKey, 0, len(d.pending))
	for key, timer := range d.pending {
		timer.Stop()
		keys = append(keys, key)
	}
	d.mu.Unlock()

	var g errgroup.Group
	for _, key := range keys {
		g.Go(func() error {
			return d.flush(key)
		})
	}
	flushErr := g.Wait()

	if err := d.next.Close(); err != nil {
		return err
	}

	return flushErr
}
