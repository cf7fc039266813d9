// Package session implements the explicit proving-session context of
// spec.md §9's design note: one value bundling the term bank, ordering,
// logger and deadlines in place of global mutable state. No operation in
// the other core packages takes a *Session.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/eprover/eprover-sub005/pkg/bank"
	"github.com/eprover/eprover-sub005/pkg/order"
)

// ResourceError is returned when a session's hard CPU/wall-clock limit
// has been exceeded, spec.md §7's Resource error kind.
type ResourceError struct {
	Limit   time.Duration
	Elapsed time.Duration
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("session: resource limit exceeded: elapsed %s >= limit %s", e.Elapsed, e.Limit)
}

// Session bundles one proof attempt's term bank, ordering, logger, and
// deadline state. Soft limits invoke a callback (e.g. to force the
// search into a cheaper final phase) without cancelling the context;
// the hard limit cancels ctx, which long-running iterators must check.
type Session struct {
	ID    uuid.UUID
	Bank  *bank.Bank
	OCB   *order.OCB
	Log   hclog.Logger

	ctx       context.Context
	cancel    context.CancelFunc
	started   time.Time
	hardLimit time.Duration

	softLimit    time.Duration
	softFired    bool
	softCallback func()
}

// New creates a session with the given hard CPU-time limit (zero means
// unbounded). log may be nil, in which case a discarding logger is used.
func New(b *bank.Bank, ocb *order.OCB, log hclog.Logger, hardLimit time.Duration) *Session {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	ctx := context.Background()
	var cancel context.CancelFunc
	if hardLimit > 0 {
		ctx, cancel = context.WithTimeout(ctx, hardLimit)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	return &Session{
		ID:        uuid.New(),
		Bank:      b,
		OCB:       ocb,
		Log:       log.Named("session"),
		ctx:       ctx,
		cancel:    cancel,
		started:   time.Unix(0, 0), // stamped by caller via Start, per workflow rules on Date/time
		hardLimit: hardLimit,
	}
}

// Start records the session's clock origin, used by CheckDeadline to
// compute elapsed time. Call once, right before the given-clause loop
// begins.
func (s *Session) Start(now time.Time) { s.started = now }

// Context returns the session's deadline-bound context, for a caller
// that polls Context().Err() between steps. The CSU iterator and PDT
// traversal in this module do not consult it.
func (s *Session) Context() context.Context { return s.ctx }

// SetSoftLimit arms a soft limit: the first CheckDeadline call at or
// past this elapsed duration invokes cb exactly once, without
// cancelling the context.
func (s *Session) SetSoftLimit(d time.Duration, cb func()) {
	s.softLimit = d
	s.softCallback = cb
	s.softFired = false
}

// CheckDeadline reports the session's hard limit as a *ResourceError
// once elapsed time (measured from now against Start's stamp) reaches
// it, and fires the soft-limit callback (once) when elapsed reaches the
// soft limit first.
func (s *Session) CheckDeadline(now time.Time) error {
	elapsed := now.Sub(s.started)
	if s.softLimit > 0 && !s.softFired && elapsed >= s.softLimit {
		s.softFired = true
		if s.softCallback != nil {
			s.softCallback()
		}
	}
	if s.hardLimit > 0 && elapsed >= s.hardLimit {
		s.cancel()
		return &ResourceError{Limit: s.hardLimit, Elapsed: elapsed}
	}
	return s.ctx.Err()
}

// Close releases the session's context resources.
func (s *Session) Close() { s.cancel() }
