// Package sequencer implements the client-side request protocol that keeps a
// grid consistent under rapid input: debounce the keystrokes, cancel
// superseded in-flight requests, and discard any response that is no longer
// the newest.
//
// Each logical request attempt is a Ticket with a monotonically increasing
// sequence number and a cancellation context. A response is applied only if
// its ticket's sequence number equals the highest issued so far; everything
// else settles as Superseded or Canceled without touching shared state. The
// sequence comparison is the single point where a response may mutate
// UI-facing state, so the guarantee holds regardless of response arrival
// order: for any burst of parameter changes, the applied result is exactly
// the last settled change's.
//
// Cancellation is cooperative and best-effort (a canceled network call may
// still complete on the wire), so the sequence check is the defense in depth
// behind it, not an optimization.
//
// Typical wiring:
//
//	seq := sequencer.New(func(page *datagrid.Result[datagrid.Row]) {
//	    grid.Render(page)
//	}, sequencer.WithDebounce(300*time.Millisecond))
//
//	searchBox.OnChange(func(term string) {
//	    seq.Submit(func(ctx context.Context) (*datagrid.Result[datagrid.Row], error) {
//	        return client.FetchPage(ctx, term)
//	    })
//	})
package sequencer

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Default timing configuration.
const (
	// DefaultDebounce is the quiet period input must hold before a request
	// is dispatched.
	DefaultDebounce = 250 * time.Millisecond

	// DefaultTimeout bounds how long a ticket may stay in flight. Without
	// it, a hanging request would remain InFlight forever if no newer
	// request ever came to supersede it.
	DefaultTimeout = 15 * time.Second
)

// State is the sequencer's position in its lifecycle.
type State int32

const (
	StateIdle State = iota
	StateDebouncing
	StateInFlight
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDebouncing:
		return "debouncing"
	case StateInFlight:
		return "in_flight"
	default:
		return "unknown"
	}
}

// Outcome is the terminal state of one ticket.
type Outcome int32

const (
	// OutcomeApplied means the response was the newest and was handed to
	// the apply callback.
	OutcomeApplied Outcome = iota

	// OutcomeSuperseded means a newer ticket was issued before this
	// response settled; the response was discarded without side effects.
	OutcomeSuperseded

	// OutcomeCanceled means the ticket's context was canceled before it
	// settled. A canceled operation's late callback is a no-op, not an
	// error.
	OutcomeCanceled

	// OutcomeFailed means the newest ticket's operation failed; the error
	// was surfaced to the error handler.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeSuperseded:
		return "superseded"
	case OutcomeCanceled:
		return "canceled"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Ticket identifies one logical request attempt.
type Ticket struct {
	id     uuid.UUID
	seq    uint64
	ctx    context.Context
	cancel context.CancelFunc

	settled atomic.Bool
	outcome atomic.Int32
}

// ID returns the ticket's unique identifier, for logging and tracing.
func (t *Ticket) ID() uuid.UUID { return t.id }

// Seq returns the ticket's sequence number. Strictly increasing per
// sequencer.
func (t *Ticket) Seq() uint64 { return t.seq }

// Context is the cancellation context the request must run under. It is
// canceled when a newer ticket is issued or the timeout elapses.
func (t *Ticket) Context() context.Context { return t.ctx }

// Outcome returns the settled outcome. Only meaningful after Complete.
func (t *Ticket) Outcome() Outcome { return Outcome(t.outcome.Load()) }

// Option configures a Sequencer.
type Option func(*config)

type config struct {
	debounce  time.Duration
	timeout   time.Duration
	onError   func(error)
	onOutcome func(Outcome)
}

// WithDebounce sets the quiet period before a submitted request dispatches.
// Zero disables debouncing (every Submit dispatches immediately).
func WithDebounce(d time.Duration) Option {
	return func(c *config) {
		if d >= 0 {
			c.debounce = d
		}
	}
}

// WithTimeout bounds how long a single ticket may stay in flight.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithErrorHandler receives failures of the newest ticket. Failures of
// superseded or canceled tickets are swallowed and never reach it.
func WithErrorHandler(fn func(error)) Option {
	return func(c *config) {
		c.onError = fn
	}
}

// WithOutcomeHandler is called with every settled ticket's outcome.
// Intended for instrumentation.
func WithOutcomeHandler(fn func(Outcome)) Option {
	return func(c *config) {
		c.onOutcome = fn
	}
}

// Sequencer serializes one client session's request attempts.
//
// Type parameter T is the response type handed to the apply callback.
type Sequencer[T any] struct {
	apply func(T)
	cfg   config

	baseCtx    context.Context
	baseCancel context.CancelFunc

	mu       sync.Mutex
	seq      uint64
	inFlight *Ticket
	timer    *time.Timer
	state    State
	closed   bool
}

// New creates a sequencer. apply is invoked with a response exactly when its
// ticket is still the newest issued; it runs on the completing request's
// goroutine, never concurrently with itself for the same sequencer as long
// as responses settle through Complete.
func New[T any](apply func(T), opts ...Option) *Sequencer[T] {
	cfg := config{
		debounce: DefaultDebounce,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Sequencer[T]{
		apply:      apply,
		cfg:        cfg,
		baseCtx:    ctx,
		baseCancel: cancel,
		state:      StateIdle,
	}
}

// State reports where the sequencer currently is in its lifecycle.
func (s *Sequencer[T]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Submit registers a user-visible parameter change. The debounce timer
// restarts on every call; only when it elapses uninterrupted does the fetch
// dispatch with a fresh ticket. Calls after Close are ignored.
func (s *Sequencer[T]) Submit(fetch func(context.Context) (T, error)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	if s.timer != nil {
		s.timer.Stop()
	}
	s.state = StateDebouncing
	s.timer = time.AfterFunc(s.cfg.debounce, func() {
		t := s.Issue()
		if t == nil {
			return
		}
		value, err := fetch(t.ctx)
		s.Complete(t, value, err)
	})
}

// Dispatch bypasses the debounce window: it issues a ticket immediately and
// runs fetch on its own goroutine. The ticket is returned so callers can
// observe its outcome. Returns nil after Close.
func (s *Sequencer[T]) Dispatch(fetch func(context.Context) (T, error)) *Ticket {
	t := s.Issue()
	if t == nil {
		return nil
	}
	go func() {
		value, err := fetch(t.ctx)
		s.Complete(t, value, err)
	}()
	return t
}

// Issue allocates the next ticket and cancels any older in-flight ticket's
// context, telling the older network operation to abort. Sequence numbers
// are strictly increasing for the life of the sequencer.
func (s *Sequencer[T]) Issue() *Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	if s.inFlight != nil {
		s.inFlight.cancel()
	}

	s.seq++
	ctx, cancel := context.WithTimeout(s.baseCtx, s.cfg.timeout)
	t := &Ticket{
		id:     uuid.New(),
		seq:    s.seq,
		ctx:    ctx,
		cancel: cancel,
	}
	s.inFlight = t
	s.state = StateInFlight
	return t
}

// Complete settles a ticket with its response. This is the single gate in
// front of the apply callback:
//
//   - the ticket is still the newest issued and err is nil → Applied
//   - the ticket is still the newest and err is non-nil → Failed, err is
//     surfaced to the error handler
//   - a newer ticket exists → Superseded (or Canceled if this ticket's
//     context was canceled); value and err are both discarded
//
// Completing a ticket twice is a no-op returning the first outcome, so a
// canceled operation whose callback still fires cannot double-settle.
func (s *Sequencer[T]) Complete(t *Ticket, value T, err error) Outcome {
	if !t.settled.CompareAndSwap(false, true) {
		return t.Outcome()
	}

	canceled := t.ctx.Err() == context.Canceled
	t.cancel()

	s.mu.Lock()
	isLatest := t.seq == s.seq
	if isLatest {
		s.inFlight = nil
		if s.state == StateInFlight {
			s.state = StateIdle
		}
	}
	s.mu.Unlock()

	var outcome Outcome
	switch {
	case !isLatest:
		outcome = OutcomeSuperseded
		if canceled {
			outcome = OutcomeCanceled
		}
	case err != nil:
		outcome = OutcomeFailed
		if s.cfg.onError != nil {
			s.cfg.onError(err)
		}
	default:
		outcome = OutcomeApplied
		s.apply(value)
	}

	t.outcome.Store(int32(outcome))
	if s.cfg.onOutcome != nil {
		s.cfg.onOutcome(outcome)
	}
	return outcome
}

// Close cancels any pending debounce and in-flight ticket and rejects
// further submissions.
func (s *Sequencer[T]) Close() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.closed = true
	s.state = StateIdle
	s.mu.Unlock()

	s.baseCancel()
}
