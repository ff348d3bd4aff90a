package notify

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/nixpig/jobqueue/internal/jobqueue"
)

type registration struct {
	mailbox *Mailbox
	refs    int
}

// Registry is a jobqueue.Notifier that delivers each Notification to the
// Mailbox opened for its submitter. Notifications for submitters with no open
// Mailbox are dropped.
type Registry struct {
	mailboxes    map[string]*registration
	maxMailboxes int
	closed       bool
	logger       *slog.Logger

	mu sync.Mutex
}

// NewRegistry creates a Registry. If maxMailboxes is greater than zero, Open
// fails with jobqueue.ErrResourceExhausted once that many submitters have
// Mailboxes open.
func NewRegistry(maxMailboxes int, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Registry{
		mailboxes:    make(map[string]*registration),
		maxMailboxes: maxMailboxes,
		logger:       logger,
	}
}

// Open returns the Mailbox for submitter, creating it if needed. Each call
// must be paired with a call to Close.
func (r *Registry) Open(submitter string) (*Mailbox, error) {
	if submitter == "" {
		return nil, fmt.Errorf("%w: submitter is empty", jobqueue.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, jobqueue.ErrShuttingDown
	}

	if reg, ok := r.mailboxes[submitter]; ok {
		reg.refs++
		return reg.mailbox, nil
	}

	if r.maxMailboxes > 0 && len(r.mailboxes) >= r.maxMailboxes {
		return nil, fmt.Errorf(
			"%w: %d mailboxes open",
			jobqueue.ErrResourceExhausted,
			len(r.mailboxes),
		)
	}

	reg := &registration{mailbox: newMailbox(), refs: 1}
	r.mailboxes[submitter] = reg

	return reg.mailbox, nil
}

// Close releases a reference to the submitter's Mailbox. The Mailbox is closed
// and removed once every Open has been matched.
func (r *Registry) Close(submitter string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reg, ok := r.mailboxes[submitter]
	if !ok {
		return
	}

	reg.refs--
	if reg.refs > 0 {
		return
	}

	delete(r.mailboxes, submitter)
	reg.mailbox.Close()
}

// CloseAll closes every Mailbox, releasing their readers. Open fails with
// jobqueue.ErrShuttingDown afterwards.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true

	for submitter, reg := range r.mailboxes {
		delete(r.mailboxes, submitter)
		reg.mailbox.Close()
	}
}

// Deliver implements jobqueue.Notifier.
func (r *Registry) Deliver(n jobqueue.Notification) {
	r.mu.Lock()
	reg, ok := r.mailboxes[n.Submitter]
	r.mu.Unlock()

	if !ok {
		r.logger.Debug(
			"drop notification for unknown submitter",
			"job_id", n.JobID,
			"submitter", n.Submitter,
		)

		return
	}

	reg.mailbox.Put(n)
}

// Len returns the number of open Mailboxes.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.mailboxes)
}

// Multi delivers each Notification to every Notifier in turn.
type Multi []jobqueue.Notifier

// Deliver implements jobqueue.Notifier.
func (m Multi) Deliver(n jobqueue.Notification) {
	for _, notifier := range m {
		notifier.Deliver(n)
	}
}
