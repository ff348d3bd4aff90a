// Package notify provides Notifier implementations for delivering job
// outcomes to submitters.
//
// A Registry holds a Mailbox per connected submitter. Notifications for
// submitters without a Mailbox are dropped. Multiple readers can subscribe to
// a Mailbox and each receive every Notification from the beginning.
package notify

import (
	"context"
	"io"
	"sync"

	"github.com/nixpig/jobqueue/internal/jobqueue"
)

// initialMailboxCapacity is the starting size of a Mailbox's buffer. A
// submitter rarely has more than a handful of jobs in flight.
const initialMailboxCapacity = 8

// Mailbox buffers Notifications for a single submitter. Put never blocks on
// readers.
type Mailbox struct {
	// NOTE: the buffer grows for as long as the Mailbox is open. Sessions are
	// expected to be short lived, i.e. a CLI waiting for its job.
	buffer []jobqueue.Notification
	closed bool

	mu   sync.Mutex
	cond sync.Cond
}

func newMailbox() *Mailbox {
	m := &Mailbox{
		buffer: make([]jobqueue.Notification, 0, initialMailboxCapacity),
	}

	m.cond.L = &m.mu

	return m
}

// Put appends n to the Mailbox and wakes any waiting readers. It's a no-op
// once the Mailbox is closed.
func (m *Mailbox) Put(n jobqueue.Notification) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}

	m.buffer = append(m.buffer, n)

	m.cond.Broadcast()
}

// Subscribe returns a Reader positioned at the first Notification in the
// Mailbox.
func (m *Mailbox) Subscribe() *Reader {
	return &Reader{m: m}
}

// Close releases every reader once it has read the buffered Notifications.
func (m *Mailbox) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true

	m.cond.Broadcast()
}

// Reader reads Notifications from a Mailbox, tracking its own position.
type Reader struct {
	position int
	closed   bool

	m *Mailbox
}

// Next returns the next Notification, blocking until one is available. It
// returns io.EOF when the Reader or its Mailbox is closed and everything has
// been read, and the context's error if ctx is done first.
func (r *Reader) Next(ctx context.Context) (jobqueue.Notification, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if !r.ready() && ctx.Done() != nil {
		stop := context.AfterFunc(ctx, func() {
			r.m.mu.Lock()
			r.m.cond.Broadcast()
			r.m.mu.Unlock()
		})
		defer stop()
	}

	// Broadcast is called on 'close', 'new notification' or 'ctx done'.
	for !r.ready() && ctx.Err() == nil {
		r.m.cond.Wait()
	}

	if r.position < len(r.m.buffer) && !r.closed {
		n := r.m.buffer[r.position]
		r.position++

		return n, nil
	}

	if err := ctx.Err(); err != nil && !r.finished() {
		return jobqueue.Notification{}, err
	}

	return jobqueue.Notification{}, io.EOF
}

// Close unsubscribes the Reader and wakes it if it's waiting.
func (r *Reader) Close() error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	r.closed = true

	r.m.cond.Broadcast()

	return nil
}

// ready returns whether Next can return without waiting.
func (r *Reader) ready() bool {
	return r.position < len(r.m.buffer) || r.finished()
}

func (r *Reader) finished() bool {
	return r.closed || (r.m.closed && r.position >= len(r.m.buffer))
}
