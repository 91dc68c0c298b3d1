package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/jask/rollcall/internal/database/repository"
	"github.com/jask/rollcall/internal/roster"
)

const defaultQueueSize = 256

var ErrJournalClosed = errors.New("journal closed")

// Journal persists roster changes. It listens on the roster and writes each
// change on its own goroutine so the UI never waits on sqlite.
type Journal struct {
	State     *repository.RosterRepo
	Events    *repository.EventRepo
	Logger    *slog.Logger
	QueueSize int

	once   sync.Once
	mu     sync.Mutex
	closed bool
	queue  chan roster.Change
	done   chan struct{}
	unsub  func()
}

func (j *Journal) init() {
	j.once.Do(func() {
		size := j.QueueSize
		if size <= 0 {
			size = defaultQueueSize
		}
		j.queue = make(chan roster.Change, size)
		j.done = make(chan struct{})
		if j.Logger == nil {
			j.Logger = slog.New(slog.DiscardHandler)
		}
	})
}

// Attach subscribes the journal to r. Call Run to start writing.
func (j *Journal) Attach(r *roster.Roster) {
	j.init()
	j.unsub = r.Subscribe(j.enqueue)
}

// Resume installs the last saved state into r. It reports whether a state
// was found.
func (j *Journal) Resume(ctx context.Context, r *roster.Roster) (bool, error) {
	state, ok, err := j.State.Load(ctx)
	if err != nil || !ok {
		return false, err
	}
	r.Replace(roster.Snapshot{Active: state.Active, Removed: state.Removed})
	return true, nil
}

func (j *Journal) enqueue(c roster.Change) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.closed {
		j.Logger.Warn("journal closed, dropping change", "kind", c.Kind, "name", c.Name)
		return
	}
	select {
	case j.queue <- c:
	case <-j.done:
		j.Logger.Warn("journal stopped, dropping change", "kind", c.Kind, "name", c.Name)
	}
}

// Run writes queued changes until Close is called and the queue is drained.
// Cancelling ctx abandons whatever is still queued.
func (j *Journal) Run(ctx context.Context) {
	j.init()
	defer close(j.done)
	for {
		select {
		case <-ctx.Done():
			return
		case c, ok := <-j.queue:
			if !ok {
				return
			}
			j.write(ctx, c)
		}
	}
}

func (j *Journal) write(ctx context.Context, c roster.Change) {
	state := repository.RosterState{Active: c.Snapshot.Active, Removed: c.Snapshot.Removed}
	if err := j.State.Save(ctx, state); err != nil {
		j.Logger.Error("save roster", "kind", c.Kind, "name", c.Name, "err", err)
		return
	}
	if j.Events == nil {
		return
	}
	e, err := j.Events.Append(ctx, repository.Event{
		Kind:         string(c.Kind),
		Name:         c.Name,
		ActiveCount:  len(c.Snapshot.Active),
		RemovedCount: len(c.Snapshot.Removed),
	})
	if err != nil {
		j.Logger.Error("append event", "kind", c.Kind, "name", c.Name, "err", err)
		return
	}
	j.Logger.Debug("journaled change", "id", e.ID, "kind", e.Kind, "name", e.Name)
}

// Close unsubscribes, stops accepting changes and waits for Run to drain the
// queue. It must only be called after Run has been started.
func (j *Journal) Close() error {
	j.init()
	if j.unsub != nil {
		j.unsub()
	}
	j.mu.Lock()
	if j.closed {
		j.mu.Unlock()
		return ErrJournalClosed
	}
	j.closed = true
	close(j.queue)
	j.mu.Unlock()

	<-j.done
	return nil
}
