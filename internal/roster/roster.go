// Package roster tracks which names are active and which have been removed.
//
// A Roster is an explicit state object owned by the composition root and handed
// to whoever needs it. Views observe it through Subscribe instead of polling.
package roster

import (
	"slices"
	"sync"

	"github.com/samber/lo"
)

// ChangeKind identifies the mutation that produced a Change.
type ChangeKind string

const (
	ChangeInitialized ChangeKind = "initialized"
	ChangeRemoved     ChangeKind = "removed"
	ChangeRestored    ChangeKind = "restored"
	ChangeReplaced    ChangeKind = "replaced"
)

// Snapshot is a copy of both lists at one point in time.
type Snapshot struct {
	Active  []string
	Removed []string
}

// Change is delivered to listeners after a mutation has completed.
// Name is empty for initialized and replaced changes.
type Change struct {
	Kind     ChangeKind
	Name     string
	Snapshot Snapshot
}

// Listener receives change notifications.
type Listener func(Change)

// Roster holds the active and removed name lists.
type Roster struct {
	mu        sync.RWMutex
	seed      []string
	active    []string
	removed   []string
	listeners map[int]Listener
	nextID    int
}

// New builds a roster seeded with a copy of seed. Removed starts empty.
func New(seed []string) *Roster {
	r := &Roster{
		seed:      slices.Clone(seed),
		removed:   []string{},
		listeners: map[int]Listener{},
	}
	r.Initialize()
	return r
}

// Initialize resets the active list to the seed. Removed is left as is.
func (r *Roster) Initialize() {
	r.mu.Lock()
	r.active = slices.Clone(r.seed)
	if r.active == nil {
		r.active = []string{}
	}
	snap := r.snapshotLocked()
	r.mu.Unlock()
	r.notify(Change{Kind: ChangeInitialized, Snapshot: snap})
}

// Remove moves the first occurrence of name from active to the end of removed.
// It reports whether anything moved; an absent name is a no-op.
func (r *Roster) Remove(name string) bool {
	return r.move(name, &r.active, &r.removed, ChangeRemoved)
}

// Restore moves the first occurrence of name from removed to the end of active.
// It reports whether anything moved; an absent name is a no-op.
func (r *Roster) Restore(name string) bool {
	return r.move(name, &r.removed, &r.active, ChangeRestored)
}

func (r *Roster) move(name string, from, to *[]string, kind ChangeKind) bool {
	r.mu.Lock()
	idx := lo.IndexOf(*from, name)
	if idx < 0 {
		r.mu.Unlock()
		return false
	}
	*from = slices.Delete(*from, idx, idx+1)
	*to = append(*to, name)
	snap := r.snapshotLocked()
	r.mu.Unlock()

	r.notify(Change{Kind: kind, Name: name, Snapshot: snap})
	return true
}

// Replace installs both lists wholesale, e.g. when resuming a saved session.
func (r *Roster) Replace(s Snapshot) {
	r.mu.Lock()
	r.active = cloneOrEmpty(s.Active)
	r.removed = cloneOrEmpty(s.Removed)
	snap := r.snapshotLocked()
	r.mu.Unlock()
	r.notify(Change{Kind: ChangeReplaced, Snapshot: snap})
}

// Active returns a copy of the active list.
func (r *Roster) Active() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.active)
}

// Removed returns a copy of the removed list.
func (r *Roster) Removed() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.removed)
}

// Seed returns a copy of the seed the roster was built from.
func (r *Roster) Seed() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.seed)
}

func (r *Roster) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotLocked()
}

// Subscribe registers l for change notifications. Listeners are called
// synchronously, in subscription order, after the roster lock is released.
// The returned func unsubscribes and is safe to call more than once.
func (r *Roster) Subscribe(l Listener) func() {
	if l == nil {
		return func() {}
	}
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.listeners[id] = l
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			delete(r.listeners, id)
			r.mu.Unlock()
		})
	}
}

func (r *Roster) notify(c Change) {
	r.mu.RLock()
	ids := lo.Keys(r.listeners)
	slices.Sort(ids)
	ls := make([]Listener, 0, len(ids))
	for _, id := range ids {
		ls = append(ls, r.listeners[id])
	}
	r.mu.RUnlock()

	for _, l := range ls {
		l(c)
	}
}

func (r *Roster) snapshotLocked() Snapshot {
	return Snapshot{Active: slices.Clone(r.active), Removed: slices.Clone(r.removed)}
}

func cloneOrEmpty(s []string) []string {
	if len(s) == 0 {
		return []string{}
	}
	return slices.Clone(s)
}
