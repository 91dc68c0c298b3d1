package repository

import "time"

// List names the two roster lists as stored in roster_entries.list.
type List string

const (
	ListActive  List = "active"
	ListRemoved List = "removed"
)

// RosterState is the persisted form of both lists.
type RosterState struct {
	Active  []string
	Removed []string
	SavedAt time.Time
}

// Event is one journaled roster change.
type Event struct {
	ID           string
	Kind         string
	Name         string
	ActiveCount  int
	RemovedCount int
	CreatedAt    time.Time
}
