package repotypes

import (
	"time"
)

type EventOrder int

const (
	NewestFirst EventOrder = iota
	OldestFirst
	// MostSevereFirst orders by status severity, newest first among equals.
	MostSevereFirst
)

// EventFilter selects events of one service with start in [From, To).
// Zero bounds are open. MinSeverity, when set, keeps only events whose
// status is at least that severe.
type EventFilter struct {
	ServiceID   int64
	From        time.Time
	To          time.Time
	MinSeverity int
	Limit       int
	Order       EventOrder
}
