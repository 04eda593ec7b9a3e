package events

import (
	"time"
)

// EventType represents the type of picker event
type EventType int

const (
	// EventSpinStateChanged signals an animation phase boundary
	// Trigger: Spinner on Start, deceleration entry, settle
	// Consumer: app status line, audio | Payload: *SpinStatePayload
	EventSpinStateChanged EventType = iota

	// EventWinnerPicked signals the settled result of one run
	// Trigger: Spinner finalize, exactly once per run
	// Consumer: app banner, history store, audio | Payload: *WinnerPayload
	EventWinnerPicked

	// EventEntriesChanged signals the active entry list was replaced
	// Trigger: editor save, preset application
	// Consumer: app banner/status reset | Payload: *EntriesChangedPayload
	EventEntriesChanged
)

// Event represents a single picker event with metadata
type Event struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}
