package state

import (
	"fmt"
	"time"
)

// EventKind names what happened. Events carry parameters rather than text so
// that wording and language are decided by a Labeler at display time.
type EventKind string

const (
	EventProjectInitialized EventKind = "project_initialized"
	EventAddedLayer         EventKind = "added_layer"
	EventRemovedLayer       EventKind = "removed_layer"
	EventRenamedLayer       EventKind = "renamed_layer"
	EventMovedLayer         EventKind = "moved_layer"
	EventAddedObject        EventKind = "added_obj"
	EventAddRejected        EventKind = "add_rejected"
	EventRemovedObject      EventKind = "removed_obj"
	EventDeletedObjects     EventKind = "deleted_objs"
	EventGroupedObjects     EventKind = "grouped_objs"
	EventUngroupedObjects   EventKind = "ungrouped_objs"
	EventChangedColor       EventKind = "changed_color_objs"
	EventMovedForward       EventKind = "moved_objs_forward"
	EventMovedBackward      EventKind = "moved_objs_backward"
	EventMovedToFront       EventKind = "moved_objs_front"
	EventMovedToBack        EventKind = "moved_objs_back"
	EventCanvasCleared      EventKind = "canvas_cleared"
	EventLegacyLoaded       EventKind = "legacy_loaded"
	EventImported           EventKind = "imported"
	EventNote               EventKind = "note"
)

// Event is one activity log entry.
type Event struct {
	Seq   uint64    `json:"seq"`
	Time  time.Time `json:"time"`
	Kind  EventKind `json:"kind"`
	Name  string    `json:"name,omitempty"`
	Type  string    `json:"type,omitempty"`
	Count int       `json:"count,omitempty"`

	// Message holds free text for EventNote, such as entries carried over
	// from files that predate structured events.
	Message string `json:"message,omitempty"`
}

// MaxLogEntries bounds the log; the oldest entries are dropped first.
const MaxLogEntries = 100

// Log is an append-only, size-bounded activity log.
type Log struct {
	clock   *Clock
	entries []Event
}

func newLog(clock *Clock) *Log {
	return &Log{clock: clock}
}

// Append stamps e and adds it, evicting the oldest entry past the cap.
func (l *Log) Append(e Event) Event {
	e.Seq = l.clock.Tick()
	e.Time = l.clock.Now()
	l.push(e)
	return e
}

func (l *Log) push(e Event) {
	l.entries = append(l.entries, e)
	if over := len(l.entries) - MaxLogEntries; over > 0 {
		l.entries = append(l.entries[:0], l.entries[over:]...)
	}
}

// Entries returns the log oldest first. The slice is a copy.
func (l *Log) Entries() []Event {
	return append([]Event(nil), l.entries...)
}

// Len returns the number of retained entries.
func (l *Log) Len() int { return len(l.entries) }

// Last returns the newest entry.
func (l *Log) Last() (Event, bool) {
	if len(l.entries) == 0 {
		return Event{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// replace swaps in restored entries, keeping the clock ahead of them.
func (l *Log) replace(entries []Event) {
	l.entries = nil
	for _, e := range entries {
		l.clock.Update(e.Seq)
		l.push(e)
	}
}

// Labeler turns an event into user-facing text. Front ends inject one per
// language.
type Labeler interface {
	Label(e Event) string
}

// LabelFunc adapts a function to Labeler.
type LabelFunc func(Event) string

func (f LabelFunc) Label(e Event) string { return f(e) }

// EnglishLabels is the built-in English wording.
var EnglishLabels Labeler = LabelFunc(englishLabel)

func englishLabel(e Event) string {
	switch e.Kind {
	case EventProjectInitialized:
		return "Project initialized"
	case EventAddedLayer:
		return fmt.Sprintf("Added layer: %s", e.Name)
	case EventRemovedLayer:
		return fmt.Sprintf("Removed layer: %s", e.Name)
	case EventRenamedLayer:
		return fmt.Sprintf("Renamed layer to %s", e.Name)
	case EventMovedLayer:
		return fmt.Sprintf("Moved layer %s", e.Name)
	case EventAddedObject:
		return fmt.Sprintf("Added %s", e.Type)
	case EventAddRejected:
		return fmt.Sprintf("Layer %s is locked, %s not added", e.Name, e.Type)
	case EventRemovedObject:
		return fmt.Sprintf("Removed %s", e.Type)
	case EventDeletedObjects:
		return fmt.Sprintf("Deleted %d objects", e.Count)
	case EventGroupedObjects:
		return fmt.Sprintf("Grouped %d objects", e.Count)
	case EventUngroupedObjects:
		return fmt.Sprintf("Ungrouped %d groups", e.Count)
	case EventChangedColor:
		return fmt.Sprintf("Changed color of %d objects", e.Count)
	case EventMovedForward:
		return "Brought objects forward"
	case EventMovedBackward:
		return "Sent objects backward"
	case EventMovedToFront:
		return "Brought objects to front"
	case EventMovedToBack:
		return "Sent objects to back"
	case EventCanvasCleared:
		return "Canvas cleared"
	case EventLegacyLoaded:
		return "Legacy file loaded"
	case EventImported:
		return fmt.Sprintf("Imported %s (%d pixels)", e.Name, e.Count)
	case EventNote:
		return e.Message
	}
	return string(e.Kind)
}
