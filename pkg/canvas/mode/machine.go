// Package mode is the interaction mode controller: which of the canvas's
// click interpretations is currently live. At most one non-idle mode is
// active at any time.
package mode

import (
	"github.com/google/uuid"
)

type Mode int

const (
	Idle Mode = iota
	Connecting
	GroupSelecting
	Tagging
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Connecting:
		return "connecting"
	case GroupSelecting:
		return "group_selecting"
	case Tagging:
		return "tagging"
	}
	return "unknown"
}

// ActionKind discriminates what a note click means under the active mode.
type ActionKind int

const (
	// ActionSelect: idle click, single selection replacing the previous one.
	ActionSelect ActionKind = iota
	// ActionConnectStart: first click in connecting mode, pending source set.
	ActionConnectStart
	// ActionConnectCancel: clicking the pending source again clears it.
	ActionConnectCancel
	// ActionConnectComplete: second click on a different note; a connection
	// should be created from From to To. The machine returns to idle.
	ActionConnectComplete
	// ActionToggleSelect: group-select click; Selected reports membership
	// after the toggle.
	ActionToggleSelect
	// ActionOpenTagging: tagging click; open the tag interface for the note.
	ActionOpenTagging
)

type ClickAction struct {
	Kind     ActionKind
	NoteId   uuid.UUID
	From     uuid.UUID
	To       uuid.UUID
	Selected bool
}

// Machine is re-entrant for the lifetime of the session; it has no terminal
// state. Not safe for concurrent use: clicks arrive from a single
// interaction thread.
type Machine struct {
	mode           Mode
	connectingFrom *uuid.UUID
	selection      map[uuid.UUID]bool
	focused        *uuid.UUID
}

func NewMachine() *Machine {
	return &Machine{
		mode:      Idle,
		selection: make(map[uuid.UUID]bool),
	}
}

func (m *Machine) Mode() Mode {
	return m.mode
}

// Toggle flips the given mode: enabling it forces every other mode off and
// clears all transient state; toggling the active mode returns to idle.
func (m *Machine) Toggle(mode Mode) {
	if mode == Idle || m.mode == mode {
		m.setMode(Idle)
		return
	}
	m.setMode(mode)
}

func (m *Machine) setMode(mode Mode) {
	m.mode = mode
	m.connectingFrom = nil
	m.selection = make(map[uuid.UUID]bool)
	m.focused = nil
}

// ClickNote interprets a note click under the active mode and returns the
// action the caller should perform.
func (m *Machine) ClickNote(id uuid.UUID) ClickAction {
	switch m.mode {
	case Connecting:
		if m.connectingFrom == nil {
			from := id
			m.connectingFrom = &from
			return ClickAction{Kind: ActionConnectStart, NoteId: id}
		}
		if *m.connectingFrom == id {
			// Same note again cancels the pending source; mode stays on.
			m.connectingFrom = nil
			return ClickAction{Kind: ActionConnectCancel, NoteId: id}
		}
		from := *m.connectingFrom
		m.setMode(Idle)
		return ClickAction{Kind: ActionConnectComplete, NoteId: id, From: from, To: id}

	case GroupSelecting:
		if m.selection[id] {
			delete(m.selection, id)
			return ClickAction{Kind: ActionToggleSelect, NoteId: id, Selected: false}
		}
		m.selection[id] = true
		return ClickAction{Kind: ActionToggleSelect, NoteId: id, Selected: true}

	case Tagging:
		return ClickAction{Kind: ActionOpenTagging, NoteId: id}

	default:
		focus := id
		m.focused = &focus
		return ClickAction{Kind: ActionSelect, NoteId: id}
	}
}

// ConnectingFrom returns the pending connection source, if any.
func (m *Machine) ConnectingFrom() *uuid.UUID {
	return m.connectingFrom
}

// Selection returns the group-select membership set as a slice.
func (m *Machine) Selection() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(m.selection))
	for id := range m.selection {
		out = append(out, id)
	}
	return out
}

// Focused returns the idle-mode single selection, if any.
func (m *Machine) Focused() *uuid.UUID {
	return m.focused
}

// ClearSelection empties the group-select set without leaving the mode;
// used after a grouping action is confirmed.
func (m *Machine) ClearSelection() {
	m.selection = make(map[uuid.UUID]bool)
}
