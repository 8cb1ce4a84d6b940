package mode

import (
	"testing"

	"github.com/google/uuid"
)

func TestModeExclusivity(t *testing.T) {
	tests := []struct {
		name  string
		first Mode
		then  Mode
	}{
		{"group selecting then tagging", GroupSelecting, Tagging},
		{"connecting then group selecting", Connecting, GroupSelecting},
		{"tagging then connecting", Tagging, Connecting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			m.Toggle(tt.first)

			// Build up transient state in the first mode.
			m.ClickNote(uuid.New())
			m.ClickNote(uuid.New())

			m.Toggle(tt.then)

			if m.Mode() != tt.then {
				t.Errorf("mode = %v, want %v", m.Mode(), tt.then)
			}
			if len(m.Selection()) != 0 {
				t.Errorf("selection = %d entries, want empty", len(m.Selection()))
			}
			if m.ConnectingFrom() != nil {
				t.Errorf("connectingFrom = %v, want nil", m.ConnectingFrom())
			}
		})
	}
}

func TestToggleSameModeReturnsToIdle(t *testing.T) {
	m := NewMachine()
	m.Toggle(Connecting)
	m.ClickNote(uuid.New())

	m.Toggle(Connecting)

	if m.Mode() != Idle {
		t.Errorf("mode = %v, want idle", m.Mode())
	}
	if m.ConnectingFrom() != nil {
		t.Errorf("connectingFrom survived the toggle off")
	}
}

func TestConnectingClickSemantics(t *testing.T) {
	m := NewMachine()
	m.Toggle(Connecting)

	a := uuid.New()
	b := uuid.New()

	// First click records the pending source.
	action := m.ClickNote(a)
	if action.Kind != ActionConnectStart {
		t.Fatalf("first click = %v, want connect start", action.Kind)
	}
	if m.ConnectingFrom() == nil || *m.ConnectingFrom() != a {
		t.Fatalf("pending source not recorded")
	}

	// Clicking the same note cancels the source but stays in the mode.
	action = m.ClickNote(a)
	if action.Kind != ActionConnectCancel {
		t.Fatalf("same-note click = %v, want cancel", action.Kind)
	}
	if m.ConnectingFrom() != nil {
		t.Fatalf("pending source not cleared on cancel")
	}
	if m.Mode() != Connecting {
		t.Fatalf("mode = %v, want still connecting", m.Mode())
	}

	// A fresh source and a different target complete the connection.
	m.ClickNote(a)
	action = m.ClickNote(b)
	if action.Kind != ActionConnectComplete {
		t.Fatalf("second click = %v, want connect complete", action.Kind)
	}
	if action.From != a || action.To != b {
		t.Errorf("connection endpoints = %v -> %v, want %v -> %v", action.From, action.To, a, b)
	}
	if m.Mode() != Idle {
		t.Errorf("mode after completion = %v, want idle", m.Mode())
	}
}

func TestGroupSelectToggleMembership(t *testing.T) {
	m := NewMachine()
	m.Toggle(GroupSelecting)

	note := uuid.New()

	action := m.ClickNote(note)
	if action.Kind != ActionToggleSelect || !action.Selected {
		t.Fatalf("first click = (%v, %v), want toggle select on", action.Kind, action.Selected)
	}
	if len(m.Selection()) != 1 {
		t.Fatalf("selection = %d, want 1", len(m.Selection()))
	}

	action = m.ClickNote(note)
	if action.Selected {
		t.Fatalf("second click should toggle membership off")
	}
	if len(m.Selection()) != 0 {
		t.Fatalf("selection = %d, want 0", len(m.Selection()))
	}

	// Mode persists across clicks until explicitly toggled off.
	if m.Mode() != GroupSelecting {
		t.Errorf("mode = %v, want still group selecting", m.Mode())
	}
}

func TestTaggingClickOpensTaggingAndPersists(t *testing.T) {
	m := NewMachine()
	m.Toggle(Tagging)

	for i := 0; i < 3; i++ {
		action := m.ClickNote(uuid.New())
		if action.Kind != ActionOpenTagging {
			t.Fatalf("click %d = %v, want open tagging", i, action.Kind)
		}
		if m.Mode() != Tagging {
			t.Fatalf("mode left tagging after click %d", i)
		}
	}
}

func TestIdleClickReplacesSelection(t *testing.T) {
	m := NewMachine()

	a := uuid.New()
	b := uuid.New()

	action := m.ClickNote(a)
	if action.Kind != ActionSelect {
		t.Fatalf("idle click = %v, want select", action.Kind)
	}
	if m.Focused() == nil || *m.Focused() != a {
		t.Fatalf("focused = %v, want %v", m.Focused(), a)
	}

	m.ClickNote(b)
	if *m.Focused() != b {
		t.Errorf("focused = %v, want replaced by %v", *m.Focused(), b)
	}
}

func TestClearSelectionKeepsMode(t *testing.T) {
	m := NewMachine()
	m.Toggle(GroupSelecting)
	m.ClickNote(uuid.New())
	m.ClickNote(uuid.New())

	m.ClearSelection()

	if len(m.Selection()) != 0 {
		t.Errorf("selection = %d, want 0", len(m.Selection()))
	}
	if m.Mode() != GroupSelecting {
		t.Errorf("mode = %v, want group selecting retained", m.Mode())
	}
}
