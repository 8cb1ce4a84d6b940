package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"study-canvas-be/internal/pkg/logger"
	"study-canvas-be/pkg/canvas"

	"github.com/google/uuid"
)

type countingAdapter struct {
	listNotesCalls  int
	listNotesErrs   []error
	updateNoteCalls int
	updateNoteErr   error
}

func (c *countingAdapter) ListNotes(ctx context.Context) ([]canvas.Note, error) {
	idx := c.listNotesCalls
	c.listNotesCalls++
	if idx < len(c.listNotesErrs) && c.listNotesErrs[idx] != nil {
		return nil, c.listNotesErrs[idx]
	}
	return []canvas.Note{{Id: uuid.New()}}, nil
}

func (c *countingAdapter) UpdateNote(ctx context.Context, n canvas.Note) (canvas.Note, error) {
	c.updateNoteCalls++
	return n, c.updateNoteErr
}

func (c *countingAdapter) CreateNote(ctx context.Context, n canvas.Note) (canvas.Note, error) {
	return n, nil
}
func (c *countingAdapter) DeleteNote(ctx context.Context, id uuid.UUID) error { return nil }
func (c *countingAdapter) ListCourses(ctx context.Context) ([]canvas.Course, error) {
	return nil, nil
}
func (c *countingAdapter) CreateCourse(ctx context.Context, co canvas.Course) (canvas.Course, error) {
	return co, nil
}
func (c *countingAdapter) ListInstructors(ctx context.Context) ([]canvas.Instructor, error) {
	return nil, nil
}
func (c *countingAdapter) CreateInstructor(ctx context.Context, i canvas.Instructor) (canvas.Instructor, error) {
	return i, nil
}
func (c *countingAdapter) UpdateInstructor(ctx context.Context, i canvas.Instructor) (canvas.Instructor, error) {
	return i, nil
}
func (c *countingAdapter) DeleteInstructor(ctx context.Context, id uuid.UUID) error { return nil }
func (c *countingAdapter) ListConcepts(ctx context.Context) ([]canvas.Concept, error) {
	return nil, nil
}
func (c *countingAdapter) CreateConcept(ctx context.Context, co canvas.Concept) (canvas.Concept, error) {
	return co, nil
}
func (c *countingAdapter) LinkConcept(ctx context.Context, noteId uuid.UUID, name string, category *string) (canvas.Concept, canvas.NoteConcept, error) {
	return canvas.Concept{}, canvas.NoteConcept{}, nil
}
func (c *countingAdapter) UnlinkConcept(ctx context.Context, noteId, conceptId uuid.UUID) error {
	return nil
}
func (c *countingAdapter) ListConnections(ctx context.Context) ([]canvas.Connection, error) {
	return nil, nil
}
func (c *countingAdapter) CreateConnection(ctx context.Context, cn canvas.Connection) (canvas.Connection, error) {
	return cn, nil
}
func (c *countingAdapter) DeleteConnection(ctx context.Context, id uuid.UUID) error { return nil }
func (c *countingAdapter) ExportNotes(ctx context.Context, ids []uuid.UUID) ([]byte, error) {
	return nil, nil
}

func TestIsConnectionError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"refused", errors.New("dial tcp 127.0.0.1:3000: connection refused"), true},
		{"reset", errors.New("read: connection reset by peer"), true},
		{"timeout", errors.New("i/o timeout"), true},
		{"no such host", errors.New("lookup api.local: no such host"), true},
		{"validation", errors.New("width must be positive"), false},
		{"not found", ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isConnectionError(tt.err); got != tt.want {
				t.Errorf("isConnectionError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestReadRetriedOnceOnConnectionError(t *testing.T) {
	inner := &countingAdapter{
		listNotesErrs: []error{errors.New("connection refused")},
	}
	a := WithRetry(inner, time.Millisecond, logger.NewNoopLogger())

	notes, err := a.ListNotes(context.Background())
	if err != nil {
		t.Fatalf("ListNotes after retry: %v", err)
	}
	if len(notes) != 1 {
		t.Errorf("notes = %d, want 1", len(notes))
	}
	if inner.listNotesCalls != 2 {
		t.Errorf("calls = %d, want 2 (original + one retry)", inner.listNotesCalls)
	}
}

func TestReadNotRetriedTwice(t *testing.T) {
	inner := &countingAdapter{
		listNotesErrs: []error{
			errors.New("connection refused"),
			errors.New("connection refused"),
			errors.New("connection refused"),
		},
	}
	a := WithRetry(inner, time.Millisecond, logger.NewNoopLogger())

	_, err := a.ListNotes(context.Background())
	if err == nil {
		t.Fatal("expected error when retry also fails")
	}
	if inner.listNotesCalls != 2 {
		t.Errorf("calls = %d, want exactly 2", inner.listNotesCalls)
	}
}

func TestReadNotRetriedOnOtherErrors(t *testing.T) {
	inner := &countingAdapter{
		listNotesErrs: []error{errors.New("unexpected response shape")},
	}
	a := WithRetry(inner, time.Millisecond, logger.NewNoopLogger())

	_, err := a.ListNotes(context.Background())
	if err == nil {
		t.Fatal("expected the original error")
	}
	if inner.listNotesCalls != 1 {
		t.Errorf("calls = %d, want 1", inner.listNotesCalls)
	}
}

func TestWritesNeverRetried(t *testing.T) {
	inner := &countingAdapter{updateNoteErr: errors.New("connection refused")}
	a := WithRetry(inner, time.Millisecond, logger.NewNoopLogger())

	_, err := a.UpdateNote(context.Background(), canvas.Note{Id: uuid.New()})
	if err == nil {
		t.Fatal("expected the write error to surface")
	}
	if inner.updateNoteCalls != 1 {
		t.Errorf("calls = %d, want 1 (writes are never retried)", inner.updateNoteCalls)
	}
}
