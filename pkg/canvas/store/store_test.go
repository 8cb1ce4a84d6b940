package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"study-canvas-be/internal/pkg/logger"
	"study-canvas-be/pkg/canvas"

	"github.com/google/uuid"
)

// failingAdapter errors on the configured collections and returns fixed
// data for the rest.
type failingAdapter struct {
	failNotes       bool
	failCourses     bool
	failInstructors bool

	notes       []canvas.Note
	courses     []canvas.Course
	instructors []canvas.Instructor
}

var errDown = errors.New("connection refused")

func (f *failingAdapter) ListNotes(ctx context.Context) ([]canvas.Note, error) {
	if f.failNotes {
		return nil, errDown
	}
	return f.notes, nil
}

func (f *failingAdapter) ListCourses(ctx context.Context) ([]canvas.Course, error) {
	if f.failCourses {
		return nil, errDown
	}
	return f.courses, nil
}

func (f *failingAdapter) ListInstructors(ctx context.Context) ([]canvas.Instructor, error) {
	if f.failInstructors {
		return nil, errDown
	}
	return f.instructors, nil
}

func (f *failingAdapter) ListConcepts(ctx context.Context) ([]canvas.Concept, error) {
	return nil, nil
}

func (f *failingAdapter) ListConnections(ctx context.Context) ([]canvas.Connection, error) {
	return nil, nil
}

func (f *failingAdapter) CreateNote(ctx context.Context, n canvas.Note) (canvas.Note, error) {
	return n, nil
}
func (f *failingAdapter) UpdateNote(ctx context.Context, n canvas.Note) (canvas.Note, error) {
	return n, nil
}
func (f *failingAdapter) DeleteNote(ctx context.Context, id uuid.UUID) error { return nil }
func (f *failingAdapter) CreateCourse(ctx context.Context, c canvas.Course) (canvas.Course, error) {
	return c, nil
}
func (f *failingAdapter) CreateInstructor(ctx context.Context, i canvas.Instructor) (canvas.Instructor, error) {
	return i, nil
}
func (f *failingAdapter) UpdateInstructor(ctx context.Context, i canvas.Instructor) (canvas.Instructor, error) {
	return i, nil
}
func (f *failingAdapter) DeleteInstructor(ctx context.Context, id uuid.UUID) error { return nil }
func (f *failingAdapter) CreateConcept(ctx context.Context, c canvas.Concept) (canvas.Concept, error) {
	return c, nil
}
func (f *failingAdapter) LinkConcept(ctx context.Context, noteId uuid.UUID, name string, category *string) (canvas.Concept, canvas.NoteConcept, error) {
	return canvas.Concept{}, canvas.NoteConcept{}, nil
}
func (f *failingAdapter) UnlinkConcept(ctx context.Context, noteId, conceptId uuid.UUID) error {
	return nil
}
func (f *failingAdapter) CreateConnection(ctx context.Context, c canvas.Connection) (canvas.Connection, error) {
	return c, nil
}
func (f *failingAdapter) DeleteConnection(ctx context.Context, id uuid.UUID) error { return nil }
func (f *failingAdapter) ExportNotes(ctx context.Context, ids []uuid.UUID) ([]byte, error) {
	return nil, nil
}

func newStore() *Store {
	return New(logger.NewNoopLogger())
}

func TestLoadDegradesToEmptyOnFailure(t *testing.T) {
	s := newStore()
	s.Load(context.Background(), &failingAdapter{failNotes: true, failCourses: true})

	// The canvas still renders, just empty. No panic, no fatal error.
	if len(s.Notes()) != 0 {
		t.Errorf("notes = %d, want 0", len(s.Notes()))
	}
	if len(s.Courses()) != 0 {
		t.Errorf("courses = %d, want 0", len(s.Courses()))
	}
}

func TestLoadInstructorFailureDoesNotAffectNotes(t *testing.T) {
	s := newStore()
	adapter := &failingAdapter{
		failInstructors: true,
		notes:           []canvas.Note{{Id: uuid.New(), Title: "kept", CreatedAt: time.Now()}},
		courses:         []canvas.Course{{Id: uuid.New(), Name: "kept", CreatedAt: time.Now()}},
	}
	s.Load(context.Background(), adapter)

	if len(s.Notes()) != 1 || len(s.Courses()) != 1 {
		t.Errorf("notes/courses = %d/%d, want 1/1", len(s.Notes()), len(s.Courses()))
	}
	if len(s.Instructors()) != 0 {
		t.Errorf("instructors = %d, want 0", len(s.Instructors()))
	}
}

func TestLoadSortsNewestFirst(t *testing.T) {
	old := canvas.Note{Id: uuid.New(), Title: "old", CreatedAt: time.Now().Add(-time.Hour)}
	recent := canvas.Note{Id: uuid.New(), Title: "recent", CreatedAt: time.Now()}

	s := newStore()
	s.Load(context.Background(), &failingAdapter{notes: []canvas.Note{old, recent}})

	notes := s.Notes()
	if notes[0].Title != "recent" || notes[1].Title != "old" {
		t.Errorf("order = [%s, %s], want newest first", notes[0].Title, notes[1].Title)
	}
}

func TestUpsertNoteIsCopyOnWrite(t *testing.T) {
	s := newStore()
	note := canvas.Note{Id: uuid.New(), Title: "v1"}
	s.UpsertNote(note)

	before := s.Notes()
	note.Title = "v2"
	s.UpsertNote(note)
	after := s.Notes()

	// Observers detect change by reference: the old snapshot is untouched.
	if before[0].Title != "v1" {
		t.Errorf("old snapshot mutated: %q", before[0].Title)
	}
	if after[0].Title != "v2" {
		t.Errorf("new snapshot = %q, want v2", after[0].Title)
	}
}

func TestUpsertDoesNotRemoveOthers(t *testing.T) {
	s := newStore()
	a := canvas.Note{Id: uuid.New(), Title: "a"}
	b := canvas.Note{Id: uuid.New(), Title: "b"}
	s.UpsertNote(a)
	s.UpsertNote(b)

	a.Title = "a2"
	s.UpsertNote(a)

	if len(s.Notes()) != 2 {
		t.Errorf("notes = %d, want 2", len(s.Notes()))
	}
}

func TestRemoveNoteCascades(t *testing.T) {
	s := newStore()
	a := canvas.Note{Id: uuid.New()}
	b := canvas.Note{Id: uuid.New()}
	s.UpsertNote(a)
	s.UpsertNote(b)

	conceptId := uuid.New()
	s.AddLink(canvas.NoteConcept{NoteId: a.Id, ConceptId: conceptId})
	s.AddConnection(canvas.Connection{Id: uuid.New(), FromId: a.Id, ToId: b.Id})
	s.AddConnection(canvas.Connection{Id: uuid.New(), FromId: b.Id, ToId: a.Id})

	s.RemoveNote(a.Id)

	if len(s.Connections()) != 0 {
		t.Errorf("connections = %d, want 0 after cascade", len(s.Connections()))
	}
	if len(s.Links()) != 0 {
		t.Errorf("links = %d, want 0 after cascade", len(s.Links()))
	}
	if _, exists := s.Note(b.Id); !exists {
		t.Errorf("unrelated note removed by cascade")
	}
}

func TestRemoveInstructorClearsCourseReference(t *testing.T) {
	s := newStore()
	instructor := canvas.Instructor{Id: uuid.New(), Name: "Ada"}
	s.UpsertInstructor(instructor)
	s.UpsertCourse(canvas.Course{Id: uuid.New(), Name: "Algorithms", InstructorId: &instructor.Id})

	s.RemoveInstructor(instructor.Id)

	courses := s.Courses()
	if len(courses) != 1 {
		t.Fatalf("courses = %d, want 1 (never cascaded)", len(courses))
	}
	if courses[0].InstructorId != nil {
		t.Errorf("instructor reference not cleared")
	}
}

func TestRemoveCourseClearsNoteReference(t *testing.T) {
	s := newStore()
	course := canvas.Course{Id: uuid.New(), Name: "Algorithms"}
	s.UpsertCourse(course)
	s.UpsertNote(canvas.Note{Id: uuid.New(), CourseId: &course.Id})

	s.RemoveCourse(course.Id)

	notes := s.Notes()
	if len(notes) != 1 {
		t.Fatalf("notes = %d, want 1", len(notes))
	}
	if notes[0].CourseId != nil {
		t.Errorf("course reference not cleared")
	}
}

func TestAddLinkIsIdempotent(t *testing.T) {
	s := newStore()
	link := canvas.NoteConcept{NoteId: uuid.New(), ConceptId: uuid.New()}

	s.AddLink(link)
	s.AddLink(link)

	if len(s.Links()) != 1 {
		t.Errorf("links = %d, want 1", len(s.Links()))
	}
}
