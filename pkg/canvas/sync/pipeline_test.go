package sync

import (
	"context"
	"errors"
	gosync "sync"
	"testing"
	"time"

	"study-canvas-be/internal/pkg/logger"
	"study-canvas-be/pkg/canvas"
	"study-canvas-be/pkg/canvas/adapter"
	"study-canvas-be/pkg/canvas/store"

	"github.com/google/uuid"
)

// fakeAdapter keeps concepts and links in memory with the same
// find-or-create and frequency semantics as the backend, and counts write
// calls so tests can observe coalescing.
type fakeAdapter struct {
	mu gosync.Mutex

	updateCalls map[uuid.UUID]int
	lastUpdate  map[uuid.UUID]canvas.Note

	concepts map[string]canvas.Concept
	links    map[[2]uuid.UUID]bool

	createNoteErr error
	updateNoteErr error
	deleteNoteErr error
}

func newFakeAdapter() *fakeAdapter {
	return &fakeAdapter{
		updateCalls: make(map[uuid.UUID]int),
		lastUpdate:  make(map[uuid.UUID]canvas.Note),
		concepts:    make(map[string]canvas.Concept),
		links:       make(map[[2]uuid.UUID]bool),
	}
}

func (f *fakeAdapter) ListNotes(ctx context.Context) ([]canvas.Note, error)   { return nil, nil }
func (f *fakeAdapter) ListCourses(ctx context.Context) ([]canvas.Course, error) { return nil, nil }
func (f *fakeAdapter) ListInstructors(ctx context.Context) ([]canvas.Instructor, error) {
	return nil, nil
}
func (f *fakeAdapter) ListConcepts(ctx context.Context) ([]canvas.Concept, error) { return nil, nil }
func (f *fakeAdapter) ListConnections(ctx context.Context) ([]canvas.Connection, error) {
	return nil, nil
}

func (f *fakeAdapter) CreateNote(ctx context.Context, note canvas.Note) (canvas.Note, error) {
	if f.createNoteErr != nil {
		return canvas.Note{}, f.createNoteErr
	}
	return note, nil
}

func (f *fakeAdapter) UpdateNote(ctx context.Context, note canvas.Note) (canvas.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateNoteErr != nil {
		return canvas.Note{}, f.updateNoteErr
	}
	f.updateCalls[note.Id]++
	f.lastUpdate[note.Id] = note
	return note, nil
}

func (f *fakeAdapter) DeleteNote(ctx context.Context, id uuid.UUID) error {
	return f.deleteNoteErr
}

func (f *fakeAdapter) CreateCourse(ctx context.Context, c canvas.Course) (canvas.Course, error) {
	return c, nil
}
func (f *fakeAdapter) CreateInstructor(ctx context.Context, i canvas.Instructor) (canvas.Instructor, error) {
	return i, nil
}
func (f *fakeAdapter) UpdateInstructor(ctx context.Context, i canvas.Instructor) (canvas.Instructor, error) {
	return i, nil
}
func (f *fakeAdapter) DeleteInstructor(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeAdapter) CreateConcept(ctx context.Context, c canvas.Concept) (canvas.Concept, error) {
	return c, nil
}

func (f *fakeAdapter) LinkConcept(ctx context.Context, noteId uuid.UUID, name string, category *string) (canvas.Concept, canvas.NoteConcept, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	concept, exists := f.concepts[name]
	if !exists {
		concept = canvas.Concept{Id: uuid.New(), Name: name, Category: category, CreatedAt: time.Now()}
	}

	key := [2]uuid.UUID{noteId, concept.Id}
	if f.links[key] {
		return canvas.Concept{}, canvas.NoteConcept{}, adapter.ErrAlreadyLinked
	}
	f.links[key] = true
	concept.Frequency++
	f.concepts[name] = concept

	link := canvas.NoteConcept{NoteId: noteId, ConceptId: concept.Id, CreatedAt: time.Now()}
	return concept, link, nil
}

func (f *fakeAdapter) UnlinkConcept(ctx context.Context, noteId, conceptId uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := [2]uuid.UUID{noteId, conceptId}
	if !f.links[key] {
		return adapter.ErrLinkNotFound
	}
	delete(f.links, key)
	for name, c := range f.concepts {
		if c.Id == conceptId {
			c.Frequency--
			f.concepts[name] = c
		}
	}
	return nil
}

func (f *fakeAdapter) CreateConnection(ctx context.Context, c canvas.Connection) (canvas.Connection, error) {
	return c, nil
}
func (f *fakeAdapter) DeleteConnection(ctx context.Context, id uuid.UUID) error { return nil }
func (f *fakeAdapter) ExportNotes(ctx context.Context, ids []uuid.UUID) ([]byte, error) {
	return nil, nil
}

func (f *fakeAdapter) updateCount(id uuid.UUID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.updateCalls[id]
}

func (f *fakeAdapter) lastUpdated(id uuid.UUID) canvas.Note {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastUpdate[id]
}

func newTestPipeline(fake *fakeAdapter, window time.Duration) (*Pipeline, *store.Store) {
	s := store.New(logger.NewNoopLogger())
	p := NewPipeline(s, fake, window, nil, logger.NewNoopLogger())
	return p, s
}

func seedNote(s *store.Store) canvas.Note {
	size, bg, text := canvas.KindDefaults("note")
	note := canvas.Note{
		Id:              uuid.New(),
		Title:           "Seed",
		Kind:            "note",
		Size:            size,
		BackgroundColor: bg,
		TextColor:       text,
		CreatedAt:       time.Now(),
	}
	s.UpsertNote(note)
	return note
}

func TestUpdateNoteDebounceCoalescing(t *testing.T) {
	fake := newFakeAdapter()
	p, s := newTestPipeline(fake, 30*time.Millisecond)
	note := seedNote(s)

	titles := []string{"a", "b", "c", "d", "final"}
	for i := range titles {
		out := p.UpdateNote(note.Id, canvas.NotePatch{
			Title:    &titles[i],
			Position: &canvas.Position{X: float64(i * 10), Y: 0},
		})
		if !out.OK() {
			t.Fatalf("UpdateNote outcome = %v, want ok", out.Status)
		}
	}

	// Local state reflects the last call immediately.
	got, _ := s.Note(note.Id)
	if got.Title != "final" {
		t.Errorf("local title = %q, want %q", got.Title, "final")
	}

	time.Sleep(150 * time.Millisecond)

	if calls := fake.updateCount(note.Id); calls != 1 {
		t.Errorf("remote update calls = %d, want 1", calls)
	}
	if last := fake.lastUpdated(note.Id); last.Title != "final" || last.Position.X != 40 {
		t.Errorf("remote carried title=%q x=%v, want final/40", last.Title, last.Position.X)
	}
}

func TestUpdateNoteDebouncesPerNote(t *testing.T) {
	fake := newFakeAdapter()
	p, s := newTestPipeline(fake, 30*time.Millisecond)
	a := seedNote(s)
	b := seedNote(s)

	title := "moved"
	p.UpdateNote(a.Id, canvas.NotePatch{Title: &title})
	p.UpdateNote(b.Id, canvas.NotePatch{Title: &title})

	time.Sleep(150 * time.Millisecond)

	if fake.updateCount(a.Id) != 1 || fake.updateCount(b.Id) != 1 {
		t.Errorf("remote calls = (%d, %d), want one per note",
			fake.updateCount(a.Id), fake.updateCount(b.Id))
	}
}

func TestCloseFlushesPendingWrite(t *testing.T) {
	fake := newFakeAdapter()
	p, s := newTestPipeline(fake, time.Hour)
	note := seedNote(s)

	title := "last edit"
	p.UpdateNote(note.Id, canvas.NotePatch{Title: &title})
	p.Close()

	if calls := fake.updateCount(note.Id); calls != 1 {
		t.Errorf("remote update calls after Close = %d, want 1", calls)
	}
}

func TestUpdateNoteRemoteFailureKeepsOptimisticValue(t *testing.T) {
	fake := newFakeAdapter()
	fake.updateNoteErr = errors.New("boom")
	p, s := newTestPipeline(fake, time.Millisecond)
	note := seedNote(s)

	title := "kept"
	p.UpdateNote(note.Id, canvas.NotePatch{Title: &title})
	time.Sleep(50 * time.Millisecond)

	got, exists := s.Note(note.Id)
	if !exists || got.Title != "kept" {
		t.Errorf("local note = (%v, %q), want the optimistic value retained", exists, got.Title)
	}
}

func TestUpdateNoteMissingEntity(t *testing.T) {
	fake := newFakeAdapter()
	p, _ := newTestPipeline(fake, time.Millisecond)

	title := "x"
	out := p.UpdateNote(uuid.New(), canvas.NotePatch{Title: &title})
	if out.Status != StatusNotFound {
		t.Errorf("outcome = %v, want not_found", out.Status)
	}
}

func TestCreateNoteDefaultsAndRemoteFailure(t *testing.T) {
	fake := newFakeAdapter()
	fake.createNoteErr = errors.New("connection refused")
	p, s := newTestPipeline(fake, time.Millisecond)

	note, out := p.CreateNote(context.Background(), canvas.Position{X: 100, Y: 100}, "note")

	if out.Status != StatusFailed {
		t.Errorf("outcome = %v, want failed", out.Status)
	}
	if note.Size.Width != 220 || note.Size.Height != 180 {
		t.Errorf("size = %+v, want 220x180", note.Size)
	}
	if note.BackgroundColor != "#fef3c7" {
		t.Errorf("background = %q, want #fef3c7", note.BackgroundColor)
	}

	// The note stays visible locally despite the failed create.
	if len(s.Notes()) != 1 {
		t.Fatalf("local notes = %d, want 1", len(s.Notes()))
	}
}

func TestDeleteNoteCascadesConnections(t *testing.T) {
	fake := newFakeAdapter()
	p, s := newTestPipeline(fake, time.Hour)
	a := seedNote(s)
	b := seedNote(s)
	c := seedNote(s)

	s.AddConnection(canvas.Connection{Id: uuid.New(), FromId: a.Id, ToId: b.Id})
	s.AddConnection(canvas.Connection{Id: uuid.New(), FromId: c.Id, ToId: a.Id})
	s.AddConnection(canvas.Connection{Id: uuid.New(), FromId: b.Id, ToId: c.Id})

	out := p.DeleteNote(context.Background(), a.Id)
	if !out.OK() {
		t.Fatalf("outcome = %v, want ok", out.Status)
	}

	for _, conn := range s.Connections() {
		if conn.FromId == a.Id || conn.ToId == a.Id {
			t.Errorf("connection %s still references deleted note", conn.Id)
		}
	}
	if len(s.Connections()) != 1 {
		t.Errorf("connections = %d, want 1 survivor", len(s.Connections()))
	}
}

func TestConceptFrequencyLifecycle(t *testing.T) {
	fake := newFakeAdapter()
	p, s := newTestPipeline(fake, time.Millisecond)
	a := seedNote(s)
	b := seedNote(s)

	// Tag note A with a fresh concept.
	concept, out := p.AddConcept(context.Background(), a.Id, "Order Block", nil)
	if !out.OK() {
		t.Fatalf("first tag outcome = %v, want ok", out.Status)
	}
	if concept.Frequency != 1 {
		t.Errorf("frequency after first tag = %d, want 1", concept.Frequency)
	}

	// Tag note B with the same name: find, not create.
	concept2, out := p.AddConcept(context.Background(), b.Id, "Order Block", nil)
	if !out.OK() {
		t.Fatalf("second tag outcome = %v, want ok", out.Status)
	}
	if concept2.Id != concept.Id {
		t.Errorf("second tag created a new concept")
	}
	if concept2.Frequency != 2 {
		t.Errorf("frequency after second tag = %d, want 2", concept2.Frequency)
	}

	// Duplicate link settles as conflict with no double increment.
	_, out = p.AddConcept(context.Background(), a.Id, "Order Block", nil)
	if out.Status != StatusConflict {
		t.Fatalf("duplicate tag outcome = %v, want conflict", out.Status)
	}
	stored, _ := s.ConceptByName("Order Block")
	if stored.Frequency != 2 {
		t.Errorf("frequency after duplicate tag = %d, want 2", stored.Frequency)
	}
	linkCount := 0
	for _, l := range s.Links() {
		if l.ConceptId == concept.Id {
			linkCount++
		}
	}
	if linkCount != 2 {
		t.Errorf("links = %d, want 2", linkCount)
	}

	// Untag note A: frequency drops and the link is gone.
	out = p.RemoveConcept(context.Background(), a.Id, concept.Id)
	if !out.OK() {
		t.Fatalf("untag outcome = %v, want ok", out.Status)
	}
	stored, _ = s.ConceptByName("Order Block")
	if stored.Frequency != 1 {
		t.Errorf("frequency after untag = %d, want 1", stored.Frequency)
	}
	if s.HasLink(a.Id, concept.Id) {
		t.Errorf("link note A -> concept still present after untag")
	}
}

func TestRemoveConceptMissingLink(t *testing.T) {
	fake := newFakeAdapter()
	p, s := newTestPipeline(fake, time.Millisecond)
	note := seedNote(s)

	out := p.RemoveConcept(context.Background(), note.Id, uuid.New())
	if out.Status != StatusNotFound {
		t.Errorf("outcome = %v, want not_found", out.Status)
	}
}

func TestCreateConnectionRejectsSelfLoop(t *testing.T) {
	fake := newFakeAdapter()
	p, s := newTestPipeline(fake, time.Millisecond)
	note := seedNote(s)

	conn, out := p.CreateConnection(context.Background(), note.Id, note.Id)
	if !out.OK() {
		t.Errorf("self-loop outcome = %v, want ok (silent cancel)", out.Status)
	}
	if conn.Id != uuid.Nil {
		t.Errorf("self-loop produced a connection")
	}
	if len(s.Connections()) != 0 {
		t.Errorf("connections = %d, want 0", len(s.Connections()))
	}
}

func TestCreateConnectionDefaults(t *testing.T) {
	fake := newFakeAdapter()
	p, s := newTestPipeline(fake, time.Millisecond)
	a := seedNote(s)
	b := seedNote(s)

	conn, out := p.CreateConnection(context.Background(), a.Id, b.Id)
	if !out.OK() {
		t.Fatalf("outcome = %v, want ok", out.Status)
	}
	if conn.Color != "#94a3b8" || conn.Style != "curved" || conn.StrokeWidth != 2 {
		t.Errorf("defaults = %q/%q/%v, want #94a3b8/curved/2", conn.Color, conn.Style, conn.StrokeWidth)
	}
	if len(s.Connections()) != 1 {
		t.Errorf("connections = %d, want 1", len(s.Connections()))
	}
}

func TestGroupNotesBestEffort(t *testing.T) {
	fake := newFakeAdapter()
	p, s := newTestPipeline(fake, time.Millisecond)
	a := seedNote(s)
	b := seedNote(s)
	missing := uuid.New()
	courseId := uuid.New()

	res, out := p.GroupNotesToCourse([]uuid.UUID{a.Id, missing, b.Id}, courseId)

	if out.Status != StatusFailed {
		t.Errorf("outcome = %v, want failed (partial)", out.Status)
	}
	if len(res.Grouped) != 2 || len(res.Failed) != 1 {
		t.Errorf("grouped/failed = %d/%d, want 2/1", len(res.Grouped), len(res.Failed))
	}

	// The notes that succeeded carry the assignment; the rest are untouched.
	for _, id := range []uuid.UUID{a.Id, b.Id} {
		n, _ := s.Note(id)
		if n.CourseId == nil || *n.CourseId != courseId {
			t.Errorf("note %s not grouped", id)
		}
	}
}
