// Package store is the in-memory source of truth for the canvas entities.
// Collections are copy-on-write: readers always get a snapshot slice, and
// every mutation produces a new slice value, so observers can detect change
// by reference.
package store

import (
	"context"
	"sort"
	"sync"

	"study-canvas-be/internal/pkg/logger"
	"study-canvas-be/pkg/canvas"
	"study-canvas-be/pkg/canvas/adapter"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	notes       []canvas.Note
	courses     []canvas.Course
	instructors []canvas.Instructor
	concepts    []canvas.Concept
	links       []canvas.NoteConcept
	connections []canvas.Connection

	logger logger.ILogger
}

func New(log logger.ILogger) *Store {
	return &Store{logger: log}
}

// Load pulls the canvas collections from the durable store. Notes, courses
// and connections are required but a failure degrades that collection to
// empty rather than failing the load: the canvas must always render.
// Instructors and concepts are optional extras.
func (s *Store) Load(ctx context.Context, a adapter.Adapter) {
	notes, err := a.ListNotes(ctx)
	if err != nil {
		s.logger.Warn("Store", "Failed to load notes, rendering empty", map[string]interface{}{"error": err.Error()})
		notes = nil
	}
	courses, err := a.ListCourses(ctx)
	if err != nil {
		s.logger.Warn("Store", "Failed to load courses, rendering empty", map[string]interface{}{"error": err.Error()})
		courses = nil
	}
	connections, err := a.ListConnections(ctx)
	if err != nil {
		s.logger.Warn("Store", "Failed to load connections, rendering empty", map[string]interface{}{"error": err.Error()})
		connections = nil
	}
	instructors, err := a.ListInstructors(ctx)
	if err != nil {
		s.logger.Warn("Store", "Failed to load instructors", map[string]interface{}{"error": err.Error()})
		instructors = nil
	}
	concepts, err := a.ListConcepts(ctx)
	if err != nil {
		s.logger.Warn("Store", "Failed to load concepts", map[string]interface{}{"error": err.Error()})
		concepts = nil
	}

	sort.Slice(notes, func(i, j int) bool { return notes[i].CreatedAt.After(notes[j].CreatedAt) })
	sort.Slice(courses, func(i, j int) bool { return courses[i].CreatedAt.After(courses[j].CreatedAt) })

	s.mu.Lock()
	s.notes = notes
	s.courses = courses
	s.connections = connections
	s.instructors = instructors
	s.concepts = concepts
	s.links = nil
	s.mu.Unlock()
}

func (s *Store) Notes() []canvas.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notes
}

func (s *Store) Courses() []canvas.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.courses
}

func (s *Store) Instructors() []canvas.Instructor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.instructors
}

func (s *Store) Concepts() []canvas.Concept {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.concepts
}

func (s *Store) Links() []canvas.NoteConcept {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.links
}

func (s *Store) Connections() []canvas.Connection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connections
}

func (s *Store) Note(id uuid.UUID) (canvas.Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, n := range s.notes {
		if n.Id == id {
			return n, true
		}
	}
	return canvas.Note{}, false
}

func (s *Store) ConceptByName(name string) (canvas.Concept, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.concepts {
		if c.Name == name {
			return c, true
		}
	}
	return canvas.Concept{}, false
}

func (s *Store) UpsertNote(n canvas.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = upsert(s.notes, n, func(x canvas.Note) uuid.UUID { return x.Id })
}

// RemoveNote removes the note and cascades into every connection touching
// it, and every concept link it holds. The cascade lives here so no caller
// can forget it.
func (s *Store) RemoveNote(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = remove(s.notes, func(n canvas.Note) bool { return n.Id == id })
	s.connections = remove(s.connections, func(c canvas.Connection) bool {
		return c.FromId == id || c.ToId == id
	})
	s.links = remove(s.links, func(l canvas.NoteConcept) bool { return l.NoteId == id })
}

func (s *Store) UpsertCourse(c canvas.Course) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses = upsert(s.courses, c, func(x canvas.Course) uuid.UUID { return x.Id })
}

func (s *Store) RemoveCourse(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses = remove(s.courses, func(c canvas.Course) bool { return c.Id == id })

	// Notes keep rendering with "no course".
	notes := make([]canvas.Note, len(s.notes))
	copy(notes, s.notes)
	for i := range notes {
		if notes[i].CourseId != nil && *notes[i].CourseId == id {
			notes[i].CourseId = nil
		}
	}
	s.notes = notes
}

func (s *Store) UpsertInstructor(i canvas.Instructor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.instructors = upsert(s.instructors, i, func(x canvas.Instructor) uuid.UUID { return x.Id })
}

// RemoveInstructor clears the weak reference on dependent courses instead
// of cascading into them.
func (s *Store) RemoveInstructor(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.instructors = remove(s.instructors, func(i canvas.Instructor) bool { return i.Id == id })

	courses := make([]canvas.Course, len(s.courses))
	copy(courses, s.courses)
	for i := range courses {
		if courses[i].InstructorId != nil && *courses[i].InstructorId == id {
			courses[i].InstructorId = nil
		}
	}
	s.courses = courses
}

func (s *Store) UpsertConcept(c canvas.Concept) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.concepts = upsert(s.concepts, c, func(x canvas.Concept) uuid.UUID { return x.Id })
}

func (s *Store) RemoveConcept(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.concepts = remove(s.concepts, func(c canvas.Concept) bool { return c.Id == id })
	s.links = remove(s.links, func(l canvas.NoteConcept) bool { return l.ConceptId == id })
}

func (s *Store) AddLink(l canvas.NoteConcept) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.links {
		if existing.NoteId == l.NoteId && existing.ConceptId == l.ConceptId {
			return
		}
	}
	links := make([]canvas.NoteConcept, len(s.links), len(s.links)+1)
	copy(links, s.links)
	s.links = append(links, l)
}

func (s *Store) RemoveLink(noteId, conceptId uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.links = remove(s.links, func(l canvas.NoteConcept) bool {
		return l.NoteId == noteId && l.ConceptId == conceptId
	})
}

func (s *Store) HasLink(noteId, conceptId uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.links {
		if l.NoteId == noteId && l.ConceptId == conceptId {
			return true
		}
	}
	return false
}

func (s *Store) SetLinks(links []canvas.NoteConcept) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.links = links
}

func (s *Store) AddConnection(c canvas.Connection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connections = upsert(s.connections, c, func(x canvas.Connection) uuid.UUID { return x.Id })
}

func (s *Store) RemoveConnection(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connections = remove(s.connections, func(c canvas.Connection) bool { return c.Id == id })
}

// upsert replaces the element with the same id or prepends a new one, always
// returning a fresh slice. New entities land first, matching the display
// sort (created desc).
func upsert[T any](items []T, item T, id func(T) uuid.UUID) []T {
	target := id(item)
	for i := range items {
		if id(items[i]) == target {
			out := make([]T, len(items))
			copy(out, items)
			out[i] = item
			return out
		}
	}
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}

func remove[T any](items []T, match func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if !match(it) {
			out = append(out, it)
		}
	}
	return out
}
