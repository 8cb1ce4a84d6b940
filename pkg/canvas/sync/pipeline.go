package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"study-canvas-be/internal/pkg/logger"
	"study-canvas-be/pkg/canvas"
	"study-canvas-be/pkg/canvas/adapter"
	"study-canvas-be/pkg/canvas/store"

	"github.com/google/uuid"
)

const (
	opUpdate = "update"
)

// AlertFunc surfaces a non-blocking user-visible message. Nil means alerts
// are dropped.
type AlertFunc func(message string)

// Pipeline turns user-initiated mutations into an immediate local apply and
// an eventually consistent remote write. Errors never escape as panics;
// every operation settles into an Outcome.
type Pipeline struct {
	store    *store.Store
	adapter  adapter.Adapter
	debounce *Debouncer
	alert    AlertFunc
	logger   logger.ILogger
}

func NewPipeline(s *store.Store, a adapter.Adapter, window time.Duration, alert AlertFunc, log logger.ILogger) *Pipeline {
	return &Pipeline{
		store:    s,
		adapter:  a,
		debounce: NewDebouncer(window),
		alert:    alert,
		logger:   log,
	}
}

// UpdateNote merges the patch into the local note immediately and schedules
// a debounced remote write. The write reads the note again at send time so
// it always carries the latest coalesced values.
func (p *Pipeline) UpdateNote(id uuid.UUID, patch canvas.NotePatch) Outcome {
	note, exists := p.store.Note(id)
	if !exists {
		return notFound(fmt.Errorf("note %s not found", id))
	}

	applyPatch(&note, patch)
	note.UpdatedAt = time.Now()
	p.store.UpsertNote(note)

	p.debounce.Schedule(Key{EntityId: id, Op: opUpdate}, func() {
		latest, stillThere := p.store.Note(id)
		if !stillThere {
			return
		}
		if _, err := p.adapter.UpdateNote(context.Background(), latest); err != nil {
			// Optimistic value stays; the visual state must not revert on a
			// transient failure.
			p.logger.Warn("Pipeline", "Remote note update failed", map[string]interface{}{
				"note_id": id,
				"error":   err.Error(),
			})
		}
	})

	return ok()
}

// CreateNote inserts a new note locally with the default styling for the
// kind, then attempts the remote create. A failed create leaves the note
// visible but unpersisted.
func (p *Pipeline) CreateNote(ctx context.Context, position canvas.Position, kind string) (canvas.Note, Outcome) {
	size, background, text := canvas.KindDefaults(kind)
	now := time.Now()
	note := canvas.Note{
		Id:              uuid.New(),
		Title:           "Untitled",
		Kind:            kind,
		Position:        position,
		Size:            size,
		BackgroundColor: background,
		TextColor:       text,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	p.store.UpsertNote(note)

	if created, err := p.adapter.CreateNote(ctx, note); err != nil {
		p.logger.Warn("Pipeline", "Remote note create failed, keeping local copy", map[string]interface{}{
			"note_id": note.Id,
			"error":   err.Error(),
		})
		return note, failed(err)
	} else {
		p.store.UpsertNote(created)
		return created, ok()
	}
}

// DeleteNote removes the note locally, cascading connections and links,
// then fires the remote delete. Deletion is irreversible from the caller's
// side once applied; a remote failure raises an alert but restores nothing.
func (p *Pipeline) DeleteNote(ctx context.Context, id uuid.UUID) Outcome {
	if _, exists := p.store.Note(id); !exists {
		return notFound(fmt.Errorf("note %s not found", id))
	}

	p.debounce.Cancel(Key{EntityId: id, Op: opUpdate})
	p.store.RemoveNote(id)

	if err := p.adapter.DeleteNote(ctx, id); err != nil && !errors.Is(err, adapter.ErrNotFound) {
		p.raiseAlert("Failed to delete note on the server")
		p.logger.Warn("Pipeline", "Remote note delete failed", map[string]interface{}{
			"note_id": id,
			"error":   err.Error(),
		})
		return failed(err)
	}
	return ok()
}

// CreateConnection appends a connection with default styling. Self-loops
// are treated as a cancelled gesture: nothing is added and no error raised.
func (p *Pipeline) CreateConnection(ctx context.Context, fromId, toId uuid.UUID) (canvas.Connection, Outcome) {
	if fromId == toId {
		return canvas.Connection{}, ok()
	}

	connection := canvas.Connection{
		Id:          uuid.New(),
		FromId:      fromId,
		ToId:        toId,
		Color:       "#94a3b8",
		Style:       "curved",
		StrokeWidth: 2,
		CreatedAt:   time.Now(),
	}
	p.store.AddConnection(connection)

	if created, err := p.adapter.CreateConnection(ctx, connection); err != nil {
		p.logger.Warn("Pipeline", "Remote connection create failed, keeping local copy", map[string]interface{}{
			"connection_id": connection.Id,
			"error":         err.Error(),
		})
		return connection, failed(err)
	} else {
		p.store.AddConnection(created)
		return created, ok()
	}
}

func (p *Pipeline) DeleteConnection(ctx context.Context, id uuid.UUID) Outcome {
	p.store.RemoveConnection(id)

	if err := p.adapter.DeleteConnection(ctx, id); err != nil && !errors.Is(err, adapter.ErrNotFound) {
		p.logger.Warn("Pipeline", "Remote connection delete failed", map[string]interface{}{
			"connection_id": id,
			"error":         err.Error(),
		})
		return failed(err)
	}
	return ok()
}

// AddConcept tags a note with a concept by name, creating the concept on
// first use. A duplicate link settles as a conflict and never increments
// the frequency twice.
func (p *Pipeline) AddConcept(ctx context.Context, noteId uuid.UUID, name string, category *string) (canvas.Concept, Outcome) {
	concept, link, err := p.adapter.LinkConcept(ctx, noteId, name, category)
	if err != nil {
		switch {
		case errors.Is(err, adapter.ErrAlreadyLinked):
			existing, _ := p.store.ConceptByName(name)
			return existing, conflict(err)
		case errors.Is(err, adapter.ErrNotFound):
			return canvas.Concept{}, notFound(err)
		}
		p.logger.Warn("Pipeline", "Concept link failed", map[string]interface{}{
			"note_id": noteId,
			"name":    name,
			"error":   err.Error(),
		})
		return canvas.Concept{}, failed(err)
	}

	p.store.UpsertConcept(concept)
	p.store.AddLink(link)
	return concept, ok()
}

// RemoveConcept deletes the note's link to the concept and decrements its
// frequency. A missing link settles as not found, never as silent success.
func (p *Pipeline) RemoveConcept(ctx context.Context, noteId, conceptId uuid.UUID) Outcome {
	if err := p.adapter.UnlinkConcept(ctx, noteId, conceptId); err != nil {
		if errors.Is(err, adapter.ErrLinkNotFound) || errors.Is(err, adapter.ErrNotFound) {
			return notFound(err)
		}
		p.logger.Warn("Pipeline", "Concept unlink failed", map[string]interface{}{
			"note_id":    noteId,
			"concept_id": conceptId,
			"error":      err.Error(),
		})
		return failed(err)
	}

	p.store.RemoveLink(noteId, conceptId)
	for _, c := range p.store.Concepts() {
		if c.Id == conceptId {
			c.Frequency--
			p.store.UpsertConcept(c)
			break
		}
	}
	return ok()
}

// RemoveConceptByName resolves the concept by scanning the loaded concepts,
// then removes the link.
func (p *Pipeline) RemoveConceptByName(ctx context.Context, noteId uuid.UUID, name string) Outcome {
	concept, exists := p.store.ConceptByName(name)
	if !exists {
		return notFound(fmt.Errorf("concept %q not found", name))
	}
	return p.RemoveConcept(ctx, noteId, concept.Id)
}

// GroupResult reports a best-effort grouping: which notes took the course
// assignment and which did not.
type GroupResult struct {
	Grouped []uuid.UUID
	Failed  []uuid.UUID
}

// GroupNotesToCourse assigns every note in the selection to the course.
// Not atomic: each note is attempted independently and failures are
// aggregated, never rolled back.
func (p *Pipeline) GroupNotesToCourse(noteIds []uuid.UUID, courseId uuid.UUID) (GroupResult, Outcome) {
	var res GroupResult
	for _, id := range noteIds {
		out := p.UpdateNote(id, canvas.NotePatch{CourseId: &courseId})
		if out.OK() {
			res.Grouped = append(res.Grouped, id)
		} else {
			res.Failed = append(res.Failed, id)
		}
	}

	if len(res.Failed) > 0 {
		return res, failed(fmt.Errorf("%d of %d notes could not be grouped", len(res.Failed), len(noteIds)))
	}
	return res, ok()
}

// Flush sends every pending debounced write immediately.
func (p *Pipeline) Flush() {
	p.debounce.Flush()
}

// Close flushes pending writes; the final edit of a session must not be
// dropped.
func (p *Pipeline) Close() {
	p.debounce.Close()
}

func (p *Pipeline) raiseAlert(message string) {
	if p.alert != nil {
		p.alert(message)
	}
}

func applyPatch(note *canvas.Note, patch canvas.NotePatch) {
	if patch.Title != nil {
		note.Title = *patch.Title
	}
	if patch.Content != nil {
		note.Content = *patch.Content
	}
	if patch.Position != nil {
		note.Position = *patch.Position
	}
	if patch.Size != nil {
		note.Size = *patch.Size
	}
	if patch.BackgroundColor != nil {
		note.BackgroundColor = *patch.BackgroundColor
	}
	if patch.TextColor != nil {
		note.TextColor = *patch.TextColor
	}
	if patch.MainTakeaway != nil {
		note.MainTakeaway = patch.MainTakeaway
	}
	if patch.CourseId != nil {
		note.CourseId = patch.CourseId
	}
	if patch.ClearCourse {
		note.CourseId = nil
	}
}
