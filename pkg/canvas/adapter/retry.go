package adapter

import (
	"context"
	"strings"
	"time"

	"study-canvas-be/internal/pkg/logger"
	"study-canvas-be/pkg/canvas"

	"github.com/google/uuid"
)

// connectionSubstrings classify a failure as transient. Only errors whose
// message carries one of these are retried.
var connectionSubstrings = []string{
	"connection refused",
	"connection reset",
	"broken pipe",
	"no such host",
	"i/o timeout",
	"network is unreachable",
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, s := range connectionSubstrings {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}

// WithRetry decorates an adapter with the read retry policy: reads are
// retried exactly once after a fixed delay when the failure looks like a
// connection problem. Writes are never retried; an at-most-once write can
// not be made safe by blind repetition.
func WithRetry(inner Adapter, delay time.Duration, log logger.ILogger) Adapter {
	return &retryAdapter{inner: inner, delay: delay, logger: log}
}

type retryAdapter struct {
	inner  Adapter
	delay  time.Duration
	logger logger.ILogger
}

func retryRead[T any](ctx context.Context, r *retryAdapter, op string, fn func(context.Context) (T, error)) (T, error) {
	res, err := fn(ctx)
	if err == nil || !isConnectionError(err) {
		return res, err
	}

	r.logger.Warn("Adapter", "Read failed, retrying once", map[string]interface{}{
		"operation": op,
		"error":     err.Error(),
	})

	select {
	case <-time.After(r.delay):
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}

	return fn(ctx)
}

func (r *retryAdapter) ListNotes(ctx context.Context) ([]canvas.Note, error) {
	return retryRead(ctx, r, "list_notes", r.inner.ListNotes)
}

func (r *retryAdapter) ListCourses(ctx context.Context) ([]canvas.Course, error) {
	return retryRead(ctx, r, "list_courses", r.inner.ListCourses)
}

func (r *retryAdapter) ListInstructors(ctx context.Context) ([]canvas.Instructor, error) {
	return retryRead(ctx, r, "list_instructors", r.inner.ListInstructors)
}

func (r *retryAdapter) ListConcepts(ctx context.Context) ([]canvas.Concept, error) {
	return retryRead(ctx, r, "list_concepts", r.inner.ListConcepts)
}

func (r *retryAdapter) ListConnections(ctx context.Context) ([]canvas.Connection, error) {
	return retryRead(ctx, r, "list_connections", r.inner.ListConnections)
}

func (r *retryAdapter) CreateNote(ctx context.Context, note canvas.Note) (canvas.Note, error) {
	return r.inner.CreateNote(ctx, note)
}

func (r *retryAdapter) UpdateNote(ctx context.Context, note canvas.Note) (canvas.Note, error) {
	return r.inner.UpdateNote(ctx, note)
}

func (r *retryAdapter) DeleteNote(ctx context.Context, id uuid.UUID) error {
	return r.inner.DeleteNote(ctx, id)
}

func (r *retryAdapter) CreateCourse(ctx context.Context, course canvas.Course) (canvas.Course, error) {
	return r.inner.CreateCourse(ctx, course)
}

func (r *retryAdapter) CreateInstructor(ctx context.Context, instructor canvas.Instructor) (canvas.Instructor, error) {
	return r.inner.CreateInstructor(ctx, instructor)
}

func (r *retryAdapter) UpdateInstructor(ctx context.Context, instructor canvas.Instructor) (canvas.Instructor, error) {
	return r.inner.UpdateInstructor(ctx, instructor)
}

func (r *retryAdapter) DeleteInstructor(ctx context.Context, id uuid.UUID) error {
	return r.inner.DeleteInstructor(ctx, id)
}

func (r *retryAdapter) CreateConcept(ctx context.Context, concept canvas.Concept) (canvas.Concept, error) {
	return r.inner.CreateConcept(ctx, concept)
}

func (r *retryAdapter) LinkConcept(ctx context.Context, noteId uuid.UUID, name string, category *string) (canvas.Concept, canvas.NoteConcept, error) {
	return r.inner.LinkConcept(ctx, noteId, name, category)
}

func (r *retryAdapter) UnlinkConcept(ctx context.Context, noteId, conceptId uuid.UUID) error {
	return r.inner.UnlinkConcept(ctx, noteId, conceptId)
}

func (r *retryAdapter) CreateConnection(ctx context.Context, connection canvas.Connection) (canvas.Connection, error) {
	return r.inner.CreateConnection(ctx, connection)
}

func (r *retryAdapter) DeleteConnection(ctx context.Context, id uuid.UUID) error {
	return r.inner.DeleteConnection(ctx, id)
}

func (r *retryAdapter) ExportNotes(ctx context.Context, noteIds []uuid.UUID) ([]byte, error) {
	return r.inner.ExportNotes(ctx, noteIds)
}
