package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"study-canvas-be/pkg/canvas"

	"github.com/google/uuid"
)

// HTTPAdapter talks to the backend REST API. Responses arrive wrapped in
// the standard {code, message, data} envelope.
type HTTPAdapter struct {
	baseURL string
	client  *http.Client
}

func NewHTTPAdapter(baseURL string) *HTTPAdapter {
	return &HTTPAdapter{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type envelope[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// noteWire is the backend's flat note representation.
type noteWire struct {
	Id              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Content         string     `json:"content"`
	Kind            string     `json:"kind"`
	PositionX       float64    `json:"position_x"`
	PositionY       float64    `json:"position_y"`
	Width           float64    `json:"width"`
	Height          float64    `json:"height"`
	BackgroundColor string     `json:"background_color"`
	TextColor       string     `json:"text_color"`
	MainTakeaway    *string    `json:"main_takeaway"`
	CourseId        *uuid.UUID `json:"course_id"`
	ClearCourse     bool       `json:"clear_course,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
}

func (w noteWire) toNote() canvas.Note {
	n := canvas.Note{
		Id:              w.Id,
		Title:           w.Title,
		Content:         w.Content,
		Kind:            w.Kind,
		Position:        canvas.Position{X: w.PositionX, Y: w.PositionY},
		Size:            canvas.Size{Width: w.Width, Height: w.Height},
		BackgroundColor: w.BackgroundColor,
		TextColor:       w.TextColor,
		MainTakeaway:    w.MainTakeaway,
		CourseId:        w.CourseId,
		CreatedAt:       w.CreatedAt,
	}
	if w.UpdatedAt != nil {
		n.UpdatedAt = *w.UpdatedAt
	}
	return n
}

func fromNote(n canvas.Note) noteWire {
	return noteWire{
		Id:              n.Id,
		Title:           n.Title,
		Content:         n.Content,
		Kind:            n.Kind,
		PositionX:       n.Position.X,
		PositionY:       n.Position.Y,
		Width:           n.Size.Width,
		Height:          n.Size.Height,
		BackgroundColor: n.BackgroundColor,
		TextColor:       n.TextColor,
		MainTakeaway:    n.MainTakeaway,
		CourseId:        n.CourseId,
		ClearCourse:     n.CourseId == nil,
	}
}

type conceptWire struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  *string   `json:"category"`
	Frequency int       `json:"frequency"`
	CreatedAt time.Time `json:"created_at"`
}

func (w conceptWire) toConcept() canvas.Concept {
	return canvas.Concept{
		Id:        w.Id,
		Name:      w.Name,
		Category:  w.Category,
		Frequency: w.Frequency,
		CreatedAt: w.CreatedAt,
	}
}

type linkWire struct {
	Concept conceptWire `json:"concept"`
	Link    struct {
		NoteId    uuid.UUID `json:"note_id"`
		ConceptId uuid.UUID `json:"concept_id"`
		CreatedAt time.Time `json:"created_at"`
	} `json:"link"`
}

func (a *HTTPAdapter) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		return nil, ErrConflict
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("request %s %s failed with status %d: %s", method, path, resp.StatusCode, string(data))
	}

	return data, nil
}

func doJSON[T any](ctx context.Context, a *HTTPAdapter, method, path string, body any) (T, error) {
	var env envelope[T]
	data, err := a.do(ctx, method, path, body)
	if err != nil {
		return env.Data, err
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return env.Data, fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return env.Data, nil
}

func (a *HTTPAdapter) ListNotes(ctx context.Context) ([]canvas.Note, error) {
	wires, err := doJSON[[]noteWire](ctx, a, http.MethodGet, "/api/note/v1", nil)
	if err != nil {
		return nil, err
	}
	notes := make([]canvas.Note, len(wires))
	for i, w := range wires {
		notes[i] = w.toNote()
	}
	return notes, nil
}

func (a *HTTPAdapter) CreateNote(ctx context.Context, note canvas.Note) (canvas.Note, error) {
	w, err := doJSON[noteWire](ctx, a, http.MethodPost, "/api/note/v1", fromNote(note))
	if err != nil {
		return canvas.Note{}, err
	}
	return w.toNote(), nil
}

func (a *HTTPAdapter) UpdateNote(ctx context.Context, note canvas.Note) (canvas.Note, error) {
	w, err := doJSON[noteWire](ctx, a, http.MethodPut, "/api/note/v1/"+note.Id.String(), fromNote(note))
	if err != nil {
		return canvas.Note{}, err
	}
	return w.toNote(), nil
}

func (a *HTTPAdapter) DeleteNote(ctx context.Context, id uuid.UUID) error {
	_, err := a.do(ctx, http.MethodDelete, "/api/note/v1/"+id.String(), nil)
	return err
}

func (a *HTTPAdapter) ListCourses(ctx context.Context) ([]canvas.Course, error) {
	return doJSON[[]canvas.Course](ctx, a, http.MethodGet, "/api/course/v1", nil)
}

func (a *HTTPAdapter) CreateCourse(ctx context.Context, course canvas.Course) (canvas.Course, error) {
	return doJSON[canvas.Course](ctx, a, http.MethodPost, "/api/course/v1", course)
}

func (a *HTTPAdapter) ListInstructors(ctx context.Context) ([]canvas.Instructor, error) {
	return doJSON[[]canvas.Instructor](ctx, a, http.MethodGet, "/api/instructor/v1", nil)
}

func (a *HTTPAdapter) CreateInstructor(ctx context.Context, instructor canvas.Instructor) (canvas.Instructor, error) {
	return doJSON[canvas.Instructor](ctx, a, http.MethodPost, "/api/instructor/v1", instructor)
}

func (a *HTTPAdapter) UpdateInstructor(ctx context.Context, instructor canvas.Instructor) (canvas.Instructor, error) {
	return doJSON[canvas.Instructor](ctx, a, http.MethodPut, "/api/instructor/v1/"+instructor.Id.String(), instructor)
}

func (a *HTTPAdapter) DeleteInstructor(ctx context.Context, id uuid.UUID) error {
	_, err := a.do(ctx, http.MethodDelete, "/api/instructor/v1/"+id.String(), nil)
	return err
}

func (a *HTTPAdapter) ListConcepts(ctx context.Context) ([]canvas.Concept, error) {
	wires, err := doJSON[[]conceptWire](ctx, a, http.MethodGet, "/api/concept/v1", nil)
	if err != nil {
		return nil, err
	}
	concepts := make([]canvas.Concept, len(wires))
	for i, w := range wires {
		concepts[i] = w.toConcept()
	}
	return concepts, nil
}

func (a *HTTPAdapter) CreateConcept(ctx context.Context, concept canvas.Concept) (canvas.Concept, error) {
	w, err := doJSON[conceptWire](ctx, a, http.MethodPost, "/api/concept/v1", concept)
	if err != nil {
		return canvas.Concept{}, err
	}
	return w.toConcept(), nil
}

func (a *HTTPAdapter) LinkConcept(ctx context.Context, noteId uuid.UUID, name string, category *string) (canvas.Concept, canvas.NoteConcept, error) {
	body := map[string]any{"name": name}
	if category != nil {
		body["category"] = *category
	}
	w, err := doJSON[linkWire](ctx, a, http.MethodPost, "/api/note/v1/"+noteId.String()+"/concepts", body)
	if err != nil {
		if err == ErrConflict {
			err = ErrAlreadyLinked
		}
		return canvas.Concept{}, canvas.NoteConcept{}, err
	}
	link := canvas.NoteConcept{
		NoteId:    w.Link.NoteId,
		ConceptId: w.Link.ConceptId,
		CreatedAt: w.Link.CreatedAt,
	}
	return w.Concept.toConcept(), link, nil
}

func (a *HTTPAdapter) UnlinkConcept(ctx context.Context, noteId, conceptId uuid.UUID) error {
	_, err := a.do(ctx, http.MethodDelete, "/api/note/v1/"+noteId.String()+"/concepts/"+conceptId.String(), nil)
	if err == ErrNotFound {
		return ErrLinkNotFound
	}
	return err
}

func (a *HTTPAdapter) ListConnections(ctx context.Context) ([]canvas.Connection, error) {
	return doJSON[[]canvas.Connection](ctx, a, http.MethodGet, "/api/connection/v1", nil)
}

func (a *HTTPAdapter) CreateConnection(ctx context.Context, connection canvas.Connection) (canvas.Connection, error) {
	return doJSON[canvas.Connection](ctx, a, http.MethodPost, "/api/connection/v1", connection)
}

func (a *HTTPAdapter) DeleteConnection(ctx context.Context, id uuid.UUID) error {
	_, err := a.do(ctx, http.MethodDelete, "/api/connection/v1/"+id.String(), nil)
	return err
}

// ExportNotes returns the raw PDF bytes; this endpoint does not use the
// JSON envelope.
func (a *HTTPAdapter) ExportNotes(ctx context.Context, noteIds []uuid.UUID) ([]byte, error) {
	return a.do(ctx, http.MethodPost, "/api/export/v1/pdf", map[string]any{"note_ids": noteIds})
}
