package dto

type PreferencesResponse struct {
	Theme           string `json:"theme"`
	DefaultNoteKind string `json:"default_note_kind"`
	SnapToGrid      bool   `json:"snap_to_grid"`
}

type UpdatePreferencesRequest struct {
	Theme           *string `json:"theme" validate:"omitempty,oneof=light dark system"`
	DefaultNoteKind *string `json:"default_note_kind"`
	SnapToGrid      *bool   `json:"snap_to_grid"`
}
