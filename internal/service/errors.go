package service

import "errors"

// Typed outcomes the controllers branch on. Conflicts (duplicate name,
// duplicate link) and not-found are part of the API contract, distinguished
// from generic failure.
var (
	ErrNotFound       = errors.New("entity not found")
	ErrDuplicateName  = errors.New("concept name already exists")
	ErrAlreadyLinked  = errors.New("note already linked to concept")
	ErrLinkNotFound   = errors.New("note-concept link not found")
	ErrConceptInUse   = errors.New("concept still linked to notes")
	ErrSelfConnection = errors.New("connection endpoints must differ")
)
