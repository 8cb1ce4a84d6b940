// Package sync is the mutation pipeline: optimistic local apply followed by
// a debounced, best-effort remote write, with typed outcomes instead of
// thrown errors.
package sync

// Status discriminates how a mutation settled.
type Status int

const (
	// StatusOK: local apply done, remote reconcile succeeded (or is pending
	// behind the debounce window).
	StatusOK Status = iota
	// StatusConflict: the store refused the write for a rule the caller can
	// act on (duplicate name, duplicate link).
	StatusConflict
	// StatusFailed: remote reconcile failed; the optimistic local value is
	// retained.
	StatusFailed
	// StatusNotFound: the target entity no longer exists.
	StatusNotFound
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusConflict:
		return "conflict"
	case StatusFailed:
		return "failed"
	case StatusNotFound:
		return "not_found"
	}
	return "unknown"
}

// Outcome is the discriminated result every pipeline operation returns.
// Callers branch on Status; Err carries detail for logging.
type Outcome struct {
	Status Status
	Err    error
}

func (o Outcome) OK() bool {
	return o.Status == StatusOK
}

func ok() Outcome {
	return Outcome{Status: StatusOK}
}

func conflict(err error) Outcome {
	return Outcome{Status: StatusConflict, Err: err}
}

func failed(err error) Outcome {
	return Outcome{Status: StatusFailed, Err: err}
}

func notFound(err error) Outcome {
	return Outcome{Status: StatusNotFound, Err: err}
}
