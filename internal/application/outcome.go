package application

import (
	"github.com/putrafajarh/protospace/internal/domain/authz"
	"github.com/putrafajarh/protospace/internal/domain/entity"
)

// State tags the result of a submission workflow run.
type State int

const (
	// StateCommitted means the entity was validated and persisted.
	StateCommitted State = iota
	// StateUnauthorized means the policy denied the action; Redirect says
	// where the boundary should send the subject.
	StateUnauthorized
	// StateValidationFailed means one or more field rules were violated.
	// Entity still carries every proposed value except the image binary,
	// so the caller can re-render the form without losing input.
	StateValidationFailed
	// StateNotFound means a referenced record is absent, e.g. the parent
	// prototype of a comment was concurrently deleted.
	StateNotFound
	// StateFailed means the store or image store reported an I/O error.
	// Nothing was partially committed.
	StateFailed
)

// Outcome is the tagged result every workflow entry point returns.
type Outcome[T any] struct {
	State    State
	Entity   T
	Redirect authz.RedirectKind
	Errors   entity.ValidationErrors
	Err      error
}

func committed[T any](e T) Outcome[T] {
	return Outcome[T]{State: StateCommitted, Entity: e}
}

func unauthorized[T any](redirect authz.RedirectKind) Outcome[T] {
	return Outcome[T]{State: StateUnauthorized, Redirect: redirect}
}

func invalid[T any](e T, errs entity.ValidationErrors) Outcome[T] {
	return Outcome[T]{State: StateValidationFailed, Entity: e, Errors: errs}
}

func notFound[T any]() Outcome[T] {
	return Outcome[T]{State: StateNotFound}
}

func failed[T any](err error) Outcome[T] {
	return Outcome[T]{State: StateFailed, Err: err}
}
