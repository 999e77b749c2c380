package fswitch

import (
	"time"

	"github.com/google/uuid"
)

// ResultProvider is the read side of a finalized match.
type ResultProvider[R any] interface {
	// Match returns the captured value, zero when absent
	Match() R
	// HasResult reports whether a callback produced the value
	HasResult() bool
	// CreatedAt time of finalization (UTC)
	CreatedAt() time.Time
}

// Traced extends ResultProvider with the identity of the handle
type Traced[R any] interface {
	ResultProvider[R]
	// Id of the handle, kept across Map
	Id() uuid.UUID
	// Matched reports whether a case decided the result
	Matched() bool
}

var _ Traced[any] = Result[any]{}
