package fswitch

import (
	"time"

	"github.com/google/uuid"
)

// Result is the read-only outcome of a finalized Switch.
type Result[R any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     R
	hasResult bool
	matched   bool
}

func newResult[R any](value R, hasResult, matched bool) Result[R] {
	return Result[R]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     value,
		hasResult: hasResult,
		matched:   matched,
	}
}

// Match returns the value produced by the matched case or the default. It is
// the zero value when no callback produced one.
func (r Result[R]) Match() R {
	return r.value
}

// HasResult reports whether a callback produced a value.
func (r Result[R]) HasResult() bool {
	return r.hasResult
}

// Matched reports whether a case, not the default, decided the result.
func (r Result[R]) Matched() bool {
	return r.matched
}

func (r Result[R]) Id() uuid.UUID {
	return r.id
}

// CreatedAt time of finalization (UTC)
func (r Result[R]) CreatedAt() time.Time {
	return r.createdAt
}

// Map transforms a present result. Absence and identity carry over. A nil f
// yields an absent result, since no U can be produced without it.
func Map[R, U any](r Result[R], f func(R) U) Result[U] {
	out := Result[U]{
		id:        r.id,
		createdAt: r.createdAt,
		matched:   r.matched,
	}
	if r.hasResult && f != nil {
		out.value = f(r.value)
		out.hasResult = true
	}
	return out
}
