package fswitch

import (
	"github.com/rs/zerolog"

	"github.com/ib-77/fswitch/pkg/fswitch/equal"
)

// Switch is an immutable match expression over a subject of type S producing
// a result of type R.
type Switch[S, R any] struct {
	subject S
	matched bool
	result  R
	present bool
	cases   int
	compare equal.Comparer[S]
	custom  bool
	engine  equal.Engine
	log     zerolog.Logger
}

// On starts a Switch over subject.
func On[S, R any](subject S, opts ...Option) Switch[S, R] {
	o := newOptions(opts)
	compare, custom := comparerFor[S](o)
	return Switch[S, R]{
		subject: subject,
		compare: compare,
		custom:  custom,
		engine:  o.engine(),
		log:     o.Logger,
	}
}

// Subject returns the value every case is tested against.
func (s Switch[S, R]) Subject() S {
	return s.subject
}

// Matched reports whether a case has matched so far.
func (s Switch[S, R]) Matched() bool {
	return s.matched
}

// Comparing replaces the comparison strategy for the cases attached next.
// A candidate list is then matched element by element only, the whole-list
// fallback is skipped since c cannot compare a list with the subject.
func (s Switch[S, R]) Comparing(c equal.Comparer[S]) Switch[S, R] {
	if c != nil {
		s.compare = c
		s.custom = true
	}
	return s
}

// When adds a case. The condition is tested right away; on the first match
// callback runs with the subject and every later case is skipped.
func (s Switch[S, R]) When(cond Condition[S], callback func(S) R) Switch[S, R] {
	return s.attach(cond, func(v S) (R, bool) { return invoke(callback, v) })
}

// WhenDo adds a case whose callback produces no value.
func (s Switch[S, R]) WhenDo(cond Condition[S], callback func(S)) Switch[S, R] {
	return s.attach(cond, func(v S) (R, bool) { return perform[S, R](callback, v) })
}

// Case adds a case matching a subject equal to v.
func (s Switch[S, R]) Case(v S, callback func(S) R) Switch[S, R] {
	return s.When(Is(v), callback)
}

// CaseOf adds a case matching a subject equal to any of vs.
func (s Switch[S, R]) CaseOf(vs []S, callback func(S) R) Switch[S, R] {
	return s.When(OneOf(vs...), callback)
}

// CaseWhere adds a case matching when p returns true for the subject.
func (s Switch[S, R]) CaseWhere(p func(S) bool, callback func(S) R) Switch[S, R] {
	return s.When(Where(p), callback)
}

// Default ends the chain. callback runs only if no case matched.
func (s Switch[S, R]) Default(callback func(S) R) Result[R] {
	return s.finalize(func(v S) (R, bool) { return invoke(callback, v) })
}

// DefaultDo ends the chain with a default that produces no value.
func (s Switch[S, R]) DefaultDo(callback func(S)) Result[R] {
	return s.finalize(func(v S) (R, bool) { return perform[S, R](callback, v) })
}

// Otherwise ends the chain with a constant default.
func (s Switch[S, R]) Otherwise(v R) Result[R] {
	return s.finalize(func(S) (R, bool) { return v, true })
}

// Match ends the chain without a default, the result is absent when no case
// matched.
func (s Switch[S, R]) Match() Result[R] {
	return s.finalize(nil)
}

func (s Switch[S, R]) attach(cond Condition[S], run func(S) (R, bool)) Switch[S, R] {
	if s.matched {
		return s
	}
	s.cases++
	if !s.test(cond) {
		return s
	}

	s.matched = true
	s.log.Debug().Int("case", s.cases).Stringer("condition", cond.kind).Msg("case matched")
	s.result, s.present = run(s.subject)
	return s
}

func (s Switch[S, R]) finalize(run func(S) (R, bool)) Result[R] {
	if !s.matched && run != nil {
		s.log.Debug().Int("cases", s.cases).Msg("default used")
		s.result, s.present = run(s.subject)
	}
	return newResult(s.result, s.present, s.matched)
}

func (s Switch[S, R]) test(cond Condition[S]) bool {
	switch cond.kind {
	case PredicateCondition:
		return s.holds(cond.predicate)
	case CandidateCondition:
		if s.homogeneous(cond.candidates) {
			for _, c := range cond.candidates {
				if s.comparer()(c, s.subject) {
					return true
				}
			}
		}
		if s.custom {
			return false
		}
		return s.engine.Equal(cond.candidates, s.subject)
	case LiteralCondition:
		return s.comparer()(cond.literal, s.subject)
	}
	return false
}

func (s Switch[S, R]) comparer() equal.Comparer[S] {
	if s.compare == nil {
		return equal.Using[S](s.engine)
	}
	return s.compare
}

func (s Switch[S, R]) homogeneous(candidates []S) bool {
	for _, c := range candidates {
		if !equal.SameKind(c, s.subject) {
			return false
		}
	}
	return true
}

func (s Switch[S, R]) holds(p func(S) bool) (ok bool) {
	if p == nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			s.log.Warn().Interface("panic", r).Int("case", s.cases).Msg("predicate panicked")
			ok = false
		}
	}()
	return p(s.subject)
}

func invoke[S, R any](callback func(S) R, v S) (R, bool) {
	if callback == nil {
		var zero R
		return zero, false
	}
	return callback(v), true
}

func perform[S, R any](callback func(S), v S) (R, bool) {
	if callback != nil {
		callback(v)
	}
	var zero R
	return zero, false
}
