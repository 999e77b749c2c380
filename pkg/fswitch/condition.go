package fswitch

// ConditionKind tells how a Condition tests the subject.
type ConditionKind uint8

const (
	LiteralCondition ConditionKind = iota + 1
	CandidateCondition
	PredicateCondition
)

func (k ConditionKind) String() string {
	switch k {
	case LiteralCondition:
		return "literal"
	case CandidateCondition:
		return "one-of"
	case PredicateCondition:
		return "predicate"
	}
	return "none"
}

// Condition is a literal, a candidate list or a predicate. The zero value
// never matches.
type Condition[S any] struct {
	kind       ConditionKind
	literal    S
	candidates []S
	predicate  func(S) bool
}

// Is matches a subject equal to v.
func Is[S any](v S) Condition[S] {
	return Condition[S]{kind: LiteralCondition, literal: v}
}

// OneOf matches a subject equal to any of vs. When the candidates do not
// share the subject's kind, the list as a whole is compared to the subject.
func OneOf[S any](vs ...S) Condition[S] {
	return Condition[S]{kind: CandidateCondition, candidates: append([]S(nil), vs...)}
}

// Where matches when p returns true for the subject.
func Where[S any](p func(S) bool) Condition[S] {
	return Condition[S]{kind: PredicateCondition, predicate: p}
}

// Kind reports which constructor built c.
func (c Condition[S]) Kind() ConditionKind {
	return c.kind
}
