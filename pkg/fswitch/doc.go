// Package fswitch provides a fluent, expression-style switch.
//
// A Switch is bound to a subject with On, collects cases with When (or the
// Case/CaseOf/CaseWhere shorthands) and ends with Default, which returns a
// Result handle:
//
//	label := fswitch.On[int, string](code).
//		Case(200, func(int) string { return "ok" }).
//		CaseOf([]int{301, 302}, func(int) string { return "moved" }).
//		CaseWhere(func(c int) bool { return c >= 500 }, func(int) string { return "server" }).
//		Default(func(int) string { return "other" }).
//		Match()
//
// Cases are evaluated in attachment order, at the moment they are attached.
// The first match wins: its callback runs, later cases and the default are
// skipped. A Switch is an immutable value, every step returns a new one.
//
// A nil callback never runs and leaves the result absent, a nil predicate
// never matches.
//
// Equality of subjects and candidates is decided by package equal.
package fswitch
