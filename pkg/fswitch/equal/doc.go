// Package equal decides whether two values are equal under type-aware rules.
//
// The rules, in priority order:
// - values of different fundamental kinds are never equal, no coercion
// - absent and primitive values compare by strict identity
// - slices and arrays compare element by element with strict identity,
//   nested sequences compare by reference
// - zero-argument callables compare by the values they produce
// - other objects compare structurally, either through Fielder or deeply
//
// Equal never panics. Anything the rules do not cover is unequal.
//
// Typed strategies (Strict, Shallow, Thunk, Structural, Deep, Serialized)
// let callers pick a Comparer for a concrete entity type; For picks one from
// the static type.
package equal
