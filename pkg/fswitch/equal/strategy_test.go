package equal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrict(t *testing.T) {
	t.Parallel()

	assert.True(t, Strict[int]()(42, 42))
	assert.False(t, Strict[int]()(42, 24))

	// == on interfaces holding slices panics, the comparer does not
	assert.False(t, Strict[any]()([]int{1}, []int{1}))
	assert.False(t, Strict[any]()("1", 1))
}

func TestShallow(t *testing.T) {
	t.Parallel()

	c := Shallow[int]()
	assert.True(t, c([]int{1, 2}, []int{1, 2}))
	assert.False(t, c([]int{1, 2}, []int{2, 1}))
	assert.False(t, c([]int{1}, []int{1, 1}))
	assert.True(t, c(nil, []int{}))
}

func TestThunk(t *testing.T) {
	t.Parallel()

	c := Thunk[string]()
	assert.True(t, c(func() string { return "a" }, func() string { return "a" }))
	assert.False(t, c(func() string { return "a" }, func() string { return "b" }))
	assert.False(t, c(func() string { return "a" }, nil))
	assert.True(t, c(nil, nil))
	assert.False(t, c(func() string { panic("boom") }, func() string { return "a" }))
}

func TestStructural(t *testing.T) {
	t.Parallel()

	c := Structural[user]()
	assert.True(t, c(user{ID: 1, Name: "a", Notes: []string{"x"}}, user{ID: 1, Name: "a"}))
	assert.False(t, c(user{ID: 1, Name: "a"}, user{ID: 1, Name: "b"}))

	accounts := Structural[*account]()
	assert.True(t, accounts(nil, nil))
	assert.False(t, accounts(nil, &account{Number: 1}))
	assert.True(t, accounts(&account{Number: 2}, &account{Number: 2}))
}

func TestDeep(t *testing.T) {
	t.Parallel()

	c := Deep[map[string][]int]()
	assert.True(t, c(map[string][]int{"a": {1}, "b": {2}}, map[string][]int{"b": {2}, "a": {1}}))
	assert.False(t, c(map[string][]int{"a": {1}}, map[string][]int{"a": {2}}))
}

func TestSerialized(t *testing.T) {
	t.Parallel()

	c := Serialized[point]()
	assert.True(t, c(point{1, 2}, point{1, 2}))
	assert.False(t, c(point{1, 2}, point{1, 3}))
}

func TestFor(t *testing.T) {
	t.Parallel()

	t.Run("interface", func(t *testing.T) {
		c := For[any]()
		assert.False(t, c("1", 1))
		assert.True(t, c([]any{42, "42"}, []any{42, "42"}))
	})

	t.Run("primitive", func(t *testing.T) {
		c := For[string]()
		assert.True(t, c("ok", "ok"))
		assert.False(t, c("ok", "OK"))
	})

	t.Run("sequence", func(t *testing.T) {
		c := For[[]any]()
		assert.True(t, c([]any{200, nil}, []any{200, nil}))
		assert.False(t, c([]any{[]int{1}}, []any{[]int{1}}))
	})

	t.Run("callable", func(t *testing.T) {
		c := For[func() int]()
		assert.True(t, c(func() int { return 3 }, func() int { return 3 }))
	})

	t.Run("object", func(t *testing.T) {
		c := For[point]()
		assert.True(t, c(point{1, 2}, point{1, 2}))
		assert.False(t, c(point{1, 2}, point{2, 1}))
	})

	t.Run("serialized objects", func(t *testing.T) {
		c := Using[secret](Engine{SerializedObjects: true})
		assert.True(t, c(secret{1}, secret{2}))
	})
}
