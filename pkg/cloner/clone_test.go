package cloner_test

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/gruntwork-io/go-utils/pkg/cloner"
	"github.com/gruntwork-io/go-utils/pkg/deepequal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type account struct {
	ID       string
	Tags     []string
	Owner    *owner
	Meta     map[string]any
	revision int
}

type owner struct {
	Name string
}

func TestCloneNull(t *testing.T) {
	t.Parallel()

	var initial any

	cloned := cloner.Clone(initial)

	assert.Nil(t, cloned)
}

func TestCloneString(t *testing.T) {
	t.Parallel()

	initial := "abc"
	cloned := cloner.Clone(initial)

	assert.Equal(t, "abc", cloned)
	assert.True(t, deepequal.Equal(initial, cloned))
}

func TestCloneArray(t *testing.T) {
	t.Parallel()

	expected := []int{1, 2, 3}

	initial := []int{1, 2, 3}
	cloned := cloner.Clone(initial)

	assert.True(t, deepequal.Equal(initial, cloned))
	assert.NotSame(t, &initial[0], &cloned[0])

	cloned[1] = 4

	assert.Equal(t, expected, initial)
	assert.Equal(t, []int{1, 4, 3}, cloned)
	assert.False(t, deepequal.Equal(initial, cloned))
}

func TestCloneObject(t *testing.T) {
	t.Parallel()

	expected := map[string]any{"a": 1, "b": 2, "c": 3}

	initial := map[string]any{"a": 1, "b": 2, "c": 3}
	cloned := cloner.Clone(initial)

	assert.True(t, deepequal.Equal(initial, cloned))
	assert.NotEqual(t, reflect.ValueOf(initial).Pointer(), reflect.ValueOf(cloned).Pointer())

	cloned["b"] = 4

	assert.Equal(t, expected, initial)
	assert.Equal(t, map[string]any{"a": 1, "b": 4, "c": 3}, cloned)
}

func TestCloneNested(t *testing.T) {
	t.Parallel()

	build := func() map[string]any {
		return map[string]any{
			"a": 1,
			"b": []any{map[string]any{"d": 4, "e": map[string]any{"5": "f"}}},
			"c": 3,
		}
	}

	initial := build()
	cloned := cloner.Clone(initial)

	assert.Empty(t, cmp.Diff(build(), cloned))

	nested := cloned["b"].([]any)[0].(map[string]any) //nolint:forcetypeassert
	nested["d"] = 5
	cloned["b"] = 4

	assert.Empty(t, cmp.Diff(build(), initial))
	assert.Equal(t, 4, cloned["b"])
}

func TestCloneStruct(t *testing.T) {
	t.Parallel()

	initial := &account{
		ID:       "acc-1",
		Tags:     []string{"a", "b"},
		Owner:    &owner{Name: "root"},
		Meta:     map[string]any{"tier": []any{"gold"}},
		revision: 7,
	}

	cloned := cloner.Clone(initial)

	require.NotSame(t, initial, cloned)
	require.NotSame(t, initial.Owner, cloned.Owner)
	assert.True(t, deepequal.Equal(initial, cloned))
	assert.Equal(t, 7, cloned.revision)

	cloned.Tags[0] = "z"
	cloned.Owner.Name = "other"
	cloned.Meta["tier"].([]any)[0] = "silver" //nolint:forcetypeassert

	assert.Equal(t, []string{"a", "b"}, initial.Tags)
	assert.Equal(t, "root", initial.Owner.Name)
	assert.Equal(t, []any{"gold"}, initial.Meta["tier"])
}

func TestCloneWithDatePredicate(t *testing.T) {
	t.Parallel()

	initial := time.Now()
	cloned := cloner.Clone(&initial, cloner.WithPredicates(cloner.CloneDate))

	assert.NotSame(t, &initial, cloned)
	assert.True(t, deepequal.Equal(&initial, cloned))

	*cloned = cloned.Add(time.Hour)

	assert.False(t, deepequal.Equal(&initial, cloned))
}

func TestCloneDatesArePassedThroughByDefault(t *testing.T) {
	t.Parallel()

	initial := time.Now()
	cloned := cloner.Clone(&initial)

	assert.Same(t, &initial, cloned)
}

func TestCloneOverride(t *testing.T) {
	t.Parallel()

	initial := []int{1, 2, 3}
	cloned := cloner.Clone(initial, cloner.WithOverride())

	assert.Same(t, &initial[0], &cloned[0])
}

func TestClonePredicatesRunBeforeBuiltinsAndRecurse(t *testing.T) {
	t.Parallel()

	var visited []string

	upper := func(ctx cloner.Context) (any, bool) {
		str, ok := ctx.Value.(string)
		if !ok {
			return nil, false
		}

		visited = append(visited, str)

		return strings.ToUpper(str), true
	}

	initial := map[string]any{"list": []any{"a", map[string]any{"b": "c"}}}
	cloned := cloner.Clone(initial, cloner.WithPredicates(upper))

	assert.Equal(t, map[string]any{"list": []any{"A", map[string]any{"b": "C"}}}, cloned)
	assert.ElementsMatch(t, []string{"a", "c"}, visited)
}

func TestCloneFirstMatchWins(t *testing.T) {
	t.Parallel()

	first := func(ctx cloner.Context) (any, bool) {
		if _, ok := ctx.Value.([]int); ok {
			return []int{42}, true
		}

		return nil, false
	}
	second := func(ctx cloner.Context) (any, bool) {
		return []int{0}, true
	}

	cloned := cloner.Clone([]int{1}, cloner.WithPredicates(first, second))

	assert.Equal(t, []int{42}, cloned)
}

func TestCloneMismatchedPredicateResultKeepsSource(t *testing.T) {
	t.Parallel()

	wrong := func(ctx cloner.Context) (any, bool) {
		return "not a slice", true
	}

	initial := []int{1}
	cloned := cloner.Clone(initial, cloner.WithPredicates(wrong))

	assert.Same(t, &initial[0], &cloned[0])
}

func TestCloneMapPredicate(t *testing.T) {
	t.Parallel()

	initial := map[int][]string{1: {"a"}}
	set := map[string]struct{}{"a": {}}

	passedThrough := cloner.Clone(initial)
	assert.Equal(t, reflect.ValueOf(initial).Pointer(), reflect.ValueOf(passedThrough).Pointer())

	cloned := cloner.Clone(initial, cloner.WithPredicates(cloner.CloneMap))
	cloned[1][0] = "b"

	assert.Equal(t, []string{"a"}, initial[1])

	clonedSet := cloner.Clone(set, cloner.WithPredicates(cloner.CloneMap))
	clonedSet["b"] = struct{}{}

	assert.Len(t, set, 1)
}

func TestCloneAnyPredicate(t *testing.T) {
	t.Parallel()

	initial := account{ID: "acc-1", Tags: []string{"a"}, revision: 3}

	cloned := cloner.Clone(initial, cloner.WithOverride(), cloner.WithPredicates(cloner.CloneAny))
	cloned.Tags[0] = "b"

	assert.Equal(t, "a", initial.Tags[0])
	assert.Equal(t, 3, cloned.revision)
}
