package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vizehq/vize/arena"
)

func TestVecPushGet(t *testing.T) {
	v := arena.NewVec[string](2)
	i0 := v.Push("a")
	i1 := v.Push("b")
	assert.Equal(t, 0, i0)
	assert.Equal(t, 1, i1)
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, "a", v.Get(0))
	v.Set(0, "z")
	assert.Equal(t, "z", v.Get(0))
}

func TestSmallVecStaysInline(t *testing.T) {
	var sv arena.SmallVec[string]
	sv.Push("bold")
	sv.Push("italic")
	sv.Push("trim")
	assert.Equal(t, 3, sv.Len())
	assert.Equal(t, []string{"bold", "italic", "trim"}, sv.Slice())
}

func TestSmallVecSpillsPastFour(t *testing.T) {
	var sv arena.SmallVec[int]
	for i := 0; i < 6; i++ {
		sv.Push(i)
	}
	assert.Equal(t, 6, sv.Len())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, sv.Slice())
}

func TestMapPreservesInsertionOrder(t *testing.T) {
	m := arena.NewMap[int]()
	m.Set("z", 1)
	m.Set("a", 2)
	m.Set("m", 3)
	assert.Equal(t, []string{"z", "a", "m"}, m.Keys())

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestMapSetOverwritesWithoutReordering(t *testing.T) {
	m := arena.NewMap[string]()
	m.Set("class", "a")
	m.Set("id", "x")
	m.Set("class", "b")
	assert.Equal(t, []string{"class", "id"}, m.Keys())
	v, _ := m.Get("class")
	assert.Equal(t, "b", v)
}

func TestMapEachVisitsInOrder(t *testing.T) {
	m := arena.NewMap[int]()
	m.Set("one", 1)
	m.Set("two", 2)

	var seen []string
	m.Each(func(key string, val int) {
		seen = append(seen, key)
	})
	assert.Equal(t, []string{"one", "two"}, seen)
}
