package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwapRemove(t *testing.T) {
	s := []int{1, 2, 3, 4}
	backing := s[:cap(s)]

	s = SwapRemove(s, 1)

	assert.Equal(t, []int{1, 4, 3}, s)
	assert.Zero(t, backing[3], "popped slot must be cleared")
}

func TestSwapRemoveLast(t *testing.T) {
	s := []string{"a", "b"}
	s = SwapRemove(s, 1)
	assert.Equal(t, []string{"a"}, s)
}

func TestRemoveIfVisitsEveryElementOnce(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6, 7, 8}
	visited := make(map[int]int)
	released := make([]int, 0)

	s = RemoveIf(s, func(v int) bool {
		visited[v]++
		return v%2 == 0
	}, func(v int) {
		released = append(released, v)
	})

	assert.ElementsMatch(t, []int{1, 3, 5, 7}, s)
	assert.ElementsMatch(t, []int{2, 4, 6, 8}, released)
	for v, n := range visited {
		assert.Equal(t, 1, n, "element %d visited %d times", v, n)
	}
}
