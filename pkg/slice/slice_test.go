package slice

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	assert.Nil(t, Map[int, string](nil, strconv.Itoa))
	assert.Equal(t, []string{"1", "2"}, Map([]int{1, 2}, strconv.Itoa))
}

func TestFilter(t *testing.T) {
	assert.Nil(t, Filter[int](nil, func(int) bool { return true }))
	assert.Equal(t, []int{2, 4}, Filter([]int{1, 2, 3, 4}, func(v int) bool { return v%2 == 0 }))
	assert.Equal(t, []int{}, Filter([]int{1}, func(int) bool { return false }))
}

func TestUnique(t *testing.T) {
	assert.Nil(t, Unique[int64](nil))
	assert.Equal(t, []int64{}, Unique([]int64{}))
	assert.Equal(t, []int64{3, 1, 2}, Unique([]int64{3, 1, 3, 2, 1}))
}
