package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	even := Filter([]int{1, 2, 3, 4}, func(i int) bool { return i%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)
}

func TestMap(t *testing.T) {
	doubled := Map([]int{1, 2, 3}, func(i int) int { return i * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled)
}

func TestReduce(t *testing.T) {
	sum := Reduce([]int{1, 2, 3}, func(acc int, i int) int { return acc + i }, 10)
	assert.Equal(t, 16, sum)
}

func TestCountBy(t *testing.T) {
	count := CountBy([]int{1, 2, 3, 4, 5}, func(i int) bool { return i > 2 })
	assert.Equal(t, 3, count)
}

func TestUniqBy(t *testing.T) {
	uniq := UniqBy([]int{1, 2, 2, 3, 1}, func(i int) int { return i })
	assert.Equal(t, []int{1, 2, 3}, uniq)
}

func TestRoundToThousand(t *testing.T) {
	assert.Equal(t, 3000, RoundToThousand(2500))
	assert.Equal(t, 2000, RoundToThousand(2499))
	assert.Equal(t, 0, RoundToThousand(0))
	assert.Equal(t, 140000, RoundToThousand(139750))
}
