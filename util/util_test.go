package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueKeepsFirstOccurrenceOrder(t *testing.T) {
	assert.Equal(t, []string{"Dm", "F", "C"}, Unique([]string{"Dm", "F", "Dm", "C", "F"}))
	assert.Equal(t, []string{}, Unique([]string{}))
}

func TestIntersect(t *testing.T) {
	assert.Equal(t, []string{"C"}, Intersect([]string{"C", "E", "G"}, []string{"F", "A", "C"}))
	assert.Nil(t, Intersect([]string{"C", "E", "G"}, []string{"D", "F", "A"}))
}

func TestPickSkipsOutOfRange(t *testing.T) {
	vals := []string{"a", "b", "c"}
	assert.Equal(t, []string{"c", "a"}, Pick(vals, 2, 0, 5, -1))
}

func TestClamp(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1.0, Clamp(1.3, 0, 1))
	assert.Equal(0.0, Clamp(-0.2, 0, 1))
	assert.Equal(0.5, Clamp(0.5, 0, 1))
	assert.Equal(3, Min(3, 7))
	assert.Equal(4, Abs(-4))
}
