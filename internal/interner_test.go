package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterner(t *testing.T) {
	in := NewInterner()
	assert.Equal(t, 0, in.Intern(Point{1, 2}))
	assert.Equal(t, 1, in.Intern(Point{3, 4}))
	assert.Equal(t, 0, in.Intern(Point{1, 2}))
	assert.Equal(t, 2, in.Intern(Point{1, 3}))
	assert.Equal(t, 3, in.Len())
	assert.Equal(t, []Point{{1, 2}, {3, 4}, {1, 3}}, in.Vertices)
}

func TestInterner_BitPatterns(t *testing.T) {
	in := NewInterner()
	zero := in.Intern(Point{0, 0})
	// Negative zero compares equal but has a different bit pattern.
	negativeZero := in.Intern(Point{math.Copysign(0, -1), 0})
	assert.NotEqual(t, zero, negativeZero)

	nearly := in.Intern(Point{math.Nextafter(0, 1), 0})
	assert.Equal(t, 2, nearly)
	assert.Equal(t, 3, in.Len())
}
