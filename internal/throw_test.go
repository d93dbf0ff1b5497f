package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// Runs fn behind the same recover that the public entry points use.
func recovered(fn func()) (err error) {
	defer func() {
		if r := HandleTriangulatePanicRecover(recover()); r != nil {
			err = r
		}
	}()
	fn()
	return nil
}

func TestHandleTriangulatePanicRecover(t *testing.T) {
	t.Run("nothing to recover", func(t *testing.T) {
		assert.NoError(t, HandleTriangulatePanicRecover(nil))
		assert.NoError(t, recovered(func() {}))
	})

	t.Run("short polygon reaching the clipper", func(t *testing.T) {
		err := recovered(func() {
			ClipEars(poly(0, 0, 1, 1), NewInterner(), nil)
		})
		assert.EqualError(t, err, "cannot triangulate degenerate polygon with point count: 2")
	})

	t.Run("mesh scaled by zero", func(t *testing.T) {
		tri := &Triangulation{Vertices: []Point{{0, 0}, {1, 0}, {0, 1}}, Indices: []int{0, 1, 2}}
		err := recovered(func() {
			tri.Mesh(EmptyBounds(), 0)
		})
		assert.EqualError(t, err, "cannot scale a mesh by zero")
	})

	t.Run("plain error is re-raised", func(t *testing.T) {
		assert.PanicsWithError(t, "not ours", func() {
			recovered(func() { panic(errors.New("not ours")) })
		})
	})

	t.Run("other values are re-raised", func(t *testing.T) {
		assert.PanicsWithValue(t, 42, func() {
			recovered(func() { panic(42) })
		})
	})
}
