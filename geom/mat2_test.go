package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMat2Inverse(t *testing.T) {
	m := NewMat2(Vec2{2, 1}, Vec2{1, 3})
	inv := m.Inverse()
	id := m.Mul(inv)
	require.InDelta(t, 1.0, id.U[0], 1e-12)
	require.InDelta(t, 0.0, id.U[1], 1e-12)
	require.InDelta(t, 0.0, id.V[0], 1e-12)
	require.InDelta(t, 1.0, id.V[1], 1e-12)
}

func TestMat2Det(t *testing.T) {
	m := NewMat2(Vec2{1, 2}, Vec2{3, 4})
	require.InDelta(t, -2.0, m.Det(), 1e-15)
}

func TestMat2InverseSingularPanics(t *testing.T) {
	m := NewMat2(Vec2{1, 2}, Vec2{2, 4})
	require.Panics(t, func() { m.Inverse() })
}

func TestMat2Transpose(t *testing.T) {
	m := NewMat2(Vec2{1, 2}, Vec2{3, 4})
	mt := m.Transpose()
	require.Equal(t, Vec2{1, 3}, mt.U)
	require.Equal(t, Vec2{2, 4}, mt.V)
}

func TestVec2Dot(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	require.True(t, math.Abs(a.Dot(b)-11) < 1e-15)
}
