package shp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// seed scenario 5: KOLShapeFn(4, [0], compute_d2=true)
func TestKOLSeedScenarioAtZero(t *testing.T) {
	o := NewKOL(4, []float64{0}, true)

	wantTang := []float64{1, 0, 0, 0, 0}
	for n, want := range wantTang {
		require.InDelta(t, want, o.Tang(n, 0), 1e-15, "tang_%d", n)
	}

	wantTangD1 := []float64{0, 1, 0, 0, 0}
	for n, want := range wantTangD1 {
		require.InDelta(t, want, o.TangD1(n, 0), 1e-15, "tang_d1_%d", n)
	}

	require.InDelta(t, 2.0, o.TangD2(2, 0), 1e-15)
	require.InDelta(t, 0.0, o.TangD2(3, 0), 1e-15)

	require.InDelta(t, -1.0, o.Norm(2, 0), 1e-15, "norm_2 even branch")
	require.InDelta(t, 0.0, o.Norm(3, 0), 1e-15, "norm_3 odd branch at x=0")
}

func TestKOLTangIsPowerFunction(t *testing.T) {
	points := []float64{-1, -0.5, 0, 0.3, 1}
	o := NewKOL(5, points, false)
	for n := 0; n <= 5; n++ {
		for p, x := range points {
			want := 1.0
			for k := 0; k < n; k++ {
				want *= x
			}
			require.InDelta(t, want, o.Tang(n, p), 1e-12, "n=%d p=%d", n, p)
		}
	}
}

func TestKOLNormBoundaryValues(t *testing.T) {
	points := []float64{-1, 1}
	o := NewKOL(6, points, false)
	// norm_0 = 1-x, norm_1 = 1+x at x = -1, 1
	require.InDelta(t, 2.0, o.Norm(0, 0), 1e-15)
	require.InDelta(t, 0.0, o.Norm(0, 1), 1e-15)
	require.InDelta(t, 0.0, o.Norm(1, 0), 1e-15)
	require.InDelta(t, 2.0, o.Norm(1, 1), 1e-15)
}

func TestKOLIndexOutOfRangePanics(t *testing.T) {
	o := NewKOL(3, []float64{0, 1}, false)
	require.Panics(t, func() { o.Tang(4, 0) })
	require.Panics(t, func() { o.Tang(0, 5) })
}
