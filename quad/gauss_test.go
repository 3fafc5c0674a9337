package quad

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// integrate approximates ∫_{-1}^{1} f(x) dx with the given rule
func integrate(r *Rule, f func(float64) float64) float64 {
	sum := 0.0
	for i, x := range r.Nodes {
		sum += r.Weights[i] * f(x)
	}
	return sum
}

func TestGaussLegendreIntegratesConstantToTwo(t *testing.T) {
	for n := 1; n <= 10; n++ {
		r, err := GaussLegendre(n, false)
		require.NoError(t, err)
		got := integrate(r, func(float64) float64 { return 1 })
		require.InDelta(t, 2.0, got, 1e-11, "n=%d", n)
	}
}

func TestGaussLegendreExactForDegree2nMinus1(t *testing.T) {
	for n := 1; n <= 8; n++ {
		r, err := GaussLegendre(n, false)
		require.NoError(t, err)
		deg := 2*n - 1
		got := integrate(r, func(x float64) float64 { return math.Pow(x, float64(deg)) })
		want := 0.0
		if deg%2 == 0 {
			want = 2.0 / float64(deg+1)
		}
		require.InDelta(t, want, got, 1e-9, "n=%d deg=%d", n, deg)
	}
}

func TestGaussLegendreWeightsSumToTwo(t *testing.T) {
	r, err := GaussLegendre(20, false)
	require.NoError(t, err)
	require.Len(t, r.Nodes, 20)
	sum := 0.0
	for _, w := range r.Weights {
		sum += w
	}
	require.InDelta(t, 2.0, sum, 1e-12)
}

func TestGaussLegendreEndpointMode(t *testing.T) {
	r, err := GaussLegendre(5, true)
	require.NoError(t, err)
	require.Len(t, r.Nodes, 7)
	require.InDelta(t, -1.0, r.Nodes[0], 1e-15)
	require.InDelta(t, 1.0, r.Nodes[len(r.Nodes)-1], 1e-15)
	require.InDelta(t, 1.0, r.Weights[0], 1e-15)
}

func TestGaussLegendreInvalidN(t *testing.T) {
	_, err := GaussLegendre(0, false)
	require.Error(t, err)
}

func TestRescaleRoundTrip(t *testing.T) {
	r, err := GaussLegendre(6, false)
	require.NoError(t, err)
	scale, shifted, err := Rescale(r.Nodes, 2.0, 10.0)
	require.NoError(t, err)
	require.InDelta(t, 4.0, scale, 1e-14)
	for i, x := range shifted {
		back := (x - 6.0) / 4.0
		require.InDelta(t, r.Nodes[i], back, 1e-14)
	}
}

func TestRescaleInvalidRange(t *testing.T) {
	_, _, err := Rescale([]float64{0}, 5, 5)
	require.Error(t, err)
	_, _, err = Rescale([]float64{0}, 5, 1)
	require.Error(t, err)
}
