package value_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainsolve/dataflow-engine/value"
)

func TestEqualNaNIsEqualToNaN(t *testing.T) {
	require.True(t, value.Equal(value.NewScalar(math.NaN()), value.NewScalar(math.NaN())))
}

func TestEqualPositiveNegativeZeroDiffer(t *testing.T) {
	require.False(t, value.Equal(value.NewScalar(0), value.NewScalar(math.Copysign(0, -1))))
}

func TestEqualAfterCanonicalizeConverges(t *testing.T) {
	a := value.Canonicalize(value.NewScalar(math.Copysign(0, -1)))
	b := value.Canonicalize(value.NewScalar(0))
	require.True(t, value.Equal(a, b))
}

func TestEqualDifferentKinds(t *testing.T) {
	require.False(t, value.Equal(value.NewScalar(1), value.NewVector([]float64{1})))
}

func TestEqualVectors(t *testing.T) {
	require.True(t, value.Equal(value.NewVector([]float64{1, 2}), value.NewVector([]float64{1, 2})))
	require.False(t, value.Equal(value.NewVector([]float64{1, 2}), value.NewVector([]float64{1, 3})))
	require.False(t, value.Equal(value.NewVector([]float64{1}), value.NewVector([]float64{1, 2})))
}

func TestEqualTables(t *testing.T) {
	a := value.NewTable([]string{"x", "y"}, [][]float64{{1, 2}})
	b := value.NewTable([]string{"x", "y"}, [][]float64{{1, 2}})
	c := value.NewTable([]string{"x", "y"}, [][]float64{{1, 3}})
	require.True(t, value.Equal(a, b))
	require.False(t, value.Equal(a, c))
}

func TestEqualErrors(t *testing.T) {
	require.True(t, value.Equal(value.NewError("same"), value.NewError("same")))
	require.False(t, value.Equal(value.NewError("a"), value.NewError("b")))
}
