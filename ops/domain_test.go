package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainsolve/dataflow-engine/value"
)

// The error-path tests below pin the exact "<OpName>: <constraint>" message
// text the engine's domain formulas must produce on a guarded precondition
// violation; the rest check computed values.

func TestPowerZeroTime(t *testing.T) {
	got := Evaluate("eng.mechanics.power_work_time", map[string]value.Value{"W": scalarIn(10), "t": scalarIn(0)}, nil, nil)
	require.True(t, got.IsError())
	assert.Equal(t, "Power: t = 0", got.Message)
}

func TestBendingStressZeroMomentOfInertia(t *testing.T) {
	got := Evaluate("eng.sections.bending_stress", map[string]value.Value{"M": scalarIn(1), "y": scalarIn(1), "I": scalarIn(0)}, nil, nil)
	require.True(t, got.IsError())
	assert.Equal(t, "Bending stress: I = 0", got.Message)
}

func TestReynoldsZeroViscosity(t *testing.T) {
	got := Evaluate("eng.fluids.reynolds", map[string]value.Value{
		"rho": scalarIn(1000), "v": scalarIn(2), "D": scalarIn(0.1), "mu": scalarIn(0),
	}, nil, nil)
	require.True(t, got.IsError())
	assert.Equal(t, "Reynolds: μ = 0", got.Message)
}

func TestAreaAnnulusInnerLarger(t *testing.T) {
	got := Evaluate("eng.sections.area_annulus", map[string]value.Value{"d_inner": scalarIn(5), "d_outer": scalarIn(2)}, nil, nil)
	require.True(t, got.IsError())
	assert.Equal(t, "Annulus: d_inner > d_outer", got.Message)
}

func TestRuleOf72ZeroRate(t *testing.T) {
	got := Evaluate("fin.tvm.rule_of_72", map[string]value.Value{"r": scalarIn(0)}, nil, nil)
	require.True(t, got.IsError())
	assert.Equal(t, "Rule of 72: r = 0", got.Message)
}

func TestCompoundFVZeroPeriods(t *testing.T) {
	got := Evaluate("fin.tvm.compound_fv", map[string]value.Value{
		"PV": scalarIn(100), "r": scalarIn(0.05), "n": scalarIn(0), "t": scalarIn(10),
	}, nil, nil)
	require.True(t, got.IsError())
	assert.Equal(t, "Compound FV: n = 0", got.Message)
}

func TestLinRegSlopeZeroVariance(t *testing.T) {
	inputs := map[string]value.Value{
		"c":  scalarIn(3),
		"x1": scalarIn(5), "x2": scalarIn(5), "x3": scalarIn(5),
		"y1": scalarIn(1), "y2": scalarIn(2), "y3": scalarIn(3),
	}
	got := Evaluate("stats.rel.linreg_slope", inputs, nil, nil)
	require.True(t, got.IsError())
	assert.Equal(t, "LinReg slope: zero variance in X", got.Message)
}

func TestDescriptiveMean(t *testing.T) {
	inputs := map[string]value.Value{
		"c": scalarIn(4), "x1": scalarIn(1), "x2": scalarIn(2), "x3": scalarIn(3), "x4": scalarIn(4),
	}
	got := Evaluate("stats.desc.mean", inputs, nil, nil)
	s, ok := got.AsScalar()
	require.True(t, ok)
	assert.Equal(t, 2.5, s)
}

func TestFactorial(t *testing.T) {
	got := Evaluate("stats.combin.factorial", map[string]value.Value{"n": scalarIn(5)}, nil, nil)
	s, _ := got.AsScalar()
	assert.Equal(t, 120.0, s)
}

func TestCombinations(t *testing.T) {
	got := Evaluate("stats.combin.combinations", map[string]value.Value{"n": scalarIn(5), "k": scalarIn(2)}, nil, nil)
	s, _ := got.AsScalar()
	assert.Equal(t, 10.0, s)
}

func TestNormalPDFZeroSigma(t *testing.T) {
	got := Evaluate("stats.dist.normal_pdf", map[string]value.Value{"x": scalarIn(0), "mu": scalarIn(0), "sigma": scalarIn(0)}, nil, nil)
	require.True(t, got.IsError())
	assert.Equal(t, "Normal PDF: sigma = 0", got.Message)
}
