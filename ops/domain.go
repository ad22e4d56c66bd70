package ops

import "github.com/chainsolve/dataflow-engine/value"

// evaluateDomain dispatches the closed-form engineering/finance/statistics
// formula catalog. Every op here is a pure scalar function; each divisor
// or geometric precondition is guarded explicitly and reported as
// Error{"<OpName>: <constraint>"} per the message contract pinned in
// spec §7/§8.
func evaluateDomain(opID string, inputs map[string]value.Value) (value.Value, bool) {
	if v, ok := evaluateMechanics(opID, inputs); ok {
		return v, true
	}
	if v, ok := evaluateMaterialsAndSections(opID, inputs); ok {
		return v, true
	}
	if v, ok := evaluateFluidsThermoElectrical(opID, inputs); ok {
		return v, true
	}
	if v, ok := evaluateUnitConv(opID, inputs); ok {
		return v, true
	}
	if v, ok := evaluateFinance(opID, inputs); ok {
		return v, true
	}
	if v, ok := evaluateStats(opID, inputs); ok {
		return v, true
	}
	if v, ok := evaluateUtil(opID, inputs); ok {
		return v, true
	}
	return value.Value{}, false
}

// in reads a named port as a scalar, NaN if absent — the uniform access
// pattern for every domain formula below.
func in(inputs map[string]value.Value, port string) float64 { return scalarOrNaN(inputs, port) }
