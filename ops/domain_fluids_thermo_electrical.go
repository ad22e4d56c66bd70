package ops

import "github.com/chainsolve/dataflow-engine/value"

func evaluateFluidsThermoElectrical(opID string, inputs map[string]value.Value) (value.Value, bool) {
	switch opID {
	// ── Fluids ───────────────────────────────────────────────
	case "eng.fluids.reynolds":
		rho, v, D, mu := in(inputs, "rho"), in(inputs, "v"), in(inputs, "D"), in(inputs, "mu")
		if e, bad := guardZero("Reynolds", "μ", mu); bad {
			return e, true
		}
		return value.NewScalar(rho * v * D / mu), true

	case "eng.fluids.bernoulli_pressure":
		p1, rho, v1, v2 := in(inputs, "p1"), in(inputs, "rho"), in(inputs, "v1"), in(inputs, "v2")
		return value.NewScalar(p1 + 0.5*rho*(v1*v1-v2*v2)), true

	case "eng.fluids.flow_rate_continuity":
		A1, v1, A2 := in(inputs, "A1"), in(inputs, "v1"), in(inputs, "A2")
		if e, bad := guardZero("Flow continuity", "A2", A2); bad {
			return e, true
		}
		return value.NewScalar(A1 * v1 / A2), true

	case "eng.fluids.hydrostatic_pressure":
		rho, g, h := in(inputs, "rho"), in(inputs, "g"), in(inputs, "h")
		return value.NewScalar(rho * g * h), true

	// ── Thermo ───────────────────────────────────────────────
	case "eng.thermo.heat_transfer_conduction":
		k, A, dT, L := in(inputs, "k"), in(inputs, "A"), in(inputs, "dT"), in(inputs, "L")
		if e, bad := guardZero("Conduction", "L", L); bad {
			return e, true
		}
		return value.NewScalar(k * A * dT / L), true

	case "eng.thermo.heat_capacity":
		m, c, dT := in(inputs, "m"), in(inputs, "c"), in(inputs, "dT")
		return value.NewScalar(m * c * dT), true

	case "eng.thermo.ideal_gas_pressure":
		n, R, T, V := in(inputs, "n"), in(inputs, "R"), in(inputs, "T"), in(inputs, "V")
		if e, bad := guardZero("Ideal gas", "V", V); bad {
			return e, true
		}
		return value.NewScalar(n * R * T / V), true

	case "eng.thermo.thermal_expansion":
		L0, alpha, dT := in(inputs, "L0"), in(inputs, "alpha"), in(inputs, "dT")
		return value.NewScalar(L0 * alpha * dT), true

	// ── Electrical ───────────────────────────────────────────
	case "eng.electrical.ohms_law_voltage":
		I, R := in(inputs, "I"), in(inputs, "R")
		return value.NewScalar(I * R), true

	case "eng.electrical.ohms_law_current":
		V, R := in(inputs, "V"), in(inputs, "R")
		if e, bad := guardZero("Ohm's law current", "R", R); bad {
			return e, true
		}
		return value.NewScalar(V / R), true

	case "eng.electrical.power_electrical":
		V, I := in(inputs, "V"), in(inputs, "I")
		return value.NewScalar(V * I), true

	case "eng.electrical.series_resistance":
		return value.NewScalar(sumPorts(inputs, "R1", "R2", "R3", "R4")), true

	case "eng.electrical.parallel_resistance":
		var inv float64
		for _, port := range []string{"R1", "R2", "R3", "R4"} {
			r := in(inputs, port)
			if r != 0 {
				inv += 1 / r
			}
		}
		if e, bad := guardZero("Parallel resistance", "sum(1/R)", inv); bad {
			return e, true
		}
		return value.NewScalar(1 / inv), true

	default:
		return value.Value{}, false
	}
}

func sumPorts(inputs map[string]value.Value, ports ...string) float64 {
	var total float64
	for _, p := range ports {
		if v := in(inputs, p); !isNaN(v) {
			total += v
		}
	}
	return total
}
