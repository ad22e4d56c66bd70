package ops

import "github.com/chainsolve/dataflow-engine/value"

const (
	metersPerFoot    = 0.3048
	kgPerPound       = 0.45359237
	newtonsPerLbf    = 4.4482216153
	pascalsPerPsi    = 6894.757293168
)

func evaluateUnitConv(opID string, inputs map[string]value.Value) (value.Value, bool) {
	if a, ok := inputs["a"]; ok && a.Kind != value.KindScalar {
		if _, known := evaluateUnitConv(opID, nil); !known {
			return value.Value{}, false
		}
		return value.Broadcast1(a, func(x float64) float64 {
			out, _ := evaluateUnitConv(opID, map[string]value.Value{"a": value.NewScalar(x)})
			return out.Scalar
		}), true
	}
	x := in(inputs, "a")
	switch opID {
	case "eng.unitconv.length_m_to_ft":
		return value.NewScalar(x / metersPerFoot), true
	case "eng.unitconv.length_ft_to_m":
		return value.NewScalar(x * metersPerFoot), true
	case "eng.unitconv.mass_kg_to_lb":
		return value.NewScalar(x / kgPerPound), true
	case "eng.unitconv.mass_lb_to_kg":
		return value.NewScalar(x * kgPerPound), true
	case "eng.unitconv.force_n_to_lbf":
		return value.NewScalar(x / newtonsPerLbf), true
	case "eng.unitconv.force_lbf_to_n":
		return value.NewScalar(x * newtonsPerLbf), true
	case "eng.unitconv.pressure_pa_to_psi":
		return value.NewScalar(x / pascalsPerPsi), true
	case "eng.unitconv.pressure_psi_to_pa":
		return value.NewScalar(x * pascalsPerPsi), true
	case "eng.unitconv.temp_c_to_f":
		return value.NewScalar(x*9/5 + 32), true
	case "eng.unitconv.temp_f_to_c":
		return value.NewScalar((x - 32) * 5 / 9), true
	default:
		return value.Value{}, false
	}
}
