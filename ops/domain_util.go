package ops

import (
	"math"

	"github.com/chainsolve/dataflow-engine/value"
)

func evaluateUtil(opID string, inputs map[string]value.Value) (value.Value, bool) {
	switch opID {
	case "util.rounding.round_to_decimals":
		x, places := in(inputs, "x"), in(inputs, "places")
		factor := math.Pow(10, places)
		return value.NewScalar(math.Round(x*factor) / factor), true

	case "util.rounding.percent_of":
		part, whole := in(inputs, "part"), in(inputs, "whole")
		if e, bad := guardZero("Percent of", "whole", whole); bad {
			return e, true
		}
		return value.NewScalar(part / whole * 100), true

	case "util.rounding.percent_change":
		from, to := in(inputs, "from"), in(inputs, "to")
		if e, bad := guardZero("Percent change", "from", from); bad {
			return e, true
		}
		return value.NewScalar((to - from) / from * 100), true

	case "util.rounding.clamp_percent":
		x := in(inputs, "x")
		return value.NewScalar(math.Min(100, math.Max(0, x))), true

	default:
		return value.Value{}, false
	}
}
