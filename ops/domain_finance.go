package ops

import (
	"math"

	"github.com/chainsolve/dataflow-engine/value"
)

func evaluateFinance(opID string, inputs map[string]value.Value) (value.Value, bool) {
	switch opID {
	// ── Time value of money ──────────────────────────────────
	case "fin.tvm.rule_of_72":
		r := in(inputs, "r")
		if e, bad := guardZero("Rule of 72", "r", r); bad {
			return e, true
		}
		return value.NewScalar(72 / r), true

	case "fin.tvm.compound_fv":
		PV, r, n, t := in(inputs, "PV"), in(inputs, "r"), in(inputs, "n"), in(inputs, "t")
		if e, bad := guardZero("Compound FV", "n", n); bad {
			return e, true
		}
		return value.NewScalar(PV * math.Pow(1+r/n, n*t)), true

	case "fin.tvm.compound_pv":
		FV, r, n, t := in(inputs, "FV"), in(inputs, "r"), in(inputs, "n"), in(inputs, "t")
		if e, bad := guardZero("Compound PV", "n", n); bad {
			return e, true
		}
		return value.NewScalar(FV / math.Pow(1+r/n, n*t)), true

	case "fin.tvm.simple_interest":
		P, r, t := in(inputs, "P"), in(inputs, "r"), in(inputs, "t")
		return value.NewScalar(P * r * t), true

	case "fin.tvm.present_value_annuity":
		PMT, r, n := in(inputs, "PMT"), in(inputs, "r"), in(inputs, "n")
		if e, bad := guardZero("Present value annuity", "r", r); bad {
			return e, true
		}
		return value.NewScalar(PMT * (1 - math.Pow(1+r, -n)) / r), true

	case "fin.tvm.future_value_annuity":
		PMT, r, n := in(inputs, "PMT"), in(inputs, "r"), in(inputs, "n")
		if e, bad := guardZero("Future value annuity", "r", r); bad {
			return e, true
		}
		return value.NewScalar(PMT * (math.Pow(1+r, n) - 1) / r), true

	// ── Returns & risk ───────────────────────────────────────
	case "fin.returns.holding_period_return":
		begin, end, income := in(inputs, "begin"), in(inputs, "end"), in(inputs, "income")
		if e, bad := guardZero("Holding period return", "begin", begin); bad {
			return e, true
		}
		return value.NewScalar((end - begin + income) / begin), true

	case "fin.returns.cagr":
		begin, end, years := in(inputs, "begin"), in(inputs, "end"), in(inputs, "years")
		if e, bad := guardZero("CAGR", "begin", begin); bad {
			return e, true
		}
		if e, bad := guardZero("CAGR", "years", years); bad {
			return e, true
		}
		return value.NewScalar(math.Pow(end/begin, 1/years) - 1), true

	case "fin.returns.sharpe_ratio":
		ret, riskFree, stdev := in(inputs, "return"), in(inputs, "riskFree"), in(inputs, "stdev")
		if e, bad := guardZero("Sharpe ratio", "stdev", stdev); bad {
			return e, true
		}
		return value.NewScalar((ret - riskFree) / stdev), true

	// ── Depreciation ─────────────────────────────────────────
	case "fin.depreciation.straight_line":
		cost, salvage, life := in(inputs, "cost"), in(inputs, "salvage"), in(inputs, "life")
		if e, bad := guardZero("Straight line depreciation", "life", life); bad {
			return e, true
		}
		return value.NewScalar((cost - salvage) / life), true

	case "fin.depreciation.declining_balance":
		cost, rate, period := in(inputs, "cost"), in(inputs, "rate"), in(inputs, "period")
		return value.NewScalar(cost * math.Pow(1-rate, period) * rate), true

	default:
		return value.Value{}, false
	}
}
