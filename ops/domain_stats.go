package ops

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/combin"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/chainsolve/dataflow-engine/value"
)

// slot6 gathers the fixed 6-slot aggregate ports x1..x6, truncated to the
// leading c of them (c ∈ [1,6]) per the descriptive/relational statistics
// op family's wire contract.
func slot6(inputs map[string]value.Value, prefix string) []float64 {
	c := int(math.Round(in(inputs, "c")))
	if c < 1 {
		c = 1
	}
	if c > 6 {
		c = 6
	}
	out := make([]float64, 0, c)
	for i := 1; i <= c; i++ {
		out = append(out, in(inputs, slotPort(prefix, i)))
	}
	return out
}

func slotPort(prefix string, i int) string {
	digits := [...]byte{'1', '2', '3', '4', '5', '6'}
	return prefix + string(digits[i-1])
}

func evaluateStats(opID string, inputs map[string]value.Value) (value.Value, bool) {
	switch opID {
	// ── Descriptive ──────────────────────────────────────────
	case "stats.desc.mean":
		xs := slot6(inputs, "x")
		return value.NewScalar(stat.Mean(xs, nil)), true

	case "stats.desc.variance":
		xs := slot6(inputs, "x")
		if len(xs) < 2 {
			return errorf("Variance: c < 2"), true
		}
		return value.NewScalar(stat.Variance(xs, nil)), true

	case "stats.desc.stdev":
		xs := slot6(inputs, "x")
		if len(xs) < 2 {
			return errorf("StdDev: c < 2"), true
		}
		return value.NewScalar(stat.StdDev(xs, nil)), true

	case "stats.desc.median_of_6":
		xs := append([]float64(nil), slot6(inputs, "x")...)
		return value.NewScalar(median(xs)), true

	// ── Relational ───────────────────────────────────────────
	case "stats.rel.linreg_slope":
		xs, ys := slot6(inputs, "x"), slot6(inputs, "y")
		if variance(xs) == 0 {
			return errorf("LinReg slope: zero variance in X"), true
		}
		_, beta := stat.LinearRegression(xs, ys, nil, false)
		return value.NewScalar(beta), true

	case "stats.rel.linreg_intercept":
		xs, ys := slot6(inputs, "x"), slot6(inputs, "y")
		if variance(xs) == 0 {
			return errorf("LinReg intercept: zero variance in X"), true
		}
		alpha, _ := stat.LinearRegression(xs, ys, nil, false)
		return value.NewScalar(alpha), true

	case "stats.rel.correlation":
		xs, ys := slot6(inputs, "x"), slot6(inputs, "y")
		if variance(xs) == 0 || variance(ys) == 0 {
			return errorf("Correlation: zero variance"), true
		}
		return value.NewScalar(stat.Correlation(xs, ys, nil)), true

	case "stats.rel.covariance":
		xs, ys := slot6(inputs, "x"), slot6(inputs, "y")
		if len(xs) < 2 {
			return errorf("Covariance: c < 2"), true
		}
		return value.NewScalar(stat.Covariance(xs, ys, nil)), true

	// ── Combinatorics ────────────────────────────────────────
	case "stats.combin.factorial":
		n := int(math.Round(in(inputs, "n")))
		if n < 0 {
			return errorf("Factorial: n < 0"), true
		}
		return value.NewScalar(factorial(n)), true

	case "stats.combin.permutations":
		n, k := int(math.Round(in(inputs, "n"))), int(math.Round(in(inputs, "k")))
		if k > n || n < 0 || k < 0 {
			return errorf("Permutations: k > n"), true
		}
		return value.NewScalar(float64(combin.NumPermutations(n, k))), true

	case "stats.combin.combinations":
		n, k := int(math.Round(in(inputs, "n"))), int(math.Round(in(inputs, "k")))
		if k > n || n < 0 || k < 0 {
			return errorf("Combinations: k > n"), true
		}
		return value.NewScalar(float64(combin.Binomial(n, k))), true

	case "stats.combin.binomial_probability":
		n, k, p := int(math.Round(in(inputs, "n"))), int(math.Round(in(inputs, "k"))), in(inputs, "p")
		if k > n || n < 0 || k < 0 {
			return errorf("Binomial probability: k > n"), true
		}
		return value.NewScalar(float64(combin.Binomial(n, k)) * math.Pow(p, float64(k)) * math.Pow(1-p, float64(n-k))), true

	// ── Distributions ────────────────────────────────────────
	case "stats.dist.normal_pdf":
		x, mu, sigma := in(inputs, "x"), in(inputs, "mu"), in(inputs, "sigma")
		if e, bad := guardZero("Normal PDF", "sigma", sigma); bad {
			return e, true
		}
		return value.NewScalar(distuv.Normal{Mu: mu, Sigma: sigma}.Prob(x)), true

	case "stats.dist.normal_cdf":
		x, mu, sigma := in(inputs, "x"), in(inputs, "mu"), in(inputs, "sigma")
		if e, bad := guardZero("Normal CDF", "sigma", sigma); bad {
			return e, true
		}
		return value.NewScalar(distuv.Normal{Mu: mu, Sigma: sigma}.CDF(x)), true

	case "stats.dist.poisson_pmf":
		k, lambda := in(inputs, "k"), in(inputs, "lambda")
		if lambda <= 0 {
			return errorf("Poisson PMF: lambda <= 0"), true
		}
		return value.NewScalar(distuv.Poisson{Lambda: lambda}.Prob(math.Round(k))), true

	case "stats.dist.binomial_pmf":
		k, n, p := int(math.Round(in(inputs, "k"))), int(math.Round(in(inputs, "n"))), in(inputs, "p")
		if k > n || n < 0 || k < 0 {
			return errorf("Binomial PMF: k > n"), true
		}
		return value.NewScalar(distuv.Binomial{N: float64(n), P: p}.Prob(float64(k))), true

	default:
		return value.Value{}, false
	}
}

func variance(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.Variance(xs, nil)
}

func median(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sorted := append([]float64(nil), xs...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && lessOrFalse(sorted[j], sorted[j-1]); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

func factorial(n int) float64 {
	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}
	return result
}
