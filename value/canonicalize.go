package value

import "math"

// Canonicalize rewrites every float64 slot of v to the engine's canonical
// form:
//
//   - every NaN becomes the one fixed "canonical NaN" bit pattern
//     (math.NaN()'s quiet-NaN encoding);
//   - every negative zero becomes positive zero;
//   - every other value is unchanged.
//
// Vectors and tables are canonicalized element-wise; Error is opaque and
// passes through untouched. Apply this exactly once, at the op-output
// boundary (eval.Evaluate and graphstate's EvaluateDirty apply it to each
// ops.Evaluate result) — never inside the inner loop of a pure
// numeric op, so the hot path stays branch-free on already-canonical
// inputs (spec §9).
func Canonicalize(v Value) Value {
	switch v.Kind {
	case KindScalar:
		return NewScalar(canonFloat(v.Scalar))
	case KindVector:
		out := make([]float64, len(v.Vector))
		for i, x := range v.Vector {
			out[i] = canonFloat(x)
		}
		return NewVector(out)
	case KindTable:
		rows := make([][]float64, len(v.Table.Rows))
		for i, row := range v.Table.Rows {
			r := make([]float64, len(row))
			for j, x := range row {
				r[j] = canonFloat(x)
			}
			rows[i] = r
		}
		return NewTable(v.Table.Columns, rows)
	default:
		return v
	}
}

// canonFloat is the single-value canonicalization rule: canonical NaN,
// positive zero, everything else verbatim.
func canonFloat(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	if x == 0 {
		// Rewrites -0.0 (and +0.0, a no-op) to the literal +0.0 bit pattern.
		return 0
	}
	return x
}
