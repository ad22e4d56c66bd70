package value

import "math"

// Equal reports whether a and b are bit-identical: same Kind, and every
// float64 slot compares equal by raw bits (so two NaNs are equal, and
// +0.0/-0.0 are not confused after Canonicalize has run). Used by the
// persistent graph to decide whether a node's output actually changed
// before it prunes downstream re-evaluation — see graphstate's
// pruneDownstream.
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindScalar:
		return bitsEqual(a.Scalar, b.Scalar)
	case KindVector:
		if len(a.Vector) != len(b.Vector) {
			return false
		}
		for i := range a.Vector {
			if !bitsEqual(a.Vector[i], b.Vector[i]) {
				return false
			}
		}
		return true
	case KindTable:
		if len(a.Table.Columns) != len(b.Table.Columns) {
			return false
		}
		for i := range a.Table.Columns {
			if a.Table.Columns[i] != b.Table.Columns[i] {
				return false
			}
		}
		if len(a.Table.Rows) != len(b.Table.Rows) {
			return false
		}
		for i := range a.Table.Rows {
			if len(a.Table.Rows[i]) != len(b.Table.Rows[i]) {
				return false
			}
			for j := range a.Table.Rows[i] {
				if !bitsEqual(a.Table.Rows[i][j], b.Table.Rows[i][j]) {
					return false
				}
			}
		}
		return true
	case KindError:
		return a.Message == b.Message
	default:
		return false
	}
}

func bitsEqual(x, y float64) bool {
	return math.Float64bits(x) == math.Float64bits(y)
}
