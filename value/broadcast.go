package value

// Broadcast1 applies a unary scalar function elementwise, per spec §4.1:
// Scalar→Scalar, Vector→Vector (elementwise), Table→Table (elementwise),
// Error→Error (propagated untouched).
func Broadcast1(v Value, f func(float64) float64) Value {
	switch v.Kind {
	case KindScalar:
		return NewScalar(f(v.Scalar))
	case KindVector:
		out := make([]float64, len(v.Vector))
		for i, x := range v.Vector {
			out[i] = f(x)
		}
		return NewVector(out)
	case KindTable:
		rows := make([][]float64, len(v.Table.Rows))
		for i, row := range v.Table.Rows {
			r := make([]float64, len(row))
			for j, x := range row {
				r[j] = f(x)
			}
			rows[i] = r
		}
		return NewTable(v.Table.Columns, rows)
	case KindError:
		return v
	default:
		return NewError("broadcast: unknown value kind %v", v.Kind)
	}
}

// Broadcast2 applies a binary scalar function over two Values per the
// broadcasting matrix of spec §4.1:
//
//	Scalar × Scalar  -> Scalar
//	Scalar × Vector  -> Vector (scalar broadcast)
//	Scalar × Table   -> Table  (scalar broadcast)
//	Vector × Vector  -> Vector, lengths must match or Error
//	Vector × Table   -> Error
//	Table  × Table   -> Table, shapes must match or Error
//	Error  × *        -> the Error (first-error-wins; left before right)
//	*      × Error    -> the Error
//
// Missing operands are not representable here — a caller resolving an
// absent port substitutes Scalar(NaN) before calling Broadcast2, per the
// op-dispatch contract in spec §4.2.
func Broadcast2(a, b Value, f func(float64, float64) float64) Value {
	if a.Kind == KindError {
		return a
	}
	if b.Kind == KindError {
		return b
	}

	switch {
	case a.Kind == KindScalar && b.Kind == KindScalar:
		return NewScalar(f(a.Scalar, b.Scalar))

	case a.Kind == KindScalar && b.Kind == KindVector:
		return Broadcast1(b, func(x float64) float64 { return f(a.Scalar, x) })
	case a.Kind == KindVector && b.Kind == KindScalar:
		return Broadcast1(a, func(x float64) float64 { return f(x, b.Scalar) })

	case a.Kind == KindScalar && b.Kind == KindTable:
		return Broadcast1(b, func(x float64) float64 { return f(a.Scalar, x) })
	case a.Kind == KindTable && b.Kind == KindScalar:
		return Broadcast1(a, func(x float64) float64 { return f(x, b.Scalar) })

	case a.Kind == KindVector && b.Kind == KindVector:
		if len(a.Vector) != len(b.Vector) {
			return NewError("Vector length mismatch: %d vs %d", len(a.Vector), len(b.Vector))
		}
		out := make([]float64, len(a.Vector))
		for i := range a.Vector {
			out[i] = f(a.Vector[i], b.Vector[i])
		}
		return NewVector(out)

	case a.Kind == KindTable && b.Kind == KindTable:
		if !sameShape(a.Table, b.Table) {
			return NewError("Table shape mismatch: %dx%d vs %dx%d",
				len(a.Table.Rows), len(a.Table.Columns), len(b.Table.Rows), len(b.Table.Columns))
		}
		rows := make([][]float64, len(a.Table.Rows))
		for i := range a.Table.Rows {
			r := make([]float64, len(a.Table.Rows[i]))
			for j := range r {
				r[j] = f(a.Table.Rows[i][j], b.Table.Rows[i][j])
			}
			rows[i] = r
		}
		return NewTable(a.Table.Columns, rows)

	case (a.Kind == KindVector && b.Kind == KindTable) || (a.Kind == KindTable && b.Kind == KindVector):
		return NewError("Vector/Table operands cannot be broadcast together")

	default:
		return NewError("broadcast: unsupported operand kinds %v and %v", a.Kind, b.Kind)
	}
}

func sameShape(a, b Table) bool {
	if len(a.Columns) != len(b.Columns) || len(a.Rows) != len(b.Rows) {
		return false
	}
	for i := range a.Rows {
		if len(a.Rows[i]) != len(b.Rows[i]) {
			return false
		}
	}
	return true
}
