// Package value implements the engine's closed value algebra: Scalar,
// Vector, Table and Error, with canonicalization and broadcasting.
//
// Every Value an op produces must pass through Canonicalize before it
// becomes part of a graph's output — see Canonicalize's doc comment for
// the exact invariants this buys the rest of the engine (determinism,
// bit-identical NaN, no negative zero).
package value

import "fmt"

// Kind discriminates the four closed Value variants.
type Kind int

const (
	// KindScalar holds a single float64.
	KindScalar Kind = iota
	// KindVector holds an ordered sequence of float64.
	KindVector
	// KindTable holds named columns and rectangular rows.
	KindTable
	// KindError is terminal: it carries a message and no numeric payload.
	KindError
)

// String renders a Kind for diagnostics and test failure messages.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindVector:
		return "vector"
	case KindTable:
		return "table"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("value.Kind(%d)", int(k))
	}
}

// Table is the rectangular payload of a KindTable Value: every row has
// exactly len(Columns) entries.
type Table struct {
	Columns []string
	Rows    [][]float64
}

// Value is the engine's closed tagged sum. Only the field matching Kind is
// meaningful; the zero Value is Scalar(0).
type Value struct {
	Kind    Kind
	Scalar  float64
	Vector  []float64
	Table   Table
	Message string
}

// NewScalar constructs a KindScalar Value. It does not canonicalize — see
// Canonicalize.
func NewScalar(v float64) Value { return Value{Kind: KindScalar, Scalar: v} }

// NewVector constructs a KindVector Value from the given slice (not
// copied; callers should not mutate it afterward).
func NewVector(v []float64) Value { return Value{Kind: KindVector, Vector: v} }

// NewTable constructs a KindTable Value.
func NewTable(columns []string, rows [][]float64) Value {
	return Value{Kind: KindTable, Table: Table{Columns: columns, Rows: rows}}
}

// NewError constructs a KindError Value with the given message. By
// convention messages follow "<OpName>: <short constraint>".
func NewError(format string, args ...any) Value {
	return Value{Kind: KindError, Message: fmt.Sprintf(format, args...)}
}

// IsError reports whether v is a terminal Error value.
func (v Value) IsError() bool { return v.Kind == KindError }

// AsScalar returns v's float64 payload and true iff v.Kind == KindScalar.
func (v Value) AsScalar() (float64, bool) {
	if v.Kind != KindScalar {
		return 0, false
	}
	return v.Scalar, true
}

// AsVector returns v's slice payload and true iff v.Kind == KindVector.
func (v Value) AsVector() ([]float64, bool) {
	if v.Kind != KindVector {
		return nil, false
	}
	return v.Vector, true
}

// AsTable returns v's Table payload and true iff v.Kind == KindTable.
func (v Value) AsTable() (Table, bool) {
	if v.Kind != KindTable {
		return Table{}, false
	}
	return v.Table, true
}
