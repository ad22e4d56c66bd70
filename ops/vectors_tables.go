package ops

import (
	"math"
	"sort"
	"strconv"

	"github.com/chainsolve/dataflow-engine/value"
)

func nan() float64          { return math.NaN() }
func isNaN(x float64) bool  { return math.IsNaN(x) }
func floor(x float64) float64 { return math.Floor(x) }
func itoa(n int) string     { return strconv.Itoa(n) }

func evalVectorInput(data map[string]any, datasets DatasetLookup) value.Value {
	if ref, ok := data["datasetRef"].(string); ok && ref != "" && datasets != nil {
		if d, ok := datasets(ref); ok {
			return value.NewVector(append([]float64(nil), d...))
		}
	}
	raw, ok := data["vectorData"].([]any)
	if !ok {
		return value.NewVector(nil)
	}
	out := make([]float64, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(float64); ok {
			out = append(out, f)
		}
	}
	return value.NewVector(out)
}

func readTableFromData(data map[string]any, require bool) value.Value {
	td, ok := data["tableData"].(map[string]any)
	if !ok {
		if require {
			return errorf("No CSV loaded")
		}
		return value.NewTable([]string{"A"}, nil)
	}
	columns := []string{"A"}
	if rawCols, ok := td["columns"].([]any); ok {
		columns = columns[:0]
		for _, c := range rawCols {
			if s, ok := c.(string); ok {
				columns = append(columns, s)
			}
		}
	}
	var rows [][]float64
	if rawRows, ok := td["rows"].([]any); ok {
		for _, r := range rawRows {
			rawRow, ok := r.([]any)
			if !ok {
				continue
			}
			row := make([]float64, len(rawRow))
			for i, v := range rawRow {
				if f, ok := v.(float64); ok {
					row[i] = f
				} else {
					row[i] = nan()
				}
			}
			rows = append(rows, row)
		}
	}
	return value.NewTable(columns, rows)
}

func evalVectorSlice(inputs map[string]value.Value) value.Value {
	v, errVal, ok := requireVector(inputs, "vec", "Slice")
	if !ok {
		return errVal
	}
	s, e := scalarOrNaN(inputs, "start"), scalarOrNaN(inputs, "end")
	start := 0
	if !isNaN(s) {
		start = int(floor(s))
	}
	end := len(v)
	if !isNaN(e) {
		end = int(floor(e))
	}
	if start < 0 {
		start = 0
	}
	if start > len(v) {
		start = len(v)
	}
	if end > len(v) {
		end = len(v)
	}
	if end < start {
		end = start
	}
	return value.NewVector(append([]float64(nil), v[start:end]...))
}

func evalVectorConcat(inputs map[string]value.Value) value.Value {
	a, errA, ok := requireVector(inputs, "a", "Concat")
	if !ok {
		return errA
	}
	b, errB, ok := requireVector(inputs, "b", "Concat")
	if !ok {
		return errB
	}
	out := make([]float64, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return value.NewVector(out)
}

func evalVectorMap(inputs map[string]value.Value) value.Value {
	v, errVal, ok := requireVector(inputs, "vec", "Map")
	if !ok {
		return errVal
	}
	s := scalarOrNaN(inputs, "scalar")
	if isNaN(s) {
		return errorf("Map: expected scalar multiplier")
	}
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x * s
	}
	return value.NewVector(out)
}

func evalTableFilter(inputs map[string]value.Value) value.Value {
	tbl, errVal, ok := requireTable(inputs, "table", "Filter")
	if !ok {
		return errVal
	}
	ci := int(floor(scalarOrNaN(inputs, "col")))
	threshold := scalarOrNaN(inputs, "threshold")
	if ci < 0 || ci >= len(tbl.Columns) {
		return errorf("Filter: column index out of range")
	}
	if isNaN(threshold) {
		return errorf("Filter: expected threshold")
	}
	var filtered [][]float64
	for _, row := range tbl.Rows {
		if ci < len(row) && row[ci] > threshold {
			filtered = append(filtered, append([]float64(nil), row...))
		}
	}
	return value.NewTable(tbl.Columns, filtered)
}

func evalTableSort(inputs map[string]value.Value) value.Value {
	tbl, errVal, ok := requireTable(inputs, "table", "Sort")
	if !ok {
		return errVal
	}
	ci := int(floor(scalarOrNaN(inputs, "col")))
	if ci < 0 || ci >= len(tbl.Columns) {
		return errorf("Sort: column index out of range")
	}
	sorted := make([][]float64, len(tbl.Rows))
	copy(sorted, tbl.Rows)
	sort.SliceStable(sorted, func(i, j int) bool { return lessOrFalse(sorted[i][ci], sorted[j][ci]) })
	return value.NewTable(tbl.Columns, sorted)
}

func evalTableColumn(inputs map[string]value.Value) value.Value {
	tbl, errVal, ok := requireTable(inputs, "table", "Column")
	if !ok {
		return errVal
	}
	ci := int(floor(scalarOrNaN(inputs, "col")))
	if ci < 0 || ci >= len(tbl.Columns) {
		return errorf("Column: column index out of range")
	}
	out := make([]float64, len(tbl.Rows))
	for i, row := range tbl.Rows {
		if ci < len(row) {
			out[i] = row[ci]
		} else {
			out[i] = nan()
		}
	}
	return value.NewVector(out)
}

func evalTableAddColumn(inputs map[string]value.Value) value.Value {
	tbl, errVal, ok := requireTable(inputs, "table", "AddColumn")
	if !ok {
		return errVal
	}
	vec, errVal, ok := requireVector(inputs, "vec", "AddColumn")
	if !ok {
		return errVal
	}
	newCols := append(append([]string(nil), tbl.Columns...), columnName(len(tbl.Columns)+1))
	maxLen := len(tbl.Rows)
	if len(vec) > maxLen {
		maxLen = len(vec)
	}
	newRows := make([][]float64, maxLen)
	for i := 0; i < maxLen; i++ {
		var row []float64
		if i < len(tbl.Rows) {
			row = append([]float64(nil), tbl.Rows[i]...)
		} else {
			row = make([]float64, len(tbl.Columns))
			for j := range row {
				row[j] = nan()
			}
		}
		if i < len(vec) {
			row = append(row, vec[i])
		} else {
			row = append(row, nan())
		}
		newRows[i] = row
	}
	return value.NewTable(newCols, newRows)
}

func evalTableJoin(inputs map[string]value.Value) value.Value {
	a, errA, ok := requireTable(inputs, "a", "Join")
	if !ok {
		return errA
	}
	b, errB, ok := requireTable(inputs, "b", "Join")
	if !ok {
		return errB
	}
	newCols := append(append([]string(nil), a.Columns...), b.Columns...)
	maxLen := len(a.Rows)
	if len(b.Rows) > maxLen {
		maxLen = len(b.Rows)
	}
	newRows := make([][]float64, maxLen)
	for i := 0; i < maxLen; i++ {
		rowA := padRow(a.Rows, i, len(a.Columns))
		rowB := padRow(b.Rows, i, len(b.Columns))
		row := append(append([]float64(nil), rowA...), rowB...)
		newRows[i] = row
	}
	return value.NewTable(newCols, newRows)
}

func padRow(rows [][]float64, i, width int) []float64 {
	if i < len(rows) {
		return rows[i]
	}
	row := make([]float64, width)
	for j := range row {
		row[j] = nan()
	}
	return row
}

func columnName(n int) string {
	return "Col" + itoa(n)
}

func dataPointCount(inputs map[string]value.Value) value.Value {
	v, ok := inputs["data"]
	if !ok {
		return errorf("No data")
	}
	switch v.Kind {
	case value.KindVector:
		return value.NewScalar(float64(len(v.Vector)))
	case value.KindTable:
		return value.NewScalar(float64(len(v.Table.Rows)))
	case value.KindError:
		return v
	default:
		return errorf("Expected vector or table")
	}
}
