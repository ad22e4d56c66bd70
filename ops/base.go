package ops

import (
	"math"
	"sort"

	"github.com/chainsolve/dataflow-engine/value"
)

// evaluateBase dispatches the non-domain op families: sources, math,
// trig, logic, output, data sources, vector ops, table ops, and plot
// terminals. It returns ok=false when opID does not name one of these so
// the caller can fall through to the domain catalog.
func evaluateBase(opID string, inputs map[string]value.Value, data map[string]any, datasets DatasetLookup) (value.Value, bool) {
	switch opID {

	// ── Sources ──────────────────────────────────────────────
	case "number", "slider":
		return value.NewScalar(dataFloat(data, "value", 0)), true
	case "pi":
		return value.NewScalar(math.Pi), true
	case "euler":
		return value.NewScalar(math.E), true
	case "tau":
		return value.NewScalar(2 * math.Pi), true
	case "phi":
		return value.NewScalar(1.618033988749895), true
	case "ln2":
		return value.NewScalar(math.Ln2), true
	case "ln10":
		return value.NewScalar(math.Log(10)), true
	case "sqrt2":
		return value.NewScalar(math.Sqrt2), true
	case "inf":
		return value.NewScalar(math.Inf(1)), true

	// ── Math (broadcast) ─────────────────────────────────────
	case "add":
		return binaryBroadcast(inputs, func(a, b float64) float64 { return a + b }), true
	case "subtract":
		return binaryBroadcast(inputs, func(a, b float64) float64 { return a - b }), true
	case "multiply":
		return binaryBroadcast(inputs, func(a, b float64) float64 { return a * b }), true
	case "divide":
		return binaryBroadcast(inputs, func(a, b float64) float64 { return a / b }), true
	case "power":
		return value.Broadcast2(portValue(inputs, "base"), portValue(inputs, "exp"), math.Pow), true
	case "modulo":
		return binaryBroadcast(inputs, math.Mod), true
	case "clamp":
		lower := value.Broadcast2(portValue(inputs, "val"), portValue(inputs, "min"), math.Max)
		return value.Broadcast2(lower, portValue(inputs, "max"), math.Min), true
	case "negate":
		return unaryBroadcast(inputs, func(x float64) float64 { return -x }), true
	case "abs":
		return unaryBroadcast(inputs, math.Abs), true
	case "sqrt":
		return unaryBroadcast(inputs, math.Sqrt), true
	case "floor":
		return unaryBroadcast(inputs, math.Floor), true
	case "ceil":
		return unaryBroadcast(inputs, math.Ceil), true
	case "round":
		return unaryBroadcast(inputs, math.Round), true

	// ── Trig (broadcast) ─────────────────────────────────────
	case "sin":
		return unaryBroadcast(inputs, math.Sin), true
	case "cos":
		return unaryBroadcast(inputs, math.Cos), true
	case "tan":
		return unaryBroadcast(inputs, math.Tan), true
	case "asin":
		return unaryBroadcast(inputs, math.Asin), true
	case "acos":
		return unaryBroadcast(inputs, math.Acos), true
	case "atan":
		return unaryBroadcast(inputs, math.Atan), true
	case "atan2":
		return value.Broadcast2(portValue(inputs, "y"), portValue(inputs, "x"), math.Atan2), true
	case "degToRad":
		return value.Broadcast1(portValue(inputs, "deg"), func(x float64) float64 { return x * math.Pi / 180 }), true
	case "radToDeg":
		return value.Broadcast1(portValue(inputs, "rad"), func(x float64) float64 { return x * 180 / math.Pi }), true

	// ── Logic ────────────────────────────────────────────────
	case "greater":
		return binaryBroadcast(inputs, boolf(func(a, b float64) bool { return a > b })), true
	case "less":
		return binaryBroadcast(inputs, boolf(func(a, b float64) bool { return a < b })), true
	case "equal":
		return binaryBroadcast(inputs, boolf(func(a, b float64) bool { return math.Abs(a-b) < epsilon })), true
	case "max":
		return binaryBroadcast(inputs, math.Max), true
	case "min":
		return binaryBroadcast(inputs, math.Min), true
	case "ifthenelse":
		cond, then, els := scalarOrNaN(inputs, "cond"), scalarOrNaN(inputs, "then"), scalarOrNaN(inputs, "else")
		if cond != 0 {
			return value.NewScalar(then), true
		}
		return value.NewScalar(els), true

	// ── Output ───────────────────────────────────────────────
	case "display":
		if v, ok := inputs["value"]; ok {
			return v, true
		}
		return value.NewScalar(math.NaN()), true

	// ── Data sources ─────────────────────────────────────────
	case "vectorInput":
		return evalVectorInput(data, datasets), true
	case "tableInput":
		return readTableFromData(data, false), true
	case "csvImport":
		return readTableFromData(data, true), true

	// ── Vector ops ───────────────────────────────────────────
	case "vectorLength":
		return withVector(inputs, "vec", "Length", func(v []float64) value.Value {
			return value.NewScalar(float64(len(v)))
		}), true
	case "vectorSum":
		return withVector(inputs, "vec", "Sum", func(v []float64) value.Value {
			return value.NewScalar(sum(v))
		}), true
	case "vectorMean":
		return withVector(inputs, "vec", "Mean", func(v []float64) value.Value {
			if len(v) == 0 {
				return errorf("Mean: empty vector")
			}
			return value.NewScalar(sum(v) / float64(len(v)))
		}), true
	case "vectorMin":
		return withVector(inputs, "vec", "Min", func(v []float64) value.Value {
			if len(v) == 0 {
				return errorf("Min: empty vector")
			}
			m := math.Inf(1)
			for _, x := range v {
				m = math.Min(m, x)
			}
			return value.NewScalar(m)
		}), true
	case "vectorMax":
		return withVector(inputs, "vec", "Max", func(v []float64) value.Value {
			if len(v) == 0 {
				return errorf("Max: empty vector")
			}
			m := math.Inf(-1)
			for _, x := range v {
				m = math.Max(m, x)
			}
			return value.NewScalar(m)
		}), true
	case "vectorSort":
		return withVector(inputs, "vec", "Sort", func(v []float64) value.Value {
			sorted := append([]float64(nil), v...)
			sort.Slice(sorted, func(i, j int) bool { return lessOrFalse(sorted[i], sorted[j]) })
			return value.NewVector(sorted)
		}), true
	case "vectorReverse":
		return withVector(inputs, "vec", "Reverse", func(v []float64) value.Value {
			rev := make([]float64, len(v))
			for i, x := range v {
				rev[len(v)-1-i] = x
			}
			return value.NewVector(rev)
		}), true
	case "vectorSlice":
		return evalVectorSlice(inputs), true
	case "vectorConcat":
		return evalVectorConcat(inputs), true
	case "vectorMap":
		return evalVectorMap(inputs), true

	// ── Table ops ────────────────────────────────────────────
	case "tableFilter":
		return evalTableFilter(inputs), true
	case "tableSort":
		return evalTableSort(inputs), true
	case "tableColumn":
		return evalTableColumn(inputs), true
	case "tableAddColumn":
		return evalTableAddColumn(inputs), true
	case "tableJoin":
		return evalTableJoin(inputs), true

	// ── Plot terminals ───────────────────────────────────────
	case "xyPlot", "histogram", "barChart", "heatmap":
		return dataPointCount(inputs), true

	default:
		return value.Value{}, false
	}
}

const epsilon = 2.220446049250313e-16 // math.Nextafter(1,2)-1, mirrors f64::EPSILON

func boolf(pred func(a, b float64) bool) func(float64, float64) float64 {
	return func(a, b float64) float64 {
		if pred(a, b) {
			return 1
		}
		return 0
	}
}

func lessOrFalse(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	return a < b
}

func sum(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x
	}
	return s
}

func withVector(inputs map[string]value.Value, port, name string, f func([]float64) value.Value) value.Value {
	v, errVal, ok := requireVector(inputs, port, name)
	if !ok {
		return errVal
	}
	return f(v)
}

func dataFloat(data map[string]any, key string, def float64) float64 {
	v, ok := data[key]
	if !ok {
		return def
	}
	f, ok := v.(float64)
	if !ok {
		return def
	}
	return f
}
