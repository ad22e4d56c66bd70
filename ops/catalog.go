package ops

// BlockInfo describes one op-id for discovery by UI/client callers: its
// display label, grouping category, and the named input ports it reads.
// It carries no evaluation logic — Evaluate is the only source of truth
// for behavior; this table only helps a caller build a picker menu.
type BlockInfo struct {
	OpID     string   `json:"opId"`
	Label    string   `json:"label"`
	Category string   `json:"category"`
	Inputs   []string `json:"inputs"`
}

// Catalog returns the static metadata for every op-id Evaluate recognizes.
// It is assembled once from fixed tables rather than reflected off the
// switch statements in base.go/domain_*.go, so adding an op to Evaluate
// without adding it here is a silent gap, not a build error.
func Catalog() []BlockInfo {
	cat := make([]BlockInfo, 0, 256)
	cat = append(cat, baseCatalog()...)
	cat = append(cat, domainCatalog()...)
	return cat
}

func baseCatalog() []BlockInfo {
	return []BlockInfo{
		{"number", "Number", "source", nil},
		{"slider", "Slider", "source", nil},
		{"pi", "π", "source", nil},
		{"euler", "e", "source", nil},
		{"tau", "τ", "source", nil},
		{"phi", "φ", "source", nil},
		{"ln2", "ln 2", "source", nil},
		{"ln10", "ln 10", "source", nil},
		{"sqrt2", "√2", "source", nil},
		{"inf", "∞", "source", nil},

		{"add", "Add", "math", []string{"a", "b"}},
		{"subtract", "Subtract", "math", []string{"a", "b"}},
		{"multiply", "Multiply", "math", []string{"a", "b"}},
		{"divide", "Divide", "math", []string{"a", "b"}},
		{"power", "Power", "math", []string{"base", "exp"}},
		{"modulo", "Modulo", "math", []string{"a", "b"}},
		{"clamp", "Clamp", "math", []string{"val", "min", "max"}},
		{"negate", "Negate", "math", []string{"a"}},
		{"abs", "Absolute value", "math", []string{"a"}},
		{"sqrt", "Square root", "math", []string{"a"}},
		{"floor", "Floor", "math", []string{"a"}},
		{"ceil", "Ceil", "math", []string{"a"}},
		{"round", "Round", "math", []string{"a"}},

		{"sin", "Sine", "trig", []string{"a"}},
		{"cos", "Cosine", "trig", []string{"a"}},
		{"tan", "Tangent", "trig", []string{"a"}},
		{"asin", "Arcsine", "trig", []string{"a"}},
		{"acos", "Arccosine", "trig", []string{"a"}},
		{"atan", "Arctangent", "trig", []string{"a"}},
		{"atan2", "Atan2", "trig", []string{"y", "x"}},
		{"degToRad", "Degrees to radians", "trig", []string{"deg"}},
		{"radToDeg", "Radians to degrees", "trig", []string{"rad"}},

		{"greater", "Greater than", "logic", []string{"a", "b"}},
		{"less", "Less than", "logic", []string{"a", "b"}},
		{"equal", "Equal", "logic", []string{"a", "b"}},
		{"max", "Max", "logic", []string{"a", "b"}},
		{"min", "Min", "logic", []string{"a", "b"}},
		{"ifthenelse", "If/then/else", "logic", []string{"cond", "then", "else"}},

		{"display", "Display", "output", []string{"value"}},

		{"vectorInput", "Vector input", "data", nil},
		{"tableInput", "Table input", "data", nil},
		{"csvImport", "CSV import", "data", nil},

		{"vectorLength", "Vector length", "vector", []string{"vec"}},
		{"vectorSum", "Vector sum", "vector", []string{"vec"}},
		{"vectorMean", "Vector mean", "vector", []string{"vec"}},
		{"vectorMin", "Vector min", "vector", []string{"vec"}},
		{"vectorMax", "Vector max", "vector", []string{"vec"}},
		{"vectorSort", "Vector sort", "vector", []string{"vec"}},
		{"vectorReverse", "Vector reverse", "vector", []string{"vec"}},
		{"vectorSlice", "Vector slice", "vector", []string{"vec", "start", "end"}},
		{"vectorConcat", "Vector concat", "vector", []string{"a", "b"}},
		{"vectorMap", "Vector map", "vector", []string{"vec", "scalar"}},

		{"tableFilter", "Table filter", "table", []string{"table", "col", "threshold"}},
		{"tableSort", "Table sort", "table", []string{"table", "col"}},
		{"tableColumn", "Table column", "table", []string{"table", "col"}},
		{"tableAddColumn", "Table add column", "table", []string{"table", "vec"}},
		{"tableJoin", "Table join", "table", []string{"a", "b"}},

		{"xyPlot", "XY plot", "plot", []string{"data"}},
		{"histogram", "Histogram", "plot", []string{"data"}},
		{"barChart", "Bar chart", "plot", []string{"data"}},
		{"heatmap", "Heatmap", "plot", []string{"data"}},
	}
}

func domainCatalog() []BlockInfo {
	return []BlockInfo{
		{"eng.mechanics.power_work_time", "Power (work/time)", "eng.mechanics", []string{"W", "t"}},
		{"eng.mechanics.kinetic_energy", "Kinetic energy", "eng.mechanics", []string{"m", "v"}},
		{"eng.mechanics.potential_energy", "Potential energy", "eng.mechanics", []string{"m", "g", "h"}},
		{"eng.mechanics.momentum", "Momentum", "eng.mechanics", []string{"m", "v"}},
		{"eng.mechanics.work_force_distance", "Work (force × distance)", "eng.mechanics", []string{"F", "d"}},
		{"eng.mechanics.torque", "Torque", "eng.mechanics", []string{"F", "r"}},
		{"eng.mechanics.angular_velocity", "Angular velocity", "eng.mechanics", []string{"theta", "t"}},
		{"eng.mechanics.centripetal_accel", "Centripetal acceleration", "eng.mechanics", []string{"v", "r"}},

		{"eng.materials.stress", "Stress", "eng.materials", []string{"F", "A"}},
		{"eng.materials.strain", "Strain", "eng.materials", []string{"dL", "L"}},
		{"eng.materials.youngs_modulus", "Young's modulus", "eng.materials", []string{"stress", "strain"}},
		{"eng.materials.hookes_law_stress", "Hooke's law stress", "eng.materials", []string{"E", "strain"}},
		{"eng.materials.factor_of_safety", "Factor of safety", "eng.materials", []string{"ultimate", "allowable"}},

		{"eng.sections.area_rectangle", "Rectangle area", "eng.sections", []string{"b", "h"}},
		{"eng.sections.area_circle", "Circle area", "eng.sections", []string{"d"}},
		{"eng.sections.area_annulus", "Annulus area", "eng.sections", []string{"d_outer", "d_inner"}},
		{"eng.sections.bending_stress", "Bending stress", "eng.sections", []string{"M", "y", "I"}},
		{"eng.sections.section_modulus", "Section modulus", "eng.sections", []string{"I", "c"}},

		{"eng.inertia.moment_of_inertia_rectangle", "Moment of inertia (rectangle)", "eng.inertia", []string{"b", "h"}},
		{"eng.inertia.moment_of_inertia_circle", "Moment of inertia (circle)", "eng.inertia", []string{"d"}},
		{"eng.inertia.moment_of_inertia_annulus", "Moment of inertia (annulus)", "eng.inertia", []string{"d_outer", "d_inner"}},
		{"eng.inertia.radius_of_gyration", "Radius of gyration", "eng.inertia", []string{"I", "A"}},

		{"eng.fluids.reynolds", "Reynolds number", "eng.fluids", []string{"rho", "v", "D", "mu"}},
		{"eng.fluids.bernoulli_pressure", "Bernoulli pressure", "eng.fluids", []string{"p1", "rho", "v1", "v2"}},
		{"eng.fluids.flow_rate_continuity", "Flow continuity", "eng.fluids", []string{"A1", "v1", "A2"}},
		{"eng.fluids.hydrostatic_pressure", "Hydrostatic pressure", "eng.fluids", []string{"rho", "g", "h"}},

		{"eng.thermo.heat_transfer_conduction", "Heat conduction", "eng.thermo", []string{"k", "A", "dT", "L"}},
		{"eng.thermo.heat_capacity", "Heat capacity", "eng.thermo", []string{"m", "c", "dT"}},
		{"eng.thermo.ideal_gas_pressure", "Ideal gas pressure", "eng.thermo", []string{"n", "R", "T", "V"}},
		{"eng.thermo.thermal_expansion", "Thermal expansion", "eng.thermo", []string{"L0", "alpha", "dT"}},

		{"eng.electrical.ohms_law_voltage", "Ohm's law (voltage)", "eng.electrical", []string{"I", "R"}},
		{"eng.electrical.ohms_law_current", "Ohm's law (current)", "eng.electrical", []string{"V", "R"}},
		{"eng.electrical.power_electrical", "Electrical power", "eng.electrical", []string{"V", "I"}},
		{"eng.electrical.series_resistance", "Series resistance", "eng.electrical", []string{"R1", "R2", "R3", "R4"}},
		{"eng.electrical.parallel_resistance", "Parallel resistance", "eng.electrical", []string{"R1", "R2", "R3", "R4"}},

		{"eng.unitconv.length_m_to_ft", "Meters to feet", "eng.unitconv", []string{"a"}},
		{"eng.unitconv.length_ft_to_m", "Feet to meters", "eng.unitconv", []string{"a"}},
		{"eng.unitconv.mass_kg_to_lb", "Kilograms to pounds", "eng.unitconv", []string{"a"}},
		{"eng.unitconv.mass_lb_to_kg", "Pounds to kilograms", "eng.unitconv", []string{"a"}},
		{"eng.unitconv.force_n_to_lbf", "Newtons to pounds-force", "eng.unitconv", []string{"a"}},
		{"eng.unitconv.force_lbf_to_n", "Pounds-force to newtons", "eng.unitconv", []string{"a"}},
		{"eng.unitconv.pressure_pa_to_psi", "Pascals to psi", "eng.unitconv", []string{"a"}},
		{"eng.unitconv.pressure_psi_to_pa", "Psi to pascals", "eng.unitconv", []string{"a"}},
		{"eng.unitconv.temp_c_to_f", "Celsius to Fahrenheit", "eng.unitconv", []string{"a"}},
		{"eng.unitconv.temp_f_to_c", "Fahrenheit to Celsius", "eng.unitconv", []string{"a"}},

		{"fin.tvm.rule_of_72", "Rule of 72", "fin.tvm", []string{"r"}},
		{"fin.tvm.compound_fv", "Compound future value", "fin.tvm", []string{"PV", "r", "n", "t"}},
		{"fin.tvm.compound_pv", "Compound present value", "fin.tvm", []string{"FV", "r", "n", "t"}},
		{"fin.tvm.simple_interest", "Simple interest", "fin.tvm", []string{"P", "r", "t"}},
		{"fin.tvm.present_value_annuity", "Present value of annuity", "fin.tvm", []string{"PMT", "r", "n"}},
		{"fin.tvm.future_value_annuity", "Future value of annuity", "fin.tvm", []string{"PMT", "r", "n"}},

		{"fin.returns.holding_period_return", "Holding period return", "fin.returns", []string{"begin", "end", "income"}},
		{"fin.returns.cagr", "CAGR", "fin.returns", []string{"begin", "end", "years"}},
		{"fin.returns.sharpe_ratio", "Sharpe ratio", "fin.returns", []string{"return", "riskFree", "stdev"}},

		{"fin.depreciation.straight_line", "Straight-line depreciation", "fin.depreciation", []string{"cost", "salvage", "life"}},
		{"fin.depreciation.declining_balance", "Declining-balance depreciation", "fin.depreciation", []string{"cost", "rate", "period"}},

		{"stats.desc.mean", "Mean", "stats.desc", []string{"c", "x1", "x2", "x3", "x4", "x5", "x6"}},
		{"stats.desc.variance", "Variance", "stats.desc", []string{"c", "x1", "x2", "x3", "x4", "x5", "x6"}},
		{"stats.desc.stdev", "Standard deviation", "stats.desc", []string{"c", "x1", "x2", "x3", "x4", "x5", "x6"}},
		{"stats.desc.median_of_6", "Median (up to 6)", "stats.desc", []string{"c", "x1", "x2", "x3", "x4", "x5", "x6"}},

		{"stats.rel.linreg_slope", "Linear regression slope", "stats.rel", []string{"c", "x1", "x2", "x3", "x4", "x5", "x6", "y1", "y2", "y3", "y4", "y5", "y6"}},
		{"stats.rel.linreg_intercept", "Linear regression intercept", "stats.rel", []string{"c", "x1", "x2", "x3", "x4", "x5", "x6", "y1", "y2", "y3", "y4", "y5", "y6"}},
		{"stats.rel.correlation", "Correlation", "stats.rel", []string{"c", "x1", "x2", "x3", "x4", "x5", "x6", "y1", "y2", "y3", "y4", "y5", "y6"}},
		{"stats.rel.covariance", "Covariance", "stats.rel", []string{"c", "x1", "x2", "x3", "x4", "x5", "x6", "y1", "y2", "y3", "y4", "y5", "y6"}},

		{"stats.combin.factorial", "Factorial", "stats.combin", []string{"n"}},
		{"stats.combin.permutations", "Permutations", "stats.combin", []string{"n", "k"}},
		{"stats.combin.combinations", "Combinations", "stats.combin", []string{"n", "k"}},
		{"stats.combin.binomial_probability", "Binomial probability", "stats.combin", []string{"n", "k", "p"}},

		{"stats.dist.normal_pdf", "Normal PDF", "stats.dist", []string{"x", "mu", "sigma"}},
		{"stats.dist.normal_cdf", "Normal CDF", "stats.dist", []string{"x", "mu", "sigma"}},
		{"stats.dist.poisson_pmf", "Poisson PMF", "stats.dist", []string{"k", "lambda"}},
		{"stats.dist.binomial_pmf", "Binomial PMF", "stats.dist", []string{"k", "n", "p"}},

		{"util.rounding.round_to_decimals", "Round to decimals", "util.rounding", []string{"x", "places"}},
		{"util.rounding.percent_of", "Percent of", "util.rounding", []string{"part", "whole"}},
		{"util.rounding.percent_change", "Percent change", "util.rounding", []string{"from", "to"}},
		{"util.rounding.clamp_percent", "Clamp percent", "util.rounding", []string{"x"}},
	}
}
