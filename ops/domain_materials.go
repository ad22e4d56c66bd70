package ops

import "github.com/chainsolve/dataflow-engine/value"

func evaluateMaterialsAndSections(opID string, inputs map[string]value.Value) (value.Value, bool) {
	switch opID {
	// ── Materials ────────────────────────────────────────────
	case "eng.materials.stress":
		F, A := in(inputs, "F"), in(inputs, "A")
		if e, bad := guardZero("Stress", "A", A); bad {
			return e, true
		}
		return value.NewScalar(F / A), true

	case "eng.materials.strain":
		dL, L := in(inputs, "dL"), in(inputs, "L")
		if e, bad := guardZero("Strain", "L", L); bad {
			return e, true
		}
		return value.NewScalar(dL / L), true

	case "eng.materials.youngs_modulus":
		stress, strain := in(inputs, "stress"), in(inputs, "strain")
		if e, bad := guardZero("Young's modulus", "strain", strain); bad {
			return e, true
		}
		return value.NewScalar(stress / strain), true

	case "eng.materials.hookes_law_stress":
		E, strain := in(inputs, "E"), in(inputs, "strain")
		return value.NewScalar(E * strain), true

	case "eng.materials.factor_of_safety":
		ultimate, allowable := in(inputs, "ultimate"), in(inputs, "allowable")
		if e, bad := guardZero("Factor of safety", "allowable", allowable); bad {
			return e, true
		}
		return value.NewScalar(ultimate / allowable), true

	// ── Sections ─────────────────────────────────────────────
	case "eng.sections.area_rectangle":
		b, h := in(inputs, "b"), in(inputs, "h")
		return value.NewScalar(b * h), true

	case "eng.sections.area_circle":
		d := in(inputs, "d")
		return value.NewScalar(piConst * d * d / 4), true

	case "eng.sections.area_annulus":
		dInner, dOuter := in(inputs, "d_inner"), in(inputs, "d_outer")
		if dInner > dOuter {
			return errorf("Annulus: d_inner > d_outer"), true
		}
		return value.NewScalar(piConst / 4 * (dOuter*dOuter - dInner*dInner)), true

	case "eng.sections.bending_stress":
		M, y, I := in(inputs, "M"), in(inputs, "y"), in(inputs, "I")
		if e, bad := guardZero("Bending stress", "I", I); bad {
			return e, true
		}
		return value.NewScalar(M * y / I), true

	case "eng.sections.section_modulus":
		I, c := in(inputs, "I"), in(inputs, "c")
		if e, bad := guardZero("Section modulus", "c", c); bad {
			return e, true
		}
		return value.NewScalar(I / c), true

	// ── Moments of inertia ───────────────────────────────────
	case "eng.inertia.moment_of_inertia_rectangle":
		b, h := in(inputs, "b"), in(inputs, "h")
		return value.NewScalar(b * h * h * h / 12), true

	case "eng.inertia.moment_of_inertia_circle":
		d := in(inputs, "d")
		return value.NewScalar(piConst * d * d * d * d / 64), true

	case "eng.inertia.moment_of_inertia_annulus":
		dInner, dOuter := in(inputs, "d_inner"), in(inputs, "d_outer")
		if dInner > dOuter {
			return errorf("Annulus inertia: d_inner > d_outer"), true
		}
		return value.NewScalar(piConst / 64 * (pow4(dOuter) - pow4(dInner))), true

	case "eng.inertia.radius_of_gyration":
		I, A := in(inputs, "I"), in(inputs, "A")
		if e, bad := guardZero("Radius of gyration", "A", A); bad {
			return e, true
		}
		return value.NewScalar(sqrtf(I / A)), true

	default:
		return value.Value{}, false
	}
}

func pow4(x float64) float64 { return x * x * x * x }
