package ops

import "github.com/chainsolve/dataflow-engine/value"

func evaluateMechanics(opID string, inputs map[string]value.Value) (value.Value, bool) {
	switch opID {
	case "eng.mechanics.power_work_time":
		W, t := in(inputs, "W"), in(inputs, "t")
		if e, bad := guardZero("Power", "t", t); bad {
			return e, true
		}
		return value.NewScalar(W / t), true

	case "eng.mechanics.kinetic_energy":
		m, v := in(inputs, "m"), in(inputs, "v")
		return value.NewScalar(0.5 * m * v * v), true

	case "eng.mechanics.potential_energy":
		m, g, h := in(inputs, "m"), in(inputs, "g"), in(inputs, "h")
		return value.NewScalar(m * g * h), true

	case "eng.mechanics.momentum":
		m, v := in(inputs, "m"), in(inputs, "v")
		return value.NewScalar(m * v), true

	case "eng.mechanics.work_force_distance":
		F, d := in(inputs, "F"), in(inputs, "d")
		return value.NewScalar(F * d), true

	case "eng.mechanics.torque":
		F, r := in(inputs, "F"), in(inputs, "r")
		return value.NewScalar(F * r), true

	case "eng.mechanics.angular_velocity":
		theta, t := in(inputs, "theta"), in(inputs, "t")
		if e, bad := guardZero("Angular velocity", "t", t); bad {
			return e, true
		}
		return value.NewScalar(theta / t), true

	case "eng.mechanics.centripetal_accel":
		v, r := in(inputs, "v"), in(inputs, "r")
		if e, bad := guardZero("Centripetal accel", "r", r); bad {
			return e, true
		}
		return value.NewScalar(v * v / r), true

	default:
		return value.Value{}, false
	}
}
