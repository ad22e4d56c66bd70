package ops

import "math"

const piConst = math.Pi

func sqrtf(x float64) float64 { return math.Sqrt(x) }
