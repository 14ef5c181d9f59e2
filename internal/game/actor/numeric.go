package actor

import "math"

const maxUint32 = math.MaxUint32

// saturatingAdd returns a+b, or MaxUint32 on overflow.
func saturatingAdd(a, b uint32) uint32 {
	if math.MaxUint32-b < a {
		return math.MaxUint32
	}
	return a + b
}

// saturatingSub returns a-b, or 0 on underflow.
func saturatingSub(a, b uint32) uint32 {
	if b >= a {
		return 0
	}
	return a - b
}

// toUint32 truncates f into [0, MaxUint32]. NaN maps to 0.
func toUint32(f float32) uint32 {
	switch {
	case math.IsNaN(float64(f)), f <= 0:
		return 0
	case f >= math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(f)
	}
}
