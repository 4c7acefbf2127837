// internal/utils/math.go
package utils

// Clamp ограничивает v диапазоном [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MoveTowards сдвигает from к to не больше чем на maxStep, без перелёта
func MoveTowards(from, to, maxStep float64) float64 {
	if to > from {
		if from+maxStep >= to {
			return to
		}
		return from + maxStep
	}
	if from-maxStep <= to {
		return to
	}
	return from - maxStep
}
