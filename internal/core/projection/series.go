package projection

import "slices"

// MonthIndexed is implemented by every point type the engine emits.
type MonthIndexed interface {
	MonthIndex() int
}

// Stitch joins a history series ending at month 0 with a forecast starting
// at month 0. History points that overlap the forecast are dropped, so the
// forecast's month-0 point (the current balances) is the one kept.
func Stitch[P MonthIndexed](history, forecast []P) []P {
	out := make([]P, 0, len(history)+len(forecast))
	for _, p := range history {
		if len(forecast) > 0 && p.MonthIndex() >= forecast[0].MonthIndex() {
			break
		}
		out = append(out, p)
	}
	return append(out, forecast...)
}

// ThinStep returns the sampling interval used to display a horizon of months.
func ThinStep(months int) int {
	switch {
	case months <= 60:
		return 1
	case months <= 120:
		return 3
	default:
		return 6
	}
}

// Thin keeps the points whose month is a multiple of step.
func Thin[P MonthIndexed](points []P, step int) []P {
	if step <= 1 {
		return slices.Clone(points)
	}
	out := make([]P, 0, len(points)/step+1)
	for _, p := range points {
		if p.MonthIndex()%step == 0 {
			out = append(out, p)
		}
	}
	return out
}
