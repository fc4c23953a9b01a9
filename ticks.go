package recoplot

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// PreciseTicks places labelled ticks on round values, aiming for about
// NSuggestedTicks of them, and fills the gaps with unlabelled minor
// ticks.
type PreciseTicks struct {
	NSuggestedTicks int
}

func (t PreciseTicks) Ticks(min, max float64) []plot.Tick {
	n := t.NSuggestedTicks
	if n < 2 {
		n = 4
	}
	if max <= min {
		panic("illegal range")
	}

	mult, major := majorStep(min, max, n)
	ticks := majorTicks(min, max, major)

	minor := major / 2
	switch mult {
	case 3, 6:
		minor = major / 3
	case 5:
		minor = major / 5
	}
	for val := math.Floor(min/minor) * minor; val <= max; val += minor {
		if val >= min && !hasTick(ticks, val) {
			ticks = append(ticks, plot.Tick{Value: val})
		}
	}
	return ticks
}

// majorStep returns the spacing between labelled ticks as a multiple
// of a power of ten.
func majorStep(min, max float64, n int) (int, float64) {
	span := max - min
	tens := math.Pow10(int(math.Floor(math.Log10(span))))
	for span/tens < float64(n-1) {
		tens /= 10
	}

	mult := int(span / tens / float64(n-1))
	switch mult {
	case 7:
		mult = 6
	case 9:
		mult = 8
	}
	return mult, float64(mult) * tens
}

func majorTicks(min, max, step float64) []plot.Tick {
	var values []float64
	for val := math.Floor(min/step) * step; val <= max; val += step {
		if val >= min {
			values = append(values, val)
		}
	}

	maxAbs := math.Max(math.Abs(min), math.Abs(max))
	prec := int(math.Ceil(math.Log10(maxAbs)) - math.Floor(math.Log10(step)))
	ticks := make([]plot.Tick, 0, len(values))
	for _, v := range values {
		v = round(v, prec)
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', -1, 64)})
	}
	return ticks
}

func hasTick(ticks []plot.Tick, val float64) bool {
	for _, t := range ticks {
		if t.Value == val {
			return true
		}
	}
	return false
}

func round(x float64, prec int) float64 {
	if x == 0 {
		// no negative zero
		return 0
	}
	if prec >= 0 && x == math.Trunc(x) {
		return x
	}

	pow := math.Pow10(prec)
	scaled := x * pow
	if math.IsInf(scaled, 0) {
		return x
	}
	if x < 0 {
		x = math.Ceil(scaled - 0.5)
	} else {
		x = math.Floor(scaled + 0.5)
	}
	if x == 0 {
		return 0
	}
	return x / pow
}
