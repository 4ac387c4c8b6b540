package render

import (
	"math"
	"strconv"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
)

// tickStep returns a 1-2-5 step that splits span into about n intervals.
func tickStep(span float64, n int) float64 {
	if n < 1 || !(span > 0) || math.IsInf(span, 0) {
		return 1
	}
	raw := span / float64(n)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5} {
		if raw <= m*mag*(1+1e-9) {
			return m * mag
		}
	}
	return 10 * mag
}

// valueRange snaps [lo,hi] outward to the tick grid, leaving at least one
// step of air where a value sits exactly on the grid. A flat series gets a
// unit span around its value. NaN passes through with a NaN step.
func valueRange(lo, hi float64, n int) (min, max, step float64) {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return lo, hi, math.NaN()
	}
	if hi <= lo {
		lo, hi = lo-0.5, hi+0.5
	}
	step = tickStep(hi-lo, n)
	min = math.Floor(lo/step) * step
	if min == lo {
		min -= step
	}
	max = math.Ceil(hi/step) * step
	if max == hi {
		max += step
	}
	return min, max, step
}

// valueTicks labels every step in [min,max] with just enough decimals for step.
func valueTicks(min, max, step float64) []chart.Tick {
	if math.IsNaN(step) || step <= 0 || max < min {
		return nil
	}
	count := int(math.Round((max - min) / step))
	ticks := make([]chart.Tick, 0, count+1)
	for k := 0; k <= count; k++ {
		v := min + float64(k)*step
		ticks = append(ticks, chart.Tick{Value: v, Label: tickLabel(v, step)})
	}
	return ticks
}

func tickLabel(v, step float64) string {
	decimals := 0
	if step < 1 {
		decimals = int(-math.Floor(math.Log10(step) + 1e-9))
	}
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	// grid arithmetic can land just below zero
	if strings.Trim(s, "-0.") == "" {
		return strings.TrimPrefix(s, "-")
	}
	return s
}

// indexTicks labels the sample-index axis [0,last] with whole-number steps.
func indexTicks(last, n int) []chart.Tick {
	if last < 1 {
		last = 1
	}
	step := int(math.Max(1, math.Round(tickStep(float64(last), n))))
	ticks := make([]chart.Tick, 0, last/step+1)
	for i := 0; i <= last; i += step {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: strconv.Itoa(i)})
	}
	return ticks
}
