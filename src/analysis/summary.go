// Package analysis computes descriptive statistics over loaded datasets.
//
// All functions are pure: inputs are never mutated, so summarizing the same
// dataset twice yields bit-identical results. Empty inputs are not rejected;
// means and deviations come back as NaN and propagate to the caller.
package analysis

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/iafilius/uwbmeasure/src/dataset"
)

// Window returns the first n samples in order. n <= 0 or n > len(s) selects
// every sample. The result aliases s.
func Window(s dataset.Samples, n int) dataset.Samples {
	if n <= 0 || n > len(s) {
		return s
	}
	return s[:n]
}

// Mean is the arithmetic mean; NaN for empty input.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return stat.Mean(xs, nil)
}

// PopStdDev is the population (divide by N) standard deviation; NaN for empty input.
func PopStdDev(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return stat.PopStdDev(xs, nil)
}

// Bounds returns min and max; NaN, NaN for empty input.
func Bounds(xs []float64) (float64, float64) {
	if len(xs) == 0 {
		return math.NaN(), math.NaN()
	}
	return stats.Sample{Xs: xs}.Bounds()
}

// SampleSummary describes the windowed scalar dataset.
type SampleSummary struct {
	Count  int // samples loaded
	Window int // samples summarized
	Mean   float64
	Min    float64
	Max    float64
}

// SummarizeSamples computes the mean over the first window samples.
func SummarizeSamples(s dataset.Samples, window int) SampleSummary {
	w := Window(s, window)
	min, max := Bounds(w)
	return SampleSummary{
		Count:  len(s),
		Window: len(w),
		Mean:   Mean(w),
		Min:    min,
		Max:    max,
	}
}

// String is the single stdout line: the bare mean.
func (s SampleSummary) String() string {
	return formatFloat(s.Mean)
}

// formatFloat writes the shortest round-trip form with a decimal point kept
// on whole numbers (2 is "2.0"); exponent form outside [1e-4, 1e16).
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if a := math.Abs(v); a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// PositionSummary describes a coordinate dataset per axis.
type PositionSummary struct {
	Count int    
	MeanX float64
	MeanY float64
	StdX  float64
	StdY  float64
	MinX  float64
	MaxX  float64
	MinY  float64
	MaxY  float64
}

// SummarizePositions computes per-axis mean and population std.
func SummarizePositions(p dataset.Positions) PositionSummary {
	xs, ys := p.Xs(), p.Ys()
	sum := PositionSummary{
		Count: len(p),
		MeanX: Mean(xs),
		MeanY: Mean(ys),
		StdX:  PopStdDev(xs),
		StdY:  PopStdDev(ys),
	}
	sum.MinX, sum.MaxX = Bounds(xs)
	sum.MinY, sum.MaxY = Bounds(ys)
	return sum
}

// Lines returns the stdout lines: center point, then standard deviation.
func (s PositionSummary) Lines() []string {
	return []string{
		fmt.Sprintf("Mittelpunkt X: %s, Mittelpunkt Y: %s", formatFloat(s.MeanX), formatFloat(s.MeanY)),
		fmt.Sprintf("Standardabweichung X: %s, Standardabweichung Y: %s", formatFloat(s.StdX), formatFloat(s.StdY)),
	}
}
