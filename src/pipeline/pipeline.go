// Package pipeline wires loader, summarizer and renderer for each measurement chart.
//
// Each pipeline is a straight line: load (if any) -> summarize -> render. A load
// or parse failure returns before anything is rendered.
package pipeline

import (
	"fmt"
	"image"
	"time"

	"github.com/pkg/errors"

	"github.com/iafilius/uwbmeasure/src/analysis"
	"github.com/iafilius/uwbmeasure/src/applog"
	"github.com/iafilius/uwbmeasure/src/config"
	"github.com/iafilius/uwbmeasure/src/dataset"
	"github.com/iafilius/uwbmeasure/src/render"
)

// Report is the outcome of one pipeline run.
type Report struct {
	Title   string
	Summary []string // stdout lines, may be empty
	Image   image.Image
}

// Distance renders the windowed distance samples with their mean.
func Distance(cfg config.Distance, size render.Size) (*Report, error) {
	defer applog.TimeTrack(time.Now(), "distance pipeline")
	samples, err := dataset.LoadSamples(cfg.File)
	if err != nil {
		return nil, errors.Wrap(err, "distance")
	}
	sum := analysis.SummarizeSamples(samples, cfg.Window)
	applog.Infof("[distance] %s: %d samples loaded, window=%d used=%d mean=%v", cfg.File, sum.Count, cfg.Window, sum.Window, sum.Mean)

	img := render.LineChart(render.LineSpec{
		Title:     cfg.Title,
		XLabel:    cfg.XLabel,
		YLabel:    cfg.YLabel,
		Values:    analysis.Window(samples, cfg.Window),
		Mean:      sum.Mean,
		MeanLabel: fmt.Sprintf("Mittelwert %.4f", sum.Mean),
		Size:      size,
	})
	img = render.Annotate(img, fmt.Sprintf("n=%d  mean=%.4f  min=%.4f  max=%.4f", sum.Window, sum.Mean, sum.Min, sum.Max))
	return &Report{Title: cfg.Title, Summary: []string{sum.String()}, Image: img}, nil
}

// Position renders the position estimates with mean crosshairs.
func Position(cfg config.Position, size render.Size) (*Report, error) {
	defer applog.TimeTrack(time.Now(), "position pipeline")
	pos, err := dataset.LoadPositions(cfg.File)
	if err != nil {
		return nil, errors.Wrap(err, "position")
	}
	sum := analysis.SummarizePositions(pos)
	applog.Infof("[position] %s: %d points mean=(%v, %v) std=(%v, %v)", cfg.File, sum.Count, sum.MeanX, sum.MeanY, sum.StdX, sum.StdY)

	img := render.ScatterChart(render.ScatterSpec{
		Title:  cfg.Title,
		XLabel: cfg.XLabel,
		YLabel: cfg.YLabel,
		Xs:     pos.Xs(),
		Ys:     pos.Ys(),
		MeanX:  sum.MeanX,
		MeanY:  sum.MeanY,
		Size:   size,
	})
	img = render.Annotate(img, fmt.Sprintf("n=%d\nmean x=%.4f y=%.4f\nstd  x=%.4f y=%.4f", sum.Count, sum.MeanX, sum.MeanY, sum.StdX, sum.StdY))
	return &Report{Title: cfg.Title, Summary: sum.Lines(), Image: img}, nil
}

// Timing renders the configured connection timing table as grouped bars.
func Timing(cfg config.Timing, size render.Size) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "timing")
	}
	series := make([]render.BarSeries, len(cfg.Series))
	for i, s := range cfg.Series {
		series[i] = render.BarSeries{Name: s.Name, Values: s.Values}
	}
	applog.Debugf("[timing] %d categories x %d series", len(cfg.Categories), len(series))
	img := render.GroupedBarChart(render.BarSpec{
		Title:      cfg.Title,
		YLabel:     cfg.YLabel,
		Categories: cfg.Categories,
		Series:     series,
		YMin:       cfg.YMin,
		YMax:       cfg.YMax,
		Size:       size,
	})
	return &Report{Title: cfg.Title, Image: img}, nil
}
