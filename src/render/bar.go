package render

import (
	"image"
	"strconv"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/iafilius/uwbmeasure/src/applog"
)

// pixel output resolution; vg lengths are in points (1/72 inch)
const dpi = 96

// BarSeries is one bar per category.
type BarSeries struct {
	Name   string
	Values []float64
}

// BarSpec is a grouped bar chart: categories along x, one bar per series in each group.
type BarSpec struct {
	Title      string
	YLabel     string
	Categories []string
	Series     []BarSeries
	YMin       float64
	YMax       float64
	BarWidth   vg.Length // zero selects 22pt
	Size       Size
}

// GroupedBarChart renders spec; on failure it logs and returns a blank image of the requested size.
func GroupedBarChart(spec BarSpec) image.Image {
	size := spec.Size.Clamp()
	p, err := buildBarPlot(spec)
	if err != nil {
		applog.Warnf("[render] bar chart %q: %v; showing blank", spec.Title, err)
		return Blank(size.Width, size.Height)
	}
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(size.Width)*vg.Inch/dpi, vg.Length(size.Height)*vg.Inch/dpi),
		vgimg.UseDPI(dpi),
	)
	p.Draw(draw.New(c))
	return c.Image()
}

func buildBarPlot(spec BarSpec) (*plot.Plot, error) {
	if len(spec.Categories) == 0 || len(spec.Series) == 0 {
		return nil, errors.New("no bars")
	}
	width := spec.BarWidth
	if width <= 0 {
		width = vg.Points(22)
	}
	p := plot.New()
	p.Title.Text = spec.Title
	p.Y.Label.Text = spec.YLabel
	p.Legend.Top = true
	p.Legend.Left = true

	n := len(spec.Series)
	for i, s := range spec.Series {
		if len(s.Values) != len(spec.Categories) {
			return nil, errors.Errorf("series %q has %d values for %d categories", s.Name, len(s.Values), len(spec.Categories))
		}
		bars, err := plotter.NewBarChart(plotter.Values(s.Values), width)
		if err != nil {
			return nil, errors.Wrapf(err, "series %q", s.Name)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		// center the group on the category tick
		bars.Offset = vg.Length(float64(i)-float64(n-1)/2) * width
		p.Add(bars)
		p.Legend.Add(s.Name, bars)

		labels, err := barLabels(s.Values)
		if err != nil {
			return nil, errors.Wrapf(err, "labels %q", s.Name)
		}
		labels.Offset = vg.Point{X: bars.Offset, Y: vg.Points(3)}
		p.Add(labels)
	}
	// Add widens the axes to the data; the fixed range wins.
	p.Y.Min = spec.YMin
	p.Y.Max = spec.YMax
	p.NominalX(spec.Categories...)
	return p, nil
}

// barLabels places the value text centered above each bar.
func barLabels(vals []float64) (*plotter.Labels, error) {
	xys := make(plotter.XYs, len(vals))
	txt := make([]string, len(vals))
	for i, v := range vals {
		xys[i].X = float64(i)
		xys[i].Y = v
		txt[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: txt})
	if err != nil {
		return nil, err
	}
	for i := range l.TextStyle {
		l.TextStyle[i].XAlign = text.XCenter
	}
	return l, nil
}
