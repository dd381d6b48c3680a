package chart

import (
	imgcolor "image/color"

	"github.com/hashdist/hashdist/internal/analyzer"
	"github.com/hashdist/hashdist/pkg/hdlog"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var barColor = imgcolor.RGBA{R: 31, G: 119, B: 180, A: 255}

// image 用 gonum/plot 输出图片，格式由文件扩展名决定（png、svg、pdf...）
type image struct {
	path   string
	width  vg.Length
	height vg.Length
}

func newImage(opts *Options) *image {
	return &image{
		path:   opts.Output,
		width:  vg.Length(opts.ImageWidth),
		height: vg.Length(opts.ImageHeight),
	}
}

func (i *image) Render(r *analyzer.Result) error {
	p := plot.New()
	p.Title.Text = r.Title()
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Y.Min = 0

	values := make(plotter.Values, len(r.Histogram))
	labels := make([]string, len(r.Histogram))
	for idx, rg := range r.Histogram {
		values[idx] = float64(rg.Count)
		labels[idx] = rg.Label
	}

	barWidth := (i.width * 0.8) / vg.Length(len(values)+1)
	bars, err := plotter.NewBarChart(values, barWidth)
	if err != nil {
		return errors.Wrap(err, "new bar chart")
	}
	bars.Color = barColor
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(labels...)

	if err := p.Save(i.width, i.height, i.path); err != nil {
		return errors.Wrapf(err, "save chart %s", i.path)
	}
	hdlog.Info("chart saved", zap.String("path", i.path), zap.Int("ranges", len(values)))
	return nil
}
