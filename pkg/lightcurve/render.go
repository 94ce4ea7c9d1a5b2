package lightcurve

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Format is an image file format supported by Render
type Format string

const (
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
	FormatSVG Format = "svg"
)

// ParseFormat validates an image format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(s, "."))); f {
	case FormatPNG, FormatPDF, FormatSVG:
		return f, nil
	}
	return "", fmt.Errorf("unsupported image format: %q", s)
}

// RenderOptions controls the figure size and raster resolution
type RenderOptions struct {
	Width  vg.Length
	Height vg.Length
	DPI    int
}

// DefaultRenderOptions returns a 20x12 cm figure at 300 dpi
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Width:  20 * vg.Centimeter,
		Height: 12 * vg.Centimeter,
		DPI:    300,
	}
}

type canvasWriter interface {
	vg.CanvasSizer
	io.WriterTo
}

// Render draws the two panels side by side and writes them in the given format
func Render(fig *Figure, w io.Writer, format Format, opts RenderOptions) error {
	inbound, err := newPanel(fig, PanelInbound)
	if err != nil {
		return err
	}
	outbound, err := newPanel(fig, PanelOutbound)
	if err != nil {
		return err
	}

	c, err := newCanvas(format, opts)
	if err != nil {
		return err
	}

	plots := [][]*plot.Plot{{inbound, outbound}}
	tiles := draw.Tiles{Rows: 1, Cols: 2}
	canvases := plot.Align(plots, tiles, draw.New(c))
	for j := range plots[0] {
		plots[0][j].Draw(canvases[0][j])
	}

	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %s figure: %w", format, err)
	}
	return nil
}

func newCanvas(format Format, opts RenderOptions) (canvasWriter, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("figure size must be positive, got %v x %v", opts.Width, opts.Height)
	}
	switch format {
	case FormatPNG:
		dpi := opts.DPI
		if dpi <= 0 {
			dpi = vgimg.DefaultDPI
		}
		c := vgimg.NewWith(vgimg.UseWH(opts.Width, opts.Height), vgimg.UseDPI(dpi))
		return vgimg.PngCanvas{Canvas: c}, nil
	case FormatPDF:
		return vgpdf.New(opts.Width, opts.Height), nil
	case FormatSVG:
		return vgsvg.New(opts.Width, opts.Height), nil
	}
	return nil, fmt.Errorf("unsupported image format: %q", format)
}

func newPanel(fig *Figure, panel Panel) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = panel.String()
	p.X.Label.Text = "r (au)"

	for _, gc := range fig.Groups {
		curve := gc.Outbound
		if panel == PanelInbound {
			curve = gc.Inbound
		}
		line, err := plotter.NewLine(toXYs(curve.LogDistances, curve.Magnitudes))
		if err != nil {
			return nil, fmt.Errorf("%s curve for %s: %w", panel, gc.Group, err)
		}
		line.LineStyle.Color = gc.Style.Color
		line.LineStyle.Dashes = gc.Style.Dashes
		line.LineStyle.Width = vg.Points(1.5)
		p.Add(line)

		if panel == PanelOutbound {
			p.Legend.Add(gc.Group.String(), line)
		}

		labels, err := slopeLabels(gc.Annotations, panel)
		if err != nil {
			return nil, err
		}
		p.Add(labels)
	}

	// fixed limits, set after Add since Add widens the ranges to the data
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = MagnitudeBright, MagnitudeFaint
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}

	if panel == PanelInbound {
		p.X.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
		p.X.Tick.Marker = distanceTicks(1, 2, 3, 5, 10)
		p.Y.Label.Text = "mag"
	} else {
		p.X.Tick.Marker = distanceTicks(2, 3, 5, 10)
		p.Y.Tick.Marker = plot.ConstantTicks(nil)
		p.Legend.Top = true
		p.Legend.Left = false
	}
	return p, nil
}

func slopeLabels(annotations []Annotation, panel Panel) (*plotter.Labels, error) {
	var xyl plotter.XYLabels
	for _, a := range annotations {
		if a.Panel != panel {
			continue
		}
		xyl.XYs = append(xyl.XYs, plotter.XY{X: a.LogDistance, Y: a.Magnitude})
		xyl.Labels = append(xyl.Labels, a.Label)
	}
	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return nil, fmt.Errorf("slope labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font.Size = vg.Points(9)
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YBottom
	}
	return labels, nil
}

// distanceTicks labels a log10(r) axis with plain distances
func distanceTicks(distances ...float64) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(distances))
	for i, d := range distances {
		ticks[i] = plot.Tick{
			Value: math.Log10(d),
			Label: strconv.FormatFloat(d, 'f', -1, 64),
		}
	}
	return ticks
}

func toXYs(xs, ys []float64) plotter.XYs {
	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i].X = xs[i]
		xys[i].Y = ys[i]
	}
	return xys
}
