// Package lightcurve samples the brightness model over heliocentric distance and
// renders pre- and post-perihelion light curves for every Oort group.
package lightcurve

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"

	"github.com/oxygene76/cometmag/pkg/astronomy/brightness"
	astromath "github.com/oxygene76/cometmag/pkg/astronomy/math"
)

const (
	// GridPoints is the number of samples per curve segment
	GridPoints = 100

	MinDistance = 1.0  // AU
	MaxDistance = 10.0 // AU

	// Magnitude axis limits; brighter is drawn at the top
	MagnitudeBright = 7.5
	MagnitudeFaint  = 25.0
)

// Panel identifies one side of the figure
type Panel int

const (
	PanelInbound Panel = iota
	PanelOutbound
)

func (p Panel) String() string {
	if p == PanelInbound {
		return "Pre-Perihelion"
	}
	return "Post-Perihelion"
}

// Style is the fixed line style of one Oort group
type Style struct {
	Color  color.RGBA
	Dashes []vg.Length
}

var groupStyles = map[brightness.OortGroup]Style{
	brightness.GroupNew: {
		Color: color.RGBA{R: 0x0C, G: 0x7B, B: 0xDC, A: 0xFF},
	},
	brightness.GroupIntermediate: {
		Color:  color.RGBA{R: 0xFF, G: 0xC2, B: 0x0A, A: 0xFF},
		Dashes: []vg.Length{vg.Points(7), vg.Points(1.5)},
	},
	brightness.GroupOld: {
		Color:  color.RGBA{R: 0xFF, G: 0x57, B: 0x33, A: 0xFF},
		Dashes: []vg.Length{vg.Points(3), vg.Points(1.5)},
	},
}

// StyleFor returns the line style of a group
func StyleFor(group brightness.OortGroup) Style {
	return groupStyles[group]
}

// Curve is a sampled magnitude curve
type Curve struct {
	Distances    []float64 // AU, in drawing order
	LogDistances []float64
	Magnitudes   []float64
}

// Annotation marks a curve segment with its slope
type Annotation struct {
	Panel       Panel
	LogDistance float64
	Magnitude   float64
	Slope       float64
	Label       string
}

// GroupCurves holds everything drawn for one Oort group
type GroupCurves struct {
	Group       brightness.OortGroup
	Style       Style
	Inbound     Curve // far segment followed by the near segment, distance decreasing
	Outbound    Curve // distance increasing
	Annotations []Annotation
}

// Figure is the sampled content of the two-panel plot
type Figure struct {
	TransitionDistance float64
	Groups             []GroupCurves
}

// BuildFigure samples the model for every group and both arcs
func BuildFigure(model *brightness.Model) (*Figure, error) {
	rt := model.TransitionDistance()
	if rt <= MinDistance || rt >= MaxDistance {
		return nil, fmt.Errorf("transition distance %v AU is outside the plotted range [%v, %v]", rt, MinDistance, MaxDistance)
	}

	full, err := astromath.LogSpace(MinDistance, MaxDistance, GridPoints)
	if err != nil {
		return nil, err
	}
	near, err := astromath.LogSpace(rt, MinDistance, GridPoints)
	if err != nil {
		return nil, err
	}
	far, err := astromath.LogSpace(MaxDistance, rt, GridPoints)
	if err != nil {
		return nil, err
	}
	inbound := append(append(make([]float64, 0, 2*GridPoints), far...), near...)

	fig := &Figure{TransitionDistance: rt}
	for _, g := range brightness.Groups {
		gc, err := buildGroup(model, g, inbound, full, near, far)
		if err != nil {
			return nil, fmt.Errorf("group %s: %w", g, err)
		}
		fig.Groups = append(fig.Groups, gc)
	}
	return fig, nil
}

func buildGroup(model *brightness.Model, g brightness.OortGroup, inbound, full, near, far []float64) (GroupCurves, error) {
	params, err := model.Parameters(g)
	if err != nil {
		return GroupCurves{}, err
	}

	in, err := sample(model, inbound, brightness.ArcInbound, g)
	if err != nil {
		return GroupCurves{}, err
	}
	out, err := sample(model, full, brightness.ArcOutbound, g)
	if err != nil {
		return GroupCurves{}, err
	}

	gc := GroupCurves{Group: g, Style: StyleFor(g), Inbound: in, Outbound: out}
	for _, seg := range []struct {
		panel Panel
		arc   brightness.OrbitalArc
		grid  []float64
		slope float64
	}{
		{PanelInbound, brightness.ArcInbound, near, params.Inbound.KNear},
		{PanelInbound, brightness.ArcInbound, far, params.Inbound.KFar},
		{PanelOutbound, brightness.ArcOutbound, full, params.Outbound.K1},
	} {
		a, err := annotate(model, seg.panel, seg.arc, g, seg.grid, seg.slope)
		if err != nil {
			return GroupCurves{}, err
		}
		gc.Annotations = append(gc.Annotations, a)
	}
	return gc, nil
}

func sample(model *brightness.Model, distances []float64, arc brightness.OrbitalArc, g brightness.OortGroup) (Curve, error) {
	mags, err := model.EvaluateSeries(distances, arc, g)
	if err != nil {
		return Curve{}, err
	}
	return Curve{
		Distances:    distances,
		LogDistances: astromath.Log10(distances),
		Magnitudes:   mags,
	}, nil
}

// annotate places a slope label at the log-space midpoint of a segment
func annotate(model *brightness.Model, panel Panel, arc brightness.OrbitalArc, g brightness.OortGroup, grid []float64, slope float64) (Annotation, error) {
	x := astromath.Midpoint(math.Log10(grid[0]), math.Log10(grid[len(grid)-1]))
	mag, err := model.Evaluate(math.Pow(10, x), arc, g)
	if err != nil {
		return Annotation{}, err
	}
	return Annotation{
		Panel:       panel,
		LogDistance: x,
		Magnitude:   mag,
		Slope:       slope,
		Label:       fmt.Sprintf("%.1f", slope),
	}, nil
}
