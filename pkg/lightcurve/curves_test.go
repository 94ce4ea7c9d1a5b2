package lightcurve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxygene76/cometmag/pkg/astronomy/brightness"
)

func TestBuildFigureSampling(t *testing.T) {
	fig, err := BuildFigure(brightness.Default())
	require.NoError(t, err)
	require.Len(t, fig.Groups, 3)
	assert.Equal(t, brightness.TransitionDistance, fig.TransitionDistance)

	for i, gc := range fig.Groups {
		assert.Equal(t, brightness.Groups[i], gc.Group)

		assert.Len(t, gc.Inbound.Distances, 2*GridPoints)
		assert.Len(t, gc.Inbound.Magnitudes, 2*GridPoints)
		assert.Equal(t, MaxDistance, gc.Inbound.Distances[0])
		assert.Equal(t, MinDistance, gc.Inbound.Distances[2*GridPoints-1])
		assert.Equal(t, brightness.TransitionDistance, gc.Inbound.Distances[GridPoints-1])
		assert.Equal(t, brightness.TransitionDistance, gc.Inbound.Distances[GridPoints])

		assert.Len(t, gc.Outbound.Distances, GridPoints)
		assert.Equal(t, MinDistance, gc.Outbound.Distances[0])
		assert.Equal(t, MaxDistance, gc.Outbound.Distances[GridPoints-1])
		assert.InDelta(t, 0, gc.Outbound.LogDistances[0], 1e-12)
		assert.InDelta(t, 1, gc.Outbound.LogDistances[GridPoints-1], 1e-12)
	}
}

func TestInboundCurveIsContinuous(t *testing.T) {
	fig, err := BuildFigure(brightness.Default())
	require.NoError(t, err)

	for _, gc := range fig.Groups {
		// both sub-grids meet at the transition distance
		assert.InDelta(t, gc.Inbound.Magnitudes[GridPoints-1], gc.Inbound.Magnitudes[GridPoints], 1e-9, "group %s", gc.Group)

		// approaching the Sun the comet only brightens
		for i := 1; i < len(gc.Inbound.Magnitudes); i++ {
			assert.LessOrEqual(t, gc.Inbound.Magnitudes[i], gc.Inbound.Magnitudes[i-1]+1e-12)
		}
	}
}

func TestAnnotations(t *testing.T) {
	fig, err := BuildFigure(brightness.Default())
	require.NoError(t, err)

	tLog := math.Log10(brightness.TransitionDistance)
	for _, gc := range fig.Groups {
		p := brightness.DefaultTable()[gc.Group]
		require.Len(t, gc.Annotations, 3)

		near, far, out := gc.Annotations[0], gc.Annotations[1], gc.Annotations[2]

		assert.Equal(t, PanelInbound, near.Panel)
		assert.InDelta(t, tLog/2, near.LogDistance, 1e-12)
		assert.Equal(t, p.Inbound.KNear, near.Slope)
		wantNear, err := brightness.Evaluate(math.Pow(10, near.LogDistance), brightness.ArcInbound, gc.Group)
		require.NoError(t, err)
		assert.InDelta(t, wantNear, near.Magnitude, 1e-12)

		assert.Equal(t, PanelInbound, far.Panel)
		assert.InDelta(t, (1+tLog)/2, far.LogDistance, 1e-12)
		assert.Equal(t, p.Inbound.KFar, far.Slope)

		assert.Equal(t, PanelOutbound, out.Panel)
		assert.InDelta(t, 0.5, out.LogDistance, 1e-12)
		assert.InDelta(t, p.Outbound.M1+p.Outbound.K1*0.5, out.Magnitude, 1e-9)
	}

	assert.Equal(t, "6.7", fig.Groups[0].Annotations[0].Label)
	assert.Equal(t, "12.8", fig.Groups[0].Annotations[1].Label)
	assert.Equal(t, "11.5", fig.Groups[0].Annotations[2].Label)
}

func TestBuildFigureRejectsTransitionOutsideRange(t *testing.T) {
	m, err := brightness.NewModel(brightness.DefaultTable(), 20)
	require.NoError(t, err)

	_, err = BuildFigure(m)
	assert.Error(t, err)
}

func TestGroupStyles(t *testing.T) {
	assert.Empty(t, StyleFor(brightness.GroupNew).Dashes)
	assert.Len(t, StyleFor(brightness.GroupIntermediate).Dashes, 2)
	assert.Len(t, StyleFor(brightness.GroupOld).Dashes, 2)
	assert.NotEqual(t, StyleFor(brightness.GroupNew).Color, StyleFor(brightness.GroupOld).Color)
}
