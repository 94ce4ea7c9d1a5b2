package orbital

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxygene76/cometmag/pkg/astronomy/brightness"
)

func TestHeliocentricDistanceAtApsides(t *testing.T) {
	oe := OrbitalElements{SemiMajorAxis: 10, Eccentricity: 0.9}

	assert.InDelta(t, oe.GetPerihelion(), oe.HeliocentricDistance(), 1e-9)

	oe.MeanAnomaly = math.Pi
	assert.InDelta(t, oe.GetAphelion(), oe.HeliocentricDistance(), 1e-9)
}

func TestKeplerSolution(t *testing.T) {
	for _, e := range []float64{0, 0.3, 0.85, 0.99} {
		for _, M := range []float64{0.1, 1, 2.5, 4, 6} {
			oe := OrbitalElements{SemiMajorAxis: 5, Eccentricity: e, MeanAnomaly: M}
			E := oe.eccentricAnomaly()
			assert.InDelta(t, M, E-e*math.Sin(E), 1e-9, "e=%v M=%v", e, M)
		}
	}
}

func TestArcFollowsMeanAnomaly(t *testing.T) {
	oe := OrbitalElements{SemiMajorAxis: 20, Eccentricity: 0.95, MeanAnomaly: 0.2}
	assert.False(t, oe.IsInbound())
	assert.Equal(t, brightness.ArcOutbound, oe.Arc())

	oe.MeanAnomaly = 2*math.Pi - 0.2
	assert.True(t, oe.IsInbound())
	assert.Equal(t, brightness.ArcInbound, oe.Arc())

	// negative mean anomaly is before perihelion
	oe.MeanAnomaly = -0.2
	assert.True(t, oe.IsInbound())
}

func TestSymmetricDistanceAroundPerihelion(t *testing.T) {
	before := OrbitalElements{SemiMajorAxis: 8, Eccentricity: 0.7, MeanAnomaly: -0.4}
	after := OrbitalElements{SemiMajorAxis: 8, Eccentricity: 0.7, MeanAnomaly: 0.4}
	assert.InDelta(t, before.HeliocentricDistance(), after.HeliocentricDistance(), 1e-9)
}

func TestFromPerihelionAndValidate(t *testing.T) {
	oe := FromPerihelion(1.5, 0.8, 0)
	require.NoError(t, oe.Validate())
	assert.InDelta(t, 7.5, oe.SemiMajorAxis, 1e-12)
	assert.InDelta(t, 1.5, oe.GetPerihelion(), 1e-12)

	assert.Error(t, OrbitalElements{SemiMajorAxis: -1, Eccentricity: 0.5}.Validate())
	assert.Error(t, OrbitalElements{SemiMajorAxis: 1, Eccentricity: 1}.Validate())
	assert.Error(t, OrbitalElements{SemiMajorAxis: 1, Eccentricity: 0.5, MeanAnomaly: math.NaN()}.Validate())
}
