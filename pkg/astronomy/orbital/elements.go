package orbital

import (
	"fmt"
	"math"

	"github.com/oxygene76/cometmag/pkg/astronomy/brightness"
)

// OrbitalElements describes where a comet is on a bound Keplerian orbit
type OrbitalElements struct {
	SemiMajorAxis float64 // a - Semi-major axis (AU)
	Eccentricity  float64 // e - Eccentricity (0-1)
	MeanAnomaly   float64 // M - Mean anomaly (radians), 0 at perihelion
}

// Validate checks that the elements describe a bound orbit
func (oe OrbitalElements) Validate() error {
	if !(oe.SemiMajorAxis > 0) || math.IsInf(oe.SemiMajorAxis, 0) {
		return fmt.Errorf("semi-major axis must be positive, got %v AU", oe.SemiMajorAxis)
	}
	if !(oe.Eccentricity >= 0 && oe.Eccentricity < 1) {
		return fmt.Errorf("eccentricity must be in [0, 1), got %v", oe.Eccentricity)
	}
	if math.IsNaN(oe.MeanAnomaly) || math.IsInf(oe.MeanAnomaly, 0) {
		return fmt.Errorf("mean anomaly must be finite, got %v", oe.MeanAnomaly)
	}
	return nil
}

// eccentricAnomaly solves Kepler's equation M = E - e*sin(E) for E in [0, 2π)
func (oe OrbitalElements) eccentricAnomaly() float64 {
	M := math.Mod(oe.MeanAnomaly, 2*math.Pi)
	if M < 0 {
		M += 2 * math.Pi
	}

	// Newton-Raphson iteration
	E := M
	if oe.Eccentricity > 0.8 {
		E = math.Pi // Better initial guess for high eccentricity
	}

	tolerance := 1e-12
	maxIterations := 100

	for i := 0; i < maxIterations; i++ {
		f := E - oe.Eccentricity*math.Sin(E) - M
		fp := 1 - oe.Eccentricity*math.Cos(E)

		deltaE := f / fp
		E -= deltaE

		if math.Abs(deltaE) < tolerance {
			break
		}
	}

	return E
}

// HeliocentricDistance returns r = a(1 - e cos E) in AU
func (oe OrbitalElements) HeliocentricDistance() float64 {
	return oe.SemiMajorAxis * (1 - oe.Eccentricity*math.Cos(oe.eccentricAnomaly()))
}

// IsInbound reports whether the comet is approaching perihelion.
// The radial velocity is proportional to e*sin(E), so it is negative for E in (π, 2π).
func (oe OrbitalElements) IsInbound() bool {
	return math.Sin(oe.eccentricAnomaly()) < 0
}

// Arc returns the orbital arc matching the current position
func (oe OrbitalElements) Arc() brightness.OrbitalArc {
	if oe.IsInbound() {
		return brightness.ArcInbound
	}
	return brightness.ArcOutbound
}

// GetPerihelion returns the perihelion distance
func (oe OrbitalElements) GetPerihelion() float64 {
	return oe.SemiMajorAxis * (1 - oe.Eccentricity)
}

// GetAphelion returns the aphelion distance
func (oe OrbitalElements) GetAphelion() float64 {
	return oe.SemiMajorAxis * (1 + oe.Eccentricity)
}

// FromPerihelion builds elements from perihelion distance q (AU) instead of a
func FromPerihelion(q, e, meanAnomaly float64) OrbitalElements {
	return OrbitalElements{
		SemiMajorAxis: q / (1 - e),
		Eccentricity:  e,
		MeanAnomaly:   meanAnomaly,
	}
}
