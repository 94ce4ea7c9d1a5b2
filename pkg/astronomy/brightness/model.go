// Package brightness evaluates the median total heliocentric magnitude of comets
// as a function of heliocentric distance, orbital arc and Oort group.
//
// Pre-perihelion the magnitude follows two straight lines in log10(r) that meet
// at the transition distance; post-perihelion it follows a single line. The
// default coefficients are median values for a sample of over 200 comets
// (Lacerda et al. 2025, A&A 697, A210).
package brightness

import (
	"math"

	errorsmod "cosmossdk.io/errors"
)

// TransitionDistance is the heliocentric distance (AU) where the inbound slope changes
const TransitionDistance = 3.16

// InboundParameters are the pre-perihelion brightening parameters
type InboundParameters struct {
	KNear float64 `json:"k_near" yaml:"k_near"` // slope inside the transition distance
	KFar  float64 `json:"k_far" yaml:"k_far"`   // slope beyond the transition distance
	M1    float64 `json:"m1" yaml:"m1"`         // magnitude at 1 AU
}

// OutboundParameters are the post-perihelion fading parameters
type OutboundParameters struct {
	K1 float64 `json:"k1" yaml:"k1"` // fading slope
	M1 float64 `json:"m1" yaml:"m1"` // magnitude at 1 AU
}

// GroupParameters holds both arcs for one Oort group
type GroupParameters struct {
	Inbound  InboundParameters  `json:"inbound" yaml:"inbound"`
	Outbound OutboundParameters `json:"outbound" yaml:"outbound"`
}

// Table is indexed by OortGroup. It is a value type so copies never alias.
type Table [numGroups]GroupParameters

var defaultTable = Table{
	GroupNew: {
		Inbound:  InboundParameters{KNear: 6.7285, KFar: 12.847, M1: 8.28},
		Outbound: OutboundParameters{K1: 11.54, M1: 8.75},
	},
	GroupIntermediate: {
		Inbound:  InboundParameters{KNear: 7.83575, KFar: 12.524, M1: 8.96},
		Outbound: OutboundParameters{K1: 12.66, M1: 9.71},
	},
	GroupOld: {
		Inbound:  InboundParameters{KNear: 13.40275, KFar: 14.632, M1: 11.58},
		Outbound: OutboundParameters{K1: 13.21, M1: 11.57},
	},
}

// DefaultTable returns a copy of the median parameter table
func DefaultTable() Table {
	return defaultTable
}

// Model evaluates magnitudes for a fixed parameter table and transition distance.
// A Model is immutable and safe for concurrent use.
type Model struct {
	table       Table
	transitionR float64
}

var defaultModel = &Model{table: defaultTable, transitionR: TransitionDistance}

// Default returns the model built from the median parameter table
func Default() *Model {
	return defaultModel
}

// NewModel builds a model from user-supplied parameters
func NewModel(table Table, transitionDistance float64) (*Model, error) {
	if !isFinite(transitionDistance) || transitionDistance <= 0 {
		return nil, errorsmod.Wrapf(ErrInvalidParameters, "transition distance must be positive, got %v", transitionDistance)
	}
	for _, g := range Groups {
		p := table[g]
		fields := []struct {
			name  string
			value float64
		}{
			{"inbound.k_near", p.Inbound.KNear},
			{"inbound.k_far", p.Inbound.KFar},
			{"inbound.m1", p.Inbound.M1},
			{"outbound.k1", p.Outbound.K1},
			{"outbound.m1", p.Outbound.M1},
		}
		for _, f := range fields {
			if !isFinite(f.value) {
				return nil, errorsmod.Wrapf(ErrInvalidParameters, "%s.%s is not finite", g, f.name)
			}
		}
	}
	return &Model{table: table, transitionR: transitionDistance}, nil
}

// Table returns a copy of the model's parameter table
func (m *Model) Table() Table {
	return m.table
}

// TransitionDistance returns the inbound transition distance in AU
func (m *Model) TransitionDistance() float64 {
	return m.transitionR
}

// Parameters returns the parameters of one group
func (m *Model) Parameters(group OortGroup) (GroupParameters, error) {
	if !group.Valid() {
		return GroupParameters{}, errorsmod.Wrapf(ErrInvalidGroup, "invalid oort group: %d", int(group))
	}
	return m.table[group], nil
}

// FarIntercept returns m_far, the 1 AU intercept of the far inbound segment.
// It is derived so that both inbound segments agree at the transition distance.
func (m *Model) FarIntercept(group OortGroup) (float64, error) {
	p, err := m.Parameters(group)
	if err != nil {
		return 0, err
	}
	return farIntercept(p.Inbound, math.Log10(m.transitionR)), nil
}

// Evaluate returns the total heliocentric magnitude at one distance (AU)
func (m *Model) Evaluate(distance float64, arc OrbitalArc, group OortGroup) (float64, error) {
	eval, err := m.evaluator(arc, group)
	if err != nil {
		return 0, err
	}
	if err := checkDistance(distance); err != nil {
		return 0, err
	}
	return eval(math.Log10(distance)), nil
}

// EvaluateSeries returns one magnitude per distance, in input order.
// Every distance is validated before any magnitude is computed.
func (m *Model) EvaluateSeries(distances []float64, arc OrbitalArc, group OortGroup) ([]float64, error) {
	eval, err := m.evaluator(arc, group)
	if err != nil {
		return nil, err
	}
	for i, d := range distances {
		if err := checkDistance(d); err != nil {
			return nil, errorsmod.Wrapf(err, "element %d", i)
		}
	}

	mags := make([]float64, len(distances))
	for i, d := range distances {
		mags[i] = eval(math.Log10(d))
	}
	return mags, nil
}

// evaluator validates group and arc, then returns the magnitude as a function of log10(r)
func (m *Model) evaluator(arc OrbitalArc, group OortGroup) (func(logR float64) float64, error) {
	if !group.Valid() {
		return nil, errorsmod.Wrapf(ErrInvalidGroup, "invalid oort group: %d", int(group))
	}
	if !arc.Valid() {
		return nil, errorsmod.Wrapf(ErrInvalidArc, "invalid arc: %d", int(arc))
	}

	p := m.table[group]
	if arc == ArcOutbound {
		out := p.Outbound
		return func(logR float64) float64 {
			return out.M1 + out.K1*logR
		}, nil
	}

	in := p.Inbound
	transitionLogR := math.Log10(m.transitionR)
	mFar := farIntercept(in, transitionLogR)
	return func(logR float64) float64 {
		if logR < transitionLogR {
			return nearBranch(in, logR)
		}
		return farBranch(in, mFar, logR)
	}, nil
}

func nearBranch(p InboundParameters, logR float64) float64 {
	return p.M1 + p.KNear*logR
}

func farBranch(p InboundParameters, mFar, logR float64) float64 {
	return mFar + p.KFar*logR
}

func farIntercept(p InboundParameters, transitionLogR float64) float64 {
	return p.M1 + transitionLogR*(p.KNear-p.KFar)
}

func checkDistance(d float64) error {
	if !isFinite(d) || d <= 0 {
		return errorsmod.Wrapf(ErrInvalidDistance, "distance must be positive and finite, got %v AU", d)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Evaluate returns the magnitude at one distance using the default model
func Evaluate(distance float64, arc OrbitalArc, group OortGroup) (float64, error) {
	return defaultModel.Evaluate(distance, arc, group)
}

// EvaluateSeries returns magnitudes for several distances using the default model
func EvaluateSeries(distances []float64, arc OrbitalArc, group OortGroup) ([]float64, error) {
	return defaultModel.EvaluateSeries(distances, arc, group)
}

// EvaluateNamed parses arc and group names and evaluates with the default model.
// Empty names select inbound and new. The group is checked before the arc.
func EvaluateNamed(distance float64, arc, group string) (float64, error) {
	if group == "" {
		group = GroupNew.String()
	}
	if arc == "" {
		arc = ArcInbound.String()
	}
	g, err := ParseOortGroup(group)
	if err != nil {
		return 0, err
	}
	a, err := ParseOrbitalArc(arc)
	if err != nil {
		return 0, err
	}
	return defaultModel.Evaluate(distance, a, g)
}

// ApparentMagnitude converts a total heliocentric magnitude to an apparent
// magnitude for an observer at the given geocentric distance (AU)
func ApparentMagnitude(total, observerDistance float64) (float64, error) {
	if !isFinite(observerDistance) || observerDistance <= 0 {
		return 0, errorsmod.Wrapf(ErrInvalidDistance, "observer distance must be positive and finite, got %v AU", observerDistance)
	}
	return total + 5*math.Log10(observerDistance), nil
}
