package brightness

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// OortGroup is the dynamical classification of a comet
type OortGroup int

const (
	GroupNew          OortGroup = iota // dynamically new, first passage
	GroupIntermediate                  // intermediate
	GroupOld                           // dynamically old, returning

	numGroups = 3
)

// Groups lists every Oort group in table order
var Groups = []OortGroup{GroupNew, GroupIntermediate, GroupOld}

// String returns the short group name used on the command line and in config files
func (g OortGroup) String() string {
	switch g {
	case GroupNew:
		return "new"
	case GroupIntermediate:
		return "int"
	case GroupOld:
		return "old"
	default:
		return "unknown"
	}
}

// Valid reports whether g is one of the enumerated groups
func (g OortGroup) Valid() bool {
	return g >= GroupNew && g <= GroupOld
}

// ParseOortGroup converts a group name into an OortGroup
func ParseOortGroup(s string) (OortGroup, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "new":
		return GroupNew, nil
	case "int", "intermediate":
		return GroupIntermediate, nil
	case "old":
		return GroupOld, nil
	}
	return 0, errorsmod.Wrapf(ErrInvalidGroup, "invalid oort group: %q", s)
}

// OrbitalArc is the orbital phase relative to perihelion
type OrbitalArc int

const (
	ArcInbound  OrbitalArc = iota // pre-perihelion
	ArcOutbound                   // post-perihelion
)

// Arcs lists both orbital arcs
var Arcs = []OrbitalArc{ArcInbound, ArcOutbound}

func (a OrbitalArc) String() string {
	switch a {
	case ArcInbound:
		return "inbound"
	case ArcOutbound:
		return "outbound"
	default:
		return "unknown"
	}
}

// Valid reports whether a is inbound or outbound
func (a OrbitalArc) Valid() bool {
	return a == ArcInbound || a == ArcOutbound
}

// ParseOrbitalArc converts an arc name into an OrbitalArc
func ParseOrbitalArc(s string) (OrbitalArc, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inbound":
		return ArcInbound, nil
	case "outbound":
		return ArcOutbound, nil
	}
	return 0, errorsmod.Wrapf(ErrInvalidArc, "invalid arc: %q", s)
}
