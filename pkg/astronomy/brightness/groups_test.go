package brightness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOortGroup(t *testing.T) {
	for input, want := range map[string]OortGroup{
		"new":          GroupNew,
		"int":          GroupIntermediate,
		"intermediate": GroupIntermediate,
		" OLD ":        GroupOld,
	} {
		got, err := ParseOortGroup(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseOortGroup("ancient")
	assert.ErrorIs(t, err, ErrInvalidGroup)
	assert.Contains(t, err.Error(), "ancient")
}

func TestParseOrbitalArc(t *testing.T) {
	a, err := ParseOrbitalArc("Outbound")
	require.NoError(t, err)
	assert.Equal(t, ArcOutbound, a)

	_, err = ParseOrbitalArc("sideways")
	assert.ErrorIs(t, err, ErrInvalidArc)
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, []string{"new", "int", "old"}, []string{GroupNew.String(), GroupIntermediate.String(), GroupOld.String()})
	assert.Equal(t, "inbound", ArcInbound.String())
	assert.Equal(t, "outbound", ArcOutbound.String())
	assert.Equal(t, "unknown", OortGroup(9).String())
	assert.False(t, OortGroup(3).Valid())
	assert.False(t, OrbitalArc(-1).Valid())

	for _, g := range Groups {
		parsed, err := ParseOortGroup(g.String())
		require.NoError(t, err)
		assert.Equal(t, g, parsed)
	}
}
