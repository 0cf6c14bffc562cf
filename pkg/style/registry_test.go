package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_Deterministic(t *testing.T) {
	assert.Equal(t, NewRegistry().fragments, NewRegistry().fragments)
}

func TestLookup(t *testing.T) {
	reg := NewRegistry()

	frag, ok := reg.Lookup("charta.doc.aps")
	require.True(t, ok)
	assert.Equal(t, 8.0, frag["font.size"])

	_, ok = reg.Lookup("charta.doc.apx")
	assert.False(t, ok)

	// Lookup is exact match, not prefix match.
	_, ok = reg.Lookup("charta.doc")
	assert.False(t, ok)
}

func TestWithFragments_Overlay(t *testing.T) {
	base := NewRegistry()
	overlay := base.WithFragments(map[string]Fragment{
		"thesis.main":    {"font.size": 10.0},
		"charta.doc.aps": {"font.size": 9.0},
	})

	frag, ok := overlay.Lookup("thesis.main")
	require.True(t, ok)
	assert.Equal(t, 10.0, frag["font.size"])

	// Overlays replace built-in entries wholesale.
	frag, ok = overlay.Lookup("charta.doc.aps")
	require.True(t, ok)
	assert.Equal(t, Fragment{"font.size": 9.0}, frag)

	// The base registry is untouched.
	frag, ok = base.Lookup("charta.doc.aps")
	require.True(t, ok)
	assert.Equal(t, 8.0, frag["font.size"])
	_, ok = base.Lookup("thesis.main")
	assert.False(t, ok)
}

func TestWithFragments_ClonesInput(t *testing.T) {
	input := map[string]Fragment{"thesis.main": {"font.size": 10.0}}
	reg := NewRegistry().WithFragments(input)

	input["thesis.main"]["font.size"] = 99.0

	frag, ok := reg.Lookup("thesis.main")
	require.True(t, ok)
	assert.Equal(t, 10.0, frag["font.size"])
}

func TestIsParam(t *testing.T) {
	assert.True(t, IsParam("figure.figsize"))
	assert.True(t, IsParam("text.latex.preamble"))
	assert.False(t, IsParam("figure.widefigsize"), "weed keys are not valid params")
	assert.False(t, IsParam("charta.doc"))
}

func TestIsMetaKey(t *testing.T) {
	for _, key := range []string{KeyTex, KeyWide, KeySquare, KeyTexPreamble} {
		assert.True(t, IsMetaKey(key))
	}
	assert.False(t, IsMetaKey("charta.doc"))
	assert.False(t, IsMetaKey("font.size"))
}
