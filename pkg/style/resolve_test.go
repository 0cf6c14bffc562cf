package style

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_PassthroughOnly(t *testing.T) {
	reg := NewRegistry()
	req := Request{
		{Key: "figure.figsize", Value: [2]float64{3.4, 2.1}},
		{Key: "font.size", Value: 9.0},
		{Key: "lines.linewidth", Value: 1.0},
	}

	cfg, err := reg.Resolve(req)
	require.NoError(t, err)
	assert.Equal(t, Config{
		"figure.figsize":  [2]float64{3.4, 2.1},
		"font.size":       9.0,
		"lines.linewidth": 1.0,
	}, cfg)
}

func TestResolve_UnknownFamilyValue(t *testing.T) {
	reg := NewRegistry()

	cfg, err := reg.Resolve(Request{{Key: "charta.doc", Value: "apx"}})
	require.Error(t, err)
	assert.Nil(t, cfg)

	var invalid *InvalidOptionValueError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "charta.doc", invalid.Key)
	assert.Equal(t, "apx", invalid.Value)
}

func TestResolve_FamilyCommonMerged(t *testing.T) {
	reg := NewRegistry()

	cfg, err := reg.Resolve(Request{{Key: "charta.doc", Value: "aps"}})
	require.NoError(t, err)

	// From charta.doc.common.
	assert.Equal(t, "#cccccc", cfg["grid.color"])
	// From charta.doc.aps, overriding the common legend size.
	assert.Equal(t, 7.5, cfg["legend.fontsize"])
}

func TestResolve_PassthroughOverridesDerived(t *testing.T) {
	reg := NewRegistry()

	cfg, err := reg.Resolve(Request{
		{Key: "charta.doc", Value: "aps"},
		{Key: "font.size", Value: 11.0},
	})
	require.NoError(t, err)
	assert.Equal(t, 11.0, cfg["font.size"])
}

func TestResolve_Idempotent(t *testing.T) {
	reg := NewRegistry()
	req := Request{
		{Key: "charta.doc", Value: "standard"},
		{Key: "charta.tex", Value: true},
		{Key: "charta.wide", Value: true},
		{Key: "font.size", Value: 10.0},
	}

	first, err := reg.Resolve(req)
	require.NoError(t, err)
	second, err := reg.Resolve(req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolve_WeedKeysNeverInOutput(t *testing.T) {
	reg := NewRegistry()
	requests := []Request{
		{{Key: "charta.doc", Value: "aps"}},
		{{Key: "charta.doc", Value: "aps"}, {Key: "charta.wide", Value: true}},
		{{Key: "charta.doc", Value: "standard"}, {Key: "charta.square", Value: 0}},
	}

	for _, req := range requests {
		cfg, err := reg.Resolve(req)
		require.NoError(t, err)
		assert.NotContains(t, cfg, "figure.widefigsize")
	}
}

func TestResolve_MetaKeysNeverInOutput(t *testing.T) {
	reg := NewRegistry()

	cfg, err := reg.Resolve(Request{
		{Key: "charta.doc", Value: "aps"},
		{Key: "charta.tex", Value: true},
		{Key: "charta.wide", Value: true},
		{Key: "charta.square", Value: 1},
		{Key: "charta.tex.preamble", Value: `\usepackage{siunitx}`},
	})
	require.NoError(t, err)
	for key := range cfg {
		assert.False(t, IsMetaKey(key), "meta key %q leaked into output", key)
	}
}

func TestResolve_TexMeta(t *testing.T) {
	reg := NewRegistry()

	cfg, err := reg.Resolve(Request{{Key: "charta.tex", Value: true}})
	require.NoError(t, err)
	assert.Equal(t, true, cfg["text.usetex"])

	cfg, err = reg.Resolve(Request{{Key: "charta.tex", Value: false}})
	require.NoError(t, err)
	assert.NotContains(t, cfg, "text.usetex")
}

func TestResolve_WideReplacesFigureSize(t *testing.T) {
	reg := NewRegistry()

	cfg, err := reg.Resolve(Request{
		{Key: "charta.doc", Value: "standard"},
		{Key: "charta.wide", Value: true},
	})
	require.NoError(t, err)
	assert.Equal(t, [2]float64{315 * pt, 315 / golden * pt}, cfg["figure.figsize"])
}

func TestResolve_WideWithoutWideSizeIsNoop(t *testing.T) {
	reg := NewRegistry()

	// The rspa profile has no wide size.
	cfg, err := reg.Resolve(Request{
		{Key: "charta.doc", Value: "rspa"},
		{Key: "charta.wide", Value: true},
	})
	require.NoError(t, err)
	assert.Equal(t, [2]float64{400 * 0.5 * pt, 400 * 0.5 / golden * pt}, cfg["figure.figsize"])
}

func TestResolve_Square(t *testing.T) {
	reg := NewRegistry()
	size := [2]float64{3.0, 2.0}

	tests := []struct {
		name  string
		index any
		want  [2]float64
	}{
		{name: "index 0 keeps width", index: 0, want: [2]float64{3.0, 3.0}},
		{name: "index 1 keeps height", index: 1, want: [2]float64{2.0, 2.0}},
		{name: "float index is accepted when integral", index: 1.0, want: [2]float64{2.0, 2.0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := reg.Resolve(Request{
				{Key: "figure.figsize", Value: size},
				{Key: "charta.square", Value: tt.index},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg["figure.figsize"])
		})
	}
}

func TestResolve_SquareInvalidIndex(t *testing.T) {
	reg := NewRegistry()

	for _, bad := range []any{2, -1, 0.5, "left", true} {
		_, err := reg.Resolve(Request{
			{Key: "figure.figsize", Value: [2]float64{3.0, 2.0}},
			{Key: "charta.square", Value: bad},
		})
		var invalid *InvalidSquareIndexError
		require.True(t, errors.As(err, &invalid), "square index %v should fail", bad)
		assert.Equal(t, bad, invalid.Value)
	}
}

func TestResolve_SquareInvalidIndexWithoutSize(t *testing.T) {
	reg := NewRegistry()

	// A bad index is a hard failure even when no size tuple is present.
	_, err := reg.Resolve(Request{{Key: "charta.square", Value: 3}})
	var invalid *InvalidSquareIndexError
	require.True(t, errors.As(err, &invalid))
}

func TestResolve_PreambleConcatenation(t *testing.T) {
	reg := NewRegistry()

	cfg, err := reg.Resolve(Request{
		{Key: "charta.tex.font", Value: "cmbright"},
		{Key: "charta.tex.font", Value: "sansmath"},
		{Key: "charta.tex.preamble", Value: `\usepackage{siunitx}`},
	})
	require.NoError(t, err)

	want := `\usepackage{amsfonts,amssymb,bm,cmbright}` +
		"\\usepackage{lmodern,amsfonts,amssymb,bm}\n\\usepackage[sans]{fammath}\n" +
		`\usepackage{siunitx}`
	assert.Equal(t, want, cfg["text.latex.preamble"])
}

func TestResolve_PreambleOmittedWhenUntouched(t *testing.T) {
	reg := NewRegistry()

	cfg, err := reg.Resolve(Request{{Key: "charta.doc", Value: "standard"}})
	require.NoError(t, err)
	assert.NotContains(t, cfg, "text.latex.preamble")
}

func TestResolve_PreambleMetaOnly(t *testing.T) {
	reg := NewRegistry()

	cfg, err := reg.Resolve(Request{
		{Key: "charta.tex.preamble", Value: `\usepackage{bm}`},
	})
	require.NoError(t, err)
	assert.Equal(t, `\usepackage{bm}`, cfg["text.latex.preamble"])
}

func TestResolve_OrderMatters(t *testing.T) {
	reg := NewRegistry().WithFragments(map[string]Fragment{
		"size.small": {"font.size": 8.0},
		"size.large": {"font.size": 12.0},
	})

	cfg, err := reg.Resolve(Request{
		{Key: "size", Value: "small"},
		{Key: "size", Value: "large"},
	})
	require.NoError(t, err)
	assert.Equal(t, 12.0, cfg["font.size"])

	cfg, err = reg.Resolve(Request{
		{Key: "size", Value: "large"},
		{Key: "size", Value: "small"},
	})
	require.NoError(t, err)
	assert.Equal(t, 8.0, cfg["font.size"])
}
