package postproc

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("artifact"), 0o644))
	return path
}

func TestProcess_MissingArtifactIsNoop(t *testing.T) {
	results := Process(context.Background(), "does/not/exist.pdf", Options{Crop: true, Optimize: true})
	assert.Nil(t, results)
}

func TestProcess_UnknownExtensionIsNoop(t *testing.T) {
	path := writeArtifact(t, "figure.svg")
	results := Process(context.Background(), path, Options{Crop: true, Optimize: true})
	assert.Nil(t, results)
}

func TestProcess_NoStepsSelected(t *testing.T) {
	path := writeArtifact(t, "figure.pdf")
	results := Process(context.Background(), path, Options{})
	assert.Nil(t, results)
}

func TestProcess_MissingToolIsWarning(t *testing.T) {
	// With an empty PATH every tool lookup fails; the failures must come
	// back as non-fatal unavailable results, one per selected step.
	t.Setenv("PATH", "")

	path := writeArtifact(t, "figure.pdf")
	results := Process(context.Background(), path, Options{Crop: true, Optimize: true})
	require.Len(t, results, 2)

	assert.Equal(t, "pdfcrop", results[0].Tool)
	assert.Equal(t, "pdfsizeopt", results[1].Tool)
	for _, res := range results {
		assert.True(t, res.Unavailable(), "%s should be reported unavailable", res.Tool)
	}
}

func TestProcess_PNGToolSelection(t *testing.T) {
	t.Setenv("PATH", "")

	path := writeArtifact(t, "figure.PNG")
	results := Process(context.Background(), path, Options{Crop: true})
	require.Len(t, results, 1)
	assert.Equal(t, "mogrify", results[0].Tool)
}

func TestToolsFor(t *testing.T) {
	cmds := toolsFor(".pdf", "fig.pdf", Options{Optimize: true})
	require.Len(t, cmds, 1)
	assert.Equal(t, "pdfsizeopt", cmds[0][0])

	cmds = toolsFor(".png", "fig.png", Options{Crop: true, Optimize: true})
	require.Len(t, cmds, 2)
	assert.Equal(t, "mogrify", cmds[0][0])
	assert.Equal(t, "optipng", cmds[1][0])
}
