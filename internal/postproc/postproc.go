// Package postproc invokes external crop and optimization tools on rendered
// artifact files. A missing tool is a warning, never a failure: rendering
// correctness does not depend on this step.
package postproc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrToolUnavailable marks a post-processing tool that is not installed.
// Callers downgrade it to a notice and continue.
var ErrToolUnavailable = errors.New("postproc: tool not in path")

// Options selects which post-processing steps run on an artifact.
type Options struct {
	Crop     bool
	Optimize bool
}

// Result records the outcome of one tool invocation.
type Result struct {
	Tool string
	Err  error
}

// Unavailable reports whether the tool was skipped because it is missing.
func (r Result) Unavailable() bool {
	return errors.Is(r.Err, ErrToolUnavailable)
}

// toolsFor maps an artifact extension to its crop and optimize invocations.
func toolsFor(ext, path string, opts Options) [][]string {
	var cmds [][]string
	switch ext {
	case ".pdf":
		if opts.Crop {
			cmds = append(cmds, []string{"pdfcrop", "--pdfversion", "none", path, path})
		}
		if opts.Optimize {
			cmds = append(cmds, []string{"pdfsizeopt", "--quiet", "--do-optimize-images=no", path, path})
		}
	case ".png":
		if opts.Crop {
			cmds = append(cmds, []string{"mogrify", "-trim", path})
		}
		if opts.Optimize {
			cmds = append(cmds, []string{"optipng", "-clobber", "-quiet", path})
		}
	}
	return cmds
}

// Process runs the configured tools for path, chosen by file extension.
// Each tool runs independently; one failing or missing does not stop the
// others. A path that does not exist is a no-op.
func Process(ctx context.Context, path string, opts Options) []Result {
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	var results []Result
	for _, argv := range toolsFor(ext, path, opts) {
		results = append(results, Result{Tool: argv[0], Err: run(ctx, argv)})
	}
	return results
}

// run executes one tool with its output suppressed.
func run(ctx context.Context, argv []string) error {
	if _, err := exec.LookPath(argv[0]); err != nil {
		return fmt.Errorf("%w: %s", ErrToolUnavailable, argv[0])
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("postproc: %s: %w", argv[0], err)
	}
	return nil
}
