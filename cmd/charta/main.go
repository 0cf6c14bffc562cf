// charta resolves high-level figure-styling intents into low-level rendering
// options, and generates exact fractional tick labels for typeset axes.
//
// Usage:
//
//	charta resolve -f request.yaml
//	echo 'charta.doc: aps' | charta resolve
//	charta ticks -start 0 -stop 1 -count 5
//	charta ticks -start -3.14159 -stop 3.14159 -div 3.14159 -symbol '\pi' -count 3
//	charta post -crop -optimize figure.pdf
//
// Output modes for resolve (auto-detected):
//
//	table — styled key/value table (default when TTY)
//	rc    — matplotlibrc-style "key: value" lines (default when piped)
//	json  — structured JSON for automation
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/dkoosis/charta/internal/config"
	"github.com/dkoosis/charta/internal/postproc"
	"github.com/dkoosis/charta/internal/tickview"
	"github.com/dkoosis/charta/pkg/render"
	"github.com/dkoosis/charta/pkg/style"
	"github.com/dkoosis/charta/pkg/ticks"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	switch args[0] {
	case "resolve":
		return runResolve(args[1:], stdin, stdout, stderr)
	case "ticks":
		return runTicks(args[1:], stdout, stderr)
	case "post":
		return runPost(args[1:], stdout, stderr)
	case "-h", "-help", "--help", "help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "charta: unknown command %q\n", args[0])
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprint(w, `usage:
  charta resolve [-f request.yaml] [-format auto|rc|json|table] [-theme name]
  charta ticks -start N -stop N [-count N] [-div N] [-symbol S] [-digits N] [-i]
  charta post [-crop] [-optimize] <artifact>
`)
}

// cliFlags builds config.CliFlags from a parsed flag set, tracking which
// flags the user set explicitly.
func cliFlags(fs *flag.FlagSet, format, theme *string, noColor, ci, debug *bool) config.CliFlags {
	flags := config.CliFlags{
		Format:    *format,
		ThemeName: *theme,
		NoColor:   *noColor,
		CI:        *ci,
		Debug:     *debug,
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			flags.FormatSet = true
		case "no-color":
			flags.NoColorSet = true
		case "ci":
			flags.CISet = true
		case "debug":
			flags.DebugSet = true
		}
	})
	return flags
}

func runResolve(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("charta resolve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fileFlag := fs.String("f", "-", "Request file (YAML mapping), - for stdin")
	formatFlag := fs.String("format", "auto", "Output format: auto, rc, json, table")
	themeFlag := fs.String("theme", "", "Theme: default, mono")
	noColorFlag := fs.Bool("no-color", false, "Disable color output")
	ciFlag := fs.Bool("ci", false, "CI mode (implies -no-color)")
	debugFlag := fs.Bool("debug", false, "Print resolution debug info")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	resolved, err := config.ResolveConfig(cliFlags(fs, formatFlag, themeFlag, noColorFlag, ciFlag, debugFlag))
	if err != nil {
		fmt.Fprintf(stderr, "charta: %v\n", err)
		return 2
	}
	if resolved.Debug {
		fmt.Fprintf(stderr, "[DEBUG resolve] format=%s (%s) theme=%s (%s)\n",
			resolved.Format, resolved.FormatSource, resolved.Theme.Name, resolved.ThemeSource)
	}

	request, err := readRequest(*fileFlag, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "charta: %v\n", err)
		return 2
	}

	cfg, err := resolved.Registry.Resolve(request)
	if err != nil {
		fmt.Fprintf(stderr, "charta: %v\n", err)
		return 1
	}

	switch resolveFormat(resolved.Format, stdout) {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			fmt.Fprintf(stderr, "charta: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, string(data))
	case "table":
		fmt.Fprint(stdout, render.Table(resolved.Theme, "resolved options", render.ConfigRows(cfg)))
	default: // rc
		for _, line := range render.ConfigLines(cfg) {
			fmt.Fprintln(stdout, line)
		}
	}
	return 0
}

// readRequest parses a YAML mapping into an ordered style request. Decoding
// through yaml.Node keeps the document's key order, which the resolver's
// precedence rules depend on.
func readRequest(path string, stdin io.Reader) (style.Request, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading request: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing request: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, errors.New("empty request")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.New("request must be a YAML mapping")
	}

	req := make(style.Request, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		var value any
		if err := root.Content[i+1].Decode(&value); err != nil {
			return nil, fmt.Errorf("parsing request value for %q: %w", root.Content[i].Value, err)
		}
		req = append(req, style.Entry{Key: root.Content[i].Value, Value: value})
	}
	return req, nil
}

// resolveFormat maps "auto" to table on a TTY and rc otherwise.
func resolveFormat(format string, stdout io.Writer) string {
	if format != "auto" {
		return format
	}
	if isTTYWriter(stdout) {
		return "table"
	}
	return "rc"
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func runTicks(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("charta ticks", flag.ContinueOnError)
	fs.SetOutput(stderr)
	startFlag := fs.Float64("start", 0, "Interval start")
	stopFlag := fs.Float64("stop", 1, "Interval stop")
	countFlag := fs.Int("count", 10, "Number of ticks, endpoints included")
	divFlag := fs.Float64("div", 1, "Divisor: labels read in units of this value")
	symbolFlag := fs.String("symbol", "", "Typeset symbol for the divisor unit")
	digitsFlag := fs.Int("digits", 5, "Decimal digits the bounds are rounded to")
	interactiveFlag := fs.Bool("i", false, "Interactive explorer")
	themeFlag := fs.String("theme", "", "Theme: default, mono")
	noColorFlag := fs.Bool("no-color", false, "Disable color output")
	ciFlag := fs.Bool("ci", false, "CI mode (implies -no-color)")
	debugFlag := fs.Bool("debug", false, "Print resolution debug info")
	formatFlag := fs.String("format", "auto", "Output format: auto, rc, json, table")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	resolved, err := config.ResolveConfig(cliFlags(fs, formatFlag, themeFlag, noColorFlag, ciFlag, debugFlag))
	if err != nil {
		fmt.Fprintf(stderr, "charta: %v\n", err)
		return 2
	}

	if *interactiveFlag {
		if err := tickview.Explore(*startFlag, *stopFlag, *countFlag, resolved.Theme); err != nil {
			fmt.Fprintf(stderr, "charta: %v\n", err)
			return 1
		}
		return 0
	}

	opts := []ticks.Option{
		ticks.WithCount(*countFlag),
		ticks.WithDivisor(*divFlag),
		ticks.WithDigits(*digitsFlag),
	}
	if *symbolFlag != "" {
		opts = append(opts, ticks.WithSymbol(*symbolFlag))
	}

	positions, labels, err := ticks.Labels(*startFlag, *stopFlag, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "charta: %v\n", err)
		return 1
	}

	rows := make([]render.Row, len(positions))
	for i := range positions {
		rows[i] = render.Row{Key: fmt.Sprintf("%.6g", positions[i]), Value: labels[i]}
	}
	fmt.Fprint(stdout, render.Table(resolved.Theme, "", rows))
	return 0
}

func runPost(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("charta post", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cropFlag := fs.Bool("crop", false, "Crop the artifact margins")
	optimizeFlag := fs.Bool("optimize", false, "Optimize the artifact size")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "charta post: exactly one artifact path required")
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	code := 0
	for _, res := range postproc.Process(ctx, fs.Arg(0), postproc.Options{Crop: *cropFlag, Optimize: *optimizeFlag}) {
		switch {
		case res.Unavailable():
			fmt.Fprintf(stderr, "charta: warning: %s not in path, skipping\n", res.Tool)
		case res.Err != nil:
			fmt.Fprintf(stderr, "charta: %v\n", res.Err)
			code = 1
		default:
			fmt.Fprintf(stdout, "%s: ok\n", res.Tool)
		}
	}
	return code
}
