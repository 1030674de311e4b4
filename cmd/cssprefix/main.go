package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/cssprefix"
	"github.com/npillmayer/cssprefix/config"
	"github.com/npillmayer/cssprefix/cssom"
	"github.com/npillmayer/cssprefix/document"
	"github.com/npillmayer/cssprefix/engine"
	"github.com/npillmayer/schuko/tracing"
)

// tracingKeys are the keys of all packages of this module.
var tracingKeys = []string{
	"cssprefix", "cssprefix.block", "cssprefix.decl", "cssprefix.engine",
	"cssprefix.config", "cssprefix.document", "cssprefix.cssom", "cssprefix.cmd",
}

// Exit codes.
const (
	exitOK       = 0
	exitFindings = 1
	exitError    = 2
)

type options struct {
	config  string
	at      string
	check   bool
	explain bool
	diff    bool
	write   bool
	trace   string
	path    string
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitError
	}
	if err := setTraceLevel(opts.trace); err != nil {
		fmt.Fprintf(stderr, "cssprefix: %v\n", err)
		return exitError
	}
	var src config.Source
	if opts.config != "" {
		if src, err = config.LoadYAML(opts.config); err != nil {
			fmt.Fprintf(stderr, "cssprefix: %v\n", err)
			return exitError
		}
	}
	text, err := os.ReadFile(opts.path)
	if err != nil {
		fmt.Fprintf(stderr, "cssprefix: %v\n", err)
		return exitError
	}
	if opts.check {
		return check(opts.path, text, src, stdout, stderr)
	}
	return prefix(ctx, opts, string(text), src, stdout, stderr)
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("cssprefix", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.config, "config", "", "YAML configuration `file`")
	fs.StringVar(&opts.at, "at", "", "run a single pass with the caret at `line:column` (1-based)")
	fs.BoolVar(&opts.check, "check", false, "report out-of-sync declarations, exit 1 if there are any")
	fs.BoolVar(&opts.explain, "explain", false, "print the plan of a single pass (with -at)")
	fs.BoolVar(&opts.diff, "d", false, "print a line diff instead of the result")
	fs.BoolVar(&opts.write, "w", false, "write the result back to the file")
	fs.StringVar(&opts.trace, "trace", "error", "trace `level`: error, info or debug")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: cssprefix [flags] file\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return opts, errors.New("expected exactly one file")
	}
	opts.path = fs.Arg(0)
	return opts, nil
}

func setTraceLevel(level string) error {
	var l tracing.TraceLevel
	switch strings.ToLower(level) {
	case "error":
		l = tracing.LevelError
	case "info":
		l = tracing.LevelInfo
	case "debug":
		l = tracing.LevelDebug
	default:
		return fmt.Errorf("unknown trace level %q", level)
	}
	for _, key := range tracingKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
	return nil
}

// languageOf derives a language ID from a file name.
func languageOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

func check(path string, text []byte, src config.Source, stdout, stderr io.Writer) int {
	conf := config.Default()
	if src != nil {
		var err error
		if conf, err = config.FromSource(src); err != nil {
			fmt.Fprintf(stderr, "cssprefix: %v\n", err)
			return exitError
		}
	}
	var sheets []*cssom.Stylesheet
	switch languageOf(path) {
	case "html", "htm":
		var err error
		if sheets, err = cssom.ParseHTML(bytes.NewReader(text)); err != nil {
			fmt.Fprintf(stderr, "cssprefix: %s: %v\n", path, err)
			return exitError
		}
	default:
		sheet, err := cssom.Parse(string(text))
		if err != nil {
			fmt.Fprintf(stderr, "cssprefix: %s: %v\n", path, err)
			return exitError
		}
		sheets = append(sheets, sheet)
	}
	n := 0
	for _, sheet := range sheets {
		for _, f := range cssom.Audit(sheet, conf) {
			fmt.Fprintf(stdout, "%s: %s\n", path, f)
			n++
		}
	}
	tracer().Infof("%s: %d findings", path, n)
	if n > 0 {
		return exitFindings
	}
	return exitOK
}

func prefix(ctx context.Context, opts options, text string, src config.Source, stdout, stderr io.Writer) int {
	buf := document.NewBuffer(text, languageOf(opts.path))
	session := cssprefix.NewSession(buf, src)
	x, err := cssprefix.Activate(ctx, session)
	if err != nil {
		fmt.Fprintf(stderr, "cssprefix: %v\n", err)
		return exitError
	}
	defer x.Deactivate()
	if !engine.IsStyleSheet(buf.Document().LanguageID()) {
		fmt.Fprintf(stderr, "cssprefix: %s is neither CSS nor SCSS\n", opts.path)
		return exitError
	}
	if opts.at != "" {
		caret, err := parseCaret(opts.at)
		if err != nil {
			fmt.Fprintf(stderr, "cssprefix: %v\n", err)
			return exitError
		}
		if opts.explain {
			plan, outcome := engine.Compute(buf.Document(), document.Caret(caret), x.Engine().Config().Load())
			fmt.Fprintf(stderr, "%s%s\n", plan.Tree(), outcome)
		}
		buf.SetSelection(document.Caret(caret))
	} else {
		n, err := x.SyncAll()
		if err != nil {
			fmt.Fprintf(stderr, "cssprefix: %v\n", err)
			return exitError
		}
		tracer().Infof("%s: %d passes changed the document", opts.path, n)
	}
	result := buf.Text()
	if opts.diff {
		fmt.Fprintf(stdout, "--- %s\n+++ %s\n", opts.path, opts.path)
		fmt.Fprint(stdout, document.FormatDiff(document.LineDiff(text, result)))
	}
	if opts.write {
		if result == text {
			return exitOK
		}
		if err := writeFile(opts.path, result); err != nil {
			fmt.Fprintf(stderr, "cssprefix: %v\n", err)
			return exitError
		}
		return exitOK
	}
	if !opts.diff {
		fmt.Fprint(stdout, result)
	}
	return exitOK
}

// parseCaret parses a 1-based "line:column" into a position.
func parseCaret(at string) (document.Position, error) {
	var line, col int
	if _, err := fmt.Sscanf(at, "%d:%d", &line, &col); err != nil || line < 1 || col < 1 {
		return document.Position{}, fmt.Errorf("invalid caret %q, expected line:column", at)
	}
	return document.Pos(line-1, col-1), nil
}

func writeFile(path, text string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text), info.Mode().Perm())
}
