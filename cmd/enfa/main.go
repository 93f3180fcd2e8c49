package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"thompson/internal/casefile"
	"thompson/internal/gogen"
	"thompson/internal/nfa"
	"thompson/internal/parser"
	"thompson/internal/search"
)

// arrayFlags collects a repeatable string flag.
type arrayFlags []string

func (a *arrayFlags) String() string { return strings.Join(*a, ", ") }

func (a *arrayFlags) Set(v string) error {
	*a = append(*a, v)
	return nil
}

type config struct {
	out      string
	goOut    string
	goPkg    string
	goName   string
	matches  arrayFlags
	contains bool
	png      bool
	check    bool
	verbose  bool
}

// dotCommand renders -png output.
var dotCommand = "dot"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("enfa", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var cfg config
	fs.StringVar(&cfg.out, "o", nfa.DefaultDOTFile, "output DOT file (- for stdout)")
	fs.StringVar(&cfg.goOut, "go", "", "also write the automaton as a Go table to this file")
	fs.StringVar(&cfg.goPkg, "pkg", "fsm", "package name for -go")
	fs.StringVar(&cfg.goName, "name", "nfa", "identifier prefix for -go")
	fs.Var(&cfg.matches, "match", "string to match against the pattern (repeatable)")
	fs.BoolVar(&cfg.contains, "contains", false, "with -match, test for a matching substring instead of a whole-string match")
	fs.BoolVar(&cfg.png, "png", false, "render the graph as PNG via dot -Tpng (default file ε-nfa.png)")
	fs.BoolVar(&cfg.check, "check", false, "treat the argument as a case file and check it")
	fs.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage : enfa [flags] 'regexp'\n        enfa -check <case file>\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	if cfg.png && cfg.out == nfa.DefaultDOTFile {
		cfg.out = strings.TrimSuffix(cfg.out, ".dot") + ".png"
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var err error
	if cfg.check {
		err = checkCases(fs.Arg(0), stdout, logger)
	} else {
		err = compile(fs.Arg(0), &cfg, stdout, logger)
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func compile(pattern string, cfg *config, stdout io.Writer, logger *slog.Logger) error {
	fmt.Fprintf(stdout, "Regular Expression : '%s'\n", pattern)

	n, err := parser.Compile(pattern)
	if err != nil {
		return err
	}
	logger.Debug("compiled", "pattern", pattern, "states", n.Len(), "start", n.Start(), "terminate", n.Terminate())

	var buf bytes.Buffer
	if err := nfa.WriteDOT(&buf, n); err != nil {
		return err
	}
	size := buf.Len()
	if cfg.png {
		if err := renderPNG(cfg.out, &buf, stdout); err != nil {
			return err
		}
		logger.Debug("png written", "file", cfg.out, "dot_bytes", size)
	} else {
		if err := writeOutput(cfg.out, &buf, stdout); err != nil {
			return err
		}
		logger.Debug("dot written", "file", cfg.out, "bytes", size)
	}

	if cfg.goOut != "" {
		buf.Reset()
		if err := gogen.Generate(&buf, gogen.Options{Package: cfg.goPkg, Name: cfg.goName}, n); err != nil {
			return err
		}
		if err := writeOutput(cfg.goOut, &buf, stdout); err != nil {
			return err
		}
		logger.Debug("go table written", "file", cfg.goOut)
	}

	if len(cfg.matches) > 0 {
		matchStrings(n, cfg, stdout, logger)
	}

	released, err := n.Dispose()
	if err != nil {
		return err
	}
	logger.Debug("disposed", "states", released)
	return nil
}

func matchStrings(n *nfa.NFA, cfg *config, stdout io.Writer, logger *slog.Logger) {
	accepts := n.Match
	if cfg.contains {
		s := search.New(n)
		logger.Debug("searcher ready", "literals", s.Literals(), "aho_corasick", s.UsesLiterals())
		accepts = s.Contains
	}
	for _, m := range cfg.matches {
		if accepts(m) {
			fmt.Fprintf(stdout, "%q : String accepted by ε-NFA\n", m)
		} else {
			fmt.Fprintf(stdout, "%q : String not accepted by ε-NFA\n", m)
		}
	}
}

func writeOutput(path string, buf *bytes.Buffer, stdout io.Writer) error {
	if path == "-" {
		_, err := io.Copy(stdout, buf)
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// renderPNG pipes the DOT source through Graphviz. A path of "-" sends the
// image to stdout.
func renderPNG(path string, dot *bytes.Buffer, stdout io.Writer) error {
	var stderr bytes.Buffer
	args := []string{"-Tpng"}
	if path != "-" {
		args = append(args, "-o", path)
	}
	cmd := exec.Command(dotCommand, args...)
	if path == "-" {
		cmd.Stdout = stdout
	}
	cmd.Stdin = dot
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("dot failed: %w: %s", err, msg)
		}
		return fmt.Errorf("dot failed: %w", err)
	}
	return nil
}

func checkCases(path string, stdout io.Writer, logger *slog.Logger) error {
	file, err := casefile.ParseFile(path)
	if err != nil {
		return err
	}
	r, err := file.Check()
	if err != nil {
		return err
	}
	for _, f := range r.Failures {
		fmt.Fprintln(stdout, "FAIL", f)
	}
	logger.Info("cases checked", "file", path, "patterns", r.Patterns, "inputs", r.Inputs, "failures", len(r.Failures))
	if !r.OK() {
		return fmt.Errorf("%s: %d of %d inputs failed", path, len(r.Failures), r.Inputs)
	}
	return nil
}
