package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goforj/godump"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"jbasic/builtins"
	"jbasic/config"
	"jbasic/eval"
	"jbasic/format"
	"jbasic/parser"
	"jbasic/state"
	"jbasic/trace"
	"jbasic/types"
)

// Exit codes
const (
	exitOK      = 0
	exitRuntime = 1
	exitSetup   = 2
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
	With().Timestamp().Logger()

// options is the resolved run configuration: the config file with flags applied
type options struct {
	cfg     *config.Config
	dumpAST bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("jbasic", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config file")

	// Trace flags
	traceEnabled := fs.Bool("trace", false, "Enable execution tracing")
	traceFilter := fs.String("trace-filter", "", "Trace filter patterns (comma separated globs, e.g. 'PRINT,SUB *')")

	seed := fs.Int64("seed", 0, "Seed for RND (default: time based)")
	locale := fs.String("locale", "", "Format numbers for a language tag (e.g. en, de)")
	maxSteps := fs.Int64("max-steps", -1, "Stop after this many statements (0 for no limit)")
	dumpAST := fs.Bool("dump-ast", false, "Dump the parsed program instead of running it")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: jbasic [flags] [file.bas]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitSetup
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Error().Err(err).Msg("Failed to load config")
			return exitSetup
		}
		cfg = loaded
	}

	// Flags override the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "trace":
			cfg.Trace.Enabled = *traceEnabled
		case "trace-filter":
			cfg.Trace.Filters = splitFilters(*traceFilter)
		case "seed":
			cfg.Seed = seed
		case "locale":
			cfg.Locale = *locale
		case "max-steps":
			cfg.MaxSteps = *maxSteps
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("Invalid configuration")
		return exitSetup
	}

	opts := options{cfg: cfg, dumpAST: *dumpAST}
	if cfg.Trace.Enabled {
		trace.Init(true, cfg.Trace.Filters, os.Stderr)
		log.Debug().Strs("filters", cfg.Trace.Filters).Msg("Tracing enabled")
	} else {
		trace.Init(false, nil, nil)
	}

	switch fs.NArg() {
	case 0:
		return repl(opts)
	case 1:
		return runFile(fs.Arg(0), opts)
	default:
		fs.Usage()
		return exitSetup
	}
}

func splitFilters(s string) []string {
	if s == "" {
		return nil
	}
	filters := strings.Split(s, ",")
	for i := range filters {
		filters[i] = strings.TrimSpace(filters[i])
	}
	return filters
}

func runFile(path string, opts options) int {
	src, err := os.ReadFile(path)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("Failed to read program")
		return exitSetup
	}

	prog, err := parser.Parse(string(src))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitSetup
	}
	if opts.dumpAST {
		godump.Dump(prog)
		return exitOK
	}

	evalOpts, err := evalOptions(opts.cfg, os.Stdout, os.Stdin)
	if err != nil {
		log.Error().Err(err).Msg("Invalid configuration")
		return exitSetup
	}
	e := eval.New(prog, evalOpts...)
	if err := e.Run(); err != nil {
		reportRuntime(os.Stderr, err)
		return exitRuntime
	}
	return exitOK
}

// evalOptions translates the configuration into evaluator options
func evalOptions(cfg *config.Config, out io.Writer, in io.Reader) ([]eval.Option, error) {
	opts := []eval.Option{
		eval.WithOutput(out),
		eval.WithInput(in),
		eval.WithTracer(trace.Default()),
		eval.WithLimits(cfg.MaxCallDepth, cfg.MaxSteps),
	}
	if cfg.Seed != nil {
		opts = append(opts, eval.WithRandom(builtins.NewRandomSource(*cfg.Seed)))
	}
	if cfg.Locale != "" {
		f, err := format.NewLocale(cfg.Locale)
		if err != nil {
			return nil, err
		}
		opts = append(opts, eval.WithFormatter(f))
	}
	// CLS only clears a real terminal
	if f, ok := out.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		opts = append(opts, eval.WithClearSequence(""))
	}
	return opts, nil
}

// reportRuntime prints a runtime error with its traceback
func reportRuntime(w io.Writer, err error) {
	var rerr *types.Error
	if errors.As(err, &rerr) {
		fmt.Fprintln(w, state.FormatTracebackString(rerr))
		return
	}
	fmt.Fprintln(w, err)
}
