package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kuandriy/symptom-gate/internal/config"
	"github.com/kuandriy/symptom-gate/internal/dataset"
	"github.com/kuandriy/symptom-gate/internal/engine"
)

const usage = `usage: symptoms <command> [arguments] [flags]

commands:
  analyze <text...>        extract symptoms from text and rank diseases
  related <symptom...>     symptoms that co-occur with the given ones
  similar <symptom...>     symptoms whose names read like the given ones
  diagnose <symptom...>    rank diseases for a symptom set
  list [prefix]            list known symptoms
  inspect                  show configuration and model statistics

flags:
  --config FILE            YAML or JSON configuration file
  --json                   print JSON instead of text
  --out FILE               also write the JSON result to FILE
  --verbose                log engine progress to stderr
`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "symptom-gate: %v\n", err)
		if errors.Is(err, dataset.ErrNotFound) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// options holds the flags common to every command.
type options struct {
	configFile string
	asJSON     bool
	outFile    string
	verbose    bool
}

func run(args []string, w io.Writer) error {
	if len(args) == 0 || hasFlag(args, "-h") || hasFlag(args, "--help") {
		fmt.Fprint(w, usage)
		return nil
	}
	cmd := args[0]
	rest, opts, err := parseFlags(args[1:])
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(opts.configFile)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if !opts.verbose {
		cfg.Log.Level = "warn"
	}

	e, err := engine.Load(cfg, cfg.NewLogger(os.Stderr))
	if err != nil {
		return err
	}

	switch cmd {
	case "analyze":
		return handleAnalyze(w, e, strings.Join(rest, " "), opts)
	case "related":
		return handleRelated(w, e, rest, opts)
	case "similar":
		return handleSimilar(w, e, rest, opts)
	case "diagnose":
		return handleDiagnose(w, e, rest, opts)
	case "list":
		return handleList(w, e, rest, opts)
	case "inspect":
		return handleInspect(w, e, opts)
	}
	return fmt.Errorf("unknown command %q\n\n%s", cmd, usage)
}

// ---------------------------------------------------------------------------
// CLI flag helpers
// ---------------------------------------------------------------------------

// hasFlag returns true if the given flag appears anywhere in args.
func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

// parseFlags separates positional arguments from flags. Flags may appear
// anywhere after the command.
func parseFlags(args []string) ([]string, options, error) {
	var (
		rest []string
		opts options
	)
	for i := 0; i < len(args); i++ {
		switch a := args[i]; a {
		case "--json":
			opts.asJSON = true
		case "--verbose":
			opts.verbose = true
		case "--config", "--out":
			if i+1 >= len(args) {
				return nil, opts, fmt.Errorf("%s requires a value", a)
			}
			i++
			if a == "--config" {
				opts.configFile = args[i]
			} else {
				opts.outFile = args[i]
			}
		default:
			if strings.HasPrefix(a, "--") {
				return nil, opts, fmt.Errorf("unknown flag %s", a)
			}
			rest = append(rest, a)
		}
	}
	return rest, opts, nil
}
