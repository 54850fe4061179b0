// Command lvopt solves shortest-path, allocation, generic LP and blend
// problems from files and prints the interpreted outcome.
//
// Usage:
//
//	lvopt [-config file] [-v] [-metrics] path  [-directed] -from A -to B graph.csv
//	lvopt [-config file] [-v] [-metrics] alloc [-demand d] [-max m] data.csv
//	lvopt [-config file] [-v] [-metrics] lp    problem.yaml
//	lvopt [-config file] [-v] [-metrics] blend [-quantity q] [problem.yaml]
//
// Exit status is 0 for every solver outcome (including infeasible and
// unbounded), 1 for invalid input or solver errors, 2 for usage errors.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvopt/config"
	"github.com/katalvlaran/lvopt/core"
	"github.com/katalvlaran/lvopt/metrics"
	"github.com/katalvlaran/lvopt/outcome"
	"github.com/katalvlaran/lvopt/session"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lvopt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "config file (default: $LVOPT_CONFIG or ./lvopt.yaml)")
	verbose := fs.Bool("v", false, "debug logging")
	dump := fs.Bool("metrics", false, "print Prometheus metrics after the run")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: lvopt [-config file] [-v] [-metrics] <path|alloc|lp|blend> [flags] file")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		fmt.Fprintln(stderr, "lvopt:", err)
		return exitError
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *dump {
		cfg.Metrics = true
	}
	logger, err := cfg.Logger(stderr)
	if err != nil {
		fmt.Fprintln(stderr, "lvopt:", err)
		return exitError
	}

	problem, err := parseProblem(fs.Arg(0), fs.Args()[1:], stderr)
	switch {
	case errors.Is(err, errUsage):
		return exitUsage
	case err != nil:
		fmt.Fprintln(stderr, "lvopt:", err)
		return exitError
	}

	runner := session.FromConfig(cfg, logger)
	out := runner.Solve(ctx, problem)
	printOutcome(stdout, out)

	if *dump {
		if err := metrics.Dump(stderr, prometheus.DefaultGatherer); err != nil {
			fmt.Fprintln(stderr, "lvopt: metrics:", err)
		}
	}
	if out.Kind == outcome.BuildError || out.Kind == outcome.SolverError {
		return exitError
	}

	return exitOK
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		cfg, _, err := config.LoadFromPath(path)
		return cfg, err
	}
	cfg, _, err := config.Load()

	return cfg, err
}

func printOutcome(w io.Writer, out outcome.Outcome) {
	fmt.Fprintln(w, out.Message())
	fmt.Fprintln(w)
	fmt.Fprintln(w, out.Report())
}

// parseProblem reads the subcommand flags and loads the instance it names.
func parseProblem(cmd string, args []string, stderr io.Writer) (session.Problem, error) {
	fs := flag.NewFlagSet("lvopt "+cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)

	switch cmd {
	case "path":
		directed := fs.Bool("directed", false, "treat edges as directed")
		from := fs.String("from", "", "start node")
		to := fs.String("to", "", "end node")
		file, err := parseArgs(fs, args, true)
		if err != nil {
			return nil, err
		}
		e := session.NewGraphEditor(core.WithDirected(*directed))
		if err := e.Load(file); err != nil {
			return nil, err
		}
		if err := e.SetStart(*from); err != nil {
			return nil, fmt.Errorf("start %q: %w", *from, err)
		}
		if err := e.SetEnd(*to); err != nil {
			return nil, fmt.Errorf("end %q: %w", *to, err)
		}

		return e.Problem(), nil

	case "alloc":
		demand := fs.String("demand", "0", "minimum total of all variables")
		limit := fs.String("max", "", "shared upper bound for every variable")
		file, err := parseArgs(fs, args, true)
		if err != nil {
			return nil, err
		}
		e := session.NewAllocationEditor()
		if err := e.Load(file); err != nil {
			return nil, err
		}
		if err := e.SetDemand(*demand); err != nil {
			return nil, fmt.Errorf("demand: %w", err)
		}
		if err := e.SetMaxValue(*limit); err != nil {
			return nil, fmt.Errorf("max: %w", err)
		}

		return e.Instance(), nil

	case "lp":
		file, err := parseArgs(fs, args, true)
		if err != nil {
			return nil, err
		}
		e := session.NewLPEditor()
		if err := e.Load(file); err != nil {
			return nil, err
		}

		return e.Problem(), nil

	case "blend":
		quantity := fs.String("quantity", "", "batch size (default: from file, or 1)")
		file, err := parseArgs(fs, args, false)
		if err != nil {
			return nil, err
		}
		e := session.NewBlendEditor()
		if file != "" {
			if err := e.Load(file); err != nil {
				return nil, err
			}
		}
		if *quantity != "" {
			if err := e.SetQuantity(*quantity); err != nil {
				return nil, fmt.Errorf("quantity: %w", err)
			}
		}

		return e.Problem(), nil
	}

	fmt.Fprintf(stderr, "lvopt: unknown problem %q (want path, alloc, lp or blend)\n", cmd)

	return nil, errUsage
}

// parseArgs parses subcommand flags and returns the single file argument.
func parseArgs(fs *flag.FlagSet, args []string, required bool) (string, error) {
	if err := fs.Parse(args); err != nil {
		return "", errUsage
	}
	switch {
	case fs.NArg() == 1:
		return fs.Arg(0), nil
	case fs.NArg() == 0 && !required:
		return "", nil
	}
	fmt.Fprintf(fs.Output(), "%s: expected %s file argument, got %d\n", fs.Name(), want(required), fs.NArg())

	return "", errUsage
}

func want(required bool) string {
	if required {
		return "one"
	}

	return "at most one"
}
