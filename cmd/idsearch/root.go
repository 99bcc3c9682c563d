package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/idsearch/config"
	"github.com/katalvlaran/idsearch/ids"
	"github.com/katalvlaran/idsearch/input"
	"github.com/katalvlaran/idsearch/render"
)

var errMissingStates = errors.New("initial and goal states are required when stdin is not a terminal")

// app carries the collaborators the command needs from its environment.
type app struct {
	prompter    input.Prompter
	interactive func() bool
}

func defaultApp() *app {
	return &app{
		prompter: input.FormPrompter{},
		interactive: func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}
}

// flags mirrors the command-line flags; they override the config file.
type flags struct {
	configPath string
	maxLimit   int
	plain      bool
	noTree     bool
	noPaths    bool
	prune      bool
	metrics    bool
	trace      bool
	logLevel   string
	accessible bool
}

func newRootCmd(a *app) *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "idsearch [initial goal]",
		Short: "Find the cheapest +1 / *2 action sequence between two integers",
		Long: `idsearch runs iterative-deepening search from an initial state to a goal
state using two actions, "+1" and "*2". Every depth bound is searched on a
fresh tree; the first bound that reaches the goal yields the minimum-cost
solutions, which are printed together with the explored tree.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("expected 0 or 2 arguments, got %d", len(args))
			}
			return nil
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, f, args)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "path to a YAML configuration file")
	fl.IntVar(&f.maxLimit, "max-limit", ids.DefaultMaxLimit, "number of depth bounds to try")
	fl.BoolVar(&f.plain, "plain", false, "disable colors")
	fl.BoolVar(&f.noTree, "no-tree", false, "do not print the search tree")
	fl.BoolVar(&f.noPaths, "no-paths", false, "do not print every solution path")
	fl.BoolVar(&f.prune, "prune", false, "do not expand states already above the goal")
	fl.BoolVar(&f.metrics, "metrics", false, "print Prometheus metrics after the run")
	fl.BoolVar(&f.trace, "trace", false, "export OpenTelemetry spans to stderr")
	fl.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	fl.BoolVar(&f.accessible, "accessible", false, "use the line-based prompt")

	return cmd
}

// loadConfig reads the config file and applies the flags that were set.
func loadConfig(cmd *cobra.Command, f *flags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}
	changed := cmd.Flags().Changed
	if changed("max-limit") {
		cfg.MaxLimit = f.maxLimit
	}
	if changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	cfg.Output.Plain = cfg.Output.Plain || f.plain
	cfg.Output.ShowTree = cfg.Output.ShowTree && !f.noTree
	cfg.Output.ShowPaths = cfg.Output.ShowPaths && !f.noPaths
	cfg.PruneOvershoot = cfg.PruneOvershoot || f.prune
	cfg.Telemetry.Metrics = cfg.Telemetry.Metrics || f.metrics
	cfg.Telemetry.Trace = cfg.Telemetry.Trace || f.trace

	return cfg, cfg.Validate()
}

func (a *app) collect(f *flags, args []string) (input.Request, error) {
	if len(args) == 2 {
		return input.Parse(args[0], args[1])
	}
	if !a.interactive() {
		return input.Request{}, errMissingStates
	}
	p := a.prompter
	if fp, ok := p.(input.FormPrompter); ok && f.accessible {
		fp.Accessible = true
		p = fp
	}

	return input.Collect(p)
}

func (a *app) run(cmd *cobra.Command, f *flags, args []string) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	runID := uuid.NewString()
	logger := cfg.NewLogger(errOut).With("run_id", runID)

	if cfg.Telemetry.Trace {
		shutdown, err := setupTracing(errOut)
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdown(cmd.Context()); err != nil {
				logger.Warn("trace exporter shutdown failed", "error", err)
			}
		}()
	}
	ctx, span := otel.Tracer("idsearch/cmd").Start(cmd.Context(), "idsearch.run",
		trace.WithAttributes(attribute.String("run_id", runID)))
	defer span.End()

	req, err := a.collect(f, args)
	if errors.Is(err, input.ErrAborted) {
		fmt.Fprintln(errOut, "\nInterrupted by user.")
		return nil
	}
	if err != nil {
		return err
	}
	logger.Info("request accepted", "initial", req.Initial, "goal", req.Goal, "max_limit", cfg.MaxLimit)

	styles := render.DefaultStyles()
	if cfg.Output.Plain {
		styles = render.PlainStyles()
	}
	rep := render.NewReporter(out, styles, cfg.ReportOptions())

	if req.Trivial() {
		rep.Trivial(req.Initial)
		return rep.Err()
	}

	rep.Banner(req.Initial, req.Goal)
	opts := []ids.Option{
		ids.WithContext(ctx),
		ids.WithLogger(logger),
		ids.WithOnBound(rep.Bound),
	}
	if cfg.PruneOvershoot {
		opts = append(opts, ids.WithPruneOvershoot())
	}
	res, err := ids.Solve(req.Initial, req.Goal, cfg.MaxLimit, opts...)
	switch {
	case errors.Is(err, ids.ErrUnsolved):
		logger.Info("no solution", "max_limit", cfg.MaxLimit, "visited", res.TotalVisited)
	case err != nil:
		return err
	default:
		logger.Info("solution found", "cost", res.Best.Cost(), "visited", res.TotalVisited)
	}
	rep.Result(res, req.Goal)

	if cfg.Telemetry.Metrics {
		if err = writeMetrics(out); err != nil {
			return err
		}
	}

	return rep.Err()
}
