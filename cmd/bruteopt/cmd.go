package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bruteopt/digits"
	"github.com/katalvlaran/bruteopt/enumerate"
	"github.com/katalvlaran/bruteopt/problem"
	"github.com/katalvlaran/bruteopt/report"
	"github.com/katalvlaran/bruteopt/sensitivity"
	"github.com/katalvlaran/bruteopt/space"
)

// app carries the flag values shared by all subcommands.
type app struct {
	out, errOut io.Writer

	file          string
	logLevel      string
	maxCandidates int

	logger zerolog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "bruteopt",
		Short:         "Brute-force integer program solver",
		Long:          `bruteopt enumerates every integer point of a bounded box, keeps the feasible ones and reports the best objective value.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger = setupLogging(a.logLevel, a.errOut)
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVarP(&a.file, "file", "f", "", "YAML problem file (default: built-in product mix)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	root.PersistentFlags().IntVar(&a.maxCandidates, "max-candidates", 0, "Refuse search spaces with more points than this (0: no limit)")

	root.AddCommand(a.solveCmd(), a.verifyCmd(), a.sensitivityCmd(), a.digitsCmd(), a.exportCmd())

	return root
}

// setupLogging returns a console logger on w. Unknown levels fall back to info.
func setupLogging(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().Timestamp().Logger()
	if err != nil {
		logger.Warn().Str("level", level).Msg("unknown log level, using info")
	}

	return logger
}

// load returns the problem from --file, or the canonical instance.
func (a *app) load() (problem.Problem, error) {
	if a.file == "" {
		return problem.ProductMix(), nil
	}
	pb, err := problem.LoadFile(a.file)
	if err != nil {
		return problem.Problem{}, err
	}
	a.logger.Info().Str("file", a.file).Str("problem", pb.Name).Int("dims", pb.Space.Dims()).Msg("problem loaded")

	return pb, nil
}

// solveOptions returns the enumerator options common to every command.
func (a *app) solveOptions(cmd *cobra.Command, extra ...enumerate.Option) []enumerate.Option {
	opts := []enumerate.Option{
		enumerate.WithContext(cmd.Context()),
		enumerate.WithLogger(a.logger),
		enumerate.WithMaxCandidates(a.maxCandidates),
	}

	return append(opts, extra...)
}

// applyRHS overrides right-hand sides by constraint label.
func applyRHS(pb problem.Problem, rhs map[string]int) (problem.Problem, error) {
	for label, v := range rhs {
		next, ok := pb.WithRHS(label, v)
		if !ok {
			return pb, fmt.Errorf("--rhs %s=%d: %w", label, v, sensitivity.ErrUnknownConstraint)
		}
		pb = next
	}

	return pb, nil
}

func (a *app) solveCmd() *cobra.Command {
	var (
		verbose bool
		limit   int
		rhs     map[string]int
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Enumerate the search space and print the optimum",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pb, err := a.load()
			if err != nil {
				return err
			}
			overrides := make(map[string]int, len(rhs)+1)
			for k, v := range rhs {
				overrides[k] = v
			}
			if cmd.Flags().Changed("limit") {
				overrides[problem.Transportation] = limit
			}
			if pb, err = applyRHS(pb, overrides); err != nil {
				return err
			}

			var extra []enumerate.Option
			var table *report.Table
			if verbose {
				if err := report.Header(a.out, pb); err != nil {
					return err
				}
				fmt.Fprintln(a.out)
				table = report.NewTable(a.out, pb.Names())
				extra = append(extra, enumerate.WithOnFeasible(table.Row))
			}

			start := time.Now()
			sol, err := pb.Solve(a.solveOptions(cmd, extra...)...)
			if err != nil {
				return err
			}
			a.logger.Info().Int("visited", sol.Visited()).Dur("elapsed", time.Since(start)).Msg("solve done")

			if table != nil {
				if err := table.Flush(); err != nil {
					return err
				}
				fmt.Fprintln(a.out)
			}
			if err := report.Summary(a.out, pb, sol); err != nil {
				return err
			}
			if verbose && sol.Found() {
				fmt.Fprintln(a.out)
				return report.Verification(a.out, pb.Verify(sol.Best()))
			}

			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "List every feasible point and verify the optimum")
	cmd.Flags().IntVar(&limit, "limit", problem.DefaultTransportLimit, "Transportation capacity (shorthand for --rhs transportation=N)")
	cmd.Flags().StringToIntVar(&rhs, "rhs", map[string]int{}, "Override right-hand sides, e.g. transportation=16")

	return cmd
}

func (a *app) verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify COORD...",
		Short: "Check one point against every constraint",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pb, err := a.load()
			if err != nil {
				return err
			}
			if len(args) != pb.Space.Dims() {
				return fmt.Errorf("got %d coordinates for %d variables: %w",
					len(args), pb.Space.Dims(), space.ErrDimensionMismatch)
			}
			pt := make(space.Point, len(args))
			for i, s := range args {
				if pt[i], err = strconv.Atoi(s); err != nil {
					return fmt.Errorf("coordinate %d: %w", i+1, err)
				}
			}

			rep := pb.Verify(pt)
			if err := report.Verification(a.out, rep); err != nil {
				return err
			}
			if rep.AllSatisfied() {
				fmt.Fprintf(a.out, "Objective: %g\n", pb.Objective.Score(pt))
			}

			return nil
		},
	}
}

func (a *app) sensitivityCmd() *cobra.Command {
	var (
		label string
		rhs   int
	)
	cmd := &cobra.Command{
		Use:   "sensitivity",
		Short: "Slacks, what-if on one right-hand side and the LP bound",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pb, err := a.load()
			if err != nil {
				return err
			}
			an, err := sensitivity.Analyze(pb, label, rhs, a.solveOptions(cmd)...)
			if err != nil {
				return err
			}
			if !an.HasBound {
				a.logger.Debug().Msg("no LP bound for this problem")
			}

			return report.Sensitivity(a.out, an)
		},
	}
	cmd.Flags().StringVar(&label, "constraint", problem.Transportation, "Constraint whose right-hand side changes")
	cmd.Flags().IntVar(&rhs, "rhs", 16, "New right-hand side")

	return cmd
}

func (a *app) digitsCmd() *cobra.Command {
	var from int
	cmd := &cobra.Command{
		Use:   "digits ID",
		Short: "Reverse a student ID and analyse its digits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			rev, err := digits.ReverseID(id)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Reversed: %v\n", rev)
			if cmd.Flags().Changed("from") {
				s, err := digits.ReverseFrom(id, from)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Reversed from index %d: %s\n", from, s)
			}
			an, err := digits.Analyze(id)
			if err != nil {
				return err
			}

			return report.Digits(a.out, an)
		},
	}
	cmd.Flags().IntVar(&from, "from", 0, "Also reverse the suffix starting at this index")

	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the problem as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pb, err := a.load()
			if err != nil {
				return err
			}
			data, err := problem.Marshal(pb)
			if err != nil {
				return err
			}
			_, err = a.out.Write(data)

			return err
		},
	}
}
