package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc22/elevation"
	"github.com/katalvlaran/aoc22/puzzle"
)

var (
	errProfileMode = errors.New("aoc22: --profile must be cpu or mem")
	errInputMulti  = errors.New("aoc22: --input needs exactly one day")
)

// newRootCmd builds the command tree around a. A profile started by
// --profile stays open until a.stopProfile, so callers stop it whether or
// not the command failed.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "aoc22",
		Short:         "Solve Advent of Code 2022 days",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.verbose {
				a.log.SetLevel(logrus.DebugLevel)
			}
			if err := checkFormat(a.format); err != nil {
				return err
			}
			switch a.profile {
			case "":
			case "cpu":
				a.profiler = profile.Start(profile.CPUProfile, profile.ProfilePath(a.profileDir), profile.Quiet)
			case "mem":
				a.profiler = profile.Start(profile.MemProfile, profile.ProfilePath(a.profileDir), profile.Quiet)
			default:
				return fmt.Errorf("%w: %q", errProfileMode, a.profile)
			}
			a.log.WithFields(logrus.Fields{
				"command":   cmd.Name(),
				"input_dir": a.inputDir,
				"workers":   a.workers,
			}).Debug("starting")
			return nil
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.inputDir, "input-dir", a.inputDir, "directory holding input<day>.txt files (env "+envInputDir+")")
	f.IntVar(&a.workers, "workers", a.workers, "concurrent searches per solver (env "+envWorkers+")")
	f.IntVar(&a.areaSize, "area-size", a.areaSize, "search area side for day 15")
	f.StringVar(&a.format, "format", a.format, "output format: text, json or yaml")
	f.StringVar(&a.profile, "profile", "", "write a cpu or mem profile")
	f.StringVar(&a.profileDir, "profile-dir", a.profileDir, "directory for --profile output")
	f.BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(newSolveCmd(a), newListCmd(a), newDotCmd(a))

	return root
}

func newSolveCmd(a *app) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "solve [day...]",
		Short: "Solve the given days, or every registered day",
		RunE: func(cmd *cobra.Command, args []string) error {
			days := a.registry.Days()
			if len(args) > 0 {
				days = nil
				for _, arg := range args {
					d, err := strconv.Atoi(arg)
					if err != nil {
						return fmt.Errorf("%w: %q", puzzle.ErrInvalidDay, arg)
					}
					days = append(days, d)
				}
			}
			if input != "" && len(days) != 1 {
				return errInputMulti
			}

			answers := make([]puzzle.Answer, 0, len(days))
			for _, day := range days {
				path := input
				if path == "" {
					path = puzzle.InputPath(a.inputDir, day)
				}
				ans, err := a.solveFile(cmd, day, path)
				if err != nil {
					return err
				}
				answers = append(answers, ans)
			}

			return writeAnswers(cmd.OutOrStdout(), a.format, answers)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "input file, overriding --input-dir")

	return cmd
}

// solveFile runs day's solver on the file at path.
func (a *app) solveFile(cmd *cobra.Command, day int, path string) (puzzle.Answer, error) {
	if _, _, err := a.registry.Lookup(day); err != nil {
		return puzzle.Answer{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return puzzle.Answer{}, err
	}
	defer f.Close()

	return a.registry.Run(cmd.Context(), day, f, a.config())
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, day := range a.registry.Days() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s\n", day, a.registry.Name(day)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newDotCmd(a *app) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Write the day 12 distance map from S as Graphviz DOT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if input == "" {
				input = puzzle.InputPath(a.inputDir, 12)
			}
			f, err := os.Open(input)
			if err != nil {
				return err
			}
			defer f.Close()

			m, err := elevation.Parse(f)
			if err != nil {
				return err
			}
			res, err := m.Distances(m.Start)
			if err != nil {
				return err
			}
			dot, err := m.DOT(res)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), dot)
			return err
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "day 12 input file, overriding --input-dir")

	return cmd
}
