// Package main implements the cubewalk CLI: fold a cube net, walk the
// route drawn beneath it and print the password.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/cubefold/fold"
	"github.com/katalvlaran/cubefold/grid"
	"github.com/katalvlaran/cubefold/internal/config"
	"github.com/katalvlaran/cubefold/internal/logging"
	"github.com/katalvlaran/cubefold/route"
	"github.com/katalvlaran/cubefold/walk"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// flags collects the raw flag values; only flags set explicitly override config.
type flags struct {
	configPath string
	logLevel   string
	logFormat  string
	mode       string
	faceSize   int
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:   "cubewalk",
		Short: "Fold a cube net and walk a route across it",
		Long: `cubewalk reads notes made of a map of open ('.') and wall ('#') tiles,
a blank line, and a route such as 10R5L5. It folds the map into a cube,
follows the route and prints the final password.`,
		Version:      version,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&f.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&f.logFormat, "log-format", "", "log format (console, json)")
	root.PersistentFlags().IntVar(&f.faceSize, "face-size", 0, "face side length; 0 derives it from the net")

	root.AddCommand(newSolveCmd(f), newWarpsCmd(f))
	return root
}

func newSolveCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [file|-]",
		Short: "Print the password for the notes",
		Long: `Walk the route over the net and print the password.

Examples:
  # Cube and flat passwords for a file
  cubewalk solve input.txt

  # Cube only, from stdin
  cat input.txt | cubewalk solve --mode cube -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, f, args)
		},
	}
	cmd.Flags().StringVar(&f.mode, "mode", "", "walk mode (cube, flat, both)")
	return cmd
}

func newWarpsCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "warps [file|-]",
		Short: "Print the warp table of a net",
		Long: `Fold the net and print one line per step off its edge:

  row,col Dir -> row,col Dir

The input may be full notes or a bare net.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWarps(cmd, f, args)
		},
	}
}

// settings merges config file, environment and explicitly set flags.
func settings(cmd *cobra.Command, f *flags) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, nil, err
	}
	fs := cmd.Flags()
	if fs.Changed("mode") {
		cfg.Mode = f.mode
	}
	if fs.Changed("face-size") {
		cfg.FaceSize = f.faceSize
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if fs.Changed("log-format") {
		cfg.Log.Format = f.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	log, err := logging.NewWriter(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

// readInput reads the named file, or stdin for "-" or no argument.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(b), nil
}

func runSolve(cmd *cobra.Command, f *flags, args []string) error {
	cfg, log, err := settings(cmd, f)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	notes, err := walk.ParseNotes(text)
	if err != nil {
		return err
	}

	// In both mode a fold error is returned after the flat password.
	out := cmd.OutOrStdout()
	var cubeErr error
	if cfg.Mode == config.ModeCube || cfg.Mode == config.ModeBoth {
		s, err := solveCube(notes, cfg, log)
		if err != nil && cfg.Mode == config.ModeCube {
			return err
		}
		if err != nil {
			cubeErr = err
		} else {
			fmt.Fprintf(out, "cube: %d\n", s.Password())
		}
	}
	if cfg.Mode == config.ModeFlat || cfg.Mode == config.ModeBoth {
		s, err := walk.Run(notes.Grid, notes.Path, walk.Torus{Grid: notes.Grid}, walk.WithLogger(log))
		if err != nil {
			return errors.Join(cubeErr, err)
		}
		fmt.Fprintf(out, "flat: %d\n", s.Password())
	}
	return cubeErr
}

func solveCube(notes *walk.Notes, cfg *config.Config, log *zap.Logger) (walk.State, error) {
	w, err := fold.Build(notes.Grid, fold.WithFaceSize(cfg.FaceSize), fold.WithLogger(log))
	if err != nil {
		return walk.State{}, err
	}
	return walk.Run(notes.Grid, notes.Path, w, walk.WithLogger(log))
}

func runWarps(cmd *cobra.Command, f *flags, args []string) error {
	cfg, log, err := settings(cmd, f)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	var g *grid.Grid
	notes, err := walk.ParseNotes(text)
	switch {
	case err == nil:
		g = notes.Grid
	case errors.Is(err, walk.ErrNoPath), errors.Is(err, route.ErrEmptyPath):
		if g, err = grid.Parse(text); err != nil {
			return err
		}
	default:
		return err
	}

	w, err := fold.Build(g, fold.WithFaceSize(cfg.FaceSize), fold.WithLogger(log))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, e := range w.Entries() {
		fmt.Fprintln(out, e)
	}
	return nil
}
