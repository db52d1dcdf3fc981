package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/cubespin/internal/automation"
	"github.com/san-kum/cubespin/internal/config"
	"github.com/san-kum/cubespin/internal/engine"
	"github.com/san-kum/cubespin/internal/export"
	"github.com/san-kum/cubespin/internal/scene"
	"github.com/san-kum/cubespin/internal/trace"
	"github.com/san-kum/cubespin/internal/tui"
	"github.com/san-kum/cubespin/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	replicas   int
	theme      string
	debugLog   string

	ticks    int
	commands string
	svgOut   string
	traceOut string
	stride   int
	format   string
	plot     bool
	outDir   string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers every command and resets the flag variables to their
// defaults.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cubespin",
		Short: "rotating wireframe cube",
		RunE:  runInteractive,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().IntVar(&replicas, "replicas", 0, "extra cube views")
	rootCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	rootCmd.Flags().StringVar(&debugLog, "debug", "", "write a debug log to this file")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "run headless and write the final frame as svg",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().IntVar(&ticks, "ticks", 200, "frames to advance")
	snapshotCmd.Flags().StringVar(&commands, "commands", "", "comma separated commands applied before ticking")
	snapshotCmd.Flags().StringVarP(&svgOut, "out", "o", "cube.svg", "output file")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "run headless and record vertices and velocity",
		RunE:  runTrace,
	}
	traceCmd.Flags().IntVar(&ticks, "ticks", 200, "frames to advance")
	traceCmd.Flags().StringVar(&commands, "commands", "", "comma separated commands applied before ticking")
	traceCmd.Flags().IntVar(&stride, "stride", 1, "record every n-th frame")
	traceCmd.Flags().StringVar(&format, "format", "csv", "output format (csv|json)")
	traceCmd.Flags().StringVarP(&traceOut, "out", "o", "", "output file (default stdout)")
	traceCmd.Flags().BoolVar(&plot, "plot", false, "plot angular speed instead of writing samples")

	runCmd := &cobra.Command{
		Use:   "run [scenario.yaml]",
		Short: "run a scripted scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().StringVar(&outDir, "out-dir", ".", "directory for save_as snapshots")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDEGREES/S\tMULTIPLIER\tREPLICAS")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				d := p.Velocity.InitialDegrees
				fmt.Fprintf(w, "%s\t%g,%g,%g\t%g\t%d\n", name, d[0], d[1], d[2], p.Velocity.Multiplier, p.Replicas)
			}
			w.Flush()
		},
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color themes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range viz.ThemeNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write a config file with the current settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(snapshotCmd, traceCmd, runCmd, presetsCmd, themesCmd, initCmd)
	return rootCmd
}

// loadConfig layers preset, then config file, then explicit flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p, err := config.LoadPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}
	if configFile != "" {
		c, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, err
		}
		cfg = c
	}
	if cmd.Flags().Changed("replicas") {
		cfg.Replicas = replicas
	}
	if f := cmd.Flags().Lookup("theme"); f != nil && f.Changed {
		cfg.Theme = theme
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if debugLog != "" {
		f, err := tea.LogToFile(debugLog, "cubespin")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	log.Printf("starting: theme=%s replicas=%d velocity=%v", cfg.Theme, cfg.Replicas, cfg.Velocity.InitialDegrees)

	return tui.Run(cfg)
}

// headlessEngine builds an engine from flags and applies --commands.
func headlessEngine(cmd *cobra.Command) (*engine.Engine, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	if ticks < 0 {
		return nil, nil, fmt.Errorf("ticks must be non-negative, got %d", ticks)
	}
	eng := cfg.NewEngine()
	if commands != "" {
		cmds, err := engine.ParseCommands(commands)
		if err != nil {
			return nil, nil, err
		}
		eng.ApplyAll(cmds)
	}
	return eng, cfg, nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	eng, cfg, err := headlessEngine(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := eng.Run(ctx, ticks); err != nil {
		return err
	}

	if err := writeSVG(svgOut, eng.Snapshot(), cfg.ViewportSize()); err != nil {
		return err
	}
	snap := eng.Snapshot()
	fmt.Fprintf(cmd.OutOrStdout(), "frame %d, |ω| %.6f rad/s, %d cube(s) -> %s\n",
		snap.Frame, snap.Velocity.Norm(), snap.Replicas+1, svgOut)
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	eng, _, err := headlessEngine(cmd)
	if err != nil {
		return err
	}
	if format != "csv" && format != "json" {
		return fmt.Errorf("unknown format %q (csv|json)", format)
	}

	rec := trace.NewRecorder(stride)
	eng.AddObserver(rec)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := eng.Run(ctx, ticks); err != nil {
		return err
	}

	if plot {
		speeds := rec.Speeds()
		if len(speeds) < 2 {
			return fmt.Errorf("need at least 2 samples to plot, got %d", len(speeds))
		}
		graph := asciigraph.Plot(speeds,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("angular speed |ω| (rad/s)"),
		)
		fmt.Fprintln(cmd.OutOrStdout(), graph)
		return nil
	}

	out := cmd.OutOrStdout()
	if traceOut != "" {
		f, err := os.Create(traceOut)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if format == "json" {
		return rec.WriteJSON(out)
	}
	return rec.WriteCSV(out)
}

func runScenario(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	if scenario.Preset != "" && preset == "" {
		preset = scenario.Preset
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	eng := cfg.NewEngine()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "scenario: %s\n", scenario.Name)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	results, err := automation.RunScenario(ctx, scenario, eng, out)
	if err != nil {
		return err
	}

	for _, r := range results {
		if r.SaveAs == "" {
			continue
		}
		path := filepath.Join(outDir, r.SaveAs)
		if err := writeSVG(path, r.Snapshot, cfg.ViewportSize()); err != nil {
			return err
		}
		fmt.Fprintf(out, "step %d saved to %s\n", r.Step, path)
	}

	snap := eng.Snapshot()
	fmt.Fprintf(out, "done: frame %d, velocity (%.6f, %.6f, %.6f), multiplier %g, cubes %d\n",
		snap.Frame, snap.Velocity.XA, snap.Velocity.YA, snap.Velocity.ZA, snap.Multiplier, snap.Replicas+1)
	return nil
}

func writeSVG(path string, snap engine.Snapshot, vp scene.Viewport) error {
	svg := export.LayoutSVG(scene.Build(snap, vp))
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
