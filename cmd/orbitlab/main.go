package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/orbitlab/internal/config"
	"github.com/san-kum/orbitlab/internal/orbit"
	"github.com/san-kum/orbitlab/internal/sim"
	"github.com/san-kum/orbitlab/internal/storage"
	"github.com/san-kum/orbitlab/internal/table"
	"github.com/san-kum/orbitlab/internal/viz"
)

var (
	dataDir    string
	m1         float64
	m2         float64
	semiMajor  float64
	ecc        float64
	years      float64
	dtFraction float64
	output     string
	configFile string
	preset     string
	frameRate  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbitlab",
		Short: "two-body orbit simulator with Forward Euler error diagnostics",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".orbitlab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation and write the output table",
		RunE:  runSimulation,
	}
	addOrbitFlags(runCmd)
	runCmd.Flags().StringVar(&output, "out", config.DefaultOutput, "output table path")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot energy drift and trajectory of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [dtfrac] [dtfrac] ...",
		Short: "run the same orbit at several timestep fractions",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareTimesteps,
	}
	addOrbitFlags(compareCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSON(os.Stdout, args[0])
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch the orbit in the terminal",
		RunE:  runLive,
	}
	addOrbitFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, compareCmd, presetsCmd, exportJSONCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addOrbitFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&m1, "m1", config.DefaultM1, "primary mass [MSun]")
	cmd.Flags().Float64Var(&m2, "m2", config.DefaultM2, "secondary mass [MSun]")
	cmd.Flags().Float64Var(&semiMajor, "a", config.DefaultSemiMajor, "semimajor axis [AU]")
	cmd.Flags().Float64Var(&ecc, "ecc", config.DefaultEcc, "eccentricity")
	cmd.Flags().Float64Var(&years, "time", config.DefaultYears, "total simulated time [yr]")
	cmd.Flags().Float64Var(&dtFraction, "dtfrac", config.DefaultDtFraction, "timestep as fraction of orbital period")
}

// resolveConfig applies preset, then config file, then explicit flags, the
// most specific source winning.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("m1") {
		cfg.Orbit.M1 = m1
	}
	if cmd.Flags().Changed("m2") {
		cfg.Orbit.M2 = m2
	}
	if cmd.Flags().Changed("a") {
		cfg.Orbit.SemiMajor = semiMajor
	}
	if cmd.Flags().Changed("ecc") {
		cfg.Orbit.Eccentricity = ecc
	}
	if cmd.Flags().Changed("time") {
		cfg.Years = years
	}
	if cmd.Flags().Changed("dtfrac") {
		cfg.DtFraction = dtFraction
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = output
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	sys := orbit.NewBinary(cfg.Orbit)
	simulator := sim.New(sys, cfg.Orbit.Period())
	simCfg := sim.Config{Years: cfg.Years, DtFraction: cfg.DtFraction}

	fmt.Printf("running m1=%g m2=%g a=%g e=%g for %g yr (dt = %g P)...\n",
		cfg.Orbit.M1, cfg.Orbit.M2, cfg.Orbit.SemiMajor, cfg.Orbit.Eccentricity,
		cfg.Years, cfg.DtFraction)
	start := time.Now()

	result, err := simulator.Run(context.Background(), simCfg)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	if err := table.WriteFile(cfg.Output, result); err != nil {
		return err
	}

	runID, err := st.Save(cfg.Orbit, simCfg, result)
	if err != nil {
		return err
	}

	final := result.Snapshots[len(result.Snapshots)-1]
	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d, snapshots: %d\n", result.Steps, len(result.Snapshots))
	fmt.Printf("wrote %s\n", cfg.Output)
	fmt.Printf("final dE/E: %.3e at T=%.4f yr\n", final.Drift, final.Time)

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tM1\tM2\tA\tECC\tYEARS\tDTFRAC\tdE/E")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.3g\t%.3g\t%.3g\t%.3g\t%.2f\t%.1e\t%.2e\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Orbit.M1,
			run.Orbit.M2,
			run.Orbit.SemiMajor,
			run.Orbit.Eccentricity,
			run.Years,
			run.DtFraction,
			run.FinalDrift,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	snaps, err := st.LoadTable(args[0])
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("orbit: m1=%g m2=%g a=%g e=%g\n", meta.Orbit.M1, meta.Orbit.M2,
		meta.Orbit.SemiMajor, meta.Orbit.Eccentricity)
	fmt.Printf("samples: %d\n\n", len(snaps))

	drift := make([]float64, len(snaps))
	for i, snap := range snaps {
		drift[i] = snap.Drift
	}
	fmt.Println(asciigraph.Plot(drift,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("dE/E vs snapshot"),
	))
	fmt.Println()

	// Secondary body position (body 1: columns 7..13 of the flat record).
	if len(snaps[0].Coords) >= 14 {
		for axis, name := range []string{"x", "y"} {
			data := make([]float64, len(snaps))
			for i, snap := range snaps {
				data[i] = snap.Coords[7+1+axis]
			}
			fmt.Println(asciigraph.Plot(data,
				asciigraph.Height(10),
				asciigraph.Width(80),
				asciigraph.Caption(fmt.Sprintf("secondary %s [AU] vs snapshot", name)),
			))
			fmt.Println()
		}
	}

	return nil
}

func compareTimesteps(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("comparing timestep fractions for m1=%g m2=%g a=%g e=%g over %g yr\n\n",
		cfg.Orbit.M1, cfg.Orbit.M2, cfg.Orbit.SemiMajor, cfg.Orbit.Eccentricity, cfg.Years)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DTFRAC\tSTEPS\tFINAL dE/E\tTIME")

	for _, arg := range args {
		frac, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("bad timestep fraction %q: %w", arg, err)
		}

		sys := orbit.NewBinary(cfg.Orbit)
		simulator := sim.New(sys, cfg.Orbit.Period())

		start := time.Now()
		result, err := simulator.Run(context.Background(), sim.Config{
			Years:      cfg.Years,
			DtFraction: frac,
		})
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		final := result.Snapshots[len(result.Snapshots)-1]
		fmt.Fprintf(w, "%.1e\t%d\t%.3e\t%v\n", frac, result.Steps, final.Drift, elapsed)
	}

	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tM1\tM2\tA\tECC\tYEARS\tDTFRAC")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%.3g\t%.3g\t%.3g\t%.3g\t%.2f\t%.1e\n",
			name, p.Orbit.M1, p.Orbit.M2, p.Orbit.SemiMajor, p.Orbit.Eccentricity,
			p.Years, p.DtFraction)
	}
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	m := viz.NewModel(cfg.Orbit, cfg.DtFraction, frameRate)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
