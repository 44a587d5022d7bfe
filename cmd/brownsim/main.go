package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/brownsim/internal/analysis"
	"github.com/san-kum/brownsim/internal/automation"
	"github.com/san-kum/brownsim/internal/config"
	"github.com/san-kum/brownsim/internal/dynamo"
	"github.com/san-kum/brownsim/internal/export"
	"github.com/san-kum/brownsim/internal/gui"
	"github.com/san-kum/brownsim/internal/metrics"
	"github.com/san-kum/brownsim/internal/optim"
	"github.com/san-kum/brownsim/internal/sim"
	"github.com/san-kum/brownsim/internal/storage"
	"github.com/san-kum/brownsim/internal/term"
	"github.com/san-kum/brownsim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	particles  int
	tickMs     float64
	mass       float64
	forceMin   float64
	forceMax   float64
	radius     float64
	stroke     string
	integrator string
	seed       int64
	ticks      int
	// run
	numRuns     int
	recordEvery int
	noSave      bool
	// snapshot
	snapshotTicks int
	outFile       string
	braille       bool
	// sweep
	gridSpecs   []string
	sweepMetric string
	maximize    bool
	// plot, trace, phase, analyze
	particleIdx int
	xAxis       int
	yAxis       int
)

// main registers the commands and runs the live terminal view when no
// subcommand is given. It exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "brownsim",
		Short:        "random-force particle simulation",
		SilenceUsage: true,
		RunE:         runLive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".brownsim", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.IntVar(&particles, "particles", config.DefaultParticles, "number of particles")
	pf.Float64Var(&tickMs, "tick", config.DefaultTickMs, "tick period in milliseconds")
	pf.Float64Var(&mass, "mass", config.DefaultMass, "particle mass")
	pf.Float64Var(&forceMin, "force-min", config.DefaultForceMin, "lower bound of the random force")
	pf.Float64Var(&forceMax, "force-max", config.DefaultForceMax, "upper bound of the random force")
	pf.Float64Var(&radius, "radius", config.DefaultRadius, "circle radius")
	pf.StringVar(&stroke, "stroke", config.DefaultStroke, "circle stroke colour")
	pf.StringVar(&integrator, "integrator", "impulse", "integrator (impulse, euler)")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with the live terminal view",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}

	termCmd := &cobra.Command{
		Use:   "term",
		Short: "run on a raw tcell screen",
		Args:  cobra.NoArgs,
		RunE:  runTerm,
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run in a raylib window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless for a fixed number of ticks and save the recording",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&ticks, "ticks", config.DefaultTicks, "number of ticks")
	runCmd.Flags().IntVar(&numRuns, "runs", 1, "number of independent runs with consecutive seeds")
	runCmd.Flags().IntVar(&recordEvery, "record-every", 1, "record every n-th tick")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the recording")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run headless over a parameter grid",
		Args:  cobra.NoArgs,
		RunE:  sweep,
	}
	sweepCmd.Flags().IntVar(&ticks, "ticks", config.DefaultTicks, "number of ticks per point")
	sweepCmd.Flags().StringArrayVar(&gridSpecs, "grid", nil, "grid axis as name=v1,v2 (particles, tick, mass, force, force-min, force-max)")
	sweepCmd.Flags().StringVar(&sweepMetric, "metric", "spread", "metric used to pick the best point")
	sweepCmd.Flags().BoolVar(&maximize, "max", false, "pick the largest metric value instead of the smallest")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run the steps of a yaml scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render the scene after a number of ticks",
		Args:  cobra.NoArgs,
		RunE:  snapshot,
	}
	snapshotCmd.Flags().IntVar(&snapshotTicks, "ticks", 100, "number of ticks")
	snapshotCmd.Flags().StringVarP(&outFile, "output", "o", "", "svg output file (default stdout)")
	snapshotCmd.Flags().BoolVar(&braille, "braille", false, "print a braille rendering instead of svg")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the trajectory of one particle",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&particleIdx, "particle", 0, "particle index")

	traceCmd := &cobra.Command{
		Use:   "trace [run_id]",
		Short: "write the path of one particle as svg",
		Args:  cobra.ExactArgs(1),
		RunE:  traceRun,
	}
	traceCmd.Flags().IntVar(&particleIdx, "particle", 0, "particle index")
	traceCmd.Flags().StringVarP(&outFile, "output", "o", "", "svg output file (default stdout)")

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "phase space plot of one particle",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}
	phaseCmd.Flags().IntVar(&particleIdx, "particle", 0, "particle index")
	phaseCmd.Flags().IntVar(&xAxis, "x-axis", 0, "state column for x-axis (0=x 1=y 2=vx 3=vy)")
	phaseCmd.Flags().IntVar(&yAxis, "y-axis", 2, "state column for y-axis (0=x 1=y 2=vx 3=vy)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "displacement and spectrum analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().IntVar(&particleIdx, "particle", 0, "particle index for the velocity spectrum")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(liveCmd, termCmd, guiCmd, runCmd, sweepCmd, scenarioCmd, snapshotCmd, listCmd, plotCmd, traceCmd, phaseCmd, analyzeCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers the preset, the config file and explicitly set flags,
// in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("particles") {
		cfg.Particles = particles
	}
	if flags.Changed("tick") {
		cfg.TickMs = tickMs
	}
	if flags.Changed("mass") {
		cfg.Mass = mass
	}
	if flags.Changed("force-min") {
		cfg.Force.Min = forceMin
	}
	if flags.Changed("force-max") {
		cfg.Force.Max = forceMax
	}
	if flags.Changed("radius") {
		cfg.Style.Radius = radius
	}
	if flags.Changed("stroke") {
		cfg.Style.Stroke = stroke
	}
	if flags.Changed("integrator") {
		cfg.Integrator = integrator
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if (cmd.Name() == "run" || cmd.Name() == "sweep") && flags.Changed("ticks") {
		cfg.Ticks = ticks
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// rngFor returns a seeded source, or nil to let the simulation seed itself.
func rngFor(cfg *config.Config) dynamo.RandomSource {
	if cfg.Seed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(cfg.Seed))
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sc, err := cfg.SimConfig()
	if err != nil {
		return err
	}
	return viz.Run(sc, cfg.Canvas.Width, cfg.Canvas.Height, rngFor(cfg), "brownsim :: "+cfg.Integrator)
}

func runTerm(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sc, err := cfg.SimConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := term.Run(ctx, sc, cfg.Canvas.Width, cfg.Canvas.Height, rngFor(cfg)); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sc, err := cfg.SimConfig()
	if err != nil {
		return err
	}
	return gui.Run(sc, int32(cfg.Canvas.Width), int32(cfg.Canvas.Height), rngFor(cfg))
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sc, err := cfg.SimConfig()
	if err != nil {
		return err
	}
	if numRuns < 1 {
		return fmt.Errorf("runs must be at least 1, got %d", numRuns)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	st := storage.New(dataDir)
	if !noSave {
		if err := st.Init(); err != nil {
			return err
		}
	}

	sets := make([]*metrics.Set, numRuns)
	recorders := make([]*storage.Recorder, numRuns)
	ens := sim.NewEnsemble(sc, numRuns, cfg.Seed, cfg.Ticks)
	ens.Observers = func(idx int) []sim.Observer {
		sets[idx] = metrics.Default(cfg.Origin(), cfg.Canvas.Width, cfg.Canvas.Height)
		recorders[idx] = storage.NewRecorder(recordEvery)
		return []sim.Observer{sets[idx], recorders[idx]}
	}

	fmt.Printf("running %d particles for %d ticks (%d run(s), %s)...\n", cfg.Particles, cfg.Ticks, numRuns, cfg.Integrator)
	start := time.Now()

	snaps, err := ens.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))

	for i, snap := range snaps {
		values := sets[i].Values()
		runSeed := cfg.Seed + int64(i)

		if !noSave {
			runID, err := st.Save(storage.RunMetadata{
				Seed:       runSeed,
				Particles:  cfg.Particles,
				TickMs:     cfg.TickMs,
				Ticks:      cfg.Ticks,
				Mass:       cfg.Mass,
				Width:      cfg.Canvas.Width,
				Height:     cfg.Canvas.Height,
				Integrator: cfg.Integrator,
				Preset:     preset,
				Metrics:    values,
			}, recorders[i].Recording())
			if err != nil {
				return err
			}
			fmt.Printf("\nrun id: %s\n", runID)
		} else {
			fmt.Println()
		}

		fmt.Printf("seed: %d\n", runSeed)
		fmt.Printf("frames: %d  redraws: %d\n", snap.Frame, snap.Redraws)
		fmt.Println("metrics:")
		for _, name := range sortedKeys(values) {
			fmt.Printf("  %s: %.6f\n", name, values[name])
		}
	}

	return nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// applyParam sets one sweep parameter on a copy of the file configuration.
func applyParam(cfg *config.Config, name string, v float64) error {
	switch name {
	case "particles":
		cfg.Particles = int(v)
	case "tick":
		cfg.TickMs = v
	case "mass":
		cfg.Mass = v
	case "force":
		cfg.Force = config.ForceConfig{Min: -v, Max: v}
	case "force-min":
		cfg.Force.Min = v
	case "force-max":
		cfg.Force.Max = v
	case "radius":
		cfg.Style.Radius = v
	default:
		return fmt.Errorf("unknown sweep parameter: %s", name)
	}
	return nil
}

func sweep(cmd *cobra.Command, args []string) error {
	base, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if base.Seed == 0 {
		base.Seed = time.Now().UnixNano()
	}

	grid, err := optim.ParseGrid(gridSpecs)
	if err != nil {
		return err
	}
	if grid.Size() == 0 {
		return fmt.Errorf("no grid given, use --grid name=v1,v2")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("sweeping %d points, %d ticks each, seed %d...\n", grid.Size(), base.Ticks, base.Seed)

	points, err := grid.Search(ctx, func(ctx context.Context, params map[string]float64) (map[string]float64, error) {
		cfg := *base
		for name, v := range params {
			if err := applyParam(&cfg, name, v); err != nil {
				return nil, err
			}
		}
		sc, err := cfg.SimConfig()
		if err != nil {
			return nil, err
		}
		set := metrics.Default(cfg.Origin(), cfg.Canvas.Width, cfg.Canvas.Height)
		if _, err := sim.RunHeadless(ctx, sc, cfg.Seed, cfg.Ticks, nil, set); err != nil {
			return nil, err
		}
		return set.Values(), nil
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	names := points[0].Names()
	metricNames := sortedKeys(points[0].Metrics)
	fmt.Fprintln(w, strings.ToUpper(strings.Join(append(append([]string{}, names...), metricNames...), "\t")))
	for _, p := range points {
		cols := make([]string, 0, len(names)+len(metricNames))
		for _, n := range names {
			cols = append(cols, fmt.Sprintf("%g", p.Params[n]))
		}
		for _, m := range metricNames {
			cols = append(cols, fmt.Sprintf("%.4f", p.Metrics[m]))
		}
		fmt.Fprintln(w, strings.Join(cols, "\t"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	best := optim.Best(points, sweepMetric, maximize)
	if best < 0 {
		log.Printf("metric %q not reported, available: %v", sweepMetric, metricNames)
		return nil
	}
	fmt.Printf("\nbest %s: %.4f at %v\n", sweepMetric, points[best].Metrics[sweepMetric], points[best].Params)
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if scenario.Description != "" {
		fmt.Printf("%s: %s\n", scenario.Name, scenario.Description)
	}
	results, err := automation.RunScenario(ctx, scenario, st, os.Stdout)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\nSTEP\tSEED\tFRAMES\tENERGY\tSPREAD\tRUN")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%d\t%.4f\t%.4f\t%s\n",
			r.Step, r.Seed, r.Snapshot.Frame, r.Metrics["kinetic_energy"], r.Metrics["spread"], r.RunID)
	}
	return w.Flush()
}

func snapshot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sc, err := cfg.SimConfig()
	if err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	var surface dynamo.Surface
	var canvas *viz.Canvas
	var svg *export.SVG
	if braille {
		canvas = viz.NewCanvas(80, 30)
		canvas.SetWorld(cfg.Canvas.Width, cfg.Canvas.Height)
		surface = canvas
	} else {
		svg = export.NewSVG(int(cfg.Canvas.Width), int(cfg.Canvas.Height))
		surface = svg
	}

	snap, err := sim.RunHeadless(context.Background(), sc, cfg.Seed, snapshotTicks, surface)
	if err != nil {
		return err
	}

	if braille {
		fmt.Print(canvas.String())
		fmt.Printf("frame %d, seed %d\n", snap.Frame, cfg.Seed)
		return nil
	}
	return writeOutput(outFile, svg.String())
}

func writeOutput(path, content string) error {
	if path == "" {
		_, err := fmt.Print(content)
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", path)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tPARTICLES\tTICKS\tTICK\tMASS\tINTEG\tSEED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.0fms\t%.2f\t%s\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Particles,
			run.Ticks,
			run.TickMs,
			run.Mass,
			run.Integrator,
			run.Seed,
		)
	}

	return w.Flush()
}

func loadRun(runID string) (*storage.RunMetadata, *storage.Recording, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	rec, err := st.LoadStates(runID)
	if err != nil {
		return nil, nil, err
	}
	return meta, rec, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, rec, err := loadRun(args[0])
	if err != nil {
		return err
	}
	if rec.Len() == 0 {
		return fmt.Errorf("no data to plot")
	}
	if particleIdx < 0 || particleIdx >= rec.Particles() {
		return fmt.Errorf("particle %d out of range (run has %d)", particleIdx, rec.Particles())
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("integrator: %s\n", meta.Integrator)
	fmt.Printf("samples: %d\n\n", rec.Len())

	captions := []string{"x", "y", "vx", "vy"}
	for col, name := range captions {
		graph := asciigraph.Plot(rec.Series(particleIdx, col),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("particle %d %s", particleIdx, name)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func traceRun(cmd *cobra.Command, args []string) error {
	meta, rec, err := loadRun(args[0])
	if err != nil {
		return err
	}
	if particleIdx < 0 || particleIdx >= rec.Particles() {
		return fmt.Errorf("particle %d out of range (run has %d)", particleIdx, rec.Particles())
	}

	xs, ys := rec.Series(particleIdx, 0), rec.Series(particleIdx, 1)
	points := make([]dynamo.Vec2, len(xs))
	for i := range xs {
		points[i] = dynamo.Vec2{X: xs[i], Y: ys[i]}
	}

	width, height := int(meta.Width), int(meta.Height)
	if width <= 0 || height <= 0 {
		log.Printf("run %s has no canvas size, using %dx%d", meta.ID, config.DefaultWidth, config.DefaultHeight)
		width, height = config.DefaultWidth, config.DefaultHeight
	}

	out := export.TrajectoryToSVG(points, width, height, config.DefaultStroke)
	if out == "" {
		return fmt.Errorf("run %s has fewer than two samples", meta.ID)
	}
	return writeOutput(outFile, out)
}

func phasePlot(cmd *cobra.Command, args []string) error {
	meta, rec, err := loadRun(args[0])
	if err != nil {
		return err
	}

	portrait := analysis.PhasePortrait(rec, particleIdx, xAxis, yAxis)
	if portrait == nil {
		return fmt.Errorf("invalid particle %d or axes %d/%d", particleIdx, xAxis, yAxis)
	}

	names := []string{"x", "y", "vx", "vy"}
	fmt.Printf("run: %s  particle %d  %s vs %s\n\n", meta.ID, particleIdx, names[yAxis], names[xAxis])
	fmt.Print(analysis.PhasePortraitToASCII(portrait, 80, 24))
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, rec, err := loadRun(args[0])
	if err != nil {
		return err
	}
	if rec.Len() < 2 {
		return fmt.Errorf("not enough samples to analyze")
	}
	if particleIdx < 0 || particleIdx >= rec.Particles() {
		return fmt.Errorf("particle %d out of range (run has %d)", particleIdx, rec.Particles())
	}

	msd := analysis.MeanSquaredDisplacement(rec)
	fmt.Printf("run: %s (%s, %d particles, %d samples)\n\n", meta.ID, meta.Integrator, rec.Particles(), rec.Len())
	fmt.Println(asciigraph.Plot(msd,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("mean squared displacement"),
	))
	fmt.Printf("\nscaling exponent: %.3f\n", analysis.ScalingExponent(msd))

	speed := analysis.MeanSpeed(rec)
	fmt.Printf("final mean speed: %.4f\n\n", speed[len(speed)-1])

	// sampling period of the recording, in ms
	dtMs := meta.TickMs
	if len(rec.Frames) > 1 {
		dtMs *= float64(rec.Frames[1] - rec.Frames[0])
	}

	ps := analysis.PowerSpectrum(rec.Series(particleIdx, 2))
	freqs := analysis.Frequencies(len(ps), dtMs)
	peak := 1
	for i := 1; i < len(ps); i++ {
		if ps[i] > ps[peak] {
			peak = i
		}
	}
	fmt.Println(asciigraph.Plot(ps,
		asciigraph.Height(8),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("particle %d vx spectrum", particleIdx)),
	))
	if peak < len(ps) {
		fmt.Printf("\ndominant frequency: %.3f Hz\n", freqs[peak])
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, rec, err := loadRun(args[0])
	if err != nil {
		return err
	}
	return storage.WriteCSV(os.Stdout, rec)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, rec, err := loadRun(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, rec)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPARTICLES\tTICK\tMASS\tFORCE\tINTEG")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%.0fms\t%.1f\t[%g, %g]\t%s\n",
			name, p.Particles, p.TickMs, p.Mass, p.Force.Min, p.Force.Max, p.Integrator)
	}
	return w.Flush()
}
