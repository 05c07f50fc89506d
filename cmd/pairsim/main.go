package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/pairsim/internal/compute"
	"github.com/san-kum/pairsim/internal/config"
	"github.com/san-kum/pairsim/internal/integrators"
	"github.com/san-kum/pairsim/internal/metrics"
	"github.com/san-kum/pairsim/internal/pair"
	"github.com/san-kum/pairsim/internal/sim"
	"github.com/san-kum/pairsim/internal/storage"
	"github.com/san-kum/pairsim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	steps      int
	threads    int
	dt         float64
	seed       int64
	integrator string
	saveRun    bool
	jsonPath   string
	rstPath    string
	snapshot   string
	// single and explore
	itype      int
	jtype      int
	rmin       float64
	rmax       float64
	points     int
	factorCoul float64
	factorLJ   float64
	showForce  bool
	svgPath    string
	// live view
	frameSteps int
	// bench
	benchThreads []int
	repeat       int
	// restart
	ranks int
)

func fatalf(format string, args ...any) {
	log.Printf(format, args...)
	os.Exit(1)
}

func main() {
	log.SetFlags(0)

	rootCmd := &cobra.Command{
		Use:           "pairsim",
		Short:         "thread-parallel pairwise force engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".pairsim", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml or cfg)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().IntVar(&threads, "threads", 0, "worker threads (0 = all cpus)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "compute forces, energy and virial, then run md steps",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	runCmd.Flags().IntVar(&steps, "steps", 0, "md steps (0 = single-point compute)")
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	runCmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "velocity seed")
	runCmd.Flags().StringVar(&integrator, "integrator", config.DefaultIntegrator, "integrator ("+strings.Join(integrators.Names(), ", ")+")")
	runCmd.Flags().BoolVar(&saveRun, "save", false, "save the run under the data directory")
	runCmd.Flags().StringVar(&jsonPath, "json", "", "export run as JSON (- for stdout)")
	runCmd.Flags().StringVar(&rstPath, "restart", "", "write pair coefficients to a restart file after the run")
	runCmd.Flags().StringVar(&snapshot, "snapshot", "", "write an svg of the final configuration")

	singleCmd := &cobra.Command{
		Use:   "single",
		Short: "tabulate energy and force of one type pair",
		Args:  cobra.NoArgs,
		RunE:  tabulatePair,
	}
	singleCmd.Flags().IntVarP(&itype, "itype", "i", 1, "first atom type")
	singleCmd.Flags().IntVarP(&jtype, "jtype", "j", 1, "second atom type")
	singleCmd.Flags().Float64Var(&rmin, "rmin", 0.9, "smallest distance")
	singleCmd.Flags().Float64Var(&rmax, "rmax", 0, "largest distance (0 = cutoff)")
	singleCmd.Flags().IntVarP(&points, "points", "n", 20, "number of distances")
	singleCmd.Flags().Float64Var(&factorCoul, "fc", 1, "special coulomb factor")
	singleCmd.Flags().Float64Var(&factorLJ, "flj", 1, "special lj factor")
	singleCmd.Flags().BoolVar(&showForce, "force", false, "plot force instead of energy")
	singleCmd.Flags().StringVar(&svgPath, "svg", "", "also write the plot as svg")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run md with live thermo view",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&steps, "steps", 2000, "md steps")
	liveCmd.Flags().IntVar(&frameSteps, "frame", 5, "steps per frame")

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive potential explorer",
		Args:  cobra.NoArgs,
		RunE:  runExplore,
	}
	exploreCmd.Flags().Float64Var(&rmin, "rmin", 0.9, "smallest distance")

	restartCmd := &cobra.Command{
		Use:   "restart",
		Short: "write, read and verify restart files (.zst is compressed)",
	}
	restartWriteCmd := &cobra.Command{
		Use:   "write [path]",
		Short: "write the configured pair coefficients",
		Args:  cobra.ExactArgs(1),
		RunE:  writeRestart,
	}
	restartReadCmd := &cobra.Command{
		Use:   "read [path]",
		Short: "read a restart file into the configured style",
		Args:  cobra.ExactArgs(1),
		RunE:  readRestart,
	}
	restartVerifyCmd := &cobra.Command{
		Use:   "verify [path]",
		Short: "read a restart file on in-process ranks and compare",
		Args:  cobra.ExactArgs(1),
		RunE:  verifyRestart,
	}
	restartVerifyCmd.Flags().IntVar(&ranks, "ranks", 4, "number of ranks")
	restartCmd.AddCommand(restartWriteCmd, restartReadCmd, restartVerifyCmd)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark force computation across thread counts",
		Args:  cobra.NoArgs,
		RunE:  benchThreadCounts,
	}
	benchCmd.Flags().IntSliceVar(&benchThreads, "threads-list", []int{1, 2, 4, 8}, "thread counts")
	benchCmd.Flags().IntVar(&repeat, "repeat", 10, "force calls per thread count")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [style]",
		Short: "list presets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			styles := config.PresetStyles()
			if len(args) > 0 {
				styles = args
			}
			for _, style := range styles {
				names := config.ListPresets(style)
				if names == nil {
					return fmt.Errorf("no presets for %s (have %v)", style, config.PresetStyles())
				}
				fmt.Printf("%s:\n", style)
				for _, p := range names {
					fmt.Printf("  %s\n", p)
				}
			}
			return nil
		},
	}

	stylesCmd := &cobra.Command{
		Use:   "styles",
		Short: "list pair styles",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, s := range pair.Styles() {
				fmt.Println(s)
			}
		},
	}

	backendsCmd := &cobra.Command{
		Use:   "backends",
		Short: "list compute backends",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "BACKEND\tAVAILABLE\tWORKERS")
			for _, b := range compute.Backends() {
				fmt.Fprintf(w, "%s\t%v\t%d\n", b.Name(), b.Available(), b.Workers())
			}
			w.Flush()
		},
	}

	rootCmd.AddCommand(runCmd, singleCmd, liveCmd, exploreCmd, restartCmd, benchCmd, listCmd, presetsCmd, stylesCmd, backendsCmd)

	if err := rootCmd.Execute(); err != nil {
		fatalf("pairsim: %v", err)
	}
}

// loadConfig starts from the defaults, applies --preset, then --config,
// then any flag the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.FindPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", preset)
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
	if flags.Changed("threads") {
		cfg.Threads = threads
	}
	if flags.Lookup("steps") != nil && (flags.Changed("steps") || cmd.Name() == "live") {
		cfg.Run.Steps = steps
	}
	if flags.Changed("dt") {
		cfg.Run.Dt = dt
	}
	if flags.Changed("seed") {
		cfg.System.Seed = seed
	}
	if flags.Changed("integrator") {
		cfg.Integrator = integrator
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildSimulator(cfg *config.Config) (*sim.Simulator, error) {
	e, err := cfg.Engine()
	if err != nil {
		return nil, err
	}
	sys, err := cfg.Lattice(e.Style().Coulomb())
	if err != nil {
		return nil, err
	}
	field, err := sim.NewPairField(e, sys)
	if err != nil {
		return nil, err
	}
	integ, err := integrators.Get(cfg.Integrator)
	if err != nil {
		return nil, err
	}
	return sim.New(sys, field, integ), nil
}

func simConfig(cfg *config.Config) sim.Config {
	return sim.Config{
		Steps:         cfg.Run.Steps,
		Dt:            cfg.Run.Dt,
		ThermoEvery:   cfg.Run.ThermoEvery,
		ValidateState: cfg.Run.Validate,
	}
}

// initEngine builds the engine and initializes it without atoms, which is
// all Single and restart need.
func initEngine(cfg *config.Config) (*pair.Engine, error) {
	e, err := cfg.Engine()
	if err != nil {
		return nil, err
	}
	if err := e.Init(nil); err != nil {
		return nil, err
	}
	return e, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	s, err := buildSimulator(cfg)
	if err != nil {
		return err
	}
	for _, m := range metrics.Defaults() {
		s.AddMetric(m)
	}

	e := s.Field().Engine()
	fmt.Printf("style: %s  types: %d  atoms: %d  backend: %s\n",
		e.Name(), e.NTypes(), s.System().NLocal, e.Backend().Name())

	start := time.Now()
	result, err := s.Run(context.Background(), simConfig(cfg))
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	first := result.Thermo[0]
	fmt.Printf("evdwl: %.10g\n", first.EVdwl)
	fmt.Printf("ecoul: %.10g\n", first.ECoul)
	fmt.Printf("virial: %.6g\n", first.Virial)
	fmt.Printf("pressure: %.6g\n", first.Press)
	fmt.Printf("neighbor pairs: %d  cutoff: %g\n", s.Field().List().Pairs(), e.CutForce())
	fmt.Printf("engine memory: %d bytes\n", e.MemoryUsage())

	if cfg.Run.Steps > 0 {
		fmt.Println()
		printThermo(result.Thermo)
		fmt.Println("\nmetrics:")
		for name, val := range result.Metrics {
			fmt.Printf("  %s: %.6g\n", name, val)
		}
	}
	fmt.Printf("\ncompleted %d steps in %v\n", result.StepsTaken, elapsed)

	meta := storage.RunMetadata{
		Style:       cfg.Style,
		Preset:      preset,
		Seed:        cfg.System.Seed,
		Dt:          cfg.Run.Dt,
		Steps:       result.StepsTaken,
		ThermoEvery: cfg.Run.ThermoEvery,
		Integrator:  cfg.Integrator,
		NTypes:      cfg.NTypes,
		NAtoms:      s.System().NLocal,
		Threads:     e.Backend().Workers(),
		Newton:      cfg.Newton,
		Restart:     rstPath,
	}

	if snapshot != "" {
		if err := writeSnapshot(s, snapshot); err != nil {
			return err
		}
	}

	if rstPath != "" {
		if _, err := saveRestart(e, rstPath, nil); err != nil {
			return err
		}
	}

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(meta, result)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	if jsonPath != "" {
		return storage.ExportJSON(jsonPath, meta, result)
	}
	return nil
}

func printThermo(samples []sim.Thermo) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "STEP\tTEMP\tE_VDWL\tE_COUL\tPE\tETOTAL\tPRESS\t")
	for _, th := range samples {
		fmt.Fprintf(w, "%d\t%.5f\t%.6f\t%.6f\t%.6f\t%.6f\t%.5f\t\n",
			th.Step, th.Temp, th.EVdwl, th.ECoul, th.PE, th.ETotal, th.Press)
	}
	w.Flush()
}

// pairCharges returns the configured charges of two types, or nil.
func pairCharges(cfg *config.Config, i, j int) []float64 {
	q := cfg.System.Charges
	if q == nil || i < 1 || j < 1 || i > len(q) || j > len(q) {
		return nil
	}
	return []float64{q[i-1], q[j-1]}
}

func tabulatePair(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	e, err := initEngine(cfg)
	if err != nil {
		return err
	}

	cut, err := e.Cutoff(itype, jtype)
	if err != nil {
		return err
	}
	hi := rmax
	if hi == 0 {
		hi = cut
	}

	r, energy, force, err := viz.Curve(e, itype, jtype, pairCharges(cfg, itype, jtype), rmin, hi, points, factorCoul, factorLJ)
	if err != nil {
		return err
	}

	fmt.Printf("%s  types %d-%d  cutoff %g\n\n", e.Name(), itype, jtype, cut)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "R\tENERGY\tFORCE\t")
	for k := range r {
		fmt.Fprintf(w, "%.4f\t%.8g\t%.8g\t\n", r[k], energy[k], force[k])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	data, caption := energy, "energy vs r"
	if showForce {
		data, caption = force, "force vs r"
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(70),
		asciigraph.Caption(caption),
	))

	if svgPath != "" {
		f, err := os.Create(svgPath)
		if err != nil {
			return err
		}
		if err := viz.CurveSVG(f, r, data, 640, 360, "#ff8800"); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	return nil
}

func writeSnapshot(s *sim.Simulator, path string) error {
	c := viz.NewCanvas(80, 40)
	viz.DrawSystem(c, viz.NewCamera(), s.System())

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := viz.CanvasSVG(f, c, 3); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, err := buildSimulator(cfg)
	if err != nil {
		return err
	}

	title := cfg.Style
	if preset != "" {
		title = fmt.Sprintf("%s (%s)", cfg.Style, preset)
	}
	m := viz.NewLiveModel(s, title, cfg.Run.Dt, cfg.Run.Steps, frameSteps)

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if lm, ok := final.(viz.LiveModel); ok {
		return lm.Err()
	}
	return nil
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	e, err := initEngine(cfg)
	if err != nil {
		return err
	}

	var charges []float64
	if len(cfg.System.Charges) == e.NTypes() {
		charges = cfg.System.Charges
	}
	_, err = tea.NewProgram(viz.NewExploreModel(e, charges, rmin), tea.WithAltScreen()).Run()
	return err
}

func benchThreadCounts(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if repeat < 1 {
		return fmt.Errorf("repeat must be positive, got %d", repeat)
	}

	fmt.Printf("benchmarking %s\n\n", cfg.Style)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "THREADS\tATOMS\tPAIRS\tTIME/CALL\tSPEEDUP\tENERGY\tMAX |dF|")

	var base time.Duration
	var ref []float64
	for _, n := range benchThreads {
		c := cfg.Clone()
		c.Threads = n
		s, err := buildSimulator(c)
		if err != nil {
			return err
		}
		sys, field := s.System(), s.Field()

		start := time.Now()
		for k := 0; k < repeat; k++ {
			if err := field.Forces(sys, true, true); err != nil {
				return err
			}
		}
		per := time.Since(start) / time.Duration(repeat)
		if base == 0 {
			base = per
		}

		forces := append([]float64(nil), sys.F[:3*sys.NLocal]...)
		if ref == nil {
			ref = forces
		}
		maxDiff := 0.0
		for k := range forces {
			if d := abs(forces[k] - ref[k]); d > maxDiff {
				maxDiff = d
			}
		}

		fmt.Fprintf(w, "%d\t%d\t%d\t%v\t%.2fx\t%.10g\t%.2g\n",
			field.Engine().Backend().Workers(), sys.NLocal, field.List().Pairs(),
			per, float64(base)/float64(per), field.Tally().Energy(), maxDiff)
	}
	return w.Flush()
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
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
	fmt.Fprintln(w, "ID\tSTYLE\tTIME\tATOMS\tSTEPS\tDT\tTHREADS\tETOTAL")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.4g\t%d\t%.6g\n",
			run.ID,
			run.Style,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.NAtoms,
			run.Steps,
			run.Dt,
			run.Threads,
			run.Metrics["energy"],
		)
	}

	return w.Flush()
}
