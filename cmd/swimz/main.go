package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/swimz/internal/advance"
	"github.com/san-kum/swimz/internal/config"
	"github.com/san-kum/swimz/internal/export"
	"github.com/san-kum/swimz/internal/field"
	"github.com/san-kum/swimz/internal/storage"
	"github.com/san-kum/swimz/internal/swim"
	"github.com/san-kum/swimz/internal/swimmer"
	"github.com/san-kum/swimz/internal/trajectory"
	"github.com/san-kum/swimz/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string

	fieldType  string
	bx, by, bz float64
	fieldZ0    float64
	fieldL     float64
	angle      float64

	charge   float64
	momentum float64
	z0, zf   float64
	stepSize float64
	minStep  float64
	maxStep  float64
	tol      float64
	advName  string

	x0, y0, tx, ty float64
	stopRadius     float64

	frameRate int
	svgOut    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "swimz",
		Short: "adaptive charged-particle swimming through magnetic fields",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".swimz", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "swim a particle and save the trajectory",
		RunE:  runSwim,
	}
	addSwimFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved swims",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved swim",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export swim metadata as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	svgCmd := &cobra.Command{
		Use:   "svg [run_id]",
		Short: "export a saved trajectory to svg",
		Args:  cobra.ExactArgs(1),
		RunE:  svgRun,
	}
	svgCmd.Flags().StringVar(&svgOut, "out", "", "output file (default stdout)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "swim and replay the trajectory live",
		RunE:  runLive,
	}
	addSwimFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, svgCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSwimFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&fieldType, "field", "uniform", "field type (uniform, solenoid, line)")
	cmd.Flags().Float64Var(&bx, "bx", 0, "field x component (kG)")
	cmd.Flags().Float64Var(&by, "by", 0, "field y component (kG)")
	cmd.Flags().Float64Var(&bz, "bz", config.DefaultBz, "field z component (kG)")
	cmd.Flags().Float64Var(&fieldZ0, "field-z0", 0, "solenoid center (cm)")
	cmd.Flags().Float64Var(&fieldL, "field-l", 100, "solenoid falloff length (cm)")
	cmd.Flags().Float64Var(&angle, "angle", 0, "field rotation about y (rad)")
	cmd.Flags().Float64Var(&charge, "charge", config.DefaultCharge, "charge (units of e)")
	cmd.Flags().Float64Var(&momentum, "momentum", config.DefaultMomentum, "momentum (GeV/c)")
	cmd.Flags().Float64Var(&z0, "z0", config.DefaultZ0, "start z (cm)")
	cmd.Flags().Float64Var(&zf, "zf", config.DefaultZf, "target z (cm)")
	cmd.Flags().Float64Var(&stepSize, "step", config.DefaultStepSize, "initial step size (cm)")
	cmd.Flags().Float64Var(&minStep, "min-step", swim.DefaultMinStepSize, "minimum step size (cm)")
	cmd.Flags().Float64Var(&maxStep, "max-step", swim.DefaultMaxStepSize, "maximum step size (cm)")
	cmd.Flags().Float64Var(&tol, "tol", config.DefaultTolerance, "per-component absolute tolerance")
	cmd.Flags().StringVar(&advName, "advancer", "halfstep", "advancer (halfstep, fehlberg45, dopri54)")
	cmd.Flags().Float64Var(&x0, "x", 0, "initial x (cm)")
	cmd.Flags().Float64Var(&y0, "y", 0, "initial y (cm)")
	cmd.Flags().Float64Var(&tx, "tx", 0, "initial slope dx/dz")
	cmd.Flags().Float64Var(&ty, "ty", 0, "initial slope dy/dz")
	cmd.Flags().Float64Var(&stopRadius, "stop-radius", 0, "stop when transverse radius exceeds this (0 disables)")
}

// resolveConfig merges preset, config file, and flags into one Config.
// Flags the user actually set win over file values, files win over presets.
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
		*cfg = *loaded
	}

	flagFloat := func(name string, dst *float64, val float64) {
		if cmd.Flags().Changed(name) {
			*dst = val
		}
	}

	if cmd.Flags().Changed("field") {
		cfg.Field.Type = fieldType
	}
	flagFloat("bx", &cfg.Field.Bx, bx)
	flagFloat("by", &cfg.Field.By, by)
	flagFloat("bz", &cfg.Field.Bz, bz)
	flagFloat("field-z0", &cfg.Field.Z0, fieldZ0)
	flagFloat("field-l", &cfg.Field.L, fieldL)
	flagFloat("angle", &cfg.Field.Angle, angle)
	flagFloat("charge", &cfg.Charge, charge)
	flagFloat("momentum", &cfg.Momentum, momentum)
	flagFloat("z0", &cfg.Z0, z0)
	flagFloat("zf", &cfg.Zf, zf)
	flagFloat("step", &cfg.StepSize, stepSize)
	flagFloat("min-step", &cfg.MinStep, minStep)
	flagFloat("max-step", &cfg.MaxStep, maxStep)
	flagFloat("tol", &cfg.Tolerance, tol)
	if cmd.Flags().Changed("advancer") {
		cfg.Advancer = advName
	}
	flagFloat("x", &cfg.InitState.X, x0)
	flagFloat("y", &cfg.InitState.Y, y0)
	flagFloat("tx", &cfg.InitState.Tx, tx)
	flagFloat("ty", &cfg.InitState.Ty, ty)
	flagFloat("stop-radius", &cfg.StopRadius, stopRadius)

	return cfg, nil
}

func buildField(cfg *config.Config) (field.Field, error) {
	var f field.Field
	switch cfg.Field.Type {
	case "uniform":
		f = field.Uniform{Bx: cfg.Field.Bx, By: cfg.Field.By, Bz: cfg.Field.Bz}
	case "solenoid":
		f = field.Solenoid{B0: cfg.Field.Bz, Z0: cfg.Field.Z0, L: cfg.Field.L}
	case "line":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown field type: %s", cfg.Field.Type)
	}
	if cfg.Field.Angle != 0 {
		f = field.Rotated{Inner: f, Angle: cfg.Field.Angle}
	}
	return f, nil
}

func buildAdvancer(name string) (swim.Advancer, error) {
	switch name {
	case "halfstep":
		return advance.NewHalfStep(), nil
	case "fehlberg45":
		return advance.NewTableauStep(advance.Fehlberg45), nil
	case "dopri54":
		return advance.NewTableauStep(advance.DormandPrince54), nil
	default:
		return nil, fmt.Errorf("unknown advancer: %s", name)
	}
}

func buildSwimmer(cfg *config.Config) (*swimmer.Swimmer, error) {
	f, err := buildField(cfg)
	if err != nil {
		return nil, err
	}

	var sw *swimmer.Swimmer
	if f == nil {
		sw = swimmer.NewWithDerivative(field.Line{})
	} else {
		sw = swimmer.New(f, cfg.Charge, cfg.Momentum)
	}

	adv, err := buildAdvancer(cfg.Advancer)
	if err != nil {
		return nil, err
	}
	sw.SetAdvancer(adv)

	if cfg.MinStep > 0 {
		sw.Driver().SetMinStepSize(cfg.MinStep)
	}
	if cfg.MaxStep > 0 {
		sw.Driver().SetMaxStepSize(cfg.MaxStep)
	}
	return sw, nil
}

func swimOnce(cmd *cobra.Command) (*config.Config, *swimOutput, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	sw, err := buildSwimmer(cfg)
	if err != nil {
		return nil, nil, err
	}

	var stopper swim.Stopper
	if cfg.StopRadius > 0 {
		stopper = &swimmer.RadiusStopper{RMax: cfg.StopRadius}
	}

	start := time.Now()
	result, err := sw.SwimZWithStopper(cfg.GetInitState(), cfg.Z0, cfg.Zf, cfg.StepSize, cfg.GetTolerance(), stopper)
	if err != nil {
		return nil, nil, err
	}

	return cfg, &swimOutput{result: result, elapsed: time.Since(start)}, nil
}

type swimOutput struct {
	result  *trajectory.Result
	elapsed time.Duration
}

func runSwim(cmd *cobra.Command, args []string) error {
	cfg, out, err := swimOnce(cmd)
	if err != nil {
		return err
	}
	result := out.result

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runID, err := st.Save(cfg.Field.Type, cfg.Charge, cfg.Momentum, cfg.Z0, cfg.Zf, cfg.StepSize, cfg.Advancer, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", out.elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Println(result.Summary())
	fmt.Printf("final state: x=%.4f y=%.4f tx=%.6f ty=%.6f\n",
		result.Final[0], result.Final[1], result.Final[2], result.Final[3])

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	_, out, err := swimOnce(cmd)
	if err != nil {
		return err
	}
	return viz.Run(out.result, frameRate)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no swims found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFIELD\tTIME\tZ0\tZF\tFINAL Z\tSTEPS\tSTATUS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%.1f\t%.1f\t%d\t%s\n",
			run.ID,
			run.Field,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Z0,
			run.Zf,
			run.FinalZ,
			run.NSteps,
			run.Status,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	traj, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}
	if traj.Len() == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("field: %s\n", meta.Field)
	fmt.Printf("samples: %d\n\n", traj.Len())

	captions := []string{"x (cm)", "y (cm)", "tx (slope)", "ty (slope)"}
	for varIdx := 0; varIdx < len(captions); varIdx++ {
		data := make([]float64, traj.Len())
		for i := range traj.States {
			if varIdx < len(traj.States[i]) {
				data[i] = traj.States[i][varIdx]
			}
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(captions[varIdx]+" vs step"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	graph := asciigraph.Plot(traj.Hs,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("step size vs step"),
	)
	fmt.Println(graph)

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func svgRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	traj, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	svg := export.TrajectorySVG(traj, 800, 400, "#00ff00")
	if svg == "" {
		return fmt.Errorf("trajectory too short to render")
	}

	if svgOut == "" {
		fmt.Println(svg)
		return nil
	}
	return os.WriteFile(svgOut, []byte(svg), 0644)
}
