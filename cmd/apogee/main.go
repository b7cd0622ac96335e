package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/apogee/internal/config"
	"github.com/san-kum/apogee/internal/experiment"
	"github.com/san-kum/apogee/internal/forces"
	"github.com/san-kum/apogee/internal/ivp"
	"github.com/san-kum/apogee/internal/storage"
	"github.com/san-kum/apogee/internal/viz"
)

var (
	dataDir    string
	horizon    float64
	samples    int
	tolerance  float64
	integrator string
	v0         float64
	mass       float64
	dragCoeff  float64
	area       float64
	density    float64
	gravity    float64
	viscosity  float64
	length     float64
	configFile string
	preset     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "apogee",
		Short: "projectile apogee estimation under drag and viscous damping",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".apogee", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "run one case and report its apogee",
		Args:  cobra.ExactArgs(1),
		RunE:  runCase,
	}
	addPhysicsFlags(runCmd)

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "run both cases and report the damping effect",
		RunE:  compareCases,
	}
	addPhysicsFlags(compareCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "watch the ascent in real time",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addPhysicsFlags(liveCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, compareCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addPhysicsFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&horizon, "time", config.DefaultHorizon, "integration horizon (s)")
	cmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "sample count")
	cmd.Flags().Float64Var(&tolerance, "tol", ivp.DefaultTolerance, "adaptive tolerance")
	cmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator")
	cmd.Flags().Float64Var(&v0, "v0", config.DefaultV0, "launch velocity (m/s)")
	cmd.Flags().Float64Var(&mass, "mass", config.DefaultMass, "mass (kg)")
	cmd.Flags().Float64Var(&dragCoeff, "cd", config.DefaultDragCoeff, "drag coefficient")
	cmd.Flags().Float64Var(&area, "area", config.DefaultArea, "reference area (m^2)")
	cmd.Flags().Float64Var(&density, "rho", config.DefaultDensity, "fluid density (kg/m^3)")
	cmd.Flags().Float64Var(&gravity, "gravity", config.DefaultGravity, "gravitational acceleration (m/s^2)")
	cmd.Flags().Float64Var(&viscosity, "mu", config.DefaultViscosity, "dynamic viscosity (Pa*s)")
	cmd.Flags().Float64Var(&length, "length", config.DefaultLength, "characteristic length (m)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig applies preset, config file, and flag values in increasing
// precedence, mirroring the behaviour of the run flags.
func resolveConfig(cmd *cobra.Command, model string) error {
	if preset != "" {
		cfg := config.GetPreset(model, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
		applyConfig(cmd, cfg)
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyConfig(cmd, cfg)
	}

	return nil
}

func applyConfig(cmd *cobra.Command, cfg *config.Config) {
	if !cmd.Flags().Changed("time") {
		horizon = cfg.Horizon
	}
	if !cmd.Flags().Changed("samples") {
		samples = cfg.Samples
	}
	if !cmd.Flags().Changed("integrator") && cfg.Integrator != "" {
		integrator = cfg.Integrator
	}
	if !cmd.Flags().Changed("v0") {
		v0 = cfg.Projectile.V0
	}
	if !cmd.Flags().Changed("mass") {
		mass = cfg.Projectile.Mass
	}
	if !cmd.Flags().Changed("cd") {
		dragCoeff = cfg.Projectile.DragCoeff
	}
	if !cmd.Flags().Changed("area") {
		area = cfg.Projectile.Area
	}
	if !cmd.Flags().Changed("rho") {
		density = cfg.Projectile.Density
	}
	if !cmd.Flags().Changed("gravity") {
		gravity = cfg.Projectile.Gravity
	}
	if !cmd.Flags().Changed("mu") && cfg.Projectile.Viscosity != 0 {
		viscosity = cfg.Projectile.Viscosity
	}
	if !cmd.Flags().Changed("length") && cfg.Projectile.Length != 0 {
		length = cfg.Projectile.Length
	}
}

func projectileFromFlags() forces.Projectile {
	return forces.Projectile{
		Gravity:   gravity,
		V0:        v0,
		Mass:      mass,
		DragCoeff: dragCoeff,
		Area:      area,
		Density:   density,
		Viscosity: viscosity,
		Length:    length,
	}
}

func solverConfig() ivp.Config {
	return ivp.Config{
		Horizon:   horizon,
		Samples:   samples,
		Tolerance: tolerance,
	}
}

func runCase(cmd *cobra.Command, args []string) error {
	modelName := args[0]

	if err := resolveConfig(cmd, modelName); err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	reg := experiment.NewRegistry()

	model, err := reg.GetModel(modelName, projectileFromFlags())
	if err != nil {
		return err
	}
	integ, err := reg.GetIntegrator(integrator)
	if err != nil {
		return err
	}

	c := &experiment.Case{
		Model:      model,
		Integrator: integ,
		Config:     solverConfig(),
		Metrics:    reg.DefaultMetrics(model),
	}

	fmt.Printf("running %s case...\n", modelName)
	start := time.Now()

	out, err := c.Run(context.Background())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(integrator, c.Config, out)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n\n", runID)
	fmt.Println(viz.Summary(out))

	return nil
}

func compareCases(cmd *cobra.Command, args []string) error {
	if err := resolveConfig(cmd, "viscous"); err != nil {
		return err
	}

	reg := experiment.NewRegistry()

	cmpResult, err := experiment.Compare(context.Background(), reg, integrator, projectileFromFlags(), solverConfig())
	if err != nil {
		return err
	}

	fmt.Println(viz.ComparisonSummary(cmpResult))
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
	fmt.Fprintln(w, "ID\tMODEL\tTIME\tINTEG\tAPOGEE\tCROSSING")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2fm\t%.3fs\n",
			run.ID,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Integrator,
			run.Apogee,
			run.CrossingTime,
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

	tr, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("model: %s\n", meta.Model)
	fmt.Printf("samples: %d\n\n", tr.Len())

	fmt.Println(viz.PlotVelocity(tr, viz.DefaultPlotWidth, viz.DefaultPlotHeight))
	fmt.Println()
	fmt.Println(viz.PlotAltitude(tr, viz.DefaultPlotWidth, viz.DefaultPlotHeight))

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return st.ExportJSON(enc, args[0])
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	tr, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "velocity"}); err != nil {
		return err
	}
	for i := range tr.Times {
		row := []string{
			strconv.FormatFloat(tr.Times[i], 'f', 6, 64),
			strconv.FormatFloat(tr.Vels[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	modelName := args[0]

	if err := resolveConfig(cmd, modelName); err != nil {
		return err
	}

	reg := experiment.NewRegistry()

	model, err := reg.GetModel(modelName, projectileFromFlags())
	if err != nil {
		return err
	}
	if err := model.Validate(); err != nil {
		return err
	}
	integ, err := reg.GetIntegrator(integrator)
	if err != nil {
		return err
	}

	cfg := solverConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	dt := cfg.Horizon / float64(cfg.Samples-1)
	m := viz.NewLive(model, integ, dt)

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
