package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/mersenne/internal/analysis"
	"github.com/san-kum/mersenne/internal/automation"
	"github.com/san-kum/mersenne/internal/config"
	"github.com/san-kum/mersenne/internal/export"
	"github.com/san-kum/mersenne/internal/integrators"
	"github.com/san-kum/mersenne/internal/mersenne"
	"github.com/san-kum/mersenne/internal/report"
	"github.com/san-kum/mersenne/internal/tui"
	"github.com/san-kum/mersenne/internal/units"
	"github.com/spf13/cobra"
)

var (
	// string parameters, one flag each
	paramValues = map[string]*string{}
	paramFlags  = []struct {
		name, short, usage string
	}{
		{"note", "n", "note of the string (a, c#, bb...)"},
		{"octave", "o", "octave of the note (default 4)"},
		{"base_frequency", "b", "frequency of A4 (Hz by default)"},
		{"diameter", "d", "diameter of the string (m by default)"},
		{"radius", "r", "radius of the string (m by default)"},
		{"volumic_mass", "v", "volumic mass of the string material (kg/m³ by default)"},
		{"frequency", "f", "frequency (Hz by default)"},
		{"tension", "t", "tension of the string (N by default)"},
		{"linear_mass", "m", "linear mass of the string (kg/m by default)"},
		{"length", "l", "vibrating length of the string (m by default)"},
	}

	unitOverrides []string
	jsonOutput    bool
	jsonInput     string
	configFile    string
	material      string

	// sweep
	sweepVary  string
	sweepSolve string
	sweepFrom  string
	sweepTo    string
	sweepSteps int
	sweepSVG   string

	// pluck
	integrator string
	points     int
	cycles     int

	forceWrite bool
)

// main registers the commands and exits with status 1 on any error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "mersenne",
		Short: "solve Mersenne's law for a vibrating string",
		Long: `Give three of frequency (or note), tension, linear mass (or diameter and
volumic mass) and length; mersenne computes the fourth.`,
		Example:       "  mersenne -n e -o 2 -t 7.5kgf -d 1.1mm --material steel",
		Args:          cobra.NoArgs,
		RunE:          solve,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	bindParamFlags(rootCmd)
	rootCmd.Flags().StringArrayVar(&unitOverrides, "unit", nil, "display unit override, param:unit (repeatable)")
	rootCmd.Flags().BoolVar(&jsonOutput, "json-output", false, "print the result as JSON")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "plot one parameter while another varies",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	bindParamFlags(sweepCmd)
	sweepCmd.Flags().StringArrayVar(&unitOverrides, "unit", nil, "display unit override, param:unit (repeatable)")
	sweepCmd.Flags().StringVar(&sweepVary, "vary", "length", "primary to vary")
	sweepCmd.Flags().StringVar(&sweepSolve, "solve", "", "primary to plot (default: the one that was missing)")
	sweepCmd.Flags().StringVar(&sweepFrom, "from", "", "start of the range (default: half the resolved value)")
	sweepCmd.Flags().StringVar(&sweepTo, "to", "", "end of the range (default: the resolved value)")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 0, "number of points")
	sweepCmd.Flags().StringVar(&sweepSVG, "svg", "", "also write the plot as SVG to this file")
	sweepCmd.Flags().BoolVar(&jsonOutput, "json-output", false, "print the points as JSON instead of plotting")

	pluckCmd := &cobra.Command{
		Use:   "pluck",
		Short: "simulate the string and measure its fundamental",
		Args:  cobra.NoArgs,
		RunE:  runPluck,
	}
	bindParamFlags(pluckCmd)
	pluckCmd.Flags().StringVar(&integrator, "integrator", "", "integrator (euler, leapfrog, rk4, verlet)")
	pluckCmd.Flags().IntVar(&points, "points", 0, "grid points along the string")
	pluckCmd.Flags().IntVar(&cycles, "cycles", 0, "simulated fundamental periods")

	noteCmd := &cobra.Command{
		Use:   "note [note|frequency]",
		Short: "convert a note to its frequency, or a frequency to the nearest note",
		Args:  cobra.ExactArgs(1),
		RunE:  runNote,
	}
	noteCmd.Flags().StringVarP(paramValue("octave"), "octave", "o", "", "octave of the note (default 4)")
	noteCmd.Flags().StringVarP(paramValue("base_frequency"), flagName("base_frequency"), "b", "", "frequency of A4")

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "resolve a set of strings described in a YAML scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	batchCmd.Flags().StringArrayVar(&unitOverrides, "unit", nil, "display unit override, param:unit (repeatable)")

	materialsCmd := &cobra.Command{
		Use:   "materials",
		Short: "list known string materials",
		Args:  cobra.NoArgs,
		RunE:  listMaterials,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			raw, err := rawInputs(cmd, cfg)
			if err != nil {
				return err
			}
			return tui.Run(cfg, raw)
		},
	}
	bindParamFlags(tuiCmd)

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage the configuration file",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configInitCmd.Flags().BoolVar(&forceWrite, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(sweepCmd, pluckCmd, noteCmd, batchCmd, materialsCmd, tuiCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, report.Error.Render("error: ")+err.Error())
		os.Exit(1)
	}
}

func paramValue(name string) *string {
	if v, ok := paramValues[name]; ok {
		return v
	}
	v := new(string)
	paramValues[name] = v
	return v
}

func flagName(param string) string {
	return strings.ReplaceAll(param, "_", "-")
}

func bindParamFlags(cmd *cobra.Command) {
	for _, f := range paramFlags {
		cmd.Flags().StringVarP(paramValue(f.name), flagName(f.name), f.short, "", f.usage)
	}
	cmd.Flags().StringVar(&jsonInput, "json-input", "", "read parameters from a JSON file (- for stdin)")
	cmd.Flags().StringVar(&material, "material", "", "take the volumic mass of a known material")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if cmd.Flags().Lookup("unit") == nil {
		return cfg, nil
	}
	for _, o := range unitOverrides {
		param, unit, ok := strings.Cut(o, ":")
		if !ok {
			return nil, fmt.Errorf("--unit %q: expected param:unit", o)
		}
		param = strings.ReplaceAll(param, "-", "_")
		cfg.DisplayUnits[param] = unit
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("--unit: %w", err)
	}
	return cfg, nil
}

// rawInputs merges JSON input, flags (which win) and the material preset.
func rawInputs(cmd *cobra.Command, cfg *config.Config) (report.Raw, error) {
	raw := report.Raw{}
	if jsonInput != "" {
		var r io.Reader = os.Stdin
		if jsonInput != "-" {
			f, err := os.Open(jsonInput)
			if err != nil {
				return nil, err
			}
			defer f.Close()
			r = f
		}
		var err error
		if raw, err = report.ReadJSON(r); err != nil {
			return nil, err
		}
	}

	for _, f := range paramFlags {
		if fl := cmd.Flags().Lookup(flagName(f.name)); fl != nil && fl.Changed {
			raw[f.name] = *paramValues[f.name]
		}
	}

	if material != "" {
		if _, ok := raw["volumic_mass"]; !ok {
			v, err := cfg.VolumicMass(material)
			if err != nil {
				return nil, err
			}
			raw["volumic_mass"] = strconv.FormatFloat(v, 'g', -1, 64)
		}
	}
	return raw, nil
}

// resolve decodes and completes the inputs. A set with nothing to compute is
// returned with a nil computed primary and no error.
func resolve(cmd *cobra.Command, cfg *config.Config) (*mersenne.ParameterSet, *mersenne.Primary, error) {
	raw, err := rawInputs(cmd, cfg)
	if err != nil {
		return nil, nil, err
	}
	ps, err := report.Decode(raw)
	if err != nil {
		return nil, nil, err
	}

	computed, err := cfg.Resolver().Resolve(ps)
	if errors.Is(err, mersenne.ErrNothingToCompute) {
		fmt.Fprintln(os.Stderr, report.Warning.Render("warning: ")+"nothing to compute, all four primaries were given")
		return ps, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return ps, &computed, nil
}

func solve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ps, computed, err := resolve(cmd, cfg)
	if err != nil {
		return err
	}

	if jsonOutput {
		return report.WriteJSON(os.Stdout, ps, cfg.DisplayUnits)
	}
	r := &report.Report{
		Set:           ps,
		Units:         cfg.DisplayUnits,
		Computed:      computed,
		BaseFrequency: cfg.Defaults.BaseFrequency,
	}
	return r.WriteText(os.Stdout)
}

func parsePrimary(name string) (mersenne.Primary, error) {
	p, ok := mersenne.ParsePrimary(strings.ReplaceAll(name, "-", "_"))
	if !ok {
		return 0, fmt.Errorf("unknown primary: %s (frequency, tension, linear_mass, length)", name)
	}
	return p, nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ps, computed, err := resolve(cmd, cfg)
	if err != nil {
		return err
	}

	vary, err := parsePrimary(sweepVary)
	if err != nil {
		return err
	}
	target := mersenne.PrimaryFrequency
	switch {
	case sweepSolve != "":
		if target, err = parsePrimary(sweepSolve); err != nil {
			return err
		}
	case computed != nil && *computed != vary:
		target = *computed
	case vary == mersenne.PrimaryFrequency:
		target = mersenne.PrimaryLength
	}

	current, _ := ps.Get(vary)
	from, to := current/2, current
	si := units.ParamUnits[vary.String()]
	if sweepFrom != "" {
		if from, err = units.Parse(sweepFrom, si); err != nil {
			return fmt.Errorf("--from: %w", err)
		}
	}
	if sweepTo != "" {
		if to, err = units.Parse(sweepTo, si); err != nil {
			return fmt.Errorf("--to: %w", err)
		}
	}
	steps := sweepSteps
	if steps == 0 {
		steps = cfg.Sweep.Steps
	}

	pts, err := analysis.Sweep(ps, vary, target, from, to, steps)
	if err != nil {
		return err
	}

	if jsonOutput {
		return export.WriteJSON(os.Stdout, export.NewSweepData(vary.String(), target.String(), si, units.ParamUnits[target.String()], pts))
	}

	ys := analysis.Ys(pts)
	targetUnit := displayUnit(cfg, target, ys)
	yScale, err := units.Convert(1, units.ParamUnits[target.String()], targetUnit)
	if err != nil {
		return err
	}
	data := make([]float64, len(ys))
	for i, y := range ys {
		data[i] = y * yScale
	}

	fromS, _ := units.FormatParam(vary.String(), from, cfg.DisplayUnits[vary.String()])
	toS, _ := units.FormatParam(vary.String(), to, cfg.DisplayUnits[vary.String()])
	graph := asciigraph.Plot(data,
		asciigraph.Height(cfg.Sweep.Height),
		asciigraph.Width(cfg.Sweep.Width),
		asciigraph.Caption(fmt.Sprintf("%s (%s) vs %s from %s to %s", target, targetUnit, vary, fromS, toS)),
	)
	fmt.Println(graph)

	if sweepSVG == "" {
		return nil
	}
	varyUnit := displayUnit(cfg, vary, []float64{from, to})
	xScale, err := units.Convert(1, si, varyUnit)
	if err != nil {
		return err
	}
	plot := export.DefaultPlot()
	plot.XScale, plot.YScale = xScale, yScale
	plot.XLabel = fmt.Sprintf("%s (%s)", vary, varyUnit)
	plot.YLabel = fmt.Sprintf("%s (%s)", target, targetUnit)
	if err := export.SaveFile(sweepSVG, func(w io.Writer) error {
		return export.WriteSVG(w, pts, plot)
	}); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", sweepSVG)
	return nil
}

// displayUnit resolves Auto against the middle of the plotted values.
func displayUnit(cfg *config.Config, p mersenne.Primary, ys []float64) string {
	si := units.ParamUnits[p.String()]
	u := cfg.DisplayUnits[p.String()]
	switch u {
	case "":
		return si
	case units.Auto:
		if c, err := units.Compact(ys[len(ys)/2], si); err == nil {
			return c
		}
		return si
	}
	return u
}

func runPluck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ps, _, err := resolve(cmd, cfg)
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("integrator") {
		integrator = cfg.Pluck.Integrator
	}
	if !cmd.Flags().Changed("points") {
		points = cfg.Pluck.Points
	}
	if !cmd.Flags().Changed("cycles") {
		cycles = cfg.Pluck.Cycles
	}
	integ, err := integrators.Get(integrator)
	if err != nil {
		return err
	}

	pc := analysis.DefaultPluckConfig()
	pc.Points = points
	pc.Cycles = cycles

	fmt.Printf("plucking %d-point string with %s...\n", points, integrator)
	res, err := analysis.Pluck(context.Background(), ps, integ, pc)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "mersenne's law\t%s Hz\n", units.FormatNumber(res.Law))
	fmt.Fprintf(w, "ideal string\t%s Hz\n", units.FormatNumber(res.Predicted))
	fmt.Fprintf(w, "simulated\t%s Hz\n", units.FormatNumber(res.Simulated))
	fmt.Fprintf(w, "deviation\t%.3f%%\n", res.Deviation*100)
	fmt.Fprintf(w, "steps\t%d (dt %.3g s)\n", res.Steps, res.Dt)
	fmt.Fprintf(w, "energy drift\t%.2e (max %.2e)\n", res.EnergyDrift, res.MaxEnergyDrift)
	fmt.Fprintf(w, "peak displacement\t%s m\n", units.FormatNumber(res.PeakDisplacement))
	if res.Stability < 1 {
		fmt.Fprintf(w, "%s\t%.1f%% of samples out of bounds\n", report.Warning.Render("unstable"), (1-res.Stability)*100)
	}
	return w.Flush()
}

func runNote(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	octave := cfg.Defaults.Octave
	if cmd.Flags().Changed("octave") {
		if octave, err = strconv.Atoi(*paramValue("octave")); err != nil {
			return fmt.Errorf("octave: %q is not an integer", *paramValue("octave"))
		}
	}
	base := cfg.Defaults.BaseFrequency
	if cmd.Flags().Changed("base-frequency") {
		if base, err = units.Parse(*paramValue("base_frequency"), units.Hertz); err != nil {
			return fmt.Errorf("base frequency: %w", err)
		}
	}

	f, err := mersenne.NoteToFrequency(args[0], octave, base)
	if err == nil {
		fmt.Printf("%s%d = %s Hz\n", args[0], octave, units.FormatNumber(f))
		return nil
	}
	if !errors.Is(err, mersenne.ErrUnknownNote) {
		return err
	}

	freq, perr := units.Parse(args[0], units.Hertz)
	if perr != nil {
		return err
	}
	p, err := mersenne.NearestNote(freq, base)
	if err != nil {
		return err
	}
	exact, _ := mersenne.NoteToFrequency(p.Note, p.Octave, base)
	fmt.Printf("%s Hz ≈ %s%d (%s Hz, %+.1f cents)\n", units.FormatNumber(freq), p.Note, p.Octave, units.FormatNumber(exact), p.Cents)
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}
	outcomes, err := automation.RunScenario(sc, cfg)
	if err != nil {
		return err
	}

	if sc.Name != "" {
		fmt.Println(report.Title.Render(sc.Name))
	}
	if sc.Description != "" {
		fmt.Println(report.Subtle.Render(sc.Description))
	}

	columns := []string{"frequency", "tension", "length", "linear_mass", "diameter"}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "STRING")
	for _, c := range columns {
		fmt.Fprintf(w, "\t%s", strings.ToUpper(strings.ReplaceAll(c, "_", " ")))
	}
	fmt.Fprintln(w)

	for _, o := range outcomes {
		fmt.Fprint(w, o.Name)
		for _, c := range columns {
			cell := "-"
			if v, ok := report.FloatValue(o.Set, c); ok {
				if cell, err = units.FormatParam(c, v, cfg.DisplayUnits[c]); err != nil {
					return err
				}
				if o.Computed != nil && o.Computed.String() == c {
					cell += " *"
				}
			}
			fmt.Fprintf(w, "\t%s", cell)
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	total, err := units.FormatParam("tension", automation.TotalTension(outcomes), cfg.DisplayUnits["tension"])
	if err != nil {
		return err
	}
	fmt.Printf("\ntotal tension: %s (* computed)\n", total)
	return nil
}

func listMaterials(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVOLUMIC MASS\tDESCRIPTION")
	for _, name := range cfg.ListMaterials() {
		v, err := cfg.VolumicMass(name)
		if err != nil {
			return err
		}
		desc := "user defined"
		if m := config.GetMaterial(name); m != nil {
			desc = m.Description
			if _, ok := cfg.Materials[name]; ok {
				desc += " (overridden)"
			}
		}
		fmt.Fprintf(w, "%s\t%s kg/m³\t%s\n", name, units.FormatNumber(v), desc)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "mersenne.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !forceWrite {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
