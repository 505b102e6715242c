package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vdobler/distplot"
	cfgpkg "github.com/vdobler/distplot/internal/config"
)

// app holds the global flags and the loaded configuration shared by all
// subcommands.
type app struct {
	cfgFile string
	vv      bool
	verbose bool
	quiet   bool

	cfg *cfgpkg.Global
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "distplot",
		Short: "Plot two-feature distributions and report class limits",
		Long: `distplot draws the joint distribution of the first two columns of a CSV
file as a scatter plot with marginal histograms, once for all samples and
once zoomed to a percentile box. It also prints how many samples fall into
each bin of discretized data.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is ~/.distplot/config.yaml)")
	pf.BoolVar(&a.vv, "vv", false, "very verbose: debug output")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "verbose: info output")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "quiet: errors only")

	root.AddCommand(newPlotCmd(a), newLimitsCmd(a), newConfigCmd(a))
	return root
}

// setup installs the logger and loads the configuration.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	level := distplot.LevelFromFlags(a.vv, a.verbose, a.quiet)
	h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	distplot.SetLogger(slog.New(h))

	c, err := cfgpkg.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = c
	distplot.Logger().Debug("config loaded", "file", a.cfgFile)
	return nil
}
