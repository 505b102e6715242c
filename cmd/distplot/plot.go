package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vdobler/distplot"
)

func newPlotCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot [flags] data.csv",
		Short: "Draw the full and zoomed distribution of the first two columns",
		Example: `  distplot plot --header -o housing.svg housing.csv
  distplot plot --low 1 --high 95 --bins-zoom 30 data.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyPlotFlags(cmd.Flags(), a)
			var dump io.Writer
			if d, _ := cmd.Flags().GetBool("dump"); d {
				dump = cmd.OutOrStdout()
			}
			return runPlot(a, args[0], dump)
		},
	}

	f := cmd.Flags()
	f.String("title", "", "figure title (default is the input file name)")
	f.Float64("width", 0, "figure width in inches")
	f.Float64("height", 0, "figure height in inches")
	f.Float64("low", 0, "lower percentile of the zoomed view")
	f.Float64("high", 0, "upper percentile of the zoomed view")
	f.Int("bins-full", 0, "histogram bins of the full view")
	f.Int("bins-zoom", 0, "histogram bins of the zoomed view")
	f.Bool("header", false, "first CSV line holds column names")
	f.Bool("dump", false, "print the data read as a table before plotting")
	f.StringP("output", "o", "", "output file; the extension selects the format (png, svg, pdf, eps, jpg, tif)")
	return cmd
}

// applyPlotFlags overrides the configuration with the flags given on the
// command line.
func applyPlotFlags(f *pflag.FlagSet, a *app) {
	c := a.cfg
	if f.Changed("title") {
		c.Title, _ = f.GetString("title")
	}
	if f.Changed("width") {
		c.Width, _ = f.GetFloat64("width")
	}
	if f.Changed("height") {
		c.Height, _ = f.GetFloat64("height")
	}
	if f.Changed("low") {
		c.Low, _ = f.GetFloat64("low")
	}
	if f.Changed("high") {
		c.High, _ = f.GetFloat64("high")
	}
	if f.Changed("bins-full") {
		c.BinsFull, _ = f.GetInt("bins-full")
	}
	if f.Changed("bins-zoom") {
		c.BinsZoom, _ = f.GetInt("bins-zoom")
	}
	if f.Changed("header") {
		c.Header, _ = f.GetBool("header")
	}
	if f.Changed("output") {
		c.Output, _ = f.GetString("output")
	}
}

// runPlot plots the data in path. A non-nil dump receives the data as a
// table.
func runPlot(a *app, path string, dump io.Writer) error {
	c := a.cfg
	X, err := readData(path, c.Header)
	if err != nil {
		return err
	}
	if dump != nil {
		if err := X.Print(dump); err != nil {
			return err
		}
	}

	title := c.Title
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	opts := c.ZoomOptions()
	fig, err := distplot.MakePlot(title, X, &opts)
	if err != nil {
		return fmt.Errorf("plot %s: %w", path, err)
	}
	if err := fig.Save(c.Output); err != nil {
		return err
	}
	distplot.Logger().Info("figure written", "input", path, "output", c.Output)
	return nil
}

func readData(path string, header bool) (*distplot.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return distplot.ReadCSV(f, name, header)
}
