package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vdobler/distplot"
)

func newLimitsCmd(a *app) *cobra.Command {
	var fixed, allBins, header bool
	cmd := &cobra.Command{
		Use:   "limits [flags] codes.csv clims.csv",
		Short: "Print the bin intervals and sample counts of discretized data",
		Long: `limits reads a table of bin codes (one column per feature) and a table of
bin edges (one row per feature, rows may differ in length) and prints, for
every feature, each bin's interval and the number of samples coded with it.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cl := a.cfg.ClassLimits()
			f := cmd.Flags()
			if f.Changed("fixed") {
				cl.Fixed = fixed
			}
			if f.Changed("all-bins") {
				cl.AllBins = allBins
			}
			if !f.Changed("header") {
				header = a.cfg.Header
			}

			disc, err := readData(args[0], header)
			if err != nil {
				return err
			}
			clims, err := readClassLimits(args[1])
			if err != nil {
				return err
			}
			if err := cl.Fprint(cmd.OutOrStdout(), disc, clims); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVar(&fixed, "fixed", false, "fixed width layout with two significant digits")
	f.BoolVar(&allBins, "all-bins", false, "also print the last bin of each feature")
	f.BoolVar(&header, "header", false, "first line of codes.csv holds column names")
	return cmd
}

func readClassLimits(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	clims, err := distplot.ReadClassLimits(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return clims, nil
}
