package distplot

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vdobler/distplot/stat"
)

// ClassLimits prints, for every feature of a discretized table, the bin
// intervals and the number of samples coded with each bin index.
type ClassLimits struct {
	// Fixed selects the fixed width layout: edges in 7 characters with
	// two significant digits, counts in 5 characters, "( a, b)" intervals
	// and a blank line after each feature.
	Fixed bool

	// AllBins prints the final bin of each feature too. By default the
	// rows stop one bin short.
	AllBins bool
}

// PrintClassLimits prints the report for the discretized table disc with
// bin edges clims[feature] in the default layout.
func PrintClassLimits(w io.Writer, disc *DataFrame, clims [][]float64) error {
	return ClassLimits{}.Fprint(w, disc, clims)
}

// PrintClassLimits2 is PrintClassLimits in the fixed width layout.
func PrintClassLimits2(w io.Writer, disc *DataFrame, clims [][]float64) error {
	return ClassLimits{Fixed: true}.Fprint(w, disc, clims)
}

// Fprint writes the report to w. Codes in disc which no printed row
// covers are not reported on w; they are logged as a warning.
func (cl ClassLimits) Fprint(w io.Writer, disc *DataFrame, clims [][]float64) error {
	_, m := disc.Dims()
	if len(clims) < m {
		return fmt.Errorf("%w: %d features but limits for %d", ErrClassLimits, m, len(clims))
	}
	for col := 0; col < m; col++ {
		if len(clims[col]) < 2 {
			return fmt.Errorf("%w: feature %d has %d edges, need at least 2",
				ErrClassLimits, col, len(clims[col]))
		}
	}

	var buf bytes.Buffer
	for col := 0; col < m; col++ {
		cl.feature(&buf, col, disc.Column(col), clims[col])
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// lastBin is the exclusive upper bound of the bin indices reported for
// a feature with k edges.
func (cl ClassLimits) lastBin(k int) int {
	if cl.AllBins {
		return k - 1
	}
	return k - 2
}

func (cl ClassLimits) feature(buf *bytes.Buffer, col int, ftr, lmts []float64) {
	fmt.Fprintf(buf, "Feature %d\n", col)
	buf.WriteString("      Interval         Count\n")
	buf.WriteString("----------------------------\n")

	reported := NewFloatSet()
	row := func(i int) {
		cl.row(buf, lmts[i], lmts[i+1], stat.CountEqual(ftr, float64(i)))
		reported.Add(float64(i))
	}
	row(0)
	for i := 1; i < cl.lastBin(len(lmts)); i++ {
		row(i)
	}
	if cl.Fixed {
		buf.WriteString("\n")
	}

	unreported := NewFloatSetFrom(ftr)
	unreported.Remove(reported)
	if len(unreported) > 0 {
		logger.Warn("class limits: codes without a reported interval",
			"feature", col, "codes", unreported.String(), "edges", len(lmts))
	}
}

func (cl ClassLimits) row(buf *bytes.Buffer, lo, hi float64, count int) {
	if cl.Fixed {
		fmt.Fprintf(buf, "( %7s, %7s) |    %5d\n",
			formatSignificant(lo, 2), formatSignificant(hi, 2), count)
		return
	}
	fmt.Fprintf(buf, "( %s, %s] |    %d\n", formatShortest(lo), formatShortest(hi), count)
}

// ReadClassLimits reads one row of bin edges per feature. Rows may have
// different lengths.
func ReadClassLimits(r io.Reader) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var clims [][]float64
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read class limits: %w", err)
		}
		edges := make([]float64, 0, len(rec))
		for j, s := range rec {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("read class limits: feature %d, edge %d: %w", len(clims), j, err)
			}
			edges = append(edges, v)
		}
		clims = append(clims, edges)
	}
	return clims, nil
}
