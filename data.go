package distplot

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/mat"
)

// DataFrame is a numeric table: rows are samples, columns are features.
// A DataFrame may have zero rows, e.g. after filtering out every sample.
type DataFrame struct {
	// Name describes the data, used in log messages.
	Name string

	// Names are the optional column names.
	Names []string

	rows, cols int
	data       *mat.Dense // nil if rows or cols is zero
}

// NewDataFrame constructs a data frame from rows. All rows must have the
// same length. The data is copied.
func NewDataFrame(name string, rows [][]float64, names ...string) (*DataFrame, error) {
	df := &DataFrame{Name: name, rows: len(rows)}
	if len(rows) > 0 {
		df.cols = len(rows[0])
	} else {
		df.cols = len(names)
	}
	if len(names) > 0 && len(names) != df.cols {
		return nil, fmt.Errorf("%w: %d names for %d columns", ErrShape, len(names), df.cols)
	}
	df.Names = names

	if df.rows == 0 || df.cols == 0 {
		return df, nil
	}
	raw := make([]float64, 0, df.rows*df.cols)
	for i, row := range rows {
		if len(row) != df.cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShape, i, len(row), df.cols)
		}
		raw = append(raw, row...)
	}
	df.data = mat.NewDense(df.rows, df.cols, raw)
	return df, nil
}

// Dims returns the number of rows and columns.
func (df *DataFrame) Dims() (r, c int) { return df.rows, df.cols }

// At returns the value of feature j of sample i.
func (df *DataFrame) At(i, j int) float64 { return df.data.At(i, j) }

// Column returns a copy of column j.
func (df *DataFrame) Column(j int) []float64 {
	if j < 0 || j >= df.cols {
		panic(fmt.Sprintf("distplot: column %d out of range [0,%d)", j, df.cols))
	}
	if df.rows == 0 {
		return []float64{}
	}
	return mat.Col(nil, j, df.data)
}

// FieldNames returns the column names, generating "x0", "x1", ...
// for unnamed columns.
func (df *DataFrame) FieldNames() []string {
	if len(df.Names) == df.cols {
		return df.Names
	}
	names := make([]string, df.cols)
	for j := range names {
		names[j] = fmt.Sprintf("x%d", j)
	}
	return names
}

// Filter returns a new data frame with the rows i where mask[i] is set.
func (df *DataFrame) Filter(mask []bool) (*DataFrame, error) {
	if len(mask) != df.rows {
		return nil, fmt.Errorf("%w: mask of length %d for %d rows", ErrShape, len(mask), df.rows)
	}
	rows := make([][]float64, 0, len(mask))
	for i, keep := range mask {
		if keep {
			rows = append(rows, mat.Row(nil, i, df.data))
		}
	}
	out, err := NewDataFrame(df.Name, rows, df.Names...)
	if err != nil {
		return nil, err
	}
	out.cols = df.cols
	return out, nil
}

// Print writes df as an aligned table to w.
func (df *DataFrame) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "%s\t\n", strings.Join(df.FieldNames(), "\t"))
	for i := 0; i < df.rows; i++ {
		for j := 0; j < df.cols; j++ {
			fmt.Fprintf(tw, "%g\t", df.At(i, j))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// ReadCSV reads a numeric table. If header is set the first record holds
// the column names. Empty cells and "nan" read as NaN.
func ReadCSV(r io.Reader, name string, header bool) (*DataFrame, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var names []string
	var rows [][]float64
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if header && names == nil {
			names = rec
			continue
		}
		row, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("read %s: record %d: %w", name, line, err)
		}
		rows = append(rows, row)
	}
	return NewDataFrame(name, rows, names...)
}

func parseRecord(rec []string) ([]float64, error) {
	row := make([]float64, len(rec))
	for j, s := range rec {
		s = strings.TrimSpace(s)
		if s == "" {
			row[j] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", j+1, err)
		}
		row[j] = v
	}
	return row, nil
}
