package distplot

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discretized(t *testing.T, codes ...[]float64) *DataFrame {
	t.Helper()
	rows := make([][]float64, len(codes[0]))
	for i := range rows {
		rows[i] = make([]float64, len(codes))
		for j := range codes {
			rows[i][j] = codes[j][i]
		}
	}
	df, err := NewDataFrame("codes", rows)
	require.NoError(t, err)
	return df
}

func TestPrintClassLimits(t *testing.T) {
	disc := discretized(t, []float64{0, 0, 1, 2, 2, 2})
	clims := [][]float64{{0, 1, 2, 3}}

	var buf bytes.Buffer
	require.NoError(t, PrintClassLimits(&buf, disc, clims))
	want := `Feature 0
      Interval         Count
----------------------------
( 0.0, 1.0] |    2
( 1.0, 2.0] |    1
`
	assert.Equal(t, want, buf.String())
}

func TestPrintClassLimits2(t *testing.T) {
	disc := discretized(t, []float64{0, 0, 1, 2, 2, 2})
	clims := [][]float64{{0, 1, 2, 3}}

	var buf bytes.Buffer
	require.NoError(t, PrintClassLimits2(&buf, disc, clims))
	want := `Feature 0
      Interval         Count
----------------------------
(     0.0,     1.0) |        2
(     1.0,     2.0) |        1

`
	assert.Equal(t, want, buf.String())
}

func TestClassLimitsSeveralFeatures(t *testing.T) {
	disc := discretized(t,
		[]float64{0, 1, 1, 2, 3},
		[]float64{0, 0, 0, 0, 1},
	)
	clims := [][]float64{
		{0.5, 1.25, 2.5, 10, 120},
		{-3, 0.0001},
	}

	var buf bytes.Buffer
	require.NoError(t, PrintClassLimits2(&buf, disc, clims))
	want := `Feature 0
      Interval         Count
----------------------------
(     0.5,     1.2) |        1
(     1.2,     2.5) |        2
(     2.5,   1e+01) |        1

Feature 1
      Interval         Count
----------------------------
(    -3.0,  0.0001) |        4

`
	assert.Equal(t, want, buf.String())
}

func TestClassLimitsAllBins(t *testing.T) {
	disc := discretized(t, []float64{0, 0, 1, 2, 2, 2})
	clims := [][]float64{{0, 1, 2, 3}}

	var buf bytes.Buffer
	cl := ClassLimits{AllBins: true}
	require.NoError(t, cl.Fprint(&buf, disc, clims))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "( 2.0, 3.0] |    3", lines[5])
}

func TestClassLimitsIdempotent(t *testing.T) {
	disc := discretized(t, []float64{0, 1, 1, 1, 0}, []float64{1, 1, 0, 0, 2})
	clims := [][]float64{{0, 0.5, 1}, {0, 1, 2, 3}}

	var a, b bytes.Buffer
	require.NoError(t, PrintClassLimits(&a, disc, clims))
	require.NoError(t, PrintClassLimits(&b, disc, clims))
	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, []float64{0, 1, 1, 1, 0}, disc.Column(0))
}

func TestClassLimitsTwoEdges(t *testing.T) {
	disc := discretized(t, []float64{0, 0, 0})
	var buf bytes.Buffer
	require.NoError(t, PrintClassLimits(&buf, disc, [][]float64{{-1.5, 2}}))
	assert.True(t, strings.HasSuffix(buf.String(), "( -1.5, 2.0] |    3\n"), buf.String())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestClassLimitsErrors(t *testing.T) {
	disc := discretized(t, []float64{0, 1}, []float64{0, 1})

	var buf bytes.Buffer
	err := PrintClassLimits(&buf, disc, [][]float64{{0, 1, 2}})
	assert.ErrorIs(t, err, ErrClassLimits)
	assert.Zero(t, buf.Len(), "nothing may be written on error")

	err = PrintClassLimits2(&buf, disc, [][]float64{{0, 1, 2}, {0}})
	assert.ErrorIs(t, err, ErrClassLimits)
	assert.Zero(t, buf.Len())

	err = PrintClassLimits(failingWriter{}, disc, [][]float64{{0, 1, 2}, {0, 1, 2}})
	assert.EqualError(t, err, "disk full")
}

func TestReadClassLimits(t *testing.T) {
	in := `# edges per feature
0.5, 1.25, 2.5, 10
-3,0.0001

1,2,3,
`
	clims, err := ReadClassLimits(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{0.5, 1.25, 2.5, 10},
		{-3, 0.0001},
		{1, 2, 3},
	}, clims)

	_, err = ReadClassLimits(strings.NewReader("1,two,3\n"))
	assert.ErrorContains(t, err, "feature 0, edge 1")
}

func TestClassLimitsWarnsAboutUnreportedCodes(t *testing.T) {
	disc := discretized(t, []float64{0, 0, 1, 2, 2, 2})
	clims := [][]float64{{0, 1, 2, 3}}

	log := captureLog(t)
	require.NoError(t, PrintClassLimits(new(bytes.Buffer), disc, clims))
	assert.Contains(t, log.String(), "level=WARN")
	assert.Contains(t, log.String(), "feature=0")
	assert.Contains(t, log.String(), "codes=[2]")

	log.Reset()
	require.NoError(t, ClassLimits{AllBins: true}.Fprint(new(bytes.Buffer), disc, clims))
	assert.Empty(t, log.String())
}
