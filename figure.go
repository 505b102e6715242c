package distplot

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	// Output formats for Figure.WriterTo.
	_ "gonum.org/v1/plot/vg/vgeps"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"
)

// Size is the physical size of a figure.
type Size struct {
	Width, Height vg.Length
}

// DefaultSize is 16 x 6 inches.
var DefaultSize = Size{Width: 16 * vg.Inch, Height: 6 * vg.Inch}

// Rect is a rectangle in fractional figure coordinates: (0,0) is the lower
// left and (1,1) the upper right corner of the figure.
type Rect struct {
	Left, Bottom, Width, Height float64
}

// -------------------------------------------------------------------------
// Viewport

// Viewport is a rectangular region of a canvas.
type Viewport struct {
	X0, Y0        vg.Length
	Width, Height vg.Length
	Canvas        vg.Canvas
}

// ViewportOf returns the viewport covering all of c.
func ViewportOf(c draw.Canvas) Viewport {
	return Viewport{
		X0:     c.Min.X,
		Y0:     c.Min.Y,
		Width:  c.Max.X - c.Min.X,
		Height: c.Max.Y - c.Min.Y,
		Canvas: c.Canvas,
	}
}

// X converts the fraction x of the viewport's width to canvas coordinates.
func (vp Viewport) X(x float64) vg.Length { return vp.X0 + vg.Length(x)*vp.Width }

// Y converts the fraction y of the viewport's height to canvas coordinates.
func (vp Viewport) Y(y float64) vg.Length { return vp.Y0 + vg.Length(y)*vp.Height }

// SubViewport returns the part r of vp.
func SubViewport(vp Viewport, r Rect) Viewport {
	return Viewport{
		X0:     vp.X(r.Left),
		Y0:     vp.Y(r.Bottom),
		Width:  vg.Length(r.Width) * vp.Width,
		Height: vg.Length(r.Height) * vp.Height,
		Canvas: vp.Canvas,
	}
}

// DrawCanvas returns a gonum drawing canvas restricted to vp.
func (vp Viewport) DrawCanvas() draw.Canvas {
	return draw.Canvas{
		Canvas: vp.Canvas,
		Rectangle: vg.Rectangle{
			Min: vg.Point{X: vp.X0, Y: vp.Y0},
			Max: vg.Point{X: vp.X0 + vp.Width, Y: vp.Y0 + vp.Height},
		},
	}
}

func (vp Viewport) String() string {
	return fmt.Sprintf("Viewport(%.2fin,%.2fin %.2fin x %.2fin)",
		inches(vp.X0), inches(vp.Y0), inches(vp.Width), inches(vp.Height))
}

func inches(l vg.Length) float64 { return float64(l / vg.Inch) }

// -------------------------------------------------------------------------
// Axes

// Axes is one drawing surface of a figure: a gonum plot placed at Rect.
type Axes struct {
	Name string
	Rect Rect
	Plot *plot.Plot

	// ShareX and ShareY, if set, align the data area of the surface with
	// the data area of another surface along x or y when drawn.
	ShareX, ShareY *Axes

	plotters []plot.Plotter
}

func newAxes(name string, r Rect) *Axes {
	return &Axes{Name: name, Rect: r, Plot: plot.New()}
}

// Add adds plotters to the surface.
func (a *Axes) Add(ps ...plot.Plotter) {
	a.Plot.Add(ps...)
	a.plotters = append(a.plotters, ps...)
}

// Plotters returns the plotters added so far.
func (a *Axes) Plotters() []plot.Plotter { return a.plotters }

// Scatter returns the first scatter plotter of a, or nil.
func (a *Axes) Scatter() *plotter.Scatter {
	for _, p := range a.plotters {
		if s, ok := p.(*plotter.Scatter); ok {
			return s
		}
	}
	return nil
}

// Canvas returns the area of the figure viewport a is drawn into: its
// Rect, stretched along shared axes so that the data areas line up.
func (a *Axes) Canvas(figure Viewport) draw.Canvas {
	c := SubViewport(figure, a.Rect).DrawCanvas()
	if a.ShareX == nil && a.ShareY == nil {
		return c
	}
	dc := a.Plot.DataCanvas(c)
	if a.ShareX != nil {
		target := a.ShareX.DataCanvas(figure)
		c.Min.X, c.Max.X = target.Min.X-(dc.Min.X-c.Min.X), target.Max.X+(c.Max.X-dc.Max.X)
	}
	if a.ShareY != nil {
		target := a.ShareY.DataCanvas(figure)
		c.Min.Y, c.Max.Y = target.Min.Y-(dc.Min.Y-c.Min.Y), target.Max.Y+(c.Max.Y-dc.Max.Y)
	}
	return c
}

// DataCanvas returns the area of the figure viewport holding a's data.
func (a *Axes) DataCanvas(figure Viewport) draw.Canvas {
	return a.Plot.DataCanvas(a.Canvas(figure))
}

// Draw draws a into its part of the figure viewport.
func (a *Axes) Draw(figure Viewport) {
	a.Plot.Draw(a.Canvas(figure))
}

// AxesGroup is a scatter surface with the histograms of its y and x data.
type AxesGroup struct {
	Scatter *Axes
	HistY   *Axes
	HistX   *Axes
}

// All returns the surfaces in the order scatter, y-histogram, x-histogram.
func (g AxesGroup) All() []*Axes {
	return []*Axes{g.Scatter, g.HistY, g.HistX}
}

// -------------------------------------------------------------------------
// Figure

// Figure is a titled canvas holding several drawing surfaces. Nothing is
// rendered until Draw, WriterTo or Save is called.
type Figure struct {
	Title      string
	Size       Size
	Background color.Color
	Axes       []*Axes
}

// NewFigure returns an empty figure. A zero size means DefaultSize.
func NewFigure(title string, size Size) *Figure {
	if size.Width <= 0 || size.Height <= 0 {
		size = DefaultSize
	}
	return &Figure{Title: title, Size: size, Background: color.White}
}

// AddAxes adds a drawing surface at r.
func (f *Figure) AddAxes(name string, r Rect) *Axes {
	a := newAxes(name, r)
	f.Axes = append(f.Axes, a)
	return a
}

// Layout of one view: scatter with the x-histogram above and the
// y-histogram to its right.
const (
	viewLeft      = 0.1
	viewBottom    = 0.1
	scatterWidth  = 0.22
	scatterHeight = 0.7
	histXHeight   = 0.1
	histYWidth    = 0.05
	histGap       = 0.02
	viewGap       = 0.2
)

func (f *Figure) addView(name string, left float64) AxesGroup {
	bottomH := scatterHeight + 0.15
	leftH := left + scatterWidth + histGap
	g := AxesGroup{
		Scatter: f.AddAxes(name+" scatter", Rect{left, viewBottom, scatterWidth, scatterHeight}),
		HistY:   f.AddAxes(name+" y-histogram", Rect{leftH, viewBottom, histYWidth, scatterHeight}),
		HistX:   f.AddAxes(name+" x-histogram", Rect{left, bottomH, scatterWidth, histXHeight}),
	}
	g.HistY.ShareY = g.Scatter
	g.HistX.ShareX = g.Scatter
	return g
}

// CreateAxes returns a figure with a full and a zoomed view, each made of
// a scatter surface flanked by two histogram surfaces. The histograms
// share the scatter's y (HistY) and x (HistX) data extent.
func CreateAxes(title string, size Size) (fig *Figure, full, zoom AxesGroup) {
	fig = NewFigure(title, size)
	full = fig.addView("full", viewLeft)
	zoom = fig.addView("zoom", viewLeft+scatterWidth+viewGap)
	return fig, full, zoom
}

// Draw renders the figure onto c.
func (f *Figure) Draw(c draw.Canvas) {
	if f.Background != nil {
		c.SetColor(f.Background)
		c.Fill(c.Rectangle.Path())
	}
	vp := ViewportOf(c)
	if f.Title != "" {
		title := plot.New()
		title.BackgroundColor = nil
		title.Title.Text = f.Title
		title.HideAxes()
		title.Draw(SubViewport(vp, Rect{0, 0.95, 1, 0.05}).DrawCanvas())
	}
	for _, a := range f.Axes {
		a.Draw(vp)
	}
}

// WriterTo renders the figure in the given format (png, svg, pdf, eps,
// jpg, jpeg, tif, tiff).
func (f *Figure) WriterTo(format string) (io.WriterTo, error) {
	c, err := draw.NewFormattedCanvas(f.Size.Width, f.Size.Height, format)
	if err != nil {
		return nil, err
	}
	f.Draw(draw.New(c))
	return c, nil
}

// Save writes the figure to path; the format follows the file extension.
func (f *Figure) Save(path string) (err error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	wt, err := f.WriterTo(format)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	if _, err = wt.WriteTo(file); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	logger.Debug("figure saved", "path", path, "format", format, "axes", len(f.Axes))
	return nil
}
