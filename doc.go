// Distplot draws the joint distribution of two features together with
// their marginal histograms, and prints class-limit reports for
// discretized features.
//
//
// Data Representation: Data Frames
//
// A DataFrame is a named table of float64 samples (rows) and features
// (columns) backed by a gonum mat.Dense. Plots use the first two
// columns: column 0 is drawn along the x-axis, column 1 along the
// y-axis. Data frames are read from CSV with ReadCSV or built with
// NewDataFrame, and printed as an aligned table with Print.
//
//
// Figures
//
// CreateAxes lays out a figure with two views, "full" and "zoom". Each
// view is an AxesGroup of three surfaces:
//     Scatter  the joint distribution
//     HistY    histogram of column 1, bars growing to the right
//     HistX    histogram of column 0, above the scatter
// PlotDistribution fills one view and MakePlot fills both, restricting
// the zoomed view to the samples inside a percentile box. Nothing is
// rendered before Figure.Draw, Figure.WriterTo or Figure.Save.
//
// The look of points and bars is controlled by a Theme of string valued
// aesthetics, e.g.
//     Theme{PointStyle: AesMapping{"color": "#ff0000", "alpha": "0.3"}}
//
//
// Class Limits
//
// PrintClassLimits and PrintClassLimits2 report, for each feature of a
// discretized table, the interval of each bin and how many samples
// carry that bin's code. ClassLimits gives access to the options.
//
// Warnings (unknown colors, empty zoomed views, unreported codes) and
// debug output go to the slog.Logger set with SetLogger.
package distplot
