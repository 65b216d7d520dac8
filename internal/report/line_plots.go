package report

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"

	xfont "golang.org/x/image/font"

	"github.com/user/diffract_plot_go/internal/config"
	"github.com/user/diffract_plot_go/internal/parser"
	"github.com/user/diffract_plot_go/internal/selection"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// PlotOptions carries the caller's axis bounds and title.
// A nil bound leaves that side of the axis at its automatic extent.
type PlotOptions struct {
	XMin, XMax *float64
	YMin, YMax *float64
	Title      string
}

// Float returns a pointer to v, for filling PlotOptions bounds.
func Float(v float64) *float64 {
	return &v
}

// CreateSpectrumPlot draws each selected series against the wavelength column and returns PNG bytes.
func CreateSpectrumPlot(table *parser.DataTable, sel selection.Selection, opts PlotOptions, fig config.FigureConfig) ([]byte, error) {
	if table == nil || table.NumRows() == 0 {
		return nil, fmt.Errorf("no data to plot")
	}
	if len(sel) == 0 {
		return nil, fmt.Errorf("no series selected")
	}
	wavelengths, ok := table.Column(parser.WavelengthColumn)
	if !ok {
		return nil, fmt.Errorf("data has no %q column", parser.WavelengthColumn)
	}

	p := plot.New()
	applyFigureStyle(p, fig)

	if opts.Title != "" {
		p.Title.Text = opts.Title
	}
	p.X.Label.Text = fig.XLabel
	p.Y.Label.Text = fig.YLabel

	if fig.Grid {
		grid := plotter.NewGrid()
		dashes := []vg.Length{vg.Points(4), vg.Points(2)}
		gridColor := color.Gray{Y: 176}
		grid.Vertical.Color = gridColor
		grid.Vertical.Dashes = dashes
		grid.Horizontal.Color = gridColor
		grid.Horizontal.Dashes = dashes
		p.Add(grid)
	}

	linesPlotted := 0
	for _, name := range sel.Names() {
		values, ok := table.Column(name)
		if !ok {
			return nil, fmt.Errorf("data has no %q column", name)
		}
		style := SeriesStyles[name]

		pts := make(plotter.XYs, 0, len(values))
		for i, val := range values {
			x := wavelengths[i]
			if isFinite(x) && isFinite(val) {
				pts = append(pts, plotter.XY{X: x, Y: val})
			}
		}
		if skipped := len(values) - len(pts); skipped > 0 {
			log.Printf("Series %s: skipped %d non-finite point(s)", name, skipped)
		}
		if len(pts) == 0 {
			log.Printf("Series %s has no finite points, not drawn", name)
			continue
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("failed to create line for %s: %w", name, err)
		}
		line.Color = style.Color
		line.LineStyle.Width = vg.Points(fig.LineWidth)

		p.Add(line)
		p.Legend.Add(style.Label, line)
		linesPlotted++
	}
	if linesPlotted == 0 {
		return nil, fmt.Errorf("none of the selected series has finite data")
	}

	// Bounds are applied after the data so they override the automatic range
	if opts.XMin != nil {
		p.X.Min = *opts.XMin
	}
	if opts.XMax != nil {
		p.X.Max = *opts.XMax
	}
	if opts.YMin != nil {
		p.Y.Min = *opts.YMin
	}
	if opts.YMax != nil {
		p.Y.Max = *opts.YMax
	}

	return renderPNG(p, fig)
}

// SavePlot writes image bytes to path, replacing any existing file.
func SavePlot(path string, img []byte) error {
	if err := os.WriteFile(path, img, 0644); err != nil {
		return fmt.Errorf("failed to save plot to %s: %w", path, err)
	}
	return nil
}

func applyFigureStyle(p *plot.Plot, fig config.FigureConfig) {
	setFont(&p.Title.TextStyle, fig.TitleFontSize, true)
	setFont(&p.X.Label.TextStyle, fig.FontSize, true)
	setFont(&p.Y.Label.TextStyle, fig.FontSize, true)
	setFont(&p.X.Tick.Label, fig.FontSize*0.85, false)
	setFont(&p.Y.Tick.Label, fig.FontSize*0.85, false)
	setFont(&p.Legend.TextStyle, fig.LegendSize, false)

	p.Legend.Top = fig.LegendTop
	p.Legend.Left = fig.LegendLeft
	p.Legend.XOffs = -vg.Points(6)
	if fig.LegendLeft {
		p.Legend.XOffs = vg.Points(6)
	}
	p.Legend.YOffs = -vg.Points(6)
	if !fig.LegendTop {
		p.Legend.YOffs = vg.Points(6)
	}
}

func setFont(s *text.Style, size float64, bold bool) {
	s.Font.Variant = "Sans"
	s.Font.Size = vg.Points(size)
	if bold {
		s.Font.Weight = xfont.WeightBold
	}
}

func renderPNG(p *plot.Plot, fig config.FigureConfig) ([]byte, error) {
	width := vg.Length(fig.WidthInches) * vg.Inch
	height := vg.Length(fig.HeightInches) * vg.Inch

	canvas := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(fig.DPI))
	p.Draw(draw.New(canvas))

	buf := new(bytes.Buffer)
	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write plot to buffer: %w", err)
	}
	return buf.Bytes(), nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
