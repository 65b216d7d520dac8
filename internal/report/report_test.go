package report

import (
	"bytes"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/diffract_plot_go/internal/analysis"
	"github.com/user/diffract_plot_go/internal/config"
	"github.com/user/diffract_plot_go/internal/parser"
	"github.com/user/diffract_plot_go/internal/selection"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// smallFigure keeps rendering fast in tests.
func smallFigure() config.FigureConfig {
	fig := config.Default().Figure
	fig.DPI = 50
	return fig
}

func spectrumTable() *parser.DataTable {
	table := parser.NewDataTable("scan01.dat", []string{"wavelength", "Total_Reflection", "Total_Transmission", "Absorption"})
	for i := 0; i < 20; i++ {
		wl := 0.4 + float64(i)*0.01
		r := 0.3 + 0.1*math.Sin(float64(i))
		a := 0.05
		table.Data["wavelength"] = append(table.Data["wavelength"], wl)
		table.Data["Total_Reflection"] = append(table.Data["Total_Reflection"], r)
		table.Data["Absorption"] = append(table.Data["Absorption"], a)
		table.Data["Total_Transmission"] = append(table.Data["Total_Transmission"], 1-r-a)
	}
	return table
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"scan01.dat", "scan01_plot.png"},
		{"runs/scan01.dat", "scan01_plot.png"},
		{"/data/runs/2024/06/scan01.dat", "scan01_plot.png"},
		{"../scan01.dat", "scan01_plot.png"},
		{"scan01", "scan01_plot.png"},
		{"scan.v2.txt", "scan.v2_plot.png"},
		{".dat", ".dat_plot.png"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, OutputPath(tt.input, "_plot.png"))
		})
	}
}

func TestSeriesStyles(t *testing.T) {
	require.Len(t, SeriesStyles, 3)
	for _, name := range selection.CanonicalOrder {
		_, ok := SeriesStyles[name]
		assert.True(t, ok, "style for %s", name)
	}
	assert.Equal(t, "Reflection", Label(selection.TotalReflection))
	assert.Equal(t, "Transmission", Label(selection.TotalTransmission))
	assert.Equal(t, "Absorption", Label(selection.Absorption))
	assert.Equal(t, "other", Label("other"))
}

func TestCreateSpectrumPlot(t *testing.T) {
	sel, err := selection.Resolve(selection.DefaultColumns)
	require.NoError(t, err)

	opts := PlotOptions{YMin: Float(0), YMax: Float(1), Title: "Grating scan"}
	img, err := CreateSpectrumPlot(spectrumTable(), sel, opts, smallFigure())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(img, pngSignature))

	decoded, err := png.Decode(bytes.NewReader(img))
	require.NoError(t, err)
	// 5.5 inches at 50 dpi
	assert.InDelta(t, 275, decoded.Bounds().Dx(), 1)
	assert.InDelta(t, 275, decoded.Bounds().Dy(), 1)
}

func TestCreateSpectrumPlot_AxisBounds(t *testing.T) {
	sel, err := selection.Resolve("r")
	require.NoError(t, err)

	opts := PlotOptions{XMin: Float(0.42), XMax: Float(0.5), YMin: Float(0), YMax: Float(1)}
	img, err := CreateSpectrumPlot(spectrumTable(), sel, opts, smallFigure())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img, pngSignature))
}

func TestCreateSpectrumPlot_SkipsNaN(t *testing.T) {
	table := spectrumTable()
	table.Data["Absorption"][3] = math.NaN()
	table.Data["Absorption"][4] = math.Inf(1)

	sel, err := selection.Resolve("a")
	require.NoError(t, err)

	_, err = CreateSpectrumPlot(table, sel, PlotOptions{}, smallFigure())
	assert.NoError(t, err)
}

func TestCreateSpectrumPlot_Errors(t *testing.T) {
	sel, err := selection.Resolve("r,a")
	require.NoError(t, err)
	fig := smallFigure()

	_, err = CreateSpectrumPlot(nil, sel, PlotOptions{}, fig)
	assert.Error(t, err)

	_, err = CreateSpectrumPlot(spectrumTable(), selection.Selection{}, PlotOptions{}, fig)
	assert.Error(t, err)

	noWavelength := parser.NewDataTable("x.dat", []string{"Total_Reflection"})
	noWavelength.Data["Total_Reflection"] = []float64{0.1}
	_, err = CreateSpectrumPlot(noWavelength, sel, PlotOptions{}, fig)
	assert.ErrorContains(t, err, "wavelength")

	missingSeries := parser.NewDataTable("x.dat", []string{"wavelength", "Total_Reflection"})
	missingSeries.Data["wavelength"] = []float64{1}
	missingSeries.Data["Total_Reflection"] = []float64{0.1}
	_, err = CreateSpectrumPlot(missingSeries, sel, PlotOptions{}, fig)
	assert.ErrorContains(t, err, "Absorption")

	allNaN := parser.NewDataTable("x.dat", []string{"wavelength", "Total_Reflection"})
	allNaN.Data["wavelength"] = []float64{1, 2}
	allNaN.Data["Total_Reflection"] = []float64{math.NaN(), math.NaN()}
	onlyR, err := selection.Resolve("r")
	require.NoError(t, err)
	_, err = CreateSpectrumPlot(allNaN, onlyR, PlotOptions{}, fig)
	assert.Error(t, err)
}

func TestSavePlot_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan01_plot.png")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

	require.NoError(t, SavePlot(path, pngSignature))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pngSignature, data)
}

func TestSavePlot_BadDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "scan01_plot.png")
	assert.Error(t, SavePlot(path, pngSignature))
}

func TestBuildPDFReport(t *testing.T) {
	table := spectrumTable()
	sel, err := selection.Resolve("r,t,a")
	require.NoError(t, err)

	results, err := analysis.Summarize(table, sel)
	require.NoError(t, err)
	opts := PlotOptions{YMin: Float(0), YMax: Float(1)}
	img, err := CreateSpectrumPlot(table, sel, opts, smallFigure())
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "scan01_report.pdf")
	err = BuildPDFReport(out, ReportInput{
		SourcePath: table.Path,
		Columns:    table.Columns,
		Options:    opts,
		Results:    results,
		PlotPNG:    img,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestBuildPDFReport_NoResults(t *testing.T) {
	out := filepath.Join(t.TempDir(), "empty_report.pdf")
	require.NoError(t, BuildPDFReport(out, ReportInput{}))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "n/a", formatValue(math.NaN()))
	assert.Equal(t, "0.2500", formatValue(0.25))
	assert.Equal(t, "auto", formatBound(nil))
	assert.Equal(t, "0.5", formatBound(Float(0.5)))
	assert.Equal(t, "(unknown)", baseName(""))
	assert.Equal(t, "scan01.dat", baseName("/a/b/scan01.dat"))
}
