package analysis

import (
	"fmt"
	"math"

	"github.com/user/diffract_plot_go/internal/parser"
	"github.com/user/diffract_plot_go/internal/selection"
)

// Helper to calculate mean
func calculateMean(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// Helper to calculate population standard deviation
func calculateStdDev(data []float64, mean float64) float64 {
	if len(data) == 0 || math.IsNaN(mean) {
		return math.NaN()
	}
	if len(data) == 1 {
		return 0.0
	}
	sumSqDiff := 0.0
	for _, v := range data {
		sumSqDiff += (v - mean) * (v - mean)
	}
	return math.Sqrt(sumSqDiff / float64(len(data)))
}

// Helper to calculate min and max
func calculateExtent(data []float64) (float64, float64) {
	if len(data) == 0 {
		return math.NaN(), math.NaN()
	}
	minVal, maxVal := data[0], data[0]
	for _, v := range data[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	return minVal, maxVal
}

// Summarize computes statistics for each selected series against the wavelength column.
// NaN samples are skipped and reported in AnalysisErrors.
func Summarize(table *parser.DataTable, sel selection.Selection) (*AnalysisResults, error) {
	if table == nil || table.NumRows() == 0 {
		return nil, fmt.Errorf("data table is nil or empty, cannot analyze")
	}
	wavelengths, ok := table.Column(parser.WavelengthColumn)
	if !ok {
		return nil, fmt.Errorf("data table has no %q column", parser.WavelengthColumn)
	}

	results := NewAnalysisResults()
	results.NumRows = table.NumRows()
	results.WavelengthMin, results.WavelengthMax = calculateExtent(dropNaN(wavelengths))

	for _, name := range sel.Names() {
		values, ok := table.Column(name)
		if !ok {
			results.AnalysisErrors = append(results.AnalysisErrors, fmt.Sprintf("Series '%s' not found in data table.", name))
			continue
		}

		valid := make([]float64, 0, len(values))
		peakWavelength := math.NaN()
		peak := math.Inf(-1)
		for i, v := range values {
			if math.IsNaN(v) {
				continue
			}
			valid = append(valid, v)
			if v > peak {
				peak = v
				peakWavelength = wavelengths[i]
			}
		}
		if skipped := len(values) - len(valid); skipped > 0 {
			results.AnalysisErrors = append(results.AnalysisErrors, fmt.Sprintf("Series '%s': %d NaN sample(s) skipped.", name, skipped))
		}

		summary := SeriesSummary{
			Name:           name,
			NumValid:       len(valid),
			Min:            math.NaN(),
			Max:            math.NaN(),
			Mean:           math.NaN(),
			StdDev:         math.NaN(),
			Range:          math.NaN(),
			PeakWavelength: peakWavelength,
		}
		if len(valid) > 0 {
			summary.Min, summary.Max = calculateExtent(valid)
			summary.Mean = calculateMean(valid)
			summary.StdDev = calculateStdDev(valid, summary.Mean)
			summary.Range = summary.Max - summary.Min
		}
		results.Summaries = append(results.Summaries, summary)
	}

	return results, nil
}

func dropNaN(data []float64) []float64 {
	out := make([]float64, 0, len(data))
	for _, v := range data {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
