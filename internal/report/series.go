package report

import (
	"image/color"
	"path/filepath"
	"strings"

	"github.com/user/diffract_plot_go/internal/selection"
)

// SeriesStyle is the fixed appearance of one canonical series.
type SeriesStyle struct {
	Color color.Color
	Label string
}

// SeriesStyles maps canonical series names to their color and legend label.
var SeriesStyles = map[string]SeriesStyle{
	selection.TotalReflection:   {Color: color.RGBA{B: 255, A: 255}, Label: "Reflection"},    // Blue
	selection.TotalTransmission: {Color: color.RGBA{G: 128, A: 255}, Label: "Transmission"}, // Green
	selection.Absorption:        {Color: color.RGBA{R: 255, A: 255}, Label: "Absorption"},   // Red
}

// Label returns the display label of a canonical series, or the name itself when it has no style.
func Label(name string) string {
	if style, ok := SeriesStyles[name]; ok {
		return style.Label
	}
	return name
}

// OutputPath derives an output file name from the input file's base name.
// The directory part of input is dropped: "runs/2024/scan01.dat" -> "scan01_plot.png".
func OutputPath(input, suffix string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" { // Dotfiles such as ".dat" keep their full name
		stem = base
	}
	return stem + suffix
}
