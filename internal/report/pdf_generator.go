package report

import (
	"bytes"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/user/diffract_plot_go/internal/analysis"
)

const (
	pdfPageWidthPortrait  = 210.0 // A4, mm
	pdfPageHeightPortrait = 297.0
	pdfMargin             = 15.0
	pdfContentWidth       = pdfPageWidthPortrait - (2 * pdfMargin)
)

// ReportInput is everything the PDF summary shows about one run.
type ReportInput struct {
	SourcePath string
	Columns    []string // Header order of the input file
	Options    PlotOptions
	Results    *analysis.AnalysisResults
	PlotPNG    []byte
}

// pdfStyler holds reusable styling and state for PDF generation
type pdfStyler struct {
	pdf         *gofpdf.Fpdf
	tr          func(string) string // UTF-8 to the core font code page
	styles      map[string]func()
	lineHeight  float64
	currentY    float64 // To manually track Y position for flowing content
	pageHeight  float64
	contentTopY float64 // Top Y after margin
}

func newPDFStyler(pdf *gofpdf.Fpdf) *pdfStyler {
	s := &pdfStyler{
		pdf:         pdf,
		tr:          pdf.UnicodeTranslatorFromDescriptor(""),
		styles:      make(map[string]func()),
		lineHeight:  6,
		pageHeight:  pdfPageHeightPortrait - pdfMargin,
		contentTopY: pdfMargin,
	}
	s.currentY = s.contentTopY
	s.defineStyles()
	return s
}

func (s *pdfStyler) defineStyles() {
	s.styles["h1"] = func() {
		s.pdf.SetFont("Arial", "B", 16)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["h2"] = func() {
		s.pdf.SetFont("Arial", "B", 13)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["normal"] = func() {
		s.pdf.SetFont("Arial", "", 10)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableHeader"] = func() {
		s.pdf.SetFont("Arial", "B", 9)
		s.pdf.SetFillColor(200, 200, 200)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableCell"] = func() {
		s.pdf.SetFont("Arial", "", 9)
		s.pdf.SetTextColor(50, 50, 50)
	}
}

func (s *pdfStyler) applyStyle(styleName string) {
	if fn, ok := s.styles[styleName]; ok {
		fn()
	} else {
		s.styles["normal"]()
	}
}

func (s *pdfStyler) checkAddPage(neededHeight float64) {
	if s.currentY+neededHeight > s.pageHeight {
		s.pdf.AddPage()
		s.currentY = s.contentTopY
	}
}

func (s *pdfStyler) writeParagraph(text string, styleName string, align string) {
	s.applyStyle(styleName)
	text = s.tr(text)
	lines := s.pdf.SplitLines([]byte(text), pdfContentWidth)
	s.checkAddPage(float64(len(lines)) * s.lineHeight)

	s.pdf.SetXY(pdfMargin, s.currentY)
	s.pdf.MultiCell(pdfContentWidth, s.lineHeight, text, "", align, false)
	s.currentY = s.pdf.GetY() + 1
}

func (s *pdfStyler) addSpacer(height float64) {
	s.checkAddPage(height)
	s.currentY += height
}

func (s *pdfStyler) addImage(imageBytes []byte, imageName string, width float64, caption string) {
	s.pdf.RegisterImageOptionsReader(imageName, gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(imageBytes))
	info := s.pdf.GetImageInfo(imageName)
	if info == nil || s.pdf.Err() {
		return
	}

	height := width * info.Height() / info.Width()
	captionHeight := 0.0
	if caption != "" {
		captionHeight = s.lineHeight + 1
	}
	s.checkAddPage(height + captionHeight)

	x := pdfMargin + (pdfContentWidth-width)/2
	s.pdf.ImageOptions(imageName, x, s.currentY, width, height, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	s.currentY += height

	if caption != "" {
		s.addSpacer(1)
		s.writeParagraph(caption, "normal", "C")
	}
	s.addSpacer(2)
}

func (s *pdfStyler) writeTable(headers []string, colWidthsRel []float64, rows [][]string) {
	colWidthsAbs := make([]float64, len(colWidthsRel))
	for i, rel := range colWidthsRel {
		colWidthsAbs[i] = rel * pdfContentWidth
	}

	s.checkAddPage(s.lineHeight * float64(len(rows)+1))
	sX := pdfMargin
	s.applyStyle("tableHeader")
	for i, header := range headers {
		s.pdf.SetXY(sX, s.currentY)
		s.pdf.CellFormat(colWidthsAbs[i], s.lineHeight, s.tr(header), "1", 0, "C", true, 0, "")
		sX += colWidthsAbs[i]
	}
	s.currentY += s.lineHeight

	for _, row := range rows {
		s.checkAddPage(s.lineHeight)
		sX = pdfMargin
		s.applyStyle("tableCell")
		for i, cellData := range row {
			s.pdf.SetXY(sX, s.currentY)
			s.pdf.CellFormat(colWidthsAbs[i], s.lineHeight, s.tr(cellData), "1", 0, "C", false, 0, "")
			sX += colWidthsAbs[i]
		}
		s.currentY += s.lineHeight
	}
}

// BuildPDFReport writes a one-run summary: source details, axis bounds, per-series statistics and the chart.
func BuildPDFReport(outPath string, in ReportInput) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	pdf.AddPage()

	styler := newPDFStyler(pdf)

	title := in.Options.Title
	if title == "" {
		title = "Optical Spectrum Summary"
	}
	styler.writeParagraph(title, "h1", "C")
	styler.addSpacer(4)

	numRows := 0
	if in.Results != nil {
		numRows = in.Results.NumRows
	}
	styler.writeParagraph(fmt.Sprintf("Source file: %s", baseName(in.SourcePath)), "normal", "L")
	styler.writeParagraph(fmt.Sprintf("Data rows: %d", numRows), "normal", "L")
	styler.writeParagraph(fmt.Sprintf("Columns: %s", strings.Join(in.Columns, ", ")), "normal", "L")
	styler.writeParagraph(fmt.Sprintf("X range: %s to %s   Y range: %s to %s",
		formatBound(in.Options.XMin), formatBound(in.Options.XMax),
		formatBound(in.Options.YMin), formatBound(in.Options.YMax)), "normal", "L")
	styler.addSpacer(4)

	styler.writeParagraph("Series Statistics", "h2", "L")
	if in.Results == nil || len(in.Results.Summaries) == 0 {
		styler.writeParagraph("No series statistics available.", "normal", "L")
	} else {
		headers := []string{"Series", "Samples", "Min", "Max", "Mean", "Std Dev", "Peak at (µm)"}
		widths := []float64{0.2, 0.12, 0.12, 0.12, 0.12, 0.12, 0.2}
		rows := make([][]string, 0, len(in.Results.Summaries))
		for _, sum := range in.Results.Summaries {
			rows = append(rows, []string{
				Label(sum.Name),
				fmt.Sprintf("%d", sum.NumValid),
				formatValue(sum.Min),
				formatValue(sum.Max),
				formatValue(sum.Mean),
				formatValue(sum.StdDev),
				formatValue(sum.PeakWavelength),
			})
		}
		styler.writeTable(headers, widths, rows)
	}
	if in.Results != nil && len(in.Results.AnalysisErrors) > 0 {
		styler.addSpacer(2)
		for _, msg := range in.Results.AnalysisErrors {
			styler.writeParagraph("- "+msg, "normal", "L")
		}
	}
	styler.addSpacer(6)

	if len(in.PlotPNG) > 0 {
		styler.addImage(in.PlotPNG, "spectrum", pdfContentWidth*0.75, "Selected series against wavelength")
	} else {
		styler.writeParagraph("Plot not available.", "normal", "L")
	}

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("failed to write PDF report %s: %w", outPath, err)
	}
	return nil
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.4f", v)
}

func formatBound(v *float64) string {
	if v == nil {
		return "auto"
	}
	return fmt.Sprintf("%g", *v)
}

func baseName(path string) string {
	if path == "" {
		return "(unknown)"
	}
	return filepath.Base(path)
}
