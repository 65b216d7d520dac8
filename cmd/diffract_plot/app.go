package main

import (
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/user/diffract_plot_go/internal/analysis"
	"github.com/user/diffract_plot_go/internal/config"
	"github.com/user/diffract_plot_go/internal/parser"
	"github.com/user/diffract_plot_go/internal/report"
	"github.com/user/diffract_plot_go/internal/selection"
)

// RunOptions are the already-parsed inputs of one plotting run.
type RunOptions struct {
	Filename string
	Columns  string
	Plot     report.PlotOptions
	Report   bool // Also write the PDF summary
}

// RunResult lists the files a run wrote.
type RunResult struct {
	PlotPath   string
	ReportPath string
}

// App struct
type App struct {
	cfg       *config.Config
	stdout    io.Writer
	outputDir string
}

// NewApp creates an App that writes its files to outputDir and confirmations to stdout.
func NewApp(cfg *config.Config, stdout io.Writer, outputDir string) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	if stdout == nil {
		stdout = io.Discard
	}
	if outputDir == "" {
		outputDir = "."
	}
	return &App{cfg: cfg, stdout: stdout, outputDir: outputDir}
}

func (a *App) sendStatus(message string) {
	log.Println(message)
}

// Run loads the input file, resolves the requested series and saves the plot.
// Any failure aborts the run; nothing is plotted for a partially valid request.
func (a *App) Run(opts RunOptions) (*RunResult, error) {
	a.sendStatus(fmt.Sprintf("Parsing: %s", opts.Filename))
	table, err := parser.LoadTable(opts.Filename)
	if err != nil {
		return nil, err
	}
	a.sendStatus(fmt.Sprintf("Parsed %d rows, columns: %v", table.NumRows(), table.Columns))

	sel, err := selection.Resolve(opts.Columns)
	if err != nil {
		return nil, err
	}
	a.sendStatus(fmt.Sprintf("Selected series: %v", sel.Names()))

	if err := table.Require(append([]string{parser.WavelengthColumn}, sel.Names()...)...); err != nil {
		return nil, err
	}

	results, err := analysis.Summarize(table, sel)
	if err != nil {
		return nil, fmt.Errorf("error analyzing data: %w", err)
	}
	for _, s := range results.Summaries {
		a.sendStatus(fmt.Sprintf("%s: min=%.4f max=%.4f mean=%.4f peak at %.4f", report.Label(s.Name), s.Min, s.Max, s.Mean, s.PeakWavelength))
	}
	for _, e := range results.AnalysisErrors {
		a.sendStatus(fmt.Sprintf("- %s", e))
	}

	a.sendStatus("Generating plot...")
	img, err := report.CreateSpectrumPlot(table, sel, opts.Plot, a.cfg.Figure)
	if err != nil {
		return nil, fmt.Errorf("error generating plot: %w", err)
	}

	result := &RunResult{
		PlotPath: filepath.Join(a.outputDir, report.OutputPath(opts.Filename, a.cfg.Output.PlotSuffix)),
	}
	if err := report.SavePlot(result.PlotPath, img); err != nil {
		return nil, err
	}
	fmt.Fprintf(a.stdout, "Plot saved as %s\n", result.PlotPath)

	if opts.Report {
		reportPath := filepath.Join(a.outputDir, report.OutputPath(opts.Filename, a.cfg.Output.ReportSuffix))
		a.sendStatus(fmt.Sprintf("Generating PDF: %s...", reportPath))
		err := report.BuildPDFReport(reportPath, report.ReportInput{
			SourcePath: opts.Filename,
			Columns:    table.Columns,
			Options:    opts.Plot,
			Results:    results,
			PlotPNG:    img,
		})
		if err != nil {
			return nil, fmt.Errorf("error generating PDF report: %w", err)
		}
		result.ReportPath = reportPath
		fmt.Fprintf(a.stdout, "Report saved as %s\n", reportPath)
	}

	return result, nil
}
