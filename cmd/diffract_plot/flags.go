package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/user/diffract_plot_go/internal/report"
	"github.com/user/diffract_plot_go/internal/selection"
)

var errUsage = errors.New("usage error")

// optionalFloat is a float flag that distinguishes "not given" from zero.
type optionalFloat struct {
	v *float64
}

func (f *optionalFloat) String() string {
	if f == nil || f.v == nil {
		return ""
	}
	return strconv.FormatFloat(*f.v, 'g', -1, 64)
}

func (f *optionalFloat) Set(s string) error {
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	f.v = &val
	return nil
}

type cliOptions struct {
	Filename   string
	Columns    string
	XMin, XMax optionalFloat
	YMin, YMax float64
	Title      string
	ConfigPath string
	Report     bool
	LogFile    string
}

// RunOptions converts parsed flags into the App's inputs.
func (o *cliOptions) RunOptions() RunOptions {
	return RunOptions{
		Filename: o.Filename,
		Columns:  o.Columns,
		Plot: report.PlotOptions{
			XMin:  o.XMin.v,
			XMax:  o.XMax.v,
			YMin:  report.Float(o.YMin),
			YMax:  report.Float(o.YMax),
			Title: o.Title,
		},
		Report: o.Report,
	}
}

// parseFlags accepts both -name and --name for every flag.
func parseFlags(args []string, output io.Writer) (*cliOptions, error) {
	o := &cliOptions{}
	fs := flag.NewFlagSet("diffract_plot", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Plot optical properties from a whitespace-delimited data file.")
		fmt.Fprintln(fs.Output(), "\nUsage: diffract_plot -filename FILE [options]")
		fs.PrintDefaults()
	}

	for _, name := range []string{"f", "file", "filename"} {
		fs.StringVar(&o.Filename, name, "", "Input data file (required)")
	}
	for _, name := range []string{"c", "col", "columns"} {
		fs.StringVar(&o.Columns, name, selection.DefaultColumns, "Columns to plot (comma-separated: r,a or reflection,absorption)")
	}
	fs.Var(&o.XMin, "xmin", "Minimum x-axis value (default: automatic)")
	fs.Var(&o.XMax, "xmax", "Maximum x-axis value (default: automatic)")
	fs.Float64Var(&o.YMin, "ymin", 0.0, "Minimum y-axis value")
	fs.Float64Var(&o.YMax, "ymax", 1.0, "Maximum y-axis value")
	fs.StringVar(&o.Title, "title", "", "Title of the plot (optional)")
	fs.StringVar(&o.ConfigPath, "config", "", "YAML configuration file (optional)")
	fs.BoolVar(&o.Report, "report", false, "Also write a PDF summary report")
	fs.StringVar(&o.LogFile, "log-file", "", "Also write logs to this rotating file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(fs.Output(), "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return nil, errUsage
	}
	if o.Filename == "" {
		fmt.Fprintln(fs.Output(), "flag -filename is required")
		fs.Usage()
		return nil, errUsage
	}
	return o, nil
}
