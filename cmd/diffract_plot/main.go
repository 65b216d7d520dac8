// Command diffract_plot renders reflection, transmission and absorption
// series of an optical simulation output file as a PNG line chart.
package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"github.com/user/diffract_plot_go/internal/config"
	"github.com/user/diffract_plot_go/internal/logging"
	"github.com/user/diffract_plot_go/internal/parser"
	"github.com/user/diffract_plot_go/internal/selection"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, "."))
}

func run(args []string, stdout, stderr io.Writer, outputDir string) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return exitUsage
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		logging.Setup(config.LoggingConfig{}, stderr)
		log.Printf("Failed to load configuration: %v", err)
		return exitError
	}
	if opts.LogFile != "" {
		cfg.Logging.File = opts.LogFile
	}
	closer := logging.Setup(cfg.Logging, stderr)
	defer closer.Close()

	app := NewApp(cfg, stdout, outputDir)
	if _, err := app.Run(opts.RunOptions()); err != nil {
		log.Printf("%s: %v", errorKind(err), err)
		return exitError
	}
	return exitOK
}

// errorKind names the failure class for the final message.
func errorKind(err error) string {
	var accessErr *parser.FileAccessError
	var formatErr *parser.DataFormatError
	var selErr *selection.InvalidSelectionError
	switch {
	case errors.As(err, &accessErr):
		return "Cannot read input file"
	case errors.As(err, &formatErr):
		return "Invalid data file"
	case errors.As(err, &selErr):
		return "Invalid column selection"
	default:
		return "Error"
	}
}
