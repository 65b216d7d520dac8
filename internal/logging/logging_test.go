package logging

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/diffract_plot_go/internal/config"
)

func TestSetup_StderrOnly(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	var buf bytes.Buffer
	closer := Setup(config.LoggingConfig{}, &buf)
	log.Println("Parsing: scan01.dat")

	assert.Contains(t, buf.String(), "Parsing: scan01.dat")
	assert.NoError(t, closer.Close())
}

func TestSetup_RotatingFile(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	logPath := filepath.Join(t.TempDir(), "logs", "diffract_plot.log")
	var buf bytes.Buffer
	closer := Setup(config.LoggingConfig{File: logPath, MaxSizeMB: 1, MaxBackups: 1}, &buf)
	log.Println("Plot written")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Plot written")
	assert.Contains(t, buf.String(), "Plot written")
}
