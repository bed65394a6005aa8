package command

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	colorable "github.com/mattn/go-colorable"
	log "github.com/sirupsen/logrus"

	"github.com/joeandaverde/sqlitewriter/internal/ingest"
	"github.com/joeandaverde/sqlitewriter/internal/storage"
)

// BuildCommand is the "build" subcommand: it reads a YAML job config and
// a record stream, and writes the resulting SQLite file to disk.
type BuildCommand struct{}

func (c *BuildCommand) Help() string {
	helpText := `
Usage: sqlitebuild build [options]

Options:

	-config=""	Build job configuration file (YAML)
	-input=""	Record stream to ingest; defaults to stdin
`
	return strings.TrimSpace(helpText)
}

func (c *BuildCommand) Synopsis() string {
	return "Builds a SQLite database file from a record stream"
}

func (c *BuildCommand) Run(args []string) int {
	logger := log.New()
	logger.SetOutput(colorable.NewColorableStdout())
	logger.SetFormatter(&log.TextFormatter{ForceColors: true})

	runID := uuid.New().String()
	runLog := logger.WithField("run_id", runID)

	var configPath, inputPath string
	cmdFlags := flag.NewFlagSet("build", flag.ContinueOnError)
	cmdFlags.StringVar(&configPath, "config", "", "build job configuration file")
	cmdFlags.StringVar(&inputPath, "input", "", "record stream file (defaults to stdin)")
	if err := cmdFlags.Parse(args); err != nil {
		return 1
	}

	if configPath == "" {
		_, _ = fmt.Fprintln(os.Stderr, "Error: -config is required")
		return 1
	}

	configFile, err := os.Open(configPath)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error opening config file: %s\n", err.Error())
		return 1
	}
	defer configFile.Close()

	cfg, err := ingest.DecodeConfig(configFile)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error parsing config file: %s\n", err.Error())
		return 1
	}

	input := os.Stdin
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Error opening input: %s\n", err.Error())
			return 1
		}
		defer f.Close()
		input = f
	}

	db, err := ingest.New(cfg, logger).Run(input)
	if err != nil {
		runLog.WithError(err).Error("build failed")
		return 1
	}

	out, err := os.Create(cfg.OutputPath)
	if err != nil {
		runLog.WithError(err).Error("opening output file")
		return 1
	}
	defer out.Close()

	if err := storage.Write(db, out); err != nil {
		runLog.WithError(err).Error("writing database file")
		return 1
	}

	runLog.WithField("path", cfg.OutputPath).Info("database file written")
	return 0
}
