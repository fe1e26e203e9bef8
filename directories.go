package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"

	"github.com/peterbourgon/ff/v3"
)

const DefaultDirectoryPermissions = 0755

var ErrMissingDirectory = errors.New("config and openhab directories must be provided")

type Arguments struct {
	ConfigDirectory  string
	OpenHABDirectory string
	LogDirectory     string
	Write            bool
	LogLevel         string
}

// parseArguments reads the arguments from the command line and environment. Directories may
// also be given positionally, config directory first.
func parseArguments(args []string, output io.Writer) (Arguments, error) {
	fs := flag.NewFlagSet("openhab-codegen", flag.ContinueOnError)
	fs.SetOutput(output)

	configDirectory := fs.String("config-directory", "", "location of inventory configuration, conf/*.yaml and y2m.yaml")
	openhabDirectory := fs.String("openhab-directory", "", "location of the openHAB configuration to generate into")
	logDirectory := fs.String("log-directory", "", "location of log files, defaults to log in the config directory")
	write := fs.Bool("write", false, "write generated files, otherwise only differences are shown")
	logLevel := fs.String("log-level", "info", "level of console logging")

	if err := ff.Parse(fs, args, ff.WithEnvVarNoPrefix()); err != nil {
		return Arguments{}, err
	}

	positional := fs.Args()
	if len(positional) > 2 {
		return Arguments{}, fmt.Errorf("unexpected arguments: %v", positional[2:])
	}

	if len(positional) > 0 {
		*configDirectory = positional[0]
	}

	if len(positional) > 1 {
		*openhabDirectory = positional[1]
	}

	if *configDirectory == "" || *openhabDirectory == "" {
		return Arguments{}, ErrMissingDirectory
	}

	if *logDirectory == "" {
		*logDirectory = filepath.Join(*configDirectory, "log")
	}

	return Arguments{
		ConfigDirectory:  *configDirectory,
		OpenHABDirectory: *openhabDirectory,
		LogDirectory:     *logDirectory,
		Write:            *write,
		LogLevel:         *logLevel,
	}, nil
}
