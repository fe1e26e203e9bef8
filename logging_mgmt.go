package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/shimmeringbee/logwrap"
	"github.com/shimmeringbee/logwrap/impl/filter"
	"github.com/shimmeringbee/logwrap/impl/golog"
	"github.com/shimmeringbee/logwrap/impl/tee"
	"github.com/shimmeringbee/openhab-codegen/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// consoleLogging is the logger used before, and in the absence of, any logging configuration.
func consoleLogging(level string, w io.Writer) (logwrap.Logger, error) {
	impl, err := constructFilter(config.BaseLogging{Level: level}, golog.Wrap(log.New(w, "", log.LstdFlags)))
	if err != nil {
		return logwrap.New(golog.Wrap(log.New(w, "", log.LstdFlags))), err
	}

	return logwrap.New(impl), nil
}

// configureLogging replaces the console logger with the loggers configured in cfgDir. The
// directory is optional.
func configureLogging(cfgDir string, logDir string, l logwrap.Logger) (logwrap.Logger, error) {
	files, err := os.ReadDir(cfgDir)
	if errors.Is(err, fs.ErrNotExist) {
		l.LogDebug(context.Background(), "No logging configuration directory, continuing with console logging.", logwrap.Datum("directory", cfgDir))
		return l, nil
	} else if err != nil {
		return l, fmt.Errorf("failed to read directory listing for logging configurations: %w", err)
	}

	var logCfg []config.LoggingConfig

	for _, file := range files {
		if !strings.HasSuffix(file.Name(), ".json") {
			continue
		}

		fullPath := filepath.Join(cfgDir, file.Name())
		data, err := os.ReadFile(fullPath)
		if err != nil {
			return l, fmt.Errorf("failed to read logging configuration file '%s': %w", fullPath, err)
		}

		cfg := config.LoggingConfig{
			Name: strings.TrimSuffix(file.Name(), filepath.Ext(file.Name())),
		}

		if err := json.Unmarshal(data, &cfg); err != nil {
			return l, fmt.Errorf("failed to parse logging configuration file '%s': %w", fullPath, err)
		}

		l.LogInfo(context.Background(), "Loaded logging configuration.", logwrap.Datum("name", cfg.Name), logwrap.Datum("type", cfg.Type))
		logCfg = append(logCfg, cfg)
	}

	var impls []logwrap.Impl

	for _, cfg := range logCfg {
		var logWriter io.Writer
		var baseCfg config.BaseLogging

		switch lCfg := cfg.Config.(type) {
		case *config.StdoutLogging:
			baseCfg = lCfg.BaseLogging

			if lCfg.UsesStdout() {
				logWriter = os.Stdout
			} else {
				logWriter = os.Stderr
			}
		case *config.FileLogging:
			baseCfg = lCfg.BaseLogging

			logWriter = &lumberjack.Logger{
				Filename:   filepath.Join(logDir, lCfg.Filename),
				MaxSize:    lCfg.Size,
				MaxBackups: lCfg.Count,
				Compress:   lCfg.Compress,
			}
		}

		impl, err := constructFilter(baseCfg, golog.Wrap(log.New(logWriter, "", log.LstdFlags)))
		if err != nil {
			return l, fmt.Errorf("failed to construct filter for logging '%s': %w", cfg.Name, err)
		}

		impls = append(impls, impl)

		l.LogInfo(context.Background(), "Constructed logging.", logwrap.Datum("name", cfg.Name), logwrap.Datum("type", cfg.Type))
	}

	if len(impls) == 0 {
		l.LogWarn(context.Background(), "No logging configurations loaded, continuing with console logging.")
		return l, nil
	}

	l.LogDebug(context.Background(), "Handing over to new logging configuration.")

	return logwrap.New(tee.Tee(impls...)), nil
}

func constructFilter(cfg config.BaseLogging, base logwrap.Impl) (logwrap.Impl, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return base, err
	}

	return filter.Filter(base, func(message logwrap.Message) bool {
		return message.Level <= level && cfg.Accepts(message.Source)
	}), nil
}
