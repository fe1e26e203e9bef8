package config

import (
	"encoding/json"
	"fmt"

	"github.com/shimmeringbee/logwrap"
	"github.com/tidwall/gjson"
)

const (
	LoggingStdout = "stdout"
	LoggingFile   = "file"
)

const (
	StreamStdout = "stdout"
	StreamStderr = "stderr"
)

const DefaultLogLevel = "info"

var logLevels = map[string]logwrap.LogLevel{
	"panic": logwrap.Panic,
	"fatal": logwrap.Fatal,
	"error": logwrap.Error,
	"warn":  logwrap.Warn,
	"info":  logwrap.Info,
	"debug": logwrap.Debug,
	"trace": logwrap.Trace,
}

type LoggingConfig struct {
	Name   string `json:"-"`
	Type   string
	Config any
}

func (g *LoggingConfig) UnmarshalJSON(data []byte) error {
	if result := gjson.GetBytes(data, "Type"); !result.Exists() {
		return fmt.Errorf("failed to find logging type information")
	} else {
		g.Type = result.String()
	}

	switch g.Type {
	case LoggingStdout:
		g.Config = &StdoutLogging{}
	case LoggingFile:
		g.Config = &FileLogging{}
	default:
		return fmt.Errorf("unknown logging configuration type: %s", g.Type)
	}

	if result := gjson.GetBytes(data, "Config"); result.Exists() {
		return json.Unmarshal([]byte(result.Raw), g.Config)
	} else {
		return fmt.Errorf("unable to find Config stanza: %s", g.Type)
	}
}

type BaseLogging struct {
	Level string

	NegateSubsystems bool
	Subsystems       []string
}

// LogLevel resolves the configured level name, an empty level is info.
func (b BaseLogging) LogLevel() (logwrap.LogLevel, error) {
	name := b.Level
	if name == "" {
		name = DefaultLogLevel
	}

	level, found := logLevels[name]
	if !found {
		return logwrap.Info, fmt.Errorf("unknown log level '%s'", b.Level)
	}

	return level, nil
}

// Accepts reports if a message from source passes the subsystem filter.
func (b BaseLogging) Accepts(source string) bool {
	if len(b.Subsystems) == 0 {
		return true
	}

	found := false

	for _, subsystem := range b.Subsystems {
		if subsystem == source {
			found = true
			break
		}
	}

	return b.NegateSubsystems != found
}

// StdoutLogging logs to the console. Logs default to stderr, as stdout carries the
// generated diffs.
type StdoutLogging struct {
	BaseLogging

	Stream string
}

func (s StdoutLogging) UsesStdout() bool {
	return s.Stream == StreamStdout
}

type FileLogging struct {
	BaseLogging

	Filename string
	Size     int
	Count    int
	Compress bool
}
