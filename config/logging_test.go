package config

import (
	"encoding/json"
	"testing"

	"github.com/shimmeringbee/logwrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogging(t *testing.T) {
	t.Run("errors if json is invalid", func(t *testing.T) {
		data := []byte(`"`)
		cfg := LoggingConfig{}

		err := json.Unmarshal(data, &cfg)
		assert.Error(t, err)
	})

	t.Run("errors if type is unknown", func(t *testing.T) {
		data := []byte(`{"Type":"syslog"}`)
		cfg := LoggingConfig{}

		err := json.Unmarshal(data, &cfg)
		assert.Error(t, err)
	})

	t.Run("errors if config stanza is missing", func(t *testing.T) {
		data := []byte(`{"Type":"stdout"}`)
		cfg := LoggingConfig{}

		err := json.Unmarshal(data, &cfg)
		assert.Error(t, err)
	})

	t.Run("stdout logger", func(t *testing.T) {
		t.Run("parses successfully", func(t *testing.T) {
			data := []byte(`{
  "Type": "stdout",
  "Config": {
    "Level": "debug",
    "Stream": "stdout",
    "Subsystems": [
      "writer"
    ],
    "NegateSubsystems": true
  }
}`)
			cfg := LoggingConfig{}

			err := json.Unmarshal(data, &cfg)
			require.NoError(t, err)

			stdoutLog, ok := cfg.Config.(*StdoutLogging)
			require.True(t, ok)

			assert.Equal(t, "debug", stdoutLog.Level)
			assert.Equal(t, "stdout", stdoutLog.Stream)
			assert.Contains(t, stdoutLog.Subsystems, "writer")
			assert.True(t, stdoutLog.NegateSubsystems)
		})
	})

	t.Run("file logger", func(t *testing.T) {
		t.Run("parses successfully", func(t *testing.T) {
			data := []byte(`{
  "Type": "file",
  "Config": {
    "Filename": "codegen.log",
    "Size": 10,
    "Count": 5,
    "Compress": true,
    "Level": "warn",
    "Subsystems": [
      "generator"
    ]
  }
}`)
			cfg := LoggingConfig{}

			err := json.Unmarshal(data, &cfg)
			require.NoError(t, err)

			fileLog, ok := cfg.Config.(*FileLogging)
			require.True(t, ok)

			assert.Equal(t, "warn", fileLog.Level)
			assert.Contains(t, fileLog.Subsystems, "generator")
			assert.False(t, fileLog.NegateSubsystems)

			assert.Equal(t, "codegen.log", fileLog.Filename)
			assert.Equal(t, 10, fileLog.Size)
			assert.Equal(t, 5, fileLog.Count)
			assert.True(t, fileLog.Compress)
		})
	})
}

func TestBaseLogging_LogLevel(t *testing.T) {
	t.Run("defaults to info", func(t *testing.T) {
		level, err := BaseLogging{}.LogLevel()
		require.NoError(t, err)
		assert.Equal(t, logwrap.Info, level)
	})

	t.Run("resolves level names", func(t *testing.T) {
		level, err := BaseLogging{Level: "trace"}.LogLevel()
		require.NoError(t, err)
		assert.Equal(t, logwrap.Trace, level)
	})

	t.Run("errors on unknown levels", func(t *testing.T) {
		_, err := BaseLogging{Level: "loud"}.LogLevel()
		assert.Error(t, err)
	})
}

func TestBaseLogging_Accepts(t *testing.T) {
	t.Run("accepts everything without subsystems", func(t *testing.T) {
		assert.True(t, BaseLogging{}.Accepts("generator"))
	})

	t.Run("accepts only listed subsystems", func(t *testing.T) {
		cfg := BaseLogging{Subsystems: []string{"writer"}}

		assert.True(t, cfg.Accepts("writer"))
		assert.False(t, cfg.Accepts("generator"))
	})

	t.Run("rejects listed subsystems when negated", func(t *testing.T) {
		cfg := BaseLogging{Subsystems: []string{"writer"}, NegateSubsystems: true}

		assert.False(t, cfg.Accepts("writer"))
		assert.True(t, cfg.Accepts("generator"))
	})
}
