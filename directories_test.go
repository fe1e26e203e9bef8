package main

import (
	"errors"
	"flag"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseArguments(t *testing.T) {
	t.Run("accepts directories positionally", func(t *testing.T) {
		args, err := parseArguments([]string{"-write", "conf", "openhab"}, io.Discard)
		require.NoError(t, err)

		assert.Equal(t, "conf", args.ConfigDirectory)
		assert.Equal(t, "openhab", args.OpenHABDirectory)
		assert.True(t, args.Write)
	})

	t.Run("accepts directories as flags and defaults to a dry run", func(t *testing.T) {
		args, err := parseArguments([]string{"-config-directory", "conf", "-openhab-directory", "openhab"}, io.Discard)
		require.NoError(t, err)

		assert.Equal(t, "conf", args.ConfigDirectory)
		assert.Equal(t, "openhab", args.OpenHABDirectory)
		assert.False(t, args.Write)
		assert.Equal(t, "info", args.LogLevel)
		assert.Equal(t, filepath.Join("conf", "log"), args.LogDirectory)
	})

	t.Run("reads arguments from the environment", func(t *testing.T) {
		t.Setenv("CONFIG_DIRECTORY", "env-conf")
		t.Setenv("OPENHAB_DIRECTORY", "env-openhab")
		t.Setenv("WRITE", "true")
		t.Setenv("LOG_LEVEL", "debug")

		args, err := parseArguments(nil, io.Discard)
		require.NoError(t, err)

		assert.Equal(t, "env-conf", args.ConfigDirectory)
		assert.Equal(t, "env-openhab", args.OpenHABDirectory)
		assert.True(t, args.Write)
		assert.Equal(t, "debug", args.LogLevel)
	})

	t.Run("errors without both directories", func(t *testing.T) {
		_, err := parseArguments([]string{"conf"}, io.Discard)
		assert.True(t, errors.Is(err, ErrMissingDirectory))
	})

	t.Run("errors on extra arguments", func(t *testing.T) {
		_, err := parseArguments([]string{"conf", "openhab", "extra"}, io.Discard)
		assert.Error(t, err)
	})

	t.Run("errors on unknown flags", func(t *testing.T) {
		_, err := parseArguments([]string{"-commit", "conf", "openhab"}, io.Discard)
		assert.Error(t, err)
	})

	t.Run("returns help when requested", func(t *testing.T) {
		_, err := parseArguments([]string{"-h"}, io.Discard)
		assert.True(t, errors.Is(err, flag.ErrHelp))
	})
}
