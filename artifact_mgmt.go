package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/shimmeringbee/logwrap"
	"github.com/shimmeringbee/openhab-codegen/generator"
)

const DefaultFilePermissions = 0644

// ArtifactWriter shows how each artifact differs from the file on disk and, when committing,
// replaces the file.
type ArtifactWriter struct {
	OpenHABDirectory string
	ConfigDirectory  string

	Commit bool
	Diff   io.Writer
	Logger logwrap.Logger
}

func (w *ArtifactWriter) target(a generator.Artifact) string {
	root := w.OpenHABDirectory
	if a.Root == generator.ConfigRoot {
		root = w.ConfigDirectory
	}

	return filepath.Join(root, filepath.FromSlash(a.Path))
}

func renderArtifact(a generator.Artifact) string {
	return strings.Join(a.Lines, "\n") + "\n"
}

// Write reports if the artifact differs from the file on disk. Only a committing writer
// touches the filesystem.
func (w *ArtifactWriter) Write(ctx context.Context, a generator.Artifact) (bool, error) {
	target := w.target(a)
	content := renderArtifact(a)

	previous, err := os.ReadFile(target)
	exists := err == nil

	if !exists {
		w.Logger.LogInfo(ctx, "File does not exist, it will be created.", logwrap.Datum("file", target), logwrap.Err(err))
	} else if string(previous) == content {
		w.Logger.LogDebug(ctx, "File is unchanged.", logwrap.Datum("file", target))
		return false, nil
	}

	if exists {
		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(string(previous)),
			B:        difflib.SplitLines(content),
			FromFile: filepath.Base(target),
			ToFile:   filepath.Base(target),
			Context:  3,
		})
		if err != nil {
			return false, fmt.Errorf("failed to diff '%s': %w", target, err)
		}

		if _, err := io.WriteString(w.Diff, diff); err != nil {
			return false, fmt.Errorf("failed to output diff of '%s': %w", target, err)
		}
	}

	if !w.Commit {
		return true, nil
	}

	if err := os.MkdirAll(filepath.Dir(target), DefaultDirectoryPermissions); err != nil {
		return false, fmt.Errorf("failed to create directory for '%s': %w", target, err)
	}

	if err := safeWriteFile(target, []byte(content), DefaultFilePermissions); err != nil {
		return false, fmt.Errorf("failed to write '%s': %w", target, err)
	}

	w.Logger.LogInfo(ctx, "Wrote file.", logwrap.Datum("file", target))
	return true, nil
}
