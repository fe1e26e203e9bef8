package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	lw "github.com/shimmeringbee/logwrap"
	"github.com/shimmeringbee/logwrap/impl/nest"
	"github.com/shimmeringbee/openhab-codegen/generator"
	"github.com/shimmeringbee/openhab-codegen/registry"
)

func main() {
	ctx := context.Background()

	args, err := parseArguments(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "openhab-codegen: %v\n", err)
		fmt.Fprintf(os.Stderr, "usage: %s\n", generator.RegenerateCommand)
		os.Exit(2)
	}

	l, err := consoleLogging(args.LogLevel, os.Stderr)
	if err != nil {
		l.LogError(ctx, "Failed to configure console logging.", lw.Err(err))
		os.Exit(2)
	}

	l, err = configureLogging(filepath.Join(args.ConfigDirectory, "logging"), args.LogDirectory, l)
	if err != nil {
		l.LogError(ctx, "Failed to configure logging.", lw.Err(err))
		os.Exit(1)
	}

	l.LogInfo(ctx, "openHAB codegen - Starting...", lw.Datum("config", args.ConfigDirectory), lw.Datum("openhab", args.OpenHABDirectory), lw.Datum("write", args.Write))

	if err := run(ctx, l, args, os.Stdout); err != nil {
		l.LogError(ctx, "Generation failed, nothing was written.", lw.Err(err))
		os.Exit(1)
	}
}

// run generates every artifact before writing any of them, so configuration errors leave the
// openHAB directory untouched.
func run(ctx context.Context, l lw.Logger, args Arguments, diff io.Writer) error {
	inventories, err := loadInventories(filepath.Join(args.ConfigDirectory, "conf"))
	if err != nil {
		return fmt.Errorf("failed to load inventories: %w", err)
	}

	y2m, err := loadY2M(filepath.Join(args.ConfigDirectory, "y2m.yaml"))
	if err != nil {
		return fmt.Errorf("failed to load y2m configuration: %w", err)
	}

	l.LogInfo(ctx, "Loaded configuration.", lw.Datum("inventories", len(inventories)), lw.Datum("rooms", len(y2m.Rooms)))

	inv, err := generator.BuildInventory(registry.Default(), inventories, y2m)
	if err != nil {
		return fmt.Errorf("failed to build inventory: %w", err)
	}

	gl := lw.New(nest.Wrap(l))
	gl.AddOptionsToLogger(lw.Source("generator"))

	g := generator.Generator{Logger: gl}

	artifacts, err := g.Generate(ctx, inv)
	if err != nil {
		return fmt.Errorf("failed to generate: %w", err)
	}

	wl := lw.New(nest.Wrap(l))
	wl.AddOptionsToLogger(lw.Source("writer"))

	w := ArtifactWriter{
		OpenHABDirectory: args.OpenHABDirectory,
		ConfigDirectory:  args.ConfigDirectory,
		Commit:           args.Write,
		Diff:             diff,
		Logger:           wl,
	}

	changed := 0

	for _, a := range artifacts {
		updated, err := w.Write(ctx, a)
		if err != nil {
			return err
		}

		if updated {
			changed++
		}
	}

	if changed > 0 && !args.Write {
		l.LogInfo(ctx, "Dry run complete, rerun with -write to apply changes.", lw.Datum("artifacts", len(artifacts)), lw.Datum("changed", changed))
	} else {
		l.LogInfo(ctx, "Generation complete.", lw.Datum("artifacts", len(artifacts)), lw.Datum("changed", changed))
	}

	return nil
}
