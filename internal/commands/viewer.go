// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hollowmere/fieldguide/internal/config"
	"github.com/hollowmere/fieldguide/internal/help"
	"github.com/hollowmere/fieldguide/internal/i18n"
	"github.com/hollowmere/fieldguide/internal/ignore"
	"github.com/hollowmere/fieldguide/internal/input"
	"github.com/hollowmere/fieldguide/internal/markup"
	"github.com/hollowmere/fieldguide/internal/paths"
	"github.com/hollowmere/fieldguide/internal/tui"
	"github.com/hollowmere/fieldguide/internal/tui/debug"
)

// dataFiles are the resolved locations of the three data files the viewer
// reads.
type dataFiles struct {
	help        string
	keybindings string
	hints       string
}

// resolveFiles applies config overrides over the XDG game directories.
func resolveFiles(cfg *config.Config) (*paths.Registry, dataFiles) {
	registry := paths.Default()
	if cfg.DataDir != "" {
		registry = paths.ForDataDir(cfg.DataDir, registry.ConfigDir)
	}

	files := dataFiles{
		help:        cfg.HelpFile,
		keybindings: cfg.KeybindingsFile,
		hints:       cfg.HintsFile,
	}
	if files.help == "" {
		files.help = registry.HelpDataPath()
	}
	if files.keybindings == "" {
		files.keybindings = registry.KeybindingsPath()
	}
	if files.hints == "" {
		files.hints = registry.HintsPath()
	}
	return registry, files
}

// loadBindings merges the keybindings file over the compiled-in defaults.
// A missing file just means defaults.
func loadBindings(path string) (*input.Bindings, error) {
	bindings := input.Defaults()
	if err := bindings.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return bindings, nil
}

// buildService wires the resolver and loads the topic table, shared by the
// viewer and the non-interactive commands.
func buildService(cfg *config.Config) (*help.Service, *paths.Registry, dataFiles, error) {
	registry, files := resolveFiles(cfg)

	bindings, err := loadBindings(files.keybindings)
	if err != nil {
		return nil, nil, files, err
	}

	translator, err := i18n.ForLanguage(registry.LangDir(), cfg.Language)
	if err != nil {
		return nil, nil, files, err
	}

	resolver := help.NewResolver(bindings, markup.DefaultPalette(), registry, translator, debug.LogToFilef)
	service := help.NewService(resolver)
	if err := service.Load(files.help); err != nil {
		return nil, nil, files, err
	}
	return service, registry, files, nil
}

func runViewer(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("fieldguide is interactive and needs a terminal; try 'fieldguide topics' for scripted use")
	}

	service, _, files, err := buildService(cfg)
	if err != nil {
		return err
	}

	hints, err := help.LoadHints(files.hints)
	if err != nil {
		// Hints are decoration; a broken file shouldn't block the viewer.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		hints = &help.Hints{}
	}

	app := tui.NewApp(service, hints, cfg.Language)

	if cfg.Watch {
		watcher, err := help.NewWatcher([]string{filepath.Dir(files.help)}, ignore.NewMatcher(), debug.LogToFilef)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: watch disabled: %v\n", err)
		} else {
			defer watcher.Close()
			app.EnableWatch(watcher, files.help)
		}
	}

	return app.Run()
}
