// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Registry holds the resolved filesystem locations the game reads and
// writes. It backs the <GAME_DIRECTORIES> help macro and the dirs command.
type Registry struct {
	DataDir      string
	ConfigDir    string
	SaveDir      string
	GraveyardDir string
	LogDir       string
}

// Default resolves the game directories from XDG base paths, honoring
// HOLLOWMERE_DATA_DIR and HOLLOWMERE_CONFIG_DIR overrides.
func Default() *Registry {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = xdg.DataHome
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}

	dataDir := filepath.Join(dataHome, "hollowmere")
	if env := os.Getenv("HOLLOWMERE_DATA_DIR"); env != "" {
		dataDir = env
	}
	configDir := filepath.Join(configHome, "hollowmere")
	if env := os.Getenv("HOLLOWMERE_CONFIG_DIR"); env != "" {
		configDir = env
	}

	return ForDataDir(dataDir, configDir)
}

// ForDataDir builds a registry rooted at an explicit data directory, for
// config files that relocate the game data.
func ForDataDir(dataDir, configDir string) *Registry {
	return &Registry{
		DataDir:      dataDir,
		ConfigDir:    configDir,
		SaveDir:      filepath.Join(dataDir, "saves"),
		GraveyardDir: filepath.Join(dataDir, "graveyard"),
		LogDir:       filepath.Join(dataDir, "logs"),
	}
}

// Resolved renders the directory summary substituted for the
// <GAME_DIRECTORIES> macro.
func (r *Registry) Resolved() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Data directory: %s\n", r.DataDir))
	b.WriteString(fmt.Sprintf("Config directory: %s\n", r.ConfigDir))
	b.WriteString(fmt.Sprintf("Save directory: %s\n", r.SaveDir))
	b.WriteString(fmt.Sprintf("Graveyard directory: %s\n", r.GraveyardDir))
	b.WriteString(fmt.Sprintf("Log directory: %s", r.LogDir))
	return b.String()
}

// HelpDataPath returns the default location of the help topics file.
func (r *Registry) HelpDataPath() string {
	return filepath.Join(r.DataDir, "help", "texts.json")
}

// KeybindingsPath returns the default location of the keybindings file.
func (r *Registry) KeybindingsPath() string {
	return filepath.Join(r.ConfigDir, "keybindings.json")
}

// HintsPath returns the default location of the hint snippets file.
func (r *Registry) HintsPath() string {
	return filepath.Join(r.DataDir, "help", "hints.json")
}

// LangDir returns the directory holding language catalogs.
func (r *Registry) LangDir() string {
	return filepath.Join(r.DataDir, "lang")
}
