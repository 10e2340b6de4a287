// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package i18n

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Translator returns the display form of a source string. Topic names are
// translated at render time and message lines at display time, never at
// load time.
type Translator interface {
	Translate(s string) string
}

// Identity passes every string through unchanged. It is the translator
// used when no language catalog is configured.
type Identity struct{}

func (Identity) Translate(s string) string { return s }

// Catalog is a flat source-to-translation map loaded from a YAML file.
// Strings without an entry fall through unchanged.
type Catalog struct {
	lang    string
	entries map[string]string
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening language catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	c, err := LoadReader(f)
	if err != nil {
		return nil, fmt.Errorf("parsing language catalog %s: %w", path, err)
	}
	c.lang = langFromPath(path)
	return c, nil
}

// LoadReader reads a catalog from YAML content.
func LoadReader(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	entries := make(map[string]string)
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return &Catalog{entries: entries}, nil
}

// ForLanguage returns the translator for a language code, looking for
// <dir>/<lang>.yaml. An empty or "en" code, or a missing catalog file,
// yields the identity translator; only an unreadable or malformed catalog
// is an error.
func ForLanguage(dir, lang string) (Translator, error) {
	if lang == "" || lang == "en" {
		return Identity{}, nil
	}

	path := filepath.Join(dir, lang+".yaml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Identity{}, nil
	}
	return Load(path)
}

// Translate returns the catalog entry for s, or s itself when no entry
// exists.
func (c *Catalog) Translate(s string) string {
	if t, ok := c.entries[s]; ok && t != "" {
		return t
	}
	return s
}

// Lang returns the language code the catalog was loaded for.
func (c *Catalog) Lang() string { return c.lang }

// Len returns the number of catalog entries.
func (c *Catalog) Len() int { return len(c.entries) }

func langFromPath(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}
