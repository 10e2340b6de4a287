// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package help

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/hollowmere/fieldguide/internal/errors"
	"github.com/hollowmere/fieldguide/internal/input"
	"github.com/hollowmere/fieldguide/internal/markup"
)

// Service owns the topic table. It is constructed explicitly and passed to
// whoever needs help content; the table is mutated only by Load and read
// everywhere else.
type Service struct {
	resolver *Resolver
	topics   map[int]*Topic
	index    []int
}

// topicRecord is the JSON shape of one help data record. Pointer fields
// distinguish absent from zero: every field is required.
type topicRecord struct {
	Type     *string   `json:"type"`
	Name     *string   `json:"name"`
	Order    *int      `json:"order"`
	Messages *[]string `json:"messages"`
}

// NewService builds an empty help service around a resolver.
func NewService(resolver *Resolver) *Service {
	return &Service{
		resolver: resolver,
		topics:   make(map[int]*Topic),
	}
}

// Resolver exposes the service's placeholder resolver, so display code can
// translate and resolve text outside the topic table.
func (s *Service) Resolver() *Resolver {
	return s.resolver
}

// Load reads the topic table from a help data file.
func (s *Service) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("loading help data: %w", &errors.ParseError{File: path, Record: -1, Err: err})
	}
	defer func() { _ = f.Close() }()
	return s.LoadReader(f, path)
}

// LoadReader reads the topic table from JSON content. The table is cleared
// before populating, so a reload never mixes old and new entries; a
// mid-parse failure leaves the table cleared or partial, and the error is
// propagated. Record fields type, name, order, and messages are all
// required; a missing field is a hard parse failure. Static macros are
// resolved into the stored lines, and hotkeys are derived from the name.
// Duplicate orders overwrite silently, last record wins.
func (s *Service) LoadReader(r io.Reader, name string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("loading help data: %w", &errors.ParseError{File: name, Record: -1, Err: err})
	}

	s.topics = make(map[int]*Topic)
	s.index = nil

	var records []topicRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("loading help data: %w", &errors.ParseError{File: name, Record: -1, Err: err})
	}

	for i, rec := range records {
		if rec.Type == nil {
			return &errors.ParseError{File: name, Record: i, Field: "type"}
		}
		if rec.Name == nil {
			return &errors.ParseError{File: name, Record: i, Field: "name"}
		}
		if rec.Order == nil {
			return &errors.ParseError{File: name, Record: i, Field: "order"}
		}
		if rec.Messages == nil {
			return &errors.ParseError{File: name, Record: i, Field: "messages"}
		}

		if _, exists := s.topics[*rec.Order]; !exists {
			s.index = append(s.index, *rec.Order)
		}
		s.topics[*rec.Order] = &Topic{
			Order:   *rec.Order,
			Name:    *rec.Name,
			Lines:   s.resolver.ResolveStatic(*rec.Messages),
			Hotkeys: input.Hotkeys(*rec.Name),
		}
	}

	sort.Ints(s.index)
	return nil
}

// Len returns the number of loaded topics.
func (s *Service) Len() int {
	return len(s.index)
}

// Topic looks a topic up by its order key.
func (s *Service) Topic(order int) (*Topic, bool) {
	t, ok := s.topics[order]
	return t, ok
}

// ByIndex returns the i-th topic in ascending order.
func (s *Service) ByIndex(i int) (*Topic, bool) {
	if i < 0 || i >= len(s.index) {
		return nil, false
	}
	return s.topics[s.index[i]], true
}

// Topics returns all topics in ascending order.
func (s *Service) Topics() []*Topic {
	out := make([]*Topic, 0, len(s.index))
	for _, order := range s.index {
		out = append(out, s.topics[order])
	}
	return out
}

// MatchHotkey returns the first topic whose hotkey list contains the raw
// input, in ascending topic order.
func (s *Service) MatchHotkey(raw string) (*Topic, bool) {
	if raw == "" {
		return nil, false
	}
	for _, order := range s.index {
		t := s.topics[order]
		for _, hk := range t.Hotkeys {
			if hk == raw {
				return t, true
			}
		}
	}
	return nil, false
}

// Render builds the transient display form of a topic: lines are
// translated, every <press_ACTION> occurrence is resolved against the
// current bindings, and the lines are joined with blank-line separators.
func (s *Service) Render(t *Topic) Rendered {
	lines := make([]string, len(t.Lines))
	for i, line := range t.Lines {
		lines[i] = s.resolver.ResolvePress(s.resolver.Translate(line))
	}
	return Rendered{
		Title: s.resolver.Translate("Help"),
		Name:  markup.ShortcutText(s.resolver.Translate(t.Name)),
		Body:  strings.Join(lines, "\n\n"),
	}
}
