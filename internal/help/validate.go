// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package help

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hollowmere/fieldguide/internal/errors"
	"github.com/hollowmere/fieldguide/internal/input"
)

// Report collects what offline validation found in a help data file.
// Errors block loading or silently lose content; warnings only degrade
// the rendered output.
type Report struct {
	File     string
	Records  int
	Errors   []error
	Warnings []error
}

// Ok reports whether the file is free of errors. Warnings do not count.
func (r *Report) Ok() bool { return len(r.Errors) == 0 }

// ValidateFile runs offline validation over a help data file.
func ValidateFile(path string, bindings *input.Bindings) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("validating help data: %w", &errors.ParseError{File: path, Record: -1, Err: err})
	}
	defer func() { _ = f.Close() }()
	return Validate(f, path, bindings)
}

// Validate checks help data records beyond what loading enforces: loading
// tolerates duplicate orders (the last record wins) and unknown press
// actions (the token is dropped at render), so those surface only here,
// where authors can fix them.
func Validate(r io.Reader, name string, bindings *input.Bindings) (*Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("validating help data: %w", &errors.ParseError{File: name, Record: -1, Err: err})
	}

	var records []topicRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("validating help data: %w", &errors.ParseError{File: name, Record: -1, Err: err})
	}

	report := &Report{File: name, Records: len(records)}
	seen := make(map[int]int) // order -> index of the record that claimed it

	for i, rec := range records {
		if field := missingField(rec); field != "" {
			report.Errors = append(report.Errors, &errors.ParseError{File: name, Record: i, Field: field})
			continue
		}

		if first, dup := seen[*rec.Order]; dup {
			report.Errors = append(report.Errors, &errors.ValidationError{
				Field:   "order",
				Value:   *rec.Order,
				Message: fmt.Sprintf("records %d and %d share order %d; only the last survives loading", first, i, *rec.Order),
			})
		} else {
			seen[*rec.Order] = i
		}

		for _, line := range *rec.Messages {
			for _, seg := range tokenizePress(line) {
				if !seg.press {
					continue
				}
				if _, ok := bindings.Lookup(seg.text); !ok {
					report.Warnings = append(report.Warnings, &errors.UnknownActionError{
						Action:  seg.text,
						Context: fmt.Sprintf("record %d", i),
					})
				}
			}
		}
	}

	return report, nil
}

func missingField(rec topicRecord) string {
	switch {
	case rec.Type == nil:
		return "type"
	case rec.Name == nil:
		return "name"
	case rec.Order == nil:
		return "order"
	case rec.Messages == nil:
		return "messages"
	}
	return ""
}
