// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package errors

import (
	"errors"
	"fmt"
)

type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeParse
	ErrorTypeUnknownAction
	ErrorTypeValidation
	ErrorTypeNotFound
)

// ParseError reports a data file that could not be loaded. Load failures
// are fatal for the load operation and propagate to the caller.
type ParseError struct {
	File   string
	Record int // index of the failing record, -1 when not record-scoped
	Field  string
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Field != "" && e.Record >= 0:
		return fmt.Sprintf("parse error in %s: record %d missing or invalid field %q", e.File, e.Record, e.Field)
	case e.Record >= 0:
		return fmt.Sprintf("parse error in %s: record %d: %v", e.File, e.Record, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("parse error in %s: %v", e.File, e.Err)
	default:
		return fmt.Sprintf("parse error in %s", e.File)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnknownActionError reports a <press_ACTION> token naming an action the
// key-binding service does not know. Recoverable: the token is dropped
// and rendering continues.
type UnknownActionError struct {
	Action  string
	Context string
}

func (e *UnknownActionError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("unknown action %q in %s", e.Action, e.Context)
	}
	return fmt.Sprintf("unknown action %q", e.Action)
}

func (e *UnknownActionError) Is(target error) bool {
	t, ok := target.(*UnknownActionError)
	if !ok {
		return false
	}
	return t.Action == "" || t.Action == e.Action
}

// ValidationError reports a data-authoring problem found by offline
// validation, such as a duplicate topic order.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NotFoundError reports a missing topic or data file.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

func IsParseError(err error) bool {
	if err == nil {
		return false
	}
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

func IsUnknownAction(err error) bool {
	if err == nil {
		return false
	}
	var actionErr *UnknownActionError
	return errors.As(err, &actionErr)
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}
