// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package errors

import (
	"errors"
	"fmt"
)

// FormatUserError renders an error for end users, favoring the typed
// errors' own messages over wrapped chains.
func FormatUserError(err error) string {
	if err == nil {
		return ""
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Error()
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Error()
	}

	var notFoundErr *NotFoundError
	if errors.As(err, &notFoundErr) {
		return notFoundErr.Error()
	}

	var actionErr *UnknownActionError
	if errors.As(err, &actionErr) {
		return fmt.Sprintf("%s. The token was dropped from the rendered text.", actionErr.Error())
	}

	return err.Error()
}
