// Package ignore filters editor and VCS artifacts out of file watch
// events using go-git's gitignore pattern matching.
package ignore

import (
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// defaultPatterns cover the scratch files editors drop next to the file
// being written: swap files, backups, atomic-save temporaries.
var defaultPatterns = []string{
	"*.swp",
	"*.swo",
	"*.swx",
	"*~",
	".#*",
	`\#*#`,
	"4913", // vim write-check probe
	"*.tmp",
	"*.bak",
	".DS_Store",
	".git/",
	".jj/",
}

// Matcher checks file names against gitignore-format patterns.
type Matcher struct {
	matcher gitignore.Matcher
}

// NewMatcher builds a matcher from the default artifact patterns plus any
// extra patterns in gitignore syntax.
func NewMatcher(extra ...string) *Matcher {
	var patterns []gitignore.Pattern
	for _, line := range append(append([]string(nil), defaultPatterns...), extra...) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	return &Matcher{matcher: gitignore.NewMatcher(patterns)}
}

// Match reports whether a file name (not a full path) is an artifact that
// watch consumers should never see. isDir must be true for directories so
// directory-only patterns apply.
func (m *Matcher) Match(name string, isDir bool) bool {
	if name == "" {
		return false
	}
	return m.matcher.Match([]string{name}, isDir)
}
