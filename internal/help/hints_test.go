package help

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/hollowmere/fieldguide/internal/errors"
)

const sampleHints = `[
	{"type": "hint", "category": "tip", "text": "Butter makes torches burn longer."},
	{"type": "hint", "category": "tip", "text": "Wolves fear fire. So do you."},
	{"type": "hint", "category": "grave", "text": "Rest now, wanderer."}
]`

func TestLoadHints(t *testing.T) {
	h, err := LoadHintsReader(strings.NewReader(sampleHints), "hints.json")
	require.NoError(t, err)
	assert.Equal(t, 3, h.Len())

	h.Seed(1)
	hint, ok := h.Random("tip")
	require.True(t, ok)
	assert.Equal(t, "tip", hint.Category)
	assert.Contains(t, []string{
		"Butter makes torches burn longer.",
		"Wolves fear fire. So do you.",
	}, hint.Text)

	hint, ok = h.Random("grave")
	require.True(t, ok)
	assert.Equal(t, "Rest now, wanderer.", hint.Text)

	_, ok = h.Random("prophecy")
	assert.False(t, ok)
}

func TestHintsSeedIsDeterministic(t *testing.T) {
	h, err := LoadHintsReader(strings.NewReader(sampleHints), "hints.json")
	require.NoError(t, err)

	var first []string
	h.Seed(42)
	for i := 0; i < 10; i++ {
		hint, ok := h.Random("tip")
		require.True(t, ok)
		first = append(first, hint.Text)
	}

	h.Seed(42)
	for i := 0; i < 10; i++ {
		hint, ok := h.Random("tip")
		require.True(t, ok)
		assert.Equal(t, first[i], hint.Text)
	}
}

func TestLoadHintsMissingFields(t *testing.T) {
	_, err := LoadHintsReader(strings.NewReader(
		`[{"category": "tip", "text": "x"}]`), "hints.json")
	require.Error(t, err)

	var perr *apperrors.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 0, perr.Record)
	assert.Equal(t, "type", perr.Field)

	_, err = LoadHintsReader(strings.NewReader(
		`[{"type": "hint", "category": "tip"}]`), "hints.json")
	require.Error(t, err)
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "text", perr.Field)
}

func TestLoadHintsFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hints.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleHints), 0o644))

	h, err := LoadHints(path)
	require.NoError(t, err)
	assert.Equal(t, 3, h.Len())

	// Hints are flavor, not data: a missing file is an empty set.
	h, err = LoadHints(filepath.Join(dir, "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, 0, h.Len())

	_, ok := h.Random("tip")
	assert.False(t, ok)
}
