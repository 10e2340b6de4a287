package help

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/hollowmere/fieldguide/internal/errors"
)

// Hint is one gameplay tip shown under the menu intro.
type Hint struct {
	Category string
	Text     string
}

// Hints is the loaded snippet pool, drawn from at random once per menu
// session.
type Hints struct {
	all []Hint
	rng *rand.Rand
}

type hintRecord struct {
	Type     *string `json:"type"`
	Category string  `json:"category"`
	Text     *string `json:"text"`
}

// LoadHints reads hint snippets from a JSON file. A missing file is not an
// error; the menu simply shows no hint line.
func LoadHints(path string) (*Hints, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Hints{}, nil
		}
		return nil, fmt.Errorf("loading hints: %w", &errors.ParseError{File: path, Record: -1, Err: err})
	}
	defer func() { _ = f.Close() }()
	return LoadHintsReader(f, path)
}

// LoadHintsReader reads hint snippets from JSON content.
func LoadHintsReader(r io.Reader, name string) (*Hints, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("loading hints: %w", &errors.ParseError{File: name, Record: -1, Err: err})
	}

	var records []hintRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("loading hints: %w", &errors.ParseError{File: name, Record: -1, Err: err})
	}

	h := &Hints{}
	for i, rec := range records {
		if rec.Type == nil {
			return nil, &errors.ParseError{File: name, Record: i, Field: "type"}
		}
		if rec.Text == nil {
			return nil, &errors.ParseError{File: name, Record: i, Field: "text"}
		}
		h.all = append(h.all, Hint{Category: rec.Category, Text: *rec.Text})
	}
	return h, nil
}

// Seed fixes the random source. Used by tests.
func (h *Hints) Seed(seed int64) {
	h.rng = rand.New(rand.NewSource(seed))
}

// Random returns a random hint from the given category, or false when the
// category is empty.
func (h *Hints) Random(category string) (Hint, bool) {
	var pool []Hint
	for _, hint := range h.all {
		if hint.Category == category {
			pool = append(pool, hint)
		}
	}
	if len(pool) == 0 {
		return Hint{}, false
	}
	if h.rng != nil {
		return pool[h.rng.Intn(len(pool))], true
	}
	return pool[rand.Intn(len(pool))], true
}

// Len returns the number of loaded hints across all categories.
func (h *Hints) Len() int {
	return len(h.all)
}
