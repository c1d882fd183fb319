// Package corpus holds the fixed set of canned post bodies used by the
// mock generation strategy.
package corpus

import (
	_ "embed"
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed corpus.yaml
var builtinYAML []byte

// Entry is a single candidate post body
type Entry struct {
	Title   string   `yaml:"title"`
	Genre   []string `yaml:"genre"`
	Content string   `yaml:"content"`
}

// Corpus is an immutable set of candidate post bodies
type Corpus struct {
	entries []Entry
}

// Load returns the corpus from the given YAML file, or the built-in set
// when path is empty
func Load(path string) (*Corpus, error) {
	data := builtinYAML
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read corpus file: %w", err)
		}
		data = fileData
	}

	var doc struct {
		Entries []Entry `yaml:"entries"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse corpus: %w", err)
	}
	if len(doc.Entries) == 0 {
		return nil, fmt.Errorf("corpus contains no entries")
	}

	return &Corpus{entries: doc.Entries}, nil
}

// Len returns the number of entries
func (c *Corpus) Len() int {
	return len(c.entries)
}

// Pick returns a uniformly random entry. Genre is copied so callers
// cannot mutate the corpus.
func (c *Corpus) Pick(rng *rand.Rand) Entry {
	e := c.entries[rng.Intn(len(c.entries))]
	genre := make([]string, len(e.Genre))
	copy(genre, e.Genre)
	e.Genre = genre
	return e
}

// Entries returns a copy of all entries
func (c *Corpus) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	for i := range out {
		genre := make([]string, len(out[i].Genre))
		copy(genre, out[i].Genre)
		out[i].Genre = genre
	}
	return out
}
