package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
)

var (
	ErrUnknownLevel = errors.New("unknown level")
	ErrInvalid      = errors.New("invalid catalog")
)

// Catalog is an ordered, read-only set of levels and their questions.
type Catalog struct {
	version       string
	passThreshold int
	levels        []Level
	questions     map[int][]Question
}

// fileLevel is the on-disk shape of a level entry.
type fileLevel struct {
	Level
	Questions []Question `json:"questions"`
}

// fileCatalog is the on-disk shape of a catalog document.
type fileCatalog struct {
	Version       string      `json:"version"`
	PassThreshold int         `json:"pass_threshold,omitempty"`
	Levels        []fileLevel `json:"levels"`
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	if err := validateDocument(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	var doc fileCatalog
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalid, err)
	}
	if err := checkVersion(doc.Version); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	c := build(doc)
	if err := validateCatalog(c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return c, nil
}

// LoadFile reads and parses the catalog at path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Load returns the catalog at path, or the built-in catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

func build(doc fileCatalog) *Catalog {
	c := &Catalog{
		version:       doc.Version,
		passThreshold: doc.PassThreshold,
		levels:        make([]Level, 0, len(doc.Levels)),
		questions:     make(map[int][]Question, len(doc.Levels)),
	}
	if c.passThreshold == 0 {
		c.passThreshold = DefaultPassThreshold
	}
	for _, fl := range doc.Levels {
		c.levels = append(c.levels, fl.Level)
		qs := make([]Question, len(fl.Questions))
		for i, q := range fl.Questions {
			if q.MaxCorrect == 0 {
				q.MaxCorrect = 1
			}
			qs[i] = q
		}
		c.questions[fl.ID] = qs
	}
	slices.SortStableFunc(c.levels, func(a, b Level) int { return a.ID - b.ID })
	return c
}

// Version returns the catalog format version.
func (c *Catalog) Version() string {
	return c.version
}

// PassThreshold returns the minimum correct answers needed to pass a level.
func (c *Catalog) PassThreshold() int {
	return c.passThreshold
}

// Levels returns all levels in play order.
func (c *Catalog) Levels() []Level {
	return slices.Clone(c.levels)
}

// Level returns the level with the given ID.
func (c *Catalog) Level(id int) (Level, error) {
	for _, l := range c.levels {
		if l.ID == id {
			return l, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %d", ErrUnknownLevel, id)
}

// QuestionsForLevel returns the fixed, ordered question set for a level.
func (c *Catalog) QuestionsForLevel(id int) ([]Question, error) {
	qs, ok := c.questions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, id)
	}
	return slices.Clone(qs), nil
}

// MaxLevelID returns the ID of the final level, or 0 for an empty catalog.
func (c *Catalog) MaxLevelID() int {
	if len(c.levels) == 0 {
		return 0
	}
	return c.levels[len(c.levels)-1].ID
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.levels)
}
