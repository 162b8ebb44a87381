// Package catalog holds the immutable, ordered table of Thai alphabet letters.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOutOfRange reports an index outside [0, Len).
	ErrOutOfRange = errors.New("catalog index out of range")
	// ErrEmptyCatalog reports a catalog built from no letters.
	ErrEmptyCatalog = errors.New("catalog is empty")
	// ErrInvalidLetter reports a record whose optional fields disagree with its kind.
	ErrInvalidLetter = errors.New("invalid letter record")
)

// Letter is one alphabet entry. Example and ExampleMeaning are set only for consonants.
type Letter struct {
	Glyph          string
	Latin          string
	Pronunciation  string
	Example        string
	ExampleMeaning string
	Consonant      bool
}

// HasExample reports whether the letter carries an example word.
func (l Letter) HasExample() bool {
	return l.Example != ""
}

// AudioKey names the pronunciation clip: the example word for consonants, the glyph otherwise.
func (l Letter) AudioKey() string {
	if l.Consonant {
		return l.Example
	}
	return l.Glyph
}

func (l Letter) validate() error {
	if strings.TrimSpace(l.Glyph) == "" {
		return fmt.Errorf("%w: empty glyph", ErrInvalidLetter)
	}
	if l.HasExample() != l.Consonant || (l.ExampleMeaning != "") != l.Consonant {
		return fmt.Errorf("%w: %q consonant=%t example=%q meaning=%q",
			ErrInvalidLetter, l.Glyph, l.Consonant, l.Example, l.ExampleMeaning)
	}
	return nil
}

// Catalog is a fixed, non-empty sequence of letters. It is never mutated after New.
type Catalog struct {
	letters []Letter
}

// New validates and copies letters into a catalog.
func New(letters []Letter) (*Catalog, error) {
	if len(letters) == 0 {
		return nil, ErrEmptyCatalog
	}
	for i, l := range letters {
		if err := l.validate(); err != nil {
			return nil, fmt.Errorf("letter %d: %w", i, err)
		}
	}
	owned := make([]Letter, len(letters))
	copy(owned, letters)
	return &Catalog{letters: owned}, nil
}

// Thai returns the built-in alphabet.
func Thai() *Catalog {
	c, err := New(thaiLetters)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog: %v", err))
	}
	return c
}

// Len returns the fixed number of letters.
func (c *Catalog) Len() int {
	return len(c.letters)
}

// Get returns the letter at index.
func (c *Catalog) Get(index int) (Letter, error) {
	if index < 0 || index >= len(c.letters) {
		return Letter{}, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, index, len(c.letters))
	}
	return c.letters[index], nil
}

// MustGet is Get for indexes already proven valid; an out-of-range index is a programming error.
func (c *Catalog) MustGet(index int) Letter {
	l, err := c.Get(index)
	if err != nil {
		panic(err)
	}
	return l
}

// Letters returns a copy of the table in catalog order.
func (c *Catalog) Letters() []Letter {
	out := make([]Letter, len(c.letters))
	copy(out, c.letters)
	return out
}

// Consonants counts consonant records.
func (c *Catalog) Consonants() int {
	n := 0
	for _, l := range c.letters {
		if l.Consonant {
			n++
		}
	}
	return n
}

// Vowels counts vowel records.
func (c *Catalog) Vowels() int {
	return len(c.letters) - c.Consonants()
}
