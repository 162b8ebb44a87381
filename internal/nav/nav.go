// Package nav owns the flashcard cursor and its saturating navigation commands.
package nav

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
)

// ErrEmpty reports a navigator over zero letters.
var ErrEmpty = errors.New("navigator requires at least one letter")

// Source draws uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource returns the process-wide math/rand/v2 generator.
func DefaultSource() Source {
	return globalSource{}
}

// Navigator holds the cursor into a catalog of length n. 0 <= cursor < n always holds.
type Navigator struct {
	mu     sync.Mutex
	cursor int
	length int
	source Source
}

// New creates a navigator positioned at index 0.
func New(length int, source Source) (*Navigator, error) {
	if length <= 0 {
		return nil, ErrEmpty
	}
	if source == nil {
		source = DefaultSource()
	}
	return &Navigator{length: length, source: source}, nil
}

// Cursor returns the current index.
func (n *Navigator) Cursor() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.cursor
}

// Len returns the catalog length the navigator was built for.
func (n *Navigator) Len() int {
	return n.length
}

// Advance moves forward one letter, stopping at the last one.
func (n *Navigator) Advance() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.cursor < n.length-1 {
		n.cursor++
	}
	return n.cursor
}

// Retreat moves back one letter, stopping at the first one.
func (n *Navigator) Retreat() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.cursor > 0 {
		n.cursor--
	}
	return n.cursor
}

// JumpRandom moves to a uniformly drawn index.
func (n *Navigator) JumpRandom() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	next := n.source.IntN(n.length)
	if next < 0 || next >= n.length {
		panic(fmt.Sprintf("nav: random source returned %d outside [0, %d)", next, n.length))
	}
	n.cursor = next
	return n.cursor
}
