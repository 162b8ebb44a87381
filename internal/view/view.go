// Package view maps a letter to the text shown in each card region.
package view

import (
	"fmt"
	"html"
	"strings"

	"github.com/jozefcuryllo/learn-thai/internal/catalog"
)

// Fonts selects the two typefaces the glyph is rendered in.
type Fonts struct {
	Display      string
	DisplaySize  int
	Fallback     string
	FallbackSize int
}

// DefaultFonts pairs a looped Thai face with a plain Latin-first fallback.
func DefaultFonts() Fonts {
	return Fonts{
		Display:      "Noto Looped Thai UI",
		DisplaySize:  40,
		Fallback:     "Arial",
		FallbackSize: 30,
	}
}

// Span is one font treatment of the glyph.
type Span struct {
	Font string
	Size int
	Text string
}

// Model is the composed card. Meta and Detail start hidden; the shell owns their visibility.
type Model struct {
	Primary []Span
	Meta    string
	Detail  string
}

// Compose builds the card for letter. It never fails and performs no I/O.
func Compose(letter catalog.Letter, fonts Fonts) Model {
	m := Model{
		Primary: []Span{
			{Font: fonts.Display, Size: fonts.DisplaySize, Text: letter.Glyph},
			{Font: fonts.Fallback, Size: fonts.FallbackSize, Text: letter.Glyph},
		},
		Meta: "English letter: " + letter.Latin,
	}
	if letter.HasExample() {
		m.Detail = fmt.Sprintf("Example: %s, %s, %s", letter.Example, letter.Pronunciation, letter.ExampleMeaning)
	}
	return m
}

// PrimaryMarkup renders the primary region as Pango markup for toolkit hosts.
func (m Model) PrimaryMarkup() string {
	parts := make([]string, 0, len(m.Primary))
	for _, span := range m.Primary {
		parts = append(parts, fmt.Sprintf("<span font_desc='%s Normal %d'>%s</span>",
			html.EscapeString(span.Font), span.Size, html.EscapeString(span.Text)))
	}
	return strings.Join(parts, "  ")
}

// Text renders the plain multi-line card printed by the one-shot command.
func Text(letter catalog.Letter) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Letter: %s\n", letter.Glyph)
	if letter.HasExample() {
		fmt.Fprintf(&b, "Example: %s\n", letter.Example)
	}
	fmt.Fprintf(&b, "Pronunciation: %s\n", letter.Pronunciation)
	if letter.ExampleMeaning != "" {
		fmt.Fprintf(&b, "Example meaning: %s\n", letter.ExampleMeaning)
	}
	fmt.Fprintf(&b, "English letter: %s\n", letter.Latin)
	return b.String()
}
