// Package display renders decks, hands and rounds as terminal text.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/pokerhands/internal/deck"
	"github.com/lox/pokerhands/internal/evaluator"
	"github.com/lox/pokerhands/internal/game"
	"github.com/muesli/termenv"
)

// CardsPerLine is how many cards a deck listing prints per row
const CardsPerLine = deck.NumRanks

// Section headers, in pipeline order
const (
	OrderedTitle  = "Original Ordered Deck:"
	ShuffledTitle = "Random Shuffled Deck:"
	DealtTitle    = "(dealt from top/front of deck)"
	SortedTitle   = "sorted"
	RankedTitle   = "ranked"
	WinnersTitle  = "winner(s)"
	TestTitle     = "test"
)

// Mode selects what a hand row shows after its cards
type Mode int

const (
	// Plain shows cards only
	Plain Mode = iota
	// WithCategory appends " - <category>"
	WithCategory
	// WithWinner appends the category and " - winner" on winning hands
	WithWinner
	// Testing labels rows "Hand: " and appends the category
	Testing
)

// Renderer formats output with an optional color profile
type Renderer struct {
	lg *lipgloss.Renderer

	red    lipgloss.Style
	black  lipgloss.Style
	header lipgloss.Style
	winner lipgloss.Style
}

// NewRenderer creates a renderer for w. With color false all styling is
// stripped, which also makes output stable for tests.
func NewRenderer(w io.Writer, color bool) *Renderer {
	lg := lipgloss.NewRenderer(w)
	if !color {
		lg.SetColorProfile(termenv.Ascii)
	}
	return NewRendererWithProfile(lg)
}

// NewRendererWithProfile builds a renderer around an existing lipgloss renderer
func NewRendererWithProfile(lg *lipgloss.Renderer) *Renderer {
	return &Renderer{
		lg:     lg,
		red:    lg.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		black:  lg.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Bold(true),
		header: lg.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true),
		winner: lg.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
	}
}

// Card renders one card as "[ A-♥ ] "
func (r *Renderer) Card(c deck.Card) string {
	style := r.black
	if c.IsRed() {
		style = r.red
	}
	return style.Render(fmt.Sprintf("[ %s-%s ]", c.Rank, c.Suit)) + " "
}

// Deck renders a title and the deck, CardsPerLine cards per row
func (r *Renderer) Deck(title string, d deck.Deck) string {
	var b strings.Builder
	b.WriteString(r.header.Render(title))
	for i, c := range d {
		if i%CardsPerLine == 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.Card(c))
	}
	b.WriteString("\n\n")
	return b.String()
}

// Hands renders one row per hand under "Player Hands: <title>". best is only
// consulted in WithWinner mode.
func (r *Renderer) Hands(title string, hands []evaluator.Hand, mode Mode, best evaluator.Category) string {
	var b strings.Builder
	b.WriteString(r.header.Render("Player Hands: " + title))
	for i, h := range hands {
		if mode == Testing {
			b.WriteString("\nHand: ")
		} else {
			fmt.Fprintf(&b, "\nPlayer  %d] - ", i+1)
		}

		for _, c := range h.Cards {
			b.WriteString(r.Card(c))
		}

		if mode == Plain {
			continue
		}
		fmt.Fprintf(&b, " - %s", h.Category)
		if mode == WithWinner && h.Category == best {
			b.WriteString(r.winner.Render(" - winner"))
		}
	}
	b.WriteString("\n\n")
	return b.String()
}

// Stage is one titled step of a round
type Stage struct {
	Title string
	Body  string
}

// Stages renders each step of a round in order. Test hands are appended as a
// final stage when non-empty.
func (r *Renderer) Stages(round *game.Round, tests []evaluator.Hand) []Stage {
	stages := []Stage{
		{OrderedTitle, r.Deck(OrderedTitle, round.Ordered)},
		{ShuffledTitle, r.Deck(ShuffledTitle, round.Shuffled)},
		{DealtTitle, r.Hands(DealtTitle, round.Dealt, Plain, 0)},
		{SortedTitle, r.Hands(SortedTitle, round.Sorted, Plain, 0)},
		{RankedTitle, r.Hands(RankedTitle, round.Ranked, WithCategory, 0)},
		{WinnersTitle, r.Hands(WinnersTitle, round.Ranked, WithWinner, round.Best)},
	}
	if len(tests) > 0 {
		stages = append(stages, Stage{TestTitle, r.Hands(TestTitle, tests, Testing, 0)})
	}
	return stages
}

// Round renders every stage of a round as one block of text
func (r *Renderer) Round(round *game.Round, tests []evaluator.Hand) string {
	var b strings.Builder
	for _, s := range r.Stages(round, tests) {
		b.WriteString(s.Body)
	}
	return b.String()
}
