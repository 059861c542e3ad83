package evaluator

import (
	"strings"

	"github.com/lox/handrank/internal/deck"
)

// Rankable is anything that can be ranked as a poker hand.
type Rankable interface {
	Rank() (Rank, error)
}

// Hand is an ordered, growable set of cards owned by the caller.
// It does not check for duplicates; Rank does.
type Hand struct {
	cards []deck.Card
}

var _ Rankable = (*Hand)(nil)

// NewHand creates a hand holding a copy of cards.
func NewHand(cards ...deck.Card) *Hand {
	h := &Hand{cards: make([]deck.Card, 0, max(len(cards), SubsetSize))}
	h.cards = append(h.cards, cards...)
	return h
}

// ParseHand parses card notation such as "AsKsQsJsTs" into a hand.
func ParseHand(s string) (*Hand, error) {
	cards, err := deck.ParseCards(s)
	if err != nil {
		return nil, err
	}
	return NewHand(cards...), nil
}

// Push adds a card to the end of the hand.
func (h *Hand) Push(c deck.Card) {
	h.cards = append(h.cards, c)
}

// Truncate keeps only the first n cards.
func (h *Hand) Truncate(n int) {
	if n >= 0 && n < len(h.cards) {
		h.cards = h.cards[:n]
	}
}

// Len returns the number of cards in the hand.
func (h *Hand) Len() int {
	return len(h.cards)
}

// IsEmpty returns true if the hand holds no cards.
func (h *Hand) IsEmpty() bool {
	return len(h.cards) == 0
}

// At returns the card at position i.
func (h *Hand) At(i int) deck.Card {
	return h.cards[i]
}

// Cards returns a copy of the cards in order.
func (h *Hand) Cards() []deck.Card {
	out := make([]deck.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Rank evaluates the best five-card hand.
func (h *Hand) Rank() (Rank, error) {
	return Evaluate(h.cards)
}

// String returns the cards separated by spaces, e.g. "A♠ K♠ Q♠".
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
