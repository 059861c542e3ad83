package evaluator

import (
	"fmt"
	"strings"

	"github.com/lox/handrank/internal/deck"
)

// Category is the coarse class of a poker hand, weakest first.
type Category uint8

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// Categories returns all nine categories from weakest to strongest.
func Categories() []Category {
	return []Category{HighCard, Pair, TwoPair, ThreeOfAKind, Straight, Flush, FullHouse, FourOfAKind, StraightFlush}
}

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// ParseCategory maps names like "straight-flush", "Full House" or
// "two_pair" onto a category.
func ParseCategory(s string) (Category, error) {
	want := normalizeCategory(s)
	for _, c := range Categories() {
		if normalizeCategory(c.String()) == want {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown hand category %q", s)
}

func normalizeCategory(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(s))
}

const (
	categoryShift = 20
	valueBits     = 4
	maxTiebreaks  = categoryShift / valueBits
)

// Rank is the strength of a five-card poker hand. Higher ranks beat lower
// ranks, and equal ranks are true ties regardless of suits.
//
// The category (offset by one, so the zero Rank is never a real result) sits
// above bit 20 and up to five tiebreak values fill the nibbles below it, most
// significant first.
type Rank struct {
	key uint32
}

func newRank(c Category, tiebreaks ...deck.Value) Rank {
	key := uint32(c+1) << categoryShift
	for i, v := range tiebreaks[:min(len(tiebreaks), maxTiebreaks)] {
		key |= uint32(v) << (categoryShift - valueBits*(i+1))
	}
	return Rank{key: key}
}

// Category returns the hand category.
func (r Rank) Category() Category {
	if r.key == 0 {
		return HighCard
	}
	return Category(r.key>>categoryShift) - 1
}

// Compare returns -1 if r is weaker, 0 if equal, 1 if r is stronger
func (r Rank) Compare(other Rank) int {
	switch {
	case r.key < other.key:
		return -1
	case r.key > other.key:
		return 1
	}
	return 0
}

// Beats returns true if r is strictly stronger than other.
func (r Rank) Beats(other Rank) bool {
	return r.key > other.key
}

// Ties returns true if both ranks are equal in strength.
func (r Rank) Ties(other Rank) bool {
	return r.key == other.key
}

// IsZero reports whether r is the zero Rank, which no evaluation produces.
func (r Rank) IsZero() bool {
	return r.key == 0
}

// String returns the readable name of the category
func (r Rank) String() string {
	if r.IsZero() {
		return "Unranked"
	}
	return r.Category().String()
}
