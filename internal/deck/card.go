package deck

import (
	"errors"
	"fmt"
)

// ErrInvalidValue is returned when an index does not name a card value.
var ErrInvalidValue = errors.New("invalid card value")

// Suit represents a card suit. The ordering only exists so cards can be sorted.
type Suit uint8

const (
	Spades Suit = iota
	Clubs
	Hearts
	Diamonds
)

var allSuits = [...]Suit{Spades, Clubs, Hearts, Diamonds}

// Suits returns every suit in sort order.
func Suits() [4]Suit {
	return allSuits
}

// String returns the symbol for a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	default:
		return "?"
	}
}

// Letter returns the single-letter code used in card notation (s, c, h, d).
func (s Suit) Letter() byte {
	switch s {
	case Spades:
		return 's'
	case Clubs:
		return 'c'
	case Hearts:
		return 'h'
	case Diamonds:
		return 'd'
	default:
		return '?'
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Value is the face value of a card, Two through Ace.
type Value uint8

const (
	Two Value = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var allValues = [...]Value{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Values returns all thirteen values from Two to Ace.
func Values() [13]Value {
	return allValues
}

// ValueFromIndex maps 0..12 onto Two..Ace.
func ValueFromIndex(i int) (Value, error) {
	if i < 0 || i >= len(allValues) {
		return 0, fmt.Errorf("%w: index %d out of range 0-%d", ErrInvalidValue, i, len(allValues)-1)
	}
	return allValues[i], nil
}

// Gap returns how many steps separate two values.
func (v Value) Gap(other Value) uint8 {
	if v > other {
		return uint8(v - other)
	}
	return uint8(other - v)
}

// String returns the notation character for a value
func (v Value) String() string {
	if v > Ace {
		return "?"
	}
	return string("23456789TJQKA"[v])
}

// Card represents a playing card
type Card struct {
	Value Value
	Suit  Suit
}

// NewCard creates a new card
func NewCard(value Value, suit Suit) Card {
	return Card{Value: value, Suit: suit}
}

// Compare orders cards by value, then suit.
func (c Card) Compare(other Card) int {
	switch {
	case c.Value < other.Value:
		return -1
	case c.Value > other.Value:
		return 1
	case c.Suit < other.Suit:
		return -1
	case c.Suit > other.Suit:
		return 1
	}
	return 0
}

// String returns the display form of a card (e.g., "A♠")
func (c Card) String() string {
	return c.Value.String() + c.Suit.String()
}

// Code returns the two-letter notation of a card (e.g., "As")
func (c Card) Code() string {
	return c.Value.String() + string(c.Suit.Letter())
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}
