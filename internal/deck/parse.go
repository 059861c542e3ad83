package deck

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrParse is wrapped by every parsing failure.
var ErrParse = errors.New("invalid card notation")

// ParseCard parses a single card such as "As", "td" or "A♠".
func ParseCard(s string) (Card, error) {
	runes := []rune(s)
	if len(runes) != 2 {
		return Card{}, fmt.Errorf("%w: %q must be a value followed by a suit", ErrParse, s)
	}
	return parsePair(runes[0], runes[1])
}

// ParseCards parses a run of cards. Format: "AsKsQsJsTs" or "As Ks Qs".
// Each card is [Value][Suit]; values A K Q J T 9..2, suits s h d c or ♠ ♥ ♦ ♣.
// The same card may not appear twice.
func ParseCards(s string) ([]Card, error) {
	var runes []rune
	for _, r := range s {
		if !unicode.IsSpace(r) {
			runes = append(runes, r)
		}
	}
	if len(runes)%2 != 0 {
		return nil, fmt.Errorf("%w: %q has an incomplete card", ErrParse, s)
	}

	cards := make([]Card, 0, len(runes)/2)
	seen := make(map[Card]bool, len(runes)/2)
	for i := 0; i < len(runes); i += 2 {
		card, err := parsePair(runes[i], runes[i+1])
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i/2+1, err)
		}
		if seen[card] {
			return nil, fmt.Errorf("%w: duplicate card %s", ErrParse, card.Code())
		}
		seen[card] = true
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

func parsePair(v, s rune) (Card, error) {
	value, err := parseValue(v)
	if err != nil {
		return Card{}, err
	}
	suit, err := parseSuit(s)
	if err != nil {
		return Card{}, err
	}
	return Card{Value: value, Suit: suit}, nil
}

func parseValue(c rune) (Value, error) {
	switch c {
	case 'A', 'a':
		return Ace, nil
	case 'K', 'k':
		return King, nil
	case 'Q', 'q':
		return Queen, nil
	case 'J', 'j':
		return Jack, nil
	case 'T', 't':
		return Ten, nil
	}
	if c >= '2' && c <= '9' {
		return ValueFromIndex(int(c - '2'))
	}
	return 0, fmt.Errorf("%w: unknown value '%c'", ErrParse, c)
}

func parseSuit(c rune) (Suit, error) {
	switch c {
	case 's', 'S', '♠':
		return Spades, nil
	case 'c', 'C', '♣':
		return Clubs, nil
	case 'h', 'H', '♥':
		return Hearts, nil
	case 'd', 'D', '♦':
		return Diamonds, nil
	default:
		return 0, fmt.Errorf("%w: unknown suit '%c'", ErrParse, c)
	}
}
