// Package evaluator ranks poker hands of five or more cards.
//
// Hands longer than five cards are ranked by their best five-card subset.
// Evaluation is a pure function of the cards; nothing is cached between calls,
// so independent hands can be ranked from any number of goroutines.
package evaluator

import (
	"errors"
	"fmt"
	"slices"

	"github.com/lox/handrank/internal/deck"
)

var (
	// ErrInsufficientCards is returned for hands with fewer than five cards.
	ErrInsufficientCards = errors.New("hand needs at least 5 cards")

	// ErrDuplicateCard is returned when a card appears more than once.
	ErrDuplicateCard = errors.New("duplicate card in hand")

	// ErrInvalidCard is returned for cards outside the 52-card deck.
	ErrInvalidCard = errors.New("invalid card in hand")
)

// Evaluate returns the best rank that can be made from cards.
func Evaluate(cards []deck.Card) (Rank, error) {
	_, rank, err := BestFive(cards)
	return rank, err
}

// BestFive returns the five cards forming the best hand along with its rank.
// The input is never modified.
func BestFive(cards []deck.Card) ([SubsetSize]deck.Card, Rank, error) {
	var best [SubsetSize]deck.Card
	if err := validate(cards); err != nil {
		return best, Rank{}, err
	}

	var bestRank Rank
	var five [SubsetSize]deck.Card
	combos := NewCombinations(len(cards))
	for subset, ok := combos.Next(); ok; subset, ok = combos.Next() {
		for i, idx := range subset {
			five[i] = cards[idx]
		}
		if rank := evaluateFive(five); rank.Beats(bestRank) {
			best, bestRank = five, rank
		}
	}
	return best, bestRank, nil
}

func validate(cards []deck.Card) error {
	if len(cards) < SubsetSize {
		return fmt.Errorf("%w: got %d", ErrInsufficientCards, len(cards))
	}

	var seen [52]bool
	for _, c := range cards {
		if c.Value > deck.Ace || c.Suit > deck.Diamonds {
			return fmt.Errorf("%w: value %d suit %d", ErrInvalidCard, c.Value, c.Suit)
		}
		slot := int(c.Suit)*13 + int(c.Value)
		if seen[slot] {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, c.Code())
		}
		seen[slot] = true
	}
	return nil
}

// group is a run of same-valued cards.
type group struct {
	value deck.Value
	count uint8
}

// evaluateFive classifies exactly five cards.
func evaluateFive(cards [SubsetSize]deck.Card) Rank {
	var counts [13]uint8
	flush := true
	for _, c := range cards {
		counts[c.Value]++
		if c.Suit != cards[0].Suit {
			flush = false
		}
	}

	// Largest groups first, higher values first within a size. This is
	// also the order the tiebreak values are packed in.
	groups := make([]group, 0, SubsetSize)
	for v := deck.Ace; ; v-- {
		if counts[v] > 0 {
			groups = append(groups, group{value: v, count: counts[v]})
		}
		if v == deck.Two {
			break
		}
	}
	slices.SortStableFunc(groups, func(a, b group) int {
		return int(b.count) - int(a.count)
	})

	values := make([]deck.Value, len(groups))
	for i, g := range groups {
		values[i] = g.value
	}

	high, straight := straightHigh(values)

	switch {
	case straight && flush:
		return newRank(StraightFlush, high)
	case groups[0].count == 4:
		return newRank(FourOfAKind, values...)
	case groups[0].count == 3 && groups[1].count == 2:
		return newRank(FullHouse, values...)
	case flush:
		return newRank(Flush, values...)
	case straight:
		return newRank(Straight, high)
	case groups[0].count == 3:
		return newRank(ThreeOfAKind, values...)
	case groups[0].count == 2 && groups[1].count == 2:
		return newRank(TwoPair, values...)
	case groups[0].count == 2:
		return newRank(Pair, values...)
	default:
		return newRank(HighCard, values...)
	}
}

// straightHigh reports whether five distinct values (descending) form a
// straight, and its top card. The wheel A-2-3-4-5 plays five-high.
func straightHigh(values []deck.Value) (deck.Value, bool) {
	if len(values) != SubsetSize {
		return 0, false
	}
	if values[0]-values[4] == 4 {
		return values[0], true
	}
	if values[0] == deck.Ace && values[1] == deck.Five && values[4] == deck.Two {
		return deck.Five, true
	}
	return 0, false
}
