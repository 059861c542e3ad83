package deck

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrDeckEmpty is returned when more cards are requested than remain.
var ErrDeckEmpty = errors.New("no more cards in the deck")

// Deck is a standard 52-card deck that samples without replacement.
// It is not safe for concurrent use.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a full deck drawing from rng.
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	d.Reset()
	return d
}

// Reset restores the deck to all 52 cards.
func (d *Deck) Reset() {
	d.cards = d.cards[:0] // Clear the slice but keep capacity
	for _, suit := range allSuits {
		for _, value := range allValues {
			d.cards = append(d.cards, NewCard(value, suit))
		}
	}
}

// Draw removes and returns a uniformly chosen remaining card.
func (d *Deck) Draw() (Card, error) {
	n := len(d.cards)
	if n == 0 {
		return Card{}, ErrDeckEmpty
	}

	i := d.rng.IntN(n)
	card := d.cards[i]
	d.cards[i] = d.cards[n-1]
	d.cards = d.cards[:n-1]
	return card, nil
}

// DrawN draws n cards. Nothing is drawn if fewer than n remain.
func (d *Deck) DrawN(n int) ([]Card, error) {
	if n < 0 || n > len(d.cards) {
		return nil, fmt.Errorf("%w: requested %d, %d remaining", ErrDeckEmpty, n, len(d.cards))
	}

	cards := make([]Card, n)
	for i := range cards {
		card, err := d.Draw()
		if err != nil {
			return nil, err
		}
		cards[i] = card
	}
	return cards, nil
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}
