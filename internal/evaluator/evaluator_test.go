package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/handrank/internal/deck"
)

func mustRank(t *testing.T, cards string) Rank {
	t.Helper()
	rank, err := Evaluate(deck.MustParseCards(cards))
	require.NoError(t, err, "evaluate %s", cards)
	return rank
}

func TestEvaluateCategories(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		cards    string
		expected Category
	}{
		{"Royal Flush", "AsKsQsJsTs", StraightFlush},
		{"Straight Flush", "9s8s7s6s5s", StraightFlush},
		{"Steel Wheel", "5d4d3d2dAd", StraightFlush},
		{"Four of a Kind", "2c2d2h2s3c", FourOfAKind},
		{"Full House", "3c3d3h9s9c", FullHouse},
		{"Flush", "AsKsQs8s6s", Flush},
		{"Straight", "AsKhQdJcTs", Straight},
		{"Wheel", "Ah2c3d4h5s", Straight},
		{"Three of a Kind", "AsAhAdKs9c", ThreeOfAKind},
		{"Two Pair", "AsAhKdKs9c", TwoPair},
		{"Pair", "AsAhKdQs9c", Pair},
		{"High Card", "AsKhQd9s7c", HighCard},
		{"No wrap-around straight", "QsKhAd2c3s", HighCard},

		// Seven cards
		{"7-card Royal Flush", "AsKsQsJsTs9h8h", StraightFlush},
		{"7-card Straight Flush", "9s8s7s6s5s4h3h", StraightFlush},
		{"7-card Four of a Kind", "AsAhAdAcKs2h3h", FourOfAKind},
		{"7-card Full House from two trips", "AsAhAdKsKhKd3h", FullHouse},
		{"7-card Flush over Straight", "AsKs8s6s4s5h7d", Flush},
		{"7-card Straight", "AsKhQdJcTs9h8h", Straight},
		{"7-card Three of a Kind", "AsAhAdKs9c7h5h", ThreeOfAKind},
		{"7-card Two Pair from three pairs", "AsAhKdKs9c9h5h", TwoPair},
		{"7-card Pair", "AsAhKdQs9c7h5h", Pair},
		{"7-card High Card", "AsKhQd9s7c5h3h", HighCard},
		{"6-card Wheel", "Ah2c3d4h5sKc", Straight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rank := mustRank(t, tt.cards)
			assert.Equal(t, tt.expected, rank.Category(), "%s ranked as %s", tt.cards, rank)
		})
	}
}

func TestCategoryOrdering(t *testing.T) {
	t.Parallel()

	// Strongest first.
	hands := []string{
		"AsKsQsJsTs", // royal flush
		"2c2d2h2s3c", // four of a kind
		"3c3d3h9s9c", // full house
		"Ah9h7h4h2h", // flush
		"9c8d7h6s5c", // straight
		"QcQdQh5s2c", // three of a kind
		"JcJd4h4s2c", // two pair
		"AcAd9h5s2c", // pair
		"AcKd9h5s2c", // high card
	}

	ranks := make([]Rank, len(hands))
	for i, h := range hands {
		ranks[i] = mustRank(t, h)
	}

	for i := range ranks {
		for j := range ranks {
			switch {
			case i < j:
				assert.True(t, ranks[i].Beats(ranks[j]), "%s should beat %s", hands[i], hands[j])
				assert.Equal(t, 1, ranks[i].Compare(ranks[j]))
			case i > j:
				assert.False(t, ranks[i].Beats(ranks[j]), "%s should not beat %s", hands[i], hands[j])
				assert.Equal(t, -1, ranks[i].Compare(ranks[j]))
			default:
				assert.Equal(t, 0, ranks[i].Compare(ranks[j]))
			}
		}
	}
}

func TestWheelStraight(t *testing.T) {
	t.Parallel()

	wheel := mustRank(t, "Ah2c3d4h5s")
	sixHigh := mustRank(t, "2h3h4h5h6c")
	sixHighFlush := mustRank(t, "2h3h4h5h6h")
	aceHigh := mustRank(t, "AhKcQd9h7s")

	assert.Equal(t, Straight, wheel.Category())
	assert.True(t, sixHigh.Beats(wheel), "six-high straight beats the wheel")
	assert.True(t, sixHighFlush.Beats(wheel))
	assert.True(t, wheel.Beats(aceHigh), "any straight beats high card")
	assert.True(t, wheel.Beats(mustRank(t, "AhAcAdKh7s")), "the wheel beats trips")

	steelWheel := mustRank(t, "Ad2d3d4d5d")
	assert.True(t, mustRank(t, "2d3d4d5d6d").Beats(steelWheel))
}

func TestKickers(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		stronger string
		weaker   string
	}{
		{"high card last kicker", "AsKhQd9s7c", "AsKhQd9s6c"},
		{"flush second card", "AhKh9h5h3h", "AdQd9d5d3d"},
		{"flush last card", "AhKh9h5h3h", "AdKd9d5d2d"},
		{"pair value beats kickers", "3s3hAdKsQc", "2s2hAdKsQc"},
		{"pair kicker", "AsAhKdQs9c", "AsAhKdQs8c"},
		{"two pair high pair", "AsAh3d3s2c", "KsKhQdQs2c"},
		{"two pair low pair", "AsAh4d4s2c", "AsAh3d3sKc"},
		{"two pair kicker", "AsAh4d4sKc", "AcAd4c4hQc"},
		{"trips value", "4s4h4d2s3c", "3s3h3dAsKc"},
		{"trips kicker", "9s9h9dAs3c", "9s9h9dKsQc"},
		{"straight high card", "Ts9h8d7s6c", "9s8h7d6s5c"},
		{"full house trips first", "3s3h3d2s2c", "2s2h2dAsAc"},
		{"full house pair second", "KsKhKd3s3c", "KsKhKd2s2c"},
		{"quads value", "3s3h3d3cAc", "2s2h2d2cAc"},
		{"quads kicker", "9s9h9d9cAc", "9s9h9d9cKc"},
		{"straight flush high card", "KsQsJsTs9s", "QhJhTh9h8h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			stronger := mustRank(t, tt.stronger)
			weaker := mustRank(t, tt.weaker)
			assert.Equal(t, stronger.Category(), weaker.Category(), "test hands should share a category")
			assert.True(t, stronger.Beats(weaker), "%s should beat %s", tt.stronger, tt.weaker)
			assert.Equal(t, -1, weaker.Compare(stronger))
		})
	}
}

func TestTrueTies(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a, b string
	}{
		{"high card different suits", "2h3h4h5h7c", "2d3d4d5d7s"},
		{"straights different suits", "9s8h7d6s5c", "9h8d7c6h5s"},
		{"flushes same values", "AhKh9h5h3h", "AsKs9s5s3s"},
		{"order of cards irrelevant", "AsKhQd9s7c", "7c9sQdKhAs"},
		{"seven cards sharing a board", "AhKdQsJcTh2c3d", "AcKdQsJcTh4h5s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a, b := mustRank(t, tt.a), mustRank(t, tt.b)
			assert.True(t, a.Ties(b))
			assert.Equal(t, 0, a.Compare(b))
			assert.Equal(t, a, b)
		})
	}
}

func TestEvaluateIsPure(t *testing.T) {
	t.Parallel()

	cards := deck.MustParseCards("AsKhQdJc9s9h2c")
	before := append([]deck.Card(nil), cards...)

	first, err := Evaluate(cards)
	require.NoError(t, err)
	second, err := Evaluate(cards)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, before, cards, "evaluation must not reorder the input")
}

func TestEvaluateErrors(t *testing.T) {
	t.Parallel()

	for _, short := range []string{"", "As", "AsKsQsJs"} {
		rank, err := Evaluate(deck.MustParseCards(short))
		assert.ErrorIs(t, err, ErrInsufficientCards, "input %q", short)
		assert.True(t, rank.IsZero(), "failed evaluation must not yield a rank")
	}

	dup := []deck.Card{
		deck.NewCard(deck.Ace, deck.Spades),
		deck.NewCard(deck.Ace, deck.Spades),
		deck.NewCard(deck.King, deck.Spades),
		deck.NewCard(deck.Queen, deck.Spades),
		deck.NewCard(deck.Jack, deck.Spades),
	}
	rank, err := Evaluate(dup)
	assert.ErrorIs(t, err, ErrDuplicateCard)
	assert.True(t, rank.IsZero())

	bad := deck.MustParseCards("AsKsQsJs")
	bad = append(bad, deck.Card{Value: 13, Suit: deck.Spades})
	_, err = Evaluate(bad)
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestBestFive(t *testing.T) {
	t.Parallel()

	cards := deck.MustParseCards("2c9hAh3dKhQhJhTh")
	best, rank, err := BestFive(cards)
	require.NoError(t, err)
	assert.Equal(t, StraightFlush, rank.Category())
	assert.ElementsMatch(t, deck.MustParseCards("AhKhQhJhTh"), best[:])

	// A five-card hand is its own best five.
	five := deck.MustParseCards("3c3d3h9s9c")
	best, rank, err = BestFive(five)
	require.NoError(t, err)
	assert.Equal(t, FullHouse, rank.Category())
	assert.Equal(t, five, best[:])
}
