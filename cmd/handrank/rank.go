package main

import (
	"fmt"
	"strings"

	"github.com/lox/handrank/internal/evaluator"
)

type RankCmd struct {
	Cards []string `arg:"" help:"Cards to rank, e.g. 'AsKsQsJsTs' or 'As Ks Qs Js Ts 2c 3d'"`
}

func (c *RankCmd) Run(a *app) error {
	hand, err := evaluator.ParseHand(strings.Join(c.Cards, " "))
	if err != nil {
		return fmt.Errorf("failed to parse hand: %w", err)
	}

	best, rank, err := evaluator.BestFive(hand.Cards())
	if err != nil {
		return fmt.Errorf("failed to rank %s: %w", hand, err)
	}

	a.logger.Debug("Ranked hand", "cards", hand.Len(), "category", rank)
	a.printf("%s\n", formatRank(rank))
	a.printf("%s %s\n", headerStyle.Render("best five:"), formatCards(best[:]))
	return nil
}

type CompareCmd struct {
	First  string `arg:"" help:"First hand"`
	Second string `arg:"" help:"Second hand"`
}

func (c *CompareCmd) Run(a *app) error {
	first, err := evaluator.ParseHand(c.First)
	if err != nil {
		return fmt.Errorf("first hand: %w", err)
	}
	second, err := evaluator.ParseHand(c.Second)
	if err != nil {
		return fmt.Errorf("second hand: %w", err)
	}

	r1, err := first.Rank()
	if err != nil {
		return fmt.Errorf("first hand: %w", err)
	}
	r2, err := second.Rank()
	if err != nil {
		return fmt.Errorf("second hand: %w", err)
	}

	a.printf("%s  %s\n", formatCards(first.Cards()), formatRank(r1))
	a.printf("%s  %s\n", formatCards(second.Cards()), formatRank(r2))

	switch r1.Compare(r2) {
	case 1:
		a.printf("%s\n", winStyle.Render("first hand wins"))
	case -1:
		a.printf("%s\n", winStyle.Render("second hand wins"))
	default:
		a.printf("%s\n", tieStyle.Render("hands tie"))
	}
	return nil
}
