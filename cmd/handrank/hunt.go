package main

import (
	"errors"
	"fmt"

	"github.com/lox/handrank/internal/deck"
	"github.com/lox/handrank/internal/evaluator"
	"github.com/lox/handrank/internal/randutil"
)

// ErrTargetNotFound is returned when a hunt gives up.
var ErrTargetNotFound = errors.New("target category not dealt")

const huntProgressEvery = 10000

type HuntCmd struct {
	Target      string `short:"t" help:"Category to hunt for (default from config: straight-flush)"`
	Cards       int    `short:"n" help:"Cards per hand (default from config: 5)"`
	MaxAttempts int    `help:"Give up after this many hands, 0 for no limit"`
	Seed        *int64 `help:"Random seed for reproducible results"`
}

// huntResult describes the hand that ended a hunt.
type huntResult struct {
	attempts int
	cards    []deck.Card
	best     [evaluator.SubsetSize]deck.Card
	rank     evaluator.Rank
}

func (c *HuntCmd) Run(a *app) error {
	target, err := evaluator.ParseCategory(pick(c.Target, a.cfg.Hunt.Target))
	if err != nil {
		return err
	}
	cards := pick(c.Cards, a.cfg.Hunt.Cards)
	if err := checkCards(cards); err != nil {
		return err
	}
	maxAttempts := pick(c.MaxAttempts, a.cfg.Hunt.MaxAttempts)
	seed := a.seed(c.Seed)

	a.logger.Info("Hunting", "target", target, "cards", cards, "seed", seed, "max_attempts", maxAttempts)
	start := a.clock.Now()

	res, err := a.hunt(target, cards, maxAttempts, seed)
	elapsed := a.clock.Now().Sub(start)
	if err != nil {
		return err
	}

	a.logger.Info("Found target", "attempts", res.attempts, "elapsed", elapsed)
	a.printf("%s after %d hands\n", formatRank(res.rank), res.attempts)
	a.printf("%s %s\n", headerStyle.Render("dealt:"), formatCards(res.cards))
	a.printf("%s %s\n", headerStyle.Render("best five:"), formatCards(res.best[:]))
	return nil
}

// hunt deals hands from a fresh deck each attempt until one ranks as target.
func (a *app) hunt(target evaluator.Category, cards, maxAttempts int, seed int64) (huntResult, error) {
	rng := randutil.New(seed)
	d := deck.New(rng)

	for attempt := 1; maxAttempts == 0 || attempt <= maxAttempts; attempt++ {
		if attempt%huntProgressEvery == 0 {
			if err := a.ctx.Err(); err != nil {
				return huntResult{}, fmt.Errorf("hunt interrupted after %d hands: %w", attempt, err)
			}
			a.logger.Debug("Still hunting", "attempts", attempt)
		}

		d.Reset()
		dealt, err := d.DrawN(cards)
		if err != nil {
			return huntResult{}, err
		}
		best, rank, err := evaluator.BestFive(dealt)
		if err != nil {
			return huntResult{}, err
		}
		if rank.Category() == target {
			return huntResult{attempts: attempt, cards: dealt, best: best, rank: rank}, nil
		}
	}
	return huntResult{}, fmt.Errorf("%w: no %s in %d hands", ErrTargetNotFound, target, maxAttempts)
}
