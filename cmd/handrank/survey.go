package main

import (
	"fmt"
	"runtime"

	"github.com/lox/handrank/internal/deck"
	"github.com/lox/handrank/internal/evaluator"
	"github.com/lox/handrank/internal/randutil"
	"github.com/lox/handrank/internal/report"
)

type SurveyCmd struct {
	Hands   int    `help:"Number of random hands (default from config: 100000)"`
	Cards   int    `short:"n" help:"Cards per hand (default from config: 7)"`
	Workers int    `short:"w" help:"Concurrent evaluators (default: GOMAXPROCS)"`
	Format  string `short:"f" help:"Output format: text or json (default from config: text)"`
	Out     string `short:"o" help:"Write the report to this file instead of stdout"`
	Seed    *int64 `help:"Random seed for reproducible results"`
}

func (c *SurveyCmd) Run(a *app) error {
	hands := pick(c.Hands, a.cfg.Survey.Hands)
	if hands < 0 {
		return fmt.Errorf("hands must not be negative, got %d", hands)
	}
	cards := pick(c.Cards, a.cfg.Survey.Cards)
	if err := checkCards(cards); err != nil {
		return err
	}
	workers := pick(c.Workers, a.cfg.Survey.Workers)
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	format := pick(c.Format, a.cfg.Survey.Format)
	if format != "text" && format != "json" {
		return fmt.Errorf("format must be text or json, got %q", format)
	}
	seed := a.seed(c.Seed)

	a.logger.Info("Dealing survey hands", "hands", hands, "cards", cards, "seed", seed)
	dealt, err := dealHands(seed, hands, cards)
	if err != nil {
		return err
	}

	start := a.clock.Now()
	ranks, err := evaluator.EvaluateBatch(a.ctx, dealt, workers)
	if err != nil {
		return fmt.Errorf("survey failed: %w", err)
	}
	elapsed := a.clock.Now().Sub(start)
	a.logger.Debug("Ranked survey hands", "workers", workers, "elapsed", elapsed)

	data, err := report.NewSurvey(ranks, cards, seed, elapsed).Render(format)
	if err != nil {
		return err
	}

	if c.Out != "" {
		if err := report.WriteFile(c.Out, data, 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		a.logger.Info("Wrote survey report", "path", c.Out, "format", format)
		return nil
	}
	_, err = a.out.Write(data)
	return err
}

// dealHands deals count independent hands, each from a full deck.
func dealHands(seed int64, count, cards int) ([]evaluator.Rankable, error) {
	d := deck.New(randutil.New(seed))
	hands := make([]evaluator.Rankable, count)
	for i := range hands {
		d.Reset()
		drawn, err := d.DrawN(cards)
		if err != nil {
			return nil, err
		}
		hands[i] = evaluator.NewHand(drawn...)
	}
	return hands, nil
}
