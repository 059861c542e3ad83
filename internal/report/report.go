// Package report summarises how often each hand category turns up in a
// sample of ranked hands.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/lox/handrank/internal/evaluator"
)

// CategoryCount is the tally for one category.
type CategoryCount struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Percent  float64 `json:"percent"`
}

// Survey is the result of ranking a sample of random hands.
type Survey struct {
	Hands        int             `json:"hands"`
	CardsPerHand int             `json:"cards_per_hand"`
	Seed         int64           `json:"seed"`
	Elapsed      time.Duration   `json:"elapsed_ns"`
	Counts       []CategoryCount `json:"counts"`
}

// NewSurvey tallies ranks by category, strongest category first.
func NewSurvey(ranks []evaluator.Rank, cardsPerHand int, seed int64, elapsed time.Duration) Survey {
	categories := evaluator.Categories()
	tally := make([]int, len(categories))
	for _, r := range ranks {
		tally[r.Category()]++
	}

	s := Survey{
		Hands:        len(ranks),
		CardsPerHand: cardsPerHand,
		Seed:         seed,
		Elapsed:      elapsed,
		Counts:       make([]CategoryCount, 0, len(tally)),
	}
	for _, c := range slices.Backward(categories) {
		count := CategoryCount{Category: c.String(), Count: tally[c]}
		if len(ranks) > 0 {
			count.Percent = float64(tally[c]) / float64(len(ranks)) * 100
		}
		s.Counts = append(s.Counts, count)
	}
	return s
}

// Text renders the survey as an aligned table.
func (s Survey) Text() string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "category\tcount\tpercent\t\n")
	for _, c := range s.Counts {
		fmt.Fprintf(w, "%s\t%d\t%.4f%%\t\n", c.Category, c.Count, c.Percent)
	}
	w.Flush()
	fmt.Fprintf(&buf, "\n%d hands of %d cards (seed %d) in %v\n",
		s.Hands, s.CardsPerHand, s.Seed, s.Elapsed.Truncate(time.Millisecond))
	return buf.String()
}

// JSON renders the survey as indented JSON.
func (s Survey) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode survey: %w", err)
	}
	return append(data, '\n'), nil
}

// Render returns the survey in the named format ("text" or "json").
func (s Survey) Render(format string) ([]byte, error) {
	switch format {
	case "text":
		return []byte(s.Text()), nil
	case "json":
		return s.JSON()
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

// WriteFile writes data so readers never see a partial report: it goes to a
// temporary file in the same directory, which is then renamed over filename.
func WriteFile(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)

	tmpFile, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			tmpFile.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	tmpFile = nil // Prevent defer cleanup

	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, filename); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
