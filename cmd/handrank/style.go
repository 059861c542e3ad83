package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/handrank/internal/deck"
	"github.com/lox/handrank/internal/evaluator"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	categoryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	redCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	blackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))
)

func formatCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		if c.IsRed() {
			parts[i] = redCardStyle.Render(c.String())
		} else {
			parts[i] = blackCardStyle.Render(c.String())
		}
	}
	return strings.Join(parts, " ")
}

func formatRank(r evaluator.Rank) string {
	return categoryStyle.Render(r.String())
}
