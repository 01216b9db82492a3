package game

import (
	"fmt"
	"strings"
)

// FormatHand renders the grouped hand contents for display.
func FormatHand(groups []CardCount) string {
	if len(groups) == 0 {
		return "Your hand is empty."
	}

	total := 0
	lines := make([]string, 0, len(groups))
	for _, g := range groups {
		total += g.Count
		lines = append(lines, fmt.Sprintf("%dx %s", g.Count, g.Name))
	}
	return fmt.Sprintf("Your hand (%d cards):\n%s", total, strings.Join(lines, "\n"))
}

// FormatStats renders deck statistics for display.
func FormatStats(stats Stats) string {
	if stats.DeckCount == 0 {
		return "Your deck is empty."
	}

	lines := []string{
		fmt.Sprintf("Cards in deck: %d", stats.DeckCount),
		fmt.Sprintf("Cards in hand: %d", stats.HandCount),
		fmt.Sprintf("Sideboard cards: %d", stats.SideboardCount),
		"",
		"Top card types in deck:",
	}
	for _, g := range stats.TopCards {
		lines = append(lines, fmt.Sprintf("  %dx %s", g.Count, g.Name))
	}
	return strings.Join(lines, "\n")
}
