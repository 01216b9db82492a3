package scryfall

import (
	"fmt"
	"sort"
	"strings"
)

// FormatCard renders a card as a readable multi-line string.
func FormatCard(card *Card) string {
	info := []string{
		"Name: " + orUnknown(card.Name),
		"Mana Cost: " + orUnknown(card.ManaCost),
		"Type: " + orUnknown(card.TypeLine),
	}

	if card.OracleText != "" {
		info = append(info, "Text: "+card.OracleText)
	}
	if card.Power != "" {
		info = append(info, fmt.Sprintf("Power/Toughness: %s/%s", card.Power, card.Toughness))
	}
	if card.Loyalty != "" {
		info = append(info, "Loyalty: "+card.Loyalty)
	}
	if card.Prices.USD != "" {
		info = append(info, "Price (USD): $"+card.Prices.USD)
	}
	if legal := legalFormats(card.Legalities); len(legal) > 0 {
		info = append(info, "Legal in: "+strings.Join(legal, ", "))
	}

	return strings.Join(info, "\n")
}

// legalFormats returns the formats in which the card is legal, sorted for
// stable output (the API's map order is not meaningful).
func legalFormats(legalities map[string]string) []string {
	var formats []string
	for format, status := range legalities {
		if status == "legal" {
			formats = append(formats, format)
		}
	}
	sort.Strings(formats)
	return formats
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
