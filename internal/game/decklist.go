package game

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseDecklist converts free-form decklist text into main deck and
// sideboard card instances.
//
// Lines are trimmed and processed independently. A line equal to "deck"
// (case-insensitive) switches to the main section, "sideboard" to the
// sideboard section. Card lines have the form "<count> <name>". Anything
// else — blank lines, lines before a section header, lines whose first
// token is not an integer — is skipped. Permissive by design: decklists
// are pasted from all over and partial parses beat rejections.
func ParseDecklist(text string) (main, side []Card) {
	section := ""
	n := 0

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "deck":
			section = "main"
			continue
		case "sideboard":
			section = "side"
			continue
		}

		if section == "" {
			continue
		}

		count, name, ok := splitCardLine(line)
		if !ok {
			continue
		}

		for i := 0; i < count; i++ {
			card := Card{Name: name, ID: cardID(name, n)}
			n++
			if section == "main" {
				main = append(main, card)
			} else {
				side = append(side, card)
			}
		}
	}

	return main, side
}

// splitCardLine splits "<count> <name>" into its parts. Returns ok=false
// if the line has no name part or the count is not an integer.
func splitCardLine(line string) (count int, name string, ok bool) {
	parts := strings.SplitN(line, " ", 2)
	if len(parts) != 2 {
		return 0, "", false
	}
	count, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, "", false
	}
	return count, strings.TrimSpace(parts[1]), true
}

// --- Deck library files ---

// DeckFile represents the top-level YAML structure of a deck library.
type DeckFile struct {
	Decks []DeckEntry `yaml:"decks"`
}

// DeckEntry represents a single deck in the YAML file.
type DeckEntry struct {
	Name      string      `yaml:"name"`
	Deck      []CardEntry `yaml:"deck"`
	Sideboard []CardEntry `yaml:"sideboard"`
}

// CardEntry represents a card and its count in a deck.
type CardEntry struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// LoadDeckFile parses a YAML deck library file.
func LoadDeckFile(path string) (*DeckFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse deck YAML: %w", err)
	}

	return &df, nil
}

// DeckByNumber returns the Nth deck (1-indexed) from a deck library file,
// expanded into card instances.
func DeckByNumber(path string, n int) (string, []Card, []Card, error) {
	df, err := LoadDeckFile(path)
	if err != nil {
		return "", nil, nil, err
	}

	if n < 1 || n > len(df.Decks) {
		return "", nil, nil, fmt.Errorf("deck %d not found (have %d decks)", n, len(df.Decks))
	}

	entry := df.Decks[n-1]
	main, side := entry.Cards()
	return entry.Name, main, side, nil
}

// Cards expands a deck entry into main and sideboard card instances.
func (e DeckEntry) Cards() (main, side []Card) {
	n := 0
	for _, entry := range e.Deck {
		for i := 0; i < entry.Count; i++ {
			main = append(main, Card{Name: entry.Name, ID: cardID(entry.Name, n)})
			n++
		}
	}
	for _, entry := range e.Sideboard {
		for i := 0; i < entry.Count; i++ {
			side = append(side, Card{Name: entry.Name, ID: cardID(entry.Name, n)})
			n++
		}
	}
	return main, side
}
