package game

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseDecklist(t *testing.T) {
	main, side := ParseDecklist("Deck\n2 Island\n1 Lightning Bolt\nSideboard\n1 Negate")

	if len(main) != 3 {
		t.Fatalf("main deck: got %d cards, want 3", len(main))
	}
	if len(side) != 1 {
		t.Fatalf("sideboard: got %d cards, want 1", len(side))
	}

	wantMain := []string{"Island", "Island", "Lightning Bolt"}
	for i, name := range wantMain {
		if main[i].Name != name {
			t.Errorf("main[%d] = %q, want %q", i, main[i].Name, name)
		}
	}
	if side[0].Name != "Negate" {
		t.Errorf("side[0] = %q, want Negate", side[0].Name)
	}
}

func TestParseDecklistEmpty(t *testing.T) {
	main, side := ParseDecklist("")
	if len(main) != 0 || len(side) != 0 {
		t.Errorf("empty input: got %d main, %d side, want 0/0", len(main), len(side))
	}
}

func TestParseDecklistPermissive(t *testing.T) {
	// Garbage lines, blank lines, and lines before any section header are
	// skipped without error.
	text := "My Cool Deck\n\nDeck\nnot a card line\nx Island\n2 Island\n\n-3 Swamp\nSideboard\n1 Negate\n"
	main, side := ParseDecklist(text)

	if len(main) != 2 {
		t.Errorf("main deck: got %d cards, want 2 (only '2 Island' is valid)", len(main))
	}
	if len(side) != 1 {
		t.Errorf("sideboard: got %d cards, want 1", len(side))
	}
}

func TestParseDecklistSectionCase(t *testing.T) {
	main, side := ParseDecklist("DECK\n1 Island\nSIDEBOARD\n1 Negate")
	if len(main) != 1 || len(side) != 1 {
		t.Errorf("got %d main, %d side, want 1/1", len(main), len(side))
	}
}

func TestParseDecklistUniqueIDs(t *testing.T) {
	main, side := ParseDecklist("Deck\n4 Lightning Bolt\nSideboard\n2 Lightning Bolt")

	seen := make(map[string]bool)
	for _, c := range append(main, side...) {
		if seen[c.ID] {
			t.Errorf("duplicate card id %q", c.ID)
		}
		seen[c.ID] = true
	}
	if len(seen) != 6 {
		t.Errorf("got %d distinct ids, want 6", len(seen))
	}
}

func TestParseDecklistWhitespace(t *testing.T) {
	main, _ := ParseDecklist("  Deck  \n   2 Island   \n")
	if len(main) != 2 {
		t.Fatalf("got %d main cards, want 2", len(main))
	}
	if main[0].Name != "Island" {
		t.Errorf("name = %q, want Island (trimmed)", main[0].Name)
	}
}

func TestDeckByNumber(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decks.yaml")
	content := `decks:
  - name: Burn
    deck:
      - name: Lightning Bolt
        count: 4
      - name: Mountain
        count: 2
    sideboard:
      - name: Smash to Smithereens
        count: 1
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	name, main, side, err := DeckByNumber(path, 1)
	if err != nil {
		t.Fatalf("DeckByNumber: %v", err)
	}
	if name != "Burn" {
		t.Errorf("deck name = %q, want Burn", name)
	}
	if len(main) != 6 {
		t.Errorf("main deck: got %d cards, want 6", len(main))
	}
	if len(side) != 1 {
		t.Errorf("sideboard: got %d cards, want 1", len(side))
	}

	seen := make(map[string]bool)
	for _, c := range append(main, side...) {
		if seen[c.ID] {
			t.Errorf("duplicate card id %q", c.ID)
		}
		seen[c.ID] = true
	}

	if _, _, _, err := DeckByNumber(path, 2); err == nil {
		t.Error("expected error for out-of-range deck number")
	}
}
