package game

import (
	"strings"
	"testing"
)

// TestShuffleUniformity checks that upload's shuffle produces orderings
// consistent with a uniform random permutation. With 6 permutations of a
// 3-card deck over 6000 trials each bucket expects 1000; the ±150 bound
// is over five standard deviations, so a correct shuffle essentially
// never fails it.
func TestShuffleUniformity(t *testing.T) {
	const trials = 6000

	s := NewSession(Config{Seed: 7})
	observed := make(map[string]int)

	for i := 0; i < trials; i++ {
		s.Upload("Deck\n1 A\n1 B\n1 C")
		deck, _, _ := s.Zones()
		names := make([]string, len(deck))
		for j, c := range deck {
			names[j] = c.Name
		}
		observed[strings.Join(names, "")]++
	}

	if len(observed) != 6 {
		t.Fatalf("saw %d distinct permutations, want 6: %v", len(observed), observed)
	}
	for perm, n := range observed {
		if n < 850 || n > 1150 {
			t.Errorf("permutation %s occurred %d times, want ~1000", perm, n)
		}
	}
}

// TestMulliganReshuffles checks that mulligan actually randomizes the
// deck rather than just appending the hand.
func TestMulliganReshuffles(t *testing.T) {
	const trials = 200

	s := NewSession(Config{Seed: 11})
	changed := 0

	for i := 0; i < trials; i++ {
		s.Upload("Deck\n1 A\n1 B\n1 C\n1 D\n1 E\n1 F")
		before, _, _ := s.Zones()
		if _, err := s.Draw(2); err != nil {
			t.Fatal(err)
		}
		if _, err := s.Mulligan(-1); err != nil {
			t.Fatal(err)
		}
		deck, hand, _ := s.Zones()

		if len(deck) != 4 || len(hand) != 2 {
			t.Fatalf("deck/hand after mulligan = %d/%d, want 4/2", len(deck), len(hand))
		}
		// Without a reshuffle the redrawn hand would be the next two deck
		// cards in order; a uniform shuffle reproduces that pair only 1
		// time in 30.
		if hand[0].ID != before[2].ID || hand[1].ID != before[3].ID {
			changed++
		}
	}

	if changed < trials/2 {
		t.Errorf("mulligan redrew the unshuffled top in %d/%d trials; shuffle appears broken", trials-changed, trials)
	}
}
