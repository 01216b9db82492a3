package game

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/peterkuimelis/mtgmgr/internal/log"
)

// Config holds configuration for creating a new session.
type Config struct {
	Logger    log.EventLogger
	Seed      int64 // RNG seed (0 for random)
	NoShuffle bool  // skip deck shuffles (for deterministic tests)
}

// Session tracks one game's mutable state: a deck, a hand, and a
// sideboard. All operations are guarded by a single mutex; operations are
// short and purely in-memory, so one coarse critical section per call is
// both sufficient and correct.
type Session struct {
	mu        sync.Mutex
	deck      []Card // index 0 is top of deck (next to draw)
	hand      []Card // draw order
	sideboard []Card // insertion order

	rng       *rand.Rand
	noShuffle bool
	logger    log.EventLogger
}

// NewSession creates an empty session.
func NewSession(cfg Config) *Session {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	return &Session{
		rng:       rand.New(rand.NewSource(seed)),
		noShuffle: cfg.NoShuffle,
		logger:    logger,
	}
}

// shuffle randomizes the deck order in place. Every permutation of the
// deck is equally likely (rand.Shuffle is a uniform Fisher-Yates).
func (s *Session) shuffle() {
	if s.noShuffle {
		return
	}
	s.rng.Shuffle(len(s.deck), func(i, j int) {
		s.deck[i], s.deck[j] = s.deck[j], s.deck[i]
	})
}

// Upload parses a decklist and loads it, replacing all three zones. The
// main deck is shuffled; the sideboard keeps list order; the hand is
// cleared. Returns the main and sideboard card counts.
func (s *Session) Upload(deckList string) (mainCount, sideCount int) {
	main, side := ParseDecklist(deckList)
	return s.UploadCards(main, side)
}

// UploadCards loads pre-built card slices, replacing all three zones.
func (s *Session) UploadCards(main, side []Card) (mainCount, sideCount int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deck = main
	s.sideboard = side
	s.hand = nil
	s.shuffle()

	s.logger.Log(log.NewUploadEvent(len(s.deck), len(s.sideboard)))
	return len(s.deck), len(s.sideboard)
}

// Draw moves count cards from the top of the deck to the hand, preserving
// order, and returns their names. The draw is atomic: if the deck holds
// fewer than count cards, nothing moves and InsufficientCardsError is
// returned.
func (s *Session) Draw(count int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if count > len(s.deck) {
		return nil, &InsufficientCardsError{Requested: count, Remaining: len(s.deck)}
	}

	names := s.drawLocked(count)
	s.logger.Log(log.NewDrawEvent(names))
	return names, nil
}

// drawLocked moves min(count, len(deck)) cards from deck to hand and
// returns their names. Caller holds the mutex.
func (s *Session) drawLocked(count int) []string {
	if count > len(s.deck) {
		count = len(s.deck)
	}
	names := make([]string, 0, count)
	for i := 0; i < count; i++ {
		card := s.deck[0]
		s.deck = s.deck[1:]
		s.hand = append(s.hand, card)
		names = append(names, card.Name)
	}
	return names
}

// Play removes the first card matching name (case-insensitive) from the
// hand and returns its display name.
func (s *Session) Play(name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, card := range s.hand {
		if card.SameName(name) {
			s.hand = append(s.hand[:i], s.hand[i+1:]...)
			s.logger.Log(log.NewPlayEvent(card.Name))
			return card.Name, nil
		}
	}
	return "", &NotFoundError{Name: name, Where: "hand"}
}

// Mulligan returns the hand to the deck, reshuffles, and draws a new
// hand. newHandSize < 0 means "same size as the current hand". The draw
// is capped at the deck size; the number of cards actually drawn is
// returned. Fails with ErrEmptyHand when there is no hand to return.
func (s *Session) Mulligan(newHandSize int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.hand) == 0 {
		return 0, ErrEmptyHand
	}

	if newHandSize < 0 {
		newHandSize = len(s.hand)
	}

	s.deck = append(s.deck, s.hand...)
	s.hand = nil
	s.shuffle()

	drawn := s.drawLocked(newHandSize)
	s.logger.Log(log.NewMulliganEvent(len(drawn)))
	return len(drawn), nil
}

// Reset moves all hand cards back into the deck and reshuffles. The
// sideboard is untouched.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deck = append(s.deck, s.hand...)
	s.hand = nil
	s.shuffle()

	s.logger.Log(log.NewResetEvent(len(s.deck)))
}

// --- Sideboard swap ---

// mainZone identifies which of the two active zones a located card is in.
type mainZone int

const (
	zoneDeck mainZone = iota
	zoneHand
)

// locate finds the first card matching name (case-insensitive) in the
// deck-then-hand concatenation and returns its zone and local index.
// Caller holds the mutex.
func (s *Session) locate(name string) (mainZone, int, bool) {
	for i, card := range s.deck {
		if card.SameName(name) {
			return zoneDeck, i, true
		}
	}
	for i, card := range s.hand {
		if card.SameName(name) {
			return zoneHand, i, true
		}
	}
	return zoneDeck, 0, false
}

// SideboardSwap exchanges a card from the deck or hand with a card from
// the sideboard. The sideboard card takes the exact zone and position the
// removed card occupied, so draw order is preserved; the removed card is
// appended to the sideboard. Returns the display names of both cards.
//
// Re-inserting into the hand when the removed card was in hand is
// inherited behavior: arguably swapped-in cards belong in the deck, but
// changing that silently would surprise anyone mid-game.
func (s *Session) SideboardSwap(removeName, addName string) (removed, added string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sideIdx := -1
	for i, card := range s.sideboard {
		if card.SameName(addName) {
			sideIdx = i
			break
		}
	}
	if sideIdx == -1 {
		return "", "", &NotFoundError{Name: addName, Where: "sideboard"}
	}

	zone, idx, ok := s.locate(removeName)
	if !ok {
		return "", "", &NotFoundError{Name: removeName, Where: "deck or hand"}
	}

	sideCard := s.sideboard[sideIdx]
	s.sideboard = append(s.sideboard[:sideIdx], s.sideboard[sideIdx+1:]...)

	var mainCard Card
	switch zone {
	case zoneDeck:
		mainCard = s.deck[idx]
		s.deck[idx] = sideCard
	case zoneHand:
		mainCard = s.hand[idx]
		s.hand[idx] = sideCard
	}
	s.sideboard = append(s.sideboard, mainCard)

	s.logger.Log(log.NewSideboardSwapEvent(mainCard.Name, sideCard.Name))
	return mainCard.Name, sideCard.Name, nil
}

// --- Read-only views ---

// CardCount pairs a card name with how many copies are present.
type CardCount struct {
	Name  string
	Count int
}

// Stats summarizes the session's zone sizes and the most numerous cards
// remaining in the deck.
type Stats struct {
	DeckCount      int
	HandCount      int
	SideboardCount int
	TopCards       []CardCount // up to 5, ties broken by deck order
}

// groupByName counts cards by name, preserving first-seen order.
func groupByName(cards []Card) []CardCount {
	index := make(map[string]int)
	var groups []CardCount
	for _, card := range cards {
		if i, ok := index[card.Name]; ok {
			groups[i].Count++
			continue
		}
		index[card.Name] = len(groups)
		groups = append(groups, CardCount{Name: card.Name, Count: 1})
	}
	return groups
}

// HandCounts groups the hand by card name in first-drawn order.
func (s *Session) HandCounts() []CardCount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return groupByName(s.hand)
}

// DeckStats reports zone sizes and the five most numerous distinct card
// names in the deck. Ties keep the grouping order, which follows the
// deck's current order.
func (s *Session) DeckStats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	groups := groupByName(s.deck)
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Count > groups[j].Count
	})
	if len(groups) > 5 {
		groups = groups[:5]
	}

	return Stats{
		DeckCount:      len(s.deck),
		HandCount:      len(s.hand),
		SideboardCount: len(s.sideboard),
		TopCards:       groups,
	}
}

// Counts returns the sizes of the three zones.
func (s *Session) Counts() (deck, hand, sideboard int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.deck), len(s.hand), len(s.sideboard)
}

// Zones returns copies of the three zones, top of deck first.
func (s *Session) Zones() (deck, hand, sideboard []Card) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Card(nil), s.deck...),
		append([]Card(nil), s.hand...),
		append([]Card(nil), s.sideboard...)
}
