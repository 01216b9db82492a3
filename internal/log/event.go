package log

import (
	"fmt"
	"strings"
)

// EventType enumerates all observable session events.
type EventType int

const (
	EventUpload EventType = iota
	EventDraw
	EventPlay
	EventMulligan
	EventSideboardSwap
	EventReset
)

func (t EventType) String() string {
	switch t {
	case EventUpload:
		return "upload"
	case EventDraw:
		return "draw"
	case EventPlay:
		return "play"
	case EventMulligan:
		return "mulligan"
	case EventSideboardSwap:
		return "sideboard_swap"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// SessionEvent is one entry in the session's event log.
type SessionEvent struct {
	Seq     int
	Type    EventType
	Card    string // primary card involved, if any
	Count   int    // cards moved, if meaningful
	Details string // human-readable description
}

// --- Helper constructors for common events ---

func NewUploadEvent(mainCount, sideCount int) SessionEvent {
	return SessionEvent{
		Type:    EventUpload,
		Count:   mainCount + sideCount,
		Details: fmt.Sprintf("Uploaded deck: %d main, %d sideboard", mainCount, sideCount),
	}
}

func NewDrawEvent(names []string) SessionEvent {
	return SessionEvent{
		Type:    EventDraw,
		Count:   len(names),
		Details: fmt.Sprintf("Drew %d card(s): %s", len(names), strings.Join(names, ", ")),
	}
}

func NewPlayEvent(cardName string) SessionEvent {
	return SessionEvent{
		Type:    EventPlay,
		Card:    cardName,
		Count:   1,
		Details: fmt.Sprintf("Played %s", cardName),
	}
}

func NewMulliganEvent(drawn int) SessionEvent {
	return SessionEvent{
		Type:    EventMulligan,
		Count:   drawn,
		Details: fmt.Sprintf("Mulliganed and drew %d new cards", drawn),
	}
}

func NewSideboardSwapEvent(removed, added string) SessionEvent {
	return SessionEvent{
		Type:    EventSideboardSwap,
		Card:    added,
		Count:   1,
		Details: fmt.Sprintf("Swapped out %s for %s", removed, added),
	}
}

func NewResetEvent(deckSize int) SessionEvent {
	return SessionEvent{
		Type:    EventReset,
		Count:   deckSize,
		Details: "Game reset. Deck shuffled.",
	}
}
