package game

import (
	"errors"
	"fmt"
)

// ErrEmptyHand is returned by Mulligan when there is no hand to return.
var ErrEmptyHand = errors.New("cannot mulligan with an empty hand")

// NotFoundError reports a card name that was not present in the searched zone.
type NotFoundError struct {
	Name  string // the name searched for
	Where string // "hand", "sideboard", or "deck or hand"
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("card '%s' not found in %s", e.Name, e.Where)
}

// InsufficientCardsError reports a draw that exceeds the deck size.
// No cards move when this is returned.
type InsufficientCardsError struct {
	Requested int
	Remaining int
}

func (e *InsufficientCardsError) Error() string {
	return fmt.Sprintf("not enough cards in deck: %d requested, %d remaining", e.Requested, e.Remaining)
}
