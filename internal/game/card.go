package game

import (
	"fmt"
	"strings"
)

// Card is one physical card instance. Two cards with the same Name but
// different IDs are distinct copies (e.g. four Lightning Bolts).
type Card struct {
	Name string // display name, case-preserved
	ID   string // unique within a session
}

// SameName reports whether the card's name matches, case-insensitively.
func (c Card) SameName(name string) bool {
	return strings.EqualFold(c.Name, name)
}

// cardID builds an instance id from the card name and a running index.
// Index uniqueness is the caller's responsibility (one counter per parse).
func cardID(name string, n int) string {
	return fmt.Sprintf("%s_%d", strings.ReplaceAll(strings.ToLower(name), " ", "_"), n)
}
