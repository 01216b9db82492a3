package scryfall

import "fmt"

// Card is the subset of a Scryfall card object that the lookup tools
// present.
type Card struct {
	Name       string            `json:"name"`
	ManaCost   string            `json:"mana_cost,omitempty"`
	TypeLine   string            `json:"type_line"`
	OracleText string            `json:"oracle_text,omitempty"`
	Power      string            `json:"power,omitempty"`
	Toughness  string            `json:"toughness,omitempty"`
	Loyalty    string            `json:"loyalty,omitempty"`
	Legalities map[string]string `json:"legalities,omitempty"`
	Prices     Prices            `json:"prices"`
}

// Prices holds the price fields we surface.
type Prices struct {
	USD string `json:"usd,omitempty"`
}

// SearchResult is a page of cards returned by /cards/search.
type SearchResult struct {
	TotalCards int    `json:"total_cards"`
	HasMore    bool   `json:"has_more"`
	Data       []Card `json:"data"`
}

// NotFoundError indicates the API returned 404 for a request.
type NotFoundError struct {
	URL string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s", e.URL)
}

// APIError is a structured error response from the Scryfall API.
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Details string `json:"details"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("scryfall API error (%d %s): %s", e.Status, e.Code, e.Details)
}
