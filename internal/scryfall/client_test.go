package scryfall

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(serverURL string) *Client {
	c := NewClient()
	c.baseURL = serverURL
	return c
}

func TestNamedCard(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cards/named" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("fuzzy"); got != "lightning bolt" {
			t.Errorf("fuzzy param = %q", got)
		}
		if ua := r.Header.Get("User-Agent"); ua == "" {
			t.Error("missing User-Agent header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"name": "Lightning Bolt",
			"mana_cost": "{R}",
			"type_line": "Instant",
			"oracle_text": "Lightning Bolt deals 3 damage to any target.",
			"prices": {"usd": "1.50"},
			"legalities": {"modern": "legal", "standard": "not_legal"}
		}`))
	}))
	defer server.Close()

	card, err := testClient(server.URL).NamedCard(context.Background(), "lightning bolt", true)
	if err != nil {
		t.Fatalf("NamedCard: %v", err)
	}
	if card.Name != "Lightning Bolt" || card.ManaCost != "{R}" {
		t.Errorf("card = %+v", card)
	}
	if card.Prices.USD != "1.50" {
		t.Errorf("price = %q, want 1.50", card.Prices.USD)
	}
}

func TestNamedCardExact(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("exact"); got != "Negate" {
			t.Errorf("exact param = %q", got)
		}
		w.Write([]byte(`{"name": "Negate", "type_line": "Instant"}`))
	}))
	defer server.Close()

	if _, err := testClient(server.URL).NamedCard(context.Background(), "Negate", false); err != nil {
		t.Fatalf("NamedCard: %v", err)
	}
}

func TestNamedCardNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := testClient(server.URL).NamedCard(context.Background(), "Not A Card", true)
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("error = %v, want NotFoundError", err)
	}
}

func TestSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cards/search" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "c:red cmc=1" {
			t.Errorf("q param = %q", got)
		}
		w.Write([]byte(`{
			"total_cards": 2,
			"has_more": false,
			"data": [
				{"name": "Lightning Bolt", "type_line": "Instant"},
				{"name": "Shock", "type_line": "Instant"}
			]
		}`))
	}))
	defer server.Close()

	result, err := testClient(server.URL).Search(context.Background(), "c:red cmc=1")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if result.TotalCards != 2 || len(result.Data) != 2 {
		t.Errorf("result = %+v", result)
	}
	if result.Data[1].Name != "Shock" {
		t.Errorf("data[1] = %q, want Shock", result.Data[1].Name)
	}
}

func TestRandomCardQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cards/random" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "t:goblin" {
			t.Errorf("q param = %q", got)
		}
		w.Write([]byte(`{"name": "Goblin Guide", "type_line": "Creature — Goblin Scout"}`))
	}))
	defer server.Close()

	card, err := testClient(server.URL).RandomCard(context.Background(), "t:goblin")
	if err != nil {
		t.Fatalf("RandomCard: %v", err)
	}
	if card.Name != "Goblin Guide" {
		t.Errorf("card = %q", card.Name)
	}
}

func TestAPIErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status": 400, "code": "bad_request", "details": "Invalid search query."}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).Search(context.Background(), "((")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want APIError", err)
	}
	if apiErr.Details != "Invalid search query." {
		t.Errorf("details = %q", apiErr.Details)
	}
}

func TestRateLimiting(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name": "Island", "type_line": "Basic Land — Island"}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 3; i++ {
		if _, err := client.NamedCard(ctx, "Island", true); err != nil {
			t.Fatalf("request %d: %v", i+1, err)
		}
	}

	// Two 100ms gaps between three requests.
	if elapsed := time.Since(start); elapsed < 200*time.Millisecond {
		t.Errorf("3 requests completed in %v; rate limiter not engaged", elapsed)
	}
}
