package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/peterkuimelis/mtgmgr/internal/game"
)

// RegisterGameTools adds the deck-manager tools to the MCP server. All
// handlers operate on the given session; decksFile is the path to the
// YAML deck library used by load_deck.
func RegisterGameTools(s *server.MCPServer, sess *game.Session, decksFile string) {
	s.AddTool(uploadDeckTool(), handleUploadDeck(sess))
	s.AddTool(loadDeckTool(), handleLoadDeck(sess, decksFile))
	s.AddTool(drawCardTool(), handleDrawCard(sess))
	s.AddTool(playCardTool(), handlePlayCard(sess))
	s.AddTool(viewHandTool(), handleViewHand(sess))
	s.AddTool(viewDeckStatsTool(), handleViewDeckStats(sess))
	s.AddTool(mulliganTool(), handleMulligan(sess))
	s.AddTool(sideboardSwapTool(), handleSideboardSwap(sess))
	s.AddTool(resetGameTool(), handleResetGame(sess))
}

// --- Tool definitions ---

func uploadDeckTool() mcp.Tool {
	return mcp.NewTool("upload_deck",
		mcp.WithDescription("Upload a Magic: The Gathering deck list. Replaces the current deck, "+
			"sideboard, and hand; the deck is shuffled."),
		mcp.WithString("deck_list", mcp.Required(),
			mcp.Description("Text format deck list with \"Deck\" and \"Sideboard\" sections")),
	)
}

func loadDeckTool() mcp.Tool {
	return mcp.NewTool("load_deck",
		mcp.WithDescription("Load a deck from the deck library file by number (1-indexed). "+
			"Replaces the current deck, sideboard, and hand; the deck is shuffled."),
		mcp.WithNumber("deck_number", mcp.Required(),
			mcp.Description("1-indexed deck number in the library file")),
	)
}

func drawCardTool() mcp.Tool {
	return mcp.NewTool("draw_card",
		mcp.WithDescription("Draw cards from your deck to your hand."),
		mcp.WithNumber("count", mcp.Description("Number of cards to draw (default: 1)")),
	)
}

func playCardTool() mcp.Tool {
	return mcp.NewTool("play_card",
		mcp.WithDescription("Play a card from your hand to the battlefield/stack."),
		mcp.WithString("card_name", mcp.Required(), mcp.Description("Name of the card to play")),
	)
}

func viewHandTool() mcp.Tool {
	return mcp.NewTool("view_hand",
		mcp.WithDescription("View the cards in your hand. Read-only."),
	)
}

func viewDeckStatsTool() mcp.Tool {
	return mcp.NewTool("view_deck_stats",
		mcp.WithDescription("View statistics about your current deck. Read-only."),
	)
}

func mulliganTool() mcp.Tool {
	return mcp.NewTool("mulligan",
		mcp.WithDescription("Perform a mulligan, shuffling your hand into your deck and drawing a new hand."),
		mcp.WithNumber("new_hand_size",
			mcp.Description("Number of cards to draw for new hand (default: same as current hand)")),
	)
}

func sideboardSwapTool() mcp.Tool {
	return mcp.NewTool("sideboard_swap",
		mcp.WithDescription("Swap a card from your deck or hand with a card from your sideboard. "+
			"The sideboard card takes the removed card's position."),
		mcp.WithString("remove_card", mcp.Required(), mcp.Description("Name of card to remove from deck or hand")),
		mcp.WithString("add_card", mcp.Required(), mcp.Description("Name of card to add from sideboard")),
	)
}

func resetGameTool() mcp.Tool {
	return mcp.NewTool("reset_game",
		mcp.WithDescription("Reset the game state: return the hand to the deck and shuffle. "+
			"The sideboard is untouched."),
	)
}

// --- Tool handlers ---
//
// Expected game conditions (not enough cards, name not in zone, empty
// hand) come back as ordinary text results, matching the messages the
// session's callers rely on; only malformed arguments produce tool
// errors.

func handleUploadDeck(sess *game.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		deckList := request.GetString("deck_list", "")
		mainCount, sideCount := sess.Upload(deckList)
		return mcp.NewToolResultText(fmt.Sprintf(
			"Deck uploaded with %d main deck cards and %d sideboard cards.",
			mainCount, sideCount)), nil
	}
}

func handleLoadDeck(sess *game.Session, decksFile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		n := request.GetInt("deck_number", 0)
		if n < 1 {
			return mcp.NewToolResultError("deck_number must be >= 1"), nil
		}

		name, main, side, err := game.DeckByNumber(decksFile, n)
		if err != nil {
			return mcp.NewToolResultErrorf("Failed to load deck: %v", err), nil
		}

		mainCount, sideCount := sess.UploadCards(main, side)
		return mcp.NewToolResultText(fmt.Sprintf(
			"Loaded deck '%s' with %d main deck cards and %d sideboard cards.",
			name, mainCount, sideCount)), nil
	}
}

func handleDrawCard(sess *game.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		count := request.GetInt("count", 1)
		if count < 1 {
			return mcp.NewToolResultError("count must be >= 1"), nil
		}

		names, err := sess.Draw(count)
		var insufficient *game.InsufficientCardsError
		if errors.As(err, &insufficient) {
			return mcp.NewToolResultText(fmt.Sprintf(
				"Not enough cards in deck. Only %d remaining.", insufficient.Remaining)), nil
		}
		if err != nil {
			return mcp.NewToolResultErrorf("Draw failed: %v", err), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf(
			"Drew %d card(s): %s", len(names), strings.Join(names, ", "))), nil
	}
}

func handlePlayCard(sess *game.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := request.GetString("card_name", "")
		if name == "" {
			return mcp.NewToolResultError("card_name is required"), nil
		}

		played, err := sess.Play(name)
		var notFound *game.NotFoundError
		if errors.As(err, &notFound) {
			return mcp.NewToolResultText(fmt.Sprintf(
				"Card '%s' not found in hand.", notFound.Name)), nil
		}
		if err != nil {
			return mcp.NewToolResultErrorf("Play failed: %v", err), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Played %s.", played)), nil
	}
}

func handleViewHand(sess *game.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(game.FormatHand(sess.HandCounts())), nil
	}
}

func handleViewDeckStats(sess *game.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(game.FormatStats(sess.DeckStats())), nil
	}
}

func handleMulligan(sess *game.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		size := request.GetInt("new_hand_size", -1)

		drawn, err := sess.Mulligan(size)
		if errors.Is(err, game.ErrEmptyHand) {
			return mcp.NewToolResultText("Cannot mulligan with an empty hand."), nil
		}
		if err != nil {
			return mcp.NewToolResultErrorf("Mulligan failed: %v", err), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf(
			"Mulliganed and drew %d new cards.", drawn)), nil
	}
}

func handleSideboardSwap(sess *game.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		removeName := request.GetString("remove_card", "")
		addName := request.GetString("add_card", "")
		if removeName == "" || addName == "" {
			return mcp.NewToolResultError("remove_card and add_card are required"), nil
		}

		removed, added, err := sess.SideboardSwap(removeName, addName)
		var notFound *game.NotFoundError
		if errors.As(err, &notFound) {
			return mcp.NewToolResultText(fmt.Sprintf(
				"Card '%s' not found in %s.", notFound.Name, notFound.Where)), nil
		}
		if err != nil {
			return mcp.NewToolResultErrorf("Sideboard swap failed: %v", err), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf(
			"Swapped out %s for %s from sideboard.", removed, added)), nil
	}
}

func handleResetGame(sess *game.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sess.Reset()
		return mcp.NewToolResultText("Game reset. Deck shuffled."), nil
	}
}
