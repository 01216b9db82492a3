package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/peterkuimelis/mtgmgr/internal/scryfall"
)

// searchDisplayLimit caps how many search hits are formatted per reply.
const searchDisplayLimit = 5

// RegisterLookupTools adds the Scryfall card-lookup tools to the MCP
// server.
func RegisterLookupTools(s *server.MCPServer, client *scryfall.Client) {
	s.AddTool(searchCardsTool(), handleSearchCards(client))
	s.AddTool(getRandomCardTool(), handleGetRandomCard(client))
	s.AddTool(getCardByNameTool(), handleGetCardByName(client))
}

// --- Tool definitions ---

func searchCardsTool() mcp.Tool {
	return mcp.NewTool("search_cards",
		mcp.WithDescription("Search for Magic cards using a Scryfall query."),
		mcp.WithString("query", mcp.Required(),
			mcp.Description("A search query using Scryfall's syntax (e.g. 'c:red cmc=1')")),
	)
}

func getRandomCardTool() mcp.Tool {
	return mcp.NewTool("get_random_card",
		mcp.WithDescription("Get a random Magic card, optionally filtered by a query."),
		mcp.WithString("query", mcp.Description("Optional query to filter the random selection")),
	)
}

func getCardByNameTool() mcp.Tool {
	return mcp.NewTool("get_card_by_name",
		mcp.WithDescription("Get a specific card by name."),
		mcp.WithString("name", mcp.Required(), mcp.Description("The name of the card to search for")),
		mcp.WithBoolean("fuzzy", mcp.Description("Whether to use fuzzy name matching (default: true)")),
	)
}

// --- Tool handlers ---

func handleSearchCards(client *scryfall.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := request.GetString("query", "")
		if query == "" {
			return mcp.NewToolResultError("query is required"), nil
		}

		result, err := client.Search(ctx, query)
		if err != nil {
			return mcp.NewToolResultText(fmt.Sprintf("Error searching cards: %v", err)), nil
		}
		if len(result.Data) == 0 {
			return mcp.NewToolResultText("No cards found matching that query."), nil
		}

		var out []string
		for i, card := range result.Data {
			if i == searchDisplayLimit {
				break
			}
			out = append(out, scryfall.FormatCard(&card), strings.Repeat("-", 40))
		}
		if result.TotalCards > searchDisplayLimit {
			out = append(out, fmt.Sprintf("\nShowing %d of %d total matches.",
				searchDisplayLimit, result.TotalCards))
		}

		return mcp.NewToolResultText(strings.Join(out, "\n")), nil
	}
}

func handleGetRandomCard(client *scryfall.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := request.GetString("query", "")

		card, err := client.RandomCard(ctx, query)
		if err != nil {
			return mcp.NewToolResultText(fmt.Sprintf("Error fetching random card: %v", err)), nil
		}

		return mcp.NewToolResultText(scryfall.FormatCard(card)), nil
	}
}

func handleGetCardByName(client *scryfall.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := request.GetString("name", "")
		if name == "" {
			return mcp.NewToolResultError("name is required"), nil
		}
		fuzzy := request.GetBool("fuzzy", true)

		card, err := client.NamedCard(ctx, name, fuzzy)
		if err != nil {
			return mcp.NewToolResultText(fmt.Sprintf("Error finding card: %v", err)), nil
		}

		return mcp.NewToolResultText(scryfall.FormatCard(card)), nil
	}
}
