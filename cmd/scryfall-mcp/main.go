package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	mtgmcp "github.com/peterkuimelis/mtgmgr/internal/mcp"
	"github.com/peterkuimelis/mtgmgr/internal/scryfall"
)

func main() {
	s := server.NewMCPServer("scryfall", "1.0.0")
	mtgmcp.RegisterLookupTools(s, scryfall.NewClient())

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
