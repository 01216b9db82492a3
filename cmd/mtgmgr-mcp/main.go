package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/peterkuimelis/mtgmgr/internal/game"
	mtgmcp "github.com/peterkuimelis/mtgmgr/internal/mcp"
)

func main() {
	decks := flag.String("decks", "decks.yaml", "path to deck library YAML file")
	seed := flag.Int64("seed", 0, "shuffle RNG seed (0 for random)")
	flag.Parse()

	sess := game.NewSession(game.Config{Seed: *seed})

	s := server.NewMCPServer("mtg-manager", "1.0.0")
	mtgmcp.RegisterGameTools(s, sess, *decks)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
