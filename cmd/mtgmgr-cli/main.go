package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/peterkuimelis/mtgmgr/internal/game"
	"github.com/peterkuimelis/mtgmgr/internal/log"
)

func main() {
	decks := flag.String("decks", "decks.yaml", "path to deck library YAML file")
	seed := flag.Int64("seed", 0, "shuffle RNG seed (0 for random)")
	flag.Parse()

	sess := game.NewSession(game.Config{
		Logger: log.NewTextLogger(os.Stdout),
		Seed:   *seed,
	})

	fmt.Println("mtgmgr — type 'help' for commands")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		switch strings.ToLower(cmd) {
		case "help":
			printHelp()
		case "quit", "exit":
			return
		case "upload":
			runUpload(sess, rest)
		case "load":
			runLoad(sess, *decks, rest)
		case "draw":
			runDraw(sess, rest)
		case "play":
			runPlay(sess, rest)
		case "mull", "mulligan":
			runMulligan(sess, rest)
		case "swap":
			runSwap(sess, rest)
		case "reset":
			sess.Reset()
		case "hand":
			fmt.Println(game.FormatHand(sess.HandCounts()))
		case "stats":
			fmt.Println(game.FormatStats(sess.DeckStats()))
		default:
			fmt.Printf("Unknown command %q. Type 'help' for commands.\n", cmd)
		}
	}
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  upload FILE       Load a decklist text file (Deck/Sideboard sections)")
	fmt.Println("  load N            Load deck N from the deck library file")
	fmt.Println("  draw [N]          Draw N cards (default 1)")
	fmt.Println("  play NAME         Play a card from your hand")
	fmt.Println("  mull [N]          Mulligan to N cards (default: current hand size)")
	fmt.Println("  swap OUT = IN     Swap OUT (deck/hand) for IN (sideboard)")
	fmt.Println("  reset             Return hand to deck and shuffle")
	fmt.Println("  hand              Show your hand")
	fmt.Println("  stats             Show deck statistics")
	fmt.Println("  quit              Exit")
}

func runUpload(sess *game.Session, path string) {
	if path == "" {
		fmt.Println("Usage: upload FILE")
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	sess.Upload(string(data))
}

func runLoad(sess *game.Session, decksFile, arg string) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		fmt.Println("Usage: load N (1-indexed deck number)")
		return
	}
	name, deck, side, err := game.DeckByNumber(decksFile, n)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Loading '%s'...\n", name)
	sess.UploadCards(deck, side)
}

func runDraw(sess *game.Session, arg string) {
	count := 1
	if arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			fmt.Println("Usage: draw [N]")
			return
		}
		count = n
	}
	if _, err := sess.Draw(count); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

func runPlay(sess *game.Session, name string) {
	if name == "" {
		fmt.Println("Usage: play NAME")
		return
	}
	if _, err := sess.Play(name); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

func runMulligan(sess *game.Session, arg string) {
	size := -1
	if arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			fmt.Println("Usage: mull [N]")
			return
		}
		size = n
	}
	if _, err := sess.Mulligan(size); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

func runSwap(sess *game.Session, args string) {
	removeName, addName, ok := strings.Cut(args, "=")
	removeName = strings.TrimSpace(removeName)
	addName = strings.TrimSpace(addName)
	if !ok || removeName == "" || addName == "" {
		fmt.Println("Usage: swap OUT = IN")
		return
	}
	if _, _, err := sess.SideboardSwap(removeName, addName); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}
