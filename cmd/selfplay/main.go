package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"portalchess/internal/config"
	"portalchess/internal/record"
)

func main() {
	cfgPath := flag.String("config", "", "game definition (yaml or json); empty = standard chess")
	maxPlies := flag.Int("maxplies", 40, "max plies to play")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	out := flag.String("out", "", "write move history to this parquet file")
	games := flag.Int("games", 1, "number of games; more than one prints a summary instead of every move")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	rng := rand.New(rand.NewSource(*seed))
	log.Printf("seed %d, max plies %d", *seed, *maxPlies)

	var history []record.Record
	if *games > 1 {
		history, err = runBenchmark(cfg, rng, *games, *maxPlies)
	} else {
		history, err = playGame(cfg, rng, *maxPlies, true)
	}
	if err != nil {
		log.Fatalf("selfplay: %v", err)
	}

	if *out != "" {
		if err := record.WriteParquet(*out, history, 4); err != nil {
			log.Fatalf("write %s: %v", *out, err)
		}
		log.Printf("wrote %d plies to %s", len(history), *out)
	}
	log.Println("Selfplay finished.")
	os.Exit(0)
}
