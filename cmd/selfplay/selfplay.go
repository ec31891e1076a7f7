package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/google/uuid"

	"portalchess/internal/config"
	"portalchess/internal/portalchess"
	"portalchess/internal/record"
	"portalchess/internal/server/game"
)

// playGame 双方都随机走，直到没有招、王被吃或到达步数上限
func playGame(cfg config.GameConfig, rng *rand.Rand, maxPlies int, verbose bool) ([]record.Record, error) {
	g, err := game.NewGameState(uuid.NewString(), cfg)
	if err != nil {
		return nil, err
	}
	for ply := 0; ply < maxPlies; ply++ {
		moves := g.LegalMoves()
		if len(moves) == 0 {
			if verbose {
				log.Printf("Game over: %s has no moves.", g.ToMove())
			}
			break
		}
		mv := moves[rng.Intn(len(moves))]
		rec, err := g.Play(mv.From, mv.To)
		if err != nil {
			return g.History(), fmt.Errorf("ply %d %s-%s: %w", ply+1, mv.From, mv.To, err)
		}
		if verbose {
			log.Println(rec)
		}
		if rec.CapturedType == portalchess.TypeKing {
			if verbose {
				log.Printf("Game over: %s king captured.", rec.CapturedColor)
			}
			break
		}
	}
	return g.History(), nil
}
