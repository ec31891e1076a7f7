package main

import (
	"log"
	"math/rand"
	"time"

	"portalchess/internal/config"
	"portalchess/internal/portalchess"
	"portalchess/internal/record"
)

type benchStats struct {
	Games       int
	Plies       int
	PortalPlies int
	Captures    int
	KingKills   int
	Elapsed     time.Duration
}

func (s *benchStats) add(history []record.Record) {
	s.Games++
	s.Plies += len(history)
	for _, r := range history {
		if r.UsedPortal {
			s.PortalPlies++
		}
		if r.CapturedType != "" {
			s.Captures++
		}
		if r.CapturedType == portalchess.TypeKing {
			s.KingKills++
		}
	}
}

// runBenchmark 连续跑多局随机对局，返回所有局的记录
func runBenchmark(cfg config.GameConfig, rng *rand.Rand, games, maxPlies int) ([]record.Record, error) {
	var stats benchStats
	var all []record.Record
	start := time.Now()
	for i := 0; i < games; i++ {
		history, err := playGame(cfg, rng, maxPlies, false)
		if err != nil {
			return all, err
		}
		stats.add(history)
		all = append(all, history...)
	}
	stats.Elapsed = time.Since(start)

	log.Printf("games=%d plies=%d portal=%d captures=%d king_captures=%d time=%v",
		stats.Games, stats.Plies, stats.PortalPlies, stats.Captures, stats.KingKills, stats.Elapsed)
	if stats.Elapsed > 0 {
		log.Printf("%.0f plies/s", float64(stats.Plies)/stats.Elapsed.Seconds())
	}
	return all, nil
}
