package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"

	"portalchess/internal/config"
	"portalchess/internal/portalchess"
	"portalchess/internal/server/game"
)

// TestCase 一个局面的走法夹具：前端 / 其他实现拿来对照
type TestCase struct {
	Pieces     map[string]string   `json:"pieces"` // 格子 -> 棋子符号
	Cooldowns  map[string]int      `json:"cooldowns,omitempty"`
	ToMove     string              `json:"to_move"`
	Selectable []string            `json:"selectable"`        // stage 0：能动的棋子
	From       string              `json:"from"`              // stage 1：选中的棋子
	Targets    []string            `json:"targets"`           // stage 1：它的所有落点
	Portals    map[string][]string `json:"portals,omitempty"` // 落点 -> 经过的门
}

func snapshotCase(g *game.GameState, rng *rand.Rand) (TestCase, portalchess.Move, bool) {
	s := g.Snapshot()
	moves := s.LegalMoves
	if len(moves) == 0 {
		return TestCase{}, portalchess.Move{}, false
	}
	tc := TestCase{
		Pieces: make(map[string]string),
		ToMove: s.ToMove.String(),
	}
	for _, pv := range s.Pieces {
		tc.Pieces[pv.Pos.String()] = pv.Symbol
	}
	for _, pv := range s.Portals {
		if pv.Remaining > 0 {
			if tc.Cooldowns == nil {
				tc.Cooldowns = make(map[string]int)
			}
			tc.Cooldowns[pv.ID] = pv.Remaining
		}
	}

	froms := make(map[string]bool)
	for _, mv := range moves {
		froms[mv.From.String()] = true
	}
	for sq := range froms {
		tc.Selectable = append(tc.Selectable, sq)
	}
	sort.Strings(tc.Selectable)

	chosen := moves[rng.Intn(len(moves))]
	tc.From = chosen.From.String()
	for _, mv := range moves {
		if mv.From != chosen.From {
			continue
		}
		tc.Targets = append(tc.Targets, mv.To.String())
		if mv.UsedPortal {
			if tc.Portals == nil {
				tc.Portals = make(map[string][]string)
			}
			tc.Portals[mv.To.String()] = append(tc.Portals[mv.To.String()], mv.PortalID)
		}
	}
	sort.Strings(tc.Targets)
	return tc, chosen, true
}

func generate(cfg config.GameConfig, rng *rand.Rand, numGames, maxPlies int) ([]TestCase, error) {
	var cases []TestCase
	for i := 0; i < numGames; i++ {
		g, err := game.NewGameState(uuid.NewString(), cfg)
		if err != nil {
			return nil, err
		}
		for ply := 0; ply < maxPlies; ply++ {
			tc, mv, ok := snapshotCase(g, rng)
			if !ok {
				break
			}
			cases = append(cases, tc)
			if _, err := g.Play(mv.From, mv.To); err != nil {
				return nil, fmt.Errorf("game %d ply %d: %w", i, ply+1, err)
			}
		}
	}
	return cases, nil
}

func main() {
	cfgPath := flag.String("config", "", "game definition (yaml or json); empty = standard chess")
	numGames := flag.Int("games", 10, "number of random games")
	maxPlies := flag.Int("maxplies", 200, "plies per game at most")
	out := flag.String("out", "move_gen_test_data.json", "output file")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cases, err := generate(cfg, rand.New(rand.NewSource(*seed)), *numGames, *maxPlies)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	file, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(*out, file, 0644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	fmt.Printf("Generated %d test cases from %d random games to %s\n", len(cases), *numGames, *out)
}
