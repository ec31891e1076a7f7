package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"portalchess/internal/config"
	"portalchess/internal/portalchess"
)

func main() {
	cfgPath := flag.String("config", "", "game definition (yaml or json); empty = standard chess")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	board, portals, err := config.Build(cfg)
	if err != nil {
		log.Fatalf("build: %v", err)
	}

	fmt.Print(render(board, portals))
	side := cfg.ToMove()
	v := portalchess.NewValidator(board, portals)
	n := 0
	for _, pl := range board.PiecesByColor(side) {
		for _, rt := range v.ValidMovesFrom(pl.Pos) {
			mv := rt.Move()
			if mv.UsedPortal {
				fmt.Printf("  %s %s-%s via %s\n", pl.Piece.Type(), mv.From, mv.To, mv.PortalID)
			}
			n++
		}
	}
	fmt.Printf("%s to move: %d moves (%d pseudo legal without portals)\n", side, n, len(board.GenerateMovesForColor(side)))
	fmt.Printf("graph: %d nodes, %d edges\n", v.Graph().NodeCount(), v.Graph().EdgeCount())
}

// render 从上到下打印盘面；传送门入口记作 @，出口记作 *
func render(b *portalchess.Board, portals *portalchess.PortalRegistry) string {
	var sb strings.Builder
	for y := b.Size() - 1; y >= 0; y-- {
		fmt.Fprintf(&sb, "%2d ", y+1)
		for x := 0; x < b.Size(); x++ {
			p := portalchess.Pos(x, y)
			switch pc := b.PieceAt(p); {
			case pc != nil:
				sb.WriteString(pc.Symbol())
			case portals.IsEntryPoint(p):
				sb.WriteByte('@')
			case portals.IsExitPoint(p):
				sb.WriteByte('*')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   ")
	for x := 0; x < b.Size(); x++ {
		sb.WriteByte(byte('a' + x))
	}
	sb.WriteByte('\n')
	return sb.String()
}
