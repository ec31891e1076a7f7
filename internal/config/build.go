package config

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"portalchess/internal/portalchess"
)

const (
	maxBoardSize = portalchess.MaxNotationSize
	startFEN     = portalchess.StartFEN
)

func parseSquare(s string) (portalchess.Position, bool) {
	return portalchess.ParseSquare(strings.ToLower(strings.TrimSpace(s)))
}

func validFEN(s string) bool {
	_, _, err := portalchess.BoardFromFEN(s)
	return err == nil
}

func parseColor(s string) (portalchess.Color, bool) {
	return portalchess.ParseColor(s)
}

// Rules 只保留非零的步数
func (pc PieceConfig) Rules() portalchess.RuleSet {
	m := pc.Movement
	rules := portalchess.RuleSet{}
	for name, v := range map[string]int{
		portalchess.RuleForward:          m.Forward,
		portalchess.RuleSideways:         m.Sideways,
		portalchess.RuleDiagonal:         m.Diagonal,
		portalchess.RuleDiagonalCapture:  m.DiagonalCapture,
		portalchess.RuleFirstMoveForward: m.FirstMoveForward,
		portalchess.RuleLShape:           m.LShape,
	} {
		if v > 0 {
			rules[name] = v
		}
	}
	return rules
}

// Abilities 布尔开关记为 1，自定义能力保留原值
func (pc PieceConfig) Abilities() portalchess.AbilitySet {
	a := pc.SpecialAbilities
	out := portalchess.AbilitySet{}
	for name, on := range map[string]bool{
		portalchess.AbilityRoyal:        a.Royal,
		portalchess.AbilityCastling:     a.Castling,
		portalchess.AbilityJumpOver:     a.JumpOver,
		portalchess.AbilityPromotion:    a.Promotion,
		portalchess.AbilityEnPassant:    a.EnPassant,
		portalchess.AbilityPortalMaster: a.PortalMaster,
	} {
		if on {
			out[name] = 1
		}
	}
	for name, v := range a.Custom {
		if v != 0 {
			out[name] = v
		}
	}
	return out
}

// ToMove FEN 指定黑方先走时返回 Black，其余都是 White
func (c GameConfig) ToMove() portalchess.Color {
	if f := strings.Fields(c.FEN); len(f) > 1 && f[1] == "b" {
		return portalchess.Black
	}
	return portalchess.White
}

// Build 按配置摆棋、注册传送门。没有 id 的门自动分配一个。
func Build(cfg GameConfig) (*portalchess.Board, *portalchess.PortalRegistry, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	board := portalchess.NewBoard(cfg.BoardSize)
	if cfg.FEN != "" {
		b, _, err := portalchess.BoardFromFEN(cfg.FEN)
		if err != nil {
			return nil, nil, fmt.Errorf("fen %q: %w", cfg.FEN, err)
		}
		board = b
	}

	for _, group := range [][]PieceConfig{cfg.Pieces, cfg.CustomPieces} {
		for _, pc := range group {
			if err := placeAll(board, pc); err != nil {
				return nil, nil, err
			}
		}
	}

	reg := portalchess.NewPortalRegistry()
	for _, p := range cfg.Portals {
		id := p.ID
		if id == "" {
			id = uuid.NewString()
		}
		entry, _ := parseSquare(p.Entry)
		exit, _ := parseSquare(p.Exit)
		preserve := true
		if p.PreserveDirection != nil {
			preserve = *p.PreserveDirection
		}
		portal := portalchess.NewPortal(id, entry, exit, preserve, p.Cooldown)
		if len(p.AllowedColors) > 0 {
			var colors []portalchess.Color
			for _, s := range p.AllowedColors {
				c, _ := parseColor(s)
				colors = append(colors, c)
			}
			portal.RestrictTo(colors...)
		}
		if !reg.Add(portal) {
			return nil, nil, fmt.Errorf("portal %q rejected: %w", id, ErrInvalidConfig)
		}
	}
	return board, reg, nil
}

func placeAll(b *portalchess.Board, pc PieceConfig) error {
	for _, side := range []struct {
		color   portalchess.Color
		squares []string
	}{
		{portalchess.White, pc.Positions.White},
		{portalchess.Black, pc.Positions.Black},
	} {
		for _, s := range side.squares {
			pos, _ := parseSquare(s)
			piece := portalchess.NewPiece(pc.Type, side.color, pc.Rules(), pc.Abilities())
			if !b.Place(piece, pos) {
				return fmt.Errorf("place %s %s at %s: square taken: %w", side.color, pc.Type, s, ErrInvalidConfig)
			}
		}
	}
	return nil
}
