package portalchess

import (
	"strings"
	"unicode"
)

type standardKind int8

const (
	kindCustom standardKind = iota
	kindKing
	kindQueen
	kindRook
	kindBishop
	kindKnight
	kindPawn
)

// 标准棋子的类型名
const (
	TypeKing   = "King"
	TypeQueen  = "Queen"
	TypeRook   = "Rook"
	TypeBishop = "Bishop"
	TypeKnight = "Knight"
	TypePawn   = "Pawn"
)

var standardKinds = map[string]standardKind{
	TypeKing:   kindKing,
	TypeQueen:  kindQueen,
	TypeRook:   kindRook,
	TypeBishop: kindBishop,
	TypeKnight: kindKnight,
	TypePawn:   kindPawn,
}

var kindSymbols = map[standardKind]rune{
	kindKing:   'K',
	kindQueen:  'Q',
	kindRook:   'R',
	kindBishop: 'B',
	kindKnight: 'N',
	kindPawn:   'P',
}

// 标准棋子的固定规则表
func standardRules(k standardKind) (RuleSet, AbilitySet) {
	switch k {
	case kindKing:
		return RuleSet{RuleForward: 1, RuleSideways: 1, RuleDiagonal: 1},
			AbilitySet{AbilityRoyal: 1, AbilityCastling: 1}
	case kindQueen:
		return RuleSet{RuleForward: 8, RuleSideways: 8, RuleDiagonal: 8}, AbilitySet{}
	case kindRook:
		return RuleSet{RuleForward: 8, RuleSideways: 8}, AbilitySet{}
	case kindBishop:
		return RuleSet{RuleDiagonal: 8}, AbilitySet{}
	case kindKnight:
		return RuleSet{RuleLShape: 1}, AbilitySet{AbilityJumpOver: 1}
	case kindPawn:
		return RuleSet{RuleForward: 1, RuleFirstMoveForward: 2, RuleDiagonalCapture: 1},
			AbilitySet{AbilityPromotion: 1, AbilityEnPassant: 1}
	}
	return RuleSet{}, AbilitySet{}
}

// Piece 棋子本身不知道自己在哪个格子，位置只由 Board 记录
type Piece struct {
	color     Color
	kind      string
	std       standardKind
	moved     bool
	rules     RuleSet
	abilities AbilitySet
}

// NewPiece 工厂：六种标准名字走固定规则表（忽略传入的 rules/abilities），
// 其它名字一律按传入的数据构造自定义棋子
func NewPiece(kind string, color Color, rules RuleSet, abilities AbilitySet) *Piece {
	if k, ok := standardKinds[kind]; ok {
		r, a := standardRules(k)
		return &Piece{color: color, kind: kind, std: k, rules: r, abilities: a}
	}
	return &Piece{
		color:     color,
		kind:      kind,
		std:       kindCustom,
		rules:     rules.Clone(),
		abilities: abilities.Clone(),
	}
}

func (pc *Piece) Color() Color     { return pc.color }
func (pc *Piece) Type() string     { return pc.kind }
func (pc *Piece) HasMoved() bool   { return pc.moved }
func (pc *Piece) IsStandard() bool { return pc.std != kindCustom }

// 只能从 false 变 true
func (pc *Piece) markMoved() { pc.moved = true }

func (pc *Piece) Rule(name string) int { return pc.rules.Get(name) }

func (pc *Piece) Rules() RuleSet { return pc.rules.Clone() }

func (pc *Piece) Abilities() AbilitySet { return pc.abilities.Clone() }

func (pc *Piece) HasAbility(name string) bool { return pc.abilities.Has(name) }

func (pc *Piece) AbilityValue(name string) int { return pc.abilities[name] }

func (pc *Piece) SetAbility(name string, value int) {
	if pc.abilities == nil {
		pc.abilities = AbilitySet{}
	}
	pc.abilities[name] = value
}

// Symbol 显示用：白方大写，黑方小写；自定义棋子取类型名首字母
func (pc *Piece) Symbol() string {
	r, ok := kindSymbols[pc.std]
	if !ok {
		for _, c := range strings.TrimSpace(pc.kind) {
			r = c
			break
		}
		if r == 0 {
			r = '?'
		}
	}
	if pc.color == White {
		return string(unicode.ToUpper(r))
	}
	return string(unicode.ToLower(r))
}

// CanMoveTo 只看形状和占位，不看将军、不看传送门，不会 panic
func (pc *Piece) CanMoveTo(from, to Position, b *Board) bool {
	if pc == nil || b == nil {
		return false
	}
	if from == to || !b.InBounds(from) || !b.InBounds(to) {
		return false
	}
	switch pc.std {
	case kindKing:
		return pc.canMoveKing(from, to, b)
	case kindQueen, kindRook, kindBishop:
		return pc.canMoveSlider(from, to, b)
	case kindKnight:
		return pc.canMoveKnight(from, to, b)
	case kindPawn:
		return pc.canMovePawn(from, to, b)
	}
	return pc.canMoveGeneric(from, to, b)
}
