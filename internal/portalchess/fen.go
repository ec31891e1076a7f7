package portalchess

import (
	"errors"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

var ErrInvalidFEN = errors.New("invalid FEN")

// 标准开局
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// BoardFromFEN 用标准国际象棋 FEN 摆一个 8x8 的盘面。
// 不在初始格的兵/王/车视为已经动过；FEN 里没有易位权的一方，王也视为动过。
func BoardFromFEN(fen string) (b *Board, toMove Color, err error) {
	fields := strings.Fields(fen)
	if len(fields) == 4 {
		fields = append(fields, "0", "1")
	}
	if len(fields) != 6 || !validPlacement(fields[0]) || (fields[1] != "w" && fields[1] != "b") {
		return nil, White, ErrInvalidFEN
	}
	defer func() {
		// dragontoothmg 对坏输入直接 panic
		if r := recover(); r != nil {
			b, toMove, err = nil, White, ErrInvalidFEN
		}
	}()

	dt := dragontoothmg.ParseFen(strings.Join(fields, " "))
	b = NewBoard(8)
	placeBitboards(b, &dt.White, White, fields[2])
	placeBitboards(b, &dt.Black, Black, fields[2])
	toMove = White
	if !dt.Wtomove {
		toMove = Black
	}
	return b, toMove, nil
}

func placeBitboards(b *Board, bb *dragontoothmg.Bitboards, c Color, castling string) {
	sets := []struct {
		kind string
		bits uint64
	}{
		{TypeKing, bb.Kings},
		{TypeQueen, bb.Queens},
		{TypeRook, bb.Rooks},
		{TypeBishop, bb.Bishops},
		{TypeKnight, bb.Knights},
		{TypePawn, bb.Pawns},
	}
	for _, s := range sets {
		for sq := 0; sq < 64; sq++ {
			if s.bits&(uint64(1)<<sq) == 0 {
				continue
			}
			pos := Position{X: sq % 8, Y: sq / 8}
			pc := NewPiece(s.kind, c, nil, nil)
			if !onHomeSquare(s.kind, c, pos, castling) {
				pc.markMoved()
			}
			b.Place(pc, pos)
		}
	}
}

func onHomeSquare(kind string, c Color, p Position, castling string) bool {
	home := 0
	if c == Black {
		home = 7
	}
	kingSide, queenSide := "K", "Q"
	if c == Black {
		kingSide, queenSide = "k", "q"
	}
	switch kind {
	case TypePawn:
		return p.Y == home+forwardDir(c)
	case TypeKing:
		return p == Position{X: 4, Y: home} &&
			(strings.Contains(castling, kingSide) || strings.Contains(castling, queenSide))
	case TypeRook:
		switch p {
		case Position{X: 0, Y: home}:
			return strings.Contains(castling, queenSide)
		case Position{X: 7, Y: home}:
			return strings.Contains(castling, kingSide)
		}
		return false
	}
	return true
}

func validPlacement(s string) bool {
	ranks := strings.Split(s, "/")
	if len(ranks) != 8 {
		return false
	}
	for _, rank := range ranks {
		n := 0
		for _, ch := range rank {
			switch {
			case ch >= '1' && ch <= '8':
				n += int(ch - '0')
			case strings.ContainsRune("pnbrqkPNBRQK", ch):
				n++
			default:
				return false
			}
		}
		if n != 8 {
			return false
		}
	}
	return true
}
