package portalchess

import "sort"

const DefaultBoardSize = 8

// Board 独占所有棋子：Position -> *Piece，越界的 key 不会出现
type Board struct {
	size   int
	pieces map[Position]*Piece
	hash   uint64
}

// Placement 一个格子上的棋子
type Placement struct {
	Pos   Position
	Piece *Piece
}

func NewBoard(size int) *Board {
	if size <= 0 {
		size = DefaultBoardSize
	}
	return &Board{size: size, pieces: make(map[Position]*Piece)}
}

func (b *Board) Size() int { return b.size }

// Len 棋子数
func (b *Board) Len() int { return len(b.pieces) }

func (b *Board) InBounds(p Position) bool {
	return p.X >= 0 && p.X < b.size && p.Y >= 0 && p.Y < b.size
}

func (b *Board) IsEmpty(p Position) bool {
	_, ok := b.pieces[p]
	return !ok
}

func (b *Board) PieceAt(p Position) *Piece {
	return b.pieces[p]
}

// Place 越界或已有子时失败，原来的子保留
func (b *Board) Place(pc *Piece, p Position) bool {
	if pc == nil || !b.InBounds(p) || !b.IsEmpty(p) {
		return false
	}
	b.pieces[p] = pc
	b.hash ^= pieceHashKey(pc, p)
	return true
}

// Remove 把棋子交还给调用方；没有子返回 nil
func (b *Board) Remove(p Position) *Piece {
	pc, ok := b.pieces[p]
	if !ok {
		return nil
	}
	delete(b.pieces, p)
	b.hash ^= pieceHashKey(pc, p)
	return pc
}

// IsMoveValid 越界 / 无子 / 终点是己方 / 形状不对 都返回 false；不考虑传送门
func (b *Board) IsMoveValid(from, to Position) bool {
	if !b.InBounds(from) || !b.InBounds(to) {
		return false
	}
	return b.IsMoveValidFor(b.PieceAt(from), from, to)
}

// IsMoveValidFor 按 pc 站在 from 来判断，from 上实际有没有子不影响
func (b *Board) IsMoveValidFor(pc *Piece, from, to Position) bool {
	if pc == nil || !b.InBounds(from) || !b.InBounds(to) {
		return false
	}
	if dst := b.PieceAt(to); dst != nil && dst.color == pc.color {
		return false
	}
	return pc.CanMoveTo(from, to, b)
}

// MovePiece 先校验再吃子、搬家、标记 moved；失败时盘面不变
func (b *Board) MovePiece(from, to Position) bool {
	if !b.IsMoveValid(from, to) {
		return false
	}
	b.relocate(from, to)
	pc := b.pieces[to]
	if !pc.moved {
		// moved 标记参与哈希：先拿掉旧 key 再放新 key
		b.hash ^= pieceHashKey(pc, to)
		pc.markMoved()
		b.hash ^= pieceHashKey(pc, to)
	}
	return true
}

// Teleport 传送门搬运：不校验形状，只检查边界和己方占位；不改变 moved
func (b *Board) Teleport(from, to Position) bool {
	if !b.InBounds(from) || !b.InBounds(to) || from == to {
		return false
	}
	pc := b.PieceAt(from)
	if pc == nil {
		return false
	}
	if dst := b.PieceAt(to); dst != nil && dst.color == pc.color {
		return false
	}
	b.relocate(from, to)
	return true
}

func (b *Board) relocate(from, to Position) {
	b.Remove(to)
	pc := b.Remove(from)
	b.pieces[to] = pc
	b.hash ^= pieceHashKey(pc, to)
}

// Positions 所有有子的格子，按 (x,y) 排序
func (b *Board) Positions() []Position {
	out := make([]Position, 0, len(b.pieces))
	for p := range b.pieces {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

func (b *Board) PiecesByColor(c Color) []Placement {
	var out []Placement
	for _, p := range b.Positions() {
		if pc := b.pieces[p]; pc.color == c {
			out = append(out, Placement{Pos: p, Piece: pc})
		}
	}
	return out
}

// FindPiece 按 (x,y) 顺序找第一个匹配的棋子
func (b *Board) FindPiece(kind string, c Color) (Position, bool) {
	for _, p := range b.Positions() {
		pc := b.pieces[p]
		if pc.kind == kind && pc.color == c {
			return p, true
		}
	}
	return Position{}, false
}
