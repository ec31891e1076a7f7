package portalchess

// GenerateMoves from 上棋子的所有伪合法落点（形状 + 占位），按 (x,y) 顺序
func (b *Board) GenerateMoves(from Position) []Move {
	pc := b.PieceAt(from)
	if pc == nil {
		return nil
	}
	var moves []Move
	for x := 0; x < b.size; x++ {
		for y := 0; y < b.size; y++ {
			to := Position{X: x, Y: y}
			if b.IsMoveValid(from, to) {
				moves = append(moves, Move{From: from, To: to})
			}
		}
	}
	return moves
}

// GenerateMovesForColor 某一方全部伪合法走法（不含传送门）
func (b *Board) GenerateMovesForColor(c Color) []Move {
	var moves []Move
	for _, pl := range b.PiecesByColor(c) {
		moves = append(moves, b.GenerateMoves(pl.Pos)...)
	}
	return moves
}
