package portalchess

func isLShape(from, to Position) bool {
	dx, dy := abs(to.X-from.X), abs(to.Y-from.Y)
	return (dx == 2 && dy == 1) || (dx == 1 && dy == 2)
}

// 马：不看路径，只看终点
func (pc *Piece) canMoveKnight(from, to Position, b *Board) bool {
	if !isLShape(from, to) {
		return false
	}
	return pc.landable(to, b)
}
