package portalchess

// 兵：直走不能吃子，斜前一格必须吃子（吃过路兵交给上层）
func (pc *Piece) canMovePawn(from, to Position, b *Board) bool {
	dir := forwardDir(pc.color)
	dx := to.X - from.X
	dy := to.Y - from.Y

	if abs(dx) == 1 && dy == dir {
		dst := b.PieceAt(to)
		return dst != nil && dst.color != pc.color
	}

	if dx != 0 {
		return false
	}
	if dy == dir {
		return b.IsEmpty(to)
	}
	if dy == 2*dir && !pc.moved {
		// 两格开局：中间一格也必须空
		if !b.IsEmpty(from.Add(0, dir)) {
			return false
		}
		return b.IsEmpty(to)
	}
	return false
}
