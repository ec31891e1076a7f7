package portalchess

// 路径检查：from 与 to 之间（不含两端）必须全空，终点不能是己方棋子
func (pc *Piece) pathClear(from, to Position, b *Board) bool {
	dx, dy := sign(to.X-from.X), sign(to.Y-from.Y)
	cur := from.Add(dx, dy)
	for cur != to {
		if !b.IsEmpty(cur) {
			return false
		}
		cur = cur.Add(dx, dy)
	}
	if dst := b.PieceAt(to); dst != nil && dst.color == pc.color {
		return false
	}
	return true
}

// 纵向：自定义棋子只能朝自己的前方；标准车/后纵向两个方向都可以
func (pc *Piece) validForward(from, to Position, b *Board, bothWays bool) bool {
	if from.X != to.X {
		return false
	}
	dist := (to.Y - from.Y) * forwardDir(pc.color)
	if bothWays {
		dist = abs(dist)
	}
	limit := pc.rules.Get(RuleForward)
	if !pc.moved && pc.rules.Has(RuleFirstMoveForward) {
		limit = max(limit, pc.rules.Get(RuleFirstMoveForward))
	}
	if dist <= 0 || dist > limit {
		return false
	}
	return pc.pathClear(from, to, b)
}

func (pc *Piece) validSideways(from, to Position, b *Board) bool {
	if from.Y != to.Y {
		return false
	}
	dist := abs(to.X - from.X)
	if dist <= 0 || dist > pc.rules.Get(RuleSideways) {
		return false
	}
	return pc.pathClear(from, to, b)
}

// 斜走：diagonal 覆盖的距离直接按路径判断；
// 超出 diagonal 但在 diagonal_capture 之内的，只能吃子
func (pc *Piece) validDiagonal(from, to Position, b *Board) bool {
	dx, dy := abs(to.X-from.X), abs(to.Y-from.Y)
	if dx != dy || dx == 0 {
		return false
	}
	dist := dx
	plain := pc.rules.Get(RuleDiagonal)
	capture := pc.rules.Get(RuleDiagonalCapture)
	if dist > max(plain, capture) {
		return false
	}
	if dist > plain {
		dst := b.PieceAt(to)
		if dst == nil || dst.color == pc.color {
			return false
		}
	}
	return pc.pathClear(from, to, b)
}

// 通用走法：依次尝试 日字 / 斜 / 横 / 纵，命中第一个分支就返回
func (pc *Piece) canMoveGeneric(from, to Position, b *Board) bool {
	dx, dy := abs(to.X-from.X), abs(to.Y-from.Y)

	if pc.rules.Get(RuleLShape) > 0 && isLShape(from, to) {
		return pc.landable(to, b)
	}

	if dx == dy && dx > 0 &&
		(pc.rules.Get(RuleDiagonal) >= dx || pc.rules.Get(RuleDiagonalCapture) >= dx) {
		return pc.validDiagonal(from, to, b)
	}

	if dy == 0 && dx > 0 && pc.rules.Get(RuleSideways) >= dx {
		return pc.validSideways(from, to, b)
	}

	if dx == 0 && dy > 0 {
		if sign(to.Y-from.Y) != forwardDir(pc.color) {
			return false
		}
		return pc.validForward(from, to, b, false)
	}
	return false
}

// 车、后、象：规则表 + 路径检查，纵向不分前后
func (pc *Piece) canMoveSlider(from, to Position, b *Board) bool {
	dx, dy := abs(to.X-from.X), abs(to.Y-from.Y)
	switch {
	case dy == 0 && dx > 0:
		return pc.validSideways(from, to, b)
	case dx == 0 && dy > 0:
		return pc.validForward(from, to, b, true)
	case dx == dy && dx > 0:
		return pc.validDiagonal(from, to, b)
	}
	return false
}

// 王：八方向一格；未动过时横向两格算易位形状，是否真能易位由上层判断
func (pc *Piece) canMoveKing(from, to Position, b *Board) bool {
	dx, dy := abs(to.X-from.X), abs(to.Y-from.Y)
	if !pc.moved && dx == 2 && dy == 0 {
		return true
	}
	if dx <= 1 && dy <= 1 && dx+dy > 0 {
		return pc.pathClear(from, to, b)
	}
	return false
}

// 终点为空或是对方棋子
func (pc *Piece) landable(to Position, b *Board) bool {
	dst := b.PieceAt(to)
	return dst == nil || dst.color != pc.color
}
