package portalchess

// Hop 路线中的一步；PortalID 为空表示普通走子
type Hop struct {
	From     Position `json:"from"`
	To       Position `json:"to"`
	PortalID string   `json:"portal_id,omitempty"`
}

// Route 一次走子的完整路线
type Route []Hop

func (rt Route) Path() []Position {
	if len(rt) == 0 {
		return nil
	}
	out := []Position{rt[0].From}
	for _, h := range rt {
		out = append(out, h.To)
	}
	return out
}

func (rt Route) UsesPortal() bool {
	for _, h := range rt {
		if h.PortalID != "" {
			return true
		}
	}
	return false
}

// Move 压缩成一步：起点、终点、最后一个用到的门
func (rt Route) Move() Move {
	if len(rt) == 0 {
		return Move{}
	}
	mv := Move{From: rt[0].From, To: rt[len(rt)-1].To}
	for _, h := range rt {
		if h.PortalID != "" {
			mv.UsedPortal = true
			mv.PortalID = h.PortalID
		}
	}
	return mv
}

// Validator 在 Board + PortalRegistry 之上建图做可达性判断。
// 只持有两者的引用；记录建图时的哈希，查询前发现哈希变了就重建。
type Validator struct {
	board   *Board
	portals *PortalRegistry
	graph   MoveGraph

	built      bool
	boardHash  uint64
	portalHash uint64
}

func NewValidator(b *Board, r *PortalRegistry) *Validator {
	if r == nil {
		r = NewPortalRegistry()
	}
	return &Validator{board: b, portals: r}
}

// RebuildGraph 整体重建：所有格子做节点，每个棋子的合法落点做普通边，
// 入口出口都在盘内的门做传送门边（能不能用不在这里判断）
func (v *Validator) RebuildGraph() {
	v.graph.Clear()
	b := v.board
	for x := 0; x < b.size; x++ {
		for y := 0; y < b.size; y++ {
			v.graph.AddNode(Position{X: x, Y: y})
		}
	}
	for _, from := range b.Positions() {
		for _, mv := range b.GenerateMoves(from) {
			v.graph.AddEdge(mv.From, mv.To, false)
		}
	}
	for _, p := range v.portals.portals {
		if b.InBounds(p.entry) && b.InBounds(p.exit) {
			v.graph.AddEdge(p.entry, p.exit, true)
		}
	}
	v.built = true
	v.boardHash = b.Hash()
	v.portalHash = v.portals.Hash()
}

// Stale 盘面或门的状态在上次建图后是否变化过
func (v *Validator) Stale() bool {
	return !v.built || v.boardHash != v.board.Hash() || v.portalHash != v.portals.Hash()
}

func (v *Validator) ensureGraph() {
	if v.Stale() {
		v.RebuildGraph()
	}
}

func (v *Validator) Graph() *MoveGraph {
	v.ensureGraph()
	return &v.graph
}

// FindPath 图上的最短路径（按边数），不考虑走子方
func (v *Validator) FindPath(from, to Position) []Position {
	v.ensureGraph()
	return v.graph.ShortestPath(from, to)
}

// CanUsePortal pos 是入口时，交给 registry 判断这个棋子能不能用
func (v *Validator) CanUsePortal(pos Position, pc *Piece) bool {
	return v.portals.CanUse(v.portals.ByEntry(pos), pc)
}

func (v *Validator) IsValidMove(from, to Position) bool {
	_, ok := v.ResolveMove(from, to)
	return ok
}

// ResolveMove 找出 from 上的棋子走到 to 的路线
func (v *Validator) ResolveMove(from, to Position) (Route, bool) {
	if from == to {
		return nil, false
	}
	parent := v.reach(from)
	if parent == nil {
		return nil, false
	}
	if _, ok := parent[to]; !ok {
		return nil, false
	}
	return buildRoute(parent, from, to), true
}

// ValidMovesFrom from 上的棋子所有可达终点（含传送门），按 BFS 发现顺序
func (v *Validator) ValidMovesFrom(from Position) []Route {
	parent := v.reach(from)
	if parent == nil {
		return nil
	}
	var out []Route
	for _, p := range v.discovery(from, parent) {
		out = append(out, buildRoute(parent, from, p))
	}
	return out
}

// 路线上的前驱
type hopInfo struct {
	prev     Position
	portalID string
	order    int
}

// reach 以 from 上的棋子为走子方做 BFS：
//   - 普通边要求该棋子能从 u 合法走到 v；
//   - 传送门边要求门可用，且出口不是己方棋子；
//   - 除起点外，有子的格子是终点（吃子后走子结束）。
func (v *Validator) reach(from Position) map[Position]hopInfo {
	mover := v.board.PieceAt(from)
	if mover == nil {
		return nil
	}
	v.ensureGraph()

	parent := map[Position]hopInfo{from: {prev: from, order: 0}}
	queue := []Position{from}
	n := 0
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u != from && !v.board.IsEmpty(u) {
			continue
		}
		for _, e := range v.graph.adj[u] {
			if _, seen := parent[e.To]; seen {
				continue
			}
			var portalID string
			if e.Portal {
				p := v.usablePortal(u, e.To, mover)
				if p == nil {
					continue
				}
				portalID = p.id
			} else if u != from && !v.board.IsMoveValidFor(mover, u, e.To) {
				continue
			}
			n++
			parent[e.To] = hopInfo{prev: u, portalID: portalID, order: n}
			queue = append(queue, e.To)
		}
	}
	return parent
}

// 入口 u -> 出口 to 的门里，第一个这个棋子能用的
func (v *Validator) usablePortal(u, to Position, mover *Piece) *Portal {
	if dst := v.board.PieceAt(to); dst != nil && dst.color == mover.color {
		return nil
	}
	for _, p := range v.portals.portals {
		if p.entry == u && p.exit == to && v.portals.CanUse(p, mover) {
			return p
		}
	}
	return nil
}

func (v *Validator) discovery(from Position, parent map[Position]hopInfo) []Position {
	out := make([]Position, len(parent)-1)
	for p, h := range parent {
		if p == from {
			continue
		}
		out[h.order-1] = p
	}
	return out
}

func buildRoute(parent map[Position]hopInfo, from, to Position) Route {
	var rev Route
	for cur := to; cur != from; {
		h := parent[cur]
		rev = append(rev, Hop{From: h.prev, To: cur, PortalID: h.portalID})
		cur = h.prev
	}
	out := make(Route, len(rev))
	for i, h := range rev {
		out[len(rev)-1-i] = h
	}
	return out
}
