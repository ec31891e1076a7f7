package portalchess

// Edge 有向边；Portal 为 true 表示传送门边
type Edge struct {
	To     Position
	Portal bool
}

// MoveGraph 邻接表。节点和每个节点的出边都按插入顺序保存，BFS 结果因此可复现。
// 同一对格子之间的普通边和传送门边各自独立保存。
type MoveGraph struct {
	nodes []Position
	adj   map[Position][]Edge
}

func NewMoveGraph() *MoveGraph {
	return &MoveGraph{adj: make(map[Position][]Edge)}
}

func (g *MoveGraph) AddNode(p Position) {
	if g.adj == nil {
		g.adj = make(map[Position][]Edge)
	}
	if _, ok := g.adj[p]; ok {
		return
	}
	g.adj[p] = nil
	g.nodes = append(g.nodes, p)
}

// AddEdge 完全相同的边只保留一条
func (g *MoveGraph) AddEdge(from, to Position, portal bool) {
	g.AddNode(from)
	g.AddNode(to)
	e := Edge{To: to, Portal: portal}
	for _, old := range g.adj[from] {
		if old == e {
			return
		}
	}
	g.adj[from] = append(g.adj[from], e)
}

func (g *MoveGraph) HasNode(p Position) bool {
	_, ok := g.adj[p]
	return ok
}

func (g *MoveGraph) Nodes() []Position {
	return append([]Position(nil), g.nodes...)
}

func (g *MoveGraph) NodeCount() int { return len(g.nodes) }

func (g *MoveGraph) EdgeCount() int {
	n := 0
	for _, es := range g.adj {
		n += len(es)
	}
	return n
}

func (g *MoveGraph) Edges(p Position) []Edge {
	return append([]Edge(nil), g.adj[p]...)
}

// Neighbors 去重后的目标格
func (g *MoveGraph) Neighbors(p Position) []Position {
	es := g.adj[p]
	out := make([]Position, 0, len(es))
	seen := make(map[Position]bool, len(es))
	for _, e := range es {
		if seen[e.To] {
			continue
		}
		seen[e.To] = true
		out = append(out, e.To)
	}
	return out
}

func (g *MoveGraph) IsPortalEdge(from, to Position) bool {
	for _, e := range g.adj[from] {
		if e.To == to && e.Portal {
			return true
		}
	}
	return false
}

func (g *MoveGraph) Clear() {
	g.nodes = nil
	g.adj = make(map[Position][]Edge)
}

// ShortestPath 纯图上的 BFS；from==to、端点不在图中、不连通都返回 nil
func (g *MoveGraph) ShortestPath(from, to Position) []Position {
	if from == to || !g.HasNode(from) || !g.HasNode(to) {
		return nil
	}
	parent := map[Position]Position{from: from}
	queue := []Position{from}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, next := range g.Neighbors(u) {
			if _, seen := parent[next]; seen {
				continue
			}
			parent[next] = u
			if next == to {
				return unwind(parent, from, to)
			}
			queue = append(queue, next)
		}
	}
	return nil
}

func unwind(parent map[Position]Position, from, to Position) []Position {
	var rev []Position
	for cur := to; cur != from; cur = parent[cur] {
		rev = append(rev, cur)
	}
	rev = append(rev, from)
	out := make([]Position, len(rev))
	for i, p := range rev {
		out[len(rev)-1-i] = p
	}
	return out
}
