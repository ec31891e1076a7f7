package game

import (
	"errors"
	"sync"
	"time"

	"portalchess/internal/config"
	"portalchess/internal/portalchess"
	"portalchess/internal/record"
)

var (
	ErrNotYourTurn = errors.New("not your turn")
	ErrNoPiece     = errors.New("no piece on source square")
	ErrIllegalMove = errors.New("illegal move")
)

// GameState 一局棋。ID/Config/CreatedAt 创建后不变；其余状态只在 mu 下读写：
// 先改盘面/传送门，再重建图，再查询。
type GameState struct {
	ID        string
	Config    config.GameConfig
	CreatedAt time.Time

	mu        sync.Mutex
	board     *portalchess.Board
	portals   *portalchess.PortalRegistry
	validator *portalchess.Validator
	toMove    portalchess.Color
	history   []record.Record
	updatedAt time.Time
}

func NewGameState(id string, cfg config.GameConfig) (*GameState, error) {
	board, portals, err := config.Build(cfg)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return &GameState{
		ID:        id,
		Config:    cfg,
		CreatedAt: now,
		board:     board,
		portals:   portals,
		validator: portalchess.NewValidator(board, portals),
		toMove:    cfg.ToMove(),
		updatedAt: now,
	}, nil
}

func (g *GameState) ToMove() portalchess.Color {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.toMove
}

// History 已走过的步，返回副本
func (g *GameState) History() []record.Record {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]record.Record(nil), g.history...)
}

func (g *GameState) UpdatedAt() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.updatedAt
}

// Play 走一步。顺序：找路线 -> 逐段落子（普通段 MovePiece，传送段 Teleport）
// -> 所有门冷却减一 -> 本步用到的门进入冷却 -> 重建图 -> 换边。
// 用了冷却为 c 的门之后，接下来 c 步里这扇门都不能用。
// 任何一步被拒绝时盘面不变。
func (g *GameState) Play(from, to portalchess.Position) (record.Record, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	mover := g.board.PieceAt(from)
	if mover == nil {
		return record.Record{}, ErrNoPiece
	}
	if mover.Color() != g.toMove {
		return record.Record{}, ErrNotYourTurn
	}
	route, ok := g.validator.ResolveMove(from, to)
	if !ok || !g.routeApplies(mover, route) {
		return record.Record{}, ErrIllegalMove
	}

	captured := g.board.PieceAt(to)
	for _, h := range route {
		if h.PortalID == "" {
			g.board.MovePiece(h.From, h.To)
		} else {
			g.board.Teleport(h.From, h.To)
		}
	}

	g.portals.ProcessCooldowns()
	mv := route.Move()
	for _, h := range route {
		if h.PortalID != "" {
			g.portals.Use(h.PortalID)
		}
	}
	g.validator.RebuildGraph()

	rec := record.New(g.ID, len(g.history)+1, mv, mover, captured)
	g.history = append(g.history, rec)
	g.toMove = g.toMove.Opposite()
	g.updatedAt = time.Now()
	return rec, nil
}

// routeApplies 落子前把每一段都检查一遍，保证后面的 MovePiece/Teleport 不会半途失败
func (g *GameState) routeApplies(mover *portalchess.Piece, route portalchess.Route) bool {
	if len(route) == 0 {
		return false
	}
	for i, h := range route {
		if !g.board.InBounds(h.To) {
			return false
		}
		if dst := g.board.PieceAt(h.To); dst != nil && (dst.Color() == mover.Color() || i < len(route)-1) {
			return false
		}
		if h.PortalID == "" && (castlingShape(mover, h) || !g.board.IsMoveValidFor(mover, h.From, h.To)) {
			return false
		}
	}
	return true
}

// castlingShape 未动过的王横走两格。规则层只认形状，车不会跟着动，
// 所以对局里不把它当作普通走法。
func castlingShape(mover *portalchess.Piece, h portalchess.Hop) bool {
	if !mover.IsStandard() || mover.Type() != portalchess.TypeKing || h.PortalID != "" {
		return false
	}
	dx, dy := h.To.X-h.From.X, h.To.Y-h.From.Y
	return dy == 0 && (dx == 2 || dx == -2)
}

// LegalMoves 轮到的一方所有可走的 (from,to)，包括经由传送门到达的终点
func (g *GameState) LegalMoves() []portalchess.Move {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.legalMoves()
}

func (g *GameState) legalMoves() []portalchess.Move {
	var out []portalchess.Move
	for _, pl := range g.board.PiecesByColor(g.toMove) {
		for _, rt := range g.validator.ValidMovesFrom(pl.Pos) {
			if !g.routeApplies(pl.Piece, rt) {
				continue
			}
			out = append(out, rt.Move())
		}
	}
	return out
}

// Path 图上的最短路径
func (g *GameState) Path(from, to portalchess.Position) []portalchess.Position {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.validator.FindPath(from, to)
}

type PieceView struct {
	Pos    portalchess.Position
	Type   string
	Color  portalchess.Color
	Symbol string
	Moved  bool
}

type PortalView struct {
	ID                string
	Entry             portalchess.Position
	Exit              portalchess.Position
	PreserveDirection bool
	Cooldown          int
	Remaining         int
	AllowedColors     []portalchess.Color
}

// Snapshot 给 HTTP 层的只读快照
type Snapshot struct {
	ID         string
	BoardSize  int
	ToMove     portalchess.Color
	Pieces     []PieceView
	Portals    []PortalView
	InCooldown []string
	LegalMoves []portalchess.Move
	Ply        int
}

func (g *GameState) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := Snapshot{
		ID:         g.ID,
		BoardSize:  g.board.Size(),
		ToMove:     g.toMove,
		InCooldown: g.portals.InCooldown(),
		LegalMoves: g.legalMoves(),
		Ply:        len(g.history),
	}
	for _, p := range g.board.Positions() {
		pc := g.board.PieceAt(p)
		s.Pieces = append(s.Pieces, PieceView{
			Pos:    p,
			Type:   pc.Type(),
			Color:  pc.Color(),
			Symbol: pc.Symbol(),
			Moved:  pc.HasMoved(),
		})
	}
	for _, p := range g.portals.Portals() {
		s.Portals = append(s.Portals, PortalView{
			ID:                p.ID(),
			Entry:             p.Entry(),
			Exit:              p.Exit(),
			PreserveDirection: p.PreservesDirection(),
			Cooldown:          p.Cooldown(),
			Remaining:         p.RemainingCooldown(),
			AllowedColors:     p.AllowedColors(),
		})
	}
	return s
}
