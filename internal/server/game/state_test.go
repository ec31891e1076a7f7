package game

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"portalchess/internal/config"
	"portalchess/internal/portalchess"
)

func sq(t *testing.T, s string) portalchess.Position {
	t.Helper()
	p, ok := portalchess.ParseSquare(s)
	if !ok {
		t.Fatalf("bad square %q", s)
	}
	return p
}

func portalGame() config.GameConfig {
	return config.GameConfig{
		BoardSize: 8,
		Pieces: []config.PieceConfig{
			{Type: portalchess.TypeRook, Positions: config.Positions{White: []string{"a1", "h1"}}},
			{Type: portalchess.TypeKing, Positions: config.Positions{White: []string{"h3"}, Black: []string{"h7"}}},
		},
		Portals: []config.PortalConfig{{ID: "p", Entry: "e1", Exit: "e5", Cooldown: 2}},
	}
}

func newGame(t *testing.T, cfg config.GameConfig) *GameState {
	t.Helper()
	g, err := NewGameState("test", cfg)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return g
}

func play(t *testing.T, g *GameState, from, to string) {
	t.Helper()
	if _, err := g.Play(sq(t, from), sq(t, to)); err != nil {
		t.Fatalf("%s-%s: %v", from, to, err)
	}
}

func TestPlayThroughPortalAndCooldown(t *testing.T) {
	g := newGame(t, portalGame())
	p := g.portals.ByID("p")

	rec, err := g.Play(sq(t, "a1"), sq(t, "e5"))
	if err != nil {
		t.Fatalf("portal move: %v", err)
	}
	if !rec.UsedPortal || rec.PortalID != "p" || rec.From != "a1" || rec.To != "e5" || rec.Ply != 1 {
		t.Fatalf("record = %+v", rec)
	}
	if pc := g.board.PieceAt(sq(t, "e5")); pc == nil || pc.Type() != portalchess.TypeRook {
		t.Fatal("rook not on the exit")
	}
	if !g.board.IsEmpty(sq(t, "a1")) || !g.board.IsEmpty(sq(t, "e1")) {
		t.Fatal("rook left behind")
	}
	if p.RemainingCooldown() != 2 || !reflect.DeepEqual(g.portals.InCooldown(), []string{"p"}) {
		t.Fatalf("cooldown after use = %d", p.RemainingCooldown())
	}
	if g.toMove != portalchess.Black {
		t.Fatal("turn not flipped")
	}

	play(t, g, "h7", "g7")
	if p.RemainingCooldown() != 1 {
		t.Fatalf("cooldown after ply 2 = %d", p.RemainingCooldown())
	}
	rook := g.board.PieceAt(sq(t, "h1"))
	if g.portals.CanUse(p, rook) {
		t.Fatal("portal usable while cooling")
	}

	play(t, g, "e5", "e6")
	if p.InCooldown() || len(g.portals.InCooldown()) != 0 {
		t.Fatal("portal still cooling after 2 plies")
	}
	if !g.validator.IsValidMove(sq(t, "h1"), sq(t, "e5")) {
		t.Fatal("portal not usable again")
	}
	if len(g.history) != 3 {
		t.Fatalf("history = %d", len(g.history))
	}
}

func TestRejectedMovesLeaveStateUnchanged(t *testing.T) {
	g := newGame(t, portalGame())
	hash := g.board.Hash()

	cases := []struct {
		from, to string
		want     error
	}{
		{"h7", "g7", ErrNotYourTurn},
		{"c3", "c4", ErrNoPiece},
		{"a1", "b2", ErrIllegalMove},
		{"a1", "h1", ErrIllegalMove},
		{"h1", "h5", ErrIllegalMove},
	}
	for _, c := range cases {
		if _, err := g.Play(sq(t, c.from), sq(t, c.to)); !errors.Is(err, c.want) {
			t.Fatalf("%s-%s: err=%v want %v", c.from, c.to, err, c.want)
		}
	}
	if g.board.Hash() != hash || len(g.history) != 0 || g.toMove != portalchess.White {
		t.Fatal("rejected move changed state")
	}
}

func TestCaptureIsRecorded(t *testing.T) {
	cfg := config.GameConfig{
		Pieces: []config.PieceConfig{
			{Type: portalchess.TypeRook, Positions: config.Positions{White: []string{"a1"}}},
			{Type: portalchess.TypePawn, Positions: config.Positions{Black: []string{"a6"}}},
		},
	}
	g := newGame(t, cfg)
	rec, err := g.Play(sq(t, "a1"), sq(t, "a6"))
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if rec.CapturedType != portalchess.TypePawn || rec.CapturedColor != "black" || rec.UsedPortal {
		t.Fatalf("record = %+v", rec)
	}
	if g.board.Len() != 1 {
		t.Fatal("captured pawn still on the board")
	}
}

func TestKingTwoSquareSidestepIsNotPlayable(t *testing.T) {
	cfg := config.GameConfig{
		Pieces: []config.PieceConfig{
			{Type: portalchess.TypeKing, Positions: config.Positions{White: []string{"e1"}, Black: []string{"e8"}}},
			{Type: portalchess.TypeBishop, Positions: config.Positions{White: []string{"f1"}}},
			{Type: portalchess.TypeRook, Positions: config.Positions{White: []string{"a1"}, Black: []string{"g1"}}},
		},
	}
	g := newGame(t, cfg)
	hash := g.board.Hash()

	// g1：越过自己的象去吃车；c1：空格但车不会跟着走
	for _, to := range []string{"g1", "c1"} {
		if _, err := g.Play(sq(t, "e1"), sq(t, to)); !errors.Is(err, ErrIllegalMove) {
			t.Fatalf("e1-%s: err=%v", to, err)
		}
	}
	if g.board.Hash() != hash || len(g.History()) != 0 || g.ToMove() != portalchess.White {
		t.Fatal("rejected king move changed state")
	}
	if pc := g.board.PieceAt(sq(t, "g1")); pc == nil || pc.Color() != portalchess.Black {
		t.Fatal("black rook captured")
	}
	for _, mv := range g.LegalMoves() {
		if mv.From == sq(t, "e1") && (mv.To == sq(t, "g1") || mv.To == sq(t, "c1")) {
			t.Fatalf("two-square king move offered: %+v", mv)
		}
	}

	play(t, g, "e1", "d1")
	if h := g.History(); len(h) != 1 || h[0].To != "d1" || g.ToMove() != portalchess.Black {
		t.Fatalf("history = %+v", h)
	}
}

func TestLegalMovesPathAndSnapshot(t *testing.T) {
	g := newGame(t, portalGame())

	found := false
	for _, mv := range g.LegalMoves() {
		if mv.From == sq(t, "a1") && mv.To == sq(t, "e5") {
			found = mv.UsedPortal && mv.PortalID == "p"
		}
		if g.board.PieceAt(mv.From).Color() != portalchess.White {
			t.Fatalf("move for the wrong side: %+v", mv)
		}
	}
	if !found {
		t.Fatal("portal destination missing from legal moves")
	}

	want := []portalchess.Position{sq(t, "a1"), sq(t, "e1"), sq(t, "e5")}
	if got := g.Path(sq(t, "a1"), sq(t, "e5")); !reflect.DeepEqual(got, want) {
		t.Fatalf("Path = %v", got)
	}

	play(t, g, "a1", "e5")
	s := g.Snapshot()
	if s.ToMove != portalchess.Black || s.Ply != 1 || len(s.Pieces) != 4 || s.BoardSize != 8 {
		t.Fatalf("snapshot = %+v", s)
	}
	if len(s.Portals) != 1 || s.Portals[0].Remaining != 2 || !reflect.DeepEqual(s.InCooldown, []string{"p"}) {
		t.Fatalf("portals = %+v", s.Portals)
	}
	for _, mv := range s.LegalMoves {
		if mv.From != sq(t, "h7") {
			t.Fatalf("black has only the king, got %+v", mv)
		}
	}
}

func TestReadersDuringPlay(t *testing.T) {
	g := newGame(t, portalGame())
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = g.ToMove()
				_ = g.History()
				_ = g.UpdatedAt()
				_ = g.Snapshot()
			}
		}()
	}
	play(t, g, "a1", "e5")
	play(t, g, "h7", "g7")
	play(t, g, "h1", "h2")
	wg.Wait()
	if s := g.Snapshot(); s.Ply != 3 || len(g.History()) != 3 || g.ToMove() != portalchess.Black {
		t.Fatalf("snapshot = %+v", s)
	}
}

func TestManager(t *testing.T) {
	m := NewManager()
	g, err := m.NewGame(config.Default())
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	if got, err := m.Get(g.ID); err != nil || got != g {
		t.Fatalf("Get = %v, %v", got, err)
	}
	if _, err := m.Get("nope"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("Get unknown: %v", err)
	}
	if _, err := m.NewGame(config.GameConfig{BoardSize: 99}); !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("bad config: %v", err)
	}
	if err := m.Delete(g.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := m.Delete(g.ID); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("second delete: %v", err)
	}
}

func TestManagerConcurrentGames(t *testing.T) {
	m := NewManager()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g, err := m.NewGame(config.Default())
			if err != nil {
				t.Errorf("new game: %v", err)
				return
			}
			if _, err := g.Play(portalchess.Pos(4, 1), portalchess.Pos(4, 3)); err != nil {
				t.Errorf("e2-e4: %v", err)
			}
			_ = g.Snapshot()
		}()
	}
	wg.Wait()
	if len(m.IDs()) != 8 {
		t.Fatalf("games = %d", len(m.IDs()))
	}
}
