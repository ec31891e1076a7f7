package portalchess

import (
	"errors"
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func TestStartPositionMatchesReferenceGenerator(t *testing.T) {
	b, toMove, err := BoardFromFEN(StartFEN)
	if err != nil {
		t.Fatalf("fen: %v", err)
	}
	if toMove != White || b.Len() != 32 || b.Size() != 8 {
		t.Fatalf("toMove=%s len=%d size=%d", toMove, b.Len(), b.Size())
	}

	ours := b.GenerateMovesForColor(White)
	ref := dragontoothmg.ParseFen(StartFEN)
	theirs := ref.GenerateLegalMoves()
	if len(ours) != 20 || len(theirs) != 20 {
		t.Fatalf("move count: ours=%d ref=%d", len(ours), len(theirs))
	}

	key := func(from, to Position) string { return from.String() + to.String() }
	var a, c []string
	for _, mv := range ours {
		a = append(a, key(mv.From, mv.To))
	}
	for _, mv := range theirs {
		from := Position{X: int(mv.From()) % 8, Y: int(mv.From()) / 8}
		to := Position{X: int(mv.To()) % 8, Y: int(mv.To()) / 8}
		c = append(c, key(from, to))
	}
	sort.Strings(a)
	sort.Strings(c)
	for i := range a {
		if a[i] != c[i] {
			t.Fatalf("move %d differs: ours=%s ref=%s", i, a[i], c[i])
		}
	}
}

func TestBoardFromFENRejectsGarbage(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/ppppzppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	}
	for _, fen := range bad {
		if _, _, err := BoardFromFEN(fen); !errors.Is(err, ErrInvalidFEN) {
			t.Fatalf("%q: err=%v", fen, err)
		}
	}
	if _, c, err := BoardFromFEN("8/8/8/8/8/8/8/K6k b - -"); err != nil || c != Black {
		t.Fatalf("four-field FEN: c=%s err=%v", c, err)
	}
}

func TestBoardFromFENMovedFlags(t *testing.T) {
	b, _, err := BoardFromFEN("r3k2r/8/8/8/4P3/8/3P4/R3K2R w Kq - 0 1")
	if err != nil {
		t.Fatalf("fen: %v", err)
	}
	cases := []struct {
		at    string
		moved bool
	}{
		{"e1", false}, // K
		{"h1", false},
		{"a1", true},
		{"e8", false}, // q
		{"a8", false},
		{"h8", true},
		{"d2", false},
		{"e4", true},
	}
	for _, c := range cases {
		pc := b.PieceAt(sq(t, c.at))
		if pc == nil {
			t.Fatalf("no piece on %s", c.at)
		}
		if pc.HasMoved() != c.moved {
			t.Fatalf("%s moved=%v want %v", c.at, pc.HasMoved(), c.moved)
		}
	}

	b, _, err = BoardFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("fen: %v", err)
	}
	if !b.PieceAt(sq(t, "e1")).HasMoved() || !b.PieceAt(sq(t, "e8")).HasMoved() {
		t.Fatal("kings without castling rights should count as moved")
	}
}
