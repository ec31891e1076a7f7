package portalchess

import "testing"

func TestBoardHashIncrementalMatchesFullRecompute(t *testing.T) {
	b, _, err := BoardFromFEN(StartFEN)
	if err != nil {
		t.Fatalf("fen: %v", err)
	}
	if b.Hash() != b.CalculateHash() {
		t.Fatalf("initial hash mismatch: got=%d want=%d", b.Hash(), b.CalculateHash())
	}

	c := White
	for ply := 0; ply < 24; ply++ {
		moves := b.GenerateMovesForColor(c)
		if len(moves) == 0 {
			return
		}
		mv := moves[len(moves)/2]
		if !b.MovePiece(mv.From, mv.To) {
			t.Fatalf("move failed at ply %d: %+v", ply, mv)
		}
		if got, want := b.Hash(), b.CalculateHash(); got != want {
			t.Fatalf("hash mismatch at ply %d: got=%d want=%d move=%+v", ply, got, want, mv)
		}
		c = c.Opposite()
	}
}

func TestHashTracksMovedFlag(t *testing.T) {
	a := NewBoard(8)
	place(t, a, TypeRook, White, "a1")
	a.MovePiece(sq(t, "a1"), sq(t, "a2"))

	b := NewBoard(8)
	place(t, b, TypeRook, White, "a2")
	if a.Hash() == b.Hash() {
		t.Fatal("moved and unmoved rook on a2 hash the same")
	}
	b.Remove(sq(t, "a2"))
	if b.Hash() != 0 {
		t.Fatal("empty board hash should be zero")
	}
}
