package portalchess

import "testing"

func sq(t *testing.T, s string) Position {
	t.Helper()
	p, ok := ParseSquare(s)
	if !ok {
		t.Fatalf("bad square %q", s)
	}
	return p
}

func place(t *testing.T, b *Board, kind string, c Color, at string) *Piece {
	t.Helper()
	pc := NewPiece(kind, c, nil, nil)
	if !b.Place(pc, sq(t, at)) {
		t.Fatalf("place %s %s at %s failed", c, kind, at)
	}
	return pc
}

func placeCustom(t *testing.T, b *Board, kind string, c Color, at string, rules RuleSet, abilities AbilitySet) *Piece {
	t.Helper()
	pc := NewPiece(kind, c, rules, abilities)
	if !b.Place(pc, sq(t, at)) {
		t.Fatalf("place %s %s at %s failed", c, kind, at)
	}
	return pc
}
