package portalchess

import (
	"reflect"
	"testing"
)

func newRegistry(t *testing.T, portals ...*Portal) *PortalRegistry {
	t.Helper()
	r := NewPortalRegistry()
	for _, p := range portals {
		if !r.Add(p) {
			t.Fatalf("add portal %q failed", p.ID())
		}
	}
	return r
}

func TestCooldownCountsDownExactly(t *testing.T) {
	p := NewPortal("p", Pos(0, 0), Pos(7, 7), false, 3)
	r := newRegistry(t, p)

	if !r.Use("p") {
		t.Fatal("use failed")
	}
	for tick := 1; tick <= 3; tick++ {
		if !p.InCooldown() {
			t.Fatalf("before tick %d: portal should be cooling", tick)
		}
		if got := r.InCooldown(); !reflect.DeepEqual(got, []string{"p"}) {
			t.Fatalf("before tick %d: registry = %v", tick, got)
		}
		r.ProcessCooldowns()
		if want := 3 - tick; p.RemainingCooldown() != want {
			t.Fatalf("after tick %d: remaining=%d want=%d", tick, p.RemainingCooldown(), want)
		}
	}
	if p.InCooldown() || len(r.InCooldown()) != 0 {
		t.Fatal("portal still cooling after 3 ticks")
	}
	r.ProcessCooldowns()
	if p.RemainingCooldown() != 0 {
		t.Fatal("remaining went negative")
	}
}

func TestZeroCooldownNeverCools(t *testing.T) {
	p := NewPortal("p", Pos(0, 0), Pos(1, 1), false, 0)
	r := newRegistry(t, p)
	if !r.Use("p") {
		t.Fatal("use failed")
	}
	if p.InCooldown() || len(r.InCooldown()) != 0 {
		t.Fatal("zero cooldown portal is cooling")
	}
	if NewPortal("n", Pos(0, 0), Pos(1, 1), false, -4).Cooldown() != 0 {
		t.Fatal("negative cooldown not clamped")
	}
}

func TestRegistryAddAndUseRejections(t *testing.T) {
	r := newRegistry(t, NewPortal("a", Pos(0, 0), Pos(1, 1), false, 1))
	if r.Add(NewPortal("a", Pos(2, 2), Pos(3, 3), false, 1)) {
		t.Fatal("duplicate id accepted")
	}
	if r.Add(NewPortal("", Pos(2, 2), Pos(3, 3), false, 1)) {
		t.Fatal("empty id accepted")
	}
	if r.Add(nil) {
		t.Fatal("nil accepted")
	}
	if r.Use("missing") {
		t.Fatal("unknown id used")
	}
	if r.Len() != 1 || len(r.InCooldown()) != 0 {
		t.Fatal("registry changed")
	}
}

func TestReuseRestartsCountdown(t *testing.T) {
	a := NewPortal("a", Pos(0, 0), Pos(1, 1), false, 3)
	b := NewPortal("b", Pos(2, 2), Pos(3, 3), false, 3)
	r := newRegistry(t, a, b)

	r.Use("a")
	r.ProcessCooldowns()
	r.Use("b")
	if got := r.InCooldown(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("order = %v", got)
	}
	r.Use("a")
	if got := r.InCooldown(); !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Fatalf("order after reuse = %v", got)
	}
	if a.RemainingCooldown() != 3 {
		t.Fatalf("reuse did not restart: %d", a.RemainingCooldown())
	}
	r.ProcessCooldowns()
	r.ProcessCooldowns()
	r.ProcessCooldowns()
	if len(r.InCooldown()) != 0 {
		t.Fatalf("still cooling: %v", r.InCooldown())
	}
}

func TestCanUse(t *testing.T) {
	p := NewPortal("p", Pos(4, 0), Pos(4, 7), false, 2)
	r := newRegistry(t, p)
	white := NewPiece(TypeRook, White, nil, nil)
	black := NewPiece(TypeRook, Black, nil, nil)
	master := NewPiece(TypeRook, White, nil, AbilitySet{AbilityPortalMaster: 1})

	if !r.CanUse(p, white) || !r.CanUse(p, black) {
		t.Fatal("default portal should allow both colors")
	}
	p.RestrictTo(Black)
	if r.CanUse(p, white) || !r.CanUse(p, black) {
		t.Fatal("restriction ignored")
	}
	if !r.CanUse(p, master) {
		t.Fatal("portal_master should bypass the color restriction")
	}
	r.Use("p")
	if r.CanUse(p, black) || r.CanUse(p, master) {
		t.Fatal("cooling portal usable")
	}
	if r.CanUse(nil, white) || r.CanUse(p, nil) {
		t.Fatal("nil input usable")
	}
	if got := p.AllowedColors(); !reflect.DeepEqual(got, []Color{Black}) {
		t.Fatalf("AllowedColors = %v", got)
	}
	p.AllowColor(White)
	if len(p.AllowedColors()) != 2 {
		t.Fatal("AllowColor did not add white")
	}
}

func TestEntryExitQueries(t *testing.T) {
	r := newRegistry(t,
		NewPortal("first", Pos(1, 1), Pos(6, 6), false, 0),
		NewPortal("second", Pos(1, 1), Pos(2, 5), true, 0),
	)
	if got := r.ExitPosition(Pos(1, 1)); got != Pos(6, 6) {
		t.Fatalf("ExitPosition = %v", got)
	}
	if got := r.ExitPosition(Pos(3, 3)); got != Pos(3, 3) {
		t.Fatalf("non-entry should map to itself, got %v", got)
	}
	if !r.IsEntryPoint(Pos(1, 1)) || r.IsEntryPoint(Pos(6, 6)) {
		t.Fatal("IsEntryPoint")
	}
	if !r.IsExitPoint(Pos(2, 5)) || r.IsExitPoint(Pos(1, 1)) {
		t.Fatal("IsExitPoint")
	}
	if r.ByID("second") == nil || !r.ByID("second").PreservesDirection() {
		t.Fatal("ByID")
	}
}

func TestRegistryHashTracksCooldown(t *testing.T) {
	r := newRegistry(t, NewPortal("p", Pos(0, 0), Pos(1, 1), false, 1))
	h := r.Hash()
	r.Use("p")
	if r.Hash() == h {
		t.Fatal("hash ignored cooldown")
	}
	r.ProcessCooldowns()
	if r.Hash() != h {
		t.Fatal("hash did not return after cooldown")
	}
}
