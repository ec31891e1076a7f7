package portalchess

type Color int8

const (
	White Color = 0
	Black Color = 1
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// ParseColor 接受 "white"/"black"（也接受 w/b）
func ParseColor(s string) (Color, bool) {
	switch s {
	case "white", "White", "WHITE", "w":
		return White, true
	case "black", "Black", "BLACK", "b":
		return Black, true
	}
	return White, false
}

// 前进方向：白向 +y，黑向 -y
func forwardDir(c Color) int {
	if c == White {
		return +1
	}
	return -1
}

// 走法规则名
const (
	RuleForward          = "forward"
	RuleSideways         = "sideways"
	RuleDiagonal         = "diagonal"
	RuleDiagonalCapture  = "diagonal_capture"
	RuleFirstMoveForward = "first_move_forward"
	RuleLShape           = "l_shape"
)

// 能力名；除 portal_master 外，核心里都只是标记
const (
	AbilityRoyal        = "royal"
	AbilityCastling     = "castling"
	AbilityJumpOver     = "jump_over"
	AbilityPromotion    = "promotion"
	AbilityEnPassant    = "en_passant"
	AbilityPortalMaster = "portal_master"
)

// RuleSet 规则名 -> 步数上限
type RuleSet map[string]int

// AbilitySet 能力名 -> 值，非 0 即拥有
type AbilitySet map[string]int

func (r RuleSet) Get(name string) int {
	if r == nil {
		return 0
	}
	return r[name]
}

func (r RuleSet) Has(name string) bool {
	_, ok := r[name]
	return ok
}

func (r RuleSet) Clone() RuleSet {
	out := make(RuleSet, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

func (a AbilitySet) Has(name string) bool {
	return a[name] != 0
}

func (a AbilitySet) Clone() AbilitySet {
	out := make(AbilitySet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

type Move struct {
	From       Position `json:"from"`
	To         Position `json:"to"`
	UsedPortal bool     `json:"used_portal,omitempty"`
	PortalID   string   `json:"portal_id,omitempty"`
}
