package portalchess

// Portal 入口 -> 出口的单向传送门
type Portal struct {
	id                string
	entry             Position
	exit              Position
	preserveDirection bool
	cooldown          int
	remaining         int
	allowed           map[Color]bool
}

// NewPortal 默认黑白双方都能用；负的冷却按 0 处理
func NewPortal(id string, entry, exit Position, preserveDirection bool, cooldown int) *Portal {
	if cooldown < 0 {
		cooldown = 0
	}
	return &Portal{
		id:                id,
		entry:             entry,
		exit:              exit,
		preserveDirection: preserveDirection,
		cooldown:          cooldown,
		allowed:           map[Color]bool{White: true, Black: true},
	}
}

func (p *Portal) ID() string               { return p.id }
func (p *Portal) Entry() Position          { return p.entry }
func (p *Portal) Exit() Position           { return p.exit }
func (p *Portal) PreservesDirection() bool { return p.preserveDirection }
func (p *Portal) Cooldown() int            { return p.cooldown }
func (p *Portal) RemainingCooldown() int   { return p.remaining }
func (p *Portal) InCooldown() bool         { return p.remaining > 0 }

func (p *Portal) IsColorAllowed(c Color) bool { return p.allowed[c] }

func (p *Portal) AllowColor(c Color) { p.allowed[c] = true }

// RestrictTo 用给定颜色替换允许列表
func (p *Portal) RestrictTo(colors ...Color) {
	p.allowed = make(map[Color]bool, len(colors))
	for _, c := range colors {
		p.allowed[c] = true
	}
}

func (p *Portal) AllowedColors() []Color {
	var out []Color
	for _, c := range []Color{White, Black} {
		if p.allowed[c] {
			out = append(out, c)
		}
	}
	return out
}

func (p *Portal) activate() { p.remaining = p.cooldown }

func (p *Portal) tick() {
	if p.remaining > 0 {
		p.remaining--
	}
}
