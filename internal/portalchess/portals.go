package portalchess

// PortalRegistry 持有所有传送门。
// 冷却只有一个计数器：Portal.remaining。queue 只记录进入冷却的先后顺序，
// 每次 ProcessCooldowns 都按计数器重新裁剪，所以两个查询永远一致。
type PortalRegistry struct {
	portals []*Portal
	byID    map[string]*Portal
	queue   []string
}

func NewPortalRegistry() *PortalRegistry {
	return &PortalRegistry{byID: make(map[string]*Portal)}
}

// Add id 为空或重复时拒绝
func (r *PortalRegistry) Add(p *Portal) bool {
	if p == nil || p.id == "" {
		return false
	}
	if _, dup := r.byID[p.id]; dup {
		return false
	}
	r.portals = append(r.portals, p)
	r.byID[p.id] = p
	return true
}

func (r *PortalRegistry) Len() int { return len(r.portals) }

// Portals 按注册顺序
func (r *PortalRegistry) Portals() []*Portal {
	return append([]*Portal(nil), r.portals...)
}

func (r *PortalRegistry) ByID(id string) *Portal {
	return r.byID[id]
}

// ByEntry 同一入口有多个门时取先注册的
func (r *PortalRegistry) ByEntry(pos Position) *Portal {
	for _, p := range r.portals {
		if p.entry == pos {
			return p
		}
	}
	return nil
}

func (r *PortalRegistry) IsEntryPoint(pos Position) bool {
	return r.ByEntry(pos) != nil
}

func (r *PortalRegistry) IsExitPoint(pos Position) bool {
	for _, p := range r.portals {
		if p.exit == pos {
			return true
		}
	}
	return false
}

// CanUse 冷却中一律不能用；颜色不在允许列表里时，只有 portal_master 能用
func (r *PortalRegistry) CanUse(p *Portal, pc *Piece) bool {
	if p == nil || pc == nil {
		return false
	}
	if p.InCooldown() {
		return false
	}
	if p.IsColorAllowed(pc.color) {
		return true
	}
	return pc.HasAbility(AbilityPortalMaster)
}

// ExitPosition 没有对应入口时原样返回
func (r *PortalRegistry) ExitPosition(entry Position) Position {
	if p := r.ByEntry(entry); p != nil {
		return p.exit
	}
	return entry
}

// Use 进入冷却；已经在冷却中的门重新计时并排到队尾
func (r *PortalRegistry) Use(id string) bool {
	p := r.byID[id]
	if p == nil {
		return false
	}
	p.activate()
	r.dequeue(id)
	if p.InCooldown() {
		r.queue = append(r.queue, id)
	}
	return true
}

// ProcessCooldowns 每个回合调用一次：所有冷却中的门计数减一
func (r *PortalRegistry) ProcessCooldowns() {
	kept := r.queue[:0]
	for _, id := range r.queue {
		p := r.byID[id]
		p.tick()
		if p.InCooldown() {
			kept = append(kept, id)
		}
	}
	r.queue = kept
}

// InCooldown 冷却中的门 id，按进入冷却的顺序
func (r *PortalRegistry) InCooldown() []string {
	out := make([]string, 0, len(r.queue))
	for _, id := range r.queue {
		if r.byID[id].InCooldown() {
			out = append(out, id)
		}
	}
	return out
}

func (r *PortalRegistry) dequeue(id string) {
	for i, q := range r.queue {
		if q == id {
			r.queue = append(r.queue[:i], r.queue[i+1:]...)
			return
		}
	}
}

// Hash 覆盖门的位置和剩余冷却，用于判断图是否过期
func (r *PortalRegistry) Hash() uint64 {
	var h uint64
	for i, p := range r.portals {
		k := fnv64(p.id) ^ p.entry.Hash() ^ (p.exit.Hash() * 31)
		k ^= uint64(p.remaining+1) * 0xC2B2AE3D27D4EB4F
		for _, c := range p.AllowedColors() {
			k ^= uint64(c+1) * 0x165667B19E3779F9
		}
		h ^= mix64(k + uint64(i))
	}
	return h
}
