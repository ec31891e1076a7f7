package portalchess

// 棋子种类是开放的，没法像固定棋种那样预生成随机表，
// 这里改成对 (类型名, 颜色, moved, 坐标) 做 FNV-1a + splitmix 混合

const (
	fnvOffset64 = 1469598103934665603
	fnvPrime64  = 1099511628211
)

func fnv64(s string) uint64 {
	h := uint64(fnvOffset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime64
	}
	return h
}

func mix64(z uint64) uint64 {
	z += 0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func pieceHashKey(pc *Piece, p Position) uint64 {
	if pc == nil {
		return 0
	}
	h := fnv64(pc.kind)
	h ^= uint64(pc.color+1) * 0xC2B2AE3D27D4EB4F
	if pc.moved {
		h ^= 0x165667B19E3779F9
	}
	return mix64(h ^ p.Hash())
}

// Hash 增量维护的盘面哈希
func (b *Board) Hash() uint64 { return b.hash }

// CalculateHash 全量重算，用来校验增量结果
func (b *Board) CalculateHash() uint64 {
	var h uint64
	for p, pc := range b.pieces {
		h ^= pieceHashKey(pc, p)
	}
	return h
}
