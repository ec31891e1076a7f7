package portalchess

import (
	"fmt"
	"strconv"
	"strings"
)

// 代数记谱最多支持 26 列（a..z）
const MaxNotationSize = 26

// Position 棋盘坐标，x=列（file），y=行（rank），都从 0 开始
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func Pos(x, y int) Position { return Position{X: x, Y: y} }

func (p Position) Less(o Position) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	return p.Y < o.Y
}

func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Hash 稳定哈希（splitmix64），和 map 的内部哈希无关，可以跨进程比较
func (p Position) Hash() uint64 {
	return mix64(uint64(uint32(p.X))<<32 | uint64(uint32(p.Y)))
}

// ParsePosition 宽松解析："e4" -> (4,3)；长度不足 2 返回原点
func ParsePosition(s string) Position {
	if len(s) < 2 {
		return Position{}
	}
	return Position{X: int(s[0]) - 'a', Y: int(s[1]) - '1'}
}

// ParseSquare 严格解析，文本边界用这个
func ParseSquare(s string) (Position, bool) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return Position{}, false
	}
	if s[0] < 'a' || s[0] >= 'a'+MaxNotationSize || s[1] < '1' || s[1] >= '1'+MaxNotationSize {
		return Position{}, false
	}
	return ParsePosition(s), true
}

func (p Position) Notation() string {
	return string([]byte{byte('a' + p.X), byte('1' + p.Y)})
}

func (p Position) String() string {
	if p.X >= 0 && p.X < MaxNotationSize && p.Y >= 0 && p.Y < MaxNotationSize {
		return p.Notation()
	}
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText 接受 "e4" 或 "x,y"
func (p *Position) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	if x, y, ok := strings.Cut(s, ","); ok {
		xi, err1 := strconv.Atoi(strings.TrimSpace(x))
		yi, err2 := strconv.Atoi(strings.TrimSpace(y))
		if err1 != nil || err2 != nil {
			return fmt.Errorf("invalid position %q", s)
		}
		*p = Position{X: xi, Y: yi}
		return nil
	}
	pos, ok := ParseSquare(s)
	if !ok {
		return fmt.Errorf("invalid position %q", s)
	}
	*p = pos
	return nil
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
