package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid game config")

// Movement 各方向最大步数，0 表示不能这样走
type Movement struct {
	Forward          int `yaml:"forward" json:"forward"`
	Sideways         int `yaml:"sideways" json:"sideways"`
	Diagonal         int `yaml:"diagonal" json:"diagonal"`
	DiagonalCapture  int `yaml:"diagonal_capture" json:"diagonal_capture"`
	FirstMoveForward int `yaml:"first_move_forward" json:"first_move_forward"`
	LShape           int `yaml:"l_shape" json:"l_shape"`
}

type Abilities struct {
	Royal        bool           `yaml:"royal" json:"royal"`
	Castling     bool           `yaml:"castling" json:"castling"`
	JumpOver     bool           `yaml:"jump_over" json:"jump_over"`
	Promotion    bool           `yaml:"promotion" json:"promotion"`
	EnPassant    bool           `yaml:"en_passant" json:"en_passant"`
	PortalMaster bool           `yaml:"portal_master" json:"portal_master"`
	Custom       map[string]int `yaml:"custom,omitempty" json:"custom,omitempty"`
}

// Positions 坐标用代数记法，如 "e4"
type Positions struct {
	White []string `yaml:"white" json:"white"`
	Black []string `yaml:"black" json:"black"`
}

type PieceConfig struct {
	Type             string    `yaml:"type" json:"type"`
	Movement         Movement  `yaml:"movement" json:"movement"`
	SpecialAbilities Abilities `yaml:"special_abilities" json:"special_abilities"`
	Positions        Positions `yaml:"positions" json:"positions"`
}

type PortalConfig struct {
	ID                string   `yaml:"id" json:"id"`
	Entry             string   `yaml:"entry" json:"entry"`
	Exit              string   `yaml:"exit" json:"exit"`
	PreserveDirection *bool    `yaml:"preserve_direction,omitempty" json:"preserve_direction,omitempty"`
	Cooldown          int      `yaml:"cooldown" json:"cooldown"`
	AllowedColors     []string `yaml:"allowed_colors,omitempty" json:"allowed_colors,omitempty"`
}

// GameConfig 一局棋的完整定义。按值传递，进了对局就不再改。
type GameConfig struct {
	BoardSize    int            `yaml:"board_size" json:"board_size"`
	FEN          string         `yaml:"fen,omitempty" json:"fen,omitempty"`
	Pieces       []PieceConfig  `yaml:"pieces,omitempty" json:"pieces,omitempty"`
	CustomPieces []PieceConfig  `yaml:"custom_pieces,omitempty" json:"custom_pieces,omitempty"`
	Portals      []PortalConfig `yaml:"portals,omitempty" json:"portals,omitempty"`
}

// Load 读 YAML 或 JSON 文件（JSON 本身就是合法的 YAML）
func Load(path string) (GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GameConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return GameConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse 解码、补默认值、校验；未知字段视为错误
func Parse(data []byte) (GameConfig, error) {
	var cfg GameConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return GameConfig{}, fmt.Errorf("decode: %v: %w", err, ErrInvalidConfig)
	}
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// LoadOrDefault path 为空时返回 Default()
func LoadOrDefault(path string) (GameConfig, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Default 标准国际象棋开局，没有传送门
func Default() GameConfig {
	return GameConfig{BoardSize: 8, FEN: startFEN}
}

func (c GameConfig) withDefaults() GameConfig {
	if c.BoardSize == 0 {
		c.BoardSize = 8
	}
	return c
}

// Marshal 写回 YAML
func (c GameConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// PieceCount 配置里摆出的棋子总数（不含 FEN）
func (c GameConfig) PieceCount() int {
	n := 0
	for _, group := range [][]PieceConfig{c.Pieces, c.CustomPieces} {
		for _, pc := range group {
			n += len(pc.Positions.White) + len(pc.Positions.Black)
		}
	}
	return n
}

func (c GameConfig) Validate() error {
	if c.BoardSize < 1 || c.BoardSize > maxBoardSize {
		return fmt.Errorf("board_size %d out of range 1..%d: %w", c.BoardSize, maxBoardSize, ErrInvalidConfig)
	}
	if c.FEN != "" {
		if c.BoardSize != 8 {
			return fmt.Errorf("fen requires board_size 8, got %d: %w", c.BoardSize, ErrInvalidConfig)
		}
		if !validFEN(c.FEN) {
			return fmt.Errorf("bad fen %q: %w", c.FEN, ErrInvalidConfig)
		}
	}
	for _, group := range [][]PieceConfig{c.Pieces, c.CustomPieces} {
		for _, pc := range group {
			if err := c.validatePiece(pc); err != nil {
				return err
			}
		}
	}
	ids := make(map[string]bool)
	for i, p := range c.Portals {
		if err := c.validatePortal(p); err != nil {
			return fmt.Errorf("portal #%d: %w", i, err)
		}
		if p.ID != "" {
			if ids[p.ID] {
				return fmt.Errorf("duplicate portal id %q: %w", p.ID, ErrInvalidConfig)
			}
			ids[p.ID] = true
		}
	}
	return nil
}

func (c GameConfig) validatePiece(pc PieceConfig) error {
	if strings.TrimSpace(pc.Type) == "" {
		return fmt.Errorf("piece without type: %w", ErrInvalidConfig)
	}
	m := pc.Movement
	for name, v := range map[string]int{
		"forward":            m.Forward,
		"sideways":           m.Sideways,
		"diagonal":           m.Diagonal,
		"diagonal_capture":   m.DiagonalCapture,
		"first_move_forward": m.FirstMoveForward,
		"l_shape":            m.LShape,
	} {
		if v < 0 {
			return fmt.Errorf("%s: negative %s: %w", pc.Type, name, ErrInvalidConfig)
		}
	}
	for name, v := range pc.SpecialAbilities.Custom {
		if v < 0 {
			return fmt.Errorf("%s: negative ability %s: %w", pc.Type, name, ErrInvalidConfig)
		}
	}
	for _, sq := range append(append([]string(nil), pc.Positions.White...), pc.Positions.Black...) {
		if err := c.checkSquare(sq); err != nil {
			return fmt.Errorf("%s: %w", pc.Type, err)
		}
	}
	return nil
}

func (c GameConfig) validatePortal(p PortalConfig) error {
	if err := c.checkSquare(p.Entry); err != nil {
		return fmt.Errorf("entry: %w", err)
	}
	if err := c.checkSquare(p.Exit); err != nil {
		return fmt.Errorf("exit: %w", err)
	}
	if strings.EqualFold(p.Entry, p.Exit) {
		return fmt.Errorf("entry equals exit %s: %w", p.Entry, ErrInvalidConfig)
	}
	if p.Cooldown < 0 {
		return fmt.Errorf("negative cooldown %d: %w", p.Cooldown, ErrInvalidConfig)
	}
	for _, s := range p.AllowedColors {
		if _, ok := parseColor(s); !ok {
			return fmt.Errorf("unknown color %q: %w", s, ErrInvalidConfig)
		}
	}
	return nil
}

func (c GameConfig) checkSquare(s string) error {
	p, ok := parseSquare(s)
	if !ok {
		return fmt.Errorf("bad square %q: %w", s, ErrInvalidConfig)
	}
	if p.X >= c.BoardSize || p.Y >= c.BoardSize {
		return fmt.Errorf("square %s outside %dx%d board: %w", s, c.BoardSize, c.BoardSize, ErrInvalidConfig)
	}
	return nil
}
