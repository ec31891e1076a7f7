package httpserver

import (
	"portalchess/internal/config"
	"portalchess/internal/portalchess"
	"portalchess/internal/record"
	"portalchess/internal/server/game"
)

// NewGameRequest config 为空时用服务启动时加载的默认配置
type NewGameRequest struct {
	Config *config.GameConfig `json:"config,omitempty"`
}

// 前端用的招法结构，坐标用代数记法
type MoveDTO struct {
	From       string `json:"from"`
	To         string `json:"to"`
	UsedPortal bool   `json:"used_portal,omitempty"`
	PortalID   string `json:"portal_id,omitempty"`
}

type PieceDTO struct {
	Square string `json:"square"`
	Type   string `json:"type"`
	Color  string `json:"color"`
	Symbol string `json:"symbol"`
	Moved  bool   `json:"moved"`
}

type PortalDTO struct {
	ID                string   `json:"id"`
	Entry             string   `json:"entry"`
	Exit              string   `json:"exit"`
	PreserveDirection bool     `json:"preserve_direction"`
	Cooldown          int      `json:"cooldown"`
	Remaining         int      `json:"remaining"`
	AllowedColors     []string `json:"allowed_colors"`
}

// State 请求：前端刷新时用 game_id 来要当前盘面
type StateRequest struct {
	GameID string `json:"game_id"`
}

// NewGame / State 共用的返回
type StateResponse struct {
	GameID     string      `json:"game_id"`
	BoardSize  int         `json:"board_size"`
	ToMove     string      `json:"to_move"` // "white" / "black"
	Ply        int         `json:"ply"`
	Pieces     []PieceDTO  `json:"pieces"`
	Portals    []PortalDTO `json:"portals"`
	InCooldown []string    `json:"in_cooldown"`
	LegalMoves []MoveDTO   `json:"legal_moves"`
	Status     string      `json:"status"` // "ongoing" / "no_moves"
}

type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
}

type PlayResponse struct {
	Record record.Record `json:"record"`
	State  StateResponse `json:"state"`
}

type PathRequest struct {
	GameID string `json:"game_id"`
	From   string `json:"from"`
	To     string `json:"to"`
}

type PathResponse struct {
	Found bool     `json:"found"`
	Path  []string `json:"path"`
}

func moveToDTO(m portalchess.Move) MoveDTO {
	return MoveDTO{From: m.From.String(), To: m.To.String(), UsedPortal: m.UsedPortal, PortalID: m.PortalID}
}

func movesToDTO(ms []portalchess.Move) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = moveToDTO(m)
	}
	return out
}

func squaresToDTO(ps []portalchess.Position) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}
	return out
}

func snapshotToDTO(s game.Snapshot) StateResponse {
	resp := StateResponse{
		GameID:     s.ID,
		BoardSize:  s.BoardSize,
		ToMove:     s.ToMove.String(),
		Ply:        s.Ply,
		Pieces:     make([]PieceDTO, 0, len(s.Pieces)),
		Portals:    make([]PortalDTO, 0, len(s.Portals)),
		InCooldown: s.InCooldown,
		LegalMoves: movesToDTO(s.LegalMoves),
		Status:     "ongoing",
	}
	if len(s.LegalMoves) == 0 {
		resp.Status = "no_moves"
	}
	for _, pc := range s.Pieces {
		resp.Pieces = append(resp.Pieces, PieceDTO{
			Square: pc.Pos.String(),
			Type:   pc.Type,
			Color:  pc.Color.String(),
			Symbol: pc.Symbol,
			Moved:  pc.Moved,
		})
	}
	for _, p := range s.Portals {
		colors := make([]string, len(p.AllowedColors))
		for i, c := range p.AllowedColors {
			colors[i] = c.String()
		}
		resp.Portals = append(resp.Portals, PortalDTO{
			ID:                p.ID,
			Entry:             p.Entry.String(),
			Exit:              p.Exit.String(),
			PreserveDirection: p.PreserveDirection,
			Cooldown:          p.Cooldown,
			Remaining:         p.Remaining,
			AllowedColors:     colors,
		})
	}
	return resp
}
