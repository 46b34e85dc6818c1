package nakama

import (
	"buckshot/internal/app"
	"buckshot/internal/bot"
	"buckshot/internal/bot/brain"
	"buckshot/internal/domain"
)

// ChamberInput is a chamber as sent by clients; probabilities are never trusted.
type ChamberInput struct {
	Position int               `json:"position" validate:"min=1"`
	State    domain.ShellState `json:"state" validate:"oneof=unknown known-live known-blank"`
}

// PlayerInput is a player as sent by clients.
type PlayerInput struct {
	ID     int    `json:"id"`
	Name   string `json:"name" validate:"max=32"`
	HP     int    `json:"hp" validate:"gte=0"`
	MaxHP  int    `json:"max_hp" validate:"gte=0"`
	Skill  int    `json:"skill" validate:"gte=0"`
	IsUser bool   `json:"is_user"`
}

// ChamberProbabilitiesRequest is the RpcChamberProbabilities payload. When
// Chambers is empty a fresh unknown timeline of live+blank chambers is used.
type ChamberProbabilitiesRequest struct {
	Live     int            `json:"live" validate:"gte=0"`
	Blank    int            `json:"blank" validate:"gte=0"`
	Chambers []ChamberInput `json:"chambers" validate:"contiguous,dive"`
}

type ChamberProbabilitiesResponse struct {
	Chambers []domain.Chamber `json:"chambers"`
	Odds     brain.Odds       `json:"odds"`
}

// RecommendMoveRequest is the RpcRecommendMove payload. Players may include
// the user and eliminated players; they are filtered server-side.
type RecommendMoveRequest struct {
	Live    int           `json:"live" validate:"gte=0"`
	Blank   int           `json:"blank" validate:"gte=0"`
	Players []PlayerInput `json:"players" validate:"dive"`
}

type RecommendMoveResponse struct {
	bot.Recommendation
	Odds brain.Odds `json:"odds"`
}

// ActionInput is one controller action inside RpcSessionApply.
type ActionInput struct {
	Type     string            `json:"type" validate:"required,oneof=set_count spend start_round end_round reset mark clear_marks add_player remove_player update_player"`
	Kind     domain.ShellKind  `json:"kind,omitempty" validate:"omitempty,oneof=live blank"`
	Count    *int              `json:"count,omitempty" validate:"omitempty,gte=0"`
	Position int               `json:"position,omitempty"`
	State    domain.ShellState `json:"state,omitempty" validate:"omitempty,oneof=unknown known-live known-blank"`
	PlayerID int               `json:"player_id,omitempty"`
	Update   *app.PlayerUpdate `json:"update,omitempty"`
}

// SessionApplyRequest is the RpcSessionApply payload. A missing session starts
// from the configured defaults.
type SessionApplyRequest struct {
	Session *app.Session  `json:"session"`
	Actions []ActionInput `json:"actions" validate:"max=64,dive"`
}

type SessionApplyResponse struct {
	Session  *app.Session `json:"session"`
	Events   []app.Event  `json:"events"`
	Analysis app.Analysis `json:"analysis"`
}

func chambersFromInput(in []ChamberInput) []domain.Chamber {
	out := make([]domain.Chamber, 0, len(in))
	for _, c := range in {
		out = append(out, domain.Chamber{Position: c.Position, State: c.State})
	}
	return out
}

func playersFromInput(in []PlayerInput) []domain.Player {
	out := make([]domain.Player, 0, len(in))
	for _, p := range in {
		out = append(out, domain.Player{
			ID:     p.ID,
			Name:   p.Name,
			HP:     p.HP,
			MaxHP:  p.MaxHP,
			Skill:  p.Skill,
			IsUser: p.IsUser,
		})
	}
	return out
}
