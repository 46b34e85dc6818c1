package bot

// Action is the move suggested to the user.
type Action string

const (
	ActionShootSelf     Action = "SHOOT_SELF"
	ActionShootOpponent Action = "SHOOT_OPPONENT"
	ActionReload        Action = "RELOAD"
	ActionWinner        Action = "WINNER"
)

// Recommendation represents the decision made by the advisor.
type Recommendation struct {
	Action Action `json:"action"`
	// TargetPlayerID is only meaningful when Targeted is set.
	TargetPlayerID int    `json:"target_player_id,omitempty"`
	Targeted       bool   `json:"targeted"`
	Description    string `json:"description"`
}
