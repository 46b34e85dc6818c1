package domain

// ShellState is what is known about the shell sitting in a chamber.
type ShellState string

const (
	// ShellUnknown is a chamber whose shell has not been revealed.
	ShellUnknown ShellState = "unknown"
	// ShellKnownLive is a chamber revealed to hold a live shell.
	ShellKnownLive ShellState = "known-live"
	// ShellKnownBlank is a chamber revealed to hold a blank.
	ShellKnownBlank ShellState = "known-blank"
)

// Valid reports whether s is one of the defined shell states.
func (s ShellState) Valid() bool {
	switch s {
	case ShellUnknown, ShellKnownLive, ShellKnownBlank:
		return true
	}
	return false
}

// Known reports whether the chamber's contents have been revealed.
func (s ShellState) Known() bool {
	return s == ShellKnownLive || s == ShellKnownBlank
}

// ShellKind is one of the two kinds of shell loaded into the magazine.
type ShellKind string

const (
	KindLive  ShellKind = "live"
	KindBlank ShellKind = "blank"
)

// Valid reports whether k names a shell kind.
func (k ShellKind) Valid() bool {
	return k == KindLive || k == KindBlank
}

// ConditionalOdds is a chamber's live percentage recomputed under each outcome
// of the immediately preceding unknown chamber.
type ConditionalOdds struct {
	IfPrevLive  float64 `json:"if_prev_live"`
	IfPrevBlank float64 `json:"if_prev_blank"`
}

// Chamber is one slot in the draw order. Position 1 is fired next.
type Chamber struct {
	Position int        `json:"position"`
	State    ShellState `json:"state"`
	// Probability is the estimated percent chance (0..100) that the chamber is live.
	Probability float64          `json:"probability"`
	Conditional *ConditionalOdds `json:"conditional,omitempty"`
}

// Player is a participant at the table.
type Player struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	HP     int    `json:"hp"`
	MaxHP  int    `json:"max_hp"`
	Skill  int    `json:"skill"` // threat level, 0..5
	IsUser bool   `json:"is_user"`
}

// Alive reports whether the player still has hit points.
func (p Player) Alive() bool {
	return p.HP > 0
}
