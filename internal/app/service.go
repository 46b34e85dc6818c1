package app

import (
	"errors"
	"slices"
	"strconv"

	"buckshot/internal/bot"
	"buckshot/internal/bot/brain"
	"buckshot/internal/config"
	"buckshot/internal/domain"
)

// Session is the caller-owned state of one table: magazine counts, the
// chamber timeline and the players.
type Session struct {
	LiveShells  int              `json:"live_shells"`
	BlankShells int              `json:"blank_shells"`
	Chambers    []domain.Chamber `json:"chambers"`
	Players     []domain.Player  `json:"players"`
	RoundActive bool             `json:"round_active"`
}

func (s *Session) count(kind domain.ShellKind) int {
	if kind == domain.KindLive {
		return s.LiveShells
	}
	return s.BlankShells
}

func (s *Session) setCount(kind domain.ShellKind, n int) {
	if kind == domain.KindLive {
		s.LiveShells = n
		return
	}
	s.BlankShells = n
}

func (s *Session) findPlayer(id int) int {
	for i, p := range s.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Analysis is everything the front end renders after a change.
type Analysis struct {
	Odds           brain.Odds         `json:"odds"`
	Recommendation bot.Recommendation `json:"recommendation"`
	Chambers       []domain.Chamber   `json:"chambers"`
}

// PlayerUpdate carries the fields to change on a player; nil fields are kept.
type PlayerUpdate struct {
	Name  *string `json:"name,omitempty"`
	HP    *int    `json:"hp,omitempty"`
	MaxHP *int    `json:"max_hp,omitempty"`
	Skill *int    `json:"skill,omitempty"`
}

// Service contains solver use-cases operating on a Session. It holds no
// session state itself and is safe for concurrent use on distinct sessions.
type Service struct {
	limits config.Limits
}

// NewService constructs a Service bound to the given table limits.
func NewService(limits config.Limits) *Service {
	return &Service{limits: limits}
}

var (
	ErrInvalidShellKind     = errors.New("invalid shell kind")
	ErrInvalidShellState    = errors.New("invalid shell state")
	ErrShellCountOutOfRange = errors.New("shell count out of range")
	ErrRoundActive          = errors.New("round already active")
	ErrRoundNotActive       = errors.New("round not active")
	ErrEmptyMagazine        = errors.New("no shells loaded")
	ErrNoShellsOfKind       = errors.New("no shells of that kind left")
	ErrUnknownChamber       = errors.New("chamber not found")
	ErrTooManyPlayers       = errors.New("table is full")
	ErrUnknownPlayer        = errors.New("player not found")
	ErrCannotRemoveUser     = errors.New("user cannot be removed")
)

// NewSession creates an empty magazine with the configured default players.
func (s *Service) NewSession() *Session {
	sess := &Session{}
	for i, preset := range s.limits.DefaultPlayers {
		sess.Players = append(sess.Players, domain.Player{
			ID:     i + 1,
			Name:   preset.Name,
			HP:     preset.HP,
			MaxHP:  preset.MaxHP,
			Skill:  preset.Skill,
			IsUser: preset.IsUser,
		})
	}
	return sess
}

// SetShellCount sets the remaining count of one shell kind.
//
// Outside a round the timeline is rebuilt whenever the total changes. During a
// round a decrease means shells were fired: that many chambers leave the front.
// An increase appends unknown chambers at the back.
func (s *Service) SetShellCount(sess *Session, kind domain.ShellKind, n int) ([]Event, error) {
	if !kind.Valid() {
		return nil, ErrInvalidShellKind
	}
	if n < 0 || n > s.limits.MaxShellsPerKind {
		return nil, ErrShellCountOutOfRange
	}

	var events []Event
	current := sess.count(kind)
	if sess.RoundActive {
		switch {
		case n < current:
			k := min(current-n, len(sess.Chambers))
			spent := append([]domain.Chamber(nil), sess.Chambers[:k]...)
			sess.Chambers = domain.SpendFront(sess.Chambers, k)
			events = append(events, Event{
				Kind:    EventShellsSpent,
				Payload: ShellsSpentPayload{Kind: kind, Count: current - n, Spent: spent},
			})
		case n > current:
			sess.Chambers = domain.AppendUnknown(sess.Chambers, n-current)
			events = append(events, Event{
				Kind:    EventShellsAdded,
				Payload: ShellsAddedPayload{Kind: kind, Count: n - current},
			})
		}
	}

	sess.setCount(kind, n)
	if !sess.RoundActive {
		resync(sess)
	}
	return append(events, recompute(sess)), nil
}

// SpendShell records one fired shell of the given kind: the count drops by one
// and the front chamber is removed, with the rest renumbered from 1.
func (s *Service) SpendShell(sess *Session, kind domain.ShellKind) ([]Event, error) {
	if !kind.Valid() {
		return nil, ErrInvalidShellKind
	}
	if !sess.RoundActive {
		return nil, ErrRoundNotActive
	}
	if sess.count(kind) == 0 {
		return nil, ErrNoShellsOfKind
	}
	return s.SetShellCount(sess, kind, sess.count(kind)-1)
}

// StartRound locks the timeline length so counts track fired shells.
func (s *Service) StartRound(sess *Session) ([]Event, error) {
	if sess.RoundActive {
		return nil, ErrRoundActive
	}
	if sess.LiveShells+sess.BlankShells < MinShellsToStartRound {
		return nil, ErrEmptyMagazine
	}

	resync(sess)
	sess.RoundActive = true
	return []Event{
		{
			Kind:    EventRoundStarted,
			Payload: RoundStartedPayload{LiveShells: sess.LiveShells, BlankShells: sess.BlankShells},
		},
		recompute(sess),
	}, nil
}

// EndRound returns the session to setup mode. Counts are kept; marks survive
// only while the timeline length still matches live+blank, otherwise the
// timeline is rebuilt unknown.
func (s *Service) EndRound(sess *Session) ([]Event, error) {
	if !sess.RoundActive {
		return nil, ErrRoundNotActive
	}
	sess.RoundActive = false
	resync(sess)
	return []Event{{Kind: EventRoundEnded}, recompute(sess)}, nil
}

// Reset empties the magazine and ends any round. Players are kept.
func (s *Service) Reset(sess *Session) []Event {
	sess.LiveShells = 0
	sess.BlankShells = 0
	sess.Chambers = nil
	sess.RoundActive = false
	return []Event{{Kind: EventSessionReset}, recompute(sess)}
}

// MarkChamber records what is known about the chamber at position.
func (s *Service) MarkChamber(sess *Session, position int, state domain.ShellState) ([]Event, error) {
	if !state.Valid() {
		return nil, ErrInvalidShellState
	}
	idx := domain.FindChamber(sess.Chambers, position)
	if idx < 0 {
		return nil, ErrUnknownChamber
	}
	sess.Chambers[idx].State = state
	return []Event{recompute(sess)}, nil
}

// ClearMarks forgets every revealed chamber.
func (s *Service) ClearMarks(sess *Session) []Event {
	for i := range sess.Chambers {
		sess.Chambers[i].State = domain.ShellUnknown
	}
	return []Event{recompute(sess)}
}

// AddPlayer seats a new opponent with the configured starting stats.
func (s *Service) AddPlayer(sess *Session) (domain.Player, []Event, error) {
	if len(sess.Players) >= s.limits.MaxPlayers {
		return domain.Player{}, nil, ErrTooManyPlayers
	}

	id := 1
	for _, p := range sess.Players {
		if p.ID >= id {
			id = p.ID + 1
		}
	}
	preset := s.limits.NewOpponent
	player := domain.Player{
		ID:    id,
		Name:  opponentName(id),
		HP:    preset.HP,
		MaxHP: preset.MaxHP,
		Skill: preset.Skill,
	}
	sess.Players = append(sess.Players, player)
	return player, []Event{{Kind: EventPlayerAdded, Payload: PlayerPayload{Player: player}}}, nil
}

// RemovePlayer takes an opponent off the table.
func (s *Service) RemovePlayer(sess *Session, id int) ([]Event, error) {
	idx := sess.findPlayer(id)
	if idx < 0 {
		return nil, ErrUnknownPlayer
	}
	if sess.Players[idx].IsUser {
		return nil, ErrCannotRemoveUser
	}
	sess.Players = slices.Delete(sess.Players, idx, idx+1)
	return []Event{{Kind: EventPlayerRemoved, Payload: PlayerRemovedPayload{PlayerID: id}}}, nil
}

// UpdatePlayer applies u to the player, clamping hp to 0..MaxHP and skill to
// 0..MaxSkill.
func (s *Service) UpdatePlayer(sess *Session, id int, u PlayerUpdate) ([]Event, error) {
	idx := sess.findPlayer(id)
	if idx < 0 {
		return nil, ErrUnknownPlayer
	}

	p := sess.Players[idx]
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.MaxHP != nil {
		p.MaxHP = max(1, *u.MaxHP)
	}
	if u.HP != nil {
		p.HP = *u.HP
	}
	if u.Skill != nil {
		p.Skill = *u.Skill
	}
	p.HP = min(max(0, p.HP), p.MaxHP)
	p.Skill = min(max(0, p.Skill), s.limits.MaxSkill)

	sess.Players[idx] = p
	return []Event{{Kind: EventPlayerUpdated, Payload: PlayerPayload{Player: p}}}, nil
}

// Analyze computes the aggregate odds, the recommended move and the chamber
// timeline for the current session.
func (s *Service) Analyze(sess *Session) Analysis {
	return Analysis{
		Odds:           brain.CalculateOdds(sess.LiveShells, sess.BlankShells),
		Recommendation: bot.Recommend(sess.LiveShells, sess.BlankShells, domain.LivingOpponents(sess.Players)),
		Chambers:       brain.CalculateChamberProbabilities(sess.LiveShells, sess.BlankShells, sess.Chambers),
	}
}

// resync rebuilds the timeline when its length no longer matches the counts.
func resync(sess *Session) {
	total := sess.LiveShells + sess.BlankShells
	if len(sess.Chambers) != total {
		sess.Chambers = domain.NewChambers(total)
	}
}

func recompute(sess *Session) Event {
	sess.Chambers = brain.CalculateChamberProbabilities(sess.LiveShells, sess.BlankShells, sess.Chambers)
	return Event{
		Kind:    EventChambersUpdated,
		Payload: ChambersUpdatedPayload{Chambers: append([]domain.Chamber(nil), sess.Chambers...)},
	}
}

func opponentName(id int) string {
	return "OPPONENT " + strconv.Itoa(id)
}
