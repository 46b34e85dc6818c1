package nakama

import (
	"fmt"
	"reflect"

	"buckshot/internal/app"
	"buckshot/internal/config"
	"buckshot/internal/domain"

	"github.com/go-playground/validator/v10"
)

// payloadValidate checks decoded RPC payloads. Initialized in init() with the
// custom rules below.
var payloadValidate *validator.Validate

func init() {
	payloadValidate = validator.New(validator.WithRequiredStructEnabled())

	// contiguous: chamber positions must run 1..N in order.
	if err := payloadValidate.RegisterValidation("contiguous", validateContiguous); err != nil {
		panic(fmt.Sprintf("register contiguous validator: %v", err))
	}
}

func validateContiguous(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Slice {
		return false
	}
	for i := 0; i < field.Len(); i++ {
		pos := field.Index(i).FieldByName("Position")
		if !pos.IsValid() || pos.Int() != int64(i+1) {
			return false
		}
	}
	return true
}

// checkCounts rejects shell counts beyond the table limits.
func checkCounts(live, blank int, limits config.Limits) error {
	if live > limits.MaxShellsPerKind || blank > limits.MaxShellsPerKind {
		return fmt.Errorf("at most %d shells of each kind", limits.MaxShellsPerKind)
	}
	return nil
}

// checkSession validates a client-held snapshot before actions run against it.
func checkSession(s *app.Session, limits config.Limits) error {
	if s.LiveShells < 0 || s.BlankShells < 0 {
		return fmt.Errorf("shell counts must not be negative")
	}
	if err := checkCounts(s.LiveShells, s.BlankShells, limits); err != nil {
		return err
	}
	for i, c := range s.Chambers {
		if c.Position != i+1 {
			return fmt.Errorf("chamber %d has position %d", i+1, c.Position)
		}
		if !c.State.Valid() {
			return fmt.Errorf("chamber %d has invalid state %q", c.Position, c.State)
		}
	}
	if len(s.Players) > limits.MaxPlayers {
		return fmt.Errorf("at most %d players", limits.MaxPlayers)
	}
	return checkPlayers(s.Players, limits)
}

// checkPlayers requires unique ids, at most one user seat and hp within 0..MaxHP.
func checkPlayers(players []domain.Player, limits config.Limits) error {
	seen := make(map[int]bool, len(players))
	users := 0
	for _, p := range players {
		if seen[p.ID] {
			return fmt.Errorf("duplicate player id %d", p.ID)
		}
		seen[p.ID] = true
		if p.IsUser {
			users++
		}
		if p.MaxHP < 1 {
			return fmt.Errorf("player %d: max_hp must be at least 1", p.ID)
		}
		if p.HP < 0 || p.HP > p.MaxHP {
			return fmt.Errorf("player %d: hp %d outside 0..%d", p.ID, p.HP, p.MaxHP)
		}
		if p.Skill < 0 || p.Skill > limits.MaxSkill {
			return fmt.Errorf("player %d: skill %d outside 0..%d", p.ID, p.Skill, limits.MaxSkill)
		}
	}
	if users > 1 {
		return fmt.Errorf("at most one user seat, got %d", users)
	}
	return nil
}

// sessionFromRequest returns the snapshot to operate on, a fresh default
// session when the client sent none.
func sessionFromRequest(svc *app.Service, s *app.Session) *app.Session {
	if s == nil {
		return svc.NewSession()
	}
	return s
}
