package bot

import (
	"fmt"
	"strings"

	"buckshot/internal/bot/brain"
	"buckshot/internal/domain"
)

// Recommend picks the next move from the remaining shell counts and the
// opponents still in play. Callers pass only living opponents (see
// domain.LivingOpponents).
func Recommend(live, blank int, opponents []domain.Player) Recommendation {
	if live+blank == 0 {
		return Recommendation{Action: ActionReload, Description: "RELOAD REQUIRED"}
	}

	// A blank on yourself keeps the turn, so it wins whenever blanks are likelier.
	odds := brain.CalculateOdds(live, blank)
	if odds.Blank > odds.Live {
		return Recommendation{Action: ActionShootSelf, Description: "SHOOT SELF (RISK FREE TURN)"}
	}

	if len(opponents) == 0 {
		return Recommendation{Action: ActionWinner, Description: "ALL OPPONENTS ELIMINATED"}
	}

	target := pickTarget(opponents)
	return Recommendation{
		Action:         ActionShootOpponent,
		TargetPlayerID: target.ID,
		Targeted:       true,
		Description:    "SHOOT " + targetName(target),
	}
}

// pickTarget prefers the biggest threat, then the one closest to elimination.
// Earlier opponents win exact ties.
func pickTarget(opponents []domain.Player) domain.Player {
	best := opponents[0]
	for _, current := range opponents[1:] {
		if current.Skill > best.Skill || (current.Skill == best.Skill && current.HP < best.HP) {
			best = current
		}
	}
	return best
}

func targetName(p domain.Player) string {
	if p.Name == "" {
		return fmt.Sprintf("OPPONENT %d", p.ID)
	}
	return strings.ToUpper(p.Name)
}
