package brain

import (
	"buckshot/internal/domain"
)

// pool is the count of each shell kind still unaccounted for. Values are
// fractional because an even split consumes half of each.
type pool struct {
	live  float64
	blank float64
}

// CalculateChamberProbabilities estimates, for every chamber, the percent
// chance it holds a live shell.
//
// Rather than averaging over every ordering of the hidden shells, it follows a
// single "most likely" trajectory: each unknown chamber is assumed to hold
// whichever kind is more likely at that point, and an exact 50/50 consumes half
// a shell of each. The result is deterministic and the input is not modified.
func CalculateChamberProbabilities(live, blank int, chambers []domain.Chamber) []domain.Chamber {
	// 1. Oracle filter: revealed shells are fixed points and leave the pool first.
	knownLive, knownBlank := domain.CountKnown(chambers)
	current := pool{
		live:  float64(max(0, live-knownLive)),
		blank: float64(max(0, blank-knownBlank)),
	}

	// 2. Greedy walk, recording the pool entering each chamber.
	entering := make([]pool, len(chambers))
	for i, c := range chambers {
		entering[i] = current
		if c.State.Known() {
			// Already removed in step 1; the timeline advances without consuming.
			continue
		}

		p := ratio(current.live, current.live+current.blank)
		switch {
		case p > 0.5:
			current.live = max(0, current.live-1)
		case p < 0.5:
			current.blank = max(0, current.blank-1)
		default:
			current.live = max(0, current.live-0.5)
			current.blank = max(0, current.blank-0.5)
		}
	}

	// 3. Assign probabilities and conditionals.
	out := make([]domain.Chamber, len(chambers))
	for i, c := range chambers {
		out[i] = domain.Chamber{Position: c.Position, State: c.State}

		switch c.State {
		case domain.ShellKnownLive:
			out[i].Probability = 100
			continue
		case domain.ShellKnownBlank:
			out[i].Probability = 0
			continue
		}

		state := entering[i]
		out[i].Probability = percent(state.live, state.live+state.blank)

		if i > 0 && !chambers[i-1].State.Known() {
			out[i].Conditional = conditionalOdds(entering[i-1])
		}
	}
	return out
}

// conditionalOdds recomputes the odds under each outcome of the previous
// chamber, starting from the pool that entered that previous chamber.
func conditionalOdds(prev pool) *domain.ConditionalOdds {
	liveAfterLive := max(0, prev.live-1)
	blankAfterBlank := max(0, prev.blank-1)
	return &domain.ConditionalOdds{
		IfPrevLive:  percent(liveAfterLive, liveAfterLive+prev.blank),
		IfPrevBlank: percent(prev.live, prev.live+blankAfterBlank),
	}
}
