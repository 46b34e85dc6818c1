package domain

// placeholderProbability is shown for fresh chambers until the first computation.
const placeholderProbability = 50

// NewChambers produces n unknown chambers numbered 1..n.
func NewChambers(n int) []Chamber {
	if n <= 0 {
		return nil
	}
	chambers := make([]Chamber, n)
	for i := range chambers {
		chambers[i] = Chamber{
			Position:    i + 1,
			State:       ShellUnknown,
			Probability: placeholderProbability,
		}
	}
	return chambers
}

// SpendFront removes the first k chambers and renumbers the rest from 1.
// The input slice is left untouched.
func SpendFront(chambers []Chamber, k int) []Chamber {
	if k <= 0 {
		return append([]Chamber(nil), chambers...)
	}
	if k >= len(chambers) {
		return nil
	}
	out := make([]Chamber, 0, len(chambers)-k)
	for _, c := range chambers[k:] {
		c.Position -= k
		out = append(out, c)
	}
	return out
}

// AppendUnknown adds n unknown chambers after the last position.
func AppendUnknown(chambers []Chamber, n int) []Chamber {
	out := append([]Chamber(nil), chambers...)
	next := 1
	for _, c := range chambers {
		if c.Position >= next {
			next = c.Position + 1
		}
	}
	for i := 0; i < n; i++ {
		out = append(out, Chamber{
			Position:    next + i,
			State:       ShellUnknown,
			Probability: placeholderProbability,
		})
	}
	return out
}

// CountKnown returns how many chambers are revealed live and blank.
func CountKnown(chambers []Chamber) (live, blank int) {
	for _, c := range chambers {
		switch c.State {
		case ShellKnownLive:
			live++
		case ShellKnownBlank:
			blank++
		}
	}
	return live, blank
}

// FindChamber returns the index of the chamber at position, or -1.
func FindChamber(chambers []Chamber, position int) int {
	for i, c := range chambers {
		if c.Position == position {
			return i
		}
	}
	return -1
}

// LivingOpponents filters out the user and anyone already eliminated, keeping order.
func LivingOpponents(players []Player) []Player {
	var out []Player
	for _, p := range players {
		if !p.IsUser && p.Alive() {
			out = append(out, p)
		}
	}
	return out
}

// Tendency describes which way a chamber leans.
type Tendency string

const (
	TendencyCertainLive  Tendency = "certain-live"
	TendencyCertainBlank Tendency = "certain-blank"
	TendencySplit        Tendency = "split"
	TendencyLeansLive    Tendency = "leans-live"
	TendencyLeansBlank   Tendency = "leans-blank"
)

// Classify reports the tendency of an already computed chamber.
func Classify(c Chamber) Tendency {
	switch {
	case c.State == ShellKnownLive || (c.State == ShellUnknown && c.Probability >= 100):
		return TendencyCertainLive
	case c.State == ShellKnownBlank || c.Probability <= 0:
		return TendencyCertainBlank
	case c.Probability == 50:
		return TendencySplit
	case c.Probability > 50:
		return TendencyLeansLive
	default:
		return TendencyLeansBlank
	}
}

// Unsafe is true when the outcome is neither settled nor an even split.
func (t Tendency) Unsafe() bool {
	return t == TendencyLeansLive || t == TendencyLeansBlank
}
