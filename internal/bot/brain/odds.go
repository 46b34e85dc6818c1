package brain

// Odds is the aggregate chance, in percent, that the next shell is of each kind.
type Odds struct {
	Live  float64 `json:"live"`
	Blank float64 `json:"blank"`
}

// CalculateOdds derives aggregate odds from the remaining shell counts.
// An empty magazine yields zero for both kinds.
func CalculateOdds(live, blank int) Odds {
	total := float64(live + blank)
	return Odds{
		Live:  percent(float64(live), total),
		Blank: percent(float64(blank), total),
	}
}

// ratio divides n by d, returning 0 for a non-positive denominator.
func ratio(n, d float64) float64 {
	if d <= 0 {
		return 0
	}
	return n / d
}

func percent(n, d float64) float64 {
	return ratio(n, d) * 100
}
