package brain

import (
	"testing"

	"buckshot/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/sync/errgroup"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func unknowns(n int) []domain.Chamber {
	return domain.NewChambers(n)
}

func TestCalculateChamberProbabilities_EvenSplitPropagates(t *testing.T) {
	// 2 live, 2 blank, nothing revealed: every entering pool is an exact split,
	// so each chamber reads 50 and the pool shrinks by half a shell of each kind.
	got := CalculateChamberProbabilities(2, 2, unknowns(4))

	want := []domain.Chamber{
		{Position: 1, State: domain.ShellUnknown, Probability: 50},
		{Position: 2, State: domain.ShellUnknown, Probability: 50,
			Conditional: &domain.ConditionalOdds{IfPrevLive: 100.0 / 3, IfPrevBlank: 200.0 / 3}},
		{Position: 3, State: domain.ShellUnknown, Probability: 50,
			Conditional: &domain.ConditionalOdds{IfPrevLive: 25, IfPrevBlank: 75}},
		{Position: 4, State: domain.ShellUnknown, Probability: 50,
			Conditional: &domain.ConditionalOdds{IfPrevLive: 0, IfPrevBlank: 100}},
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("probabilities mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculateChamberProbabilities_SingleLive(t *testing.T) {
	got := CalculateChamberProbabilities(1, 0, unknowns(1))
	if len(got) != 1 {
		t.Fatalf("expected 1 chamber, got %d", len(got))
	}
	if got[0].Probability != 100 {
		t.Errorf("expected 100, got %f", got[0].Probability)
	}
	if got[0].Conditional != nil {
		t.Errorf("single chamber must not carry a conditional, got %+v", got[0].Conditional)
	}
}

func TestCalculateChamberProbabilities_OracleReduction(t *testing.T) {
	chambers := []domain.Chamber{
		{Position: 1, State: domain.ShellKnownLive},
		{Position: 2, State: domain.ShellUnknown},
	}
	got := CalculateChamberProbabilities(2, 1, chambers)

	if got[0].Probability != 100 || got[0].Conditional != nil {
		t.Errorf("known live chamber should be 100 with no conditional, got %+v", got[0])
	}
	if got[1].Probability != 50 {
		t.Errorf("expected 50 after removing the revealed live, got %f", got[1].Probability)
	}
	if got[1].Conditional != nil {
		t.Errorf("predecessor is revealed, expected no conditional, got %+v", got[1].Conditional)
	}
}

func TestCalculateChamberProbabilities_GreedyLeansConsume(t *testing.T) {
	// 3 live 1 blank: first chamber leans live, so the walk assumes a live was
	// fired and the second chamber enters with (2, 1).
	got := CalculateChamberProbabilities(3, 1, unknowns(3))

	want := []float64{75, 100.0 * 2 / 3, 50}
	for i, w := range want {
		if !cmp.Equal(w, got[i].Probability, approx) {
			t.Errorf("chamber %d: want %f, got %f", i+1, w, got[i].Probability)
		}
	}

	// Conditionals for chamber 2 come from the pool entering chamber 1, (3, 1).
	c := got[1].Conditional
	if c == nil {
		t.Fatal("chamber 2 should have a conditional")
	}
	if !cmp.Equal(100.0*2/3, c.IfPrevLive, approx) || c.IfPrevBlank != 100 {
		t.Errorf("unexpected conditional %+v", c)
	}
}

func TestCalculateChamberProbabilities_BlankLeaning(t *testing.T) {
	got := CalculateChamberProbabilities(1, 3, unknowns(2))
	if got[0].Probability != 25 {
		t.Errorf("chamber 1: want 25, got %f", got[0].Probability)
	}
	// Blank assumed consumed: (1, 2) enters chamber 2.
	if !cmp.Equal(100.0/3, got[1].Probability, approx) {
		t.Errorf("chamber 2: want 33.33, got %f", got[1].Probability)
	}
}

func TestCalculateChamberProbabilities_RevealedMiddleSkipsConditional(t *testing.T) {
	chambers := []domain.Chamber{
		{Position: 1, State: domain.ShellUnknown},
		{Position: 2, State: domain.ShellKnownBlank},
		{Position: 3, State: domain.ShellUnknown},
		{Position: 4, State: domain.ShellUnknown},
	}
	got := CalculateChamberProbabilities(2, 2, chambers)

	for i, c := range got {
		hasCond := c.Conditional != nil
		wantCond := i > 0 && chambers[i].State == domain.ShellUnknown && chambers[i-1].State == domain.ShellUnknown
		if hasCond != wantCond {
			t.Errorf("chamber %d: conditional present=%v, want %v", c.Position, hasCond, wantCond)
		}
	}
	if got[1].Probability != 0 {
		t.Errorf("known blank should read 0, got %f", got[1].Probability)
	}
	// Oracle pool (2, 1): chamber 1 leans live, the revealed blank does not
	// consume, so chamber 3 enters with (1, 1).
	if got[2].Probability != 50 {
		t.Errorf("chamber 3: want 50, got %f", got[2].Probability)
	}
}

func TestCalculateChamberProbabilities_AllRevealed(t *testing.T) {
	chambers := []domain.Chamber{
		{Position: 1, State: domain.ShellKnownLive},
		{Position: 2, State: domain.ShellKnownBlank},
	}
	got := CalculateChamberProbabilities(1, 1, chambers)
	if got[0].Probability != 100 || got[1].Probability != 0 {
		t.Fatalf("unexpected probabilities %+v", got)
	}
	for _, c := range got {
		if c.Conditional != nil {
			t.Errorf("chamber %d: revealed chambers never carry conditionals", c.Position)
		}
	}
}

func TestCalculateChamberProbabilities_DegenerateInputs(t *testing.T) {
	tests := []struct {
		name        string
		live, blank int
		chambers    []domain.Chamber
	}{
		{name: "empty pool", live: 0, blank: 0, chambers: unknowns(3)},
		{name: "more revealed than loaded", live: 0, blank: 0, chambers: []domain.Chamber{
			{Position: 1, State: domain.ShellKnownLive},
			{Position: 2, State: domain.ShellUnknown},
		}},
		{name: "no chambers", live: 2, blank: 2, chambers: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateChamberProbabilities(tt.live, tt.blank, tt.chambers)
			if len(got) != len(tt.chambers) {
				t.Fatalf("length changed: %d -> %d", len(tt.chambers), len(got))
			}
			for i, c := range got {
				if c.State == domain.ShellUnknown && c.Probability != 0 {
					t.Errorf("chamber %d: drained pool should read 0, got %f", i+1, c.Probability)
				}
				if c.Probability < 0 || c.Probability > 100 {
					t.Errorf("chamber %d: probability out of range: %f", i+1, c.Probability)
				}
			}
		})
	}
}

func TestCalculateChamberProbabilities_PureAndIdempotent(t *testing.T) {
	chambers := []domain.Chamber{
		{Position: 1, State: domain.ShellUnknown, Probability: 12},
		{Position: 2, State: domain.ShellKnownLive},
		{Position: 3, State: domain.ShellUnknown},
	}
	before := append([]domain.Chamber(nil), chambers...)

	first := CalculateChamberProbabilities(3, 2, chambers)
	second := CalculateChamberProbabilities(3, 2, chambers)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated calls differ:\n%s", diff)
	}
	if diff := cmp.Diff(before, chambers); diff != "" {
		t.Errorf("input was mutated:\n%s", diff)
	}
	for i := range first {
		if first[i].Position != chambers[i].Position || first[i].State != chambers[i].State {
			t.Errorf("chamber %d: position/state must be preserved", i+1)
		}
	}
}

func TestCalculateChamberProbabilities_Concurrent(t *testing.T) {
	want := CalculateChamberProbabilities(5, 3, unknowns(8))

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			got := CalculateChamberProbabilities(5, 3, unknowns(8))
			if !cmp.Equal(want, got) {
				t.Errorf("concurrent call diverged:\n%s", cmp.Diff(want, got))
			}
			return nil
		})
	}
	_ = g.Wait()
}

func TestCalculateOdds(t *testing.T) {
	tests := []struct {
		live, blank int
		want        Odds
	}{
		{0, 0, Odds{}},
		{1, 3, Odds{Live: 25, Blank: 75}},
		{2, 2, Odds{Live: 50, Blank: 50}},
		{4, 0, Odds{Live: 100, Blank: 0}},
	}
	for _, tt := range tests {
		if got := CalculateOdds(tt.live, tt.blank); got != tt.want {
			t.Errorf("CalculateOdds(%d, %d) = %+v, want %+v", tt.live, tt.blank, got, tt.want)
		}
	}
}
