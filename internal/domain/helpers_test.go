package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewChambers(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []Chamber
	}{
		{name: "zero", n: 0, want: nil},
		{name: "negative", n: -2, want: nil},
		{
			name: "three unknown",
			n:    3,
			want: []Chamber{
				{Position: 1, State: ShellUnknown, Probability: 50},
				{Position: 2, State: ShellUnknown, Probability: 50},
				{Position: 3, State: ShellUnknown, Probability: 50},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, NewChambers(tt.n)); diff != "" {
				t.Fatalf("NewChambers(%d) mismatch (-want +got):\n%s", tt.n, diff)
			}
		})
	}
}

func TestSpendFront(t *testing.T) {
	chambers := []Chamber{
		{Position: 1, State: ShellKnownBlank},
		{Position: 2, State: ShellUnknown},
		{Position: 3, State: ShellKnownLive},
	}

	got := SpendFront(chambers, 1)
	want := []Chamber{
		{Position: 1, State: ShellUnknown},
		{Position: 2, State: ShellKnownLive},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("SpendFront mismatch (-want +got):\n%s", diff)
	}
	if chambers[0].Position != 1 || chambers[1].Position != 2 {
		t.Errorf("SpendFront mutated its input: %+v", chambers)
	}

	if got := SpendFront(chambers, 5); got != nil {
		t.Errorf("spending past the end should empty the sequence, got %+v", got)
	}
	if got := SpendFront(chambers, 0); len(got) != 3 {
		t.Errorf("spending zero should keep all chambers, got %d", len(got))
	}
}

func TestAppendUnknown(t *testing.T) {
	got := AppendUnknown([]Chamber{{Position: 1, State: ShellKnownLive}}, 2)
	want := []Chamber{
		{Position: 1, State: ShellKnownLive},
		{Position: 2, State: ShellUnknown, Probability: 50},
		{Position: 3, State: ShellUnknown, Probability: 50},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("AppendUnknown mismatch (-want +got):\n%s", diff)
	}

	if got := AppendUnknown(nil, 1); len(got) != 1 || got[0].Position != 1 {
		t.Errorf("appending to an empty sequence should start at 1, got %+v", got)
	}
}

func TestCountKnown(t *testing.T) {
	live, blank := CountKnown([]Chamber{
		{State: ShellKnownLive},
		{State: ShellUnknown},
		{State: ShellKnownBlank},
		{State: ShellKnownLive},
	})
	if live != 2 || blank != 1 {
		t.Fatalf("CountKnown() = (%d, %d), want (2, 1)", live, blank)
	}
}

func TestLivingOpponents(t *testing.T) {
	players := []Player{
		{ID: 1, HP: 4, IsUser: true},
		{ID: 2, HP: 0},
		{ID: 3, HP: 1},
		{ID: 4, HP: 3},
	}
	got := LivingOpponents(players)
	if len(got) != 2 || got[0].ID != 3 || got[1].ID != 4 {
		t.Fatalf("LivingOpponents() = %+v, want ids [3 4]", got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		chamber Chamber
		want    Tendency
		unsafe  bool
	}{
		{Chamber{State: ShellKnownLive, Probability: 100}, TendencyCertainLive, false},
		{Chamber{State: ShellKnownBlank}, TendencyCertainBlank, false},
		{Chamber{State: ShellUnknown, Probability: 100}, TendencyCertainLive, false},
		{Chamber{State: ShellUnknown, Probability: 0}, TendencyCertainBlank, false},
		{Chamber{State: ShellUnknown, Probability: 50}, TendencySplit, false},
		{Chamber{State: ShellUnknown, Probability: 66.7}, TendencyLeansLive, true},
		{Chamber{State: ShellUnknown, Probability: 33.3}, TendencyLeansBlank, true},
	}
	for _, tt := range tests {
		got := Classify(tt.chamber)
		if got != tt.want {
			t.Errorf("Classify(%+v) = %s, want %s", tt.chamber, got, tt.want)
		}
		if got.Unsafe() != tt.unsafe {
			t.Errorf("%s.Unsafe() = %v, want %v", got, got.Unsafe(), tt.unsafe)
		}
	}
}

func TestShellStateValid(t *testing.T) {
	for _, s := range []ShellState{ShellUnknown, ShellKnownLive, ShellKnownBlank} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if ShellState("live").Valid() {
		t.Error(`"live" is a shell kind, not a state`)
	}
	if !KindBlank.Valid() || ShellKind("slug").Valid() {
		t.Error("ShellKind.Valid misreports")
	}
}
