package roster

import "testing"

func TestRulesForTeamCount_Range(t *testing.T) {
	t.Parallel()

	for teams := 3; teams <= 12; teams++ {
		rules, ok := RulesForTeamCount(teams)
		if !ok {
			t.Fatalf("expected rules for %d teams", teams)
		}
		if rules.RosterSize <= 0 {
			t.Fatalf("roster size must be positive for %d teams, got=%d", teams, rules.RosterSize)
		}
		if rules.MinFemale+rules.MinMale > rules.RosterSize {
			t.Fatalf("gender minimums exceed roster size for %d teams", teams)
		}
	}
}

func TestRulesForTeamCount_OutOfRange(t *testing.T) {
	t.Parallel()

	for _, teams := range []int{-1, 0, 1, 2, 13, 20} {
		if _, ok := RulesForTeamCount(teams); ok {
			t.Fatalf("expected no rules for %d teams", teams)
		}
	}
}
