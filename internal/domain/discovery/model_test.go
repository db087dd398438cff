package discovery

import (
	"testing"
	"time"
)

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestHolding_StatusAt(t *testing.T) {
	t.Parallel()

	debut := date("2025-01-15")
	activated := date("2025-08-01")

	tests := []struct {
		name    string
		holding Holding
		now     time.Time
		want    Status
	}{
		{
			name:    "no debut date holds rights",
			holding: Holding{},
			now:     date("2025-06-01"),
			want:    StatusRightsHeld,
		},
		{
			name:    "debut set within window starts clock",
			holding: Holding{DebutDate: &debut},
			now:     date("2025-06-01"),
			want:    StatusClockStarted,
		},
		{
			name:    "past calendar deadline expires",
			holding: Holding{DebutDate: &debut},
			now:     date("2026-02-01"),
			want:    StatusExpired,
		},
		{
			name:    "deadline day itself is still live",
			holding: Holding{DebutDate: &debut},
			now:     date("2026-01-15"),
			want:    StatusClockStarted,
		},
		{
			name:    "activation is terminal regardless of dates",
			holding: Holding{DebutDate: &debut, ActivatedAt: &activated},
			now:     date("2027-01-01"),
			want:    StatusActivated,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.holding.StatusAt(tc.now); got != tc.want {
				t.Fatalf("unexpected status: got=%s want=%s", got, tc.want)
			}
		})
	}
}

func TestHolding_Deadline(t *testing.T) {
	t.Parallel()

	debut := date("2025-01-31")
	deadline, ok := Holding{DebutDate: &debut}.Deadline()
	if !ok {
		t.Fatalf("expected deadline for set debut date")
	}
	// AddDate normalizes Jan 31 + 12 months to Jan 31 next year.
	if got := deadline.Format("2006-01-02"); got != "2026-01-31" {
		t.Fatalf("unexpected deadline: got=%s want=2026-01-31", got)
	}

	if _, ok := (Holding{}).Deadline(); ok {
		t.Fatalf("expected no deadline without debut date")
	}
}

func TestHolding_MonthsLeftAt(t *testing.T) {
	t.Parallel()

	debut := date("2025-01-15")
	holding := Holding{DebutDate: &debut}

	// 2025-12-20 to the 2026-01-15 deadline is 26 days, which rounds
	// up to one month under the 30.44-day approximation.
	if got := holding.MonthsLeftAt(date("2025-12-20")); got != 1 {
		t.Fatalf("unexpected months left: got=%d want=1", got)
	}
	if got := holding.MonthsLeftAt(date("2025-02-01")); got != 12 {
		t.Fatalf("unexpected months left: got=%d want=12", got)
	}
	if got := holding.MonthsLeftAt(date("2026-03-01")); got != 0 {
		t.Fatalf("expired holding must report zero months, got=%d", got)
	}
	if got := (Holding{}).MonthsLeftAt(date("2025-02-01")); got != 0 {
		t.Fatalf("holding without debut must report zero months, got=%d", got)
	}
}
