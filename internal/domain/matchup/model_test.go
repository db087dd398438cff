package matchup

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

func TestMondayOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"2025-01-06", "2025-01-06"}, // Monday stays put
		{"2025-01-08", "2025-01-06"}, // Wednesday
		{"2025-01-12", "2025-01-06"}, // Sunday rounds back, not forward
		{"2025-01-13", "2025-01-13"}, // next Monday
	}

	for _, tc := range tests {
		if got := MondayOf(date(tc.in)); !got.Equal(date(tc.want)) {
			t.Fatalf("MondayOf(%s): got=%s want=%s", tc.in, got.Format("2006-01-02"), tc.want)
		}
	}
}

func TestWeeks(t *testing.T) {
	t.Parallel()

	weeks := Weeks(date("2025-01-08"), date("2025-01-26"))
	if len(weeks) != 3 {
		t.Fatalf("unexpected week count: got=%d want=3", len(weeks))
	}

	first := weeks[0]
	if !first.Start.Equal(date("2025-01-06")) || !first.End.Equal(date("2025-01-12")) {
		t.Fatalf("unexpected first window: %s..%s",
			first.Start.Format("2006-01-02"), first.End.Format("2006-01-02"))
	}

	last := weeks[2]
	if !last.Start.Equal(date("2025-01-20")) {
		t.Fatalf("unexpected last window start: %s", last.Start.Format("2006-01-02"))
	}

	if weeks := Weeks(date("2025-02-01"), date("2025-01-01")); weeks != nil {
		t.Fatalf("expected no weeks for inverted range, got %d", len(weeks))
	}
}
