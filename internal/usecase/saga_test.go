package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRunSagaCompensatesInReverse(t *testing.T) {
	t.Parallel()

	var undone []string
	boom := errors.New("boom")

	err := runSaga(context.Background(), []sagaStep{
		{
			name:       "one",
			apply:      func(ctx context.Context) error { return nil },
			compensate: func(ctx context.Context) error { undone = append(undone, "one"); return nil },
		},
		{
			name:       "two",
			apply:      func(ctx context.Context) error { return nil },
			compensate: func(ctx context.Context) error { undone = append(undone, "two"); return nil },
		},
		{
			name:  "three",
			apply: func(ctx context.Context) error { return boom },
		},
	})
	if !errors.Is(err, boom) {
		t.Fatalf("runSaga() error = %v, want wrapped boom", err)
	}
	if len(undone) != 2 || undone[0] != "two" || undone[1] != "one" {
		t.Fatalf("compensation order = %v, want [two one]", undone)
	}
}

func TestRunSagaReportsCompensationFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	cleanupErr := errors.New("cleanup failed")

	err := runSaga(context.Background(), []sagaStep{
		{
			name:       "create",
			apply:      func(ctx context.Context) error { return nil },
			compensate: func(ctx context.Context) error { return cleanupErr },
		},
		{
			name:  "link",
			apply: func(ctx context.Context) error { return boom },
		},
	})
	if !errors.Is(err, boom) {
		t.Fatalf("runSaga() error = %v, want the original failure preserved", err)
	}
	if !strings.Contains(err.Error(), "cleanup failed") {
		t.Fatalf("runSaga() error = %v, want the compensation failure surfaced", err)
	}
}

func TestRunSagaSuccessTouchesNoCompensation(t *testing.T) {
	t.Parallel()

	compensated := false
	err := runSaga(context.Background(), []sagaStep{
		{
			name:       "only",
			apply:      func(ctx context.Context) error { return nil },
			compensate: func(ctx context.Context) error { compensated = true; return nil },
		},
	})
	if err != nil {
		t.Fatalf("runSaga() error = %v", err)
	}
	if compensated {
		t.Fatal("compensation ran on success")
	}
}
