package usecase

import (
	"context"
	"fmt"
)

// sagaStep is one compensable write in an ordered multi-step operation.
// The store offers only single-statement atomicity, so multi-row
// operations run as a saga: apply steps in order, and on failure undo
// the already-applied steps in reverse.
type sagaStep struct {
	name       string
	apply      func(ctx context.Context) error
	compensate func(ctx context.Context) error
}

// runSaga applies steps in order. When a step fails, compensations for
// the applied steps run in reverse; a compensation failure is reported
// distinctly from the original failure so operators can tell "never
// created" apart from "created and failed to clean up".
func runSaga(ctx context.Context, steps []sagaStep) error {
	for i, step := range steps {
		err := step.apply(ctx)
		if err == nil {
			continue
		}

		for j := i - 1; j >= 0; j-- {
			if steps[j].compensate == nil {
				continue
			}
			if compErr := steps[j].compensate(ctx); compErr != nil {
				return fmt.Errorf("compensate %s after failed %s: %v (original: %w)",
					steps[j].name, step.name, compErr, err)
			}
		}

		return fmt.Errorf("%s: %w", step.name, err)
	}

	return nil
}
