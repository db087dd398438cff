package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/squaredcircle/fantasy-wrestling/internal/domain/league"
	"github.com/squaredcircle/fantasy-wrestling/internal/platform/logging"
)

const (
	defaultRefreshWorkers = 4
	maxRefreshWorkers     = 16
)

const (
	refreshStatusSuccess = "success"
	refreshStatusFailed  = "failed"
)

// RefreshInput selects which leagues to recompute. An empty LeagueID
// refreshes every league.
type RefreshInput struct {
	LeagueID   string
	MaxWorkers int
}

type RefreshTaskResult struct {
	LeagueID   string
	Owners     int
	Status     string
	Message    string
	DurationMs int64
}

type RefreshResult struct {
	LeagueCount  int
	WorkerCount  int
	SuccessCount int
	FailedCount  int
	Tasks        []RefreshTaskResult
}

// StandingsRefreshService recomputes league standings across a worker
// pool. Standings are derived on demand elsewhere; this exists so an
// operator job can warm every league and surface scorer failures in one
// report instead of on user requests.
type StandingsRefreshService struct {
	leagueRepo     league.Repository
	matchups       *MatchupService
	defaultWorkers int
	logger         *logging.Logger
}

// NewStandingsRefreshService builds the refresh job runner. defaultWorkers
// sets the pool size used when a request does not ask for one; zero falls
// back to the built-in default.
func NewStandingsRefreshService(leagueRepo league.Repository, matchups *MatchupService, defaultWorkers int, logger *logging.Logger) *StandingsRefreshService {
	if logger == nil {
		logger = logging.Default()
	}

	return &StandingsRefreshService{
		leagueRepo:     leagueRepo,
		matchups:       matchups,
		defaultWorkers: defaultWorkers,
		logger:         logger,
	}
}

func (s *StandingsRefreshService) Refresh(ctx context.Context, input RefreshInput) (RefreshResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsRefreshService.Refresh")
	defer span.End()

	targets, err := s.resolveTargets(ctx, input.LeagueID)
	if err != nil {
		return RefreshResult{}, err
	}

	requestedWorkers := input.MaxWorkers
	if requestedWorkers <= 0 {
		requestedWorkers = s.defaultWorkers
	}
	workerCount := normalizeRefreshWorkerCount(requestedWorkers, len(targets))
	result := RefreshResult{
		LeagueCount: len(targets),
		WorkerCount: workerCount,
		Tasks:       make([]RefreshTaskResult, 0, len(targets)),
	}
	if len(targets) == 0 {
		return result, nil
	}

	results := make(chan RefreshTaskResult, len(targets))

	var successCount atomic.Int32
	var failedCount atomic.Int32

	workerPool, err := ants.NewPool(workerCount)
	if err != nil {
		return RefreshResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	var workers sync.WaitGroup
	for _, target := range targets {
		target := target
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := RefreshTaskResult{LeagueID: target.ID, Status: refreshStatusSuccess}

			standings, err := s.matchups.GetStandings(ctx, target.ID)
			if err != nil {
				row.Status = refreshStatusFailed
				row.Message = err.Error()
				failedCount.Add(1)
			} else {
				row.Owners = len(standings)
				successCount.Add(1)
			}
			row.DurationMs = time.Since(start).Milliseconds()

			results <- row
		}); err != nil {
			workers.Done()
			return RefreshResult{}, fmt.Errorf("submit league to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}
	sort.SliceStable(result.Tasks, func(i, j int) bool {
		return result.Tasks[i].LeagueID < result.Tasks[j].LeagueID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())

	s.logger.InfoContext(ctx, "standings refresh finished",
		"leagues", result.LeagueCount, "succeeded", result.SuccessCount, "failed", result.FailedCount)

	return result, nil
}

func (s *StandingsRefreshService) resolveTargets(ctx context.Context, leagueID string) ([]league.League, error) {
	if leagueID != "" {
		lg, found, err := s.leagueRepo.GetByID(ctx, leagueID)
		if err != nil {
			return nil, fmt.Errorf("get league: %w", err)
		}
		if !found {
			return nil, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
		}
		return []league.League{lg}, nil
	}

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	return leagues, nil
}

func normalizeRefreshWorkerCount(requested, taskCount int) int {
	count := requested
	if count <= 0 {
		count = defaultRefreshWorkers
	}
	if count > maxRefreshWorkers {
		count = maxRefreshWorkers
	}
	if taskCount > 0 && count > taskCount {
		count = taskCount
	}
	return count
}
