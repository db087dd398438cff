package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/squaredcircle/fantasy-wrestling/internal/config"
	"github.com/squaredcircle/fantasy-wrestling/internal/domain/draft"
	"github.com/squaredcircle/fantasy-wrestling/internal/domain/league"
	"github.com/squaredcircle/fantasy-wrestling/internal/domain/matchup"
	"github.com/squaredcircle/fantasy-wrestling/internal/domain/roster"
	"github.com/squaredcircle/fantasy-wrestling/internal/domain/trade"
	"github.com/squaredcircle/fantasy-wrestling/internal/domain/wrestler"
	"github.com/squaredcircle/fantasy-wrestling/internal/infrastructure/account"
	"github.com/squaredcircle/fantasy-wrestling/internal/infrastructure/repository/memory"
	"github.com/squaredcircle/fantasy-wrestling/internal/infrastructure/repository/postgres"
	"github.com/squaredcircle/fantasy-wrestling/internal/infrastructure/scorer"
	"github.com/squaredcircle/fantasy-wrestling/internal/interfaces/httpapi"
	"github.com/squaredcircle/fantasy-wrestling/internal/platform/logging"
	"github.com/squaredcircle/fantasy-wrestling/internal/platform/resilience"
	"github.com/squaredcircle/fantasy-wrestling/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	discoverydomain "github.com/squaredcircle/fantasy-wrestling/internal/domain/discovery"
)

type repositories struct {
	leagues   league.Repository
	rosters   roster.Repository
	wrestlers wrestler.Repository
	orders    draft.OrderRepository
	picks     draft.PickAssetRepository
	holdings  discoverydomain.Repository
	trades    trade.Repository
}

// NewHTTPServer wires repositories, services, and the router into a
// ready-to-run server. The returned cleanup closes the database pool
// when one was opened.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}

	cleanup := func() {}

	var repos repositories
	var points matchup.PointsSource

	if cfg.DBURL != "" {
		db, err := openDB(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		cleanup = func() { _ = db.Close() }

		repos = repositories{
			leagues:   postgres.NewLeagueRepository(db),
			rosters:   postgres.NewRosterRepository(db),
			wrestlers: postgres.NewWrestlerRepository(db),
			orders:    postgres.NewDraftOrderRepository(db),
			picks:     postgres.NewPickAssetRepository(db),
			holdings:  postgres.NewDiscoveryRepository(db),
			trades:    postgres.NewTradeRepository(db),
		}
	} else {
		logger.Info("no DB_URL configured, using in-memory repositories with seed data")
		repos = repositories{
			leagues:   memory.NewLeagueRepository(memory.SeedLeagues(), memory.SeedMembers()),
			rosters:   memory.NewRosterRepository(nil),
			wrestlers: memory.NewWrestlerRepository(memory.SeedWrestlers()),
			orders:    memory.NewDraftOrderRepository(),
			picks:     memory.NewPickAssetRepository(memory.SeedPickAssets()),
			holdings:  memory.NewDiscoveryRepository(nil),
			trades:    memory.NewTradeRepository(),
		}
	}

	if cfg.ScorerBaseURL != "" {
		points = scorer.NewClient(scorer.ClientConfig{
			HTTPClient: &http.Client{Timeout: cfg.ScorerTimeout},
			BaseURL:    cfg.ScorerBaseURL,
			APIKey:     cfg.ScorerAPIKey,
			MaxRetries: cfg.ScorerMaxRetries,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.ScorerCircuitEnabled,
				FailureThreshold: cfg.ScorerCircuitFailureCount,
				OpenTimeout:      cfg.ScorerCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.ScorerCircuitHalfOpenMaxRq,
			},
		})
	} else {
		logger.Info("no SCORER_BASE_URL configured, using in-memory score events")
		points = memory.NewPointsSource(memory.SeedScoreEvents())
	}

	leagueService := usecase.NewLeagueService(repos.leagues, repos.rosters, repos.wrestlers, logger)
	draftService := usecase.NewDraftService(repos.leagues, repos.orders, repos.rosters, repos.wrestlers, logger)
	discoveryService := usecase.NewDiscoveryService(repos.holdings, repos.picks, repos.rosters, repos.wrestlers, logger)
	tradeService := usecase.NewTradeService(repos.trades, repos.picks, repos.rosters, repos.leagues, logger)
	matchupService := usecase.NewMatchupService(repos.leagues, points, logger)
	refreshService := usecase.NewStandingsRefreshService(repos.leagues, matchupService, cfg.RefreshMaxWorkers, logger)

	accountClient := account.NewClient(
		&http.Client{Timeout: cfg.AccountTimeout},
		cfg.AccountBaseURL,
		cfg.AccountIntrospectPath,
		logger,
	)

	handler := httpapi.NewHandler(
		leagueService,
		draftService,
		discoveryService,
		tradeService,
		matchupService,
		refreshService,
		logger,
	)
	router := httpapi.NewRouter(handler, accountClient, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	opts := []otelsql.Option{
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	}
	if name := dbNameFromURL(cfg.DBURL); name != "" {
		opts = append(opts, otelsql.WithDBName(name))
	}

	db, err := otelsqlx.Connect("postgres", cfg.DBURL, opts...)
	if err != nil {
		return nil, err
	}

	return db, nil
}
