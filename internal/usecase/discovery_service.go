package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"github.com/squaredcircle/fantasy-wrestling/internal/domain/discovery"
	"github.com/squaredcircle/fantasy-wrestling/internal/domain/draft"
	"github.com/squaredcircle/fantasy-wrestling/internal/domain/roster"
	"github.com/squaredcircle/fantasy-wrestling/internal/domain/wrestler"
	"github.com/squaredcircle/fantasy-wrestling/internal/platform/id"
	"github.com/squaredcircle/fantasy-wrestling/internal/platform/logging"
)

// defaultContractYears applies when the redeemed pick carries no
// contract term of its own.
const defaultContractYears = 1

// HoldingView is a holding with its lifecycle state resolved against a
// single instant, so a listing is internally consistent.
type HoldingView struct {
	Holding    discovery.Holding
	Status     discovery.Status
	Deadline   *time.Time
	MonthsLeft int
}

type DiscoveryService struct {
	holdingRepo  discovery.Repository
	pickRepo     draft.PickAssetRepository
	rosterRepo   roster.Repository
	wrestlerRepo wrestler.Repository
	holdingIDs   id.Generator
	wrestlerIDs  id.Generator
	logger       *logging.Logger
	now          func() time.Time
}

func NewDiscoveryService(
	holdingRepo discovery.Repository,
	pickRepo draft.PickAssetRepository,
	rosterRepo roster.Repository,
	wrestlerRepo wrestler.Repository,
	logger *logging.Logger,
) *DiscoveryService {
	if logger == nil {
		logger = logging.Default()
	}

	return &DiscoveryService{
		holdingRepo:  holdingRepo,
		pickRepo:     pickRepo,
		rosterRepo:   rosterRepo,
		wrestlerRepo: wrestlerRepo,
		holdingIDs:   id.NewPrefixedGenerator("hld_"),
		wrestlerIDs:  id.NewPrefixedGenerator("wrs_"),
		logger:       logger,
		now:          time.Now,
	}
}

// RedeemPick consumes a discovery pick and creates the rights holding
// it pays for. The pick's used marker is written after the holding and
// is guarded, so a concurrent double redeem leaves exactly one holding:
// the loser's holding is deleted and the loser gets the already-used
// error.
func (s *DiscoveryService) RedeemPick(ctx context.Context, leagueID, actorID, pickID, wrestlerName, company string) (discovery.Holding, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DiscoveryService.RedeemPick")
	defer span.End()

	wrestlerName = strings.TrimSpace(wrestlerName)
	if wrestlerName == "" {
		return discovery.Holding{}, fmt.Errorf("%w: wrestler name is required", ErrInvalidInput)
	}

	pick, found, err := s.pickRepo.GetByID(ctx, pickID)
	if err != nil {
		return discovery.Holding{}, fmt.Errorf("get draft pick: %w", err)
	}
	if !found {
		return discovery.Holding{}, fmt.Errorf("%w: pick=%s", ErrNotFound, pickID)
	}

	if pick.PickType != draft.PickTypeDiscovery {
		return discovery.Holding{}, fmt.Errorf("%w: pick=%s type=%s", discovery.ErrWrongPickType, pickID, pick.PickType)
	}
	if pick.CurrentOwnerID != actorID {
		return discovery.Holding{}, fmt.Errorf("%w: pick=%s owner=%s", discovery.ErrNotPickOwner, pickID, pick.CurrentOwnerID)
	}
	if pick.UsedAt != nil {
		return discovery.Holding{}, fmt.Errorf("%w: pick=%s", discovery.ErrPickAlreadyUsed, pickID)
	}
	if pick.LeagueID != leagueID {
		return discovery.Holding{}, fmt.Errorf("%w: pick=%s league=%s", discovery.ErrLeagueMismatch, pickID, pick.LeagueID)
	}

	holdingID, err := s.holdingIDs.NewID()
	if err != nil {
		return discovery.Holding{}, fmt.Errorf("generate holding id: %w", err)
	}

	holding := discovery.Holding{
		ID:           holdingID,
		LeagueID:     leagueID,
		OwnerID:      actorID,
		DraftPickID:  pickID,
		WrestlerName: wrestlerName,
		Company:      strings.TrimSpace(company),
	}
	if err := holding.Validate(); err != nil {
		return discovery.Holding{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.holdingRepo.Create(ctx, holding); err != nil {
		return discovery.Holding{}, fmt.Errorf("create holding: %w", err)
	}

	marked, err := s.pickRepo.MarkUsed(ctx, pickID, s.now().UTC())
	if err != nil {
		if delErr := s.holdingRepo.Delete(ctx, holdingID); delErr != nil {
			s.logger.ErrorContext(ctx, "orphaned holding after failed pick consume",
				"holding_id", holdingID, "pick_id", pickID, "error", delErr)
		}
		return discovery.Holding{}, fmt.Errorf("mark pick used: %w", err)
	}
	if !marked {
		if delErr := s.holdingRepo.Delete(ctx, holdingID); delErr != nil {
			s.logger.ErrorContext(ctx, "orphaned holding after lost redeem race",
				"holding_id", holdingID, "pick_id", pickID, "error", delErr)
		}
		return discovery.Holding{}, fmt.Errorf("%w: pick=%s", discovery.ErrPickAlreadyUsed, pickID)
	}

	s.logger.InfoContext(ctx, "discovery pick redeemed",
		"league_id", leagueID, "pick_id", pickID, "holding_id", holdingID, "wrestler", wrestlerName)

	return holding, nil
}

// SetDebutDate records the real-world debut that starts the activation
// clock. The date may be re-set while the holding is live; the write is
// guarded against an already-activated holding.
func (s *DiscoveryService) SetDebutDate(ctx context.Context, holdingID, actorID string, debut time.Time) (discovery.Holding, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DiscoveryService.SetDebutDate")
	defer span.End()

	if debut.IsZero() {
		return discovery.Holding{}, fmt.Errorf("%w: debut date is required", ErrInvalidInput)
	}

	holding, err := s.requireOwnedHolding(ctx, holdingID, actorID)
	if err != nil {
		return discovery.Holding{}, err
	}
	if holding.ActivatedAt != nil {
		return discovery.Holding{}, fmt.Errorf("%w: holding=%s", discovery.ErrAlreadyActivated, holdingID)
	}

	ok, err := s.holdingRepo.SetDebutDate(ctx, holdingID, debut)
	if err != nil {
		return discovery.Holding{}, fmt.Errorf("set debut date: %w", err)
	}
	if !ok {
		return discovery.Holding{}, fmt.Errorf("%w: holding=%s", discovery.ErrAlreadyActivated, holdingID)
	}

	holding.DebutDate = &debut
	return holding, nil
}

// Activate converts a live holding into a rostered wrestler before the
// rights deadline. The wrestler record is resolved by name slug so two
// owners discovering the same person in different leagues share one
// wrestler row. All side effects sit behind the status checks; an
// expired or already-activated holding changes nothing.
func (s *DiscoveryService) Activate(ctx context.Context, holdingID, actorID string) (roster.Assignment, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DiscoveryService.Activate")
	defer span.End()

	holding, err := s.requireOwnedHolding(ctx, holdingID, actorID)
	if err != nil {
		return roster.Assignment{}, err
	}

	now := s.now().UTC()
	switch holding.StatusAt(now) {
	case discovery.StatusActivated:
		return roster.Assignment{}, fmt.Errorf("%w: holding=%s", discovery.ErrAlreadyActivated, holdingID)
	case discovery.StatusExpired:
		return roster.Assignment{}, fmt.Errorf("%w: holding=%s", discovery.ErrRightsExpired, holdingID)
	}

	w, err := s.resolveWrestler(ctx, holding)
	if err != nil {
		return roster.Assignment{}, err
	}

	contract := defaultContractYears
	if pick, found, err := s.pickRepo.GetByID(ctx, holding.DraftPickID); err != nil {
		return roster.Assignment{}, fmt.Errorf("get originating pick: %w", err)
	} else if found && pick.ContractYears != nil {
		contract = *pick.ContractYears
	}

	assignment := roster.Assignment{
		LeagueID:       holding.LeagueID,
		OwnerID:        holding.OwnerID,
		WrestlerID:     w.ID,
		ContractLength: &contract,
	}
	if err := s.rosterRepo.Upsert(ctx, assignment); err != nil {
		return roster.Assignment{}, fmt.Errorf("roster activated wrestler: %w", err)
	}

	marked, err := s.holdingRepo.MarkActivated(ctx, holdingID, now)
	if err != nil {
		return roster.Assignment{}, fmt.Errorf("mark holding activated: %w", err)
	}
	if !marked {
		return roster.Assignment{}, fmt.Errorf("%w: holding=%s", discovery.ErrAlreadyActivated, holdingID)
	}

	s.logger.InfoContext(ctx, "discovery holding activated",
		"holding_id", holdingID, "league_id", holding.LeagueID, "wrestler_id", w.ID, "contract_years", contract)

	return assignment, nil
}

// ListHoldings returns an owner's holdings with status, deadline, and
// the advisory months-left counter resolved at one instant.
func (s *DiscoveryService) ListHoldings(ctx context.Context, leagueID, ownerID string) ([]HoldingView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DiscoveryService.ListHoldings")
	defer span.End()

	holdings, err := s.holdingRepo.ListByOwner(ctx, leagueID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list holdings: %w", err)
	}

	now := s.now().UTC()
	views := make([]HoldingView, 0, len(holdings))
	for _, h := range holdings {
		view := HoldingView{
			Holding:    h,
			Status:     h.StatusAt(now),
			MonthsLeft: h.MonthsLeftAt(now),
		}
		if deadline, ok := h.Deadline(); ok {
			view.Deadline = &deadline
		}
		views = append(views, view)
	}

	return views, nil
}

func (s *DiscoveryService) resolveWrestler(ctx context.Context, holding discovery.Holding) (wrestler.Wrestler, error) {
	nameSlug := slug.Make(holding.WrestlerName)

	existing, found, err := s.wrestlerRepo.GetBySlug(ctx, nameSlug)
	if err != nil {
		return wrestler.Wrestler{}, fmt.Errorf("get wrestler by slug: %w", err)
	}
	if found {
		return existing, nil
	}

	wrestlerID, err := s.wrestlerIDs.NewID()
	if err != nil {
		return wrestler.Wrestler{}, fmt.Errorf("generate wrestler id: %w", err)
	}

	created := wrestler.Wrestler{
		ID:      wrestlerID,
		Name:    holding.WrestlerName,
		Slug:    nameSlug,
		Company: holding.Company,
	}
	if err := s.wrestlerRepo.Create(ctx, created); err != nil {
		return wrestler.Wrestler{}, fmt.Errorf("create wrestler: %w", err)
	}

	return created, nil
}

func (s *DiscoveryService) requireOwnedHolding(ctx context.Context, holdingID, actorID string) (discovery.Holding, error) {
	holdingID = strings.TrimSpace(holdingID)
	if holdingID == "" {
		return discovery.Holding{}, fmt.Errorf("%w: holding id is required", ErrInvalidInput)
	}

	holding, found, err := s.holdingRepo.GetByID(ctx, holdingID)
	if err != nil {
		return discovery.Holding{}, fmt.Errorf("get holding: %w", err)
	}
	if !found {
		return discovery.Holding{}, fmt.Errorf("%w: holding=%s", ErrNotFound, holdingID)
	}
	if holding.OwnerID != actorID {
		return discovery.Holding{}, fmt.Errorf("%w: holding=%s", ErrUnauthorized, holdingID)
	}

	return holding, nil
}
