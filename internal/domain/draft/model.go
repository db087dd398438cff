package draft

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidLeagueSize = errors.New("league size is outside the draftable range")
	ErrNoActiveDraft     = errors.New("league has no draft in progress")
	ErrNotYourTurn       = errors.New("caller is not on the clock")
)

// OrderEntry is one slot in a generated draft order. OverallPick is
// unique per league and runs 1..teams*rosterSize.
type OrderEntry struct {
	LeagueID    string
	OverallPick int
	Round       int
	PickInRound int
	UserID      string
}

type PickType string

const (
	PickTypeRound     PickType = "round"
	PickTypeDiscovery PickType = "discovery"
)

// PickAsset is a tradable draft pick. UsedAt is set exactly once, when
// a discovery pick is redeemed into a holding.
type PickAsset struct {
	ID              string
	LeagueID        string
	Season          int
	PickType        PickType
	RoundNumber     *int
	DiscoveryNumber *int
	OriginalOwnerID string
	CurrentOwnerID  string
	ContractYears   *int
	UsedAt          *time.Time
}

func (p PickAsset) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("pick id is required")
	}
	if p.LeagueID == "" {
		return fmt.Errorf("league id is required")
	}
	if p.CurrentOwnerID == "" {
		return fmt.Errorf("current owner is required")
	}
	switch p.PickType {
	case PickTypeRound, PickTypeDiscovery:
	default:
		return fmt.Errorf("unknown pick type %q", p.PickType)
	}

	return nil
}
