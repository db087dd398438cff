package trade

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrEmptyLeg  = errors.New("trade leg moves no asset")
	ErrSelfTrade = errors.New("trade leg sender and receiver are the same owner")
)

// Trade is an immutable historical record of a multi-leg asset
// exchange. It is never mutated after its legs apply.
type Trade struct {
	ID        string
	LeagueID  string
	TradeDate time.Time
	Notes     string
	Legs      []Leg
}

// Leg is one directional movement of assets between two owners. A leg
// carries a wrestler, a draft pick, or both.
type Leg struct {
	TradeID     string
	FromOwnerID string
	ToOwnerID   string
	WrestlerID  string
	DraftPickID string
}

func (l Leg) Validate() error {
	if l.FromOwnerID == "" || l.ToOwnerID == "" {
		return fmt.Errorf("leg owners are required")
	}
	if l.FromOwnerID == l.ToOwnerID {
		return fmt.Errorf("%w: owner=%s", ErrSelfTrade, l.FromOwnerID)
	}
	if l.WrestlerID == "" && l.DraftPickID == "" {
		return ErrEmptyLeg
	}

	return nil
}

// LegReport records the outcome of applying one leg. Leg application
// is best effort: applied legs stay applied when a later leg fails.
type LegReport struct {
	Index   int
	Applied bool
	Message string
}
