package discovery

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrWrongPickType    = errors.New("pick is not a discovery pick")
	ErrNotPickOwner     = errors.New("pick is not owned by the claimant")
	ErrPickAlreadyUsed  = errors.New("discovery pick has already been redeemed")
	ErrLeagueMismatch   = errors.New("pick belongs to a different league")
	ErrAlreadyActivated = errors.New("holding has already been activated")
	ErrRightsExpired    = errors.New("discovery rights have expired")
)

type Status string

const (
	StatusRightsHeld   Status = "rights_held"
	StatusClockStarted Status = "clock_started"
	StatusExpired      Status = "expired"
	StatusActivated    Status = "activated"
)

// rightsWindowMonths is the activation clock started by a debut date.
const rightsWindowMonths = 12

// avgDaysPerMonth approximates a month for the advisory months-left
// display. The calendar deadline comparison stays authoritative.
const avgDaysPerMonth = 30.44

// Holding is the rights record created by redeeming a discovery pick.
// Lifecycle state is derived from DebutDate and ActivatedAt, never
// stored.
type Holding struct {
	ID           string
	LeagueID     string
	OwnerID      string
	DraftPickID  string
	WrestlerName string
	Company      string
	DebutDate    *time.Time
	ActivatedAt  *time.Time
}

func (h Holding) Validate() error {
	if h.ID == "" {
		return fmt.Errorf("holding id is required")
	}
	if h.LeagueID == "" {
		return fmt.Errorf("league id is required")
	}
	if h.OwnerID == "" {
		return fmt.Errorf("owner id is required")
	}
	if h.DraftPickID == "" {
		return fmt.Errorf("draft pick id is required")
	}
	if h.WrestlerName == "" {
		return fmt.Errorf("wrestler name is required")
	}

	return nil
}

// Deadline is the last day the holding may be activated: twelve
// calendar months after the debut date. Month-length differences are
// absorbed by calendar arithmetic rather than a fixed day count.
func (h Holding) Deadline() (time.Time, bool) {
	if h.DebutDate == nil || h.DebutDate.IsZero() {
		return time.Time{}, false
	}
	return h.DebutDate.AddDate(0, rightsWindowMonths, 0), true
}

// StatusAt derives the lifecycle state at the given instant. Expired
// and activated are terminal.
func (h Holding) StatusAt(now time.Time) Status {
	if h.ActivatedAt != nil && !h.ActivatedAt.IsZero() {
		return StatusActivated
	}
	deadline, ok := h.Deadline()
	if !ok {
		return StatusRightsHeld
	}
	if now.After(deadline) {
		return StatusExpired
	}
	return StatusClockStarted
}

// MonthsLeftAt is the advisory whole-months-remaining display, rounded
// up over an approximate 30.44-day month. Zero unless the clock is
// running.
func (h Holding) MonthsLeftAt(now time.Time) int {
	if h.StatusAt(now) != StatusClockStarted {
		return 0
	}
	deadline, _ := h.Deadline()
	days := deadline.Sub(now).Hours() / 24
	months := int(math.Ceil(days / avgDaysPerMonth))
	if months < 0 {
		return 0
	}
	return months
}
