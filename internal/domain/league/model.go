package league

import (
	"fmt"
	"time"
)

type DraftStyle string

const (
	DraftStyleSnake  DraftStyle = "snake"
	DraftStyleLinear DraftStyle = "linear"
)

type DraftStatus string

const (
	DraftStatusNotStarted DraftStatus = "not_started"
	DraftStatusInProgress DraftStatus = "in_progress"
	DraftStatusCompleted  DraftStatus = "completed"
)

// League is one multi-owner wrestling fantasy league.
type League struct {
	ID             string
	Name           string
	CommissionerID string
	StartDate      time.Time
	EndDate        time.Time
	DraftDate      *time.Time
	DraftStyle     DraftStyle
	DraftStatus    DraftStatus
	CurrentPick    *int
}

// EffectiveStartDate is the date scoring weeks are anchored to.
func (l League) EffectiveStartDate() time.Time {
	if l.DraftDate != nil && !l.DraftDate.IsZero() {
		return *l.DraftDate
	}
	return l.StartDate
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.CommissionerID == "" {
		return fmt.Errorf("league commissioner is required")
	}
	switch l.DraftStyle {
	case DraftStyleSnake, DraftStyleLinear:
	default:
		return fmt.Errorf("unknown draft style %q", l.DraftStyle)
	}
	switch l.DraftStatus {
	case DraftStatusNotStarted, DraftStatusInProgress, DraftStatusCompleted:
	default:
		return fmt.Errorf("unknown draft status %q", l.DraftStatus)
	}

	return nil
}

type Role string

const (
	RoleCommissioner Role = "commissioner"
	RoleOwner        Role = "owner"
)

// Member is a league-scoped user. Exactly one member per league holds
// the commissioner role.
type Member struct {
	LeagueID string
	UserID   string
	Role     Role
}
