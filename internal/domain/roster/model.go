package roster

import (
	"errors"
	"fmt"
)

var ErrAlreadyRostered = errors.New("wrestler is already rostered in this league")

// Rules stores roster composition parameters for a league size.
type Rules struct {
	RosterSize int
	MinFemale  int
	MinMale    int
}

var rulesByTeamCount = map[int]Rules{
	3:  {RosterSize: 12, MinFemale: 3, MinMale: 3},
	4:  {RosterSize: 12, MinFemale: 3, MinMale: 3},
	5:  {RosterSize: 10, MinFemale: 2, MinMale: 2},
	6:  {RosterSize: 10, MinFemale: 2, MinMale: 2},
	7:  {RosterSize: 9, MinFemale: 2, MinMale: 2},
	8:  {RosterSize: 9, MinFemale: 2, MinMale: 2},
	9:  {RosterSize: 8, MinFemale: 2, MinMale: 2},
	10: {RosterSize: 8, MinFemale: 2, MinMale: 2},
	11: {RosterSize: 7, MinFemale: 1, MinMale: 1},
	12: {RosterSize: 7, MinFemale: 1, MinMale: 1},
}

// RulesForTeamCount maps a league's team count to its roster rules.
// Leagues outside [3,12] teams are not draftable.
func RulesForTeamCount(teams int) (Rules, bool) {
	rules, ok := rulesByTeamCount[teams]
	return rules, ok
}

// Assignment is one wrestler on one owner's roster. A wrestler appears
// at most once per league across all owners.
type Assignment struct {
	LeagueID       string
	OwnerID        string
	WrestlerID     string
	ContractLength *int
}

func (a Assignment) Validate() error {
	if a.LeagueID == "" {
		return fmt.Errorf("league id is required")
	}
	if a.OwnerID == "" {
		return fmt.Errorf("owner id is required")
	}
	if a.WrestlerID == "" {
		return fmt.Errorf("wrestler id is required")
	}

	return nil
}
