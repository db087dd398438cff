package memory

import (
	"time"

	"github.com/squaredcircle/fantasy-wrestling/internal/domain/draft"
	"github.com/squaredcircle/fantasy-wrestling/internal/domain/league"
	"github.com/squaredcircle/fantasy-wrestling/internal/domain/wrestler"
)

const (
	LeagueIDMondayWarfare  = "monday-warfare-2026"
	LeagueIDIndieShowcase  = "indie-showcase-2026"
	SeededCommissionerID   = "usr-commissioner"
	seededContractOneYear  = 1
	seededContractTwoYears = 2
)

func SeedLeagues() []league.League {
	draftDate := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

	return []league.League{
		{
			ID:             LeagueIDMondayWarfare,
			Name:           "Monday Warfare",
			CommissionerID: SeededCommissionerID,
			StartDate:      time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			EndDate:        time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
			DraftDate:      &draftDate,
			DraftStyle:     league.DraftStyleSnake,
			DraftStatus:    league.DraftStatusNotStarted,
		},
		{
			ID:             LeagueIDIndieShowcase,
			Name:           "Indie Showcase",
			CommissionerID: SeededCommissionerID,
			StartDate:      time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
			EndDate:        time.Date(2026, time.October, 31, 0, 0, 0, 0, time.UTC),
			DraftStyle:     league.DraftStyleLinear,
			DraftStatus:    league.DraftStatusNotStarted,
		},
	}
}

func SeedMembers() []league.Member {
	return []league.Member{
		{LeagueID: LeagueIDMondayWarfare, UserID: SeededCommissionerID, Role: league.RoleCommissioner},
		{LeagueID: LeagueIDMondayWarfare, UserID: "usr-duke", Role: league.RoleOwner},
		{LeagueID: LeagueIDMondayWarfare, UserID: "usr-mara", Role: league.RoleOwner},
		{LeagueID: LeagueIDMondayWarfare, UserID: "usr-sol", Role: league.RoleOwner},
		{LeagueID: LeagueIDIndieShowcase, UserID: SeededCommissionerID, Role: league.RoleCommissioner},
		{LeagueID: LeagueIDIndieShowcase, UserID: "usr-duke", Role: league.RoleOwner},
		{LeagueID: LeagueIDIndieShowcase, UserID: "usr-kit", Role: league.RoleOwner},
	}
}

func SeedWrestlers() []wrestler.Wrestler {
	return []wrestler.Wrestler{
		{ID: "wrs-0001", Name: "Atlas Kane", Slug: "atlas-kane", Company: "WWE", Gender: wrestler.GenderMale},
		{ID: "wrs-0002", Name: "Violet Storm", Slug: "violet-storm", Company: "WWE", Gender: wrestler.GenderFemale},
		{ID: "wrs-0003", Name: "Rex Calloway", Slug: "rex-calloway", Company: "AEW", Gender: wrestler.GenderMale},
		{ID: "wrs-0004", Name: "Sierra Vane", Slug: "sierra-vane", Company: "AEW", Gender: wrestler.GenderFemale},
		{ID: "wrs-0005", Name: "Dmitri Volkov", Slug: "dmitri-volkov", Company: "NJPW", Gender: wrestler.GenderMale},
		{ID: "wrs-0006", Name: "Luna Reyes", Slug: "luna-reyes", Company: "CMLL", Gender: wrestler.GenderFemale},
		{ID: "wrs-0007", Name: "Big Jim Hollis", Slug: "big-jim-hollis", Company: "TNA", Gender: wrestler.GenderMale},
		{ID: "wrs-0008", Name: "Kaya Thunder", Slug: "kaya-thunder", Company: "Stardom", Gender: wrestler.GenderFemale},
		{ID: "wrs-0009", Name: "Marcus Steel", Slug: "marcus-steel", Company: "WWE", Gender: wrestler.GenderMale},
		{ID: "wrs-0010", Name: "Jade Okonkwo", Slug: "jade-okonkwo", Company: "AEW", Gender: wrestler.GenderFemale},
		{ID: "wrs-0011", Name: "Tommy Two Rivers", Slug: "tommy-two-rivers", Company: "TNA", Gender: wrestler.GenderMale},
		{ID: "wrs-0012", Name: "Scarlett Fox", Slug: "scarlett-fox", Company: "NJPW", Gender: wrestler.GenderFemale},
	}
}

func SeedPickAssets() []draft.PickAsset {
	roundTwo := 2
	discoveryOne := 1
	discoveryTwo := 2
	oneYear := seededContractOneYear
	twoYears := seededContractTwoYears

	return []draft.PickAsset{
		{
			ID:              "pck-0001",
			LeagueID:        LeagueIDMondayWarfare,
			Season:          2026,
			PickType:        draft.PickTypeDiscovery,
			DiscoveryNumber: &discoveryOne,
			OriginalOwnerID: "usr-duke",
			CurrentOwnerID:  "usr-duke",
			ContractYears:   &twoYears,
		},
		{
			ID:              "pck-0002",
			LeagueID:        LeagueIDMondayWarfare,
			Season:          2026,
			PickType:        draft.PickTypeDiscovery,
			DiscoveryNumber: &discoveryTwo,
			OriginalOwnerID: "usr-mara",
			CurrentOwnerID:  "usr-mara",
			ContractYears:   &oneYear,
		},
		{
			ID:              "pck-0003",
			LeagueID:        LeagueIDMondayWarfare,
			Season:          2027,
			PickType:        draft.PickTypeRound,
			RoundNumber:     &roundTwo,
			OriginalOwnerID: "usr-sol",
			CurrentOwnerID:  "usr-sol",
		},
	}
}

func SeedScoreEvents() []ScoreEvent {
	return []ScoreEvent{
		{LeagueID: LeagueIDMondayWarfare, OwnerID: "usr-duke", Date: time.Date(2026, time.January, 7, 0, 0, 0, 0, time.UTC), Points: 22},
		{LeagueID: LeagueIDMondayWarfare, OwnerID: "usr-mara", Date: time.Date(2026, time.January, 7, 0, 0, 0, 0, time.UTC), Points: 18},
		{LeagueID: LeagueIDMondayWarfare, OwnerID: "usr-sol", Date: time.Date(2026, time.January, 9, 0, 0, 0, 0, time.UTC), Points: 12},
		{LeagueID: LeagueIDMondayWarfare, OwnerID: "usr-duke", Date: time.Date(2026, time.January, 14, 0, 0, 0, 0, time.UTC), Points: 9},
		{LeagueID: LeagueIDMondayWarfare, OwnerID: "usr-mara", Date: time.Date(2026, time.January, 14, 0, 0, 0, 0, time.UTC), Points: 27},
		{LeagueID: LeagueIDMondayWarfare, OwnerID: "usr-sol", Date: time.Date(2026, time.January, 16, 0, 0, 0, 0, time.UTC), Points: 27},
	}
}
