package memory

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/joehodgson0/teamhub/internal/domain/award"
	"github.com/joehodgson0/teamhub/internal/domain/club"
	"github.com/joehodgson0/teamhub/internal/domain/event"
	"github.com/joehodgson0/teamhub/internal/domain/player"
	"github.com/joehodgson0/teamhub/internal/domain/post"
	"github.com/joehodgson0/teamhub/internal/domain/result"
	"github.com/joehodgson0/teamhub/internal/domain/team"
	"github.com/joehodgson0/teamhub/internal/domain/user"
)

// Demo fixtures for running the API without a database. The coach and
// parent accounts both use SeedPassword.
const (
	SeedClubID   = "club-riverside"
	SeedTeamU10  = "team-riverside-u10"
	SeedTeamU12  = "team-riverside-u12"
	SeedPassword = "letmein-demo"
)

func SeedClubs() []club.Club {
	return []club.Club{
		{ID: SeedClubID, Name: "Riverside Juniors FC", Code: "RIVRSD25", TotalTeams: 2, TotalPlayers: 3},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{
			ID:        SeedTeamU10,
			ClubID:    SeedClubID,
			Name:      "Riverside U10 Tigers",
			AgeGroup:  team.AgeGroupU10,
			Code:      "TIGERSU1",
			PlayerIDs: []string{"pl-amelia", "pl-ben"},
			Wins:      1,
			Draws:     1,
			Losses:    0,
		},
		{
			ID:       SeedTeamU12,
			ClubID:   SeedClubID,
			Name:     "Riverside U12 Falcons",
			AgeGroup: team.AgeGroupU12,
			Code:     "FALCONU1",
			PlayerIDs: []string{
				"pl-chloe",
			},
		},
	}
}

func SeedUsers() []user.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}

	return []user.User{
		{
			ID:           "user-coach-dana",
			Email:        "dana.coach@riverside.test",
			PasswordHash: string(hash),
			Roles:        []user.Role{user.RoleCoach},
			ClubID:       SeedClubID,
			TeamIDs:      []string{SeedTeamU10, SeedTeamU12},
		},
		{
			ID:           "user-parent-sam",
			Email:        "sam.parent@riverside.test",
			PasswordHash: string(hash),
			Roles:        []user.Role{user.RoleParent},
			ClubID:       SeedClubID,
		},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "pl-amelia", Name: "Amelia Hart", DateOfBirth: time.Date(2016, 5, 3, 0, 0, 0, 0, time.UTC), TeamID: SeedTeamU10, ParentID: "user-parent-sam", Attendance: 8, TotalEvents: 9},
		{ID: "pl-ben", Name: "Ben Okafor", DateOfBirth: time.Date(2016, 11, 19, 0, 0, 0, 0, time.UTC), TeamID: SeedTeamU10, ParentID: "user-parent-sam", Attendance: 7, TotalEvents: 9},
		{ID: "pl-chloe", Name: "Chloe Mercer", DateOfBirth: time.Date(2014, 2, 27, 0, 0, 0, 0, time.UTC), TeamID: SeedTeamU12, ParentID: "user-parent-sam", Attendance: 5, TotalEvents: 6},
	}
}

func SeedEvents() []event.Event {
	return []event.Event{
		{
			ID:        "ev-u10-match-001",
			TeamID:    SeedTeamU10,
			Type:      event.TypeMatch,
			Name:      "League round 4",
			Opponent:  "Hillcrest Colts",
			Location:  "Riverside Park pitch 2",
			StartTime: time.Date(2026, 8, 22, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2026, 8, 22, 11, 0, 0, 0, time.UTC),
			HomeAway:  event.HomeAwayHome,
			Availability: map[string]event.Availability{
				"pl-amelia": event.AvailabilityAvailable,
				"pl-ben":    event.AvailabilityPending,
			},
		},
		{
			ID:        "ev-u10-match-002",
			TeamID:    SeedTeamU10,
			Type:      event.TypeMatch,
			Name:      "League round 5",
			Opponent:  "Oakwood Rovers",
			Location:  "Oakwood Lane",
			StartTime: time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2026, 8, 29, 11, 0, 0, 0, time.UTC),
			HomeAway:  event.HomeAwayAway,
		},
		{
			ID:        "ev-u10-match-003",
			TeamID:    SeedTeamU10,
			Type:      event.TypeMatch,
			Name:      "League round 6",
			Opponent:  "Hillcrest Colts",
			Location:  "Hillcrest Green",
			StartTime: time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2026, 9, 12, 11, 0, 0, 0, time.UTC),
			HomeAway:  event.HomeAwayAway,
		},
		{
			ID:        "ev-u10-training-001",
			TeamID:    SeedTeamU10,
			Type:      event.TypeTraining,
			Name:      "Tuesday training",
			Location:  "Riverside Park pitch 1",
			StartTime: time.Date(2026, 9, 8, 17, 30, 0, 0, time.UTC),
			EndTime:   time.Date(2026, 9, 8, 18, 30, 0, 0, time.UTC),
		},
		{
			ID:        "ev-u12-social-001",
			TeamID:    SeedTeamU12,
			Type:      event.TypeSocial,
			Name:      "End of summer barbecue",
			Location:  "Clubhouse",
			StartTime: time.Date(2026, 9, 20, 12, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2026, 9, 20, 15, 0, 0, 0, time.UTC),
		},
	}
}

func SeedResults() []result.MatchResult {
	return []result.MatchResult{
		{
			FixtureID:     "ev-u10-match-001",
			TeamID:        SeedTeamU10,
			HomeTeamGoals: 3,
			AwayTeamGoals: 1,
			IsHomeFixture: true,
			Outcome:       result.OutcomeWin,
			PlayerStats: map[string]result.StatLine{
				"pl-amelia": {Goals: 2, Assists: 0},
				"pl-ben":    {Goals: 1, Assists: 2},
			},
			CreatedAt: time.Date(2026, 8, 22, 12, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2026, 8, 22, 12, 0, 0, 0, time.UTC),
		},
		{
			FixtureID:     "ev-u10-match-002",
			TeamID:        SeedTeamU10,
			HomeTeamGoals: 2,
			AwayTeamGoals: 2,
			IsHomeFixture: false,
			Outcome:       result.OutcomeDraw,
			PlayerStats: map[string]result.StatLine{
				"pl-ben": {Goals: 2, Assists: 0},
			},
			CreatedAt: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
		},
	}
}

func SeedPosts() []post.Post {
	return []post.Post{
		{
			ID:         "post-club-001",
			Type:       post.TypeAnnouncement,
			Title:      "New season registration open",
			Content:    "Registration for the 2026/27 season is now open on the club site.",
			AuthorID:   "user-coach-dana",
			AuthorName: "dana.coach@riverside.test",
			AuthorRole: string(user.RoleCoach),
			ClubID:     SeedClubID,
			CreatedAt:  time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:         "post-u10-001",
			Type:       post.TypeKitRequest,
			Title:      "Spare size 7 boots wanted",
			Content:    "Anyone with outgrown size 7 boots, the kit cupboard is short.",
			AuthorID:   "user-coach-dana",
			AuthorName: "dana.coach@riverside.test",
			AuthorRole: string(user.RoleCoach),
			TeamID:     SeedTeamU10,
			CreatedAt:  time.Date(2026, 8, 20, 18, 30, 0, 0, time.UTC),
		},
	}
}

func SeedAwards() []award.Award {
	return []award.Award{
		{ID: "aw-u10-2026-07", TeamID: SeedTeamU10, Title: "Player of the Month", Recipient: "Amelia Hart", Month: 7, Year: 2026},
		{ID: "aw-u10-2026-08", TeamID: SeedTeamU10, Title: "Most Improved", Recipient: "Ben Okafor", Month: 8, Year: 2026},
	}
}
