package httpapi

import (
	"time"

	"github.com/joehodgson0/teamhub/internal/domain/award"
	"github.com/joehodgson0/teamhub/internal/domain/club"
	"github.com/joehodgson0/teamhub/internal/domain/event"
	"github.com/joehodgson0/teamhub/internal/domain/player"
	"github.com/joehodgson0/teamhub/internal/domain/post"
	"github.com/joehodgson0/teamhub/internal/domain/result"
	"github.com/joehodgson0/teamhub/internal/domain/team"
	"github.com/joehodgson0/teamhub/internal/domain/user"
	"github.com/joehodgson0/teamhub/internal/usecase"
)

type userDTO struct {
	ID      string   `json:"id"`
	Email   string   `json:"email"`
	Roles   []string `json:"roles"`
	ClubID  string   `json:"clubId"`
	TeamIDs []string `json:"teamIds"`
}

type clubDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Code         string `json:"code"`
	TotalTeams   int    `json:"totalTeams"`
	TotalPlayers int    `json:"totalPlayers"`
}

type teamDTO struct {
	ID       string `json:"id"`
	ClubID   string `json:"clubId"`
	Name     string `json:"name"`
	AgeGroup string `json:"ageGroup"`
	Code     string `json:"code"`
	Players  int    `json:"players"`
	Wins     int    `json:"wins"`
	Draws    int    `json:"draws"`
	Losses   int    `json:"losses"`
}

type playerDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DateOfBirth string `json:"dateOfBirth"`
	TeamID      string `json:"teamId"`
	Attendance  int    `json:"attendance"`
	TotalEvents int    `json:"totalEvents"`
}

type eventDTO struct {
	ID           string            `json:"id"`
	TeamID       string            `json:"teamId"`
	Type         string            `json:"type"`
	Friendly     bool              `json:"friendly"`
	Name         string            `json:"name"`
	Opponent     string            `json:"opponent,omitempty"`
	Location     string            `json:"location"`
	StartTime    string            `json:"startTime"`
	EndTime      string            `json:"endTime"`
	HomeAway     string            `json:"homeAway,omitempty"`
	Availability map[string]string `json:"availability"`
}

type statLineDTO struct {
	Goals   int `json:"goals"`
	Assists int `json:"assists"`
}

type resultDTO struct {
	FixtureID     string                 `json:"fixtureId"`
	TeamID        string                 `json:"teamId"`
	HomeTeamGoals int                    `json:"homeTeamGoals"`
	AwayTeamGoals int                    `json:"awayTeamGoals"`
	IsHomeFixture bool                   `json:"isHomeFixture"`
	Outcome       string                 `json:"outcome"`
	PlayerStats   map[string]statLineDTO `json:"playerStats"`
	SubmittedAt   string                 `json:"submittedAt"`
	UpdatedAt     string                 `json:"updatedAt"`
}

type postDTO struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	AuthorID   string `json:"authorId"`
	AuthorName string `json:"authorName"`
	AuthorRole string `json:"authorRole"`
	TeamID     string `json:"teamId,omitempty"`
	ClubID     string `json:"clubId,omitempty"`
	CreatedAt  string `json:"createdAt"`
}

type awardDTO struct {
	ID        string `json:"id"`
	TeamID    string `json:"teamId"`
	Title     string `json:"title"`
	Recipient string `json:"recipient"`
	Month     int    `json:"month"`
	Year      int    `json:"year"`
}

type dashboardDTO struct {
	Teams          []teamDTO   `json:"teams"`
	UpcomingEvents []eventDTO  `json:"upcomingEvents"`
	LatestPosts    []postDTO   `json:"latestPosts"`
	RecentResults  []resultDTO `json:"recentResults"`
}

func userToDTO(v user.User) userDTO {
	roles := make([]string, 0, len(v.Roles))
	for _, r := range v.Roles {
		roles = append(roles, string(r))
	}

	return userDTO{
		ID:      v.ID,
		Email:   v.Email,
		Roles:   roles,
		ClubID:  v.ClubID,
		TeamIDs: append([]string{}, v.TeamIDs...),
	}
}

func clubToDTO(v club.Club) clubDTO {
	return clubDTO{
		ID:           v.ID,
		Name:         v.Name,
		Code:         v.Code,
		TotalTeams:   v.TotalTeams,
		TotalPlayers: v.TotalPlayers,
	}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:       v.ID,
		ClubID:   v.ClubID,
		Name:     v.Name,
		AgeGroup: string(v.AgeGroup),
		Code:     v.Code,
		Players:  len(v.PlayerIDs),
		Wins:     v.Wins,
		Draws:    v.Draws,
		Losses:   v.Losses,
	}
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:          v.ID,
		Name:        v.Name,
		DateOfBirth: v.DateOfBirth.UTC().Format("2006-01-02"),
		TeamID:      v.TeamID,
		Attendance:  v.Attendance,
		TotalEvents: v.TotalEvents,
	}
}

func eventToDTO(v event.Event) eventDTO {
	availability := make(map[string]string, len(v.Availability))
	for playerID, status := range v.Availability {
		availability[playerID] = string(status)
	}

	return eventDTO{
		ID:           v.ID,
		TeamID:       v.TeamID,
		Type:         string(v.Type),
		Friendly:     v.Friendly,
		Name:         v.Name,
		Opponent:     v.Opponent,
		Location:     v.Location,
		StartTime:    v.StartTime.UTC().Format(time.RFC3339),
		EndTime:      v.EndTime.UTC().Format(time.RFC3339),
		HomeAway:     string(v.HomeAway),
		Availability: availability,
	}
}

func resultToDTO(v result.MatchResult) resultDTO {
	stats := make(map[string]statLineDTO, len(v.PlayerStats))
	for playerID, line := range v.PlayerStats {
		stats[playerID] = statLineDTO{Goals: line.Goals, Assists: line.Assists}
	}

	return resultDTO{
		FixtureID:     v.FixtureID,
		TeamID:        v.TeamID,
		HomeTeamGoals: v.HomeTeamGoals,
		AwayTeamGoals: v.AwayTeamGoals,
		IsHomeFixture: v.IsHomeFixture,
		Outcome:       string(v.Outcome),
		PlayerStats:   stats,
		SubmittedAt:   v.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func postToDTO(v post.Post) postDTO {
	return postDTO{
		ID:         v.ID,
		Type:       string(v.Type),
		Title:      v.Title,
		Content:    v.Content,
		AuthorID:   v.AuthorID,
		AuthorName: v.AuthorName,
		AuthorRole: v.AuthorRole,
		TeamID:     v.TeamID,
		ClubID:     v.ClubID,
		CreatedAt:  v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func awardToDTO(v award.Award) awardDTO {
	return awardDTO{
		ID:        v.ID,
		TeamID:    v.TeamID,
		Title:     v.Title,
		Recipient: v.Recipient,
		Month:     v.Month,
		Year:      v.Year,
	}
}

func dashboardToDTO(v usecase.Dashboard) dashboardDTO {
	teams := make([]teamDTO, 0, len(v.Teams))
	for _, t := range v.Teams {
		teams = append(teams, teamToDTO(t))
	}

	events := make([]eventDTO, 0, len(v.UpcomingEvents))
	for _, e := range v.UpcomingEvents {
		events = append(events, eventToDTO(e))
	}

	posts := make([]postDTO, 0, len(v.LatestPosts))
	for _, p := range v.LatestPosts {
		posts = append(posts, postToDTO(p))
	}

	results := make([]resultDTO, 0, len(v.RecentResults))
	for _, res := range v.RecentResults {
		results = append(results, resultToDTO(res))
	}

	return dashboardDTO{
		Teams:          teams,
		UpcomingEvents: events,
		LatestPosts:    posts,
		RecentResults:  results,
	}
}
