package postgres

import (
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/joehodgson0/teamhub/internal/domain/result"
)

type resultTableModel struct {
	FixtureID     string    `db:"fixture_id"`
	TeamID        string    `db:"team_id"`
	HomeTeamGoals int       `db:"home_team_goals"`
	AwayTeamGoals int       `db:"away_team_goals"`
	IsHomeFixture bool      `db:"is_home_fixture"`
	Outcome       string    `db:"outcome"`
	PlayerStats   []byte    `db:"player_stats"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (m resultTableModel) toDomain() (result.MatchResult, error) {
	stats := map[string]result.StatLine{}
	if len(m.PlayerStats) > 0 {
		if err := sonic.Unmarshal(m.PlayerStats, &stats); err != nil {
			return result.MatchResult{}, fmt.Errorf("decode player stats for fixture %s: %w", m.FixtureID, err)
		}
	}

	return result.MatchResult{
		FixtureID:     m.FixtureID,
		TeamID:        m.TeamID,
		HomeTeamGoals: m.HomeTeamGoals,
		AwayTeamGoals: m.AwayTeamGoals,
		IsHomeFixture: m.IsHomeFixture,
		Outcome:       result.Outcome(m.Outcome),
		PlayerStats:   stats,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}, nil
}

func encodePlayerStats(stats map[string]result.StatLine) ([]byte, error) {
	if stats == nil {
		stats = map[string]result.StatLine{}
	}
	encoded, err := sonic.Marshal(stats)
	if err != nil {
		return nil, fmt.Errorf("encode player stats: %w", err)
	}
	return encoded, nil
}
