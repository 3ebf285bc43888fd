package postgres

import (
	"time"

	"github.com/lib/pq"

	"github.com/joehodgson0/teamhub/internal/domain/team"
)

type teamTableModel struct {
	ID        string         `db:"id"`
	ClubID    string         `db:"club_id"`
	Name      string         `db:"name"`
	AgeGroup  string         `db:"age_group"`
	Code      string         `db:"code"`
	PlayerIDs pq.StringArray `db:"player_ids"`
	Wins      int            `db:"wins"`
	Draws     int            `db:"draws"`
	Losses    int            `db:"losses"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:        m.ID,
		ClubID:    m.ClubID,
		Name:      m.Name,
		AgeGroup:  team.AgeGroup(m.AgeGroup),
		Code:      m.Code,
		PlayerIDs: append([]string(nil), m.PlayerIDs...),
		Wins:      m.Wins,
		Draws:     m.Draws,
		Losses:    m.Losses,
	}
}
