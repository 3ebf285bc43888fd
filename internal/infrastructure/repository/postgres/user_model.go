package postgres

import (
	"time"

	"github.com/lib/pq"

	"github.com/joehodgson0/teamhub/internal/domain/user"
)

type userTableModel struct {
	ID           string         `db:"id"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	Roles        pq.StringArray `db:"roles"`
	ClubID       string         `db:"club_id"`
	TeamIDs      pq.StringArray `db:"team_ids"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (m userTableModel) toDomain() user.User {
	roles := make([]user.Role, 0, len(m.Roles))
	for _, r := range m.Roles {
		roles = append(roles, user.Role(r))
	}

	return user.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Roles:        roles,
		ClubID:       m.ClubID,
		TeamIDs:      append([]string(nil), m.TeamIDs...),
	}
}

func rolesToStrings(roles []user.Role) pq.StringArray {
	out := make(pq.StringArray, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return out
}
