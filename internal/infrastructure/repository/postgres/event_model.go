package postgres

import (
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/joehodgson0/teamhub/internal/domain/event"
)

type eventTableModel struct {
	ID           string    `db:"id"`
	TeamID       string    `db:"team_id"`
	Type         string    `db:"type"`
	Friendly     bool      `db:"friendly"`
	Name         string    `db:"name"`
	Opponent     string    `db:"opponent"`
	Location     string    `db:"location"`
	StartTime    time.Time `db:"start_time"`
	EndTime      time.Time `db:"end_time"`
	HomeAway     string    `db:"home_away"`
	Availability []byte    `db:"availability"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (m eventTableModel) toDomain() (event.Event, error) {
	availability := map[string]event.Availability{}
	if len(m.Availability) > 0 {
		if err := sonic.Unmarshal(m.Availability, &availability); err != nil {
			return event.Event{}, fmt.Errorf("decode availability for event %s: %w", m.ID, err)
		}
	}

	return event.Event{
		ID:           m.ID,
		TeamID:       m.TeamID,
		Type:         event.Type(m.Type),
		Friendly:     m.Friendly,
		Name:         m.Name,
		Opponent:     m.Opponent,
		Location:     m.Location,
		StartTime:    m.StartTime,
		EndTime:      m.EndTime,
		HomeAway:     event.HomeAway(m.HomeAway),
		Availability: availability,
	}, nil
}

func encodeAvailability(availability map[string]event.Availability) ([]byte, error) {
	if availability == nil {
		availability = map[string]event.Availability{}
	}
	encoded, err := sonic.Marshal(availability)
	if err != nil {
		return nil, fmt.Errorf("encode availability: %w", err)
	}
	return encoded, nil
}
