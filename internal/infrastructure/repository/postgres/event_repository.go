package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/joehodgson0/teamhub/internal/domain/event"
	qb "github.com/joehodgson0/teamhub/internal/platform/querybuilder"
)

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (event.Event, bool, error) {
	query, args, err := qb.Select("*").From("events").
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return event.Event{}, false, fmt.Errorf("build select event query: %w", err)
	}

	var row eventTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return event.Event{}, false, nil
		}
		return event.Event{}, false, fmt.Errorf("select event: %w", err)
	}

	e, err := row.toDomain()
	if err != nil {
		return event.Event{}, false, err
	}

	return e, true, nil
}

func (r *EventRepository) ListByTeams(ctx context.Context, teamIDs []string) ([]event.Event, error) {
	values := make([]any, 0, len(teamIDs))
	for _, id := range teamIDs {
		values = append(values, id)
	}

	query, args, err := qb.Select("*").From("events").
		Where(qb.In("team_id", values)).
		OrderBy("start_time").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select events by teams query: %w", err)
	}

	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select events by teams: %w", err)
	}

	out := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		e, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, nil
}

func (r *EventRepository) Create(ctx context.Context, e event.Event) error {
	availability, err := encodeAvailability(e.Availability)
	if err != nil {
		return err
	}

	query, args, err := qb.InsertInto("events").
		Columns("id", "team_id", "type", "friendly", "name", "opponent", "location", "start_time", "end_time", "home_away", "availability").
		Values(e.ID, e.TeamID, string(e.Type), e.Friendly, e.Name, e.Opponent, e.Location, e.StartTime, e.EndTime, string(e.HomeAway), availability).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert event query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) Update(ctx context.Context, e event.Event) error {
	availability, err := encodeAvailability(e.Availability)
	if err != nil {
		return err
	}

	query, args, err := qb.Update("events").
		Set("type", string(e.Type)).
		Set("friendly", e.Friendly).
		Set("name", e.Name).
		Set("opponent", e.Opponent).
		Set("location", e.Location).
		Set("start_time", e.StartTime).
		Set("end_time", e.EndTime).
		Set("home_away", string(e.HomeAway)).
		Set("availability", availability).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", e.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update event query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	return nil
}

// SetAvailability patches a single key inside the availability document so
// two parents answering at the same time cannot clobber each other.
func (r *EventRepository) SetAvailability(ctx context.Context, eventID, playerID string, status event.Availability) error {
	const query = `UPDATE events
SET availability = jsonb_set(COALESCE(availability, '{}'::jsonb), ARRAY[$2], to_jsonb($3::text)),
    updated_at = NOW()
WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, eventID, playerID, string(status))
	if err != nil {
		return fmt.Errorf("set event availability: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("event %s not found", eventID)
	}

	return nil
}
