package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/joehodgson0/teamhub/internal/domain/event"
)

type EventRepository struct {
	mu   sync.RWMutex
	byID map[string]event.Event
}

func NewEventRepository(events []event.Event) *EventRepository {
	r := &EventRepository{byID: make(map[string]event.Event)}
	for _, item := range events {
		r.byID[item.ID] = cloneEvent(item)
	}

	return r
}

func (r *EventRepository) GetByID(_ context.Context, id string) (event.Event, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[id]
	return cloneEvent(item), ok, nil
}

func (r *EventRepository) ListByTeams(_ context.Context, teamIDs []string) ([]event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		wanted[id] = struct{}{}
	}

	var out []event.Event
	for _, item := range r.byID {
		if _, ok := wanted[item.TeamID]; ok {
			out = append(out, cloneEvent(item))
		}
	}

	return out, nil
}

func (r *EventRepository) Create(_ context.Context, e event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[e.ID] = cloneEvent(e)
	return nil
}

func (r *EventRepository) Update(_ context.Context, e event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[e.ID] = cloneEvent(e)
	return nil
}

func (r *EventRepository) SetAvailability(_ context.Context, eventID, playerID string, status event.Availability) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.byID[eventID]
	if !ok {
		return fmt.Errorf("event %s not found", eventID)
	}
	item = cloneEvent(item)
	if item.Availability == nil {
		item.Availability = make(map[string]event.Availability)
	}
	item.Availability[playerID] = status
	r.byID[eventID] = item
	return nil
}

func cloneEvent(e event.Event) event.Event {
	out := e
	if e.Availability != nil {
		out.Availability = make(map[string]event.Availability, len(e.Availability))
		for k, v := range e.Availability {
			out.Availability[k] = v
		}
	}
	return out
}
