package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/joehodgson0/teamhub/internal/domain/event"
	"github.com/joehodgson0/teamhub/internal/domain/player"
	"github.com/joehodgson0/teamhub/internal/domain/team"
	"github.com/joehodgson0/teamhub/internal/domain/user"
	"github.com/joehodgson0/teamhub/internal/domain/visibility"
	idgen "github.com/joehodgson0/teamhub/internal/platform/id"
	"github.com/joehodgson0/teamhub/internal/platform/logging"
)

const (
	WindowUpcoming = "upcoming"
	WindowPast     = "past"
)

// CreateEventInput is the incoming payload for scheduling an event.
type CreateEventInput struct {
	TeamID    string
	Type      string
	Friendly  bool
	Name      string
	Opponent  string
	Location  string
	StartTime time.Time
	EndTime   time.Time
	HomeAway  string
}

type EventService struct {
	eventRepo  event.Repository
	playerRepo player.Repository
	membership membershipResolver
	idGen      idgen.Generator
	logger     *logging.Logger
	now        func() time.Time
}

func NewEventService(
	eventRepo event.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *EventService {
	if logger == nil {
		logger = logging.Default()
	}

	return &EventService{
		eventRepo:  eventRepo,
		playerRepo: playerRepo,
		membership: membershipResolver{playerRepo: playerRepo, teamRepo: teamRepo},
		idGen:      idGen,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *EventService) Create(ctx context.Context, caller user.User, input CreateEventInput) (event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.Create")
	defer span.End()

	input.TeamID = strings.TrimSpace(input.TeamID)
	if input.TeamID == "" {
		return event.Event{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if !caller.ManagesTeam(input.TeamID) {
		return event.Event{}, fmt.Errorf("%w: caller does not manage team %s", ErrForbidden, input.TeamID)
	}

	eventType := event.Type(strings.ToLower(strings.TrimSpace(input.Type)))
	if _, ok := event.AllTypes[eventType]; !ok {
		return event.Event{}, fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, input.Type)
	}

	homeAway := event.HomeAway(strings.ToLower(strings.TrimSpace(input.HomeAway)))
	if homeAway != "" && eventType != event.TypeMatch {
		return event.Event{}, fmt.Errorf("%w: home/away is only valid for matches", ErrInvalidInput)
	}

	eventID, err := s.idGen.NewID()
	if err != nil {
		return event.Event{}, fmt.Errorf("generate event id: %w", err)
	}

	e := event.Event{
		ID:           eventID,
		TeamID:       input.TeamID,
		Type:         eventType,
		Friendly:     input.Friendly,
		Name:         strings.TrimSpace(input.Name),
		Opponent:     strings.TrimSpace(input.Opponent),
		Location:     strings.TrimSpace(input.Location),
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		HomeAway:     homeAway,
		Availability: map[string]event.Availability{},
	}
	if err := e.Validate(); err != nil {
		return event.Event{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.eventRepo.Create(ctx, e); err != nil {
		return event.Event{}, fmt.Errorf("create event: %w", err)
	}

	s.logger.InfoContext(ctx, "event created", "event_id", e.ID, "team_id", e.TeamID, "type", e.Type)

	return e, nil
}

// ListVisible returns the caller's visible events for the requested window:
// "upcoming" keeps events with a start time strictly in the future, soonest
// first; "past" keeps the rest, most recent first.
func (s *EventService) ListVisible(ctx context.Context, caller user.User, window string) ([]event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.ListVisible")
	defer span.End()

	window = strings.ToLower(strings.TrimSpace(window))
	if window == "" {
		window = WindowUpcoming
	}
	if window != WindowUpcoming && window != WindowPast {
		return nil, fmt.Errorf("%w: unknown window %q", ErrInvalidInput, window)
	}

	m, err := s.membership.resolve(ctx, caller, false)
	if err != nil {
		return nil, err
	}

	scope := m.TeamScope()
	ids := make([]string, 0, len(scope))
	for id := range scope {
		ids = append(ids, id)
	}

	events, err := s.eventRepo.ListByTeams(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list events by teams: %w", err)
	}

	visible := visibility.FilterEvents(m, events)
	now := s.now()

	out := make([]event.Event, 0, len(visible))
	for _, e := range visible {
		if window == WindowUpcoming && e.StartTime.After(now) {
			out = append(out, e)
		}
		if window == WindowPast && !e.StartTime.After(now) {
			out = append(out, e)
		}
	}

	if window == WindowUpcoming {
		sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	} else {
		sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime.After(out[j].StartTime) })
	}

	return out, nil
}

// SetAvailability records a player's availability for an event. Parents may
// answer for their own players any time before or after the event.
func (s *EventService) SetAvailability(ctx context.Context, caller user.User, eventID, playerID, status string) (event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.SetAvailability")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	playerID = strings.TrimSpace(playerID)
	availability := event.Availability(strings.ToLower(strings.TrimSpace(status)))

	if eventID == "" || playerID == "" {
		return event.Event{}, fmt.Errorf("%w: event id and player id are required", ErrInvalidInput)
	}
	if _, ok := event.AllAvailabilities[availability]; !ok {
		return event.Event{}, fmt.Errorf("%w: unknown availability %q", ErrInvalidInput, status)
	}

	e, exists, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return event.Event{}, fmt.Errorf("get event: %w", err)
	}
	if !exists {
		return event.Event{}, fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}

	p, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return event.Event{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return event.Event{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	if p.ParentID != caller.ID {
		return event.Event{}, fmt.Errorf("%w: player belongs to a different parent", ErrForbidden)
	}
	if p.TeamID != e.TeamID {
		return event.Event{}, fmt.Errorf("%w: player is not on the event's team", ErrInvalidInput)
	}

	if err := s.eventRepo.SetAvailability(ctx, eventID, playerID, availability); err != nil {
		return event.Event{}, fmt.Errorf("set availability: %w", err)
	}

	if e.Availability == nil {
		e.Availability = map[string]event.Availability{}
	}
	e.Availability[playerID] = availability

	return e, nil
}
