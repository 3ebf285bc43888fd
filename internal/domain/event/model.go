package event

import (
	"fmt"
	"time"
)

type Type string

const (
	TypeMatch      Type = "match"
	TypeTournament Type = "tournament"
	TypeTraining   Type = "training"
	TypeSocial     Type = "social"
)

var AllTypes = map[Type]struct{}{
	TypeMatch:      {},
	TypeTournament: {},
	TypeTraining:   {},
	TypeSocial:     {},
}

type HomeAway string

const (
	HomeAwayHome HomeAway = "home"
	HomeAwayAway HomeAway = "away"
)

type Availability string

const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityUnavailable Availability = "unavailable"
	AvailabilityPending     Availability = "pending"
)

var AllAvailabilities = map[Availability]struct{}{
	AvailabilityAvailable:   {},
	AvailabilityUnavailable: {},
	AvailabilityPending:     {},
}

// Event is a scheduled occurrence owned by one team. Opponent and HomeAway
// are meaningful for matches only. Availability maps player ID to that
// player's availability status; entries may be added or overwritten at any
// time before or after the event.
type Event struct {
	ID           string
	TeamID       string
	Type         Type
	Friendly     bool
	Name         string
	Opponent     string
	Location     string
	StartTime    time.Time
	EndTime      time.Time
	HomeAway     HomeAway
	Availability map[string]Availability
}

func (e Event) IsMatch() bool {
	return e.Type == TypeMatch
}

// Completed reports whether the event's end time has passed. A fixture
// becomes "completed" implicitly; there is no stored lifecycle state.
func (e Event) Completed(now time.Time) bool {
	return !e.EndTime.IsZero() && e.EndTime.Before(now)
}

func (e Event) IsHomeFixture() bool {
	return e.HomeAway == HomeAwayHome
}

func (e Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("event id is required")
	}
	if e.TeamID == "" {
		return fmt.Errorf("event team id is required")
	}
	if _, ok := AllTypes[e.Type]; !ok {
		return fmt.Errorf("unknown event type %q", e.Type)
	}
	if e.StartTime.IsZero() || e.EndTime.IsZero() {
		return fmt.Errorf("event start and end times are required")
	}
	if !e.EndTime.After(e.StartTime) {
		return fmt.Errorf("event end time must be after start time")
	}
	if e.HomeAway != "" && e.HomeAway != HomeAwayHome && e.HomeAway != HomeAwayAway {
		return fmt.Errorf("unknown home/away value %q", e.HomeAway)
	}
	if !e.IsMatch() && e.Opponent != "" {
		return fmt.Errorf("opponent is only valid for matches")
	}
	return nil
}
