package player

import (
	"fmt"
	"time"
)

// Player is a dependent managed by a parent user, rostered to at most one
// team. Attendance/TotalEvents are informational counters.
type Player struct {
	ID          string
	Name        string
	DateOfBirth time.Time
	TeamID      string
	ParentID    string
	Attendance  int
	TotalEvents int
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.ParentID == "" {
		return fmt.Errorf("player parent id is required")
	}
	if p.DateOfBirth.IsZero() {
		return fmt.Errorf("player date of birth is required")
	}
	return nil
}

// TeamIDs returns the distinct team IDs the given players are rostered to.
// Order follows first appearance.
func TeamIDs(players []Player) []string {
	seen := make(map[string]struct{}, len(players))
	out := make([]string, 0, len(players))
	for _, p := range players {
		if p.TeamID == "" {
			continue
		}
		if _, ok := seen[p.TeamID]; ok {
			continue
		}
		seen[p.TeamID] = struct{}{}
		out = append(out, p.TeamID)
	}
	return out
}
