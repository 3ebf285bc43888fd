package club

import "fmt"

// Club is the top-level tenant. TotalTeams and TotalPlayers are
// informational counters, not enforced invariants.
type Club struct {
	ID           string
	Name         string
	Code         string
	TotalTeams   int
	TotalPlayers int
}

func (c Club) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("club id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("club name is required")
	}
	if len(c.Code) != 8 {
		return fmt.Errorf("club code must be 8 characters")
	}
	return nil
}
