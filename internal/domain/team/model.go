package team

import "fmt"

type AgeGroup string

const (
	AgeGroupU7     AgeGroup = "u7"
	AgeGroupU8     AgeGroup = "u8"
	AgeGroupU9     AgeGroup = "u9"
	AgeGroupU10    AgeGroup = "u10"
	AgeGroupU11    AgeGroup = "u11"
	AgeGroupU12    AgeGroup = "u12"
	AgeGroupU13    AgeGroup = "u13"
	AgeGroupU14    AgeGroup = "u14"
	AgeGroupU15    AgeGroup = "u15"
	AgeGroupU16    AgeGroup = "u16"
	AgeGroupU18    AgeGroup = "u18"
	AgeGroupSenior AgeGroup = "senior"
)

var AllAgeGroups = map[AgeGroup]struct{}{
	AgeGroupU7: {}, AgeGroupU8: {}, AgeGroupU9: {}, AgeGroupU10: {},
	AgeGroupU11: {}, AgeGroupU12: {}, AgeGroupU13: {}, AgeGroupU14: {},
	AgeGroupU15: {}, AgeGroupU16: {}, AgeGroupU18: {}, AgeGroupSenior: {},
}

// Team belongs to one club. Wins/Draws/Losses form a derived cache that
// must always equal the tally of the team's stored match results; the
// result engine is the sole writer of those three counters.
type Team struct {
	ID        string
	ClubID    string
	Name      string
	AgeGroup  AgeGroup
	Code      string
	PlayerIDs []string
	Wins      int
	Draws     int
	Losses    int
}

func (t Team) HasPlayer(playerID string) bool {
	for _, id := range t.PlayerIDs {
		if id == playerID {
			return true
		}
	}
	return false
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.ClubID == "" {
		return fmt.Errorf("team club id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if _, ok := AllAgeGroups[t.AgeGroup]; !ok {
		return fmt.Errorf("unknown age group %q", t.AgeGroup)
	}
	if len(t.Code) != 8 {
		return fmt.Errorf("team code must be 8 characters")
	}
	return nil
}
