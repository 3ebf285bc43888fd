package result

import (
	"fmt"
	"time"
)

type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
	OutcomeDraw Outcome = "draw"
)

// MaxGoals bounds any single goal or assist figure on a submission.
const MaxGoals = 50

// StatLine is one player's contribution in a single fixture.
type StatLine struct {
	Goals   int
	Assists int
}

// MatchResult holds the recorded scoreline for one fixture, exactly one per
// fixture (submissions upsert). IsHomeFixture is copied from the fixture's
// home/away side at submission time; Outcome is derived from the owning
// team's perspective.
type MatchResult struct {
	FixtureID     string
	TeamID        string
	HomeTeamGoals int
	AwayTeamGoals int
	IsHomeFixture bool
	Outcome       Outcome
	PlayerStats   map[string]StatLine
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OutcomeFromScore derives win/lose/draw from the owning team's perspective.
func OutcomeFromScore(isHomeFixture bool, homeGoals, awayGoals int) Outcome {
	ownGoals, oppGoals := homeGoals, awayGoals
	if !isHomeFixture {
		ownGoals, oppGoals = awayGoals, homeGoals
	}

	switch {
	case ownGoals > oppGoals:
		return OutcomeWin
	case ownGoals < oppGoals:
		return OutcomeLose
	default:
		return OutcomeDraw
	}
}

// TeamGoals returns the owning team's side of the scoreline.
func (r MatchResult) TeamGoals() int {
	if r.IsHomeFixture {
		return r.HomeTeamGoals
	}
	return r.AwayTeamGoals
}

// GoalSum totals the goals attributed to individual players.
func GoalSum(stats map[string]StatLine) int {
	sum := 0
	for _, line := range stats {
		sum += line.Goals
	}
	return sum
}

// PruneStats drops entries that carry neither goals nor assists, so stored
// stats only name players who actually contributed.
func PruneStats(stats map[string]StatLine) map[string]StatLine {
	out := make(map[string]StatLine, len(stats))
	for playerID, line := range stats {
		if line.Goals == 0 && line.Assists == 0 {
			continue
		}
		out[playerID] = line
	}
	return out
}

// Tally counts wins, draws and losses across a team's full result history.
// It is the source of truth the team's cached counters must match.
func Tally(results []MatchResult) (wins, draws, losses int) {
	for _, r := range results {
		switch r.Outcome {
		case OutcomeWin:
			wins++
		case OutcomeDraw:
			draws++
		case OutcomeLose:
			losses++
		}
	}
	return wins, draws, losses
}

func (r MatchResult) Validate() error {
	if r.FixtureID == "" {
		return fmt.Errorf("result fixture id is required")
	}
	if r.TeamID == "" {
		return fmt.Errorf("result team id is required")
	}
	if r.HomeTeamGoals < 0 || r.HomeTeamGoals > MaxGoals {
		return fmt.Errorf("home team goals must be between 0 and %d", MaxGoals)
	}
	if r.AwayTeamGoals < 0 || r.AwayTeamGoals > MaxGoals {
		return fmt.Errorf("away team goals must be between 0 and %d", MaxGoals)
	}
	for playerID, line := range r.PlayerStats {
		if playerID == "" {
			return fmt.Errorf("player stat entry is missing a player id")
		}
		if line.Goals < 0 || line.Goals > MaxGoals {
			return fmt.Errorf("player %s goals must be between 0 and %d", playerID, MaxGoals)
		}
		if line.Assists < 0 || line.Assists > MaxGoals {
			return fmt.Errorf("player %s assists must be between 0 and %d", playerID, MaxGoals)
		}
	}
	if GoalSum(r.PlayerStats) > r.TeamGoals() {
		return fmt.Errorf("player goals exceed team total")
	}
	return nil
}
