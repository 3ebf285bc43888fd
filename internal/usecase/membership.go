package usecase

import (
	"context"
	"fmt"

	"github.com/joehodgson0/teamhub/internal/domain/player"
	"github.com/joehodgson0/teamhub/internal/domain/team"
	"github.com/joehodgson0/teamhub/internal/domain/user"
	"github.com/joehodgson0/teamhub/internal/domain/visibility"
)

// membershipResolver builds the per-request visibility snapshot. Every list
// operation resolves a fresh Membership; nothing about a user's eligibility
// is cached between requests.
type membershipResolver struct {
	playerRepo player.Repository
	teamRepo   team.Repository
}

// resolve loads the user's players (for the parent scope) and, when asked,
// the club→teams expansion (for the coach result scope).
func (r membershipResolver) resolve(ctx context.Context, u user.User, expandClubTeams bool) (visibility.Membership, error) {
	var players []player.Player
	if u.HasRole(user.RoleParent) {
		var err error
		players, err = r.playerRepo.ListByParent(ctx, u.ID)
		if err != nil {
			return visibility.Membership{}, fmt.Errorf("list players by parent: %w", err)
		}
	}

	var clubTeamIDs []string
	if expandClubTeams && u.HasRole(user.RoleCoach) && u.ClubID != "" {
		teams, err := r.teamRepo.ListByClub(ctx, u.ClubID)
		if err != nil {
			return visibility.Membership{}, fmt.Errorf("list teams by club: %w", err)
		}
		clubTeamIDs = make([]string, 0, len(teams))
		for _, t := range teams {
			clubTeamIDs = append(clubTeamIDs, t.ID)
		}
	}

	return visibility.NewMembership(u, players, clubTeamIDs), nil
}
