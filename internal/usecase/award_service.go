package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/joehodgson0/teamhub/internal/domain/award"
	"github.com/joehodgson0/teamhub/internal/domain/player"
	"github.com/joehodgson0/teamhub/internal/domain/team"
	"github.com/joehodgson0/teamhub/internal/domain/user"
	"github.com/joehodgson0/teamhub/internal/platform/logging"
)

type AwardService struct {
	awardRepo  award.Repository
	membership membershipResolver
	logger     *logging.Logger
}

func NewAwardService(
	awardRepo award.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	logger *logging.Logger,
) *AwardService {
	if logger == nil {
		logger = logging.Default()
	}

	return &AwardService{
		awardRepo:  awardRepo,
		membership: membershipResolver{playerRepo: playerRepo, teamRepo: teamRepo},
		logger:     logger,
	}
}

// ListByTeam returns the awards for one team, newest first. The team must be
// in the caller's eligible set.
func (s *AwardService) ListByTeam(ctx context.Context, caller user.User, teamID string) ([]award.Award, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AwardService.ListByTeam")
	defer span.End()

	m, err := s.membership.resolve(ctx, caller, false)
	if err != nil {
		return nil, err
	}
	if _, ok := m.TeamScope()[teamID]; !ok {
		return nil, fmt.Errorf("%w: team %s is not visible to caller", ErrForbidden, teamID)
	}

	awards, err := s.awardRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list awards: %w", err)
	}

	sort.SliceStable(awards, func(i, j int) bool {
		if awards[i].Year != awards[j].Year {
			return awards[i].Year > awards[j].Year
		}
		return awards[i].Month > awards[j].Month
	})

	return awards, nil
}
