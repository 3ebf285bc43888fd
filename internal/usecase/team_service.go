package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/joehodgson0/teamhub/internal/domain/club"
	"github.com/joehodgson0/teamhub/internal/domain/player"
	"github.com/joehodgson0/teamhub/internal/domain/team"
	"github.com/joehodgson0/teamhub/internal/domain/user"
	"github.com/joehodgson0/teamhub/internal/domain/visibility"
	idgen "github.com/joehodgson0/teamhub/internal/platform/id"
	"github.com/joehodgson0/teamhub/internal/platform/logging"
)

// CreateTeamInput is the incoming payload for team creation.
type CreateTeamInput struct {
	Name     string
	AgeGroup string
}

type TeamService struct {
	teamRepo   team.Repository
	clubRepo   club.Repository
	userRepo   user.Repository
	membership membershipResolver
	idGen      idgen.Generator
	logger     *logging.Logger
}

func NewTeamService(
	teamRepo team.Repository,
	clubRepo club.Repository,
	userRepo user.Repository,
	playerRepo player.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TeamService{
		teamRepo:   teamRepo,
		clubRepo:   clubRepo,
		userRepo:   userRepo,
		membership: membershipResolver{playerRepo: playerRepo, teamRepo: teamRepo},
		idGen:      idGen,
		logger:     logger,
	}
}

func (s *TeamService) Create(ctx context.Context, caller user.User, input CreateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	if !caller.HasRole(user.RoleCoach) {
		return team.Team{}, fmt.Errorf("%w: only coaches can create teams", ErrForbidden)
	}
	if caller.ClubID == "" {
		return team.Team{}, fmt.Errorf("%w: join a club before creating teams", ErrInvalidInput)
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return team.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}
	ageGroup := team.AgeGroup(strings.ToLower(strings.TrimSpace(input.AgeGroup)))
	if _, ok := team.AllAgeGroups[ageGroup]; !ok {
		return team.Team{}, fmt.Errorf("%w: unknown age group %q", ErrInvalidInput, input.AgeGroup)
	}

	teamID, err := s.idGen.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}
	code, err := idgen.NewJoinCode()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team code: %w", err)
	}

	t := team.Team{
		ID:       teamID,
		ClubID:   caller.ClubID,
		Name:     name,
		AgeGroup: ageGroup,
		Code:     code,
	}
	if err := t.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.teamRepo.Create(ctx, t); err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	caller.TeamIDs = appendUnique(caller.TeamIDs, t.ID)
	if err := s.userRepo.Update(ctx, caller); err != nil {
		return team.Team{}, fmt.Errorf("attach team to coach: %w", err)
	}

	s.bumpClubTotals(ctx, caller.ClubID, 1, 0)

	s.logger.InfoContext(ctx, "team created", "team_id", t.ID, "club_id", t.ClubID, "coach_id", caller.ID)

	return t, nil
}

// JoinByCode adds an existing team to a coach's managed set. Joining a team
// the coach already manages is a no-op.
func (s *TeamService) JoinByCode(ctx context.Context, caller user.User, code string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.JoinByCode")
	defer span.End()

	if !caller.HasRole(user.RoleCoach) {
		return team.Team{}, fmt.Errorf("%w: only coaches can join teams by code", ErrForbidden)
	}

	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != idgen.JoinCodeLength {
		return team.Team{}, fmt.Errorf("%w: team code must be %d characters", ErrInvalidInput, idgen.JoinCodeLength)
	}

	t, exists, err := s.teamRepo.GetByCode(ctx, code)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by code: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: no team for code", ErrNotFound)
	}
	if caller.ClubID != "" && caller.ClubID != t.ClubID {
		return team.Team{}, fmt.Errorf("%w: team belongs to a different club", ErrForbidden)
	}

	if caller.ManagesTeam(t.ID) {
		return t, nil
	}

	caller.TeamIDs = appendUnique(caller.TeamIDs, t.ID)
	if caller.ClubID == "" {
		caller.ClubID = t.ClubID
	}
	if err := s.userRepo.Update(ctx, caller); err != nil {
		return team.Team{}, fmt.Errorf("attach team to coach: %w", err)
	}

	s.logger.InfoContext(ctx, "coach joined team", "team_id", t.ID, "coach_id", caller.ID)

	return t, nil
}

// ListVisible returns the teams the caller is entitled to see, union across
// roles, ordered by name.
func (s *TeamService) ListVisible(ctx context.Context, caller user.User) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListVisible")
	defer span.End()

	m, err := s.membership.resolve(ctx, caller, false)
	if err != nil {
		return nil, err
	}

	scope := m.TeamScope()
	ids := make([]string, 0, len(scope))
	for id := range scope {
		ids = append(ids, id)
	}

	teams, err := s.teamRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get teams by ids: %w", err)
	}

	visible := visibility.FilterTeams(m, teams)
	sort.SliceStable(visible, func(i, j int) bool { return visible[i].Name < visible[j].Name })

	return visible, nil
}

func (s *TeamService) bumpClubTotals(ctx context.Context, clubID string, teams, players int) {
	c, exists, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil || !exists {
		s.logger.WarnContext(ctx, "skip club totals update", "club_id", clubID, "error", err)
		return
	}
	c.TotalTeams += teams
	c.TotalPlayers += players
	if err := s.clubRepo.Update(ctx, c); err != nil {
		// Totals are informational; a failed bump is logged, not fatal.
		s.logger.WarnContext(ctx, "club totals update failed", "club_id", clubID, "error", err)
	}
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
