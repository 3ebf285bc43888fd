package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/joehodgson0/teamhub/internal/domain/club"
	"github.com/joehodgson0/teamhub/internal/domain/player"
	"github.com/joehodgson0/teamhub/internal/domain/team"
	"github.com/joehodgson0/teamhub/internal/domain/user"
	idgen "github.com/joehodgson0/teamhub/internal/platform/id"
	"github.com/joehodgson0/teamhub/internal/platform/logging"
)

// CreatePlayerInput is the incoming payload for registering a dependent.
type CreatePlayerInput struct {
	Name        string
	DateOfBirth time.Time
}

type PlayerService struct {
	playerRepo player.Repository
	teamRepo   team.Repository
	clubRepo   club.Repository
	idGen      idgen.Generator
	logger     *logging.Logger
}

func NewPlayerService(
	playerRepo player.Repository,
	teamRepo team.Repository,
	clubRepo club.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		clubRepo:   clubRepo,
		idGen:      idGen,
		logger:     logger,
	}
}

func (s *PlayerService) Create(ctx context.Context, caller user.User, input CreatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	if !caller.HasRole(user.RoleParent) {
		return player.Player{}, fmt.Errorf("%w: only parents can register players", ErrForbidden)
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return player.Player{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if input.DateOfBirth.IsZero() {
		return player.Player{}, fmt.Errorf("%w: player date of birth is required", ErrInvalidInput)
	}

	playerID, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	p := player.Player{
		ID:          playerID,
		Name:        name,
		DateOfBirth: input.DateOfBirth,
		ParentID:    caller.ID,
	}
	if err := p.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Create(ctx, p); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	s.logger.InfoContext(ctx, "player registered", "player_id", p.ID, "parent_id", caller.ID)

	return p, nil
}

// JoinTeamByCode rosters one of the caller's players onto the team behind a
// join code: sets the player's team, appends to the team roster, and bumps
// the club's informational player total.
func (s *PlayerService) JoinTeamByCode(ctx context.Context, caller user.User, playerID, code string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.JoinTeamByCode")
	defer span.End()

	if !caller.HasRole(user.RoleParent) {
		return player.Player{}, fmt.Errorf("%w: only parents can roster players", ErrForbidden)
	}

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != idgen.JoinCodeLength {
		return player.Player{}, fmt.Errorf("%w: team code must be %d characters", ErrInvalidInput, idgen.JoinCodeLength)
	}

	p, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	if p.ParentID != caller.ID {
		return player.Player{}, fmt.Errorf("%w: player belongs to a different parent", ErrForbidden)
	}

	t, exists, err := s.teamRepo.GetByCode(ctx, code)
	if err != nil {
		return player.Player{}, fmt.Errorf("get team by code: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: no team for code", ErrNotFound)
	}

	if p.TeamID == t.ID {
		return p, nil
	}
	if p.TeamID != "" {
		return player.Player{}, fmt.Errorf("%w: player is already rostered to a team", ErrInvalidInput)
	}

	p.TeamID = t.ID
	if err := s.playerRepo.Update(ctx, p); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}

	if !t.HasPlayer(p.ID) {
		t.PlayerIDs = append(t.PlayerIDs, p.ID)
		if err := s.teamRepo.Update(ctx, t); err != nil {
			return player.Player{}, fmt.Errorf("update team roster: %w", err)
		}
	}

	s.bumpClubPlayerTotal(ctx, t.ClubID)

	s.logger.InfoContext(ctx, "player joined team", "player_id", p.ID, "team_id", t.ID)

	return p, nil
}

func (s *PlayerService) ListMine(ctx context.Context, caller user.User) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListMine")
	defer span.End()

	players, err := s.playerRepo.ListByParent(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("list players by parent: %w", err)
	}

	return players, nil
}

func (s *PlayerService) bumpClubPlayerTotal(ctx context.Context, clubID string) {
	c, exists, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil || !exists {
		s.logger.WarnContext(ctx, "skip club totals update", "club_id", clubID, "error", err)
		return
	}
	c.TotalPlayers++
	if err := s.clubRepo.Update(ctx, c); err != nil {
		s.logger.WarnContext(ctx, "club totals update failed", "club_id", clubID, "error", err)
	}
}
