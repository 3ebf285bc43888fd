package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/joehodgson0/teamhub/internal/domain/club"
	"github.com/joehodgson0/teamhub/internal/domain/user"
	"github.com/joehodgson0/teamhub/internal/platform/cache"
	idgen "github.com/joehodgson0/teamhub/internal/platform/id"
	"github.com/joehodgson0/teamhub/internal/platform/logging"
)

type ClubService struct {
	clubRepo  club.Repository
	userRepo  user.Repository
	idGen     idgen.Generator
	codeCache *cache.Store
	logger    *logging.Logger
}

func NewClubService(
	clubRepo club.Repository,
	userRepo user.Repository,
	idGen idgen.Generator,
	codeCache *cache.Store,
	logger *logging.Logger,
) *ClubService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ClubService{
		clubRepo:  clubRepo,
		userRepo:  userRepo,
		idGen:     idGen,
		codeCache: codeCache,
		logger:    logger,
	}
}

func (s *ClubService) Create(ctx context.Context, caller user.User, name string) (club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.Create")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return club.Club{}, fmt.Errorf("%w: club name is required", ErrInvalidInput)
	}
	if caller.ClubID != "" {
		return club.Club{}, fmt.Errorf("%w: user already belongs to a club", ErrInvalidInput)
	}

	clubID, err := s.idGen.NewID()
	if err != nil {
		return club.Club{}, fmt.Errorf("generate club id: %w", err)
	}
	code, err := idgen.NewJoinCode()
	if err != nil {
		return club.Club{}, fmt.Errorf("generate club code: %w", err)
	}

	c := club.Club{ID: clubID, Name: name, Code: code}
	if err := c.Validate(); err != nil {
		return club.Club{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.clubRepo.Create(ctx, c); err != nil {
		return club.Club{}, fmt.Errorf("create club: %w", err)
	}

	caller.ClubID = c.ID
	if err := s.userRepo.Update(ctx, caller); err != nil {
		return club.Club{}, fmt.Errorf("attach creator to club: %w", err)
	}

	s.logger.InfoContext(ctx, "club created", "club_id", c.ID, "user_id", caller.ID)

	return c, nil
}

// JoinByCode associates the caller with the club behind an 8-character join
// code. Code lookups go through a short-TTL cache; the club row itself is
// still read fresh.
func (s *ClubService) JoinByCode(ctx context.Context, caller user.User, code string) (club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.JoinByCode")
	defer span.End()

	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != idgen.JoinCodeLength {
		return club.Club{}, fmt.Errorf("%w: club code must be %d characters", ErrInvalidInput, idgen.JoinCodeLength)
	}

	c, exists, err := s.lookupByCode(ctx, code)
	if err != nil {
		return club.Club{}, err
	}
	if !exists {
		return club.Club{}, fmt.Errorf("%w: no club for code", ErrNotFound)
	}

	if caller.ClubID == c.ID {
		return c, nil
	}
	if caller.ClubID != "" {
		return club.Club{}, fmt.Errorf("%w: user already belongs to a club", ErrInvalidInput)
	}

	caller.ClubID = c.ID
	if err := s.userRepo.Update(ctx, caller); err != nil {
		return club.Club{}, fmt.Errorf("attach user to club: %w", err)
	}

	s.logger.InfoContext(ctx, "user joined club", "club_id", c.ID, "user_id", caller.ID)

	return c, nil
}

func (s *ClubService) GetMine(ctx context.Context, caller user.User) (club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.GetMine")
	defer span.End()

	if caller.ClubID == "" {
		return club.Club{}, fmt.Errorf("%w: user has no club", ErrNotFound)
	}

	c, exists, err := s.clubRepo.GetByID(ctx, caller.ClubID)
	if err != nil {
		return club.Club{}, fmt.Errorf("get club: %w", err)
	}
	if !exists {
		return club.Club{}, fmt.Errorf("%w: club=%s", ErrNotFound, caller.ClubID)
	}

	return c, nil
}

func (s *ClubService) lookupByCode(ctx context.Context, code string) (club.Club, bool, error) {
	cacheKey := "club-code:" + code
	if s.codeCache != nil {
		if cached, ok := s.codeCache.Get(ctx, cacheKey); ok {
			if clubID, ok := cached.(string); ok {
				c, exists, err := s.clubRepo.GetByID(ctx, clubID)
				if err != nil {
					return club.Club{}, false, fmt.Errorf("get club: %w", err)
				}
				if exists && c.Code == code {
					return c, true, nil
				}
				s.codeCache.Delete(ctx, cacheKey)
			}
		}
	}

	c, exists, err := s.clubRepo.GetByCode(ctx, code)
	if err != nil {
		return club.Club{}, false, fmt.Errorf("get club by code: %w", err)
	}
	if exists && s.codeCache != nil {
		s.codeCache.Set(ctx, cacheKey, c.ID)
	}

	return c, exists, nil
}
