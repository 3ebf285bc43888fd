package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/joehodgson0/teamhub/internal/domain/player"
	"github.com/joehodgson0/teamhub/internal/domain/post"
	"github.com/joehodgson0/teamhub/internal/domain/team"
	"github.com/joehodgson0/teamhub/internal/domain/user"
	"github.com/joehodgson0/teamhub/internal/domain/visibility"
	idgen "github.com/joehodgson0/teamhub/internal/platform/id"
	"github.com/joehodgson0/teamhub/internal/platform/logging"
)

const (
	PostScopeClub = "club"
	PostScopeTeam = "team"
)

// CreatePostInput is the incoming payload for publishing a post.
type CreatePostInput struct {
	Type    string
	Scope   string
	TeamID  string
	Title   string
	Content string
}

type PostService struct {
	postRepo   post.Repository
	membership membershipResolver
	notifier   Notifier
	idGen      idgen.Generator
	logger     *logging.Logger
	now        func() time.Time
}

func NewPostService(
	postRepo post.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	notifier Notifier,
	idGen idgen.Generator,
	logger *logging.Logger,
) *PostService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PostService{
		postRepo:   postRepo,
		membership: membershipResolver{playerRepo: playerRepo, teamRepo: teamRepo},
		notifier:   notifier,
		idGen:      idGen,
		logger:     logger,
		now:        time.Now,
	}
}

// Create publishes a post scoped to exactly one of the caller's club or a
// team the caller manages.
func (s *PostService) Create(ctx context.Context, caller user.User, input CreatePostInput) (post.Post, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PostService.Create")
	defer span.End()

	postType := post.Type(strings.ToLower(strings.TrimSpace(input.Type)))
	if _, ok := post.AllTypes[postType]; !ok {
		return post.Post{}, fmt.Errorf("%w: unknown post type %q", ErrInvalidInput, input.Type)
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return post.Post{}, fmt.Errorf("%w: post title is required", ErrInvalidInput)
	}

	p := post.Post{
		Type:       postType,
		Title:      title,
		Content:    strings.TrimSpace(input.Content),
		AuthorID:   caller.ID,
		AuthorName: caller.Email,
		CreatedAt:  s.now().UTC(),
	}
	if caller.HasRole(user.RoleCoach) {
		p.AuthorRole = string(user.RoleCoach)
	} else if caller.HasRole(user.RoleParent) {
		p.AuthorRole = string(user.RoleParent)
	}

	scope := strings.ToLower(strings.TrimSpace(input.Scope))
	switch scope {
	case PostScopeClub:
		if caller.ClubID == "" {
			return post.Post{}, fmt.Errorf("%w: user has no club", ErrInvalidInput)
		}
		if strings.TrimSpace(input.TeamID) != "" {
			return post.Post{}, fmt.Errorf("%w: %v", ErrInvalidInput, post.ErrBadScope)
		}
		p.ClubID = caller.ClubID
	case PostScopeTeam:
		teamID := strings.TrimSpace(input.TeamID)
		if teamID == "" {
			return post.Post{}, fmt.Errorf("%w: %v", ErrInvalidInput, post.ErrBadScope)
		}
		if !caller.ManagesTeam(teamID) {
			return post.Post{}, fmt.Errorf("%w: caller does not manage team %s", ErrForbidden, teamID)
		}
		p.TeamID = teamID
	default:
		return post.Post{}, fmt.Errorf("%w: scope must be %q or %q", ErrInvalidInput, PostScopeClub, PostScopeTeam)
	}

	postID, err := s.idGen.NewID()
	if err != nil {
		return post.Post{}, fmt.Errorf("generate post id: %w", err)
	}
	p.ID = postID

	if err := p.Validate(); err != nil {
		return post.Post{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.postRepo.Create(ctx, p); err != nil {
		return post.Post{}, fmt.Errorf("create post: %w", err)
	}

	s.logger.InfoContext(ctx, "post published", "post_id", p.ID, "type", p.Type, "team_id", p.TeamID, "club_id", p.ClubID)

	if s.notifier != nil {
		if err := s.notifier.Publish(ctx, "post.published", p); err != nil {
			s.logger.WarnContext(ctx, "post notification failed", "post_id", p.ID, "error", err)
		}
	}

	return p, nil
}

// ListVisible returns the caller's club-wide posts plus team posts for
// eligible teams, newest first.
func (s *PostService) ListVisible(ctx context.Context, caller user.User) ([]post.Post, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PostService.ListVisible")
	defer span.End()

	m, err := s.membership.resolve(ctx, caller, false)
	if err != nil {
		return nil, err
	}

	var candidates []post.Post
	if caller.ClubID != "" {
		clubWide, err := s.postRepo.ListClubWide(ctx, caller.ClubID)
		if err != nil {
			return nil, fmt.Errorf("list club posts: %w", err)
		}
		candidates = append(candidates, clubWide...)
	}

	scope := m.TeamScope()
	ids := make([]string, 0, len(scope))
	for id := range scope {
		ids = append(ids, id)
	}
	teamPosts, err := s.postRepo.ListByTeams(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list team posts: %w", err)
	}
	candidates = append(candidates, teamPosts...)

	visible := visibility.FilterPosts(m, candidates)
	sort.SliceStable(visible, func(i, j int) bool { return visible[i].CreatedAt.After(visible[j].CreatedAt) })

	return visible, nil
}
