package usecase

import (
	"context"

	"github.com/sourcegraph/conc/pool"

	"github.com/joehodgson0/teamhub/internal/domain/event"
	"github.com/joehodgson0/teamhub/internal/domain/post"
	"github.com/joehodgson0/teamhub/internal/domain/result"
	"github.com/joehodgson0/teamhub/internal/domain/team"
	"github.com/joehodgson0/teamhub/internal/domain/user"
	"github.com/joehodgson0/teamhub/internal/platform/logging"
)

const (
	dashboardMaxEvents  = 5
	dashboardMaxPosts   = 5
	dashboardMaxResults = 5
)

// Dashboard is the aggregated home view for a signed-in user.
type Dashboard struct {
	Teams          []team.Team          `json:"teams"`
	UpcomingEvents []event.Event        `json:"upcomingEvents"`
	LatestPosts    []post.Post          `json:"latestPosts"`
	RecentResults  []result.MatchResult `json:"recentResults"`
}

type DashboardService struct {
	teams   *TeamService
	events  *EventService
	posts   *PostService
	results *ResultService
	logger  *logging.Logger
}

func NewDashboardService(
	teams *TeamService,
	events *EventService,
	posts *PostService,
	results *ResultService,
	logger *logging.Logger,
) *DashboardService {
	if logger == nil {
		logger = logging.Default()
	}

	return &DashboardService{
		teams:   teams,
		events:  events,
		posts:   posts,
		results: results,
		logger:  logger,
	}
}

// Load fans out the four dashboard sections concurrently and assembles the
// result. Any section error fails the whole load.
func (s *DashboardService) Load(ctx context.Context, caller user.User) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Load")
	defer span.End()

	var d Dashboard

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		teams, err := s.teams.ListVisible(ctx, caller)
		if err == nil {
			d.Teams = teams
		}
		return err
	})
	p.Go(func(ctx context.Context) error {
		events, err := s.events.ListVisible(ctx, caller, WindowUpcoming)
		if err == nil {
			d.UpcomingEvents = capEvents(events, dashboardMaxEvents)
		}
		return err
	})
	p.Go(func(ctx context.Context) error {
		posts, err := s.posts.ListVisible(ctx, caller)
		if err == nil {
			d.LatestPosts = capPosts(posts, dashboardMaxPosts)
		}
		return err
	})
	p.Go(func(ctx context.Context) error {
		results, err := s.results.ListVisible(ctx, caller)
		if err == nil {
			d.RecentResults = capResults(results, dashboardMaxResults)
		}
		return err
	})

	if err := p.Wait(); err != nil {
		return Dashboard{}, err
	}

	return d, nil
}

func capEvents(in []event.Event, n int) []event.Event {
	if len(in) > n {
		return in[:n]
	}
	return in
}

func capPosts(in []post.Post, n int) []post.Post {
	if len(in) > n {
		return in[:n]
	}
	return in
}

func capResults(in []result.MatchResult, n int) []result.MatchResult {
	if len(in) > n {
		return in[:n]
	}
	return in
}
