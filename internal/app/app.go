package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/joehodgson0/teamhub/internal/config"
	"github.com/joehodgson0/teamhub/internal/domain/award"
	"github.com/joehodgson0/teamhub/internal/domain/club"
	"github.com/joehodgson0/teamhub/internal/domain/event"
	"github.com/joehodgson0/teamhub/internal/domain/player"
	"github.com/joehodgson0/teamhub/internal/domain/post"
	"github.com/joehodgson0/teamhub/internal/domain/result"
	"github.com/joehodgson0/teamhub/internal/domain/team"
	"github.com/joehodgson0/teamhub/internal/domain/user"
	"github.com/joehodgson0/teamhub/internal/infrastructure/notify"
	"github.com/joehodgson0/teamhub/internal/infrastructure/repository/memory"
	"github.com/joehodgson0/teamhub/internal/infrastructure/repository/postgres"
	"github.com/joehodgson0/teamhub/internal/interfaces/httpapi"
	"github.com/joehodgson0/teamhub/internal/platform/cache"
	idgen "github.com/joehodgson0/teamhub/internal/platform/id"
	"github.com/joehodgson0/teamhub/internal/platform/logging"
	"github.com/joehodgson0/teamhub/internal/usecase"
)

type repositories struct {
	users   user.Repository
	clubs   club.Repository
	teams   team.Repository
	players player.Repository
	events  event.Repository
	results result.Repository
	posts   post.Repository
	awards  award.Repository
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	var notifier usecase.Notifier
	if cfg.WebhookEnabled {
		notifier = notify.NewWebhookPublisher(notify.WebhookPublisherConfig{
			URL:     cfg.WebhookURL,
			Token:   cfg.WebhookToken,
			Timeout: cfg.WebhookTimeout,
		}, logger)
	}

	gen := idgen.NewRandomGenerator()
	authService := usecase.NewAuthService(repos.users, gen, logger)
	clubService := usecase.NewClubService(repos.clubs, repos.users, gen, cache.NewStore(cfg.CodeCacheTTL), logger)
	teamService := usecase.NewTeamService(repos.teams, repos.clubs, repos.users, repos.players, gen, logger)
	playerService := usecase.NewPlayerService(repos.players, repos.teams, repos.clubs, gen, logger)
	eventService := usecase.NewEventService(repos.events, repos.teams, repos.players, gen, logger)
	resultService := usecase.NewResultService(repos.events, repos.teams, repos.players, repos.results, notifier, logger)
	postService := usecase.NewPostService(repos.posts, repos.teams, repos.players, notifier, gen, logger)
	awardService := usecase.NewAwardService(repos.awards, repos.teams, repos.players, logger)
	dashboardService := usecase.NewDashboardService(teamService, eventService, postService, resultService, logger)

	sessions := httpapi.NewSessionManager([]byte(cfg.SessionSecret), cfg.SessionSecureOnly)
	handler := httpapi.NewHandler(
		authService,
		clubService,
		teamService,
		playerService,
		eventService,
		resultService,
		postService,
		awardService,
		dashboardService,
		sessions,
		logger,
	)
	router := httpapi.NewRouter(handler, sessions, authService, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, error) {
	if cfg.UseInMemoryStore() {
		logger.Info("storage backend selected", "backend", "memory", "seeded", true)
		return repositories{
			users:   memory.NewUserRepository(memory.SeedUsers()),
			clubs:   memory.NewClubRepository(memory.SeedClubs()),
			teams:   memory.NewTeamRepository(memory.SeedTeams()),
			players: memory.NewPlayerRepository(memory.SeedPlayers()),
			events:  memory.NewEventRepository(memory.SeedEvents()),
			results: memory.NewResultRepository(memory.SeedResults()),
			posts:   memory.NewPostRepository(memory.SeedPosts()),
			awards:  memory.NewAwardRepository(memory.SeedAwards()),
		}, nil
	}

	db, err := openDB(cfg.DBURL)
	if err != nil {
		return repositories{}, fmt.Errorf("open database: %w", err)
	}

	logger.Info("storage backend selected", "backend", "postgres", "database", dbNameFromURL(cfg.DBURL))
	return repositories{
		users:   postgres.NewUserRepository(db),
		clubs:   postgres.NewClubRepository(db),
		teams:   postgres.NewTeamRepository(db),
		players: postgres.NewPlayerRepository(db),
		events:  postgres.NewEventRepository(db),
		results: postgres.NewResultRepository(db),
		posts:   postgres.NewPostRepository(db),
		awards:  postgres.NewAwardRepository(db),
	}, nil
}

func openDB(dsn string) (*sqlx.DB, error) {
	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dsn)),
	)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	return db, nil
}
