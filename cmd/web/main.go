package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/robfig/cron"

	"github.com/jkoskela/fitweek/internal/auth"
	"github.com/jkoskela/fitweek/internal/catalog"
	"github.com/jkoskela/fitweek/internal/envstruct"
	"github.com/jkoskela/fitweek/internal/errors"
	"github.com/jkoskela/fitweek/internal/hydration"
	"github.com/jkoskela/fitweek/internal/logging"
	"github.com/jkoskela/fitweek/internal/mealplan"
	"github.com/jkoskela/fitweek/internal/progress"
	"github.com/jkoskela/fitweek/internal/scrape"
	"github.com/jkoskela/fitweek/internal/sqlite"
	"github.com/jkoskela/fitweek/internal/workoutplan"
)

type application struct {
	logger          *slog.Logger
	sessionManager  *scs.SessionManager
	authService     *auth.Service
	tokenIssuer     *auth.TokenIssuer
	mealplanService *mealplan.Service
	workoutService  *workoutplan.Service
	progressRepo    *progress.Repository
	hydrationRepo   *hydration.Repository
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"FITWEEK_ADDR" envDefault:"localhost:8080"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"FITWEEK_SQLITE_URL" envDefault:"./fitweek.sqlite3"`
	// TokenSecret signs API tokens. Override it in every real deployment.
	TokenSecret string `env:"FITWEEK_TOKEN_SECRET" envDefault:"development-only-secret"`
	// TokenTTLHours bounds API token lifetime.
	TokenTTLHours int `env:"FITWEEK_TOKEN_TTL_HOURS" envDefault:"24"`
	// ScrapeEnabled toggles the recipe candidate fetcher.
	ScrapeEnabled bool `env:"FITWEEK_SCRAPE_ENABLED" envDefault:"true"`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	sessionManager := initializeSessionManager(db)

	var candidateSource mealplan.CandidateSource
	if cfg.ScrapeEnabled {
		cache := scrape.NewCache(scrape.NewFetcher(logger), logger)
		cache.Refresh(ctx)
		scheduler := cron.New()
		if err = scheduler.AddFunc("@daily", func() { cache.Refresh(context.Background()) }); err != nil {
			return errors.Wrap(err, "schedule cache refresh")
		}
		scheduler.Start()
		defer scheduler.Stop()
		candidateSource = cache
	}

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	app := application{
		logger:          logger,
		sessionManager:  sessionManager,
		authService:     auth.NewService(db, logger),
		tokenIssuer:     auth.NewTokenIssuer(cfg.TokenSecret, time.Duration(cfg.TokenTTLHours)*time.Hour),
		mealplanService: mealplan.NewService(catalog.Meals(), candidateSource, rng, db, logger),
		workoutService:  workoutplan.NewService(catalog.Exercises(), rng, db, logger),
		progressRepo:    progress.NewRepository(db, logger),
		hydrationRepo:   hydration.NewRepository(db, logger),
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr, app.routes()); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func initializeSessionManager(dbs *sqlite.Database) *scs.SessionManager {
	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(dbs.ReadWrite, 24*time.Hour) //nolint:mnd // day
	sessionManager.Lifetime = 12 * time.Hour                                                //nolint:mnd // half a day
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.Secure = true
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteStrictMode
	return sessionManager
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
