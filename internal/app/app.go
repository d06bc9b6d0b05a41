package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	_ "github.com/lib/pq"

	"GazetteDigest/internal/classifier"
	"GazetteDigest/internal/config"
	"GazetteDigest/internal/digest"
	"GazetteDigest/internal/domain"
	"GazetteDigest/internal/infrastructure/filesource"
	"GazetteDigest/internal/infrastructure/parser"
	"GazetteDigest/internal/infrastructure/scheduler"
	"GazetteDigest/internal/infrastructure/storage"
	"GazetteDigest/internal/infrastructure/telegram"
	"GazetteDigest/internal/logging"
	"GazetteDigest/internal/marker"
	"GazetteDigest/internal/patterns"
	"GazetteDigest/internal/ranking"
	"GazetteDigest/internal/sanitizer"
	"GazetteDigest/internal/segmenter"
	"GazetteDigest/internal/usecase"
)

// Option tweaks how the application is assembled.
type Option func(*settings)

type settings struct {
	offline bool
	rng     *rand.Rand
	now     func() time.Time
}

// Offline leaves out Postgres and Telegram: documents come from the
// configured file and the digest is only returned.
func Offline() Option {
	return func(s *settings) { s.offline = true }
}

// WithSeed makes the footer link choice reproducible.
func WithSeed(seed uint64) Option {
	return func(s *settings) { s.rng = rand.New(rand.NewPCG(seed, seed)) }
}

// WithClock replaces the wall clock used to date the digest.
func WithClock(now func() time.Time) Option {
	return func(s *settings) { s.now = now }
}

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg       config.Config
	logger    *slog.Logger
	now       func() time.Time
	db        *sql.DB
	pipeline  *usecase.Pipeline
	scheduler *usecase.Scheduler
}

// New assembles the pipeline from configuration.
func New(cfg config.Config, baseLogger *slog.Logger, opts ...Option) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}
	set := settings{now: time.Now}
	for _, opt := range opts {
		opt(&set)
	}
	loc := cfg.Scheduler.Location()
	clock := func() time.Time { return set.now().In(loc) }

	builder, err := NewBuilder(cfg, baseLogger, set.rng, clock)
	if err != nil {
		return nil, err
	}

	a := &Application{cfg: cfg, logger: baseLogger, now: clock}

	deps := usecase.PipelineDeps{
		Fetcher: parser.NewPageFetcher(nil),
		Builder: builder,
		Logger:  logging.Component(baseLogger, "pipeline"),
	}

	if !set.offline {
		db, err := sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		a.db = db
		deps.Repository = storage.NewPostgresRepository(db)
		deps.Source = storage.NewPostgresSource(db, cfg.Source.Table, cfg.Source.MinRelevance)
		if cfg.Telegram.BotToken != "" {
			deps.Notifier = telegram.NewNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Telegram.MaxMessageLength)
		}
	}
	if cfg.Source.File != "" {
		deps.Source = filesource.New(cfg.Source.File)
	}
	if deps.Source == nil {
		return nil, fmt.Errorf("no document source: set source.file or run with a database")
	}

	a.pipeline = usecase.NewPipeline(deps)
	driver := scheduler.NewDailyScheduler(cfg.Scheduler.Hour, loc)
	a.scheduler = usecase.NewScheduler(driver, a.pipeline, logging.Component(baseLogger, "scheduler"))
	return a, nil
}

// NewBuilder compiles every rule table named in cfg into the act pipeline.
func NewBuilder(cfg config.Config, logger *slog.Logger, rng *rand.Rand, now func() time.Time) (*usecase.DigestBuilder, error) {
	records, err := cfg.RoutingRules()
	if err != nil {
		return nil, err
	}
	table, err := classifier.NewRoutingTable(records)
	if err != nil {
		return nil, err
	}
	labels, err := classifier.New(table, cfg.Routing.PlaceholderLabels)
	if err != nil {
		return nil, err
	}
	markers, err := marker.NewAssigner(cfg.Markers, "")
	if err != nil {
		return nil, err
	}
	renderer, err := digest.NewRenderer(cfg.Digest.Options, rng, now)
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}

	orgs := cfg.Organizations
	if len(orgs) == 0 {
		orgs = patterns.DefaultOrganizations
	}
	lib, err := patterns.NewLibrary(orgs)
	if err != nil {
		return nil, fmt.Errorf("pattern library: %w", err)
	}

	return usecase.NewDigestBuilder(usecase.Stages{
		Segmenter:  segmenter.New(lib),
		Sanitizer:  sanitizer.New(lib, cfg.Digest.MaxNoActLength),
		Classifier: labels,
		Scorer:     ranking.NewScorer(cfg.Scoring),
		Orderer:    ranking.NewOrderer(table.BaseImportance, cfg.Digest.DedupDistance),
		Markers:    markers,
		Renderer:   renderer,
		Logger:     logging.Component(logger, "builder"),
	}), nil
}

// Today is the current day in the scheduler timezone.
func (a *Application) Today() time.Time {
	return a.now()
}

// Run performs a single pipeline execution for today.
func (a *Application) Run(ctx context.Context) (domain.Digest, error) {
	return a.pipeline.ProcessDay(ctx, a.Today())
}

// Schedule runs the pipeline daily until ctx is cancelled.
func (a *Application) Schedule(ctx context.Context) error {
	if err := a.scheduler.Start(ctx); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}
	a.logger.Info("scheduler started", "hour", a.cfg.Scheduler.Hour, "timezone", a.cfg.Scheduler.Location().String())
	<-ctx.Done()
	return a.scheduler.Stop(context.Background())
}

// Close releases the database handle.
func (a *Application) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
