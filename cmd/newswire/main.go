package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/umputun/newswire/pkg/config"
	"github.com/umputun/newswire/pkg/content"
	"github.com/umputun/newswire/pkg/domain"
	"github.com/umputun/newswire/pkg/feed"
	"github.com/umputun/newswire/pkg/health"
	"github.com/umputun/newswire/pkg/langdetect"
	"github.com/umputun/newswire/pkg/repository"
	"github.com/umputun/newswire/pkg/scheduler"
	"github.com/umputun/newswire/pkg/service"
	"github.com/umputun/newswire/pkg/translate"
	"github.com/umputun/newswire/server"
)

// Opts with all CLI options
type Opts struct {
	Config  string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`
	EnvFile string `long:"env-file" env:"ENV_FILE" default:".env" description:"dotenv file loaded before the config, ignored if missing"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug)

	log.Printf("[INFO] starting newswire version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires all components and blocks until ctx is cancelled or the server fails
func run(ctx context.Context, opts Opts) error {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load env file %s: %w", opts.EnvFile, err)
		}
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.LLM.APIKey != "" {
		setupLog(opts.Debug, cfg.LLM.APIKey)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	tracker := health.NewTracker(repos.Health, health.Config{
		Window:               cfg.Health.Window,
		DisableAfterFailures: cfg.Health.DisableAfterFailures,
		SlowResponse:         cfg.Health.SlowResponse,
		BusyArticles:         cfg.Health.BusyArticles,
	})
	provider := feed.NewProvider(cfg.Polling.FetchTimeout, cfg.Polling.UserAgent)
	svc := service.NewSchedulerService(repos)

	sched := scheduler.NewScheduler(scheduler.Params{
		JobManager:         svc,
		FeedManager:        svc,
		ArticleManager:     svc,
		HealthManager:      tracker,
		TranslationManager: svc,
		Provider:           provider,
		Detector:           langdetect.New(),
		TickInterval:       cfg.Polling.TickInterval,
		RunTimeout:         cfg.Polling.RunTimeout,
		FetchTimeout:       cfg.Polling.FetchTimeout,
		MaxWorkers:         cfg.Polling.MaxWorkers,
		ReviewThreshold:    cfg.Detection.ReviewThreshold,
		HealthRetention:    cfg.Health.Retention,
		AutoDisable:        cfg.Health.AutoDisable,
		AutoTranslate: scheduler.AutoTranslate{
			Targets:    cfg.AutoTargetLanguages(),
			Priority:   domain.JobPriority(cfg.Translation.AutoPriority),
			MaxRetries: cfg.Translation.MaxRetries,
		},
	})

	if dj := cfg.Polling.DefaultJob; !dj.Disabled {
		if _, err := sched.EnsureDefaultJob(ctx, dj.Name, dj.IntervalMinutes, dj.Filter); err != nil {
			return fmt.Errorf("failed to create default polling job: %w", err)
		}
	}

	sched.Run(ctx)
	defer sched.Shutdown()

	if cfg.Translation.Enabled {
		worker := scheduler.NewTranslationWorker(scheduler.WorkerParams{
			TranslationManager: svc,
			ArticleManager:     svc,
			Translator:         translate.New(cfg.LLM),
			Extractor:          makeExtractor(cfg.Extraction),
			TickInterval:       cfg.Translation.TickInterval,
			BatchSize:          cfg.Translation.BatchSize,
			Concurrency:        cfg.Translation.Concurrency,
			CallTimeout:        cfg.Translation.CallTimeout,
			MaxJobDuration:     cfg.Translation.MaxJobDuration,
			MinTextLength:      cfg.Translation.MinTextLength,
		})
		worker.Run(ctx)
		defer worker.Shutdown()
	} else if len(cfg.Translation.AutoTargets) > 0 {
		log.Printf("[WARN] translation worker is disabled, automatic translation jobs stay queued")
	}

	srv := server.New(cfg, server.Params{
		Scheduler:    sched,
		Jobs:         repos.PollingJob,
		Feeds:        service.NewFeedService(repos, provider),
		Health:       tracker,
		Translations: service.NewTranslationService(repos, cfg.Translation.MaxRetries),
	}, revision, opts.Debug)

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// makeExtractor returns nil when extraction is disabled, the worker then uses feed content only
func makeExtractor(cfg config.ExtractionConfig) scheduler.Extractor {
	if !cfg.Enabled {
		return nil
	}
	return content.NewHTTPExtractor(cfg.Timeout, cfg.UserAgent)
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
