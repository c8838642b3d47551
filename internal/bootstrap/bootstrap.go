package bootstrap

import (
	"context"
	"fmt"

	"social-manager/internal/config"
	"social-manager/internal/metrics"
	"social-manager/internal/observability"
	"social-manager/internal/providers"
	"social-manager/internal/secrets"
	"social-manager/internal/store"

	accountHandler "social-manager/internal/accounts/handler"
	accountProcessor "social-manager/internal/accounts/processor"
	campaignHandler "social-manager/internal/campaign/handler"
	campaignProcessor "social-manager/internal/campaign/processor"
	"social-manager/internal/clients/googleai"
	"social-manager/internal/clients/openai"
	redisClient "social-manager/internal/clients/redis"
	contentHandler "social-manager/internal/content/handler"
	contentProcessor "social-manager/internal/content/processor"
	dispatchProcessor "social-manager/internal/dispatch/processor"
	"social-manager/internal/dispatch/scheduler"
	"social-manager/internal/jobs"
	"social-manager/internal/webhooks/notifier"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const dispatchLockPrefix = "social-manager:dispatch:"

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Config   *config.Config
	Store    store.Store
	Logger   *observability.Logger
	Metrics  *metrics.Metrics
	Registry *prometheus.Registry

	// Optional infrastructure, nil when Redis is not configured
	Redis     *redisClient.Client
	JobClient *jobs.Client

	DispatchProcessor *dispatchProcessor.DispatchProcessor

	// Handlers
	CampaignHandler campaignHandler.Handler
	ContentHandler  contentHandler.Handler
	AccountHandler  accountHandler.Handler
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config:   cfg,
		Logger:   logger,
		Registry: prometheus.NewRegistry(),
	}
	deps.Registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	deps.Metrics = metrics.New(deps.Registry)

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	deps.Redis, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	// Dispatch: the per-campaign lock is always held in-process, and also in Redis when available
	var locker dispatchProcessor.Locker = dispatchProcessor.NewKeyedLocker()
	if deps.Redis != nil {
		locker = dispatchProcessor.ChainLocker{
			locker,
			redisClient.NewLocker(deps.Redis, dispatchLockPrefix, cfg.Dispatch.LockTTL),
		}
		deps.JobClient = jobs.NewClient(jobs.RedisOpt(cfg.Redis), logger)
	}

	registry := providers.NewRegistry(providers.StubAdapter{}, providers.RegistryConfig{
		Timeout:       cfg.Dispatch.ProviderTimeout,
		RatePerSecond: cfg.Dispatch.ProviderRateLimit,
	}, logger, deps.Metrics)

	eventNotifier := notifier.New(notifier.Config{
		BaseURL: cfg.Context7.BaseURL,
		APIKey:  cfg.Context7.APIKey,
		Timeout: cfg.Context7.Timeout,
	}, logger, deps.Metrics)

	dispatcher := dispatchProcessor.New(
		&deps.Store,
		registry,
		eventNotifier,
		locker,
		dispatchProcessor.Config{Concurrency: cfg.Dispatch.Concurrency},
		logger,
		deps.Metrics,
	)
	deps.DispatchProcessor = &dispatcher

	// Campaigns
	campaigns := campaignProcessor.New(&deps.Store, deps.DispatchProcessor, logger)
	deps.CampaignHandler = campaignHandler.New(campaigns, logger)

	// AI compose
	openAIClient := openai.NewClient(cfg.Services.OpenAIAPIKey, cfg.Services.OpenAIChatModel, cfg.Services.OpenAIImageModel, logger)
	geminiClient := googleai.NewClient(cfg.Services.GoogleAIAPIKey, cfg.Services.GoogleAIModel, logger)
	studio := contentProcessor.NewStudio(openAIClient, geminiClient, openAIClient, logger)
	news := contentProcessor.NewNewsScanner(contentProcessor.DefaultNewsBaseURL, logger)
	content := contentProcessor.New(&deps.Store, news, studio, deps.DispatchProcessor, logger)
	deps.ContentHandler = contentHandler.New(content, logger)

	// Accounts and credentials
	sealer := secrets.NewSealer(cfg.Secrets.Key)
	if !sealer.Enabled() {
		logger.Warn(ctx, "SECRETS_KEY is not set, credentials are stored unsealed")
	}
	accounts := accountProcessor.New(&deps.Store, sealer, logger)
	deps.AccountHandler = accountHandler.New(accounts, logger)

	logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "redis_enabled", Value: deps.Redis != nil},
		observability.Field{Key: "openai_enabled", Value: openAIClient.Enabled()},
		observability.Field{Key: "gemini_enabled", Value: geminiClient.Enabled()},
		observability.Field{Key: "dispatch_concurrency", Value: cfg.Dispatch.Concurrency},
	), "dependencies initialized")

	return deps, nil
}

// InlineDispatcher dispatches due campaigns in the calling process
func (d *Dependencies) InlineDispatcher() scheduler.Dispatcher {
	return scheduler.DispatchFunc(func(ctx context.Context, campaignID int64) error {
		_, err := d.DispatchProcessor.DispatchCampaignByID(ctx, campaignID)
		return err
	})
}

// QueueDispatcher enqueues due campaigns for the worker, falling back to inline dispatch without Redis
func (d *Dependencies) QueueDispatcher() scheduler.Dispatcher {
	if d.JobClient == nil {
		return d.InlineDispatcher()
	}
	return scheduler.DispatchFunc(d.JobClient.EnqueueCampaignDispatch)
}

// NewScheduler builds the scheduled dispatch loop around dispatcher
func (d *Dependencies) NewScheduler(dispatcher scheduler.Dispatcher) *scheduler.Scheduler {
	return scheduler.New(&d.Store, dispatcher, d.Metrics, scheduler.Config{
		Interval:   d.Config.Dispatch.ScheduleInterval,
		StuckAfter: d.Config.Dispatch.StuckAfter,
	}, d.Logger)
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if d.JobClient != nil {
		if err := d.JobClient.Close(); err != nil {
			d.Logger.Error(context.Background(), "failed to close job client", err)
		}
	}
	if err := d.Redis.Close(); err != nil {
		d.Logger.Error(context.Background(), "failed to close redis client", err)
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(context.Background(), "failed to close database", err)
	}
}
