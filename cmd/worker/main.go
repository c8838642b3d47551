package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"social-manager/internal/bootstrap"
	"social-manager/internal/config"
	"social-manager/internal/jobs"
	"social-manager/internal/jobs/workers"
	"social-manager/internal/observability"

	"github.com/hibiken/asynq"
)

func main() {
	logger := observability.NewLogger()
	defer logger.Sync()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Info(ctx, "Starting background worker server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}
	if !cfg.Redis.Enabled {
		log.Fatal("REDIS_ADDR must be set to run the worker")
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}
	defer deps.Cleanup()

	dispatchWorker := workers.NewDispatchWorker(deps.DispatchProcessor, logger)

	// Create Asynq server with queue configuration
	srv := asynq.NewServer(
		jobs.RedisOpt(cfg.Redis),
		asynq.Config{
			Concurrency: 10,
			Queues:      jobs.Queues,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error(ctx, fmt.Sprintf("task %s failed", task.Type()), err)
			}),
			RetryDelayFunc: asynq.DefaultRetryDelayFunc,
			Logger:         &asynqLogger{logger: logger},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(jobs.TypeCampaignDispatch, dispatchWorker.ProcessCampaignDispatchTask)

	// The scheduler only enqueues; the mux above performs the dispatch
	dispatchScheduler := deps.NewScheduler(deps.QueueDispatcher())
	go dispatchScheduler.Start(ctx)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(ctx, fmt.Sprintf("Worker server started on Redis: %s", cfg.Redis.Addr))
		if err := srv.Run(mux); err != nil {
			log.Fatalf("Failed to run server: %v", err)
		}
	}()

	<-sigChan
	logger.Info(ctx, "Shutting down worker server...")

	dispatchScheduler.Stop()
	srv.Shutdown()
	logger.Info(ctx, "Worker server stopped")
}

// asynqLogger adapts observability.Logger to asynq.Logger interface
type asynqLogger struct {
	logger *observability.Logger
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
	os.Exit(1)
}
