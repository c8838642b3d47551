package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"social-manager/internal/bootstrap"
	"social-manager/internal/config"
	"social-manager/internal/dispatch/processor"
	"social-manager/internal/dispatch/scheduler"
	"social-manager/internal/observability"
	"social-manager/internal/store"

	"github.com/spf13/cobra"
)

type campaignDispatcher interface {
	DispatchCampaignByID(ctx context.Context, campaignID int64) (processor.DispatchResult, error)
}

type scheduleRunner interface {
	RunOnce(ctx context.Context) (scheduler.RunSummary, error)
}

type stuckStore interface {
	ListStuckSendingCampaigns(ctx context.Context, cutoff time.Time) ([]store.Campaign, error)
	RecoverStuckCampaign(ctx context.Context, campaignID int64, cutoff time.Time, status string) (store.Campaign, error)
}

// env is what the commands operate on.
type env struct {
	dispatcher campaignDispatcher
	scheduler  scheduleRunner
	stuck      stuckStore
	stuckAfter time.Duration
	now        func() time.Time
	cleanup    func()
}

type envLoader func(ctx context.Context) (*env, error)

func loadEnv(ctx context.Context) (*env, error) {
	logger := observability.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &env{
		dispatcher: deps.DispatchProcessor,
		scheduler:  deps.NewScheduler(deps.InlineDispatcher()),
		stuck:      &deps.Store,
		stuckAfter: cfg.Dispatch.StuckAfter,
		now:        time.Now,
		cleanup: func() {
			deps.Cleanup()
			_ = logger.Sync()
		},
	}, nil
}

func newRootCmd(load envLoader) *cobra.Command {
	var e *env

	rootCmd := &cobra.Command{
		Use:           "socialctl",
		Short:         "Operate social campaign dispatch from the command line",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			e, err = load(cmd.Context())
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e != nil && e.cleanup != nil {
				e.cleanup()
			}
		},
	}

	rootCmd.AddCommand(
		newDispatchScheduledCmd(func() *env { return e }),
		newDispatchCmd(func() *env { return e }),
		newRecoverStuckCmd(func() *env { return e }),
	)
	return rootCmd
}

func newDispatchScheduledCmd(current func() *env) *cobra.Command {
	return &cobra.Command{
		Use:   "dispatch-scheduled",
		Short: "Dispatch every scheduled campaign whose send time has passed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := current().scheduler.RunOnce(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, summary.Message())
			if len(summary.Stuck) > 0 {
				fmt.Fprintf(out, "Campaigns stuck in sending: %v (see recover-stuck)\n", summary.Stuck)
			}
			if summary.Failed > 0 {
				return fmt.Errorf("%d scheduled campaigns failed to dispatch", summary.Failed)
			}
			return nil
		},
	}
}

func newDispatchCmd(current func() *env) *cobra.Command {
	var campaignID int64

	cmd := &cobra.Command{
		Use:   "dispatch",
		Short: "Dispatch one campaign to every active account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if campaignID <= 0 {
				return errors.New("--campaign must be a positive campaign id")
			}

			result, err := current().dispatcher.DispatchCampaignByID(cmd.Context(), campaignID)
			if err != nil {
				return fmt.Errorf("campaign %d: %w", campaignID, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Campaign %d %s: %d sent, %d failed of %d accounts.\n",
				campaignID, result.Campaign.Status, result.Stats.Sent, result.Stats.Failed, result.Stats.Total)
			return nil
		},
	}
	cmd.Flags().Int64Var(&campaignID, "campaign", 0, "campaign id to dispatch")
	_ = cmd.MarkFlagRequired("campaign")
	return cmd
}

func newRecoverStuckCmd(current func() *env) *cobra.Command {
	var (
		campaignID int64
		markFailed bool
	)

	cmd := &cobra.Command{
		Use:   "recover-stuck",
		Short: "List campaigns stuck in sending, or release one for another attempt",
		Long: `Without --campaign, lists campaigns that have been sending for longer than
DISPATCH_STUCK_AFTER. With --campaign, moves that campaign back to scheduled so the next
dispatch-scheduled pass picks it up, or to failed with --fail.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := current()
			out := cmd.OutOrStdout()
			cutoff := e.now().Add(-e.stuckAfter)

			if campaignID == 0 {
				campaigns, err := e.stuck.ListStuckSendingCampaigns(cmd.Context(), cutoff)
				if err != nil {
					return err
				}
				if len(campaigns) == 0 {
					fmt.Fprintln(out, "No campaigns are stuck in sending.")
					return nil
				}
				for _, c := range campaigns {
					fmt.Fprintf(out, "%d\t%s\tsending since %s\n", c.ID, c.Title, c.UpdatedAt.UTC().Format(time.RFC3339))
				}
				return nil
			}

			status := store.CampaignStatusScheduled
			if markFailed {
				status = store.CampaignStatusFailed
			}

			campaign, err := e.stuck.RecoverStuckCampaign(cmd.Context(), campaignID, cutoff, status)
			switch {
			case errors.Is(err, store.ErrNotFound):
				return fmt.Errorf("campaign %d does not exist", campaignID)
			case errors.Is(err, store.ErrStatusConflict):
				return fmt.Errorf("campaign %d is not stuck in sending", campaignID)
			case err != nil:
				return err
			}

			fmt.Fprintf(out, "Campaign %d moved to %s.\n", campaign.ID, campaign.Status)
			return nil
		},
	}
	cmd.Flags().Int64Var(&campaignID, "campaign", 0, "campaign id to recover")
	cmd.Flags().BoolVar(&markFailed, "fail", false, "mark the campaign failed instead of rescheduling it")
	return cmd
}
