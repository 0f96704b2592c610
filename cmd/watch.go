package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/matheuskafuri/newsportal/internal/config"
	"github.com/matheuskafuri/newsportal/internal/lifecycle"
	"github.com/matheuskafuri/newsportal/internal/logger"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print headlines now and after every refresh interval",
	Long: `Run without the TUI, fetching immediately and then on every refresh_interval
tick until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		lang, err := resolveLanguage(flagLang, cfg)
		if err != nil {
			return err
		}

		log := logger.New(os.Stderr, cfg.LogLevel)
		ctrl, _ := newController(cfg, lang, log)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		sched := cron.New()
		defer sched.Stop()

		return watch(ctx, ctrl, sched, func(s lifecycle.Snapshot) {
			writeHeadlines(cmd.OutOrStdout(), s)
			fmt.Fprintln(cmd.OutOrStdout())
		})
	},
}

// everySchedule converts an interval to a cron "@every" schedule.
func everySchedule(d time.Duration) string {
	return "@every " + d.String()
}

// watch drives ctrl from a single loop: the cron job and fetch goroutines
// only send messages, and all controller state changes happen here.
func watch(ctx context.Context, ctrl *lifecycle.Controller, sched *cron.Cron, emit func(lifecycle.Snapshot)) error {
	results := make(chan lifecycle.Result)
	ticks := make(chan uint64)

	dispatch := func(req lifecycle.Request) {
		go func() {
			res := ctrl.Fetch(ctx, req)
			select {
			case results <- res:
			case <-ctx.Done():
			}
		}()
	}

	dispatch(ctrl.Mount())
	gen := ctrl.TimerGeneration()

	if _, err := sched.AddFunc(everySchedule(ctrl.Interval()), func() {
		select {
		case ticks <- gen:
		case <-ctx.Done():
		}
	}); err != nil {
		return fmt.Errorf("scheduling refresh: %w", err)
	}
	sched.Start()

	for {
		select {
		case <-ctx.Done():
			ctrl.Stop()
			return nil
		case g := <-ticks:
			if req, ok := ctrl.Tick(g); ok {
				dispatch(req)
			}
		case res := <-results:
			if ctrl.Resolve(res) {
				emit(ctrl.Snapshot())
			}
		}
	}
}
