package bootstrap

import (
	"context"
	"log/slog"

	"meetgrid/internal/pkg/clock"
	"meetgrid/internal/pkg/config"
	"meetgrid/internal/usecase/shared"
	"meetgrid/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewReminderWorker,
	),
	fx.Invoke(
		startReminderWorker,
	),
)

func NewReminderWorker(
	uow shared.UnitOfWork,
	directory shared.ActorDirectory,
	notifier shared.Notifier,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) *worker.ReminderWorker {
	return worker.NewReminderWorker(uow, directory, notifier, clk, cfg.Reminder, logger)
}

func startReminderWorker(lc fx.Lifecycle, w *worker.ReminderWorker) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				w.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
