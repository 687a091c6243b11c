package components

import (
	"log/slog"

	"meetgrid/internal/infra/db"
	"meetgrid/internal/infra/mailer"
	"meetgrid/internal/infra/readstore"
	"meetgrid/internal/infra/uow"
	"meetgrid/internal/pkg/config"
	"meetgrid/internal/usecase/queries"
	"meetgrid/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewMeetingReadStore,
			fx.As(new(queries.MeetingReadStore)),
		),
		fx.Annotate(
			readstore.NewActorDirectory,
			fx.As(new(shared.ActorDirectory)),
		),
		fx.Annotate(
			readstore.NewEventReadStore,
			fx.As(new(shared.EventDirectory)),
		),
		NewNotifier,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewNotifier(cfg config.Config, logger *slog.Logger) shared.Notifier {
	return mailer.NewNotifier(cfg.SMTP, logger)
}
