package components

import (
	"meetgrid/internal/pkg/clock"
	"meetgrid/internal/usecase/commands"
	"meetgrid/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewMeetingCommands,
		queries.NewMeetingQueries,
	),
)
