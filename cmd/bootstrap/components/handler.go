package components

import (
	"meetgrid/internal/handler"
	"meetgrid/internal/handler/api"
	"meetgrid/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewMeetingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
