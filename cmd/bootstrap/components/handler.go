package components

import (
	"hotel-booking-core/internal/handler"
	"hotel-booking-core/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewHealthHandler,
		api.NewQuoteHandler,
		api.NewBookingHandler,
		api.NewRoomHandler,
		handler.NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)
