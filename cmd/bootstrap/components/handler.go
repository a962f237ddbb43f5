package components

import (
	"shareit/internal/handler"
	"shareit/internal/handler/api"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewItemHandler,
		NewAuthMiddleware,
		func(b *api.BookingHandler, i *api.ItemHandler, auth *middleware.AuthMiddleware) handler.Handlers {
			return handler.Handlers{Bookings: b, Items: i, Auth: auth}
		},
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthMiddleware(cfg config.Config, tokens *jwt.Service) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(cfg.Auth, tokens)
}
