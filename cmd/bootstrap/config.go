package bootstrap

import (
	"log/slog"

	"shareit/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logEffectiveConfig),
)

// Secrets and DSNs stay out of the log.
func logEffectiveConfig(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"store_driver", cfg.Store.Driver,
		"next_booking_policy", cfg.Availability.NextPolicy,
		"actor_header", cfg.Auth.ActorHeader,
		"jwt_enabled", cfg.Auth.JWTSecret != "",
		"metrics_namespace", cfg.Metrics.Namespace,
	)
}
