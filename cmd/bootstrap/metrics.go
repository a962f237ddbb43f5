package bootstrap

import (
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/metrics"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		func(cfg config.Config) *metrics.Metrics {
			return metrics.New(cfg.Metrics.Namespace)
		},
	),
)
