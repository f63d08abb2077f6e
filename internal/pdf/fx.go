package pdf

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("pdf",
	fx.Provide(func(lc fx.Lifecycle, log *zap.Logger) Rasterizer {
		r := NewRodRasterizer(log)
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error { return r.Close() },
		})
		return r
	}),
	fx.Provide(NewGenerator),
)
