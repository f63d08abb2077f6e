package invoice

import (
	"github.com/silzatelesols/billify/internal/invoice/render"
	"github.com/silzatelesols/billify/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(render.NewRegistry),
	fx.Provide(render.NewLayoutRenderer),
	fx.Provide(service.NewService),
)
