package invoicetemplate

import (
	"github.com/silzatelesols/billify/internal/invoicetemplate/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoicetemplate.service",
	fx.Provide(service.NewService),
)
