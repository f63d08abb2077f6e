package company

import (
	"github.com/silzatelesols/billify/internal/company/service"
	"go.uber.org/fx"
)

var Module = fx.Module("company.service",
	fx.Provide(service.NewService),
)
