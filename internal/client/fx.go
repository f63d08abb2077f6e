package client

import (
	"github.com/silzatelesols/billify/internal/client/service"
	"go.uber.org/fx"
)

var Module = fx.Module("client.service",
	fx.Provide(service.NewService),
)
