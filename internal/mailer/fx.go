package mailer

import (
	"net/http"
	"time"

	"github.com/silzatelesols/billify/internal/config"
	"github.com/silzatelesols/billify/internal/observability/tracing"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("mailer",
	fx.Provide(func(cfg config.Config, log *zap.Logger) Mailer {
		client := tracing.WrapHTTPClient(&http.Client{Timeout: 10 * time.Second})
		return NewHTTPMailer(cfg, client, log)
	}),
)
