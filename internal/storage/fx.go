package storage

import (
	"errors"

	"github.com/silzatelesols/billify/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides the object store, or nil when storage is not
// configured. Consumers treat a nil store as "uploads disabled".
var Module = fx.Module("storage",
	fx.Provide(func(cfg config.Config, log *zap.Logger) (ObjectStore, error) {
		store, err := NewS3Store(cfg, log)
		if errors.Is(err, ErrNotConfigured) {
			log.Warn("object storage not configured, pdf uploads disabled")
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return store, nil
	}),
)
