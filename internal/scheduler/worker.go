package scheduler

import (
	"context"
	"time"

	auditdomain "github.com/silzatelesols/billify/internal/audit/domain"
	"github.com/silzatelesols/billify/internal/clock"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	Clock  clock.Clock
	Config Config `optional:"true"`
}

// Worker sweeps expired audit rows on an interval so the audit trail
// does not grow without bound.
type Worker struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock
	cfg   Config
}

func NewWorker(p Params) *Worker {
	return &Worker{
		db:    p.DB,
		log:   p.Log.Named("scheduler.audit_retention"),
		clock: p.Clock,
		cfg:   p.Config.withDefaults(),
	}
}

func (w *Worker) RunForever(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		if _, err := w.RunOnce(ctx); err != nil {
			w.log.Warn("audit retention sweep failed", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// RunOnce deletes one batch of expired rows and reports how many went.
// A full batch means more rows are waiting for the next sweep.
func (w *Worker) RunOnce(ctx context.Context) (int64, error) {
	cutoff := w.clock.Now().Add(-w.cfg.Retention)

	expired := w.db.WithContext(ctx).
		Model(&auditdomain.AuditLog{}).
		Select("id").
		Where("created_at < ?", cutoff).
		Limit(w.cfg.BatchSize)

	res := w.db.WithContext(ctx).
		Where("id IN (?)", expired).
		Delete(&auditdomain.AuditLog{})
	if res.Error != nil {
		return 0, res.Error
	}

	if res.RowsAffected > 0 {
		w.log.Info("expired audit rows removed",
			zap.Int64("rows", res.RowsAffected),
			zap.Time("cutoff", cutoff),
		)
	}
	return res.RowsAffected, nil
}
