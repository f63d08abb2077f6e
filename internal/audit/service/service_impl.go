package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/silzatelesols/billify/internal/audit/domain"
	"github.com/silzatelesols/billify/internal/requestctx"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultListLimit = 100

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("audit.service"),
		genID: p.GenID,
	}
}

func (s *Service) Record(ctx context.Context, action, targetType, targetID string, metadata map[string]any) {
	entry := &domain.AuditLog{
		ID:         s.genID.Generate(),
		ActorType:  string(domain.ActorTypeUser),
		Action:     action,
		TargetType: targetType,
		Metadata:   metadata,
	}
	if userID := requestctx.UserIDFromContext(ctx); userID != "" {
		entry.ActorID = &userID
	}
	if targetID != "" {
		entry.TargetID = &targetID
	}
	if entry.Metadata == nil {
		entry.Metadata = map[string]any{}
	}

	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		s.log.Warn("failed to record audit entry", zap.Error(err), zap.String("action", action))
	}
}

func (s *Service) List(ctx context.Context, filter domain.ListFilter) ([]domain.AuditLog, error) {
	limit := filter.Limit
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}

	q := s.db.WithContext(ctx).
		Model(&domain.AuditLog{}).
		Order("created_at DESC").
		Limit(limit)
	if filter.Action != "" {
		q = q.Where("action = ?", filter.Action)
	}
	if filter.TargetType != "" {
		q = q.Where("target_type = ?", filter.TargetType)
	}
	if filter.TargetID != "" {
		q = q.Where("target_id = ?", filter.TargetID)
	}
	if filter.StartAt != nil {
		q = q.Where("created_at >= ?", *filter.StartAt)
	}
	if filter.EndAt != nil {
		q = q.Where("created_at < ?", *filter.EndAt)
	}

	var entries []domain.AuditLog
	if err := q.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
