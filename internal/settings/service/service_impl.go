package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/silzatelesols/billify/internal/cache"
	"github.com/silzatelesols/billify/internal/requestctx"
	"github.com/silzatelesols/billify/internal/settings/domain"
	"github.com/silzatelesols/billify/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// settingsCacheTTL bounds how stale a cached settings row may be after
// an out-of-band database edit.
const settingsCacheTTL = 30 * time.Second

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
}

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
	repo  repository.Repository[domain.AppSettings]
	cache *cache.TTLCache[string, domain.AppSettings]
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		log:   p.Log.Named("settings.service"),
		genID: p.GenID,
		repo:  repository.ProvideStore[domain.AppSettings](p.DB),
		cache: cache.NewTTLCache[string, domain.AppSettings](),
	}
}

func (s *Service) Get(ctx context.Context) (*domain.AppSettings, error) {
	userID := requestctx.UserIDFromContext(ctx)
	if cached, ok := s.cache.Get(userID); ok {
		return &cached, nil
	}

	record, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(userID, *record, settingsCacheTTL)
	return record, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.AppSettings, error) {
	userID := requestctx.UserIDFromContext(ctx)
	record, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.EnableS3Upload != nil {
		record.EnableS3Upload = *req.EnableS3Upload
	}
	if req.EnableEmailNotifications != nil {
		record.EnableEmailNotifications = *req.EnableEmailNotifications
	}
	if req.EnableDefaultTemplateButton != nil {
		record.EnableDefaultTemplateButton = *req.EnableDefaultTemplateButton
	}
	if req.Theme != nil {
		theme := strings.TrimSpace(*req.Theme)
		if theme != "light" && theme != "dark" {
			return nil, domain.ErrInvalidTheme
		}
		record.Theme = theme
	}
	if req.DefaultTemplateID != nil {
		record.DefaultTemplateID = strings.TrimSpace(*req.DefaultTemplateID)
	}
	record.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, record); err != nil {
		s.log.Error("failed to update settings", zap.Error(err), zap.String("user_id", userID))
		return nil, err
	}
	s.cache.Delete(userID)
	return record, nil
}

// getOrCreate fetches the user's row, inserting the default row when
// none exists yet.
func (s *Service) getOrCreate(ctx context.Context, userID string) (*domain.AppSettings, error) {
	record, err := s.repo.FindOne(ctx, "user_id = ?", userID)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	record = &domain.AppSettings{
		ID:                          s.genID.Generate(),
		UserID:                      userID,
		EnableS3Upload:              true,
		EnableEmailNotifications:    true,
		EnableDefaultTemplateButton: false,
		Theme:                       "light",
		DefaultTemplateID:           "default",
		CreatedAt:                   now,
		UpdatedAt:                   now,
	}
	if err := s.repo.Insert(ctx, record); err != nil {
		return nil, err
	}
	s.log.Info("created default settings", zap.String("user_id", userID))
	return record, nil
}
