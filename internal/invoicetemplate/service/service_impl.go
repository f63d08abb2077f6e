package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/silzatelesols/billify/internal/builder"
	"github.com/silzatelesols/billify/internal/invoicetemplate/domain"
	"github.com/silzatelesols/billify/internal/requestctx"
	"github.com/silzatelesols/billify/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

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
	repo  repository.Repository[domain.CustomTemplate]
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("invoicetemplate.service"),
		genID: p.GenID,
		repo:  repository.ProvideStore[domain.CustomTemplate](p.DB),
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	payload, err := marshalLayout(req.Layout)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	record := &domain.CustomTemplate{
		ID:          s.genID.Generate(),
		UserID:      requestctx.UserIDFromContext(ctx),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Layout:      payload,
		IsDefault:   false,
		Thumbnail:   req.Thumbnail,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Insert(ctx, record); err != nil {
		s.log.Error("failed to create template", zap.Error(err))
		return nil, err
	}
	return toResponse(record)
}

func (s *Service) List(ctx context.Context) ([]domain.ListItem, error) {
	userID := requestctx.UserIDFromContext(ctx)

	var records []domain.CustomTemplate
	err := s.db.WithContext(ctx).
		Model(&domain.CustomTemplate{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	items := make([]domain.ListItem, 0, len(records))
	for _, r := range records {
		items = append(items, domain.ListItem{
			ID:          r.ID.String(),
			Name:        r.Name,
			Description: r.Description,
			IsDefault:   r.IsDefault,
			Thumbnail:   r.Thumbnail,
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
		})
	}
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Response, error) {
	record, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(record)
}

func (s *Service) Update(ctx context.Context, id string, req domain.UpdateRequest) (*domain.Response, error) {
	record, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.ErrInvalidName
		}
		record.Name = name
	}
	if req.Description != nil {
		record.Description = strings.TrimSpace(*req.Description)
	}
	if req.Layout != nil {
		payload, err := marshalLayout(*req.Layout)
		if err != nil {
			return nil, err
		}
		record.Layout = payload
	}
	if req.Thumbnail != nil {
		record.Thumbnail = *req.Thumbnail
	}
	record.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, record); err != nil {
		s.log.Error("failed to update template", zap.Error(err), zap.String("template_id", id))
		return nil, err
	}
	return toResponse(record)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	record, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, "id = ?", record.ID)
}

// SetDefault clears the user's current default, then marks the addressed
// template. The two writes are separate statements: a failure between
// them leaves no default set, which the next SetDefault repairs.
func (s *Service) SetDefault(ctx context.Context, id string) (*domain.Response, error) {
	record, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	userID := requestctx.UserIDFromContext(ctx)

	err = s.db.WithContext(ctx).
		Model(&domain.CustomTemplate{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Updates(map[string]any{"is_default": false, "updated_at": time.Now().UTC()}).Error
	if err != nil {
		return nil, err
	}

	record.IsDefault = true
	record.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, record); err != nil {
		s.log.Error("failed to set default template", zap.Error(err), zap.String("template_id", id))
		return nil, err
	}
	return toResponse(record)
}

func (s *Service) GetDefault(ctx context.Context) (*domain.Response, error) {
	userID := requestctx.UserIDFromContext(ctx)
	record, err := s.repo.FindOne(ctx, "user_id = ? AND is_default = ?", userID, true)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domain.ErrNoDefault
	}
	if err != nil {
		return nil, err
	}
	return toResponse(record)
}

// Duplicate clones a template under the caller's name, defaulting to a
// "(Copy)" suffix. The copy is never the default.
func (s *Service) Duplicate(ctx context.Context, id string, req domain.DuplicateRequest) (*domain.Response, error) {
	record, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = record.Name + " (Copy)"
	}

	now := time.Now().UTC()
	copy := &domain.CustomTemplate{
		ID:          s.genID.Generate(),
		UserID:      record.UserID,
		Name:        name,
		Description: record.Description,
		Layout:      record.Layout,
		IsDefault:   false,
		Thumbnail:   record.Thumbnail,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Insert(ctx, copy); err != nil {
		return nil, err
	}
	return toResponse(copy)
}

func (s *Service) find(ctx context.Context, id string) (*domain.CustomTemplate, error) {
	parsed, err := domain.ParseID(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	userID := requestctx.UserIDFromContext(ctx)
	record, err := s.repo.FindOne(ctx, "id = ? AND user_id = ?", parsed, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domain.ErrNotFound
	}
	return record, err
}

func marshalLayout(l builder.Layout) ([]byte, error) {
	if len(l.Components) == 0 && l.Name == "" {
		return nil, domain.ErrInvalidLayout
	}
	payload, err := json.Marshal(l)
	if err != nil {
		return nil, domain.ErrInvalidLayout
	}
	return payload, nil
}

func toResponse(record *domain.CustomTemplate) (*domain.Response, error) {
	var layout builder.Layout
	if err := json.Unmarshal(record.Layout, &layout); err != nil {
		return nil, domain.ErrInvalidLayout
	}
	return &domain.Response{
		ID:          record.ID.String(),
		Name:        record.Name,
		Description: record.Description,
		Layout:      layout,
		IsDefault:   record.IsDefault,
		Thumbnail:   record.Thumbnail,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}, nil
}
