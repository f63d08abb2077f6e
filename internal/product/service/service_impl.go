package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/silzatelesols/billify/internal/product/domain"
	"github.com/silzatelesols/billify/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// defaultGSTRate applies when a product is created without an explicit
// rate. 18% is the standard services slab.
var defaultGSTRate = decimal.NewFromInt(18)

var maxGSTRate = decimal.NewFromInt(100)

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
	repo  repository.Repository[domain.Product]
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("product.service"),
		genID: p.GenID,
		repo:  repository.ProvideStore[domain.Product](p.DB),
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	if req.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidPrice
	}

	rate := defaultGSTRate
	if req.GSTRate != nil {
		rate = *req.GSTRate
	}
	if err := validateGSTRate(rate); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	record := &domain.Product{
		ID:          s.genID.Generate(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		HSNSAC:      strings.TrimSpace(req.HSNSAC),
		UnitPrice:   req.UnitPrice,
		GSTRate:     rate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Insert(ctx, record); err != nil {
		s.log.Error("failed to create product", zap.Error(err))
		return nil, err
	}
	return record, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Product, error) {
	q := s.db.WithContext(ctx).Model(&domain.Product{}).Order("name ASC")
	if search := strings.TrimSpace(req.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR hsn_sac LIKE ?", like, like, like)
	}

	var records []domain.Product
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	parsed, err := domain.ParseID(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	record, err := s.repo.FindOne(ctx, "id = ?", parsed)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domain.ErrNotFound
	}
	return record, err
}

func (s *Service) Update(ctx context.Context, id string, req domain.UpdateRequest) (*domain.Product, error) {
	record, err := s.GetByID(ctx, id)
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
	if req.HSNSAC != nil {
		record.HSNSAC = strings.TrimSpace(*req.HSNSAC)
	}
	if req.UnitPrice != nil {
		if req.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidPrice
		}
		record.UnitPrice = *req.UnitPrice
	}
	if req.GSTRate != nil {
		if err := validateGSTRate(*req.GSTRate); err != nil {
			return nil, err
		}
		record.GSTRate = *req.GSTRate
	}
	record.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, record); err != nil {
		s.log.Error("failed to update product", zap.Error(err), zap.String("product_id", id))
		return nil, err
	}
	return record, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	record, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, "id = ?", record.ID)
}

func validateGSTRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(maxGSTRate) {
		return domain.ErrInvalidGSTRate
	}
	return nil
}
