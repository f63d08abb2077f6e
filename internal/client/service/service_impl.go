package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/silzatelesols/billify/internal/client/domain"
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
	repo  repository.Repository[domain.Client]
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("client.service"),
		genID: p.GenID,
		repo:  repository.ProvideStore[domain.Client](p.DB),
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Client, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	now := time.Now().UTC()
	record := &domain.Client{
		ID:          s.genID.Generate(),
		Name:        name,
		CompanyName: strings.TrimSpace(req.CompanyName),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		Address:     strings.TrimSpace(req.Address),
		City:        strings.TrimSpace(req.City),
		State:       strings.TrimSpace(req.State),
		PinCode:     strings.TrimSpace(req.PinCode),
		GSTIN:       strings.ToUpper(strings.TrimSpace(req.GSTIN)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Insert(ctx, record); err != nil {
		s.log.Error("failed to create client", zap.Error(err))
		return nil, err
	}
	return record, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Client, error) {
	q := s.db.WithContext(ctx).Model(&domain.Client{}).Order("name ASC")
	if search := strings.TrimSpace(req.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(company_name) LIKE ? OR LOWER(email) LIKE ?", like, like, like)
	}
	if state := strings.TrimSpace(req.State); state != "" {
		q = q.Where("state = ?", state)
	}

	var records []domain.Client
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Client, error) {
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

func (s *Service) Update(ctx context.Context, id string, req domain.UpdateRequest) (*domain.Client, error) {
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
	if req.CompanyName != nil {
		record.CompanyName = strings.TrimSpace(*req.CompanyName)
	}
	if req.Email != nil {
		record.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		record.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		record.Address = strings.TrimSpace(*req.Address)
	}
	if req.City != nil {
		record.City = strings.TrimSpace(*req.City)
	}
	if req.State != nil {
		record.State = strings.TrimSpace(*req.State)
	}
	if req.PinCode != nil {
		record.PinCode = strings.TrimSpace(*req.PinCode)
	}
	if req.GSTIN != nil {
		record.GSTIN = strings.ToUpper(strings.TrimSpace(*req.GSTIN))
	}
	record.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, record); err != nil {
		s.log.Error("failed to update client", zap.Error(err), zap.String("client_id", id))
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
