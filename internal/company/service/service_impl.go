package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/silzatelesols/billify/internal/company/domain"
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
	log   *zap.Logger
	genID *snowflake.Node
	repo  repository.Repository[domain.CompanyProfile]
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		log:   p.Log.Named("company.service"),
		genID: p.GenID,
		repo:  repository.ProvideStore[domain.CompanyProfile](p.DB),
	}
}

func (s *Service) Get(ctx context.Context) (*domain.CompanyProfile, error) {
	profile, err := s.repo.FindOne(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domain.ErrNotFound
	}
	return profile, err
}

func (s *Service) Save(ctx context.Context, req domain.SaveRequest) (*domain.CompanyProfile, error) {
	name := strings.TrimSpace(req.CompanyName)
	if name == "" {
		return nil, domain.ErrInvalidCompanyName
	}

	now := time.Now().UTC()
	profile, err := s.repo.FindOne(ctx)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		profile = &domain.CompanyProfile{ID: s.genID.Generate(), CreatedAt: now}
	case err != nil:
		return nil, err
	}

	profile.CompanyName = name
	profile.Address = strings.TrimSpace(req.Address)
	profile.City = strings.TrimSpace(req.City)
	profile.State = strings.TrimSpace(req.State)
	profile.PinCode = strings.TrimSpace(req.PinCode)
	profile.Phone = strings.TrimSpace(req.Phone)
	profile.Email = strings.TrimSpace(req.Email)
	profile.Website = strings.TrimSpace(req.Website)
	profile.GSTIN = strings.ToUpper(strings.TrimSpace(req.GSTIN))
	profile.PAN = strings.ToUpper(strings.TrimSpace(req.PAN))
	profile.CIN = strings.ToUpper(strings.TrimSpace(req.CIN))
	profile.LogoURL = strings.TrimSpace(req.LogoURL)
	profile.BankName = strings.TrimSpace(req.BankName)
	profile.BankAccountNumber = strings.TrimSpace(req.BankAccountNumber)
	profile.BankIFSC = strings.ToUpper(strings.TrimSpace(req.BankIFSC))
	profile.UpdatedAt = now

	if err := s.repo.Save(ctx, profile); err != nil {
		s.log.Error("failed to save company profile", zap.Error(err))
		return nil, err
	}
	return profile, nil
}
