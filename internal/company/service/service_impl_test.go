package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/silzatelesols/billify/internal/company/domain"
	"github.com/silzatelesols/billify/pkg/repository"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCompanyService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.CompanyProfile{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}
	svc := &Service{
		log:   zap.NewNop(),
		genID: node,
		repo:  repository.ProvideStore[domain.CompanyProfile](db),
	}
	return svc, db
}

func TestCompanyGetBeforeSave(t *testing.T) {
	svc, _ := setupCompanyService(t)

	if _, err := svc.Get(context.Background()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCompanySaveCreatesThenUpdates(t *testing.T) {
	svc, db := setupCompanyService(t)
	ctx := context.Background()

	first, err := svc.Save(ctx, domain.SaveRequest{
		CompanyName: "Acme Corporation",
		State:       "Maharashtra",
		GSTIN:       " 27aapfu0939f1zv ",
		PAN:         "aapfu0939f",
		BankIFSC:    "hdfc0001234",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if first.GSTIN != "27AAPFU0939F1ZV" || first.PAN != "AAPFU0939F" || first.BankIFSC != "HDFC0001234" {
		t.Fatalf("identifiers not uppercased: %+v", first)
	}

	second, err := svc.Save(ctx, domain.SaveRequest{
		CompanyName: "Acme Corporation Pvt Ltd",
		State:       "Maharashtra",
	})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("second save created a new row")
	}
	if second.CompanyName != "Acme Corporation Pvt Ltd" {
		t.Fatalf("name = %q", second.CompanyName)
	}

	var count int64
	if err := db.Model(&domain.CompanyProfile{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("rows = %d, want 1", count)
	}
}

func TestCompanySaveRequiresName(t *testing.T) {
	svc, _ := setupCompanyService(t)

	if _, err := svc.Save(context.Background(), domain.SaveRequest{CompanyName: "  "}); !errors.Is(err, domain.ErrInvalidCompanyName) {
		t.Fatalf("expected invalid company name, got %v", err)
	}
}
