package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/silzatelesols/billify/internal/product/domain"
	"github.com/silzatelesols/billify/pkg/repository"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupProductService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Product{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}
	return &Service{
		db:    db,
		log:   zap.NewNop(),
		genID: node,
		repo:  repository.ProvideStore[domain.Product](db),
	}
}

func TestProductCreateDefaultsGSTRate(t *testing.T) {
	svc := setupProductService(t)

	record, err := svc.Create(context.Background(), domain.CreateRequest{
		Name:      "Web Hosting",
		UnitPrice: decimal.NewFromInt(1200),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got := record.GSTRate.StringFixed(0); got != "18" {
		t.Fatalf("gst rate = %s, want 18", got)
	}
}

func TestProductCreateValidation(t *testing.T) {
	svc := setupProductService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, domain.CreateRequest{Name: " "}); !errors.Is(err, domain.ErrInvalidName) {
		t.Fatalf("expected invalid name, got %v", err)
	}

	if _, err := svc.Create(ctx, domain.CreateRequest{
		Name:      "Hosting",
		UnitPrice: decimal.NewFromInt(-1),
	}); !errors.Is(err, domain.ErrInvalidPrice) {
		t.Fatalf("expected invalid price, got %v", err)
	}

	over := decimal.NewFromInt(150)
	if _, err := svc.Create(ctx, domain.CreateRequest{
		Name:      "Hosting",
		UnitPrice: decimal.NewFromInt(100),
		GSTRate:   &over,
	}); !errors.Is(err, domain.ErrInvalidGSTRate) {
		t.Fatalf("expected invalid gst rate, got %v", err)
	}

	negative := decimal.NewFromInt(-5)
	if _, err := svc.Create(ctx, domain.CreateRequest{
		Name:      "Hosting",
		UnitPrice: decimal.NewFromInt(100),
		GSTRate:   &negative,
	}); !errors.Is(err, domain.ErrInvalidGSTRate) {
		t.Fatalf("expected invalid gst rate, got %v", err)
	}
}

func TestProductListSearch(t *testing.T) {
	svc := setupProductService(t)
	ctx := context.Background()

	for _, name := range []string{"Domain Renewal", "Web Hosting", "SSL Certificate"} {
		if _, err := svc.Create(ctx, domain.CreateRequest{Name: name, UnitPrice: decimal.NewFromInt(100)}); err != nil {
			t.Fatalf("create %q: %v", name, err)
		}
	}

	records, err := svc.List(ctx, domain.ListRequest{Search: "hosting"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 || records[0].Name != "Web Hosting" {
		t.Fatalf("records = %+v", records)
	}

	records, err = svc.List(ctx, domain.ListRequest{})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("list all matched %d, want 3", len(records))
	}
	if records[0].Name != "Domain Renewal" {
		t.Fatalf("order = %q", records[0].Name)
	}
}

func TestProductUpdateAndDelete(t *testing.T) {
	svc := setupProductService(t)
	ctx := context.Background()

	record, err := svc.Create(ctx, domain.CreateRequest{Name: "Hosting", UnitPrice: decimal.NewFromInt(100)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	price := decimal.NewFromInt(250)
	updated, err := svc.Update(ctx, record.ID.String(), domain.UpdateRequest{UnitPrice: &price})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := updated.UnitPrice.StringFixed(0); got != "250" {
		t.Fatalf("price = %s", got)
	}

	if err := svc.Delete(ctx, record.ID.String()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, record.ID.String()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
