package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/silzatelesols/billify/internal/builder"
	"github.com/silzatelesols/billify/internal/invoicetemplate/domain"
	"github.com/silzatelesols/billify/pkg/repository"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTemplateService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.CustomTemplate{}); err != nil {
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
		repo:  repository.ProvideStore[domain.CustomTemplate](db),
	}
}

func testLayout(name string) builder.Layout {
	return builder.NewBlankLayout(name)
}

func TestTemplateCreateAndGet(t *testing.T) {
	svc := setupTemplateService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateRequest{
		Name:   "Modern Blue",
		Layout: testLayout("Modern Blue"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.IsDefault {
		t.Fatalf("new template must not be default")
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Modern Blue" || got.Layout.PageSize != builder.PageA4 {
		t.Fatalf("got = %+v", got)
	}
}

func TestTemplateCreateRejectsEmpty(t *testing.T) {
	svc := setupTemplateService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, domain.CreateRequest{Layout: testLayout("x")}); !errors.Is(err, domain.ErrInvalidName) {
		t.Fatalf("expected invalid name, got %v", err)
	}
	if _, err := svc.Create(ctx, domain.CreateRequest{Name: "Empty"}); !errors.Is(err, domain.ErrInvalidLayout) {
		t.Fatalf("expected invalid layout, got %v", err)
	}
}

func TestSetDefaultKeepsSingleDefault(t *testing.T) {
	svc := setupTemplateService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, domain.CreateRequest{Name: "First", Layout: testLayout("First")})
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	second, err := svc.Create(ctx, domain.CreateRequest{Name: "Second", Layout: testLayout("Second")})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	if _, err := svc.SetDefault(ctx, first.ID); err != nil {
		t.Fatalf("set default first: %v", err)
	}
	if _, err := svc.SetDefault(ctx, second.ID); err != nil {
		t.Fatalf("set default second: %v", err)
	}

	var defaults int64
	if err := svc.db.Model(&domain.CustomTemplate{}).Where("is_default = ?", true).Count(&defaults).Error; err != nil {
		t.Fatalf("count defaults: %v", err)
	}
	if defaults != 1 {
		t.Fatalf("defaults = %d, want 1", defaults)
	}

	current, err := svc.GetDefault(ctx)
	if err != nil {
		t.Fatalf("get default: %v", err)
	}
	if current.ID != second.ID {
		t.Fatalf("default = %s, want %s", current.ID, second.ID)
	}
}

func TestListOrdersByCreationNotUpdate(t *testing.T) {
	svc := setupTemplateService(t)
	ctx := context.Background()

	older, err := svc.Create(ctx, domain.CreateRequest{Name: "Older", Layout: testLayout("Older")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	newer, err := svc.Create(ctx, domain.CreateRequest{Name: "Newer", Layout: testLayout("Newer")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// touching the older template must not move it up the list
	name := "Older Renamed"
	if _, err := svc.Update(ctx, older.ID, domain.UpdateRequest{Name: &name}); err != nil {
		t.Fatalf("update: %v", err)
	}

	items, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d templates, want 2", len(items))
	}
	if items[0].ID != newer.ID || items[1].ID != older.ID {
		t.Fatalf("list order = [%s %s], want newest created first", items[0].Name, items[1].Name)
	}
}

func TestGetDefaultWhenNoneSet(t *testing.T) {
	svc := setupTemplateService(t)

	if _, err := svc.GetDefault(context.Background()); !errors.Is(err, domain.ErrNoDefault) {
		t.Fatalf("expected no default, got %v", err)
	}
}

func TestDuplicateNeverDefault(t *testing.T) {
	svc := setupTemplateService(t)
	ctx := context.Background()

	original, err := svc.Create(ctx, domain.CreateRequest{Name: "Base", Layout: testLayout("Base")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.SetDefault(ctx, original.ID); err != nil {
		t.Fatalf("set default: %v", err)
	}

	copy, err := svc.Duplicate(ctx, original.ID, domain.DuplicateRequest{})
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}
	if copy.Name != "Base (Copy)" {
		t.Fatalf("copy name = %q", copy.Name)
	}
	if copy.IsDefault {
		t.Fatalf("copy must not be default")
	}
	if copy.ID == original.ID {
		t.Fatalf("copy shares id with original")
	}
}

func TestDuplicateWithCallerName(t *testing.T) {
	svc := setupTemplateService(t)
	ctx := context.Background()

	original, err := svc.Create(ctx, domain.CreateRequest{Name: "Base", Layout: testLayout("Base")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	copy, err := svc.Duplicate(ctx, original.ID, domain.DuplicateRequest{Name: "  Quarterly Variant  "})
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}
	if copy.Name != "Quarterly Variant" {
		t.Fatalf("copy name = %q, want caller-supplied name", copy.Name)
	}
}

func TestTemplateUpdateAndDelete(t *testing.T) {
	svc := setupTemplateService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateRequest{Name: "Draft", Layout: testLayout("Draft")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	name := "Final"
	updated, err := svc.Update(ctx, created.ID, domain.UpdateRequest{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Final" {
		t.Fatalf("name = %q", updated.Name)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestTemplateUnknownID(t *testing.T) {
	svc := setupTemplateService(t)
	ctx := context.Background()

	if _, err := svc.GetByID(ctx, "not-a-number"); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected invalid id, got %v", err)
	}
	if _, err := svc.GetByID(ctx, "123456789"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
