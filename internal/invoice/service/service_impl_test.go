package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	clientdomain "github.com/silzatelesols/billify/internal/client/domain"
	"github.com/silzatelesols/billify/internal/clock"
	companydomain "github.com/silzatelesols/billify/internal/company/domain"
	invoicedomain "github.com/silzatelesols/billify/internal/invoice/domain"
	"github.com/silzatelesols/billify/pkg/repository"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type stubClientService struct {
	client *clientdomain.Client
}

func (s *stubClientService) Create(ctx context.Context, req clientdomain.CreateRequest) (*clientdomain.Client, error) {
	return nil, errors.New("not implemented")
}

func (s *stubClientService) List(ctx context.Context, req clientdomain.ListRequest) ([]clientdomain.Client, error) {
	return nil, nil
}

func (s *stubClientService) GetByID(ctx context.Context, id string) (*clientdomain.Client, error) {
	if s.client == nil || s.client.ID.String() != strings.TrimSpace(id) {
		return nil, clientdomain.ErrNotFound
	}
	return s.client, nil
}

func (s *stubClientService) Update(ctx context.Context, id string, req clientdomain.UpdateRequest) (*clientdomain.Client, error) {
	return nil, errors.New("not implemented")
}

func (s *stubClientService) Delete(ctx context.Context, id string) error {
	return errors.New("not implemented")
}

type stubCompanyService struct {
	profile *companydomain.CompanyProfile
}

func (s *stubCompanyService) Get(ctx context.Context) (*companydomain.CompanyProfile, error) {
	if s.profile == nil {
		return nil, companydomain.ErrNotFound
	}
	return s.profile, nil
}

func (s *stubCompanyService) Save(ctx context.Context, req companydomain.SaveRequest) (*companydomain.CompanyProfile, error) {
	return nil, errors.New("not implemented")
}

func setupInvoiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&invoicedomain.Invoice{}, &invoicedomain.InvoiceItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestService(t *testing.T, db *gorm.DB, client *clientdomain.Client, profile *companydomain.CompanyProfile, at time.Time) *Service {
	t.Helper()
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}
	return &Service{
		db:         db,
		log:        zap.NewNop(),
		genID:      node,
		clock:      clock.Fixed{At: at},
		clientSvc:  &stubClientService{client: client},
		companySvc: &stubCompanyService{profile: profile},
		repo:       repository.ProvideStore[invoicedomain.Invoice](db),
	}
}

func testClient(node *snowflake.Node, state string) *clientdomain.Client {
	return &clientdomain.Client{
		ID:    node.Generate(),
		Name:  "Sharma Traders",
		State: state,
	}
}

func TestCreateComputesIntraStateTotals(t *testing.T) {
	db := setupInvoiceTestDB(t)
	node, _ := snowflake.NewNode(2)
	client := testClient(node, "Maharashtra")
	profile := &companydomain.CompanyProfile{CompanyName: "Acme", State: "Maharashtra"}
	at := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	svc := newTestService(t, db, client, profile, at)

	record, err := svc.Create(context.Background(), invoicedomain.CreateRequest{
		ClientID: client.ID.String(),
		Items: []invoicedomain.ItemRequest{
			{ItemName: "Consulting", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(5000)},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if got := record.Subtotal.StringFixed(2); got != "10000.00" {
		t.Fatalf("subtotal = %s, want 10000.00", got)
	}
	if got := record.TotalGST.StringFixed(2); got != "1800.00" {
		t.Fatalf("total gst = %s, want 1800.00", got)
	}
	if got := record.TotalAmount.StringFixed(2); got != "11800.00" {
		t.Fatalf("total = %s, want 11800.00", got)
	}
	if record.Status != invoicedomain.StatusDraft {
		t.Fatalf("status = %s, want draft", record.Status)
	}
	if record.InvoiceNumber != "050324INV0001" {
		t.Fatalf("invoice number = %s, want 050324INV0001", record.InvoiceNumber)
	}
	if !record.DueDate.Equal(at.AddDate(0, 0, 30)) {
		t.Fatalf("due date = %v", record.DueDate)
	}
	if len(record.Items) != 1 || record.Items[0].LineTotal.StringFixed(2) != "10000.00" {
		t.Fatalf("items = %+v", record.Items)
	}
}

func TestCreateSequencesWithinMonth(t *testing.T) {
	db := setupInvoiceTestDB(t)
	node, _ := snowflake.NewNode(3)
	client := testClient(node, "Karnataka")
	at := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	svc := newTestService(t, db, client, nil, at)

	req := invoicedomain.CreateRequest{
		ClientID: client.ID.String(),
		Items: []invoicedomain.ItemRequest{
			{ItemName: "Hosting", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1200)},
		},
	}
	first, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	second, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	if first.InvoiceNumber != "050324INV0001" {
		t.Fatalf("first number = %s", first.InvoiceNumber)
	}
	if second.InvoiceNumber != "050324INV0002" {
		t.Fatalf("second number = %s", second.InvoiceNumber)
	}
}

func TestCreateRejectsUnknownClient(t *testing.T) {
	db := setupInvoiceTestDB(t)
	at := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	svc := newTestService(t, db, nil, nil, at)

	_, err := svc.Create(context.Background(), invoicedomain.CreateRequest{
		ClientID: "12345",
		Items: []invoicedomain.ItemRequest{
			{ItemName: "Hosting", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)},
		},
	})
	if !errors.Is(err, invoicedomain.ErrInvalidClient) {
		t.Fatalf("expected invalid client, got %v", err)
	}
}

func TestCreateRejectsBadItems(t *testing.T) {
	db := setupInvoiceTestDB(t)
	node, _ := snowflake.NewNode(4)
	client := testClient(node, "Delhi")
	at := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	svc := newTestService(t, db, client, nil, at)

	_, err := svc.Create(context.Background(), invoicedomain.CreateRequest{
		ClientID: client.ID.String(),
	})
	if !errors.Is(err, invoicedomain.ErrNoItems) {
		t.Fatalf("expected no items error, got %v", err)
	}

	_, err = svc.Create(context.Background(), invoicedomain.CreateRequest{
		ClientID: client.ID.String(),
		Items: []invoicedomain.ItemRequest{
			{ItemName: "Hosting", Quantity: decimal.Zero, UnitPrice: decimal.NewFromInt(100)},
		},
	})
	if !errors.Is(err, invoicedomain.ErrInvalidItem) {
		t.Fatalf("expected invalid item for zero quantity, got %v", err)
	}

	_, err = svc.Create(context.Background(), invoicedomain.CreateRequest{
		ClientID: client.ID.String(),
		Items: []invoicedomain.ItemRequest{
			{ItemName: "  ", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)},
		},
	})
	if !errors.Is(err, invoicedomain.ErrInvalidItem) {
		t.Fatalf("expected invalid item for blank name, got %v", err)
	}
}

func TestUpdateStatusAndNotes(t *testing.T) {
	db := setupInvoiceTestDB(t)
	node, _ := snowflake.NewNode(5)
	client := testClient(node, "Delhi")
	at := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	svc := newTestService(t, db, client, nil, at)

	record, err := svc.Create(context.Background(), invoicedomain.CreateRequest{
		ClientID: client.ID.String(),
		Items: []invoicedomain.ItemRequest{
			{ItemName: "Hosting", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	sent := invoicedomain.StatusSent
	notes := "Paid via NEFT"
	updated, err := svc.Update(context.Background(), record.ID.String(), invoicedomain.UpdateRequest{
		Status: &sent,
		Notes:  &notes,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != invoicedomain.StatusSent || updated.Notes != notes {
		t.Fatalf("updated = %+v", updated)
	}

	bad := invoicedomain.Status("archived")
	_, err = svc.Update(context.Background(), record.ID.String(), invoicedomain.UpdateRequest{Status: &bad})
	if !errors.Is(err, invoicedomain.ErrInvalidStatus) {
		t.Fatalf("expected invalid status, got %v", err)
	}
}

func TestDeleteRemovesInvoiceAndItems(t *testing.T) {
	db := setupInvoiceTestDB(t)
	node, _ := snowflake.NewNode(6)
	client := testClient(node, "Delhi")
	at := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	svc := newTestService(t, db, client, nil, at)

	record, err := svc.Create(context.Background(), invoicedomain.CreateRequest{
		ClientID: client.ID.String(),
		Items: []invoicedomain.ItemRequest{
			{ItemName: "Hosting", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), record.ID.String()); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := svc.GetByID(context.Background(), record.ID.String()); !errors.Is(err, invoicedomain.ErrInvoiceNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	var itemCount int64
	if err := db.Model(&invoicedomain.InvoiceItem{}).Where("invoice_id = ?", record.ID).Count(&itemCount).Error; err != nil {
		t.Fatalf("count items: %v", err)
	}
	if itemCount != 0 {
		t.Fatalf("items left after delete: %d", itemCount)
	}
}

func TestListFiltersByStatus(t *testing.T) {
	db := setupInvoiceTestDB(t)
	node, _ := snowflake.NewNode(7)
	client := testClient(node, "Delhi")
	at := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	svc := newTestService(t, db, client, nil, at)

	req := invoicedomain.CreateRequest{
		ClientID: client.ID.String(),
		Items: []invoicedomain.ItemRequest{
			{ItemName: "Hosting", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)},
		},
	}
	first, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(context.Background(), req); err != nil {
		t.Fatalf("create: %v", err)
	}

	paid := invoicedomain.StatusPaid
	if _, err := svc.Update(context.Background(), first.ID.String(), invoicedomain.UpdateRequest{Status: &paid}); err != nil {
		t.Fatalf("update: %v", err)
	}

	records, err := svc.List(context.Background(), invoicedomain.ListRequest{Status: "paid"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 || records[0].ID != first.ID {
		t.Fatalf("records = %+v", records)
	}
	if len(records[0].Items) != 1 {
		t.Fatalf("expected items preloaded, got %d", len(records[0].Items))
	}
}
