package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	clientdomain "github.com/silzatelesols/billify/internal/client/domain"
	"github.com/silzatelesols/billify/internal/clock"
	companydomain "github.com/silzatelesols/billify/internal/company/domain"
	invoicedomain "github.com/silzatelesols/billify/internal/invoice/domain"
	"github.com/silzatelesols/billify/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// defaultGSTRate applies when an invoice is created without an explicit
// rate.
var defaultGSTRate = decimal.NewFromInt(18)

// defaultDueDays is the payment term added to the invoice date when no
// due date is supplied.
const defaultDueDays = 30

type ServiceParam struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	Clock      clock.Clock
	ClientSvc  clientdomain.Service
	CompanySvc companydomain.Service
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	genID      *snowflake.Node
	clock      clock.Clock
	clientSvc  clientdomain.Service
	companySvc companydomain.Service
	repo       repository.Repository[invoicedomain.Invoice]
}

func NewService(p ServiceParam) invoicedomain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("invoice.service"),
		genID:      p.GenID,
		clock:      p.Clock,
		clientSvc:  p.ClientSvc,
		companySvc: p.CompanySvc,
		repo:       repository.ProvideStore[invoicedomain.Invoice](p.DB),
	}
}

func (s *Service) Create(ctx context.Context, req invoicedomain.CreateRequest) (*invoicedomain.Invoice, error) {
	client, err := s.clientSvc.GetByID(ctx, req.ClientID)
	if err != nil {
		return nil, invoicedomain.ErrInvalidClient
	}
	if len(req.Items) == 0 {
		return nil, invoicedomain.ErrNoItems
	}

	rate := defaultGSTRate
	if req.GSTRate != nil {
		rate = *req.GSTRate
	}
	if rate.IsNegative() {
		return nil, invoicedomain.ErrInvalidGSTRate
	}

	invoiceDate := s.clock.Now()
	if req.InvoiceDate != nil {
		invoiceDate = req.InvoiceDate.UTC()
	}
	dueDate := invoiceDate.AddDate(0, 0, defaultDueDays)
	if req.DueDate != nil {
		dueDate = req.DueDate.UTC()
	}

	subtotal := decimal.Zero
	items := make([]invoicedomain.InvoiceItem, 0, len(req.Items))
	for _, item := range req.Items {
		name := strings.TrimSpace(item.ItemName)
		if name == "" || item.Quantity.Sign() <= 0 || item.UnitPrice.IsNegative() {
			return nil, invoicedomain.ErrInvalidItem
		}
		lineTotal := item.Quantity.Mul(item.UnitPrice).Round(2)
		subtotal = subtotal.Add(lineTotal)
		items = append(items, invoicedomain.InvoiceItem{
			ID:        s.genID.Generate(),
			ItemName:  name,
			HSNSAC:    strings.TrimSpace(item.HSNSAC),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: lineTotal,
			CreatedAt: invoiceDate,
		})
	}

	// place of supply follows the company profile state vs the client
	// state; a missing profile degrades to intra-state
	supplierState := ""
	if profile, err := s.companySvc.Get(ctx); err == nil {
		supplierState = profile.State
	}
	tax := invoicedomain.ComputeGST(subtotal, rate, supplierState, client.State)

	record := &invoicedomain.Invoice{
		ID:                      s.genID.Generate(),
		InvoiceNumber:           s.nextInvoiceNumber(ctx, invoiceDate),
		ClientID:                client.ID,
		InvoiceDate:             invoiceDate,
		DueDate:                 dueDate,
		Subtotal:                subtotal,
		TotalGST:                tax.Total,
		TotalAmount:             subtotal.Add(tax.Total),
		GSTPayableReverseCharge: req.GSTPayableReverseCharge,
		Status:                  invoicedomain.StatusDraft,
		Notes:                   strings.TrimSpace(req.Notes),
		CreatedAt:               invoiceDate,
		UpdatedAt:               invoiceDate,
	}
	for i := range items {
		items[i].InvoiceID = record.ID
	}
	record.Items = items

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(record).Error
	})
	if err != nil {
		s.log.Error("failed to create invoice", zap.Error(err))
		return nil, err
	}

	s.log.Info("invoice created",
		zap.String("invoice_id", record.ID.String()),
		zap.String("invoice_number", record.InvoiceNumber),
		zap.String("total_amount", record.TotalAmount.String()),
	)
	return record, nil
}

func (s *Service) List(ctx context.Context, req invoicedomain.ListRequest) ([]invoicedomain.Invoice, error) {
	q := s.db.WithContext(ctx).
		Model(&invoicedomain.Invoice{}).
		Preload("Items").
		Order("created_at DESC")
	if status := strings.TrimSpace(req.Status); status != "" {
		q = q.Where("status = ?", status)
	}
	if clientID := strings.TrimSpace(req.ClientID); clientID != "" {
		parsed, err := invoicedomain.ParseID(clientID)
		if err != nil {
			return nil, invoicedomain.ErrInvalidClient
		}
		q = q.Where("client_id = ?", parsed)
	}

	var records []invoicedomain.Invoice
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*invoicedomain.Invoice, error) {
	parsed, err := invoicedomain.ParseID(id)
	if err != nil {
		return nil, invoicedomain.ErrInvalidID
	}

	var record invoicedomain.Invoice
	err = s.db.WithContext(ctx).Preload("Items").First(&record, "id = ?", parsed).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, invoicedomain.ErrInvoiceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Service) Update(ctx context.Context, id string, req invoicedomain.UpdateRequest) (*invoicedomain.Invoice, error) {
	record, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		if !invoicedomain.ValidStatus(*req.Status) {
			return nil, invoicedomain.ErrInvalidStatus
		}
		record.Status = *req.Status
	}
	if req.Notes != nil {
		record.Notes = strings.TrimSpace(*req.Notes)
	}
	record.UpdatedAt = s.clock.Now()

	err = s.db.WithContext(ctx).
		Model(&invoicedomain.Invoice{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{
			"status":     record.Status,
			"notes":      record.Notes,
			"updated_at": record.UpdatedAt,
		}).Error
	if err != nil {
		s.log.Error("failed to update invoice", zap.Error(err), zap.String("invoice_id", id))
		return nil, err
	}
	return record, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	record, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&invoicedomain.InvoiceItem{}, "invoice_id = ?", record.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&invoicedomain.Invoice{}, "id = ?", record.ID).Error
	})
}

// nextInvoiceNumber assigns the next sequence within the issue month.
// When the count query fails the sequence falls back to a random
// four-digit suffix rather than blocking invoice creation.
func (s *Service) nextInvoiceNumber(ctx context.Context, at time.Time) string {
	start, end := invoicedomain.MonthBounds(at)

	var count int64
	err := s.db.WithContext(ctx).
		Model(&invoicedomain.Invoice{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error
	if err != nil {
		s.log.Warn("invoice count failed, using random sequence", zap.Error(err))
		return invoicedomain.FormatInvoiceNumber(at, 1000+rand.Intn(9000))
	}
	return invoicedomain.FormatInvoiceNumber(at, int(count)+1)
}
