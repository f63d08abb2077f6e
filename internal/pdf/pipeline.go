package pdf

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	clientdomain "github.com/silzatelesols/billify/internal/client/domain"
	companydomain "github.com/silzatelesols/billify/internal/company/domain"
	invoicedomain "github.com/silzatelesols/billify/internal/invoice/domain"
	"github.com/silzatelesols/billify/internal/invoice/render"
	templatedomain "github.com/silzatelesols/billify/internal/invoicetemplate/domain"
	"github.com/silzatelesols/billify/internal/mailer"
	settingsdomain "github.com/silzatelesols/billify/internal/settings/domain"
	"github.com/silzatelesols/billify/internal/storage"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// DefaultTemplateID selects the built-in invoice document instead of a
// saved designer layout.
const DefaultTemplateID = render.DefaultGeneratorID

var two = decimal.NewFromInt(2)

type GenerateRequest struct {
	InvoiceID string
	// TemplateID overrides the user's default template. Empty selects
	// the settings default.
	TemplateID string
}

// Result reports what each delivery stage achieved. The PDF bytes are
// always present on success; upload and email are best-effort and
// record their failures instead of aborting.
type Result struct {
	PDF            []byte `json:"-"`
	Filename       string `json:"filename"`
	Pages          int    `json:"pages"`
	S3URL          string `json:"s3_url,omitempty"`
	Uploaded       bool   `json:"uploaded"`
	EmailSent      bool   `json:"email_sent"`
	LocalDelivered bool   `json:"local_delivered"`
	UploadError    string `json:"upload_error,omitempty"`
	EmailError     string `json:"email_error,omitempty"`
}

type GeneratorParam struct {
	fx.In

	Log         *zap.Logger
	InvoiceSvc  invoicedomain.Service
	ClientSvc   clientdomain.Service
	CompanySvc  companydomain.Service
	TemplateSvc templatedomain.Service
	SettingsSvc settingsdomain.Service
	Registry    *render.Registry
	LayoutRend  render.LayoutRenderer
	Rasterizer  Rasterizer
	Store       storage.ObjectStore `optional:"true"`
	Mailer      mailer.Mailer       `optional:"true"`
}

// Generator runs the invoice-to-PDF pipeline: render HTML, rasterize,
// paginate, then deliver (upload, email, local download).
type Generator struct {
	log         *zap.Logger
	invoiceSvc  invoicedomain.Service
	clientSvc   clientdomain.Service
	companySvc  companydomain.Service
	templateSvc templatedomain.Service
	settingsSvc settingsdomain.Service
	registry    *render.Registry
	layoutRend  render.LayoutRenderer
	rasterizer  Rasterizer
	store       storage.ObjectStore
	mailer      mailer.Mailer
	httpClient  *http.Client
}

func NewGenerator(p GeneratorParam) *Generator {
	return &Generator{
		log:         p.Log.Named("pdf.generator"),
		invoiceSvc:  p.InvoiceSvc,
		clientSvc:   p.ClientSvc,
		companySvc:  p.CompanySvc,
		templateSvc: p.TemplateSvc,
		settingsSvc: p.SettingsSvc,
		registry:    p.Registry,
		layoutRend:  p.LayoutRend,
		rasterizer:  p.Rasterizer,
		store:       p.Store,
		mailer:      p.Mailer,
		httpClient:  &http.Client{Timeout: logoFetchTimeout},
	}
}

func (g *Generator) Generate(ctx context.Context, req GenerateRequest) (*Result, error) {
	invoice, err := g.invoiceSvc.GetByID(ctx, req.InvoiceID)
	if err != nil {
		return nil, err
	}
	client, err := g.clientSvc.GetByID(ctx, invoice.ClientID.String())
	if err != nil {
		return nil, err
	}
	settings, err := g.settingsSvc.Get(ctx)
	if err != nil {
		return nil, err
	}

	input := g.buildRenderInput(ctx, invoice, client)

	html, err := g.renderHTML(ctx, req, settings, input)
	if err != nil {
		return nil, err
	}

	raster, err := g.rasterizer.RasterizePNG(ctx, html, PageWidthPx)
	if err != nil {
		return nil, fmt.Errorf("rasterizing invoice %s: %w", invoice.InvoiceNumber, err)
	}

	doc, pages, err := PaginatePNG(raster)
	if err != nil {
		return nil, fmt.Errorf("paginating invoice %s: %w", invoice.InvoiceNumber, err)
	}

	result := &Result{
		PDF:            doc,
		Filename:       fmt.Sprintf("Invoice-%s.pdf", invoice.InvoiceNumber),
		Pages:          pages,
		LocalDelivered: true,
	}

	g.deliver(ctx, settings, invoice, client, input, result)

	g.log.Info("invoice pdf generated",
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.Int("bytes", len(doc)),
		zap.Bool("uploaded", result.Uploaded),
		zap.Bool("email_sent", result.EmailSent),
	)
	return result, nil
}

// renderHTML picks the document source: an explicit template id, the
// settings default, or the default built-in document. Built-in generator
// ids resolve before saved layouts; unknown template ids fall back to
// the default document.
func (g *Generator) renderHTML(ctx context.Context, req GenerateRequest, settings *settingsdomain.AppSettings, input render.RenderInput) (string, error) {
	templateID := req.TemplateID
	if templateID == "" {
		templateID = settings.DefaultTemplateID
	}

	if gen, ok := g.registry.Lookup(templateID); ok {
		return gen.RenderHTML(input)
	}

	if templateID != "" {
		tmpl, err := g.templateSvc.GetByID(ctx, templateID)
		if err == nil {
			return g.layoutRend.RenderLayoutHTML(tmpl.Layout, input)
		}
		if !errors.Is(err, templatedomain.ErrNotFound) && !errors.Is(err, templatedomain.ErrInvalidID) {
			return "", err
		}
		g.log.Warn("template not found, using built-in document", zap.String("template_id", templateID))
	}

	return g.registry.Default().RenderHTML(input)
}

func (g *Generator) buildRenderInput(ctx context.Context, invoice *invoicedomain.Invoice, client *clientdomain.Client) render.RenderInput {
	input := render.RenderInput{
		Client: render.ClientView{
			Name:        client.Name,
			CompanyName: client.CompanyName,
			Address:     client.Address,
			City:        client.City,
			State:       client.State,
			PinCode:     client.PinCode,
			GSTIN:       client.GSTIN,
		},
		Invoice: render.InvoiceView{
			Number:                  invoice.InvoiceNumber,
			Status:                  string(invoice.Status),
			InvoiceDate:             invoice.InvoiceDate,
			DueDate:                 invoice.DueDate,
			Subtotal:                invoice.Subtotal,
			TotalGST:                invoice.TotalGST,
			TotalAmount:             invoice.TotalAmount,
			AmountInWords:           invoicedomain.AmountInWords(invoice.TotalAmount),
			GSTPayableReverseCharge: invoice.GSTPayableReverseCharge,
			Notes:                   invoice.Notes,
		},
	}

	for _, item := range invoice.Items {
		input.Items = append(input.Items, render.LineItemView{
			Description: item.ItemName,
			HSNSAC:      item.HSNSAC,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal,
		})
	}

	supplierState := ""
	if profile, err := g.companySvc.Get(ctx); err == nil {
		supplierState = profile.State
		input.Company = render.CompanyView{
			Name:              profile.CompanyName,
			Address:           profile.Address,
			City:              profile.City,
			State:             profile.State,
			PinCode:           profile.PinCode,
			Phone:             profile.Phone,
			Email:             profile.Email,
			Website:           profile.Website,
			GSTIN:             profile.GSTIN,
			PAN:               profile.PAN,
			CIN:               profile.CIN,
			BankName:          profile.BankName,
			BankAccountNumber: profile.BankAccountNumber,
			BankIFSC:          profile.BankIFSC,
			LogoURL:           ResolveLogo(ctx, g.httpClient, g.store, g.log, profile.LogoURL),
		}
	}

	// split the stored GST total for display
	if invoicedomain.IsInterState(supplierState, client.State) {
		input.Invoice.IGST = invoice.TotalGST
	} else {
		half := invoice.TotalGST.Div(two).Round(2)
		input.Invoice.CGST = half
		input.Invoice.SGST = half
	}
	return input
}

// deliver runs the best-effort stages. Upload and email failures are
// recorded on the result; the local PDF is already in hand.
func (g *Generator) deliver(ctx context.Context, settings *settingsdomain.AppSettings, invoice *invoicedomain.Invoice, client *clientdomain.Client, input render.RenderInput, result *Result) {
	if settings.EnableS3Upload && g.store != nil {
		key := g.store.ObjectKey("invoices", "pdf")
		if err := g.store.Put(ctx, key, "application/pdf", result.PDF); err != nil {
			result.UploadError = err.Error()
		} else {
			result.Uploaded = true
			url, err := g.store.SignedURL(ctx, key)
			if err != nil {
				g.log.Warn("failed to presign pdf url", zap.Error(err), zap.String("key", key))
			} else {
				result.S3URL = url
			}
		}
	}

	if settings.EnableEmailNotifications && g.mailer != nil && client.Email != "" {
		if result.S3URL == "" {
			result.EmailError = "no download link available"
			return
		}
		err := g.mailer.SendInvoiceNotification(ctx, mailer.Notification{
			ClientEmail:   client.Email,
			ClientName:    client.Name,
			CompanyName:   input.Company.Name,
			InvoiceNumber: invoice.InvoiceNumber,
			InvoiceLink:   result.S3URL,
			DueDate:       invoice.DueDate.UTC().Format(time.DateOnly),
		})
		if err != nil {
			result.EmailError = err.Error()
		} else {
			result.EmailSent = true
		}
	}
}
