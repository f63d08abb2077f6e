package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	auditdomain "github.com/silzatelesols/billify/internal/audit/domain"
	clientdomain "github.com/silzatelesols/billify/internal/client/domain"
	companydomain "github.com/silzatelesols/billify/internal/company/domain"
	"github.com/silzatelesols/billify/internal/config"
	invoicedomain "github.com/silzatelesols/billify/internal/invoice/domain"
	templatedomain "github.com/silzatelesols/billify/internal/invoicetemplate/domain"
	"github.com/silzatelesols/billify/internal/logger"
	"github.com/silzatelesols/billify/internal/observability/metrics"
	"github.com/silzatelesols/billify/internal/observability/tracing"
	"github.com/silzatelesols/billify/internal/pdf"
	productdomain "github.com/silzatelesols/billify/internal/product/domain"
	"github.com/silzatelesols/billify/internal/requestctx"
	settingsdomain "github.com/silzatelesols/billify/internal/settings/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// pdfRateLimit caps PDF generations per client IP per window; the
// pipeline holds a headless browser page for the whole request.
const (
	pdfRateLimit  = 10
	pdfRateWindow = time.Minute
)

type ServerParam struct {
	fx.In

	Cfg         config.Config
	Log         *zap.Logger
	DB          *gorm.DB
	CompanySvc  companydomain.Service
	ClientSvc   clientdomain.Service
	ProductSvc  productdomain.Service
	InvoiceSvc  invoicedomain.Service
	TemplateSvc templatedomain.Service
	SettingsSvc settingsdomain.Service
	AuditSvc    auditdomain.Service
	Generator   *pdf.Generator
}

type Server struct {
	cfg         config.Config
	log         *zap.Logger
	db          *gorm.DB
	companySvc  companydomain.Service
	clientSvc   clientdomain.Service
	productSvc  productdomain.Service
	invoiceSvc  invoicedomain.Service
	templateSvc templatedomain.Service
	settingsSvc settingsdomain.Service
	auditSvc    auditdomain.Service
	generator   *pdf.Generator
	pdfLimiter  *rateLimiter
}

func NewServer(p ServerParam) *Server {
	return &Server{
		cfg:         p.Cfg,
		log:         p.Log.Named("server"),
		db:          p.DB,
		companySvc:  p.CompanySvc,
		clientSvc:   p.ClientSvc,
		productSvc:  p.ProductSvc,
		invoiceSvc:  p.InvoiceSvc,
		templateSvc: p.TemplateSvc,
		settingsSvc: p.SettingsSvc,
		auditSvc:    p.AuditSvc,
		generator:   p.Generator,
		pdfLimiter:  newRateLimiter(pdfRateLimit, pdfRateWindow),
	}
}

// NewEngine builds the gin router with all routes registered.
func NewEngine(s *Server, cfg config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(tracing.GinMiddleware())
	engine.Use(logger.GinMiddleware(logger.MiddlewareConfig{SkipPaths: []string{"/healthz"}}))
	if httpMetrics, err := metrics.NewHTTPMetrics(); err != nil {
		s.log.Warn("http metrics disabled", zap.Error(err))
	} else {
		engine.Use(metrics.GinMiddleware(httpMetrics))
	}
	engine.Use(userScopeMiddleware())

	engine.GET("/healthz", s.Healthz)

	api := engine.Group("/api/v1")
	{
		api.GET("/company", s.GetCompanyProfile)
		api.PUT("/company", s.SaveCompanyProfile)

		api.POST("/clients", s.CreateClient)
		api.GET("/clients", s.ListClients)
		api.GET("/clients/:id", s.GetClientByID)
		api.PATCH("/clients/:id", s.UpdateClient)
		api.DELETE("/clients/:id", s.DeleteClient)

		api.POST("/products", s.CreateProduct)
		api.GET("/products", s.ListProducts)
		api.GET("/products/:id", s.GetProductByID)
		api.PATCH("/products/:id", s.UpdateProduct)
		api.DELETE("/products/:id", s.DeleteProduct)

		api.POST("/invoices", s.CreateInvoice)
		api.GET("/invoices", s.ListInvoices)
		api.GET("/invoices/:id", s.GetInvoiceByID)
		api.PATCH("/invoices/:id", s.UpdateInvoice)
		api.DELETE("/invoices/:id", s.DeleteInvoice)
		api.POST("/invoices/:id/pdf", s.GenerateInvoicePDF)

		api.GET("/templates/components", s.ListTemplateComponents)
		api.POST("/templates", s.CreateTemplate)
		api.GET("/templates", s.ListTemplates)
		api.GET("/templates/default", s.GetDefaultTemplate)
		api.GET("/templates/:id", s.GetTemplateByID)
		api.PATCH("/templates/:id", s.UpdateTemplate)
		api.DELETE("/templates/:id", s.DeleteTemplate)
		api.POST("/templates/:id/default", s.SetDefaultTemplate)
		api.POST("/templates/:id/duplicate", s.DuplicateTemplate)
		api.POST("/templates/preview", s.PreviewTemplate)

		api.GET("/settings", s.GetSettings)
		api.PATCH("/settings", s.UpdateSettings)

		api.GET("/audit-logs", s.ListAuditLogs)
	}

	return engine
}

// userScopeMiddleware propagates the caller identity into the request
// context. Absent headers fall back to the single-tenant default user.
func userScopeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ctx = requestctx.WithUserID(ctx, c.GetHeader("X-User-Id"))
		ctx = requestctx.WithRequestID(ctx, c.GetHeader("X-Request-Id"))
		ctx = requestctx.WithIPAddress(ctx, c.ClientIP())
		ctx = requestctx.WithUserAgent(ctx, c.Request.UserAgent())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func (s *Server) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RunHTTP starts the HTTP listener under the fx lifecycle.
func RunHTTP(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			log.Info("http server starting", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

var Module = fx.Module("server",
	fx.Provide(NewServer),
	fx.Provide(NewEngine),
	fx.Invoke(RunHTTP),
)
