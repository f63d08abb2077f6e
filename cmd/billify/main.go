package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/silzatelesols/billify/internal/audit"
	"github.com/silzatelesols/billify/internal/client"
	"github.com/silzatelesols/billify/internal/clock"
	"github.com/silzatelesols/billify/internal/company"
	"github.com/silzatelesols/billify/internal/config"
	"github.com/silzatelesols/billify/internal/invoice"
	"github.com/silzatelesols/billify/internal/invoicetemplate"
	"github.com/silzatelesols/billify/internal/logger"
	"github.com/silzatelesols/billify/internal/mailer"
	"github.com/silzatelesols/billify/internal/migration"
	"github.com/silzatelesols/billify/internal/observability/tracing"
	"github.com/silzatelesols/billify/internal/pdf"
	"github.com/silzatelesols/billify/internal/product"
	"github.com/silzatelesols/billify/internal/scheduler"
	"github.com/silzatelesols/billify/internal/seed"
	"github.com/silzatelesols/billify/internal/server"
	"github.com/silzatelesols/billify/internal/settings"
	"github.com/silzatelesols/billify/internal/storage"
	"github.com/silzatelesols/billify/pkg/db"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var version = "dev"

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		tracing.Module,
		clock.Module,
		fx.Provide(func() *snowflake.Node {
			node, err := snowflake.NewNode(1)
			if err != nil {
				panic(err)
			}
			return node
		}),
		db.Module,
		fx.Invoke(func(conn *gorm.DB, node *snowflake.Node) error {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := migration.RunMigrations(sqlDB); err != nil {
				return err
			}
			return seed.EnsureDefaultSettings(conn, node)
		}),

		company.Module,
		client.Module,
		product.Module,
		invoicetemplate.Module,
		settings.Module,
		invoice.Module,
		audit.Module,
		scheduler.Module,

		storage.Module,
		mailer.Module,
		pdf.Module,

		server.Module,
	)
	app.Run()
}
