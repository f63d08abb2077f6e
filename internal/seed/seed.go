package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/silzatelesols/billify/internal/requestctx"
	settingsdomain "github.com/silzatelesols/billify/internal/settings/domain"
	"gorm.io/gorm"
)

// EnsureDefaultSettings seeds the single-tenant settings row so the UI
// has defaults before the first PATCH. Reruns are no-ops.
func EnsureDefaultSettings(db *gorm.DB, node *snowflake.Node) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}
	if node == nil {
		return errors.New("seed id generator is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing settingsdomain.AppSettings
		err := tx.Where("user_id = ?", requestctx.DefaultUserID).First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		now := time.Now().UTC()
		row := settingsdomain.AppSettings{
			ID:                          node.Generate(),
			UserID:                      requestctx.DefaultUserID,
			EnableS3Upload:              true,
			EnableEmailNotifications:    true,
			EnableDefaultTemplateButton: false,
			Theme:                       "light",
			DefaultTemplateID:           "default",
			CreatedAt:                   now,
			UpdatedAt:                   now,
		}
		return tx.Create(&row).Error
	})
}
