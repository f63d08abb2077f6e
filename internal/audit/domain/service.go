package domain

import (
	"context"
	"time"
)

type ListFilter struct {
	Action     string
	TargetType string
	TargetID   string
	StartAt    *time.Time
	EndAt      *time.Time
	Limit      int
}

// Service records and queries the audit trail. Record never fails the
// caller: write errors are logged and dropped.
type Service interface {
	Record(ctx context.Context, action, targetType, targetID string, metadata map[string]any)
	List(ctx context.Context, filter ListFilter) ([]AuditLog, error)
}
