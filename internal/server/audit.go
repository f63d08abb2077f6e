package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	auditdomain "github.com/silzatelesols/billify/internal/audit/domain"
)

// @Summary      List Audit Logs
// @Description  Query the audit trail, newest first
// @Tags         audit
// @Produce      json
// @Param        action      query string false "Action"
// @Param        target_type query string false "Target Type"
// @Param        target_id   query string false "Target ID"
// @Param        start_at    query string false "Start (RFC3339)"
// @Param        end_at      query string false "End (RFC3339)"
// @Param        limit       query int    false "Limit"
// @Success      200  {object}  []auditdomain.AuditLog
// @Router       /audit-logs [get]
func (s *Server) ListAuditLogs(c *gin.Context) {
	filter := auditdomain.ListFilter{
		Action:     strings.TrimSpace(c.Query("action")),
		TargetType: strings.TrimSpace(c.Query("target_type")),
		TargetID:   strings.TrimSpace(c.Query("target_id")),
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			AbortWithError(c, newValidationError("limit", "invalid_limit", "limit must be a non-negative integer"))
			return
		}
		filter.Limit = limit
	}

	startAt, err := parseOptionalTime(c.Query("start_at"))
	if err != nil {
		AbortWithError(c, newValidationError("start_at", "invalid_start_at", "start_at must be RFC3339"))
		return
	}
	filter.StartAt = startAt

	endAt, err := parseOptionalTime(c.Query("end_at"))
	if err != nil {
		AbortWithError(c, newValidationError("end_at", "invalid_end_at", "end_at must be RFC3339"))
		return
	}
	filter.EndAt = endAt

	resp, err := s.auditSvc.List(c.Request.Context(), filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func parseOptionalTime(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
