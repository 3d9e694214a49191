package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/store-ratings/internal/httperr"
	"github.com/BruksfildServices01/store-ratings/internal/httpresp"
	ucAdmin "github.com/BruksfildServices01/store-ratings/internal/usecase/admin"
	ucStore "github.com/BruksfildServices01/store-ratings/internal/usecase/store"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AdminHandler struct {
	metrics   *ucAdmin.GetMetrics
	users     *ucAdmin.ListUsers
	stores    *ucStore.SearchStores
	export    *ucAdmin.ExportStores
	auditLogs *ucAdmin.ListAuditLogs
	logger    *slog.Logger
}

func NewAdminHandler(
	metrics *ucAdmin.GetMetrics,
	users *ucAdmin.ListUsers,
	stores *ucStore.SearchStores,
	export *ucAdmin.ExportStores,
	auditLogs *ucAdmin.ListAuditLogs,
	logger *slog.Logger,
) *AdminHandler {
	return &AdminHandler{
		metrics:   metrics,
		users:     users,
		stores:    stores,
		export:    export,
		auditLogs: auditLogs,
		logger:    logger,
	}
}

func (h *AdminHandler) Metrics(c *gin.Context) {
	m, err := h.metrics.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	httpresp.OK(c, m)
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.users.Execute(c.Request.Context(), c.Query("search"))
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	httpresp.Slice(c, users)
}

func (h *AdminHandler) ListStores(c *gin.Context) {
	stores, err := h.stores.Execute(c.Request.Context(), c.Query("search"))
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	httpresp.Slice(c, stores)
}

func (h *AdminHandler) ExportStores(c *gin.Context) {
	data, err := h.export.Execute(c.Request.Context(), c.Query("search"))
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	filename := fmt.Sprintf("stores-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		httperr.Validation(c, []string{"page must be a number"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil {
		httperr.Validation(c, []string{"limit must be a number"})
		return
	}

	out, err := h.auditLogs.Execute(c.Request.Context(), ucAdmin.AuditLogFilter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	httpresp.OK(c, out)
}
