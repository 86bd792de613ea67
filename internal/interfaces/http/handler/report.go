package handler

import (
	"strconv"
	"time"

	appbilling "github.com/crediario/backend/internal/application/billing"
	"github.com/gin-gonic/gin"
)

// ReportHandler serves the KPI and reporting endpoints
type ReportHandler struct {
	BaseHandler
	reportService *appbilling.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *appbilling.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Dashboard handles GET /reports/dashboard
func (h *ReportHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.reportService.Dashboard(c.Request.Context(), time.Now())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dashboard)
}

// Received handles GET /reports/received?year=&month=. It sums installments
// by the date they were actually paid, not when their contract was signed.
func (h *ReportHandler) Received(c *gin.Context) {
	now := time.Now()
	year, ok := h.intQuery(c, "year", now.Year())
	if !ok {
		return
	}
	month, ok := h.intQuery(c, "month", int(now.Month()))
	if !ok {
		return
	}
	if month < 1 || month > 12 {
		h.BadRequest(c, "month must be between 1 and 12")
		return
	}

	total, err := h.reportService.SumReceivedInMonth(c.Request.Context(), year, time.Month(month))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, total)
}

// Deals handles GET /reports/deals?start=&end=. It sums contract totals by
// creation date over the half-open interval [start, end).
func (h *ReportHandler) Deals(c *gin.Context) {
	start, ok := h.dateQuery(c, "start")
	if !ok {
		return
	}
	end, ok := h.dateQuery(c, "end")
	if !ok {
		return
	}
	if !end.After(start) {
		h.BadRequest(c, "end must be after start")
		return
	}

	total, err := h.reportService.SumDealsInPeriod(c.Request.Context(), start, end)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, total)
}

func (h *ReportHandler) intQuery(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		h.BadRequest(c, name+" must be an integer")
		return 0, false
	}
	return value, true
}

func (h *ReportHandler) dateQuery(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		h.BadRequest(c, name+" is required in YYYY-MM-DD form")
		return time.Time{}, false
	}
	value, err := time.Parse("2006-01-02", raw)
	if err != nil {
		h.BadRequest(c, name+" must be a date in YYYY-MM-DD form")
		return time.Time{}, false
	}
	return value, true
}
