package handler

import (
	"net/http"
	"strconv"
	"time"

	"chequesaathi/internal/domain"
	"chequesaathi/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	svc *service.DashboardService
	loc *time.Location
	now func() time.Time
}

func NewDashboardHandler(svc *service.DashboardService, loc *time.Location) *DashboardHandler {
	if loc == nil {
		loc = time.Local
	}
	return &DashboardHandler{svc: svc, loc: loc, now: time.Now}
}

// Stats answers as of now, or as of the optional asOf query parameter.
func (h *DashboardHandler) Stats(c *gin.Context) {
	asOf := h.now().In(h.loc)
	if s := c.Query("asOf"); s != "" {
		t, err := parseDate(s, h.loc)
		if err != nil {
			respondError(c, domain.Validation("Invalid asOf"))
			return
		}
		asOf = t
	}
	stats, err := h.svc.Stats(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) CustomerSummary(c *gin.Context) {
	summary, err := h.svc.CustomerSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": summary, "totalCustomers": len(summary)})
}

func (h *DashboardHandler) RecentActivity(c *gin.Context) {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	activity, err := h.svc.RecentActivity(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}
