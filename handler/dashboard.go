package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ooda-AI-GB/gb-gdev-legal/service"
)

type DashboardHandler struct {
	dashboard *service.DashboardService
}

func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Get returns the aggregated dashboard snapshot.
func (h *DashboardHandler) Get(c *gin.Context) {
	snapshot, err := h.dashboard.Snapshot()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
