package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tewodrosk/gibir-api/internal/application/service"
	"github.com/tewodrosk/gibir-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats returns the taxpayer's dashboard statistics
// @Summary Dashboard statistics
// @Description Receipt counts, document review status and the monthly VAT trend
// @Tags dashboard
// @Produce json
// @Param year query int false "Year"
// @Success 200 {object} response.APIResponse
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	year := time.Now().Year()
	if y := c.Query("year"); y != "" {
		v, err := strconv.Atoi(y)
		if err != nil {
			response.BadRequest(c, "year must be a number")
			return
		}
		year = v
	}

	stats, err := h.dashboardService.GetDashboardStats(c.Request.Context(), *userID, year)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard statistics retrieved", stats)
}
