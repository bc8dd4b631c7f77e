package handler

import (
	"net/http"

	"github.com/criissj/gestion-de-inventario/internal/apierror"
	"github.com/criissj/gestion-de-inventario/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	resp, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to compute dashboard stats"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DashboardHandler) Trends(c *gin.Context) {
	resp, err := h.svc.Trends(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to compute sales trends"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
