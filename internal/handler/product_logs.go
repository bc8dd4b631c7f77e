package handler

import (
	"net/http"
	"time"

	"github.com/criissj/gestion-de-inventario/internal/apierror"
	"github.com/criissj/gestion-de-inventario/internal/dto"
	"github.com/criissj/gestion-de-inventario/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProductLogsHandler serves the per-product audit trail rendered in the
// history modal.
type ProductLogsHandler struct {
	repo repository.ProductLogRepository
}

func NewProductLogsHandler(repo repository.ProductLogRepository) *ProductLogsHandler {
	return &ProductLogsHandler{repo: repo}
}

func (h *ProductLogsHandler) ListByProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}

	logs, err := h.repo.ListByProduct(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to fetch product logs"))
		return
	}

	resp := make([]dto.ProductLogResponse, 0, len(logs))
	for _, l := range logs {
		resp = append(resp, dto.ProductLogResponse{
			ID:        l.ID.String(),
			ProductID: l.ProductID.String(),
			Action:    l.Action,
			Details:   l.Details,
			Timestamp: l.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, resp)
}
