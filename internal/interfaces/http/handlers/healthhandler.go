package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mirrorly/internal/shared/utils"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "service is healthy", gin.H{
		"status": "ok",
	})
}
