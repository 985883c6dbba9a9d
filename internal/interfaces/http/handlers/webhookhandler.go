package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	paymentUsecases "mirrorly/internal/application/payment/usecases"
	"mirrorly/internal/shared/errors"
	"mirrorly/internal/shared/logger"
	"mirrorly/internal/shared/utils"
)

type WebhookHandler struct {
	handleNotificationUC *paymentUsecases.HandleGatewayNotificationUseCase
	logger               logger.Interface
}

func NewWebhookHandler(
	handleNotificationUC *paymentUsecases.HandleGatewayNotificationUseCase,
	logger logger.Interface,
) *WebhookHandler {
	return &WebhookHandler{
		handleNotificationUC: handleNotificationUC,
		logger:               logger,
	}
}

type PaymentNotificationRequest struct {
	OrderID           string `json:"order_id" binding:"required"`
	TransactionStatus string `json:"transaction_status" binding:"required"`
	FraudStatus       string `json:"fraud_status"`
	GrossAmount       string `json:"gross_amount" binding:"required"`
	SignatureKey      string `json:"signature_key" binding:"required"`
	StatusCode        string `json:"status_code" binding:"required"`
}

// HandlePaymentNotification processes payment gateway webhooks. The gateway
// retries any non-200 response, so transient failures must map to 5xx and
// permanent rejections to 4xx.
func (h *WebhookHandler) HandlePaymentNotification(c *gin.Context) {
	pathSecret := c.Param("pathSecret")

	var req PaymentNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("malformed notification payload", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid notification payload")
		return
	}

	notification := paymentUsecases.GatewayNotification{
		OrderID:           req.OrderID,
		TransactionStatus: req.TransactionStatus,
		FraudStatus:       req.FraudStatus,
		GrossAmount:       req.GrossAmount,
		SignatureKey:      req.SignatureKey,
		StatusCode:        req.StatusCode,
	}

	if err := h.handleNotificationUC.Execute(c.Request.Context(), pathSecret, notification); err != nil {
		h.respondError(c, err)
		return
	}

	c.String(http.StatusOK, "OK")
}

func (h *WebhookHandler) respondError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)

	switch {
	case errors.IsUnauthorizedError(err), errors.IsForbiddenError(err):
		// Both secret checks answer 403 so probes cannot tell which
		// credential failed.
		h.logger.Warnw("rejected unauthenticated notification",
			"path", c.Request.URL.Path,
			"client_ip", c.ClientIP())
		utils.ErrorResponse(c, http.StatusForbidden, "forbidden")
	case errors.IsValidationError(err), errors.IsBadRequestError(err):
		h.logger.Warnw("rejected invalid notification", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
	default:
		// Includes missing payment records: a 500 makes the gateway
		// retry later, when the record may exist.
		h.logger.Errorw("failed to process notification", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to process notification")
	}
}
