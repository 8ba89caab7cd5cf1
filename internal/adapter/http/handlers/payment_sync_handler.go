package handlers

import (
	response "mercadopago_sync/internal/adapter/http/dto/response"
	"mercadopago_sync/internal/usecase"
	"mercadopago_sync/pkg"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// PaymentSyncHandler exposes the gateway status sync over HTTP.
type PaymentSyncHandler struct {
	usecase usecase.IPaymentSyncUseCase
}

func NewPaymentSyncHandler(uc usecase.IPaymentSyncUseCase) *PaymentSyncHandler {
	return &PaymentSyncHandler{usecase: uc}
}

// SyncPayment godoc
// @Summary      Sync a payment from Mercado Pago
// @Tags         payments
// @Produce      json
// @Param        gateway_payment_id  path  int  true  "Mercado Pago payment id"
// @Success      200  {object}  response.PaymentSyncResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /payments/{gateway_payment_id}/sync [post]
func (h *PaymentSyncHandler) SyncPayment(c *gin.Context) {
	raw := strings.TrimSpace(c.Param("gateway_payment_id"))
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		log.Warn().Str("gateway_payment_id", raw).Msg("[payment][handler] invalid gateway payment id")
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}

	outcome, err := h.usecase.Reconcile(c.Request.Context(), id)
	if err != nil {
		log.Error().Err(err).Int("gateway_payment_id", id).Msg("[payment][handler] sync failed")
		writeError(c, mapUseCaseError(err))
		return
	}

	c.JSON(http.StatusOK, response.NewPaymentSyncResponse(id, string(outcome)))
}
