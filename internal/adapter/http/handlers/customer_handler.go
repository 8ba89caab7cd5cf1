package handlers

import (
	"mercadopago_sync/internal/adapter/http/dto/request"
	response "mercadopago_sync/internal/adapter/http/dto/response"
	"mercadopago_sync/internal/usecase"
	"mercadopago_sync/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

// EnsureCustomer godoc
// @Summary      Find or create a Mercado Pago customer by email
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  request.CustomerRequest  true  "Customer profile"
// @Success      200  {object}  response.CustomerResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /customers [post]
func (h *CustomerHandler) EnsureCustomer(c *gin.Context) {
	var req request.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("[customer][handler] invalid payload")
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}

	id, err := h.usecase.EnsureCustomer(c.Request.Context(), req.ToProfile())
	if err != nil {
		log.Error().Err(err).Msg("[customer][handler] ensure failed")
		writeError(c, mapUseCaseError(err))
		return
	}

	c.JSON(http.StatusOK, response.CustomerResponse{CustomerID: id})
}
