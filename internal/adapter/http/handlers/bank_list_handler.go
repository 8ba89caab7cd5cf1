package handlers

import (
	response "mercadopago_sync/internal/adapter/http/dto/response"
	"mercadopago_sync/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type BankListHandler struct {
	usecase usecase.IBankListUseCase
}

func NewBankListHandler(uc usecase.IBankListUseCase) *BankListHandler {
	return &BankListHandler{usecase: uc}
}

// RefreshBanks godoc
// @Summary      Reload the PSE bank list from Mercado Pago
// @Tags         banks
// @Produce      json
// @Success      200  {object}  response.BankListResponse
// @Failure      502  {object}  pkg.HTTPError
// @Router       /banks/refresh [post]
func (h *BankListHandler) RefreshBanks(c *gin.Context) {
	banks, err := h.usecase.Refresh(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("[banks][handler] refresh failed")
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBanks(banks))
}

// ListBanks godoc
// @Summary      List the cached PSE banks
// @Tags         banks
// @Produce      json
// @Success      200  {object}  response.BankListResponse
// @Router       /banks [get]
func (h *BankListHandler) ListBanks(c *gin.Context) {
	banks, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("[banks][handler] list failed")
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBanks(banks))
}
