package handlers

import (
	"errors"
	"mercadopago_sync/internal/usecase"
	"mercadopago_sync/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

func mapUseCaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidGatewayPaymentID), errors.Is(err, usecase.ErrInvalidCustomerEmail), errors.Is(err, usecase.ErrGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnknownGatewayStatus):
		return pkg.NewDomainError("UNKNOWN_GATEWAY_STATUS", "Payment provider returned an unknown status", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrGatewayTransport):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider unavailable", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrGatewayInvalidResponse), errors.Is(err, usecase.ErrEmptyCustomerID):
		return pkg.NewDomainError("PAYMENT_PROVIDER_INVALID_RESPONSE", "Payment provider returned an invalid response", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
