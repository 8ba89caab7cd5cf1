package interfaces

import (
	"context"
	"errors"
	"mercadopago_sync/internal/domain/entities"
)

// ErrGatewayTransport marks failures reaching the gateway (network, timeout,
// unreadable response). Implementations wrap the cause with it so callers can
// tell transient failures apart from API answers.
var ErrGatewayTransport = errors.New("payment gateway transport error")

var (
	ErrGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IPaymentGateway abstracts the Mercado Pago API.
//
// GetPayment reports API-level errors through GatewayPayment.StatusCode and
// only returns an error for transport failures. The customer and payment
// method calls wrap 400 answers with ErrGatewayBadRequest and 401/403
// answers with ErrGatewayUnauthorized.
type IPaymentGateway interface {
	GetPayment(ctx context.Context, gatewayPaymentID int) (entities.GatewayPayment, error)
	SearchCustomersByEmail(ctx context.Context, email string) (entities.CustomerSearchResult, error)
	CreateCustomer(ctx context.Context, profile entities.CustomerProfile) (string, error)
	ListPaymentMethods(ctx context.Context) ([]entities.PaymentMethod, error)
}
