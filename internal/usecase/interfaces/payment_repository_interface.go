package interfaces

import (
	"context"
	"errors"
	"mercadopago_sync/internal/domain/entities"
)

// IPaymentRepository abstracts persistence of the host's payment records.
//
// GetByID returns a zero Payment (empty ID) and no error when nothing matches.
// UpdateStatusAndResponse writes only status and payment_response, and returns
// ErrPaymentNotFound when the item is gone.
type IPaymentRepository interface {
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	UpdateStatusAndResponse(ctx context.Context, p entities.Payment) error
}

// ErrPaymentNotFound is returned when the payment a gateway transaction
// points at does not exist locally.
var ErrPaymentNotFound = errors.New("payment not found")
