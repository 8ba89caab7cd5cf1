package interfaces

import (
	"context"
	"encoding/json"
	"mercadopago_sync/internal/domain/entities"
)

// IOutcomeHandler is a follow-up action run after a payment reaches a
// terminal status.
type IOutcomeHandler interface {
	Execute(ctx context.Context) error
}

// OutcomeHandlerFactory builds a handler for one payment. Factories are
// resolved once at startup from configuration.
type OutcomeHandlerFactory func(payment entities.Payment, paymentResponse json.RawMessage) IOutcomeHandler
