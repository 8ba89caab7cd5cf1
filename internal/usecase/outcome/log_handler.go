package outcome

import (
	"context"
	"encoding/json"

	"mercadopago_sync/internal/domain/entities"
	"mercadopago_sync/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

type LogHandler struct {
	payment         entities.Payment
	paymentResponse json.RawMessage
}

var _ interfaces.IOutcomeHandler = (*LogHandler)(nil)

func NewLogHandler(payment entities.Payment, paymentResponse json.RawMessage) interfaces.IOutcomeHandler {
	return &LogHandler{payment: payment, paymentResponse: paymentResponse}
}

func (h *LogHandler) Execute(context.Context) error {
	log.Info().
		Str("payment_id", h.payment.ID).
		Str("status", string(h.payment.Status)).
		Int("payment_response_len", len(h.paymentResponse)).
		Msg("[payment][outcome] payment settled")
	return nil
}

type NoopHandler struct{}

func NewNoopHandler(entities.Payment, json.RawMessage) interfaces.IOutcomeHandler {
	return NoopHandler{}
}

func (NoopHandler) Execute(context.Context) error { return nil }
