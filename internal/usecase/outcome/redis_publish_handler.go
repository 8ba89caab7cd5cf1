package outcome

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mercadopago_sync/internal/domain/entities"
	"mercadopago_sync/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// PaymentEvent is the message published for a settled payment.
type PaymentEvent struct {
	EventID         string          `json:"event_id"`
	Type            string          `json:"type"`
	PaymentID       string          `json:"payment_id"`
	Status          string          `json:"status"`
	PaymentResponse json.RawMessage `json:"payment_response,omitempty"`
	OccurredAt      time.Time       `json:"occurred_at"`
}

type RedisPublishHandler struct {
	publisher       Publisher
	channel         string
	payment         entities.Payment
	paymentResponse json.RawMessage
	now             func() time.Time
	newID           func() string
}

var _ interfaces.IOutcomeHandler = (*RedisPublishHandler)(nil)

func NewRedisPublishFactory(publisher Publisher, channel string) interfaces.OutcomeHandlerFactory {
	return func(payment entities.Payment, paymentResponse json.RawMessage) interfaces.IOutcomeHandler {
		return &RedisPublishHandler{
			publisher:       publisher,
			channel:         channel,
			payment:         payment,
			paymentResponse: paymentResponse,
			now:             time.Now,
			newID:           uuid.NewString,
		}
	}
}

func (h *RedisPublishHandler) Event() PaymentEvent {
	resp := h.paymentResponse
	if len(resp) > 0 && !json.Valid(resp) {
		resp = nil
	}
	return PaymentEvent{
		EventID:         h.newID(),
		Type:            "payment." + string(h.payment.Status),
		PaymentID:       h.payment.ID,
		Status:          string(h.payment.Status),
		PaymentResponse: resp,
		OccurredAt:      h.now().UTC(),
	}
}

func (h *RedisPublishHandler) Execute(ctx context.Context) error {
	ev := h.Event()
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal payment event: %w", err)
	}
	receivers, err := h.publisher.Publish(ctx, h.channel, body).Result()
	if err != nil {
		log.Error().Err(err).Str("payment_id", ev.PaymentID).Str("channel", h.channel).Msg("[payment][outcome] publish failed")
		return fmt.Errorf("publish payment event: %w", err)
	}
	log.Info().
		Str("payment_id", ev.PaymentID).
		Str("event_id", ev.EventID).
		Str("type", ev.Type).
		Int64("receivers", receivers).
		Msg("[payment][outcome] event published")
	return nil
}
