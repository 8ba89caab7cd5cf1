package outcome

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"mercadopago_sync/internal/domain/entities"

	"github.com/redis/go-redis/v9"
)

type fakePublisher struct {
	channel string
	message []byte
	err     error
}

func (f *fakePublisher) Publish(_ context.Context, channel string, message interface{}) *redis.IntCmd {
	f.channel = channel
	f.message, _ = message.([]byte)
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	return redis.NewIntResult(1, nil)
}

func TestResolve(t *testing.T) {
	for _, name := range []string{"log", " LOG ", "noop"} {
		f, err := Resolve(name, Dependencies{})
		if err != nil || f == nil {
			t.Fatalf("expected factory for %q, got err=%v", name, err)
		}
		if err := f(entities.Payment{ID: "p1", Status: entities.PaymentStatusPaid}, nil).Execute(context.Background()); err != nil {
			t.Fatalf("unexpected execute error: %v", err)
		}
	}

	f, err := Resolve("", Dependencies{})
	if err != nil || f != nil {
		t.Fatalf("expected nil factory for empty name, got err=%v", err)
	}

	if _, err := Resolve("email", Dependencies{}); !errors.Is(err, ErrOutcomeHandlerNotFound) {
		t.Fatalf("expected ErrOutcomeHandlerNotFound, got %v", err)
	}

	if _, err := Resolve(HandlerRedisPublish, Dependencies{}); err == nil {
		t.Fatalf("expected error without publisher")
	}
	if _, err := Resolve(HandlerRedisPublish, Dependencies{Publisher: &fakePublisher{}}); err == nil {
		t.Fatalf("expected error without channel")
	}
	if f, err := Resolve(HandlerRedisPublish, Dependencies{Publisher: &fakePublisher{}, Channel: "payments.events"}); err != nil || f == nil {
		t.Fatalf("expected redis factory, got err=%v", err)
	}
}

func TestRedisPublishHandler_Execute(t *testing.T) {
	pub := &fakePublisher{}
	payment := entities.Payment{ID: "p1", Status: entities.PaymentStatusRejected}
	h := NewRedisPublishFactory(pub, "payments.events")(payment, json.RawMessage(`{"id":42,"status":"rejected"}`)).(*RedisPublishHandler)
	h.newID = func() string { return "evt-1" }
	h.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	if err := h.Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pub.channel != "payments.events" {
		t.Fatalf("unexpected channel %q", pub.channel)
	}

	var ev PaymentEvent
	if err := json.Unmarshal(pub.message, &ev); err != nil {
		t.Fatalf("invalid event json: %v", err)
	}
	if ev.EventID != "evt-1" || ev.Type != "payment.rejected" || ev.PaymentID != "p1" || ev.Status != "rejected" {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if string(ev.PaymentResponse) != `{"id":42,"status":"rejected"}` {
		t.Fatalf("unexpected payment_response: %s", ev.PaymentResponse)
	}
}

func TestRedisPublishHandler_PublishError(t *testing.T) {
	pub := &fakePublisher{err: errors.New("connection refused")}
	h := NewRedisPublishFactory(pub, "payments.events")(entities.Payment{ID: "p1", Status: entities.PaymentStatusPaid}, nil)

	if err := h.Execute(context.Background()); err == nil {
		t.Fatalf("expected publish error")
	}
}

func TestRedisPublishHandler_DropsInvalidResponse(t *testing.T) {
	h := NewRedisPublishFactory(&fakePublisher{}, "c")(entities.Payment{ID: "p1", Status: entities.PaymentStatusPaid}, json.RawMessage("{not json")).(*RedisPublishHandler)
	if ev := h.Event(); ev.PaymentResponse != nil {
		t.Fatalf("expected invalid payment_response to be dropped, got %s", ev.PaymentResponse)
	}
}
