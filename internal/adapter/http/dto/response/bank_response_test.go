package response

import (
	"encoding/json"
	"testing"

	"mercadopago_sync/internal/domain/entities"
)

func TestFromBanks(t *testing.T) {
	out := FromBanks(nil)
	b, _ := json.Marshal(out)
	if string(b) != `{"banks":[]}` {
		t.Fatalf("expected empty array, got %s", b)
	}

	out = FromBanks([]entities.Bank{{ID: "1007", Description: "BANCOLOMBIA"}})
	if len(out.Banks) != 1 || out.Banks[0].ID != "1007" || out.Banks[0].Description != "BANCOLOMBIA" {
		t.Fatalf("unexpected response: %+v", out)
	}
}

func TestNewPaymentSyncResponse(t *testing.T) {
	r := NewPaymentSyncResponse(42, "ignored")
	if r.GatewayPaymentID != 42 || r.Status != "ignored" {
		t.Fatalf("unexpected response: %+v", r)
	}
}
