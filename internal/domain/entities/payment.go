package entities

import "encoding/json"

// PaymentStatus is the host application's view of a payment.
//
// Values are gateway-agnostic; MapGatewayStatus translates Mercado Pago
// statuses into them.

type PaymentStatus string

const (
	PaymentStatusPending     PaymentStatus = "pending"
	PaymentStatusPaid        PaymentStatus = "paid"
	PaymentStatusCancelled   PaymentStatus = "cancelled"
	PaymentStatusRejected    PaymentStatus = "rejected"
	PaymentStatusRefunded    PaymentStatus = "refunded"
	PaymentStatusChargedBack PaymentStatus = "charged_back"
)

// Payment is the payment record owned by the host application.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The sync service only ever writes Status and PaymentResponse; every other
// attribute of the item belongs to the host and is left untouched.

type Payment struct {
	ID              string          `json:"id"`
	Status          PaymentStatus   `json:"status"`
	PaymentResponse json.RawMessage `json:"payment_response,omitempty"`
}

// GatewayPayment is the gateway's view of a transaction as returned by a
// payment lookup.
//
// StatusCode carries the transport-level result: 200 for a successful
// lookup, the API error status otherwise.
type GatewayPayment struct {
	StatusCode        int
	Status            string
	HasStatus         bool
	ExternalReference string
	Raw               json.RawMessage
}

// IsActionable reports whether the lookup can drive a status update.
func (g GatewayPayment) IsActionable() bool {
	return g.StatusCode == 200 && g.HasStatus
}
