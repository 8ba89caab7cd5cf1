package entities

import (
	"errors"
	"fmt"
)

var ErrUnknownGatewayStatus = errors.New("unknown gateway payment status")

var gatewayStatusMap = map[string]PaymentStatus{
	"rejected":     PaymentStatusRejected,
	"pending":      PaymentStatusPending,
	"approved":     PaymentStatusPaid,
	"authorized":   PaymentStatusPending,
	"in_process":   PaymentStatusPending,
	"in_mediation": PaymentStatusPending,
	"cancelled":    PaymentStatusCancelled,
	"refunded":     PaymentStatusRefunded,
	"charged_back": PaymentStatusChargedBack,
}

// MapGatewayStatus translates a Mercado Pago payment status into a local
// PaymentStatus. There is no fallback: an unmapped status is an error.
func MapGatewayStatus(gatewayStatus string) (PaymentStatus, error) {
	status, ok := gatewayStatusMap[gatewayStatus]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownGatewayStatus, gatewayStatus)
	}
	return status, nil
}
