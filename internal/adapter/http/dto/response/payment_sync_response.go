package response

// PaymentSyncResponse reports whether the sync wrote the local payment
// ("updated") or skipped a gateway answer with nothing to apply ("ignored").
type PaymentSyncResponse struct {
	GatewayPaymentID int    `json:"gateway_payment_id"`
	Status           string `json:"status" example:"updated"`
}

func NewPaymentSyncResponse(gatewayPaymentID int, outcome string) PaymentSyncResponse {
	return PaymentSyncResponse{GatewayPaymentID: gatewayPaymentID, Status: outcome}
}
