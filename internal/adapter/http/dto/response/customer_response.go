package response

type CustomerResponse struct {
	CustomerID string `json:"customer_id"`
}
