package entities

// PaymentMethodPSE is the payment method whose financial institutions make
// up the bank list.
const PaymentMethodPSE = "pse"

type Bank struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

type PaymentMethod struct {
	ID                    string `json:"id"`
	Name                  string `json:"name"`
	FinancialInstitutions []Bank `json:"financial_institutions"`
}
