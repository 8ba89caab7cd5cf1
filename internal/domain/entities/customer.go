package entities

// CustomerProfile holds the fields used to create a gateway customer.
type CustomerProfile struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type GatewayCustomer struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// CustomerSearchResult mirrors the paging total and results of a customer
// search.
type CustomerSearchResult struct {
	Total   int
	Results []GatewayCustomer
}
