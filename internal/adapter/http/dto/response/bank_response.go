package response

import "mercadopago_sync/internal/domain/entities"

type BankResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

type BankListResponse struct {
	Banks []BankResponse `json:"banks"`
}

func FromBanks(banks []entities.Bank) BankListResponse {
	out := BankListResponse{Banks: make([]BankResponse, 0, len(banks))}
	for _, b := range banks {
		out.Banks = append(out.Banks, BankResponse{ID: b.ID, Description: b.Description})
	}
	return out
}
