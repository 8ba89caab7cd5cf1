package request

import (
	"mercadopago_sync/internal/domain/entities"
	"strings"
)

type CustomerRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

func (r CustomerRequest) ToProfile() entities.CustomerProfile {
	return entities.CustomerProfile{
		Email:     strings.TrimSpace(r.Email),
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
	}
}
