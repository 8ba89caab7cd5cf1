package interfaces

import (
	"context"
	"mercadopago_sync/internal/domain/entities"
)

// IBankListCache stores the PSE bank list. Set keeps the value with no expiry.
type IBankListCache interface {
	Set(ctx context.Context, banks []entities.Bank) error
	Get(ctx context.Context) ([]entities.Bank, error)
}
