package usecase

import (
	"context"
	"errors"
	"mercadopago_sync/internal/domain/entities"
	"mercadopago_sync/internal/infrastructure/metrics"
	"mercadopago_sync/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// IBankListUseCase keeps the cached PSE bank list in sync with the gateway.
type IBankListUseCase interface {
	Refresh(ctx context.Context) ([]entities.Bank, error)
	List(ctx context.Context) ([]entities.Bank, error)
}

type BankListUseCase struct {
	gateway interfaces.IPaymentGateway
	cache   interfaces.IBankListCache
	metrics *metrics.Metrics
}

var _ IBankListUseCase = (*BankListUseCase)(nil)

func NewBankListUseCase(gateway interfaces.IPaymentGateway, cache interfaces.IBankListCache, m *metrics.Metrics) *BankListUseCase {
	return &BankListUseCase{gateway: gateway, cache: cache, metrics: m}
}

// Refresh reloads the financial institutions of the PSE payment method and
// caches them without expiry. An empty list leaves the cache untouched.
func (u *BankListUseCase) Refresh(ctx context.Context) ([]entities.Bank, error) {
	if u.gateway == nil {
		return nil, errors.New("payment gateway not configured")
	}
	if u.cache == nil {
		return nil, errors.New("bank list cache not configured")
	}

	methods, err := u.gateway.ListPaymentMethods(ctx)
	if err != nil {
		log.Error().Err(err).Msg("[banks][usecase] list payment methods failed")
		u.metrics.IncBankListRefresh(metrics.ResultError)
		return nil, err
	}

	banks := make([]entities.Bank, 0)
	for _, m := range methods {
		if m.ID != entities.PaymentMethodPSE {
			continue
		}
		for _, fi := range m.FinancialInstitutions {
			banks = append(banks, entities.Bank{ID: fi.ID, Description: fi.Description})
		}
	}

	if len(banks) == 0 {
		log.Info().Int("payment_methods", len(methods)).Msg("[banks][usecase] no pse banks returned; cache untouched")
		u.metrics.IncBankListRefresh(metrics.ResultIgnored)
		return banks, nil
	}

	if err := u.cache.Set(ctx, banks); err != nil {
		log.Error().Err(err).Msg("[banks][usecase] cache set failed")
		u.metrics.IncBankListRefresh(metrics.ResultError)
		return nil, err
	}
	log.Info().Int("banks", len(banks)).Msg("[banks][usecase] bank list cached")
	u.metrics.IncBankListRefresh(metrics.ResultUpdated)
	return banks, nil
}

func (u *BankListUseCase) List(ctx context.Context) ([]entities.Bank, error) {
	if u.cache == nil {
		return nil, errors.New("bank list cache not configured")
	}
	banks, err := u.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	if banks == nil {
		banks = []entities.Bank{}
	}
	return banks, nil
}
