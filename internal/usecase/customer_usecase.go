package usecase

import (
	"context"
	"errors"
	"mercadopago_sync/internal/domain/entities"
	"mercadopago_sync/internal/infrastructure/metrics"
	"mercadopago_sync/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidCustomerEmail = errors.New("invalid customer email")
	ErrEmptyCustomerID      = errors.New("payment gateway returned an empty customer id")
)

// ICustomerUseCase provisions gateway customers.
//
// EnsureCustomer is search-then-create and is not atomic: two concurrent calls
// for the same email can both miss the search and both create a customer.
// The customers API has no upsert-by-email to close that gap.
type ICustomerUseCase interface {
	EnsureCustomer(ctx context.Context, profile entities.CustomerProfile) (string, error)
}

type CustomerUseCase struct {
	gateway    interfaces.IPaymentGateway
	retries    int
	newBackOff func() backoff.BackOff
	metrics    *metrics.Metrics
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

// NewCustomerUseCase builds the provisioner. retries is the number of extra
// attempts made for each gateway call that fails at the transport level.
func NewCustomerUseCase(gateway interfaces.IPaymentGateway, retries int, m *metrics.Metrics) *CustomerUseCase {
	if retries < 0 {
		retries = 0
	}
	return &CustomerUseCase{
		gateway:    gateway,
		retries:    retries,
		newBackOff: defaultCustomerBackOff,
		metrics:    m,
	}
}

func defaultCustomerBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	return b
}

func (u *CustomerUseCase) EnsureCustomer(ctx context.Context, profile entities.CustomerProfile) (string, error) {
	profile.Email = strings.TrimSpace(profile.Email)
	profile.FirstName = strings.TrimSpace(profile.FirstName)
	profile.LastName = strings.TrimSpace(profile.LastName)
	if profile.Email == "" || !strings.Contains(profile.Email, "@") {
		return "", ErrInvalidCustomerEmail
	}
	if u.gateway == nil {
		return "", errors.New("payment gateway not configured")
	}

	logger := log.With().Str("email", profile.Email).Logger()
	logger.Info().Msg("[customer][usecase] ensure start")

	var found entities.CustomerSearchResult
	err := u.withRetry(ctx, func() error {
		res, err := u.gateway.SearchCustomersByEmail(ctx, profile.Email)
		if err != nil {
			logger.Warn().Err(err).Msg("[customer][usecase] search attempt failed")
			return err
		}
		found = res
		return nil
	})
	if err != nil {
		u.metrics.IncCustomerEnsure(metrics.CustomerError)
		return "", err
	}

	if found.Total > 0 && len(found.Results) > 0 {
		id := found.Results[0].ID
		logger.Info().Str("customer_id", id).Int("total", found.Total).Msg("[customer][usecase] existing customer")
		u.metrics.IncCustomerEnsure(metrics.CustomerFound)
		return id, nil
	}

	var created string
	err = u.withRetry(ctx, func() error {
		id, err := u.gateway.CreateCustomer(ctx, profile)
		if err != nil {
			logger.Warn().Err(err).Msg("[customer][usecase] create attempt failed")
			return err
		}
		created = id
		return nil
	})
	if err != nil {
		u.metrics.IncCustomerEnsure(metrics.CustomerError)
		return "", err
	}
	if created == "" {
		u.metrics.IncCustomerEnsure(metrics.CustomerError)
		return "", ErrEmptyCustomerID
	}

	logger.Info().Str("customer_id", created).Msg("[customer][usecase] customer created")
	u.metrics.IncCustomerEnsure(metrics.CustomerCreated)
	return created, nil
}

// withRetry retries op on transport failures only; API errors are permanent.
func (u *CustomerUseCase) withRetry(ctx context.Context, op func() error) error {
	policy := backoff.WithContext(backoff.WithMaxRetries(u.newBackOff(), uint64(u.retries)), ctx)
	return backoff.Retry(func() error {
		err := op()
		if err != nil && !errors.Is(err, interfaces.ErrGatewayTransport) {
			return backoff.Permanent(err)
		}
		return err
	}, policy)
}
