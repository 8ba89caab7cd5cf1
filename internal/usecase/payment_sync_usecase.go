package usecase

import (
	"context"
	"errors"
	"fmt"
	"mercadopago_sync/internal/config"
	"mercadopago_sync/internal/domain/entities"
	"mercadopago_sync/internal/infrastructure/metrics"
	"mercadopago_sync/internal/usecase/interfaces"
	"strings"

	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidGatewayPaymentID = errors.New("invalid gateway payment id")
	ErrGatewayInvalidResponse  = errors.New("payment gateway returned a non actionable response")
	ErrPaymentNotFound         = interfaces.ErrPaymentNotFound
	ErrUnknownGatewayStatus    = entities.ErrUnknownGatewayStatus
	ErrGatewayTransport        = interfaces.ErrGatewayTransport
	ErrGatewayBadRequest       = interfaces.ErrGatewayBadRequest
	ErrGatewayUnauthorized     = interfaces.ErrGatewayUnauthorized
)

const (
	outcomePaid     = "paid"
	outcomeRejected = "rejected"
)

// SyncOutcome tells whether a reconcile wrote the local payment.
type SyncOutcome string

const (
	SyncOutcomeUpdated SyncOutcome = metrics.ResultUpdated
	SyncOutcomeIgnored SyncOutcome = metrics.ResultIgnored
)

// IPaymentSyncUseCase pulls a transaction from the gateway and mirrors its
// status onto the local payment.
type IPaymentSyncUseCase interface {
	Reconcile(ctx context.Context, gatewayPaymentID int) (SyncOutcome, error)
}

type PaymentSyncOptions struct {
	ReferencePrefix       string
	InvalidResponsePolicy config.InvalidResponsePolicy
}

type PaymentSyncUseCase struct {
	repo       interfaces.IPaymentRepository
	gateway    interfaces.IPaymentGateway
	onPaid     interfaces.OutcomeHandlerFactory
	onRejected interfaces.OutcomeHandlerFactory
	opts       PaymentSyncOptions
	metrics    *metrics.Metrics
}

var _ IPaymentSyncUseCase = (*PaymentSyncUseCase)(nil)

func NewPaymentSyncUseCase(
	repo interfaces.IPaymentRepository,
	gateway interfaces.IPaymentGateway,
	onPaid interfaces.OutcomeHandlerFactory,
	onRejected interfaces.OutcomeHandlerFactory,
	opts PaymentSyncOptions,
	m *metrics.Metrics,
) *PaymentSyncUseCase {
	if opts.InvalidResponsePolicy == "" {
		opts.InvalidResponsePolicy = config.InvalidResponseIgnore
	}
	return &PaymentSyncUseCase{
		repo:       repo,
		gateway:    gateway,
		onPaid:     onPaid,
		onRejected: onRejected,
		opts:       opts,
		metrics:    m,
	}
}

// Reconcile performs one fetch, persist and dispatch cycle.
//
// A gateway answer other than 200 with a status is ignored or reported
// according to InvalidResponsePolicy. Only the status and payment_response
// fields of the payment are written, and at most one outcome handler runs.
// The outcome is SyncOutcomeUpdated once the payment was written, even when
// the outcome handler then fails.
func (u *PaymentSyncUseCase) Reconcile(ctx context.Context, gatewayPaymentID int) (SyncOutcome, error) {
	logger := log.With().Int("gateway_payment_id", gatewayPaymentID).Logger()
	logger.Info().Msg("[payment][sync] reconcile start")

	if gatewayPaymentID <= 0 {
		return "", ErrInvalidGatewayPaymentID
	}
	if u.gateway == nil {
		logger.Error().Msg("[payment][sync] gateway not configured")
		return "", errors.New("payment gateway not configured")
	}
	if u.repo == nil {
		logger.Error().Msg("[payment][sync] payment repository not configured")
		return "", errors.New("payment repository not configured")
	}

	gp, err := u.gateway.GetPayment(ctx, gatewayPaymentID)
	if err != nil {
		logger.Error().Err(err).Msg("[payment][sync] gateway lookup failed")
		u.metrics.IncSync(metrics.ResultError)
		return "", err
	}

	if !gp.IsActionable() {
		if u.opts.InvalidResponsePolicy == config.InvalidResponseError {
			logger.Warn().Int("status_code", gp.StatusCode).Bool("has_status", gp.HasStatus).Msg("[payment][sync] non actionable gateway response")
			u.metrics.IncSync(metrics.ResultError)
			return "", fmt.Errorf("%w: status_code=%d has_status=%t", ErrGatewayInvalidResponse, gp.StatusCode, gp.HasStatus)
		}
		logger.Info().Int("status_code", gp.StatusCode).Bool("has_status", gp.HasStatus).Msg("[payment][sync] non actionable gateway response ignored")
		u.metrics.IncSync(metrics.ResultIgnored)
		return SyncOutcomeIgnored, nil
	}

	paymentID := u.localPaymentID(gp.ExternalReference)
	logger = logger.With().Str("payment_id", paymentID).Str("gateway_status", gp.Status).Logger()
	if paymentID == "" {
		logger.Warn().Str("external_reference", gp.ExternalReference).Msg("[payment][sync] empty payment reference")
		u.metrics.IncSync(metrics.ResultError)
		return "", fmt.Errorf("%w: external_reference=%q", ErrPaymentNotFound, gp.ExternalReference)
	}

	payment, err := u.repo.GetByID(ctx, paymentID)
	if err != nil {
		logger.Error().Err(err).Msg("[payment][sync] failed loading payment")
		u.metrics.IncSync(metrics.ResultError)
		return "", err
	}
	if payment.ID == "" {
		logger.Warn().Msg("[payment][sync] payment not found")
		u.metrics.IncSync(metrics.ResultError)
		return "", fmt.Errorf("%w: id=%s", ErrPaymentNotFound, paymentID)
	}

	status, err := entities.MapGatewayStatus(gp.Status)
	if err != nil {
		logger.Error().Err(err).Msg("[payment][sync] unmapped gateway status")
		u.metrics.IncSync(metrics.ResultError)
		return "", err
	}

	payment.PaymentResponse = gp.Raw
	payment.Status = status
	if err := u.repo.UpdateStatusAndResponse(ctx, payment); err != nil {
		logger.Error().Err(err).Msg("[payment][sync] failed persisting payment")
		u.metrics.IncSync(metrics.ResultError)
		return "", err
	}
	u.metrics.IncSync(metrics.ResultUpdated)
	logger.Info().Str("status", string(payment.Status)).Msg("[payment][sync] payment updated")

	return SyncOutcomeUpdated, u.dispatch(ctx, payment)
}

func (u *PaymentSyncUseCase) dispatch(ctx context.Context, payment entities.Payment) error {
	var (
		factory interfaces.OutcomeHandlerFactory
		outcome string
	)
	switch payment.Status {
	case entities.PaymentStatusPaid:
		factory, outcome = u.onPaid, outcomePaid
	case entities.PaymentStatusCancelled, entities.PaymentStatusRejected:
		factory, outcome = u.onRejected, outcomeRejected
	default:
		return nil
	}

	logger := log.With().Str("payment_id", payment.ID).Str("outcome", outcome).Logger()
	if factory == nil {
		logger.Warn().Msg("[payment][sync] no outcome handler configured")
		return nil
	}

	if err := factory(payment, payment.PaymentResponse).Execute(ctx); err != nil {
		logger.Error().Err(err).Msg("[payment][sync] outcome handler failed")
		u.metrics.IncOutcomeDispatch(outcome, "failure")
		return err
	}
	u.metrics.IncOutcomeDispatch(outcome, "success")
	logger.Info().Msg("[payment][sync] outcome handler executed")
	return nil
}

// localPaymentID removes the configured reference prefix from an
// external_reference. Only an exact leading prefix is removed.
func (u *PaymentSyncUseCase) localPaymentID(externalReference string) string {
	ref := strings.TrimSpace(externalReference)
	return strings.TrimPrefix(ref, u.opts.ReferencePrefix)
}
