package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"mercadopago_sync/internal/domain/entities"
	"mercadopago_sync/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/customer"
	"github.com/mercadopago/sdk-go/pkg/mperror"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/paymentmethod"
	"github.com/rs/zerolog/log"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

type paymentClient interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
}

type customerClient interface {
	Search(ctx context.Context, request customer.SearchRequest) (*customer.SearchResponse, error)
	Create(ctx context.Context, request customer.Request) (*customer.Response, error)
}

type paymentMethodClient interface {
	List(ctx context.Context) ([]paymentmethod.Response, error)
}

// MercadoPagoGateway adapts the Mercado Pago SDK clients to IPaymentGateway.
type MercadoPagoGateway struct {
	payments       paymentClient
	customers      customerClient
	paymentMethods paymentMethodClient
	mockMode       bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mockMode bool) (*MercadoPagoGateway, error) {
	if mockMode {
		log.Info().Msg("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if strings.TrimSpace(accessToken) == "" {
		log.Error().Msg("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error().Err(err).Msg("[payment][gateway] failed creating sdk config")
		return nil, err
	}
	log.Info().Msg("[payment][gateway] Mercado Pago client initialized")

	return newSDKGateway(cfg), nil
}

func newSDKGateway(cfg *config.Config) *MercadoPagoGateway {
	cfg.Requester = newBodyRecorder(cfg.Requester)
	return &MercadoPagoGateway{
		payments:       payment.NewClient(cfg),
		customers:      customer.NewClient(cfg),
		paymentMethods: paymentmethod.NewClient(cfg),
	}
}

// paymentFields is the part of the payment body the reconciler reads.
type paymentFields struct {
	Status            string `json:"status"`
	ExternalReference string `json:"external_reference"`
}

// GetPayment fetches one transaction. A response error from the API is not
// returned as an error: it becomes a GatewayPayment carrying the HTTP status
// and no payment status, so the caller decides how to treat it.
//
// Raw is the response body exactly as the API sent it.
func (g *MercadoPagoGateway) GetPayment(ctx context.Context, gatewayPaymentID int) (entities.GatewayPayment, error) {
	if g != nil && g.mockMode {
		return mockPayment(gatewayPaymentID)
	}
	if g == nil || g.payments == nil {
		return entities.GatewayPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	ctx, recorded := withRecordedBody(ctx)
	resp, err := g.payments.Get(ctx, gatewayPaymentID)
	if err != nil {
		var apiErr *mperror.ResponseError
		if errors.As(err, &apiErr) {
			log.Warn().Int("gateway_payment_id", gatewayPaymentID).Int("status_code", apiErr.StatusCode).Msg("[payment][gateway] get answered with error status")
			return entities.GatewayPayment{StatusCode: apiErr.StatusCode, Raw: rawMessage(apiErr.Message)}, nil
		}
		log.Error().Err(err).Int("gateway_payment_id", gatewayPaymentID).Msg("[payment][gateway] get failed")
		return entities.GatewayPayment{}, fmt.Errorf("%w: %v", interfaces.ErrGatewayTransport, err)
	}

	var fields paymentFields
	raw := recorded.body
	switch {
	case len(raw) > 0:
		if err := json.Unmarshal(raw, &fields); err != nil {
			return entities.GatewayPayment{}, fmt.Errorf("decode gateway payment: %w", err)
		}
	case resp != nil:
		fields = paymentFields{Status: resp.Status, ExternalReference: resp.ExternalReference}
	}
	log.Debug().Int("gateway_payment_id", gatewayPaymentID).Str("status", fields.Status).Msg("[payment][gateway] get success")

	return entities.GatewayPayment{
		StatusCode:        http.StatusOK,
		Status:            fields.Status,
		HasStatus:         fields.Status != "",
		ExternalReference: fields.ExternalReference,
		Raw:               rawMessage(string(raw)),
	}, nil
}

type customerSearchPayload struct {
	Paging struct {
		Total int `json:"total"`
	} `json:"paging"`
	Results []entities.GatewayCustomer `json:"results"`
}

func (g *MercadoPagoGateway) SearchCustomersByEmail(ctx context.Context, email string) (entities.CustomerSearchResult, error) {
	if g != nil && g.mockMode {
		return entities.CustomerSearchResult{Results: []entities.GatewayCustomer{}}, nil
	}
	if g == nil || g.customers == nil {
		return entities.CustomerSearchResult{}, ErrMercadoPagoGatewayNotConfigured
	}

	resp, err := g.customers.Search(ctx, customer.SearchRequest{Filters: map[string]string{"email": email}})
	if err != nil {
		return entities.CustomerSearchResult{}, classify(err)
	}

	var decoded customerSearchPayload
	if err := reencode(resp, &decoded); err != nil {
		return entities.CustomerSearchResult{}, fmt.Errorf("decode customer search: %w", err)
	}
	return entities.CustomerSearchResult{Total: decoded.Paging.Total, Results: decoded.Results}, nil
}

func (g *MercadoPagoGateway) CreateCustomer(ctx context.Context, profile entities.CustomerProfile) (string, error) {
	if g != nil && g.mockMode {
		id := "mock-" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Info().Str("customer_id", id).Msg("[payment][gateway] mock customer created")
		return id, nil
	}
	if g == nil || g.customers == nil {
		return "", ErrMercadoPagoGatewayNotConfigured
	}

	resp, err := g.customers.Create(ctx, customer.Request{
		Email:     profile.Email,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
	})
	if err != nil {
		return "", classify(err)
	}
	if resp == nil {
		return "", nil
	}
	return resp.ID, nil
}

func (g *MercadoPagoGateway) ListPaymentMethods(ctx context.Context) ([]entities.PaymentMethod, error) {
	if g != nil && g.mockMode {
		return mockPaymentMethods(), nil
	}
	if g == nil || g.paymentMethods == nil {
		return nil, ErrMercadoPagoGatewayNotConfigured
	}

	resp, err := g.paymentMethods.List(ctx)
	if err != nil {
		return nil, classify(err)
	}

	methods := make([]entities.PaymentMethod, 0, len(resp))
	if err := reencode(resp, &methods); err != nil {
		return nil, fmt.Errorf("decode payment methods: %w", err)
	}
	return methods, nil
}

// classify wraps failures that never reached the API as ErrGatewayTransport.
func classify(err error) error {
	var apiErr *mperror.ResponseError
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %v", interfaces.ErrGatewayTransport, err)
	}
	switch apiErr.StatusCode {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", interfaces.ErrGatewayBadRequest, apiErr.Message)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: status_code=%d", interfaces.ErrGatewayUnauthorized, apiErr.StatusCode)
	default:
		return fmt.Errorf("mercado pago api error status_code=%d: %s", apiErr.StatusCode, apiErr.Message)
	}
}

// reencode copies an SDK response into a local shape through its JSON form.
func reencode(src any, dst any) error {
	b, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}

func rawMessage(s string) json.RawMessage {
	if s == "" || !json.Valid([]byte(s)) {
		return nil
	}
	return json.RawMessage(s)
}

func mockPayment(id int) (entities.GatewayPayment, error) {
	ref := strconv.Itoa(id)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	raw, err := json.Marshal(map[string]any{
		"id":                 id,
		"status":             "approved",
		"status_detail":      "accredited",
		"external_reference": ref,
		"date_approved":      now,
	})
	if err != nil {
		return entities.GatewayPayment{}, err
	}
	log.Info().Int("gateway_payment_id", id).Msg("[payment][gateway] mock get approved")
	return entities.GatewayPayment{
		StatusCode:        200,
		Status:            "approved",
		HasStatus:         true,
		ExternalReference: ref,
		Raw:               raw,
	}, nil
}

func mockPaymentMethods() []entities.PaymentMethod {
	return []entities.PaymentMethod{
		{ID: "visa", Name: "Visa"},
		{ID: entities.PaymentMethodPSE, Name: "PSE", FinancialInstitutions: []entities.Bank{
			{ID: "1007", Description: "BANCOLOMBIA"},
			{ID: "1051", Description: "BANCO DAVIVIENDA"},
		}},
	}
}
