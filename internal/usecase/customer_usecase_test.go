package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"mercadopago_sync/internal/domain/entities"
	mock_interfaces "mercadopago_sync/internal/usecase/interfaces/mocks"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/mock/gomock"
)

func newTestCustomerUseCase(gateway *mock_interfaces.MockIPaymentGateway, retries int) *CustomerUseCase {
	uc := NewCustomerUseCase(gateway, retries, nil)
	uc.newBackOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }
	return uc
}

func transportErr(msg string) error {
	return fmt.Errorf("%w: %s", ErrGatewayTransport, msg)
}

func TestCustomerUseCase_EnsureCustomer(t *testing.T) {
	profile := entities.CustomerProfile{Email: "ana@example.com", FirstName: "Ana", LastName: "Lima"}

	t.Run("invalid email", func(t *testing.T) {
		uc := NewCustomerUseCase(nil, 3, nil)
		for _, email := range []string{"", "   ", "not-an-email"} {
			_, err := uc.EnsureCustomer(context.Background(), entities.CustomerProfile{Email: email})
			if !errors.Is(err, ErrInvalidCustomerEmail) {
				t.Fatalf("expected ErrInvalidCustomerEmail for %q, got %v", email, err)
			}
		}
	})

	t.Run("existing customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTestCustomerUseCase(gateway, 3)

		gateway.EXPECT().SearchCustomersByEmail(gomock.Any(), "ana@example.com").Return(entities.CustomerSearchResult{
			Total:   2,
			Results: []entities.GatewayCustomer{{ID: "cus-1"}, {ID: "cus-2"}},
		}, nil)
		gateway.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Times(0)

		id, err := uc.EnsureCustomer(context.Background(), profile)
		if err != nil || id != "cus-1" {
			t.Fatalf("expected cus-1, got id=%q err=%v", id, err)
		}
	})

	t.Run("creates when search is empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTestCustomerUseCase(gateway, 3)

		gateway.EXPECT().SearchCustomersByEmail(gomock.Any(), "ana@example.com").Return(entities.CustomerSearchResult{}, nil)
		gateway.EXPECT().CreateCustomer(gomock.Any(), profile).Return("cus-new", nil)

		id, err := uc.EnsureCustomer(context.Background(), entities.CustomerProfile{Email: " ana@example.com ", FirstName: "Ana ", LastName: " Lima"})
		if err != nil || id != "cus-new" {
			t.Fatalf("expected cus-new, got id=%q err=%v", id, err)
		}
	})

	t.Run("retries transport failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTestCustomerUseCase(gateway, 3)

		gomock.InOrder(
			gateway.EXPECT().SearchCustomersByEmail(gomock.Any(), "ana@example.com").Return(entities.CustomerSearchResult{}, transportErr("timeout")),
			gateway.EXPECT().SearchCustomersByEmail(gomock.Any(), "ana@example.com").Return(entities.CustomerSearchResult{}, nil),
			gateway.EXPECT().CreateCustomer(gomock.Any(), profile).Return("", transportErr("reset")),
			gateway.EXPECT().CreateCustomer(gomock.Any(), profile).Return("cus-new", nil),
		)

		id, err := uc.EnsureCustomer(context.Background(), profile)
		if err != nil || id != "cus-new" {
			t.Fatalf("expected cus-new, got id=%q err=%v", id, err)
		}
	})

	t.Run("gives up after retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTestCustomerUseCase(gateway, 2)

		gateway.EXPECT().SearchCustomersByEmail(gomock.Any(), gomock.Any()).Return(entities.CustomerSearchResult{}, transportErr("timeout")).Times(3)

		_, err := uc.EnsureCustomer(context.Background(), profile)
		if !errors.Is(err, ErrGatewayTransport) {
			t.Fatalf("expected ErrGatewayTransport, got %v", err)
		}
	})

	t.Run("zero retries means one attempt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTestCustomerUseCase(gateway, 0)

		gateway.EXPECT().SearchCustomersByEmail(gomock.Any(), gomock.Any()).Return(entities.CustomerSearchResult{}, transportErr("timeout")).Times(1)

		if _, err := uc.EnsureCustomer(context.Background(), profile); !errors.Is(err, ErrGatewayTransport) {
			t.Fatalf("expected ErrGatewayTransport, got %v", err)
		}
	})

	t.Run("api errors are not retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTestCustomerUseCase(gateway, 3)

		gateway.EXPECT().SearchCustomersByEmail(gomock.Any(), gomock.Any()).Return(entities.CustomerSearchResult{}, nil)
		gateway.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return("", errors.New(`{"status":400}`)).Times(1)

		_, err := uc.EnsureCustomer(context.Background(), profile)
		if err == nil || err.Error() != `{"status":400}` {
			t.Fatalf("expected api error, got %v", err)
		}
	})

	t.Run("total without results creates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTestCustomerUseCase(gateway, 0)

		gateway.EXPECT().SearchCustomersByEmail(gomock.Any(), gomock.Any()).Return(entities.CustomerSearchResult{Total: 1}, nil)
		gateway.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return("cus-new", nil)

		id, err := uc.EnsureCustomer(context.Background(), profile)
		if err != nil || id != "cus-new" {
			t.Fatalf("expected cus-new, got id=%q err=%v", id, err)
		}
	})

	t.Run("empty created id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTestCustomerUseCase(gateway, 0)

		gateway.EXPECT().SearchCustomersByEmail(gomock.Any(), gomock.Any()).Return(entities.CustomerSearchResult{}, nil)
		gateway.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return("", nil)

		if _, err := uc.EnsureCustomer(context.Background(), profile); !errors.Is(err, ErrEmptyCustomerID) {
			t.Fatalf("expected ErrEmptyCustomerID, got %v", err)
		}
	})

	t.Run("cancelled context stops retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTestCustomerUseCase(gateway, 5)

		ctx, cancel := context.WithCancel(context.Background())
		gateway.EXPECT().SearchCustomersByEmail(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, string) (entities.CustomerSearchResult, error) {
				cancel()
				return entities.CustomerSearchResult{}, transportErr("timeout")
			},
		).Times(1)

		if _, err := uc.EnsureCustomer(ctx, profile); err == nil {
			t.Fatalf("expected an error")
		}
	})
}
