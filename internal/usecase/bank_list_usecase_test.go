package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"mercadopago_sync/internal/domain/entities"
	mock_interfaces "mercadopago_sync/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestBankListUseCase_Refresh(t *testing.T) {
	t.Run("caches pse institutions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		cache := mock_interfaces.NewMockIBankListCache(ctrl)
		uc := NewBankListUseCase(gateway, cache, nil)

		gateway.EXPECT().ListPaymentMethods(gomock.Any()).Return([]entities.PaymentMethod{
			{ID: "visa", FinancialInstitutions: []entities.Bank{{ID: "x", Description: "ignored"}}},
			{ID: "pse", FinancialInstitutions: []entities.Bank{
				{ID: "1007", Description: "BANCOLOMBIA"},
				{ID: "1051", Description: "DAVIVIENDA"},
			}},
		}, nil)

		want := []entities.Bank{{ID: "1007", Description: "BANCOLOMBIA"}, {ID: "1051", Description: "DAVIVIENDA"}}
		cache.EXPECT().Set(gomock.Any(), want).Return(nil)

		got, err := uc.Refresh(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("unexpected banks: %+v", got)
		}
	})

	t.Run("no pse method leaves cache untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		cache := mock_interfaces.NewMockIBankListCache(ctrl)
		uc := NewBankListUseCase(gateway, cache, nil)

		gateway.EXPECT().ListPaymentMethods(gomock.Any()).Return([]entities.PaymentMethod{{ID: "visa"}}, nil)
		cache.EXPECT().Set(gomock.Any(), gomock.Any()).Times(0)

		got, err := uc.Refresh(context.Background())
		if err != nil || len(got) != 0 {
			t.Fatalf("expected empty result, got %+v err=%v", got, err)
		}
	})

	t.Run("pse without institutions leaves cache untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		cache := mock_interfaces.NewMockIBankListCache(ctrl)
		uc := NewBankListUseCase(gateway, cache, nil)

		gateway.EXPECT().ListPaymentMethods(gomock.Any()).Return([]entities.PaymentMethod{{ID: "pse"}}, nil)
		cache.EXPECT().Set(gomock.Any(), gomock.Any()).Times(0)

		if _, err := uc.Refresh(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		cache := mock_interfaces.NewMockIBankListCache(ctrl)
		uc := NewBankListUseCase(gateway, cache, nil)

		gateway.EXPECT().ListPaymentMethods(gomock.Any()).Return(nil, errors.New("gateway"))

		if _, err := uc.Refresh(context.Background()); err == nil || err.Error() != "gateway" {
			t.Fatalf("expected gateway error, got %v", err)
		}
	})

	t.Run("cache error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		cache := mock_interfaces.NewMockIBankListCache(ctrl)
		uc := NewBankListUseCase(gateway, cache, nil)

		gateway.EXPECT().ListPaymentMethods(gomock.Any()).Return([]entities.PaymentMethod{
			{ID: "pse", FinancialInstitutions: []entities.Bank{{ID: "1007", Description: "BANCOLOMBIA"}}},
		}, nil)
		cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("redis"))

		if _, err := uc.Refresh(context.Background()); err == nil || err.Error() != "redis" {
			t.Fatalf("expected redis error, got %v", err)
		}
	})

	t.Run("not configured", func(t *testing.T) {
		uc := NewBankListUseCase(nil, nil, nil)
		if _, err := uc.Refresh(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
		if _, err := uc.List(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestBankListUseCase_List(t *testing.T) {
	t.Run("returns cached banks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mock_interfaces.NewMockIBankListCache(ctrl)
		uc := NewBankListUseCase(nil, cache, nil)

		cache.EXPECT().Get(gomock.Any()).Return([]entities.Bank{{ID: "1007", Description: "BANCOLOMBIA"}}, nil)

		got, err := uc.List(context.Background())
		if err != nil || len(got) != 1 || got[0].ID != "1007" {
			t.Fatalf("unexpected result err=%v banks=%+v", err, got)
		}
	})

	t.Run("empty cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mock_interfaces.NewMockIBankListCache(ctrl)
		uc := NewBankListUseCase(nil, cache, nil)

		cache.EXPECT().Get(gomock.Any()).Return(nil, nil)

		got, err := uc.List(context.Background())
		if err != nil || got == nil || len(got) != 0 {
			t.Fatalf("expected empty non-nil slice, got %+v err=%v", got, err)
		}
	})

	t.Run("cache error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mock_interfaces.NewMockIBankListCache(ctrl)
		uc := NewBankListUseCase(nil, cache, nil)

		cache.EXPECT().Get(gomock.Any()).Return(nil, errors.New("redis"))

		if _, err := uc.List(context.Background()); err == nil || err.Error() != "redis" {
			t.Fatalf("expected redis error, got %v", err)
		}
	})
}
