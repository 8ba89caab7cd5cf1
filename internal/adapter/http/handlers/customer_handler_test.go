package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"mercadopago_sync/internal/adapter/http/handlers/mocks"
	"mercadopago_sync/internal/domain/entities"
	"mercadopago_sync/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCustomerHandler_EnsureCustomer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockICustomerUseCase) *gin.Engine {
		r := gin.New()
		r.POST("/v1/customers", NewCustomerHandler(uc).EnsureCustomer)
		return r
	}

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)

		for _, body := range []string{"{", `{"first_name":"Ana"}`, `{"email":"nope"}`, `{"email":"ana@example.com","last_name":"Lima"}`, `{"email":"ana@example.com","first_name":"Ana"}`} {
			req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			newRouter(uc).ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 for %s, got %d", body, w.Code)
			}
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)

		uc.EXPECT().EnsureCustomer(gomock.Any(), entities.CustomerProfile{Email: "ana@example.com", FirstName: "Ana", LastName: "Lima"}).Return("cus-1", nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString(`{"email":"ana@example.com","first_name":"Ana","last_name":"Lima"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["customer_id"] != "cus-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("gateway unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)

		uc.EXPECT().EnsureCustomer(gomock.Any(), gomock.Any()).Return("", fmt.Errorf("%w: timeout", usecase.ErrGatewayTransport))

		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString(`{"email":"ana@example.com","first_name":"Ana","last_name":"Lima"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("gateway rejects profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)

		uc.EXPECT().EnsureCustomer(gomock.Any(), gomock.Any()).Return("", fmt.Errorf("%w: invalid last_name", usecase.ErrGatewayBadRequest))

		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString(`{"email":"ana@example.com","first_name":"Ana","last_name":"Lima"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateway unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)

		uc.EXPECT().EnsureCustomer(gomock.Any(), gomock.Any()).Return("", usecase.ErrGatewayUnauthorized)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString(`{"email":"ana@example.com","first_name":"Ana","last_name":"Lima"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
