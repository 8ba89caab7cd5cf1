package routes

import (
	"mercadopago_sync/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments  = "/payments"
	PathCustomers = "/customers"
	PathBanks     = "/banks"
)

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentSyncHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:gateway_payment_id/sync", h.SyncPayment)
	}
}

func addCustomerRoutes(rg *gin.RouterGroup, h *handlers.CustomerHandler) {
	rg.POST(PathCustomers, h.EnsureCustomer)
}

func addBankRoutes(rg *gin.RouterGroup, h *handlers.BankListHandler) {
	banks := rg.Group(PathBanks)
	{
		banks.GET("", h.ListBanks)
		banks.POST("/refresh", h.RefreshBanks)
	}
}
