package echo

import (
	"github.com/OmarEl-Mohandes/PaymentGateway/internal/domain"
	"github.com/OmarEl-Mohandes/PaymentGateway/internal/presentation/echo/handlers"
	"github.com/OmarEl-Mohandes/PaymentGateway/internal/presentation/echo/middleware"
	echofw "github.com/labstack/echo/v4"
)

func ConfigureRoutes(e *echofw.Echo, service domain.PaymentService) {
	e.Use(middleware.Recovery)
	e.Use(middleware.TraceID)
	e.Use(middleware.RequestLogger)

	healthHandler := handlers.NewHealthHandler()
	e.GET("/health", healthHandler.Check)

	paymentHandler := handlers.NewPaymentHandler(service)
	v1 := e.Group("/v1")
	v1.POST("/payments", paymentHandler.CreatePayment)
	v1.POST("/payments/:id/settle", paymentHandler.SettlePayment)
	v1.GET("/payments/:id", paymentHandler.GetPayment)
}
