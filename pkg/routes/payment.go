package route

import (
	"github.com/gofiber/fiber/v2"
	controller "github.com/sh5080/vectify-go/pkg/controllers"
	_interface "github.com/sh5080/vectify-go/pkg/interfaces"
)

// SetupPaymentRoutes는 구독과 PayPal 웹훅 라우트를 설정합니다
func SetupPaymentRoutes(api fiber.Router, v1 fiber.Router, auth fiber.Handler, services *_interface.ServiceContainer) {
	// 웹훅은 서명으로 확인하므로 사용자 인증을 거치지 않음
	api.Post("/webhooks/paypal", controller.PayPalWebhook(services.PaymentService))

	v1.Get("/plans", controller.Plans(services.PaymentService))
	v1.Get("/subscription", auth, controller.Subscription(services.PaymentService))
}
