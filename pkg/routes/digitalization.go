package route

import (
	"github.com/gofiber/fiber/v2"
	controller "github.com/sh5080/vectify-go/pkg/controllers"
	_interface "github.com/sh5080/vectify-go/pkg/interfaces"
)

// SetupDigitalizationRoutes는 디지털화 처리와 이력 라우트를 설정합니다
func SetupDigitalizationRoutes(api fiber.Router, v1 fiber.Router, auth fiber.Handler, services *_interface.ServiceContainer) {
	api.Post("/process-digitalization", auth, controller.ProcessDigitalization(services.ProcessingService))

	v1.Post("/digitalizations", auth, controller.CreateDigitalization(services.DigitalizationService))
	v1.Get("/digitalizations", auth, controller.ListDigitalizations(services.DigitalizationService))
	v1.Get("/digitalizations/:id", auth, controller.GetDigitalization(services.DigitalizationService))
	v1.Get("/stats", auth, controller.Stats(services.DigitalizationService))
}
