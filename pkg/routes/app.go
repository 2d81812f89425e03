package route

import (
	"github.com/gofiber/fiber/v2"
	controller "github.com/sh5080/vectify-go/pkg/controllers"
	_interface "github.com/sh5080/vectify-go/pkg/interfaces"
)

// SetupAppRoutes는 애플리케이션 관련 라우트를 설정합니다
func SetupAppRoutes(app *fiber.App, services *_interface.ServiceContainer) {
	// 상태 확인 API
	app.Get("/health", controller.Health(services.ServerStatusService))
	app.Get("/status", controller.ServerStatus(services.ServerStatusService))

	// 메트릭 API
	app.Get("/metrics", controller.Metrics())
}
