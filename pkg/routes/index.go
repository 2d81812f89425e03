package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	controller "github.com/sh5080/vectify-go/pkg/controllers"
	_interface "github.com/sh5080/vectify-go/pkg/interfaces"
	middleware "github.com/sh5080/vectify-go/pkg/middlewares"
)

// NewApp은 미들웨어와 라우트가 설정된 Fiber 앱을 생성합니다.
// 서버리스 환경에서는 시작 메시지와 Prometheus 수집 미들웨어를 끕니다.
func NewApp(services *_interface.ServiceContainer, serverless bool) *fiber.App {
	config := services.Config

	app := fiber.New(fiber.Config{
		AppName:               config.Server.AppName,
		DisableStartupMessage: serverless,
		ErrorHandler:          controller.ErrorHandler,
		// data URL 응답과 큰 웹훅 본문을 위해 기본값(4MB)보다 크게
		BodyLimit: 16 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())
	if !serverless {
		app.Use(middleware.Prometheus(config.Server.AppName)) // 온프레미스 환경에서만 Prometheus 메트릭 수집
	}

	SetupRoutes(app, services)
	return app
}

// SetupRoutes는 애플리케이션의 모든 라우트를 설정합니다
func SetupRoutes(app *fiber.App, services *_interface.ServiceContainer) {
	auth := middleware.Auth(middleware.AuthOptions{
		Identity:       services.IdentityProvider,
		AllowDevHeader: services.Config.IsDev(),
	})

	// API 라우트 그룹
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// 도메인별 라우트 설정
	SetupAppRoutes(app, services)
	SetupDigitalizationRoutes(api, v1, auth, services)
	SetupPaymentRoutes(api, v1, auth, services)
}
