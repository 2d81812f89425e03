package serverless

import (
	"context"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/sh5080/vectify-go/pkg/configs"
	route "github.com/sh5080/vectify-go/pkg/routes"
	service "github.com/sh5080/vectify-go/pkg/services"
	"github.com/sh5080/vectify-go/pkg/utils"
)

var (
	app     *fiber.App
	appOnce sync.Once
)

// GetApp 함수는 초기화된 애플리케이션 인스턴스를 반환합니다.
// 서버리스 환경에서는 전역 인스턴스를 재사용하여 콜드 스타트를 최소화합니다.
// 이 함수는 AWS Lambda 핸들러 또는 GCP Cloud Run 핸들러에서 호출될 수 있습니다.
func GetApp() *fiber.App {
	appOnce.Do(func() {
		config := configs.GetConfig()
		utils.ConfigureLogger(config.Server.LogLevel, config.Server.LogFormat, nil)

		services, err := service.NewServiceContainer(context.Background(), config)
		if err != nil {
			utils.Fatal("serverless", "서비스 초기화 실패: %v", err)
		}

		app = route.NewApp(services, true) // true: 서버리스 환경임을 표시
	})
	return app
}
