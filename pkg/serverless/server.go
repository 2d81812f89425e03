package serverless

import (
	"context"
	"fmt"
	"time"

	"github.com/sh5080/vectify-go/pkg/configs"
	route "github.com/sh5080/vectify-go/pkg/routes"
	service "github.com/sh5080/vectify-go/pkg/services"
	"github.com/sh5080/vectify-go/pkg/utils"
)

// Run은 온프레미스 HTTP 서버를 실행하고 ctx가 끝나면 정상 종료합니다
func Run(ctx context.Context, config *configs.EnvConfig) error {
	// 메트릭 초기화
	utils.InitMetrics()

	services, err := service.NewServiceContainer(ctx, config)
	if err != nil {
		return fmt.Errorf("서비스 초기화 실패: %w", err)
	}
	defer services.Close()

	app := route.NewApp(services, false) // false: 서버리스 환경 아님을 표시

	errCh := make(chan error, 1)
	go func() {
		utils.Info("server", "%s %s 시작 (포트 %s)", config.Server.AppName, configs.AppVersion, config.Server.Port)
		errCh <- app.Listen(":" + config.Server.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		utils.Info("server", "종료 신호 수신, 서버를 종료합니다")
		return app.ShutdownWithTimeout(30 * time.Second)
	}
}
