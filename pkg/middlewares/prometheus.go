package middleware

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sh5080/vectify-go/pkg/apperrors"
	"github.com/sh5080/vectify-go/pkg/utils"
)

// Prometheus 미들웨어는 HTTP 요청에 대한 메트릭을 수집합니다
func Prometheus(serverName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 요청 시작 시간
		start := time.Now()

		// 다음 핸들러 실행
		err := c.Next()

		// 응답 시간 계산
		duration := time.Since(start).Seconds()

		// 오류는 ErrorHandler가 응답을 쓰기 전이므로 상태 코드를 오류에서 구함
		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			} else {
				status = apperrors.StatusCode(err)
			}
		}

		// 매칭된 라우트 패턴 기준으로 기록 (경로 파라미터로 라벨이 늘어나지 않도록)
		utils.RecordRequest(c.Method(), c.Route().Path, status, duration)

		updateServerMetrics(serverName)

		return err
	}
}

var (
	metricMu         sync.Mutex
	lastMetricUpdate time.Time
)

// updateServerMetrics는 서버 상태 메트릭을 10초에 한 번만 Prometheus에 업데이트합니다
func updateServerMetrics(serverName string) {
	metricMu.Lock()
	now := time.Now()
	if now.Sub(lastMetricUpdate) < 10*time.Second {
		metricMu.Unlock()
		return
	}
	lastMetricUpdate = now
	metricMu.Unlock()

	load := utils.CalculateServerLoad(utils.GetSystemMetrics())

	utils.UpdateServerMetric(serverName, "load", load.Load)
	healthValue := 0.0
	if load.IsHealthy {
		healthValue = 1.0
	}
	utils.UpdateServerMetric(serverName, "healthy", healthValue)
	utils.UpdateServerMetric(serverName, "capacity", load.Capacity)
}
