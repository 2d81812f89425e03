package controller

import (
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sh5080/vectify-go/pkg/configs"
	_interface "github.com/sh5080/vectify-go/pkg/interfaces"
	responseDto "github.com/sh5080/vectify-go/pkg/types/dtos/responses"
)

var GoVersion = runtime.Version()
var startTime = time.Now()

func Health(statusService _interface.ServerStatusService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := statusService.GetServerStatus()

		response := responseDto.HealthResponse{
			Status:      "ok",
			Time:        time.Now(),
			Version:     configs.AppVersion,
			Uptime:      time.Since(startTime).String(),
			GoVersion:   GoVersion,
			CpuUsage:    status.CpuUsage,
			MemoryUsage: status.MemoryUsage,
		}
		if !status.IsHealthy {
			response.Status = "degraded"
		}
		return c.JSON(response)
	}
}

// ServerStatus는 부하와 공급자 구성 상태를 반환합니다
func ServerStatus(statusService _interface.ServerStatusService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(statusService.GetServerStatus())
	}
}

// Metrics는 프로메테우스 메트릭을 제공하는 핸들러입니다
func Metrics() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
