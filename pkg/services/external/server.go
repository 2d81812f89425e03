package external

import (
	"time"

	"github.com/sh5080/vectify-go/pkg/configs"
	_interface "github.com/sh5080/vectify-go/pkg/interfaces"
	model "github.com/sh5080/vectify-go/pkg/types/models"
	"github.com/sh5080/vectify-go/pkg/utils"
)

// ServerStatusService는 서버 상태를 관리하는 서비스입니다.
type ServerStatusService struct {
	appName   string
	version   string
	providers map[string]bool
	metrics   func() (float64, float64)
}

// 인터페이스 구현 확인
var _ _interface.ServerStatusService = (*ServerStatusService)(nil)

// NewServerStatusService는 새로운 서버 상태 서비스를 생성합니다.
// 공급자 구성 여부는 생성 시점의 설정으로 고정됩니다.
func NewServerStatusService(config *configs.EnvConfig) *ServerStatusService {
	return &ServerStatusService{
		appName:   config.Server.AppName,
		version:   configs.AppVersion,
		providers: ConfiguredProviders(config),
		metrics:   utils.GetSystemMetrics,
	}
}

// ConfiguredProviders는 자격증명이 설정된 외부 공급자를 반환합니다
func ConfiguredProviders(config *configs.EnvConfig) map[string]bool {
	return map[string]bool{
		"openai":      config.Providers.OpenAIAPIKey != "",
		"gemini":      config.Providers.GeminiAPIKey != "",
		"huggingface": config.Providers.HuggingFaceToken != "",
		"paypal":      config.PayPal.Valid(),
		"supabase":    config.Auth.SupabaseURL != "",
	}
}

// GetServerStatus는 현재 서버의 상태 정보를 반환하고 Prometheus 게이지를 갱신합니다.
func (s *ServerStatusService) GetServerStatus() *model.ServerStatus {
	// 시스템 리소스 메트릭 수집
	load := utils.CalculateServerLoad(s.metrics())

	providers := make(map[string]bool, len(s.providers))
	for name, ok := range s.providers {
		providers[name] = ok
	}

	status := &model.ServerStatus{
		AppName:     s.appName,
		Version:     s.version,
		LastUpdated: time.Now(),

		Load:      load.Load,
		IsHealthy: load.IsHealthy,
		Capacity:  load.Capacity,

		CpuUsage:    load.CpuUsage,
		MemoryUsage: load.MemoryUsage,

		Providers: providers,
	}

	// Prometheus 메트릭 업데이트
	utils.UpdateServerMetric(s.appName, "load", status.Load)
	utils.UpdateServerMetric(s.appName, "capacity", status.Capacity)
	healthy := 0.0
	if status.IsHealthy {
		healthy = 1.0
	}
	utils.UpdateServerMetric(s.appName, "healthy", healthy)

	return status
}
