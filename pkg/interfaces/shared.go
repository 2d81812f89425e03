package _interface

import (
	"net/http"

	"github.com/sh5080/vectify-go/pkg/configs"
)

type Service struct {
	Config *configs.EnvConfig
	Client *http.Client
}

// ServiceContainer는 모든 서비스 인스턴스를 보관합니다
type ServiceContainer struct {
	Service

	ProcessingService     ProcessingService
	DigitalizationService DigitalizationService
	PaymentService        PaymentService
	ServerStatusService   ServerStatusService

	// IdentityProvider는 인증 공급자가 구성되지 않았으면 nil입니다
	IdentityProvider IdentityProvider

	// Close는 저장소 연결 등 컨테이너가 연 자원을 정리합니다
	Close func()
}
