package utils

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// 직접 등록할 수 있도록 메트릭을 promauto 대신 일반 prometheus로 선언
var (
	// RequestCounter는 총 요청 수를 추적합니다
	RequestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vectify_http_requests_total",
		Help: "총 HTTP 요청 수",
	}, []string{"method", "path", "status"})

	// ResponseTime은 응답 시간을 측정합니다
	ResponseTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vectify_http_response_time_seconds",
		Help:    "HTTP 요청 응답 시간(초)",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"method", "path", "status"})

	// ProviderCallCounter는 외부 AI 공급자 호출 수를 추적합니다
	ProviderCallCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vectify_provider_calls_total",
		Help: "외부 AI 공급자 호출 수",
	}, []string{"provider", "outcome"})

	// ProviderResponseTime은 외부 AI 공급자 응답 시간을 측정합니다
	ProviderResponseTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vectify_provider_response_time_seconds",
		Help:    "외부 AI 공급자 응답 시간(초)",
		Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 15, 20, 30, 45, 60},
	}, []string{"provider"})

	// DrawingFallbackCounter는 드로잉 결과가 어느 단계에서 만들어졌는지 추적합니다
	DrawingFallbackCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vectify_drawing_fallback_total",
		Help: "드로잉 결과 출처별 횟수",
	}, []string{"source"})

	// ProcessingTime은 디지털화 전체 처리 시간을 측정합니다
	ProcessingTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vectify_processing_time_seconds",
		Help:    "디지털화 처리 시간(초)",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 20, 30, 60, 120, 180},
	}, []string{"mode"})

	// WebhookEventCounter는 수신한 결제 웹훅 이벤트 수를 추적합니다
	WebhookEventCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vectify_webhook_events_total",
		Help: "결제 웹훅 이벤트 수",
	}, []string{"event_type"})

	// ErrorCounter는 오류 발생 수를 추적합니다
	ErrorCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vectify_error_total",
		Help: "오류 발생 수",
	}, []string{"service", "type"})

	// ServerStatusGauge는 서버 부하/건강/용량 상태를 나타냅니다
	ServerStatusGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "vectify_server_status",
		Help: "서버 상태 (load, healthy, capacity)",
	}, []string{"server", "metric"})
)

var metricsOnce sync.Once

// InitMetrics는 모든 메트릭을 기본 레지스트리에 등록합니다.
// 여러 번 호출해도 한 번만 등록됩니다.
func InitMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(
			RequestCounter,
			ResponseTime,
			ProviderCallCounter,
			ProviderResponseTime,
			DrawingFallbackCounter,
			ProcessingTime,
			WebhookEventCounter,
			ErrorCounter,
			ServerStatusGauge,
		)
		Info("metrics", "메트릭 초기화 완료")
	})
}

// RecordRequest는 HTTP 요청 메트릭을 기록합니다
func RecordRequest(method, path string, status int, duration float64) {
	code := strconv.Itoa(status)
	RequestCounter.WithLabelValues(method, path, code).Inc()
	ResponseTime.WithLabelValues(method, path, code).Observe(duration)
}

// RecordProviderCall은 외부 공급자 호출 메트릭을 기록합니다
func RecordProviderCall(provider string, success bool, duration float64) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	ProviderCallCounter.WithLabelValues(provider, outcome).Inc()
	ProviderResponseTime.WithLabelValues(provider).Observe(duration)
}

// RecordDrawingSource는 드로잉 결과를 만든 단계를 기록합니다
func RecordDrawingSource(source string) {
	DrawingFallbackCounter.WithLabelValues(source).Inc()
}

// RecordProcessingTime은 모드별 처리 시간을 기록합니다
func RecordProcessingTime(mode string, duration float64) {
	ProcessingTime.WithLabelValues(mode).Observe(duration)
}

// RecordWebhookEvent는 웹훅 이벤트 수신을 기록합니다
func RecordWebhookEvent(eventType string) {
	WebhookEventCounter.WithLabelValues(eventType).Inc()
}

// RecordError는 오류 발생을 기록합니다
func RecordError(service string, errorType string) {
	ErrorCounter.WithLabelValues(service, errorType).Inc()
}

// UpdateServerMetric은 서버 상태 게이지를 갱신합니다
func UpdateServerMetric(server, metric string, value float64) {
	ServerStatusGauge.WithLabelValues(server, metric).Set(value)
}
