package constants

import "time"

// 처리 모드
const (
	MODE_TEXT    = "text"
	MODE_DRAWING = "drawing"
	MODE_MIXED   = "mixed"
)

// 텍스트 추출 지시문 (비전 모델에 그대로 전달)
const TEXT_EXTRACTION_PROMPT = "Extract all the text from this image. If there is handwritten text, transcribe it clearly and legibly. Return only the extracted text without additional comments."

// TEXT_MAX_TOKENS는 텍스트 추출 응답의 최대 토큰 수입니다
const TEXT_MAX_TOKENS = 1000

// 드로잉 생성 프롬프트
const DRAWING_PROMPT = "professional digital illustration, clean vector art, high quality, modern design, smooth lines"

// Hugging Face 생성 파라미터
const (
	HF_INFERENCE_STEPS = 20
	HF_GUIDANCE_SCALE  = 7.5
)

// DALL·E 생성 파라미터
const (
	DALLE_COUNT   = 1
	DALLE_SIZE    = "1024x1024"
	DALLE_QUALITY = "hd"
	DALLE_STYLE   = "natural"
)

// 드로잉 결과 출처 (로그/메트릭 라벨)
const (
	SOURCE_HF_GENERATE = "huggingface-generate"
	SOURCE_HF_ENHANCE  = "huggingface-enhance"
	SOURCE_DALLE       = "openai-dalle"
	SOURCE_PLACEHOLDER = "placeholder"
	SOURCE_ECHO        = "echo"
)

// 공급자 시도 결과
const (
	OUTCOME_SUCCESS = "success"
	OUTCOME_FAILURE = "failure"
)

// 디지털화 처리 상태
const (
	STATUS_PROCESSING = "processing"
	STATUS_COMPLETED  = "completed"
	STATUS_FAILED     = "failed"
)

// RECENT_DIGITALIZATIONS는 대시보드에 보여줄 최근 처리 건수입니다
const RECENT_DIGITALIZATIONS = 5

// 구독 플랜
const (
	PLAN_FREE       = "free"
	PLAN_PRO        = "pro"
	PLAN_ENTERPRISE = "enterprise"
)

// 구독 상태
const (
	SUBSCRIPTION_ACTIVE   = "active"
	SUBSCRIPTION_CANCELED = "canceled"
	SUBSCRIPTION_EXPIRED  = "expired"
)

// 지원 통화
var SUPPORTED_CURRENCIES = []string{"EUR", "USD", "ARS", "BRL", "MXN", "COP"}

// PayPal 웹훅 이벤트 타입
const (
	EVENT_PAYMENT_CAPTURE_COMPLETED    = "PAYMENT.CAPTURE.COMPLETED"
	EVENT_PAYMENT_CAPTURE_DENIED       = "PAYMENT.CAPTURE.DENIED"
	EVENT_BILLING_SUBSCRIPTION_CREATED = "BILLING.SUBSCRIPTION.CREATED"
	EVENT_BILLING_SUBSCRIPTION_CANCEL  = "BILLING.SUBSCRIPTION.CANCELLED"
	EVENT_BILLING_SUBSCRIPTION_EXPIRED = "BILLING.SUBSCRIPTION.EXPIRED"
)

// PayPal 웹훅 서명 헤더
var PAYPAL_SIGNATURE_HEADERS = []string{
	"paypal-transmission-sig",
	"paypal-cert-url",
	"paypal-transmission-id",
	"paypal-transmission-time",
	"paypal-auth-algo",
}

// 외부 호출 타임아웃
const (
	IDENTITY_TIMEOUT = 10 * time.Second
	PAYPAL_TIMEOUT   = 15 * time.Second
)

// 로컬 개발 환경 기본 사용자
const LOCAL_USER_ID = "local-user"
