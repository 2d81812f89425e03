package configs

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// 앱 버전을 저장하는 전역 변수
var AppVersion string

// ServerConfig는 HTTP 서버와 실행 환경 설정입니다
type ServerConfig struct {
	Port      string `env:"PORT" envDefault:"8080"`
	AppName   string `env:"APP_NAME" envDefault:"vectify"`
	AppEnv    string `env:"APP_ENV" envDefault:"production"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// ProviderConfig는 외부 AI 공급자 자격증명과 모델 설정입니다.
// 키가 비어 있으면 해당 공급자는 구성되지 않은 것으로 취급합니다.
type ProviderConfig struct {
	OpenAIAPIKey      string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL     string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	OpenAIVisionModel string `env:"OPENAI_VISION_MODEL" envDefault:"gpt-4o"`
	OpenAIImageModel  string `env:"OPENAI_IMAGE_MODEL" envDefault:"dall-e-3"`

	// TextEngine은 텍스트 추출에 사용할 비전 모델 공급자입니다 (openai | gemini)
	TextEngine    string `env:"TEXT_ENGINE" envDefault:"openai"`
	TextMaxTokens int    `env:"TEXT_MAX_TOKENS" envDefault:"1000"`
	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	GeminiModel   string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`

	HuggingFaceToken         string `env:"HUGGINGFACE_API_TOKEN"`
	HuggingFaceBaseURL       string `env:"HUGGINGFACE_BASE_URL" envDefault:"https://api-inference.huggingface.co/models"`
	HuggingFaceGenerateModel string `env:"HUGGINGFACE_GENERATE_MODEL" envDefault:"runwayml/stable-diffusion-v1-5"`
	HuggingFaceEnhanceModel  string `env:"HUGGINGFACE_ENHANCE_MODEL" envDefault:"caidas/swin2SR-realworld-sr-x4-64-bsrgan-psnr"`

	// Timeout은 공급자 호출 한 번에 허용되는 최대 시간입니다
	Timeout time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"60s"`
}

// StorageConfig는 이력 저장소 설정입니다
type StorageConfig struct {
	Driver      string `env:"STORAGE_DRIVER" envDefault:"memory"` // memory | dynamodb | postgres
	DatabaseURL string `env:"DATABASE_URL"`
}

// AWSConfig는 DynamoDB/SQS 접근 설정입니다
type AWSConfig struct {
	AccessKeyID      string `env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY"`
	Region           string `env:"AWS_REGION" envDefault:"eu-west-1"`
	DynamoDBEndpoint string `env:"AWS_DYNAMODB_ENDPOINT"`
	Tables           struct {
		Digitalizations string `env:"AWS_DYNAMODB_TABLE_DIGITALIZATIONS" envDefault:"Digitalizations"`
		Subscriptions   string `env:"AWS_DYNAMODB_TABLE_SUBSCRIPTIONS" envDefault:"Subscriptions"`
	}
	SQS struct {
		QueueURL string `env:"AWS_SQS_QUEUE_URL"`
	}
}

// AuthConfig는 외부 인증 공급자(Supabase) 설정입니다
type AuthConfig struct {
	SupabaseURL     string `env:"SUPABASE_URL"`
	SupabaseAnonKey string `env:"SUPABASE_ANON_KEY"`
}

// PayPalConfig는 결제 웹훅 설정입니다
type PayPalConfig struct {
	ClientID       string `env:"PAYPAL_CLIENT_ID"`
	ClientSecret   string `env:"PAYPAL_CLIENT_SECRET"`
	WebhookID      string `env:"PAYPAL_WEBHOOK_ID"`
	Environment    string `env:"PAYPAL_ENV" envDefault:"sandbox"` // sandbox | production
	PlanPro        string `env:"PAYPAL_PLAN_PRO"`
	PlanEnterprise string `env:"PAYPAL_PLAN_ENTERPRISE"`
}

// Valid는 결제 연동에 필요한 필수 값이 모두 있는지 확인합니다
func (p PayPalConfig) Valid() bool {
	return p.ClientID != "" && p.ClientSecret != ""
}

// APIBaseURL은 환경에 맞는 PayPal REST API 주소를 반환합니다
func (p PayPalConfig) APIBaseURL() string {
	if p.Environment == "production" {
		return "https://api-m.paypal.com"
	}
	return "https://api-m.sandbox.paypal.com"
}

type EnvConfig struct {
	Server    ServerConfig
	Providers ProviderConfig
	Storage   StorageConfig
	AWS       AWSConfig
	Auth      AuthConfig
	PayPal    PayPalConfig
}

// IsDev는 로컬/개발 환경인지 확인합니다
func (c *EnvConfig) IsDev() bool {
	return c.Server.AppEnv == "dev" || c.Server.AppEnv == "local"
}

var (
	configInstance *EnvConfig
	once           sync.Once
)

// init 함수에서 VERSION 환경 변수 로드
func init() {
	AppVersion = os.Getenv("VERSION")
	if AppVersion == "" {
		AppVersion = "dev"
	}

	if os.Getenv("APP_ENV") == "dev" {
		AppVersion = "dev"
	}
}

// Load는 .env 파일과 환경 변수에서 새 설정을 읽습니다.
// .env 파일이 없으면 환경 변수만 사용합니다.
func Load() (*EnvConfig, error) {
	_ = godotenv.Load(".env")

	config := &EnvConfig{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("환경 변수 파싱 실패: %w", err)
	}

	switch config.Storage.Driver {
	case "":
		// STORAGE_DRIVER= 처럼 빈 값으로 지정된 경우
		config.Storage.Driver = "memory"
	case "memory", "dynamodb", "postgres":
	default:
		return nil, fmt.Errorf("지원하지 않는 STORAGE_DRIVER: %s", config.Storage.Driver)
	}

	if config.Storage.Driver == "postgres" && config.Storage.DatabaseURL == "" {
		return nil, fmt.Errorf("STORAGE_DRIVER=postgres 에는 DATABASE_URL 이 필요합니다")
	}

	return config, nil
}

// GetConfig는 EnvConfig의 싱글톤 인스턴스를 반환합니다.
// 처음 호출 시에만 환경 변수를 로드하고 이후 호출에서는 캐시된 인스턴스를 반환합니다.
// 로드에 실패하면 프로세스를 종료합니다.
func GetConfig() *EnvConfig {
	once.Do(func() {
		config, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "설정 로드 실패: %v\n", err)
			os.Exit(1)
		}
		configInstance = config
	})
	return configInstance
}
