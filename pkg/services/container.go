package service

import (
	"context"
	"fmt"
	"net/http"

	client "github.com/sh5080/vectify-go/pkg/clients"
	"github.com/sh5080/vectify-go/pkg/configs"
	"github.com/sh5080/vectify-go/pkg/db"
	_interface "github.com/sh5080/vectify-go/pkg/interfaces"
	repository "github.com/sh5080/vectify-go/pkg/repositories"
	"github.com/sh5080/vectify-go/pkg/services/api"
	"github.com/sh5080/vectify-go/pkg/services/external"
	"github.com/sh5080/vectify-go/pkg/services/internal/drawing"
	"github.com/sh5080/vectify-go/pkg/services/internal/queue"
	"github.com/sh5080/vectify-go/pkg/services/internal/text"
	constants "github.com/sh5080/vectify-go/pkg/types"
	"github.com/sh5080/vectify-go/pkg/utils"
)

type repositories struct {
	digitalizations _interface.DigitalizationRepository
	subscriptions   _interface.SubscriptionRepository
	close           func()
}

// NewServiceContainer는 설정으로 새로운 서비스 컨테이너를 생성합니다
func NewServiceContainer(ctx context.Context, config *configs.EnvConfig) (*_interface.ServiceContainer, error) {
	// 공급자 호출마다 컨텍스트 타임아웃을 걸기 때문에 클라이언트 자체 타임아웃은 두지 않음
	httpc := &http.Client{}

	openai := client.NewOpenAIClient(config.Providers, httpc)
	huggingface := client.NewHuggingFaceClient(config.Providers, httpc)

	extractor := text.NewExtractor(config.Providers, httpc)
	orchestrator := drawing.NewOrchestrator(config.Providers.Timeout, drawing.BuildChain(huggingface, openai)...)
	processingService := api.NewProcessingService(extractor, orchestrator)

	repos, err := newRepositories(ctx, config)
	if err != nil {
		return nil, err
	}

	publisher, err := newPublisher(ctx, config)
	if err != nil {
		repos.close()
		return nil, err
	}

	var verifier _interface.WebhookVerifier
	if paypal := client.NewPayPalClient(config.PayPal, &http.Client{Timeout: constants.PAYPAL_TIMEOUT}); paypal.CanVerify() {
		verifier = paypal
	} else {
		utils.Warn("container", "PayPal 웹훅 서명 검증이 비활성화되어 있습니다")
	}

	var identity _interface.IdentityProvider
	if supabase := client.NewSupabaseAuthClient(config.Auth, &http.Client{Timeout: constants.IDENTITY_TIMEOUT}); supabase != nil {
		identity = supabase
	}

	utils.Info("container", "저장소: %s, 텍스트 엔진: %s, 드로잉 공급자: %v",
		config.Storage.Driver, config.Providers.TextEngine, external.ConfiguredProviders(config))

	return &_interface.ServiceContainer{
		Service: _interface.Service{
			Config: config,
			Client: httpc,
		},
		ProcessingService:     processingService,
		DigitalizationService: api.NewDigitalizationService(processingService, repos.digitalizations, publisher),
		PaymentService:        api.NewPaymentService(config.PayPal, repos.subscriptions, verifier),
		ServerStatusService:   external.NewServerStatusService(config),
		IdentityProvider:      identity,
		Close:                 repos.close,
	}, nil
}

// newRepositories는 STORAGE_DRIVER에 맞는 저장소를 생성합니다
func newRepositories(ctx context.Context, config *configs.EnvConfig) (repositories, error) {
	switch config.Storage.Driver {
	case "dynamodb":
		dynamo, err := db.NewDynamoClient(ctx, config.AWS)
		if err != nil {
			return repositories{}, err
		}
		for _, table := range []db.DynamoTable{
			repository.DigitalizationTable(config.AWS.Tables.Digitalizations),
			repository.SubscriptionTable(config.AWS.Tables.Subscriptions),
		} {
			if err := db.CreateTableIfNotExists(ctx, dynamo, table); err != nil {
				return repositories{}, fmt.Errorf("%s 테이블 준비 실패: %v", table.Name, err)
			}
		}
		return repositories{
			digitalizations: repository.NewDynamoDigitalizationRepository(dynamo, config.AWS.Tables.Digitalizations),
			subscriptions:   repository.NewDynamoSubscriptionRepository(dynamo, config.AWS.Tables.Subscriptions),
			close:           func() {},
		}, nil

	case "postgres":
		pool, err := db.NewPostgresPool(ctx, config.Storage.DatabaseURL)
		if err != nil {
			return repositories{}, err
		}
		return repositories{
			digitalizations: repository.NewPostgresDigitalizationRepository(pool),
			subscriptions:   repository.NewPostgresSubscriptionRepository(pool),
			close:           pool.Close,
		}, nil

	default:
		utils.Warn("container", "인메모리 저장소를 사용합니다. 재시작하면 이력이 사라집니다")
		return repositories{
			digitalizations: repository.NewInMemoryDigitalizationRepository(),
			subscriptions:   repository.NewInMemorySubscriptionRepository(),
			close:           func() {},
		}, nil
	}
}

// newPublisher는 큐 URL이 있을 때만 SQS 이벤트 발행기를 생성합니다
func newPublisher(ctx context.Context, config *configs.EnvConfig) (_interface.EventPublisher, error) {
	if config.AWS.SQS.QueueURL == "" {
		return nil, nil
	}

	awsConfig, err := db.LoadAWSConfig(ctx, config.AWS)
	if err != nil {
		return nil, err
	}
	return queue.NewSqsPublisher(awsConfig, config.AWS.SQS.QueueURL), nil
}

// RenderPlaceholder는 소스 참조의 파일 이름으로 벡터/래스터 플레이스홀더 한 쌍을 만듭니다.
// 파일 이름을 알 수 없으면 ok가 false입니다.
func RenderPlaceholder(sourceReference string) (vector string, raster string, ok bool) {
	return drawing.RenderPlaceholder(sourceReference)
}
