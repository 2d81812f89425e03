package drawing

import (
	"context"
	"errors"
	"time"

	_interface "github.com/sh5080/vectify-go/pkg/interfaces"
	constants "github.com/sh5080/vectify-go/pkg/types"
	structure "github.com/sh5080/vectify-go/pkg/types/structures"
	"github.com/sh5080/vectify-go/pkg/utils"
)

var (
	errEmptyPayload = errors.New("빈 결과")
	errNotDataURL   = errors.New("base64 data URL이 아닌 결과")
)

// Orchestrator는 드로잉 공급자를 우선순위대로 시도하고
// 모두 실패하면 플레이스홀더를 만드는 폴백 체인입니다.
type Orchestrator struct {
	providers []_interface.DrawingProvider
	timeout   time.Duration
}

// 인터페이스 구현 확인
var _ _interface.DrawingProcessor = (*Orchestrator)(nil)

// NewOrchestrator는 공급자 체인과 공급자별 시간 제한으로 오케스트레이터를 생성합니다.
// timeout이 0 이하이면 호출자의 context만 적용됩니다.
func NewOrchestrator(timeout time.Duration, providers ..._interface.DrawingProvider) *Orchestrator {
	return &Orchestrator{
		providers: providers,
		timeout:   timeout,
	}
}

// Process는 첫 번째로 성공한 공급자의 결과를 벡터/래스터 양쪽에 담아 반환합니다.
// 공급자 실패는 기록만 하고 삼키며, 항상 결과를 반환합니다.
func (o *Orchestrator) Process(ctx context.Context, sourceReference string) structure.DrawingOutput {
	attempts := make([]structure.ProviderAttempt, 0, len(o.providers))

	for _, provider := range o.providers {
		if err := ctx.Err(); err != nil {
			utils.Warn("drawing", "요청이 취소되어 공급자 체인을 중단합니다: %v", err)
			break
		}

		payload, err := o.attempt(ctx, provider, sourceReference)
		if err != nil {
			utils.Warn("drawing", "%s 실패: %v", provider.Name(), err)
			attempts = append(attempts, structure.ProviderAttempt{
				ProviderName: provider.Name(),
				Outcome:      constants.OUTCOME_FAILURE,
				Err:          err,
			})
			continue
		}

		utils.Info("drawing", "%s 성공", provider.Name())
		attempts = append(attempts, structure.ProviderAttempt{
			ProviderName: provider.Name(),
			Outcome:      constants.OUTCOME_SUCCESS,
			Payload:      payload,
		})
		utils.RecordDrawingSource(provider.Name())

		return structure.DrawingOutput{
			Vector:   payload,
			Raster:   payload,
			Source:   provider.Name(),
			Attempts: attempts,
		}
	}

	return o.fallback(sourceReference, attempts)
}

// attempt는 공급자 한 번을 시간 제한과 함께 호출합니다
func (o *Orchestrator) attempt(ctx context.Context, provider _interface.DrawingProvider, sourceReference string) (string, error) {
	callCtx := ctx
	if o.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	start := time.Now()
	payload, err := provider.Attempt(callCtx, sourceReference)
	switch {
	case err != nil:
	case payload == "":
		err = errEmptyPayload
	case !utils.IsDataURL(payload):
		err = errNotDataURL
	}

	utils.RecordProviderCall(provider.Name(), err == nil, time.Since(start).Seconds())
	return payload, err
}

// fallback은 결정적인 플레이스홀더를 만들고, 파일 이름이 없으면 원본 참조를 그대로 돌려줍니다
func (o *Orchestrator) fallback(sourceReference string, attempts []structure.ProviderAttempt) structure.DrawingOutput {
	if vector, raster, ok := RenderPlaceholder(sourceReference); ok {
		utils.Info("drawing", "모든 공급자 실패, 플레이스홀더 사용")
		utils.RecordDrawingSource(constants.SOURCE_PLACEHOLDER)
		return structure.DrawingOutput{
			Vector:   vector,
			Raster:   raster,
			Source:   constants.SOURCE_PLACEHOLDER,
			Attempts: attempts,
		}
	}

	utils.Info("drawing", "파일 이름을 만들 수 없어 원본 참조를 반환합니다")
	utils.RecordDrawingSource(constants.SOURCE_ECHO)
	return structure.DrawingOutput{
		Vector:   sourceReference,
		Raster:   sourceReference,
		Source:   constants.SOURCE_ECHO,
		Attempts: attempts,
	}
}
