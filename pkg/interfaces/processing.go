package _interface

import (
	"context"

	request "github.com/sh5080/vectify-go/pkg/types/dtos/requests"
	response "github.com/sh5080/vectify-go/pkg/types/dtos/responses"
	model "github.com/sh5080/vectify-go/pkg/types/models"
	structure "github.com/sh5080/vectify-go/pkg/types/structures"
)

// TextExtractor는 이미지에서 텍스트를 추출하는 인터페이스입니다
type TextExtractor interface {
	// ExtractText는 소스 참조의 이미지에서 텍스트를 추출합니다.
	// 공급자가 내용을 주지 않으면 빈 문자열을 반환합니다.
	ExtractText(ctx context.Context, sourceReference string) (string, error)
}

// DrawingProvider는 드로잉 폴백 체인의 한 단계입니다
type DrawingProvider interface {
	// Name은 로그와 메트릭에 쓰이는 공급자 이름입니다
	Name() string

	// Attempt는 소스 참조로 이미지를 만들고 base64 data URL을 반환합니다
	Attempt(ctx context.Context, sourceReference string) (string, error)
}

// DrawingProcessor는 드로잉 결과를 항상 만들어내는 오케스트레이터입니다
type DrawingProcessor interface {
	Process(ctx context.Context, sourceReference string) structure.DrawingOutput
}

// ProcessingService는 디지털화 핵심 연산 인터페이스입니다
type ProcessingService interface {
	// ProcessDigitalization은 모드에 따라 텍스트/드로잉을 처리합니다.
	// mixed 모드에서는 드로잉 결과와 텍스트 오류가 함께 반환될 수 있습니다.
	ProcessDigitalization(ctx context.Context, req structure.ProcessingRequest) (structure.ProcessingResult, error)
}

// DigitalizationService는 이력이 저장되는 디지털화 처리와 조회 인터페이스입니다
type DigitalizationService interface {
	// Create는 이력을 만들고 처리한 뒤 결과를 저장합니다
	Create(ctx context.Context, userID string, req request.CreateDigitalizationRequest) (*model.Digitalization, error)
	List(ctx context.Context, userID string, limit, offset int) ([]model.Digitalization, error)
	Get(ctx context.Context, userID, id string) (*model.Digitalization, error)
	Stats(ctx context.Context, userID string) (*response.StatsResponse, error)
}
