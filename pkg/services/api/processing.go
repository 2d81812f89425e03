package api

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sh5080/vectify-go/pkg/apperrors"
	_interface "github.com/sh5080/vectify-go/pkg/interfaces"
	constants "github.com/sh5080/vectify-go/pkg/types"
	structure "github.com/sh5080/vectify-go/pkg/types/structures"
	"github.com/sh5080/vectify-go/pkg/utils"
)

// ProcessingImpl은 디지털화 핵심 연산 구현체입니다
type ProcessingImpl struct {
	text    _interface.TextExtractor
	drawing _interface.DrawingProcessor
}

// NewProcessingService는 텍스트 추출기와 드로잉 오케스트레이터로 처리 서비스를 생성합니다
func NewProcessingService(text _interface.TextExtractor, drawing _interface.DrawingProcessor) _interface.ProcessingService {
	return &ProcessingImpl{
		text:    text,
		drawing: drawing,
	}
}

// ValidateRequest는 외부 호출 전에 요청을 검사합니다
func ValidateRequest(req structure.ProcessingRequest) error {
	if strings.TrimSpace(req.SourceReference) == "" || strings.TrimSpace(req.Mode) == "" {
		return apperrors.InvalidRequest("이미지 URL과 처리 유형은 필수입니다")
	}

	switch req.Mode {
	case constants.MODE_TEXT, constants.MODE_DRAWING, constants.MODE_MIXED:
		return nil
	default:
		return apperrors.InvalidRequest(fmt.Sprintf("지원하지 않는 처리 유형입니다: %s", req.Mode))
	}
}

// AssembleResult는 모드에 맞는 필드만 담아 처리 결과를 만듭니다
func AssembleResult(mode string, text *string, drawing *structure.DrawingOutput) structure.ProcessingResult {
	var result structure.ProcessingResult

	if mode == constants.MODE_TEXT || mode == constants.MODE_MIXED {
		result.TextContent = text
	}

	if (mode == constants.MODE_DRAWING || mode == constants.MODE_MIXED) && drawing != nil {
		result.VectorOutput = drawing.Vector
		result.RasterOutput = drawing.Raster
		result.DrawingSource = drawing.Source
	}

	return result
}

// ProcessDigitalization은 모드에 따라 텍스트 추출과 드로잉 처리를 수행합니다.
// text 모드에서 텍스트 오류는 그대로 반환합니다.
// mixed 모드에서는 텍스트가 실패해도 드로잉을 처리하고, 결과와 텍스트 오류를 함께 반환합니다.
func (s *ProcessingImpl) ProcessDigitalization(ctx context.Context, req structure.ProcessingRequest) (structure.ProcessingResult, error) {
	if err := ValidateRequest(req); err != nil {
		return structure.ProcessingResult{}, err
	}

	start := time.Now()
	defer func() {
		utils.RecordProcessingTime(req.Mode, time.Since(start).Seconds())
	}()

	var (
		text    *string
		textErr error
		drawing *structure.DrawingOutput
	)

	if req.Mode == constants.MODE_TEXT || req.Mode == constants.MODE_MIXED {
		content, err := s.extractText(ctx, req.SourceReference)
		if err != nil {
			if req.Mode == constants.MODE_TEXT {
				return structure.ProcessingResult{}, err
			}
			utils.Warn("processing", "mixed 모드 텍스트 추출 실패, 드로잉은 계속 처리합니다: %v", err)
			textErr = err
		} else {
			text = &content
		}
	}

	if req.Mode == constants.MODE_DRAWING || req.Mode == constants.MODE_MIXED {
		out := s.drawing.Process(ctx, req.SourceReference)
		drawing = &out
		utils.Info("processing", "드로잉 결과 출처: %s (시도 %d회)", out.Source, len(out.Attempts))
	}

	return AssembleResult(req.Mode, text, drawing), textErr
}

func (s *ProcessingImpl) extractText(ctx context.Context, sourceReference string) (string, error) {
	if s.text == nil {
		return "", apperrors.Configuration("텍스트 추출 엔진이 구성되지 않았습니다")
	}

	start := time.Now()
	content, err := s.text.ExtractText(ctx, sourceReference)
	// 구성 오류는 네트워크 호출이 없었으므로 공급자 메트릭에서 제외
	if !apperrors.Is(err, apperrors.KindConfiguration) {
		utils.RecordProviderCall("text", err == nil, time.Since(start).Seconds())
	}
	if err != nil {
		return "", err
	}

	utils.Debug("processing", "텍스트 추출 완료 (%d자)", len([]rune(content)))
	return content, nil
}
