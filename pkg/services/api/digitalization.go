package api

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sh5080/vectify-go/pkg/apperrors"
	_interface "github.com/sh5080/vectify-go/pkg/interfaces"
	constants "github.com/sh5080/vectify-go/pkg/types"
	request "github.com/sh5080/vectify-go/pkg/types/dtos/requests"
	response "github.com/sh5080/vectify-go/pkg/types/dtos/responses"
	model "github.com/sh5080/vectify-go/pkg/types/models"
	structure "github.com/sh5080/vectify-go/pkg/types/structures"
	"github.com/sh5080/vectify-go/pkg/utils"
)

// DigitalizationImpl은 이력 저장이 포함된 디지털화 서비스 구현체입니다
type DigitalizationImpl struct {
	processor _interface.ProcessingService
	repo      _interface.DigitalizationRepository
	publisher _interface.EventPublisher
	now       func() time.Time
}

// NewDigitalizationService는 새 디지털화 이력 서비스를 생성합니다.
// publisher가 nil이면 이벤트를 발행하지 않습니다.
func NewDigitalizationService(
	processor _interface.ProcessingService,
	repo _interface.DigitalizationRepository,
	publisher _interface.EventPublisher,
) _interface.DigitalizationService {
	return &DigitalizationImpl{
		processor: processor,
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

// Create는 processing 상태의 이력을 만들고 처리 결과로 갱신합니다.
// 처리 실패 시 failed 상태로 저장한 이력과 오류를 함께 반환합니다.
func (s *DigitalizationImpl) Create(ctx context.Context, userID string, req request.CreateDigitalizationRequest) (*model.Digitalization, error) {
	processingReq := structure.ProcessingRequest{SourceReference: req.ImageURL, Mode: req.Type}
	if err := ValidateRequest(processingReq); err != nil {
		return nil, err
	}

	filename := req.OriginalFilename
	if filename == "" {
		filename = utils.FileBaseName(req.ImageURL)
	}

	now := s.now()
	record := &model.Digitalization{
		ID:               uuid.NewString(),
		UserID:           userID,
		OriginalFilename: filename,
		OriginalURL:      req.ImageURL,
		FileSize:         req.FileSize,
		Type:             req.Type,
		Status:           constants.STATUS_PROCESSING,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, apperrors.Internal("이력 생성 실패", err)
	}

	start := s.now()
	result, procErr := s.processor.ProcessDigitalization(ctx, processingReq)
	elapsed := s.now().Sub(start).Milliseconds()

	record.ProcessingTime = &elapsed
	record.UpdatedAt = s.now()
	record.TextContent = result.TextContent
	record.VectorURL = result.VectorOutput
	record.PNGURL = result.RasterOutput
	record.DrawingSource = result.DrawingSource

	switch {
	case procErr == nil:
		record.Status = constants.STATUS_COMPLETED
	case result.HasDrawing():
		// mixed 모드 부분 성공
		record.Status = constants.STATUS_COMPLETED
		record.ErrorMessage = procErr.Error()
	default:
		record.Status = constants.STATUS_FAILED
		record.ErrorMessage = procErr.Error()
	}

	// 요청이 취소되어도 결과는 저장
	saveCtx := context.WithoutCancel(ctx)
	if err := s.repo.Update(saveCtx, record); err != nil {
		return nil, apperrors.Internal("이력 갱신 실패", err)
	}

	s.publish(saveCtx, record)

	if record.Status == constants.STATUS_FAILED {
		return record, procErr
	}
	return record, nil
}

// publish는 처리 결과 이벤트를 발행합니다. 실패해도 처리 결과에는 영향을 주지 않습니다.
func (s *DigitalizationImpl) publish(ctx context.Context, record *model.Digitalization) {
	if s.publisher == nil {
		return
	}

	event := model.DigitalizationEvent{
		DigitalizationID: record.ID,
		UserID:           record.UserID,
		Type:             record.Type,
		Status:           record.Status,
		DrawingSource:    record.DrawingSource,
		ErrorMessage:     record.ErrorMessage,
		OccurredAt:       record.UpdatedAt,
	}
	if record.ProcessingTime != nil {
		event.ProcessingTime = *record.ProcessingTime
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		utils.Error("digitalization", "이벤트 발행 실패 (%s): %v", record.ID, err)
	}
}

// List는 사용자의 이력을 최신순으로 반환합니다
func (s *DigitalizationImpl) List(ctx context.Context, userID string, limit, offset int) ([]model.Digitalization, error) {
	limit, offset = utils.PaginationRequest(limit, offset)

	records, err := s.repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, apperrors.Internal("이력 조회 실패", err)
	}
	if records == nil {
		records = []model.Digitalization{}
	}
	return records, nil
}

// Get은 사용자가 소유한 이력 하나를 반환합니다
func (s *DigitalizationImpl) Get(ctx context.Context, userID, id string) (*model.Digitalization, error) {
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("이력 조회 실패", err)
	}
	if record == nil || record.UserID != userID {
		return nil, apperrors.NotFound("디지털화 이력을 찾을 수 없습니다")
	}
	return record, nil
}

// Stats는 사용자의 대시보드 통계를 계산합니다
func (s *DigitalizationImpl) Stats(ctx context.Context, userID string) (*response.StatsResponse, error) {
	records, err := s.repo.ListByUser(ctx, userID, 0, 0)
	if err != nil {
		return nil, apperrors.Internal("통계 조회 실패", err)
	}
	return BuildStats(records), nil
}

// BuildStats는 최신순으로 정렬된 이력으로 통계를 만듭니다
func BuildStats(records []model.Digitalization) *response.StatsResponse {
	stats := &response.StatsResponse{
		TotalDigitalizations:  len(records),
		RecentDigitalizations: []model.Digitalization{},
	}

	var totalTime int64
	var timed int
	for _, record := range records {
		if record.Status != constants.STATUS_COMPLETED {
			continue
		}

		switch record.Type {
		case constants.MODE_TEXT:
			stats.TextProcessed++
		case constants.MODE_DRAWING:
			stats.DrawingsVectorized++
		}

		// 처리 시간이 0이거나 없는 건은 평균에서 제외
		if record.ProcessingTime != nil && *record.ProcessingTime > 0 {
			totalTime += *record.ProcessingTime
			timed++
		}
	}

	if timed > 0 {
		stats.AverageProcessingTime = int64(math.Round(float64(totalTime) / float64(timed)))
	}

	recent := min(len(records), constants.RECENT_DIGITALIZATIONS)
	stats.RecentDigitalizations = append(stats.RecentDigitalizations, records[:recent]...)

	return stats
}
