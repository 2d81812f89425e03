package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sh5080/vectify-go/pkg/apperrors"
	_interface "github.com/sh5080/vectify-go/pkg/interfaces"
	middleware "github.com/sh5080/vectify-go/pkg/middlewares"
	requestDto "github.com/sh5080/vectify-go/pkg/types/dtos/requests"
	responseDto "github.com/sh5080/vectify-go/pkg/types/dtos/responses"
	structure "github.com/sh5080/vectify-go/pkg/types/structures"
	"github.com/sh5080/vectify-go/pkg/utils"
)

// ProcessDigitalization은 이미지 하나를 즉시 처리하는 핸들러입니다.
// mixed 모드에서 텍스트만 실패하면 오류 상태 코드와 함께 partialResult를 반환합니다.
func ProcessDigitalization(processingService _interface.ProcessingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req requestDto.ProcessDigitalizationRequest
		if err := c.BodyParser(&req); err != nil {
			return apperrors.InvalidRequest("요청 본문을 해석할 수 없습니다")
		}

		result, err := processingService.ProcessDigitalization(c.UserContext(), structure.ProcessingRequest{
			SourceReference: req.ImageURL,
			Mode:            req.Type,
		})
		if err != nil {
			if result.HasDrawing() {
				status, message := resolveError(err)
				return c.Status(status).JSON(responseDto.PartialResultResponse{
					Error:         message,
					PartialResult: responseDto.NewProcessDigitalizationResponse(result),
				})
			}
			return err
		}

		return c.JSON(responseDto.NewProcessDigitalizationResponse(result))
	}
}

// CreateDigitalization은 이력을 만들고 처리하는 핸들러입니다.
// 처리에 실패해도 failed 이력을 오류 상태 코드와 함께 반환합니다.
func CreateDigitalization(digitalizationService _interface.DigitalizationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req requestDto.CreateDigitalizationRequest
		if err := utils.ParseBody(c, &req); err != nil {
			return err
		}

		record, err := digitalizationService.Create(c.UserContext(), middleware.UserID(c), req)
		if err != nil {
			if record == nil {
				return err
			}
			status, _ := resolveError(err)
			return c.Status(status).JSON(record)
		}

		return c.Status(fiber.StatusCreated).JSON(record)
	}
}

// ListDigitalizations는 사용자의 이력을 최신순으로 반환합니다
func ListDigitalizations(digitalizationService _interface.DigitalizationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var query requestDto.ListDigitalizationsQuery
		if err := utils.ParseAndValidate(c.Queries(), &query); err != nil {
			return err
		}

		limit, offset := utils.PaginationRequest(query.Limit, query.Offset)
		records, err := digitalizationService.List(c.UserContext(), middleware.UserID(c), limit, offset)
		if err != nil {
			return err
		}

		return c.JSON(responseDto.DigitalizationListResponse{
			Items:  records,
			Limit:  limit,
			Offset: offset,
		})
	}
}

func GetDigitalization(digitalizationService _interface.DigitalizationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		record, err := digitalizationService.Get(c.UserContext(), middleware.UserID(c), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(record)
	}
}

// Stats는 대시보드 통계를 반환합니다
func Stats(digitalizationService _interface.DigitalizationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := digitalizationService.Stats(c.UserContext(), middleware.UserID(c))
		if err != nil {
			return err
		}
		return c.JSON(stats)
	}
}
