package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sh5080/vectify-go/pkg/apperrors"
	responseDto "github.com/sh5080/vectify-go/pkg/types/dtos/responses"
	"github.com/sh5080/vectify-go/pkg/utils"
)

// ErrorHandler는 핸들러가 반환한 모든 오류를 {"error": "..."} 형태로 응답합니다.
// 분류되지 않은 오류는 500 "서버 내부 오류"가 됩니다.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status, message := resolveError(err)
	if status >= fiber.StatusInternalServerError {
		utils.Error("http", "%s %s 실패: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(responseDto.ErrorResponse{Error: message})
}

func resolveError(err error) (int, string) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		if appErr.Kind == apperrors.KindInternal {
			return fiber.StatusInternalServerError, "서버 내부 오류: " + appErr.Error()
		}
		return apperrors.StatusCode(appErr), appErr.Message
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiberErr.Message
	}

	return fiber.StatusInternalServerError, "서버 내부 오류: " + err.Error()
}
