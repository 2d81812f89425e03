package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sh5080/vectify-go/pkg/apperrors"
	_interface "github.com/sh5080/vectify-go/pkg/interfaces"
	middleware "github.com/sh5080/vectify-go/pkg/middlewares"
	constants "github.com/sh5080/vectify-go/pkg/types"
	responseDto "github.com/sh5080/vectify-go/pkg/types/dtos/responses"
	structure "github.com/sh5080/vectify-go/pkg/types/structures"
	"github.com/sh5080/vectify-go/pkg/utils"
)

// Plans는 판매 중인 구독 플랜을 반환합니다
func Plans(paymentService _interface.PaymentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(paymentService.Plans())
	}
}

// Subscription은 사용자의 현재 플랜을 반환합니다
func Subscription(paymentService _interface.PaymentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sub, err := paymentService.GetSubscription(c.UserContext(), middleware.UserID(c))
		if err != nil {
			return err
		}
		return c.JSON(responseDto.SubscriptionResponse{Plan: sub.Plan, Status: sub.Status})
	}
}

// PayPalWebhook은 PayPal 웹훅을 받아 처리합니다.
// 서명 헤더가 하나라도 없으면 400입니다.
func PayPalWebhook(paymentService _interface.PaymentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, header := range constants.PAYPAL_SIGNATURE_HEADERS {
			if c.Get(header) == "" {
				return apperrors.InvalidRequest("PayPal 서명 헤더가 없습니다: " + header)
			}
		}

		headers := structure.PayPalSignatureHeaders{
			TransmissionSig:  c.Get("paypal-transmission-sig"),
			CertURL:          c.Get("paypal-cert-url"),
			TransmissionID:   c.Get("paypal-transmission-id"),
			TransmissionTime: c.Get("paypal-transmission-time"),
			AuthAlgo:         c.Get("paypal-auth-algo"),
		}

		// fiber는 요청 버퍼를 재사용하므로 본문을 복사해서 넘김
		body := append([]byte(nil), c.Body()...)

		if err := paymentService.HandleWebhook(c.UserContext(), headers, body); err != nil {
			if apperrors.Is(err, apperrors.KindInvalidRequest) {
				return err
			}
			utils.Error("payment", "웹훅 처리 실패: %v", err)
			return apperrors.Internal("웹훅 처리 실패", err)
		}

		return c.JSON(responseDto.WebhookAckResponse{Received: true})
	}
}
