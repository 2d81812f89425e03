package _interface

import (
	"context"

	response "github.com/sh5080/vectify-go/pkg/types/dtos/responses"
	model "github.com/sh5080/vectify-go/pkg/types/models"
	structure "github.com/sh5080/vectify-go/pkg/types/structures"
)

// WebhookVerifier는 결제 웹훅의 서명을 검증합니다
type WebhookVerifier interface {
	VerifyWebhookSignature(ctx context.Context, headers structure.PayPalSignatureHeaders, body []byte) (bool, error)
}

// PaymentService는 구독 플랜과 결제 웹훅을 처리하는 인터페이스입니다
type PaymentService interface {
	Plans() response.PlansResponse

	// GetSubscription은 사용자의 구독을 반환합니다. 없으면 free 플랜입니다.
	GetSubscription(ctx context.Context, userID string) (*model.Subscription, error)

	// HandleWebhook은 서명을 확인하고 이벤트 타입별로 처리합니다
	HandleWebhook(ctx context.Context, headers structure.PayPalSignatureHeaders, body []byte) error
}
