package _interface

import (
	"context"

	model "github.com/sh5080/vectify-go/pkg/types/models"
)

// DigitalizationRepository는 디지털화 이력 저장소입니다
type DigitalizationRepository interface {
	Create(ctx context.Context, record *model.Digitalization) error
	Update(ctx context.Context, record *model.Digitalization) error

	// Get은 ID로 이력을 조회합니다. 없으면 nil, nil을 반환합니다.
	Get(ctx context.Context, id string) (*model.Digitalization, error)

	// ListByUser는 사용자의 이력을 최신순으로 반환합니다. limit이 0 이하이면 전체를 반환합니다.
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]model.Digitalization, error)
}

// SubscriptionRepository는 구독 상태 저장소입니다
type SubscriptionRepository interface {
	// GetByUser는 사용자의 구독을 조회합니다. 없으면 nil, nil을 반환합니다.
	GetByUser(ctx context.Context, userID string) (*model.Subscription, error)

	// GetByPayPalID는 PayPal 구독 ID로 구독을 조회합니다. 없으면 nil, nil을 반환합니다.
	GetByPayPalID(ctx context.Context, paypalSubscriptionID string) (*model.Subscription, error)

	Save(ctx context.Context, subscription *model.Subscription) error
}
