package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sh5080/vectify-go/pkg/apperrors"
	"github.com/sh5080/vectify-go/pkg/configs"
	_interface "github.com/sh5080/vectify-go/pkg/interfaces"
	constants "github.com/sh5080/vectify-go/pkg/types"
	response "github.com/sh5080/vectify-go/pkg/types/dtos/responses"
	model "github.com/sh5080/vectify-go/pkg/types/models"
	structure "github.com/sh5080/vectify-go/pkg/types/structures"
	"github.com/sh5080/vectify-go/pkg/utils"
)

// PaymentImpl은 구독 플랜과 PayPal 웹훅 처리 구현체입니다
type PaymentImpl struct {
	config   configs.PayPalConfig
	repo     _interface.SubscriptionRepository
	verifier _interface.WebhookVerifier
	now      func() time.Time
}

// NewPaymentService는 새 결제 서비스를 생성합니다.
// verifier가 nil이면 서명 검증을 건너뜁니다.
func NewPaymentService(
	config configs.PayPalConfig,
	repo _interface.SubscriptionRepository,
	verifier _interface.WebhookVerifier,
) _interface.PaymentService {
	return &PaymentImpl{
		config:   config,
		repo:     repo,
		verifier: verifier,
		now:      time.Now,
	}
}

// Plans는 판매 중인 플랜과 지원 통화를 반환합니다
func (s *PaymentImpl) Plans() response.PlansResponse {
	return response.PlansResponse{
		Plans:      constants.PLAN_CATALOG,
		Currencies: constants.SUPPORTED_CURRENCIES,
	}
}

// GetSubscription은 사용자의 구독을 반환하며, 없으면 free 플랜을 반환합니다
func (s *PaymentImpl) GetSubscription(ctx context.Context, userID string) (*model.Subscription, error) {
	sub, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("구독 조회 실패", err)
	}
	if sub == nil {
		return &model.Subscription{UserID: userID, Plan: constants.PLAN_FREE, Status: constants.SUBSCRIPTION_ACTIVE}, nil
	}
	return sub, nil
}

// HandleWebhook은 서명을 확인한 뒤 이벤트 타입별 처리기를 호출합니다
func (s *PaymentImpl) HandleWebhook(ctx context.Context, headers structure.PayPalSignatureHeaders, body []byte) error {
	var event structure.PayPalWebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return apperrors.InvalidRequest("웹훅 본문이 올바른 JSON이 아닙니다")
	}

	if s.verifier != nil {
		ok, err := s.verifier.VerifyWebhookSignature(ctx, headers, body)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.InvalidRequest("PayPal 웹훅 서명 검증 실패")
		}
	}

	utils.RecordWebhookEvent(event.EventType)

	switch event.EventType {
	case constants.EVENT_PAYMENT_CAPTURE_COMPLETED:
		return s.handlePaymentCompleted(event)
	case constants.EVENT_PAYMENT_CAPTURE_DENIED:
		return s.handlePaymentDenied(event)
	case constants.EVENT_BILLING_SUBSCRIPTION_CREATED:
		return s.handleSubscriptionCreated(ctx, event)
	case constants.EVENT_BILLING_SUBSCRIPTION_CANCEL:
		return s.handleSubscriptionEnded(ctx, event, constants.SUBSCRIPTION_CANCELED)
	case constants.EVENT_BILLING_SUBSCRIPTION_EXPIRED:
		return s.handleSubscriptionEnded(ctx, event, constants.SUBSCRIPTION_EXPIRED)
	default:
		utils.Info("payment", "처리하지 않는 이벤트: %s", event.EventType)
		return nil
	}
}

func (s *PaymentImpl) handlePaymentCompleted(event structure.PayPalWebhookEvent) error {
	var capture structure.PayPalCaptureResource
	if err := json.Unmarshal(event.Resource, &capture); err != nil {
		return apperrors.InvalidRequest("결제 리소스를 해석할 수 없습니다")
	}
	utils.Info("payment", "결제 완료: %s - %s %s", capture.ID, capture.Amount.Value, capture.Amount.CurrencyCode)
	return nil
}

func (s *PaymentImpl) handlePaymentDenied(event structure.PayPalWebhookEvent) error {
	var capture structure.PayPalCaptureResource
	if err := json.Unmarshal(event.Resource, &capture); err != nil {
		return apperrors.InvalidRequest("결제 리소스를 해석할 수 없습니다")
	}
	utils.Warn("payment", "결제 거부: %s", capture.ID)
	return nil
}

func (s *PaymentImpl) handleSubscriptionCreated(ctx context.Context, event structure.PayPalWebhookEvent) error {
	var resource structure.PayPalSubscriptionResource
	if err := json.Unmarshal(event.Resource, &resource); err != nil {
		return apperrors.InvalidRequest("구독 리소스를 해석할 수 없습니다")
	}
	utils.Info("payment", "구독 생성: %s - 플랜: %s", resource.ID, resource.PlanID)

	if resource.CustomID == "" {
		utils.Warn("payment", "구독 %s에 사용자(custom_id)가 없어 저장하지 않습니다", resource.ID)
		return nil
	}

	now := s.now()
	sub := &model.Subscription{
		UserID:               resource.CustomID,
		Plan:                 s.planFor(resource.PlanID),
		Status:               constants.SUBSCRIPTION_ACTIVE,
		PayPalSubscriptionID: resource.ID,
		PayPalPlanID:         resource.PlanID,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if existing, err := s.repo.GetByUser(ctx, sub.UserID); err == nil && existing != nil {
		sub.CreatedAt = existing.CreatedAt
	}

	if err := s.repo.Save(ctx, sub); err != nil {
		return apperrors.Internal("구독 저장 실패", err)
	}
	return nil
}

// handleSubscriptionEnded는 구독을 해지/만료 상태로 바꾸고 free 플랜으로 되돌립니다
func (s *PaymentImpl) handleSubscriptionEnded(ctx context.Context, event structure.PayPalWebhookEvent, status string) error {
	var resource structure.PayPalSubscriptionResource
	if err := json.Unmarshal(event.Resource, &resource); err != nil {
		return apperrors.InvalidRequest("구독 리소스를 해석할 수 없습니다")
	}
	utils.Info("payment", "구독 %s: %s", status, resource.ID)

	sub, err := s.repo.GetByPayPalID(ctx, resource.ID)
	if err != nil {
		return apperrors.Internal("구독 조회 실패", err)
	}
	if sub == nil && resource.CustomID != "" {
		sub, err = s.repo.GetByUser(ctx, resource.CustomID)
		if err != nil {
			return apperrors.Internal("구독 조회 실패", err)
		}
	}
	if sub == nil {
		utils.Warn("payment", "알 수 없는 구독입니다: %s", resource.ID)
		return nil
	}

	sub.Status = status
	sub.Plan = constants.PLAN_FREE
	sub.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, sub); err != nil {
		return apperrors.Internal(fmt.Sprintf("구독 %s 저장 실패", resource.ID), err)
	}
	return nil
}

// planFor는 PayPal 플랜 ID를 내부 플랜으로 변환합니다
func (s *PaymentImpl) planFor(paypalPlanID string) string {
	switch {
	case paypalPlanID != "" && paypalPlanID == s.config.PlanEnterprise:
		return constants.PLAN_ENTERPRISE
	case paypalPlanID != "" && paypalPlanID == s.config.PlanPro:
		return constants.PLAN_PRO
	default:
		utils.Warn("payment", "알 수 없는 PayPal 플랜 %s, pro로 처리합니다", paypalPlanID)
		return constants.PLAN_PRO
	}
}
