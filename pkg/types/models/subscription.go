package model

import "time"

// Subscription은 사용자의 유료 플랜 구독 상태입니다
type Subscription struct {
	UserID               string    `json:"userId" dynamodbav:"UserID"` // 기본 키(Primary Key)
	Plan                 string    `json:"plan" dynamodbav:"plan"`     // free | pro | enterprise
	Status               string    `json:"status" dynamodbav:"status"` // active | canceled | expired
	PayPalSubscriptionID string    `json:"paypalSubscriptionId,omitempty" dynamodbav:"paypalSubscriptionId,omitempty"`
	PayPalPlanID         string    `json:"paypalPlanId,omitempty" dynamodbav:"paypalPlanId,omitempty"`
	CreatedAt            time.Time `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt" dynamodbav:"updatedAt"`
}
