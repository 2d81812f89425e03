package response

import structure "github.com/sh5080/vectify-go/pkg/types/structures"

// PlansResponse는 구독 플랜 목록 응답입니다
type PlansResponse struct {
	Plans      []structure.Plan `json:"plans"`
	Currencies []string         `json:"currencies"`
}

// SubscriptionResponse는 사용자의 현재 구독 상태 응답입니다
type SubscriptionResponse struct {
	Plan   string `json:"plan"`
	Status string `json:"status"`
}

// WebhookAckResponse는 웹훅 수신 확인 응답입니다
type WebhookAckResponse struct {
	Received bool `json:"received"`
}
