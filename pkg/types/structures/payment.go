package structure

import "encoding/json"

// Plan은 유료 구독 플랜 정보입니다
type Plan struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    int      `json:"price"`
	Currency string   `json:"currency"`
	Interval string   `json:"interval"`
	Features []string `json:"features"`
}

// PayPalWebhookEvent는 PayPal이 전송하는 웹훅 이벤트 본문입니다
type PayPalWebhookEvent struct {
	ID           string          `json:"id"`
	EventType    string          `json:"event_type"`
	ResourceType string          `json:"resource_type,omitempty"`
	Summary      string          `json:"summary,omitempty"`
	CreateTime   string          `json:"create_time,omitempty"`
	Resource     json.RawMessage `json:"resource"`
}

// PayPalAmount는 결제 금액입니다
type PayPalAmount struct {
	Value        string `json:"value"`
	CurrencyCode string `json:"currency_code"`
}

// PayPalCaptureResource는 PAYMENT.CAPTURE.* 이벤트의 리소스입니다
type PayPalCaptureResource struct {
	ID     string       `json:"id"`
	Status string       `json:"status"`
	Amount PayPalAmount `json:"amount"`
}

// PayPalSubscriptionResource는 BILLING.SUBSCRIPTION.* 이벤트의 리소스입니다
type PayPalSubscriptionResource struct {
	ID       string `json:"id"`
	PlanID   string `json:"plan_id"`
	Status   string `json:"status"`
	CustomID string `json:"custom_id"`
}

// PayPalSignatureHeaders는 웹훅 서명 검증에 필요한 헤더 값입니다
type PayPalSignatureHeaders struct {
	TransmissionSig  string
	CertURL          string
	TransmissionID   string
	TransmissionTime string
	AuthAlgo         string
}

// Identity는 인증된 사용자 정보입니다
type Identity struct {
	UserID string
	Email  string
}
