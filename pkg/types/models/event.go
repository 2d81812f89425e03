package model

import "time"

// DigitalizationEvent는 처리 완료/실패 시 큐로 발행되는 메시지입니다
type DigitalizationEvent struct {
	DigitalizationID string    `json:"digitalizationId"`
	UserID           string    `json:"userId"`
	Type             string    `json:"type"`
	Status           string    `json:"status"`
	DrawingSource    string    `json:"drawingSource,omitempty"`
	ProcessingTime   int64     `json:"processingTime"`
	ErrorMessage     string    `json:"errorMessage,omitempty"`
	OccurredAt       time.Time `json:"occurredAt"`
}
