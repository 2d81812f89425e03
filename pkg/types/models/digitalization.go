package model

import "time"

// Digitalization은 한 번의 디지털화 처리 이력입니다
type Digitalization struct {
	// =================== 기본 식별 정보 ===================
	ID               string `json:"id" dynamodbav:"ID"` // 기본 키(Primary Key)
	UserID           string `json:"userId" dynamodbav:"UserID"`
	OriginalFilename string `json:"originalFilename" dynamodbav:"originalFilename"`
	OriginalURL      string `json:"originalUrl" dynamodbav:"originalUrl"`
	FileSize         int64  `json:"fileSize" dynamodbav:"fileSize"`
	Type             string `json:"type" dynamodbav:"type"` // text | drawing | mixed

	// =================== 처리 결과 ===================
	Status         string  `json:"status" dynamodbav:"status"` // processing | completed | failed
	TextContent    *string `json:"textContent,omitempty" dynamodbav:"textContent,omitempty"`
	VectorURL      string  `json:"vectorUrl,omitempty" dynamodbav:"vectorUrl,omitempty"`
	PNGURL         string  `json:"pngUrl,omitempty" dynamodbav:"pngUrl,omitempty"`
	DrawingSource  string  `json:"drawingSource,omitempty" dynamodbav:"drawingSource,omitempty"`
	ErrorMessage   string  `json:"errorMessage,omitempty" dynamodbav:"errorMessage,omitempty"`
	ProcessingTime *int64  `json:"processingTime,omitempty" dynamodbav:"processingTime,omitempty"` // 밀리초

	CreatedAt time.Time `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" dynamodbav:"updatedAt"`
}
