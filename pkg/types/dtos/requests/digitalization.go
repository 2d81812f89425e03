package request

// ProcessDigitalizationRequest는 즉시 처리 요청 본문입니다
type ProcessDigitalizationRequest struct {
	ImageURL string `json:"imageUrl" validate:"required"`
	Type     string `json:"type" validate:"required"`
}

// CreateDigitalizationRequest는 이력이 저장되는 처리 요청 본문입니다
type CreateDigitalizationRequest struct {
	ImageURL         string `json:"imageUrl" validate:"required"`
	Type             string `json:"type" validate:"required,oneof=text drawing mixed"`
	OriginalFilename string `json:"originalFilename" validate:"max=255"`
	FileSize         int64  `json:"fileSize" validate:"min=0"`
}

// ListDigitalizationsQuery는 이력 목록 조회 쿼리입니다
type ListDigitalizationsQuery struct {
	Limit  int `json:"limit,omitempty" validate:"min=0,max=100"`
	Offset int `json:"offset,omitempty" validate:"min=0"`
}
