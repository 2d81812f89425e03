package structure

// ProcessingRequest는 디지털화 요청입니다
type ProcessingRequest struct {
	SourceReference string // 업로드된 원본의 공개 URL
	Mode            string // text | drawing | mixed
}

// ProcessingResult는 모드에 따라 채워지는 처리 결과입니다.
// 드로잉 결과는 VectorOutput/RasterOutput이 함께 채워지거나 함께 비어 있습니다.
type ProcessingResult struct {
	TextContent  *string
	VectorOutput string
	RasterOutput string

	// DrawingSource는 드로잉 결과를 만든 단계입니다 (huggingface-generate, placeholder 등)
	DrawingSource string
}

// HasDrawing은 드로잉 결과가 있는지 확인합니다
func (r ProcessingResult) HasDrawing() bool {
	return r.VectorOutput != "" || r.RasterOutput != ""
}

// ProviderAttempt는 공급자 한 번의 시도 기록입니다
type ProviderAttempt struct {
	ProviderName string
	Outcome      string // success | failure
	Payload      string
	Err          error
}

// DrawingOutput은 드로잉 오케스트레이터의 결과입니다
type DrawingOutput struct {
	Vector   string
	Raster   string
	Source   string
	Attempts []ProviderAttempt
}
