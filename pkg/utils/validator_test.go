package utils

import (
	"testing"

	"github.com/sh5080/vectify-go/pkg/apperrors"
	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	ImageURL string `json:"imageUrl" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=text drawing mixed"`
	Limit    int    `json:"limit" validate:"max=100"`
}

func TestStructValidator(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name   string
		input  sampleRequest
		fields []string
	}{
		{"valid", sampleRequest{ImageURL: "https://a/b.png", Type: "mixed"}, nil},
		{"missing url", sampleRequest{Type: "text"}, []string{"imageUrl"}},
		{"missing type", sampleRequest{ImageURL: "x"}, []string{"type"}},
		{"unknown type", sampleRequest{ImageURL: "x", Type: "audio"}, []string{"type"}},
		{"limit too large", sampleRequest{ImageURL: "x", Type: "text", Limit: 500}, []string{"limit"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs := validator.Validate(&tc.input)
			assert.Len(t, errs, len(tc.fields))
			for _, field := range tc.fields {
				assert.Contains(t, errs, field)
			}
		})
	}
}

type uploadRequest struct {
	Filename string `json:"originalFilename" validate:"max=8"`
	FileSize int64  `json:"fileSize" validate:"min=0"`
}

func TestStructValidatorBounds(t *testing.T) {
	validator := NewValidator()

	assert.Empty(t, validator.Validate(&uploadRequest{Filename: "", FileSize: 0}))
	assert.Empty(t, validator.Validate(&uploadRequest{Filename: "sketch", FileSize: 10}))

	errs := validator.Validate(&uploadRequest{Filename: "very-long-name.png", FileSize: -1})
	assert.Equal(t, "최대 8자 이하여야 합니다", errs["originalFilename"])
	assert.Equal(t, "최소 0 이상이어야 합니다", errs["fileSize"])
	assert.Equal(t, "fileSize: 최소 0 이상이어야 합니다, originalFilename: 최대 8자 이하여야 합니다", errs.Error())
}

func TestStructValidatorRejectsNonStruct(t *testing.T) {
	errs := NewValidator().Validate("text")
	assert.Contains(t, errs, "_error")
}

func TestParseAndValidate(t *testing.T) {
	var dto sampleRequest
	err := ParseAndValidate(map[string]string{"imageUrl": "https://a/b.png", "type": "drawing", "limit": "20"}, &dto)
	assert.NoError(t, err)
	assert.Equal(t, 20, dto.Limit)

	var invalid sampleRequest
	err = ParseAndValidate(map[string]string{"type": "drawing"}, &invalid)
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidRequest))
}

func TestPaginationRequest(t *testing.T) {
	limit, offset := PaginationRequest(0, -3)
	assert.Equal(t, 10, limit)
	assert.Equal(t, 0, offset)

	limit, _ = PaginationRequest(1000, 0)
	assert.Equal(t, 100, limit)
}
