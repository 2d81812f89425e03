package utils

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

// DefaultImageMIME은 공급자가 콘텐츠 타입을 알려주지 않을 때 사용하는 MIME 타입입니다
const DefaultImageMIME = "image/png"

// MaxPayloadBytes는 공급자 응답 본문으로 허용하는 최대 크기입니다
const MaxPayloadBytes = 32 << 20

// FileBaseName은 소스 참조에서 파일 기본 이름을 추출합니다.
// 마지막 경로 구간을 취하고 쿼리 문자열과 마지막 확장자를 제거합니다.
// 이름을 만들 수 없으면 빈 문자열을 반환합니다.
func FileBaseName(reference string) string {
	segment := reference
	if idx := strings.LastIndex(segment, "/"); idx >= 0 {
		segment = segment[idx+1:]
	}

	// 쿼리 파라미터 제거
	if idx := strings.Index(segment, "?"); idx >= 0 {
		segment = segment[:idx]
	}

	// 마지막 확장자 제거
	if idx := strings.LastIndex(segment, "."); idx >= 0 && idx < len(segment)-1 {
		segment = segment[:idx]
	}

	return segment
}

// EncodeDataURL은 바이너리 데이터를 data:<mime>;base64,<...> 형식으로 변환합니다.
// contentType이 비어 있거나 이미지가 아니면 본문으로 추정하고, 그래도 알 수 없으면 image/png를 사용합니다.
func EncodeDataURL(data []byte, contentType string) string {
	mimeType := normalizeMIME(contentType)
	if mimeType == "" {
		if detected := normalizeMIME(http.DetectContentType(data)); strings.HasPrefix(detected, "image/") {
			mimeType = detected
		} else {
			mimeType = DefaultImageMIME
		}
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

// IsDataURL은 문자열이 base64 data URL인지 확인합니다
func IsDataURL(value string) bool {
	return strings.HasPrefix(value, "data:") && strings.Contains(value, ";base64,")
}

// ReadPayload는 HTTP 응답 본문을 최대 크기까지 읽습니다
func ReadPayload(resp *http.Response) ([]byte, error) {
	if resp == nil {
		return nil, fmt.Errorf("HTTP 응답이 nil입니다")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxPayloadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("응답 본문 읽기 실패: %v", err)
	}
	if len(data) > MaxPayloadBytes {
		return nil, fmt.Errorf("응답 본문이 너무 큽니다 (%d bytes 초과)", MaxPayloadBytes)
	}
	return data, nil
}

func normalizeMIME(contentType string) string {
	if contentType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	if mediaType == "application/octet-stream" {
		return ""
	}
	return mediaType
}
