package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/sh5080/vectify-go/pkg/apperrors"
	"github.com/sh5080/vectify-go/pkg/utils"
)

// FetchImage는 URL의 이미지를 내려받아 바이너리와 콘텐츠 타입을 반환합니다
func FetchImage(ctx context.Context, httpc *http.Client, imageURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, "", apperrors.InvalidRequest(fmt.Sprintf("이미지 URL이 올바르지 않습니다: %v", err))
	}

	resp, err := httpc.Do(req)
	if err != nil {
		return nil, "", apperrors.Provider("이미지 다운로드 실패", err)
	}

	data, err := utils.ReadPayload(resp)
	if err != nil {
		return nil, "", apperrors.Provider("이미지 다운로드 실패", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, "", apperrors.Provider(fmt.Sprintf("이미지 다운로드 오류 (%d)", resp.StatusCode), nil)
	}
	if len(data) == 0 {
		return nil, "", apperrors.Provider("이미지 다운로드 결과가 비어 있습니다", nil)
	}

	return data, resp.Header.Get("Content-Type"), nil
}

// truncate는 오류 메시지에 포함할 응답 본문을 줄입니다
func truncate(body []byte, limit int) string {
	text := strings.TrimSpace(string(body))
	if len(text) > limit {
		return text[:limit] + "..."
	}
	return text
}
