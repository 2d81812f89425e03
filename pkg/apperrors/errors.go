package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind는 오류의 분류입니다
type Kind string

const (
	KindInvalidRequest Kind = "invalid_request"
	KindUnauthorized   Kind = "unauthorized"
	KindNotFound       Kind = "not_found"
	KindConfiguration  Kind = "configuration"
	KindProvider       Kind = "provider"
	KindInternal       Kind = "internal"
)

// Error는 분류와 메시지를 가진 애플리케이션 오류입니다
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New는 새 애플리케이션 오류를 생성합니다
func New(kind Kind, message string, err error) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

func InvalidRequest(message string) *Error {
	return New(KindInvalidRequest, message, nil)
}

func Unauthorized(message string) *Error {
	return New(KindUnauthorized, message, nil)
}

func NotFound(message string) *Error {
	return New(KindNotFound, message, nil)
}

func Configuration(message string) *Error {
	return New(KindConfiguration, message, nil)
}

func Provider(message string, err error) *Error {
	return New(KindProvider, message, err)
}

func Internal(message string, err error) *Error {
	return New(KindInternal, message, err)
}

// KindOf는 오류 체인에서 첫 번째 애플리케이션 오류의 분류를 반환합니다.
// 애플리케이션 오류가 아니면 KindInternal입니다.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Is는 오류가 주어진 분류인지 확인합니다
func Is(err error, kind Kind) bool {
	if err == nil {
		return false
	}
	return KindOf(err) == kind
}

// StatusCode는 오류 분류에 대응하는 HTTP 상태 코드를 반환합니다
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindInvalidRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindProvider:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
