package _interface

import (
	"context"

	structure "github.com/sh5080/vectify-go/pkg/types/structures"
)

// IdentityProvider는 Bearer 토큰을 사용자로 확인하는 인터페이스입니다
type IdentityProvider interface {
	VerifyToken(ctx context.Context, token string) (*structure.Identity, error)
}
