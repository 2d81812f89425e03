package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sh5080/vectify-go/pkg/apperrors"
	_interface "github.com/sh5080/vectify-go/pkg/interfaces"
	constants "github.com/sh5080/vectify-go/pkg/types"
	"github.com/sh5080/vectify-go/pkg/utils"
)

const userIDKey = "userID"

// AuthOptions는 인증 미들웨어 설정입니다
type AuthOptions struct {
	// Identity가 nil이면 토큰을 확인할 수 없습니다
	Identity _interface.IdentityProvider

	// AllowDevHeader가 true이고 Identity가 없으면 X-User-ID 헤더를 신뢰합니다
	AllowDevHeader bool
}

// Auth는 Bearer 토큰으로 사용자를 확인하고 사용자 ID를 Locals에 저장합니다
func Auth(opts AuthOptions) fiber.Handler {
	if opts.Identity == nil && !opts.AllowDevHeader {
		utils.Warn("auth", "인증 공급자가 없어 보호된 경로는 모두 401을 반환합니다")
	}

	return func(c *fiber.Ctx) error {
		if opts.Identity == nil {
			if !opts.AllowDevHeader {
				return unauthorized()
			}
			userID := c.Get("X-User-ID")
			if userID == "" {
				userID = constants.LOCAL_USER_ID
			}
			c.Locals(userIDKey, userID)
			return c.Next()
		}

		token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return unauthorized()
		}

		identity, err := opts.Identity.VerifyToken(c.UserContext(), token)
		if err != nil {
			if !apperrors.Is(err, apperrors.KindUnauthorized) {
				utils.Error("auth", "토큰 확인 실패: %v", err)
			}
			return unauthorized()
		}

		c.Locals(userIDKey, identity.UserID)
		return c.Next()
	}
}

// UserID는 인증 미들웨어가 저장한 사용자 ID를 반환합니다
func UserID(c *fiber.Ctx) string {
	userID, _ := c.Locals(userIDKey).(string)
	return userID
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized() error {
	return apperrors.Unauthorized("인증이 필요합니다")
}
