package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"shop/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	CtxMemberIDKey    = "member_id"    // int64
	CtxMemberEmailKey = "member_email" // string
	CtxMemberRoleKey  = "member_role"  // string
)

// ログイン時に発行したトークンに載せている会員情報。subは会員IDの10進文字列。
type memberClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func (mc *memberClaims) memberID() (int64, error) {
	return strconv.ParseInt(mc.Subject, 10, 64)
}

func errorJSON(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// bearerAuth用のJWT検証ミドルウェア。
// 検証が通ったら会員ID・email・roleをcontextに入れて次へ渡す。
func AuthJWT(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := bearerToken(c.Request().Header.Get("Authorization"))
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			claims := &memberClaims{}
			token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
				return []byte(cfg.JWTSecret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			memberID, err := claims.memberID()
			if err != nil || memberID <= 0 {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}
			if claims.Email == "" || claims.Role == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			c.Set(CtxMemberIDKey, memberID)
			c.Set(CtxMemberEmailKey, claims.Email)
			c.Set(CtxMemberRoleKey, claims.Role)

			return next(c)
		}
	}
}

// Authorizationヘッダから "Bearer xxx" のトークン部分だけを抜き出す。
func bearerToken(authz string) string {
	parts := strings.SplitN(authz, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
