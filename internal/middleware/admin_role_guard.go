package middleware

import (
	"net/http"

	"shop/internal/domain/model"

	"github.com/labstack/echo/v4"
)

// AdminRoleGuard はAuthJWTの後ろに付けて、ADMIN以外のアクセスを403で止める。
func AdminRoleGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(CtxMemberRoleKey).(string)
			if !ok || role == "" {
				//AuthJWTを通っていない
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}
			if role != string(model.RoleAdmin) {
				return c.JSON(http.StatusForbidden, errorJSON("admin only"))
			}
			return next(c)
		}
	}
}
