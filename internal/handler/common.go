package handler

import (
	"net/http"

	"shop/internal/middleware"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

//middleware.AuthJWT が c.Set("member_email", string) した値を取り出す

func getMemberEmailFromContext(c echo.Context) (string, bool) {
	raw := c.Get(middleware.CtxMemberEmailKey)
	email, ok := raw.(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}
