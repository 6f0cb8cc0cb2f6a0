package handler

import (
	"net/http"

	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 会員登録・ログインのHTTP
type MemberHandler struct {
	uc *usecase.MemberUsecase
}

// DI
func NewMemberHandler(uc *usecase.MemberUsecase) *MemberHandler {
	return &MemberHandler{uc: uc}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *MemberHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/members/new", h.register)
	e.POST("/members/login", h.login)
}

func (h *MemberHandler) register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *MemberHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
