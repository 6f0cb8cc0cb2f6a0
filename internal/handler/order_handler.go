package handler

import (
	"net/http"
	"strconv"

	"shop/internal/config"
	"shop/internal/middleware"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /ordersのHTTP
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type PlaceOrderRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/orders")
	g.Use(middleware.AuthJWT(cfg))

	g.POST("", h.create)
	g.GET("", h.list)
	g.POST("/:id/cancel", h.cancel)
}

// 商品詳細からの即時購入
func (h *OrderHandler) create(c echo.Context) error {
	email, ok := getMemberEmailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	orderID, err := h.uc.PlaceOrder(c.Request().Context(), email, req.ProductID, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, OrderIDResponse{OrderID: orderID})
}

func (h *OrderHandler) list(c echo.Context) error {
	email, ok := getMemberEmailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = p
	}

	limit := 10
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}

	out, err := h.uc.ListOrders(c.Request().Context(), email, page, limit)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// キャンセル。所有チェックを通ってから在庫が戻る。
func (h *OrderHandler) cancel(c echo.Context) error {
	email, ok := getMemberEmailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	owned, err := h.uc.ValidateOwnership(c.Request().Context(), orderID, email)
	if err != nil {
		return writeError(c, err)
	}
	if !owned {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "forbidden"})
	}

	if err := h.uc.CancelOrder(c.Request().Context(), orderID); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, OrderIDResponse{OrderID: orderID})
}
