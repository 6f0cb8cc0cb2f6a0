package handler

import (
	"net/http"
	"strconv"

	"shop/internal/config"
	"shop/internal/middleware"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cartのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddCartRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int64 `json:"quantity"`
}

type CheckoutRequest struct {
	CartItemIDs []int64 `json:"cart_item_ids"`
}

type CartItemIDResponse struct {
	CartItemID int64 `json:"cart_item_id"`
}

type OrderIDResponse struct {
	OrderID int64 `json:"order_id"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/cart")
	g.Use(middleware.AuthJWT(cfg))

	g.GET("", h.list)
	g.POST("", h.add)
	g.PATCH("/items/:id", h.updateItem)
	g.DELETE("/items/:id", h.deleteItem)
	g.POST("/orders", h.checkout)
}

func (h *CartHandler) list(c echo.Context) error {
	email, ok := getMemberEmailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.ListCart(c.Request().Context(), email)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) add(c echo.Context) error {
	email, ok := getMemberEmailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	id, err := h.uc.AddToCart(c.Request().Context(), email, req.ProductID, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, CartItemIDResponse{CartItemID: id})
}

// 数量変更。0以下の拒否と所有チェックはこの境界で行う。
func (h *CartHandler) updateItem(c echo.Context) error {
	email, ok := getMemberEmailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.Quantity < 1 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quantity"})
	}

	owned, err := h.uc.ValidateOwnership(c.Request().Context(), itemID, email)
	if err != nil {
		return writeError(c, err)
	}
	if !owned {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "forbidden"})
	}

	if err := h.uc.UpdateQuantity(c.Request().Context(), itemID, req.Quantity); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, CartItemIDResponse{CartItemID: itemID})
}

func (h *CartHandler) deleteItem(c echo.Context) error {
	email, ok := getMemberEmailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	owned, err := h.uc.ValidateOwnership(c.Request().Context(), itemID, email)
	if err != nil {
		return writeError(c, err)
	}
	if !owned {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "forbidden"})
	}

	if err := h.uc.RemoveItem(c.Request().Context(), itemID); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, CartItemIDResponse{CartItemID: itemID})
}

// チェックアウト。選んだ明細全部の所有チェックをしてから注文に変換する。
func (h *CartHandler) checkout(c echo.Context) error {
	email, ok := getMemberEmailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	for _, itemID := range req.CartItemIDs {
		owned, err := h.uc.ValidateOwnership(c.Request().Context(), itemID, email)
		if err != nil {
			return writeError(c, err)
		}
		if !owned {
			return c.JSON(http.StatusForbidden, ErrorResponse{Error: "forbidden"})
		}
	}

	orderID, err := h.uc.Checkout(c.Request().Context(), email, req.CartItemIDs)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, OrderIDResponse{OrderID: orderID})
}
