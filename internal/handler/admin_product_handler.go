package handler

import (
	"io"
	"net/http"
	"strconv"

	"shop/internal/config"
	"shop/internal/domain/model"
	"shop/internal/middleware"
	repo "shop/internal/repository"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 商品登録・編集・一覧（管理者のみ）のHTTP
type AdminProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewAdminProductHandler(uc *usecase.ProductUsecase) *AdminProductHandler {
	return &AdminProductHandler{uc: uc}
}

type ProductIDResponse struct {
	ID int64 `json:"id"`
}

func (h *AdminProductHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/admin/products")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.AdminRoleGuard())

	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.GET("", h.list)
}

// multipart/form-data から商品フィールドと画像ファイルを読む。
// fieldsはフォーム値、imagesは "images" キーのファイル群（並び順を保つ）。
func readProductForm(c echo.Context) (map[string]string, []usecase.ImageUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, err
	}

	fields := map[string]string{}
	for k, vs := range form.Value {
		if len(vs) > 0 {
			fields[k] = vs[0]
		}
	}

	var images []usecase.ImageUpload
	for _, fh := range form.File["images"] {
		f, err := fh.Open()
		if err != nil {
			return nil, nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, nil, err
		}

		images = append(images, usecase.ImageUpload{
			OriginalName: fh.Filename,
			Data:         data,
		})
	}

	return fields, images, nil
}

func parseProductFields(fields map[string]string) (name string, price int64, stock int64, detail string, status model.SellStatus, err error) {
	name = fields["name"]
	detail = fields["detail"]
	status = model.SellStatus(fields["sell_status"])

	price, err = strconv.ParseInt(fields["price"], 10, 64)
	if err != nil {
		return
	}
	stock, err = strconv.ParseInt(fields["stock"], 10, 64)
	return
}

func (h *AdminProductHandler) create(c echo.Context) error {
	email, ok := getMemberEmailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	fields, images, err := readProductForm(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid form"})
	}

	name, price, stock, detail, status, err := parseProductFields(fields)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid price or stock"})
	}

	id, err := h.uc.SaveProduct(c.Request().Context(), usecase.SaveProductInput{
		Name:       name,
		Price:      price,
		Stock:      stock,
		Detail:     detail,
		SellStatus: status,
		CreatedBy:  email,
	}, images)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, ProductIDResponse{ID: id})
}

func (h *AdminProductHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	fields, images, err := readProductForm(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid form"})
	}

	name, price, stock, detail, status, err := parseProductFields(fields)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid price or stock"})
	}

	//差し替え対象の画像行ID（imagesと同じ並び）
	var imageIDs []int64
	if form, ferr := c.MultipartForm(); ferr == nil {
		for _, v := range form.Value["image_ids"] {
			imgID, perr := strconv.ParseInt(v, 10, 64)
			if perr != nil {
				return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid image_ids"})
			}
			imageIDs = append(imageIDs, imgID)
		}
	}

	out, err := h.uc.UpdateProduct(c.Request().Context(), usecase.UpdateProductInput{
		ID:         id,
		Name:       name,
		Price:      price,
		Stock:      stock,
		Detail:     detail,
		SellStatus: status,
		ImageIDs:   imageIDs,
	}, images)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, ProductIDResponse{ID: out})
}

func (h *AdminProductHandler) list(c echo.Context) error {
	f := repo.ProductSearchFilter{
		RegisteredWithin: repo.RegisteredWithin(c.QueryParam("registered_within")),
		SearchBy:         c.QueryParam("search_by"),
		Query:            c.QueryParam("q"),
	}

	if v := c.QueryParam("sell_status"); v != "" {
		status := model.SellStatus(v)
		f.SellStatus = &status
	}

	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		f.Page = p
	}
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		f.Limit = l
	}

	out, err := h.uc.ListAdminProducts(c.Request().Context(), f)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
