package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
)

// 画像ファイルの保存先の約束（実体は internal/upload）。
type FileStore interface {
	Save(originalName string, data []byte) (string, error)
	Delete(savedName string) error
}

// 配信パスのプレフィックス
const productImageURLPrefix = "/images/products/"

// 商品管理（登録・編集・詳細）とストア/管理者向けの一覧。
type ProductUsecase struct {
	tx       repo.TransactionManager
	products repo.ProductRepository
	images   repo.ProductImageRepository
	files    FileStore
}

func NewProductUsecase(
	tx repo.TransactionManager,
	products repo.ProductRepository,
	images repo.ProductImageRepository,
	files FileStore,
) *ProductUsecase {
	return &ProductUsecase{
		tx:       tx,
		products: products,
		images:   images,
		files:    files,
	}
}

// アップロードされた画像1枚分。
type ImageUpload struct {
	OriginalName string
	Data         []byte
}

type SaveProductInput struct {
	Name       string
	Price      int64
	Stock      int64
	Detail     string
	SellStatus model.SellStatus
	CreatedBy  string
}

type UpdateProductInput struct {
	ID         int64
	Name       string
	Price      int64
	Stock      int64
	Detail     string
	SellStatus model.SellStatus
	// 差し替える画像行のID。imagesと同じ並びで対応する。
	ImageIDs []int64
}

type ProductDetailOutput struct {
	Product model.Product        `json:"product"`
	Images  []model.ProductImage `json:"images"`
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

type MainProductListOutput struct {
	Items []repo.MainProduct `json:"items"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

func validateProductInput(name string, price int64, stock int64, status model.SellStatus) error {
	if strings.TrimSpace(name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if price < 0 {
		return NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if stock < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}
	switch status {
	case model.SellStatusOnSale, model.SellStatusSoldOut:
	default:
		return NewHTTPError(http.StatusBadRequest, "invalid sell_status")
	}
	return nil
}

// SaveProduct は商品と画像をまとめて登録する。最初の画像が代表画像になる。
func (u *ProductUsecase) SaveProduct(ctx context.Context, in SaveProductInput, images []ImageUpload) (int64, error) {
	if err := validateProductInput(in.Name, in.Price, in.Stock, in.SellStatus); err != nil {
		return 0, err
	}
	if len(images) == 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "representative image is required")
	}

	var productID int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		created, err := r.Products().Create(ctx, model.Product{
			Name:       in.Name,
			Price:      in.Price,
			Stock:      in.Stock,
			Detail:     in.Detail,
			SellStatus: in.SellStatus,
			CreatedBy:  in.CreatedBy,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		productID = created.ID

		for i, f := range images {
			savedName, err := u.files.Save(f.OriginalName, f.Data)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "failed to store image")
			}

			img := model.ProductImage{
				ProductID: created.ID,
				RepImage:  i == 0,
			}
			img.UpdateImage(f.OriginalName, savedName, productImageURLPrefix+savedName)

			if _, err := r.ProductImages().Create(ctx, img); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}
		return nil
	})

	if err != nil {
		return 0, err
	}
	return productID, nil
}

// UpdateProduct は商品情報を更新し、差し替え指定のあった画像を入れ替える。
// 空のアップロードはスキップする（画像を変えない編集を許すため）。
func (u *ProductUsecase) UpdateProduct(ctx context.Context, in UpdateProductInput, images []ImageUpload) (int64, error) {
	if in.ID <= 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if err := validateProductInput(in.Name, in.Price, in.Stock, in.SellStatus); err != nil {
		return 0, err
	}
	if len(images) > len(in.ImageIDs) {
		return 0, NewHTTPError(http.StatusBadRequest, "image_ids mismatch")
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := r.Products().FindByID(ctx, in.ID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "product not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		p.Name = in.Name
		p.Price = in.Price
		p.Stock = in.Stock
		p.Detail = in.Detail
		p.SellStatus = in.SellStatus

		if err := r.Products().Update(ctx, p); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		for i, f := range images {
			if len(f.Data) == 0 {
				continue
			}

			img, err := r.ProductImages().FindByID(ctx, in.ImageIDs[i])
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, "product image not found")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			//古いファイルを消してから新しいファイルを保存する
			if img.ImageName != "" {
				if err := u.files.Delete(img.ImageName); err != nil {
					return NewHTTPError(http.StatusInternalServerError, "failed to delete image")
				}
			}

			savedName, err := u.files.Save(f.OriginalName, f.Data)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "failed to store image")
			}

			img.UpdateImage(f.OriginalName, savedName, productImageURLPrefix+savedName)

			if err := r.ProductImages().Update(ctx, img); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}
		return nil
	})

	if err != nil {
		return 0, err
	}
	return in.ID, nil
}

// GetProductDetail は商品と画像一覧を返す。
func (u *ProductUsecase) GetProductDetail(ctx context.Context, productID int64) (ProductDetailOutput, error) {
	if productID <= 0 {
		return ProductDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.products.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return ProductDetailOutput{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	imgs, err := u.images.ListByProductID(ctx, productID)
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductDetailOutput{Product: p, Images: imgs}, nil
}

// ListMainProducts はストアのトップ一覧（代表画像つき）。
func (u *ProductUsecase) ListMainProducts(ctx context.Context, query string, page int, limit int) (MainProductListOutput, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	items, total, err := u.products.ListMain(ctx, repo.MainProductQuery{
		Query: strings.TrimSpace(query),
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return MainProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return MainProductListOutput{Items: items, Total: total, Page: page, Limit: limit}, nil
}

// ListAdminProducts は管理者向けの商品一覧。
func (u *ProductUsecase) ListAdminProducts(ctx context.Context, f repo.ProductSearchFilter) (ProductListOutput, error) {
	switch f.RegisteredWithin {
	case "", repo.RegisteredAll, repo.RegisteredDay, repo.RegisteredWeek, repo.RegisteredMonth, repo.RegisteredHalfYear:
	default:
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid registered_within")
	}
	switch f.SearchBy {
	case "", "name", "created_by":
	default:
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid search_by")
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}

	items, total, err := u.products.ListAdmin(ctx, f)
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductListOutput{Items: items, Total: total, Page: f.Page, Limit: f.Limit}, nil
}
