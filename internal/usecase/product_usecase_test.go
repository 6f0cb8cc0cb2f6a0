package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
	"shop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type FileStoreMock struct{ mock.Mock }

func (m *FileStoreMock) Save(originalName string, data []byte) (string, error) {
	args := m.Called(originalName, data)
	return args.String(0), args.Error(1)
}

func (m *FileStoreMock) Delete(savedName string) error {
	args := m.Called(savedName)
	return args.Error(0)
}

func newProductUsecaseForTest() (*usecase.ProductUsecase, *txReposStub, *FileStoreMock) {
	repos := newTxReposStub()
	files := new(FileStoreMock)
	uc := usecase.NewProductUsecase(
		&txManagerStub{repos: repos},
		repos.products,
		repos.images,
		files,
	)
	return uc, repos, files
}

func TestProductUsecase_SaveProduct_FirstImageIsRepresentative(t *testing.T) {
	uc, repos, files := newProductUsecaseForTest()
	ctx := context.Background()

	in := usecase.SaveProductInput{
		Name:       "テスト商品",
		Price:      10000,
		Stock:      100,
		Detail:     "テスト商品です",
		SellStatus: model.SellStatusOnSale,
		CreatedBy:  "admin@example.com",
	}

	repos.products.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Name == "テスト商品" && p.Stock == 100 && p.CreatedBy == "admin@example.com"
	})).Return(model.Product{ID: 7, Name: "テスト商品"}, nil)

	files.On("Save", "front.png", []byte("img1")).Return("aaa.png", nil)
	files.On("Save", "back.png", []byte("img2")).Return("bbb.png", nil)

	repos.images.On("Create", mock.Anything, mock.MatchedBy(func(img model.ProductImage) bool {
		return img.ProductID == 7 && img.RepImage && img.ImageName == "aaa.png" &&
			img.ImageURL == "/images/products/aaa.png"
	})).Return(model.ProductImage{ID: 1}, nil)
	repos.images.On("Create", mock.Anything, mock.MatchedBy(func(img model.ProductImage) bool {
		return img.ProductID == 7 && !img.RepImage && img.ImageName == "bbb.png"
	})).Return(model.ProductImage{ID: 2}, nil)

	productID, err := uc.SaveProduct(ctx, in, []usecase.ImageUpload{
		{OriginalName: "front.png", Data: []byte("img1")},
		{OriginalName: "back.png", Data: []byte("img2")},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), productID)
	repos.images.AssertExpectations(t)
	files.AssertExpectations(t)
}

func TestProductUsecase_SaveProduct_RequiresImage(t *testing.T) {
	uc, repos, _ := newProductUsecaseForTest()

	in := usecase.SaveProductInput{
		Name:       "テスト商品",
		Price:      10000,
		Stock:      100,
		SellStatus: model.SellStatusOnSale,
	}

	_, err := uc.SaveProduct(context.Background(), in, nil)

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	repos.products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductUsecase_SaveProduct_InvalidSellStatus(t *testing.T) {
	uc, _, _ := newProductUsecaseForTest()

	in := usecase.SaveProductInput{
		Name:       "テスト商品",
		Price:      10000,
		Stock:      100,
		SellStatus: model.SellStatus("UNKNOWN"),
	}

	_, err := uc.SaveProduct(context.Background(), in, []usecase.ImageUpload{{OriginalName: "a.png", Data: []byte("x")}})

	assertErrContains(t, err, "invalid sell_status")
}

func TestProductUsecase_UpdateProduct_ReplacesImageAndSkipsEmpty(t *testing.T) {
	uc, repos, files := newProductUsecaseForTest()
	ctx := context.Background()

	in := usecase.UpdateProductInput{
		ID:         7,
		Name:       "改訂版",
		Price:      12000,
		Stock:      80,
		Detail:     "改訂しました",
		SellStatus: model.SellStatusOnSale,
		ImageIDs:   []int64{1, 2},
	}

	repos.products.On("FindByID", mock.Anything, int64(7)).
		Return(model.Product{ID: 7, Name: "テスト商品", Price: 10000, Stock: 100}, nil)
	repos.products.On("Update", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.ID == 7 && p.Name == "改訂版" && p.Price == 12000 && p.Stock == 80
	})).Return(nil)

	//1枚目だけ差し替え、2枚目（空アップロード）はそのまま
	repos.images.On("FindByID", mock.Anything, int64(1)).
		Return(model.ProductImage{ID: 1, ProductID: 7, ImageName: "old.png", RepImage: true}, nil)
	files.On("Delete", "old.png").Return(nil)
	files.On("Save", "new.png", []byte("img")).Return("new-uuid.png", nil)
	repos.images.On("Update", mock.Anything, mock.MatchedBy(func(img model.ProductImage) bool {
		return img.ID == 1 && img.ImageName == "new-uuid.png" &&
			img.ImageURL == "/images/products/new-uuid.png" && img.RepImage
	})).Return(nil)

	productID, err := uc.UpdateProduct(ctx, in, []usecase.ImageUpload{
		{OriginalName: "new.png", Data: []byte("img")},
		{OriginalName: "", Data: nil},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), productID)
	files.AssertExpectations(t)
	repos.images.AssertExpectations(t)
	repos.images.AssertNotCalled(t, "FindByID", mock.Anything, int64(2))
}

func TestProductUsecase_GetProductDetail_NotFound(t *testing.T) {
	uc, repos, _ := newProductUsecaseForTest()

	repos.products.On("FindByID", mock.Anything, int64(99)).
		Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetProductDetail(context.Background(), 99)

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func TestProductUsecase_ListAdminProducts_InvalidFilter(t *testing.T) {
	uc, repos, _ := newProductUsecaseForTest()

	_, err := uc.ListAdminProducts(context.Background(), repo.ProductSearchFilter{
		RegisteredWithin: repo.RegisteredWithin("2y"),
	})
	assertErrContains(t, err, "invalid registered_within")

	_, err = uc.ListAdminProducts(context.Background(), repo.ProductSearchFilter{
		SearchBy: "price",
	})
	assertErrContains(t, err, "invalid search_by")

	repos.products.AssertNotCalled(t, "ListAdmin", mock.Anything, mock.Anything)
}

func TestProductUsecase_ListAdminProducts_DefaultsPaging(t *testing.T) {
	uc, repos, _ := newProductUsecaseForTest()

	repos.products.On("ListAdmin", mock.Anything, mock.MatchedBy(func(f repo.ProductSearchFilter) bool {
		return f.Page == 1 && f.Limit == 20
	})).Return([]model.Product{{ID: 7}}, int64(1), nil)

	out, err := uc.ListAdminProducts(context.Background(), repo.ProductSearchFilter{})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)
	assert.Len(t, out.Items, 1)
	repos.products.AssertExpectations(t)
}
