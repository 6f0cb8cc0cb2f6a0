package model_test

import (
	"testing"

	"shop/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestProduct_ReserveStock_Success(t *testing.T) {
	p := model.Product{ID: 1, Name: "テスト商品", Price: 10000, Stock: 100}

	err := p.ReserveStock(30)

	assert.NoError(t, err)
	assert.Equal(t, int64(70), p.Stock)
}

func TestProduct_ReserveStock_ExactlyZero(t *testing.T) {
	p := model.Product{Stock: 5}

	err := p.ReserveStock(5)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), p.Stock)
}

func TestProduct_ReserveStock_OutOfStock(t *testing.T) {
	p := model.Product{Stock: 2}

	err := p.ReserveStock(5)

	var oos *model.OutOfStockError
	assert.ErrorAs(t, err, &oos)
	assert.Equal(t, int64(2), oos.Stock)
	assert.Contains(t, err.Error(), "current stock: 2")
	//失敗時は在庫が変わらない
	assert.Equal(t, int64(2), p.Stock)
}

func TestProduct_ReleaseStock_RoundTrip(t *testing.T) {
	p := model.Product{Stock: 10}

	assert.NoError(t, p.ReserveStock(4))
	p.ReleaseStock(4)

	assert.Equal(t, int64(10), p.Stock)
}
