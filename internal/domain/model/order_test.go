package model_test

import (
	"testing"

	"shop/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestNewOrderItem_ReservesStockAndSnapshotsPrice(t *testing.T) {
	p := model.Product{ID: 7, Price: 10000, Stock: 100}

	item, err := model.NewOrderItem(&p, 10)

	assert.NoError(t, err)
	assert.Equal(t, int64(90), p.Stock)
	assert.Equal(t, int64(7), item.ProductID)
	assert.Equal(t, int64(10000), item.OrderPrice)
	assert.Equal(t, int64(10), item.Quantity)
	assert.Equal(t, int64(100000), item.TotalPrice())
}

func TestNewOrderItem_OutOfStock(t *testing.T) {
	p := model.Product{ID: 7, Price: 10000, Stock: 3}

	_, err := model.NewOrderItem(&p, 10)

	var oos *model.OutOfStockError
	assert.ErrorAs(t, err, &oos)
	assert.Equal(t, int64(3), oos.Stock)
	assert.Equal(t, int64(3), p.Stock)
}

func TestNewOrderItem_PriceSnapshotUnaffectedByLaterChange(t *testing.T) {
	p := model.Product{ID: 7, Price: 10000, Stock: 100}

	item, err := model.NewOrderItem(&p, 2)
	assert.NoError(t, err)

	//注文後に商品価格が変わっても明細の単価は変わらない
	p.Price = 99999

	assert.Equal(t, int64(10000), item.OrderPrice)
	assert.Equal(t, int64(20000), item.TotalPrice())
}

func TestNewOrder_StartsPlaced(t *testing.T) {
	p1 := model.Product{ID: 1, Price: 1000, Stock: 10}
	p2 := model.Product{ID: 2, Price: 500, Stock: 10}

	i1, _ := model.NewOrderItem(&p1, 3)
	i2, _ := model.NewOrderItem(&p2, 4)

	order := model.NewOrder(42, []model.OrderItem{i1, i2})

	assert.Equal(t, int64(42), order.MemberID)
	assert.Equal(t, model.OrderStatusPlaced, order.Status)
	assert.False(t, order.OrderDate.IsZero())
	assert.Equal(t, int64(3000+2000), order.TotalPrice())
}

func TestOrder_TotalPrice_Empty(t *testing.T) {
	order := model.NewOrder(1, nil)

	assert.Equal(t, int64(0), order.TotalPrice())
}

func TestOrder_Cancel(t *testing.T) {
	order := model.NewOrder(1, nil)

	assert.NoError(t, order.Cancel())
	assert.Equal(t, model.OrderStatusCancelled, order.Status)
}

func TestOrder_Cancel_Twice(t *testing.T) {
	order := model.NewOrder(1, nil)

	assert.NoError(t, order.Cancel())

	//二重キャンセルは拒否される
	err := order.Cancel()
	assert.ErrorIs(t, err, model.ErrOrderNotCancellable)
	assert.Equal(t, model.OrderStatusCancelled, order.Status)
}
