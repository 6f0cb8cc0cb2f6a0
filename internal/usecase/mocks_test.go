package usecase_test

import (
	"context"
	"testing"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type MemberRepoMock struct{ mock.Mock }

func (m *MemberRepoMock) Create(ctx context.Context, member *model.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MemberRepoMock) FindByEmail(ctx context.Context, email string) (model.Member, error) {
	args := m.Called(ctx, email)
	member, _ := args.Get(0).(model.Member)
	return member, args.Error(1)
}

func (m *MemberRepoMock) FindByID(ctx context.Context, memberID int64) (model.Member, error) {
	args := m.Called(ctx, memberID)
	member, _ := args.Get(0).(model.Member)
	return member, args.Error(1)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) FindByID(ctx context.Context, productID int64) (model.Product, error) {
	args := m.Called(ctx, productID)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) ListAdmin(ctx context.Context, f repo.ProductSearchFilter) ([]model.Product, int64, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *ProductRepoMock) ListMain(ctx context.Context, q repo.MainProductQuery) ([]repo.MainProduct, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]repo.MainProduct)
	return items, args.Get(1).(int64), args.Error(2)
}

type ProductImageRepoMock struct{ mock.Mock }

func (m *ProductImageRepoMock) Create(ctx context.Context, img model.ProductImage) (model.ProductImage, error) {
	args := m.Called(ctx, img)
	created, _ := args.Get(0).(model.ProductImage)
	return created, args.Error(1)
}

func (m *ProductImageRepoMock) Update(ctx context.Context, img model.ProductImage) error {
	args := m.Called(ctx, img)
	return args.Error(0)
}

func (m *ProductImageRepoMock) FindByID(ctx context.Context, imageID int64) (model.ProductImage, error) {
	args := m.Called(ctx, imageID)
	img, _ := args.Get(0).(model.ProductImage)
	return img, args.Error(1)
}

func (m *ProductImageRepoMock) ListByProductID(ctx context.Context, productID int64) ([]model.ProductImage, error) {
	args := m.Called(ctx, productID)
	imgs, _ := args.Get(0).([]model.ProductImage)
	return imgs, args.Error(1)
}

func (m *ProductImageRepoMock) FindRepByProductID(ctx context.Context, productID int64) (model.ProductImage, error) {
	args := m.Called(ctx, productID)
	img, _ := args.Get(0).(model.ProductImage)
	return img, args.Error(1)
}

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) FindByMemberID(ctx context.Context, memberID int64) (model.Cart, error) {
	args := m.Called(ctx, memberID)
	cart, _ := args.Get(0).(model.Cart)
	return cart, args.Error(1)
}

func (m *CartRepoMock) Create(ctx context.Context, cart model.Cart) (model.Cart, error) {
	args := m.Called(ctx, cart)
	created, _ := args.Get(0).(model.Cart)
	return created, args.Error(1)
}

type CartItemRepoMock struct{ mock.Mock }

func (m *CartItemRepoMock) Create(ctx context.Context, item model.CartItem) (model.CartItem, error) {
	args := m.Called(ctx, item)
	created, _ := args.Get(0).(model.CartItem)
	return created, args.Error(1)
}

func (m *CartItemRepoMock) FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error) {
	args := m.Called(ctx, cartItemID)
	item, _ := args.Get(0).(model.CartItem)
	return item, args.Error(1)
}

func (m *CartItemRepoMock) FindByCartAndProduct(ctx context.Context, cartID int64, productID int64) (model.CartItem, error) {
	args := m.Called(ctx, cartID, productID)
	item, _ := args.Get(0).(model.CartItem)
	return item, args.Error(1)
}

func (m *CartItemRepoMock) Update(ctx context.Context, item model.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteByID(ctx context.Context, cartItemID int64) error {
	args := m.Called(ctx, cartItemID)
	return args.Error(0)
}

func (m *CartItemRepoMock) IsOwnedByMember(ctx context.Context, cartItemID int64, email string) (bool, error) {
	args := m.Called(ctx, cartItemID, email)
	return args.Bool(0), args.Error(1)
}

func (m *CartItemRepoMock) ListDetailsByCartID(ctx context.Context, cartID int64) ([]repo.CartDetail, error) {
	args := m.Called(ctx, cartID)
	details, _ := args.Get(0).([]repo.CartDetail)
	return details, args.Error(1)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListByMemberID(ctx context.Context, memberID int64, page int, limit int) ([]model.Order, int64, error) {
	args := m.Called(ctx, memberID, page, limit)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

// =====================
// Tx manager（テスト用：そのままfnを呼ぶだけ）
// =====================

type txReposStub struct {
	members   *MemberRepoMock
	products  *ProductRepoMock
	images    *ProductImageRepoMock
	carts     *CartRepoMock
	cartItems *CartItemRepoMock
	orders    *OrderRepoMock
}

func newTxReposStub() *txReposStub {
	return &txReposStub{
		members:   new(MemberRepoMock),
		products:  new(ProductRepoMock),
		images:    new(ProductImageRepoMock),
		carts:     new(CartRepoMock),
		cartItems: new(CartItemRepoMock),
		orders:    new(OrderRepoMock),
	}
}

func (r *txReposStub) Members() repo.MemberRepository             { return r.members }
func (r *txReposStub) Products() repo.ProductRepository           { return r.products }
func (r *txReposStub) ProductImages() repo.ProductImageRepository { return r.images }
func (r *txReposStub) Carts() repo.CartRepository                 { return r.carts }
func (r *txReposStub) CartItems() repo.CartItemRepository         { return r.cartItems }
func (r *txReposStub) Orders() repo.OrderRepository               { return r.orders }

type txManagerStub struct {
	repos repo.TxRepos
}

func (m *txManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(m.repos)
}

func assertErrContains(t *testing.T, err error, want string) {
	t.Helper()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), want)
}
