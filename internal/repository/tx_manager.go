package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Members() MemberRepository
	Products() ProductRepository
	ProductImages() ProductImageRepository
	Carts() CartRepository
	CartItems() CartItemRepository
	Orders() OrderRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
// fnがエラーを返したらその操作の書き込みは全部ロールバックされる。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
