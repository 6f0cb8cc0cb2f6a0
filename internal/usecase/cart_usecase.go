package usecase

import (
	"context"
	"errors"
	"net/http"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
)

// カートからの注文作成の約束。チェックアウトと同じトランザクションで動かすため
// TxRepos を受け取る形にしている。
type OrderPlacer interface {
	PlaceLines(ctx context.Context, r repo.TxRepos, email string, lines []OrderLineInput) (int64, error)
}

// カートの業務ロジック。追加・一覧・数量変更・削除・チェックアウト。
type CartUsecase struct {
	tx        repo.TransactionManager
	members   repo.MemberRepository
	carts     repo.CartRepository
	cartItems repo.CartItemRepository
	orders    OrderPlacer
}

func NewCartUsecase(
	tx repo.TransactionManager,
	members repo.MemberRepository,
	carts repo.CartRepository,
	cartItems repo.CartItemRepository,
	orders OrderPlacer,
) *CartUsecase {
	return &CartUsecase{
		tx:        tx,
		members:   members,
		carts:     carts,
		cartItems: cartItems,
		orders:    orders,
	}
}

// AddToCart はカートに追加して明細IDを返す。
// カートは最初の追加時に作り、同じ商品は行を増やさず数量加算する。
// 在庫の引き当てはここではしない（チェックアウト時に行う）。
func (u *CartUsecase) AddToCart(ctx context.Context, email string, productID int64, qty int64) (int64, error) {
	if productID <= 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if qty < 1 {
		return 0, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	var cartItemID int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		member, err := r.Members().FindByEmail(ctx, email)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "member not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if _, err := r.Products().FindByID(ctx, productID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, "product not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//カートが無ければここで作る
		cart, err := r.Carts().FindByMemberID(ctx, member.ID)
		if errors.Is(err, repo.ErrNotFound) {
			cart, err = r.Carts().Create(ctx, model.Cart{MemberID: member.ID})
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//既存明細があれば数量加算、無ければ新規作成
		existing, err := r.CartItems().FindByCartAndProduct(ctx, cart.ID, productID)
		if err == nil {
			existing.AddQuantity(qty)
			if err := r.CartItems().Update(ctx, existing); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			cartItemID = existing.ID
			return nil
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		created, err := r.CartItems().Create(ctx, model.CartItem{
			CartID:    cart.ID,
			ProductID: productID,
			Quantity:  qty,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		cartItemID = created.ID
		return nil
	})

	if err != nil {
		return 0, err
	}
	return cartItemID, nil
}

// ListCart はカートの中身（追加が新しい順）を返す。
// カート未作成の会員には空リストを返す（エラーにしない）。
func (u *CartUsecase) ListCart(ctx context.Context, email string) ([]repo.CartDetail, error) {
	member, err := u.members.FindByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, NewHTTPError(http.StatusNotFound, "member not found")
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	cart, err := u.carts.FindByMemberID(ctx, member.ID)
	if errors.Is(err, repo.ErrNotFound) {
		return []repo.CartDetail{}, nil
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	details, err := u.cartItems.ListDetailsByCartID(ctx, cart.ID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return details, nil
}

// ValidateOwnership は明細がその会員のものかを返す。
// 不一致でもエラーにはしない（拒否するかどうかはhandler側の判断）。
func (u *CartUsecase) ValidateOwnership(ctx context.Context, cartItemID int64, email string) (bool, error) {
	if _, err := u.cartItems.FindByID(ctx, cartItemID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return false, NewHTTPError(http.StatusNotFound, "cart item not found")
		}
		return false, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	owned, err := u.cartItems.IsOwnedByMember(ctx, cartItemID, email)
	if err != nil {
		return false, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return owned, nil
}

// UpdateQuantity は明細の数量を設定する。
// 数量0以下の拒否は境界（handler）の責務なのでここではチェックしない。
func (u *CartUsecase) UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error {
	item, err := u.cartItems.FindByID(ctx, cartItemID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "cart item not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	item.UpdateQuantity(qty)

	if err := u.cartItems.Update(ctx, item); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "cart item not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// RemoveItem は明細を削除する。
func (u *CartUsecase) RemoveItem(ctx context.Context, cartItemID int64) error {
	if err := u.cartItems.DeleteByID(ctx, cartItemID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "cart item not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// Checkout は選んだ明細を注文に変換し、注文できた明細をカートから消す。
// 注文作成と明細削除は同じトランザクションで行う。
// 各明細の所有チェックは呼び出し前に済んでいる前提。
func (u *CartUsecase) Checkout(ctx context.Context, email string, cartItemIDs []int64) (int64, error) {
	if len(cartItemIDs) == 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "no cart items selected")
	}

	var orderID int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		lines := make([]OrderLineInput, 0, len(cartItemIDs))

		for _, id := range cartItemIDs {
			item, err := r.CartItems().FindByID(ctx, id)
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, "cart item not found")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			lines = append(lines, OrderLineInput{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
		}

		id, err := u.orders.PlaceLines(ctx, r, email, lines)
		if err != nil {
			return err
		}
		orderID = id

		//注文にした明細はカートから消す
		for _, itemID := range cartItemIDs {
			if err := r.CartItems().DeleteByID(ctx, itemID); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}
		return nil
	})

	if err != nil {
		return 0, err
	}
	return orderID, nil
}
