package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
)

// 注文のライフサイクル（作成・履歴・所有チェック・キャンセル）と在庫の増減をまとめる。
type OrderUsecase struct {
	tx       repo.TransactionManager
	members  repo.MemberRepository
	products repo.ProductRepository
	orders   repo.OrderRepository
	images   repo.ProductImageRepository
}

func NewOrderUsecase(
	tx repo.TransactionManager,
	members repo.MemberRepository,
	products repo.ProductRepository,
	orders repo.OrderRepository,
	images repo.ProductImageRepository,
) *OrderUsecase {
	return &OrderUsecase{
		tx:       tx,
		members:  members,
		products: products,
		orders:   orders,
		images:   images,
	}
}

type OrderLineInput struct {
	ProductID int64
	Quantity  int64
}

type OrderHistItem struct {
	ProductID  int64  `json:"product_id"`
	Name       string `json:"name"`
	OrderPrice int64  `json:"order_price"`
	Quantity   int64  `json:"quantity"`
	ImageURL   string `json:"image_url"`
}

type OrderHist struct {
	ID         int64           `json:"id"`
	OrderDate  time.Time       `json:"order_date"`
	Status     string          `json:"status"`
	TotalPrice int64           `json:"total_price"`
	Items      []OrderHistItem `json:"items"`
}

type OrderHistPage struct {
	Orders []OrderHist `json:"orders"`
	Total  int64       `json:"total"`
	Page   int         `json:"page"`
	Limit  int         `json:"limit"`
}

// PlaceOrder は商品1つの即時購入。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, email string, productID int64, qty int64) (int64, error) {
	return u.PlaceOrderLines(ctx, email, []OrderLineInput{{ProductID: productID, Quantity: qty}})
}

// PlaceOrderLines は複数明細の注文を1トランザクションで作る。
// どれか1明細でも在庫不足なら注文全体が失敗し、引き当て済みの在庫もロールバックされる。
func (u *OrderUsecase) PlaceOrderLines(ctx context.Context, email string, lines []OrderLineInput) (int64, error) {
	if len(lines) == 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "no order lines")
	}
	for _, l := range lines {
		if l.ProductID <= 0 {
			return 0, NewHTTPError(http.StatusBadRequest, "invalid product_id")
		}
		if l.Quantity < 1 {
			return 0, NewHTTPError(http.StatusBadRequest, "invalid quantity")
		}
	}

	var orderID int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		id, err := u.PlaceLines(ctx, r, email, lines)
		if err != nil {
			return err
		}
		orderID = id
		return nil
	})

	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// PlaceLines はトランザクション内での注文作成本体。
// カートのチェックアウトが同じトランザクションから呼べるように公開している。
func (u *OrderUsecase) PlaceLines(ctx context.Context, r repo.TxRepos, email string, lines []OrderLineInput) (int64, error) {
	member, err := r.Members().FindByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return 0, NewHTTPError(http.StatusNotFound, "member not found")
	}
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items := make([]model.OrderItem, 0, len(lines))

	for _, l := range lines {
		p, err := r.Products().FindByID(ctx, l.ProductID)
		if errors.Is(err, repo.ErrNotFound) {
			return 0, NewHTTPError(http.StatusNotFound, "product not found")
		}
		if err != nil {
			return 0, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//在庫の引き当て＋注文時点の単価スナップショット
		item, err := model.NewOrderItem(&p, l.Quantity)
		var oos *model.OutOfStockError
		if errors.As(err, &oos) {
			return 0, NewHTTPError(http.StatusConflict, oos.Error())
		}
		if err != nil {
			return 0, NewHTTPError(http.StatusInternalServerError, "internal error")
		}

		//引き当て後の在庫を明示的に保存する
		if err := r.Products().Update(ctx, p); err != nil {
			return 0, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items = append(items, item)
	}

	order := model.NewOrder(member.ID, items)

	orderID, err := r.Orders().Create(ctx, order)
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return orderID, nil
}

// ListOrders は会員の注文履歴（明細＋代表画像つき）を返す。読み取り専用。
func (u *OrderUsecase) ListOrders(ctx context.Context, email string, page int, limit int) (OrderHistPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	member, err := u.members.FindByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return OrderHistPage{}, NewHTTPError(http.StatusNotFound, "member not found")
	}
	if err != nil {
		return OrderHistPage{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	orders, total, err := u.orders.ListByMemberID(ctx, member.ID, page, limit)
	if err != nil {
		return OrderHistPage{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	hists := make([]OrderHist, 0, len(orders))
	for _, o := range orders {
		hist := OrderHist{
			ID:         o.ID,
			OrderDate:  o.OrderDate,
			Status:     string(o.Status),
			TotalPrice: o.TotalPrice(),
			Items:      make([]OrderHistItem, 0, len(o.Items)),
		}

		for _, it := range o.Items {
			histItem := OrderHistItem{
				ProductID:  it.ProductID,
				OrderPrice: it.OrderPrice,
				Quantity:   it.Quantity,
			}

			if p, err := u.products.FindByID(ctx, it.ProductID); err == nil {
				histItem.Name = p.Name
			}
			if img, err := u.images.FindRepByProductID(ctx, it.ProductID); err == nil {
				histItem.ImageURL = img.ImageURL
			}

			hist.Items = append(hist.Items, histItem)
		}

		hists = append(hists, hist)
	}

	return OrderHistPage{Orders: hists, Total: total, Page: page, Limit: limit}, nil
}

// ValidateOwnership は注文がその会員のものかを返す。
// 不一致でもエラーにはしない（拒否するかどうかはhandler側の判断）。
func (u *OrderUsecase) ValidateOwnership(ctx context.Context, orderID int64, email string) (bool, error) {
	order, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return false, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return false, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	member, err := u.members.FindByID(ctx, order.MemberID)
	if err != nil {
		return false, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return member.Email == email, nil
}

// CancelOrder は注文をキャンセルして明細分の在庫を戻す。
// 所有チェックは済んでいる前提で呼ぶこと。
func (u *OrderUsecase) CancelOrder(ctx context.Context, orderID int64) error {
	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		order, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//PLACED以外は拒否（二重キャンセルで在庫が二重に戻るのを防ぐ）
		if err := order.Cancel(); err != nil {
			return NewHTTPError(http.StatusConflict, "order already cancelled")
		}

		for _, it := range order.Items {
			p, err := r.Products().FindByID(ctx, it.ProductID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			p.ReleaseStock(it.Quantity)

			if err := r.Products().Update(ctx, p); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		if err := r.Orders().UpdateStatus(ctx, order.ID, order.Status); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
}
