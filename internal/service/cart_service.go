package service

import (
	"context"

	"github.com/RoyceAzure/lab/megano/internal/domain/model"
	"github.com/RoyceAzure/lab/megano/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/megano/internal/infra/repository/redis_repo"
	"github.com/shopspring/decimal"
)

type CartLine struct {
	Product model.Product
	Count   int
}

func (l CartLine) Amount() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Count)))
}

type CartView struct {
	Items []CartLine
	Total decimal.Decimal
}

type ICartService interface {
	Add(ctx context.Context, sessionID string, productID uint, count int) (*CartView, error)
	Remove(ctx context.Context, sessionID string, productID uint) (*CartView, error)
	Items(ctx context.Context, sessionID string) (*CartView, error)
	Total(ctx context.Context, sessionID string) (decimal.Decimal, error)
	Clear(ctx context.Context, sessionID string) error
}

type CartService struct {
	cartRepo    redis_repo.ICartRepository
	productRepo db.IProductRepository
}

func NewCartService(cartRepo redis_repo.ICartRepository, productRepo db.IProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func (c *CartService) ensureProduct(ctx context.Context, productID uint) error {
	exists, err := c.productRepo.ExistsProduct(ctx, productID)
	if err != nil {
		return internal(err)
	}
	if !exists {
		return ErrProductNotFound
	}
	return nil
}

// Add 已存在的商品累加數量
func (c *CartService) Add(ctx context.Context, sessionID string, productID uint, count int) (*CartView, error) {
	if count < 1 {
		return nil, invalid(map[string]string{"count": "Ensure this value is greater than or equal to 1."})
	}
	if err := c.ensureProduct(ctx, productID); err != nil {
		return nil, err
	}
	if _, err := c.cartRepo.Add(ctx, sessionID, productID, count); err != nil {
		return nil, internal(err)
	}
	return c.Items(ctx, sessionID)
}

func (c *CartService) Remove(ctx context.Context, sessionID string, productID uint) (*CartView, error) {
	if err := c.ensureProduct(ctx, productID); err != nil {
		return nil, err
	}
	if err := c.cartRepo.Remove(ctx, sessionID, productID); err != nil {
		return nil, internal(err)
	}
	return c.Items(ctx, sessionID)
}

// Items 以目前商品資料組出購物車, 已下架的商品直接略過
func (c *CartService) Items(ctx context.Context, sessionID string) (*CartView, error) {
	cart, err := c.cartRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, internal(err)
	}

	view := &CartView{Items: []CartLine{}, Total: decimal.Zero}
	if len(cart.Items) == 0 {
		return view, nil
	}

	ids := make([]uint, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ProductID)
	}
	products, err := c.productRepo.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, internal(err)
	}
	byID := make(map[uint]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	for _, item := range cart.Items {
		product, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		line := CartLine{Product: product, Count: item.Count}
		view.Items = append(view.Items, line)
		view.Total = view.Total.Add(line.Amount())
	}
	return view, nil
}

func (c *CartService) Total(ctx context.Context, sessionID string) (decimal.Decimal, error) {
	view, err := c.Items(ctx, sessionID)
	if err != nil {
		return decimal.Zero, err
	}
	return view.Total, nil
}

func (c *CartService) Clear(ctx context.Context, sessionID string) error {
	if err := c.cartRepo.Clear(ctx, sessionID); err != nil {
		return internal(err)
	}
	return nil
}

var _ ICartService = (*CartService)(nil)
