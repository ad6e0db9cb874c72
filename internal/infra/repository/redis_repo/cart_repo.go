package redis_repo

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/RoyceAzure/lab/megano/internal/domain/model"
	"github.com/redis/go-redis/v9"
)

type ICartRepository interface {
	Add(ctx context.Context, sessionID string, productID uint, count int) (int, error)
	Remove(ctx context.Context, sessionID string, productID uint) error
	Get(ctx context.Context, sessionID string) (*model.Cart, error)
	Clear(ctx context.Context, sessionID string) error
	Move(ctx context.Context, fromSessionID, toSessionID string) error
}

// CartRepo 購物車為 hash, field 為商品 id, value 為數量; 生命週期跟隨 session
type CartRepo struct {
	CartCache *redis.Client
	ttl       time.Duration
}

func NewCartRepo(cartCache *redis.Client, ttl time.Duration) *CartRepo {
	return &CartRepo{CartCache: cartCache, ttl: ttl}
}

var _ ICartRepository = (*CartRepo)(nil)

func generateCartItemKey(sessionID string) string {
	return fmt.Sprintf("cart:%s:items", sessionID)
}

// 累加數量並刷新過期時間, 結果 <= 0 時移除該商品
var addScript = redis.NewScript(`
	local key = KEYS[1]
	local product_id = ARGV[1]
	local delta = tonumber(ARGV[2])
	local ttl = tonumber(ARGV[3])

	local current = redis.call('HINCRBY', key, product_id, delta)
	if current <= 0 then
		redis.call('HDEL', key, product_id)
		current = 0
	end
	if ttl > 0 and redis.call('EXISTS', key) == 1 then
		redis.call('PEXPIRE', key, ttl)
	end
	return current
`)

// Add 商品已在購物車時累加, 否則新增; 回傳累加後數量
func (r *CartRepo) Add(ctx context.Context, sessionID string, productID uint, count int) (int, error) {
	itemsKey := generateCartItemKey(sessionID)
	result, err := addScript.Run(ctx, r.CartCache, []string{itemsKey},
		strconv.FormatUint(uint64(productID), 10), count, r.ttl.Milliseconds()).Int64()
	if err != nil {
		return 0, fmt.Errorf("failed to add item to cart: %w", err)
	}
	return int(result), nil
}

// Remove 不存在的商品視為成功
func (r *CartRepo) Remove(ctx context.Context, sessionID string, productID uint) error {
	itemsKey := generateCartItemKey(sessionID)
	err := r.CartCache.HDel(ctx, itemsKey, strconv.FormatUint(uint64(productID), 10)).Err()
	if err != nil {
		return fmt.Errorf("failed to delete item from cart: %w", err)
	}
	return nil
}

// Get 依商品 id 排序, 沒有購物車時回傳空的 Cart
func (r *CartRepo) Get(ctx context.Context, sessionID string) (*model.Cart, error) {
	itemsKey := generateCartItemKey(sessionID)
	items, err := r.CartCache.HGetAll(ctx, itemsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get cart items: %w", err)
	}

	cart := &model.Cart{
		SessionID: sessionID,
		Items:     make([]model.CartItem, 0, len(items)),
	}
	for productIDStr, quantityStr := range items {
		productID, err := strconv.ParseUint(productIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid product id %s in cart: %w", productIDStr, err)
		}
		quantity, err := strconv.Atoi(quantityStr)
		if err != nil {
			return nil, fmt.Errorf("invalid quantity for product %s: %w", productIDStr, err)
		}
		if quantity > 0 {
			cart.Items = append(cart.Items, model.CartItem{
				ProductID: uint(productID),
				Count:     quantity,
			})
		}
	}
	sort.Slice(cart.Items, func(i, j int) bool {
		return cart.Items[i].ProductID < cart.Items[j].ProductID
	})
	return cart, nil
}

func (r *CartRepo) Clear(ctx context.Context, sessionID string) error {
	if err := r.CartCache.Del(ctx, generateCartItemKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// 目標已有購物車時以來源覆蓋
var moveScript = redis.NewScript(`
	if redis.call('EXISTS', KEYS[1]) == 0 then
		return 0
	end
	redis.call('RENAME', KEYS[1], KEYS[2])
	return 1
`)

// Move session 更換 id 時把購物車一起帶過去
func (r *CartRepo) Move(ctx context.Context, fromSessionID, toSessionID string) error {
	keys := []string{generateCartItemKey(fromSessionID), generateCartItemKey(toSessionID)}
	if err := moveScript.Run(ctx, r.CartCache, keys).Err(); err != nil {
		return fmt.Errorf("failed to move cart: %w", err)
	}
	return nil
}
