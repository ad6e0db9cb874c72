package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/RoyceAzure/lab/megano/internal/domain/model"
	"github.com/RoyceAzure/lab/megano/internal/infra/producer"
	"github.com/RoyceAzure/lab/megano/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/megano/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/megano/internal/infra/storage"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

var errFakeDown = errors.New("store down")

func notFound(what string, id any) error {
	return fmt.Errorf("%s %v: %w", what, id, db.ErrRecordNotFound)
}

// fakeStore 以 map 實作 service 用到的 repository 方法, 其餘方法沒有實作
type fakeStore struct {
	db.UnifiedDB

	mu         sync.Mutex
	nextID     uint
	users      map[uint]*model.User
	profiles   map[uint]*model.Profile
	products   map[uint]model.Product
	tags       map[uint]model.Tag
	sales      []model.Sale
	banners    []model.Banner
	reviews    []model.Review
	orders     map[uint]*model.Order
	payments   map[uint]*model.Payment
	sold       map[uint]int
	recordErr  error
	createErr  error
	lastLogins map[uint]time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		nextID:     100,
		users:      map[uint]*model.User{},
		profiles:   map[uint]*model.Profile{},
		products:   map[uint]model.Product{},
		tags:       map[uint]model.Tag{},
		orders:     map[uint]*model.Order{},
		payments:   map[uint]*model.Payment{},
		sold:       map[uint]int{},
		lastLogins: map[uint]time.Time{},
	}
}

func (f *fakeStore) id() uint {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) addProduct(id uint, price string, limited bool) {
	f.products[id] = model.Product{
		ID:             id,
		Title:          fmt.Sprintf("product %d", id),
		Price:          decimal.RequireFromString(price),
		Available:      true,
		LimitedEdition: limited,
	}
}

// addUser 密碼以最低成本 hash, 測試較快
func (f *fakeStore) addUser(username, password string, email *string) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	user := &model.User{ID: f.id(), Username: username, PasswordHash: string(hash), IsActive: true}
	profile := &model.Profile{ID: f.id(), UserID: user.ID, FullName: username, Email: email}
	user.Profile = profile
	f.users[user.ID] = user
	f.profiles[profile.ID] = profile
	return user
}

func (f *fakeStore) CreateUserWithProfile(_ context.Context, user *model.User, profile *model.Profile) error {
	if f.createErr != nil {
		return f.createErr
	}
	user.ID = f.id()
	profile.ID = f.id()
	profile.UserID = user.ID
	user.Profile = profile
	f.users[user.ID] = user
	f.profiles[profile.ID] = profile
	return nil
}

func (f *fakeStore) GetUserByID(_ context.Context, id uint) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, notFound("user", id)
	}
	cp := *u
	return &cp, nil
}

func (f *fakeStore) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, notFound("user", username)
}

func (f *fakeStore) ExistsUsername(_ context.Context, username string) (bool, error) {
	for _, u := range f.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) UpdatePasswordHash(_ context.Context, userID uint, hash string) error {
	u, ok := f.users[userID]
	if !ok {
		return notFound("user", userID)
	}
	u.PasswordHash = hash
	return nil
}

func (f *fakeStore) UpdateLastLogin(_ context.Context, userID uint, at time.Time) error {
	f.lastLogins[userID] = at
	return nil
}

func (f *fakeStore) GetProfileByID(_ context.Context, id uint) (*model.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, notFound("profile", id)
	}
	cp := *p
	if p.Avatar != nil {
		avatar := *p.Avatar
		cp.Avatar = &avatar
	}
	return &cp, nil
}

func (f *fakeStore) ExistsProfileEmail(_ context.Context, email string, exclude uint) (bool, error) {
	for _, p := range f.profiles {
		if p.ID != exclude && p.Email != nil && *p.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) ExistsProfilePhone(_ context.Context, phone string, exclude uint) (bool, error) {
	for _, p := range f.profiles {
		if p.ID != exclude && p.Phone != nil && *p.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) UpdateProfile(_ context.Context, profile *model.Profile) error {
	p, ok := f.profiles[profile.ID]
	if !ok {
		return notFound("profile", profile.ID)
	}
	p.FullName, p.Email, p.Phone = profile.FullName, profile.Email, profile.Phone
	return nil
}

func (f *fakeStore) ReplaceAvatar(_ context.Context, profileID uint, avatar *model.Avatar) (string, error) {
	p, ok := f.profiles[profileID]
	if !ok {
		return "", notFound("profile", profileID)
	}
	old := ""
	if p.Avatar != nil {
		old = p.Avatar.Src
		avatar.ID = p.Avatar.ID
	} else {
		avatar.ID = f.id()
	}
	cp := *avatar
	p.Avatar = &cp
	p.AvatarID = &cp.ID
	return old, nil
}

func (f *fakeStore) UpdateAvatarAlt(_ context.Context, profileID uint, alt string) error {
	p, ok := f.profiles[profileID]
	if !ok {
		return notFound("profile", profileID)
	}
	if p.Avatar != nil {
		p.Avatar.Alt = alt
	}
	return nil
}

func (f *fakeStore) GetProductByID(_ context.Context, id uint) (*model.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, notFound("product", id)
	}
	return &p, nil
}

func (f *fakeStore) GetProductsByIDs(_ context.Context, ids []uint) ([]model.Product, error) {
	products := []model.Product{}
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			products = append(products, p)
		}
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (f *fakeStore) ExistsProduct(_ context.Context, id uint) (bool, error) {
	_, ok := f.products[id]
	return ok, nil
}

func (f *fakeStore) sortedProducts() []model.Product {
	products := make([]model.Product, 0, len(f.products))
	for _, p := range f.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products
}

func (f *fakeStore) ListProducts(_ context.Context, filter model.ProductFilter) ([]model.Product, int64, error) {
	matched := []model.Product{}
	for _, p := range f.sortedProducts() {
		if filter.Name != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(filter.Name)) {
			continue
		}
		matched = append(matched, p)
	}
	start := min(filter.Offset(), len(matched))
	end := min(start+filter.Limit, len(matched))
	return matched[start:end], int64(len(matched)), nil
}

func (f *fakeStore) ListPopularProducts(_ context.Context, limit int) ([]model.Product, error) {
	products := f.sortedProducts()
	return products[:min(limit, len(products))], nil
}

func (f *fakeStore) ListLimitedProducts(_ context.Context, limit int) ([]model.Product, error) {
	products := []model.Product{}
	for _, p := range f.sortedProducts() {
		if p.LimitedEdition && len(products) < limit {
			products = append(products, p)
		}
	}
	return products, nil
}

func (f *fakeStore) IncrementSalesCount(_ context.Context, counts map[uint]int) error {
	for id, n := range counts {
		f.sold[id] += n
	}
	return nil
}

func (f *fakeStore) GetTagByID(_ context.Context, id uint) (*model.Tag, error) {
	t, ok := f.tags[id]
	if !ok {
		return nil, notFound("tag", id)
	}
	return &t, nil
}

func (f *fakeStore) ListActiveSales(_ context.Context, day time.Time, offset, limit int) ([]model.Sale, int64, error) {
	active := []model.Sale{}
	for _, s := range f.sales {
		if s.IsActive(day) {
			active = append(active, s)
		}
	}
	start := min(offset, len(active))
	end := min(start+limit, len(active))
	return active[start:end], int64(len(active)), nil
}

func (f *fakeStore) ListBanners(_ context.Context) ([]model.Banner, error) {
	return f.banners, nil
}

func (f *fakeStore) CountReviewsByProductIDs(_ context.Context, ids []uint) (map[uint]int64, error) {
	counts := map[uint]int64{}
	for _, r := range f.reviews {
		counts[r.ProductID]++
	}
	return counts, nil
}

func (f *fakeStore) CreateReview(_ context.Context, review *model.Review) error {
	review.ID = f.id()
	f.reviews = append(f.reviews, *review)
	return nil
}

func (f *fakeStore) CreateOrder(_ context.Context, order *model.Order) error {
	order.ID = f.id()
	order.CreatedAt = time.Now().UTC()
	cp := *order
	cp.Items = append([]model.OrderItem(nil), order.Items...)
	f.orders[order.ID] = &cp
	return nil
}

func (f *fakeStore) GetOrderByID(_ context.Context, id uint, profileID uint) (*model.Order, error) {
	o, ok := f.orders[id]
	if !ok || o.ProfileID != profileID {
		return nil, notFound("order", id)
	}
	cp := *o
	cp.Items = append([]model.OrderItem(nil), o.Items...)
	return &cp, nil
}

func (f *fakeStore) ListOrdersByProfileID(_ context.Context, profileID uint) ([]model.Order, error) {
	orders := []model.Order{}
	for _, o := range f.orders {
		if o.ProfileID == profileID {
			orders = append(orders, *o)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID > orders[j].ID })
	return orders, nil
}

func (f *fakeStore) UpdateOrder(_ context.Context, order *model.Order) error {
	if _, ok := f.orders[order.ID]; !ok {
		return notFound("order", order.ID)
	}
	cp := *order
	f.orders[order.ID] = &cp
	return nil
}

func (f *fakeStore) UpdateOrderStatus(_ context.Context, id uint, status model.OrderStatus) error {
	o, ok := f.orders[id]
	if !ok {
		return notFound("order", id)
	}
	o.Status = status
	return nil
}

func (f *fakeStore) ExistsPaymentForOrder(_ context.Context, orderID uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.payments[orderID]
	return ok, nil
}

func (f *fakeStore) GetLatestPaymentByOrderID(_ context.Context, orderID uint) (*model.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.payments[orderID]
	if !ok {
		return nil, notFound("payment", orderID)
	}
	cp := *p
	return &cp, nil
}

func (f *fakeStore) RecordPayment(_ context.Context, payment *model.Payment, orderStatus model.OrderStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.recordErr != nil {
		return f.recordErr
	}
	if _, ok := f.payments[payment.OrderID]; ok {
		return errors.New("UNIQUE constraint failed: payments.order_id")
	}
	payment.ID = f.id()
	cp := *payment
	f.payments[payment.OrderID] = &cp
	if orderStatus != "" {
		if o, ok := f.orders[payment.OrderID]; ok {
			o.Status = orderStatus
		}
	}
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]model.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]model.Session{}}
}

func (f *fakeSessionRepo) Create(_ context.Context, s *model.Session) error {
	if _, ok := f.sessions[s.ID]; ok {
		return errors.New("session exists")
	}
	f.sessions[s.ID] = *s
	return nil
}

func (f *fakeSessionRepo) Get(_ context.Context, id string) (*model.Session, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, redis_repo.ErrSessionNotFound
	}
	return &s, nil
}

func (f *fakeSessionRepo) Save(_ context.Context, s *model.Session) error {
	f.sessions[s.ID] = *s
	return nil
}

func (f *fakeSessionRepo) Touch(_ context.Context, id string) error {
	if _, ok := f.sessions[id]; !ok {
		return redis_repo.ErrSessionNotFound
	}
	return nil
}

func (f *fakeSessionRepo) Delete(_ context.Context, id string) error {
	delete(f.sessions, id)
	return nil
}

type fakeCartRepo struct {
	carts map[string]map[uint]int
	err   error
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: map[string]map[uint]int{}}
}

func (f *fakeCartRepo) Add(_ context.Context, sessionID string, productID uint, count int) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	if f.carts[sessionID] == nil {
		f.carts[sessionID] = map[uint]int{}
	}
	f.carts[sessionID][productID] += count
	return f.carts[sessionID][productID], nil
}

func (f *fakeCartRepo) Remove(_ context.Context, sessionID string, productID uint) error {
	delete(f.carts[sessionID], productID)
	return nil
}

func (f *fakeCartRepo) Get(_ context.Context, sessionID string) (*model.Cart, error) {
	if f.err != nil {
		return nil, f.err
	}
	cart := &model.Cart{SessionID: sessionID, Items: []model.CartItem{}}
	for id, n := range f.carts[sessionID] {
		cart.Items = append(cart.Items, model.CartItem{ProductID: id, Count: n})
	}
	sort.Slice(cart.Items, func(i, j int) bool { return cart.Items[i].ProductID < cart.Items[j].ProductID })
	return cart, nil
}

func (f *fakeCartRepo) Clear(_ context.Context, sessionID string) error {
	delete(f.carts, sessionID)
	return nil
}

func (f *fakeCartRepo) Move(_ context.Context, from, to string) error {
	if items, ok := f.carts[from]; ok {
		f.carts[to] = items
		delete(f.carts, from)
	}
	return nil
}

type fakeMedia struct {
	mu      sync.Mutex
	saved   []string
	deleted []string
}

func (f *fakeMedia) Save(_ context.Context, dir, filename string, r io.Reader) (string, error) {
	switch strings.ToLower(path.Ext(filename)) {
	case ".png", ".jpg", ".jpeg":
	default:
		return "", fmt.Errorf("%w: %q", storage.ErrUnsupportedMedia, path.Ext(filename))
	}
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	src := fmt.Sprintf("/media/%s/%d-%s", dir, len(f.saved), filename)
	f.saved = append(f.saved, src)
	return src, nil
}

func (f *fakeMedia) Delete(_ context.Context, src string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, src)
	return nil
}

type publishedEvent struct {
	Type    producer.EventType
	OrderID uint
	Status  model.OrderStatus
	Payment *model.Payment
}

type fakeEvents struct {
	events []publishedEvent
	err    error
}

func (f *fakeEvents) PublishOrderEvent(_ context.Context, eventType producer.EventType, order *model.Order, payment *model.Payment) error {
	f.events = append(f.events, publishedEvent{Type: eventType, OrderID: order.ID, Status: order.Status, Payment: payment})
	return f.err
}

func strPtr(s string) *string {
	return &s
}

var (
	_ db.UnifiedDB                  = (*fakeStore)(nil)
	_ redis_repo.ISessionRepository = (*fakeSessionRepo)(nil)
	_ redis_repo.ICartRepository    = (*fakeCartRepo)(nil)
	_ storage.MediaStore            = (*fakeMedia)(nil)
	_ producer.EventPublisher       = (*fakeEvents)(nil)
)
