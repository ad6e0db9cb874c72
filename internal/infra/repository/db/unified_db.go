package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/megano/internal/domain/model"
	"gorm.io/gorm"
)

// ErrRecordNotFound 所有 repo 查無資料時回傳, 不讓 gorm 錯誤外洩到 service
var ErrRecordNotFound = errors.New("record not found")

// ErrDuplicatedKey 違反唯一索引, 需要 gorm.Config.TranslateError
var ErrDuplicatedKey = errors.New("duplicated key")

func translateErr(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf(format+": %w", append(args, ErrRecordNotFound)...)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf(format+": %w", append(args, ErrDuplicatedKey)...)
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// UnifiedDB 統一的資料庫介面
type UnifiedDB interface {
	GetDB() *gorm.DB
	InitMigrate() error

	IUserRepository
	IProfileRepository
	IProductRepository
	ICatalogRepository
	IReviewRepository
	IOrderRepository
	IPaymentRepository
}

type IUserRepository interface {
	CreateUserWithProfile(ctx context.Context, user *model.User, profile *model.Profile) error
	GetUserByID(ctx context.Context, id uint) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsUsername(ctx context.Context, username string) (bool, error)
	UpdatePasswordHash(ctx context.Context, userID uint, hash string) error
	UpdateLastLogin(ctx context.Context, userID uint, at time.Time) error
}

type IProfileRepository interface {
	GetProfileByID(ctx context.Context, id uint) (*model.Profile, error)
	GetProfileByUserID(ctx context.Context, userID uint) (*model.Profile, error)
	ExistsProfileEmail(ctx context.Context, email string, excludeProfileID uint) (bool, error)
	ExistsProfilePhone(ctx context.Context, phone string, excludeProfileID uint) (bool, error)
	UpdateProfile(ctx context.Context, profile *model.Profile) error
	ReplaceAvatar(ctx context.Context, profileID uint, avatar *model.Avatar) (oldSrc string, err error)
	UpdateAvatarAlt(ctx context.Context, profileID uint, alt string) error
}

type IProductRepository interface {
	GetProductByID(ctx context.Context, id uint) (*model.Product, error)
	GetProductsByIDs(ctx context.Context, ids []uint) ([]model.Product, error)
	ExistsProduct(ctx context.Context, id uint) (bool, error)
	ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, int64, error)
	ListPopularProducts(ctx context.Context, limit int) ([]model.Product, error)
	ListLimitedProducts(ctx context.Context, limit int) ([]model.Product, error)
	IncrementSalesCount(ctx context.Context, counts map[uint]int) error
}

type ICatalogRepository interface {
	ListTags(ctx context.Context) ([]model.Tag, error)
	GetTagByID(ctx context.Context, id uint) (*model.Tag, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	ListActiveSales(ctx context.Context, day time.Time, offset, limit int) ([]model.Sale, int64, error)
	ListBanners(ctx context.Context) ([]model.Banner, error)
	CountReviewsByProductIDs(ctx context.Context, ids []uint) (map[uint]int64, error)
}

type IReviewRepository interface {
	CreateReview(ctx context.Context, review *model.Review) error
}

type IOrderRepository interface {
	CreateOrder(ctx context.Context, order *model.Order) error
	GetOrderByID(ctx context.Context, id uint, profileID uint) (*model.Order, error)
	ListOrdersByProfileID(ctx context.Context, profileID uint) ([]model.Order, error)
	UpdateOrder(ctx context.Context, order *model.Order) error
	UpdateOrderStatus(ctx context.Context, id uint, status model.OrderStatus) error
}

type IPaymentRepository interface {
	ExistsPaymentForOrder(ctx context.Context, orderID uint) (bool, error)
	GetLatestPaymentByOrderID(ctx context.Context, orderID uint) (*model.Payment, error)
	RecordPayment(ctx context.Context, payment *model.Payment, orderStatus model.OrderStatus) error
}

// UnifiedDBImpl 統一資料庫實現
type UnifiedDBImpl struct {
	db    *gorm.DB
	dbDao *DbDao
	*UserRepo
	*ProfileRepo
	*ProductRepo
	*CatalogRepo
	*ReviewRepo
	*OrderRepo
	*PaymentRepo
}

func NewUnifiedDB(db *gorm.DB) *UnifiedDBImpl {
	dbDao := NewDbDao(db)
	return &UnifiedDBImpl{
		db:          db,
		dbDao:       dbDao,
		UserRepo:    NewUserRepo(dbDao),
		ProfileRepo: NewProfileRepo(dbDao),
		ProductRepo: NewProductRepo(dbDao),
		CatalogRepo: NewCatalogRepo(dbDao),
		ReviewRepo:  NewReviewRepo(dbDao),
		OrderRepo:   NewOrderRepo(dbDao),
		PaymentRepo: NewPaymentRepo(dbDao),
	}
}

func (u *UnifiedDBImpl) InitMigrate() error {
	return u.dbDao.InitMigrate()
}

func (u *UnifiedDBImpl) GetDB() *gorm.DB {
	return u.db
}

var (
	_ UnifiedDB          = (*UnifiedDBImpl)(nil)
	_ IUserRepository    = (*UserRepo)(nil)
	_ IProfileRepository = (*ProfileRepo)(nil)
	_ IProductRepository = (*ProductRepo)(nil)
	_ ICatalogRepository = (*CatalogRepo)(nil)
	_ IReviewRepository  = (*ReviewRepo)(nil)
	_ IOrderRepository   = (*OrderRepo)(nil)
	_ IPaymentRepository = (*PaymentRepo)(nil)
)
