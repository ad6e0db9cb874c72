package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/RoyceAzure/lab/megano/internal/domain/model"
	"github.com/RoyceAzure/lab/megano/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/megano/internal/infra/storage"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	PopularProductsSize = 8
	LimitedProductsSize = 16
	SalesPageSize       = 10

	reviewImageDir = "reviews"
)

type ProductPage struct {
	Items       []model.Product
	CurrentPage int
	LastPage    int
}

type SalePage struct {
	Items       []model.Sale
	CurrentPage int
	LastPage    int
}

type BannerCard struct {
	ID          uint
	Product     model.Product
	ReviewCount int64
}

type Upload struct {
	Filename string
	Reader   io.Reader
}

type ReviewInput struct {
	Author string
	Email  string
	Text   string
	Rate   int
	Images []Upload
}

type ICatalogService interface {
	Catalog(ctx context.Context, filter model.ProductFilter) (*ProductPage, error)
	Product(ctx context.Context, id uint) (*model.Product, error)
	AddReview(ctx context.Context, productID, profileID uint, in ReviewInput) (*model.Review, error)
	Tags(ctx context.Context) ([]model.Tag, error)
	Tag(ctx context.Context, id uint) (*model.Tag, error)
	Categories(ctx context.Context) ([]model.Category, error)
	Popular(ctx context.Context) ([]model.Product, error)
	Limited(ctx context.Context) ([]model.Product, error)
	Sales(ctx context.Context, page int) (*SalePage, error)
	Banners(ctx context.Context) ([]BannerCard, error)
}

type CatalogService struct {
	productRepo db.IProductRepository
	catalogRepo db.ICatalogRepository
	reviewRepo  db.IReviewRepository
	profileRepo db.IProfileRepository
	media       storage.MediaStore
	logger      *zerolog.Logger
	now         func() time.Time
}

func NewCatalogService(
	productRepo db.IProductRepository,
	catalogRepo db.ICatalogRepository,
	reviewRepo db.IReviewRepository,
	profileRepo db.IProfileRepository,
	media storage.MediaStore,
	logger *zerolog.Logger,
) *CatalogService {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &CatalogService{
		productRepo: productRepo,
		catalogRepo: catalogRepo,
		reviewRepo:  reviewRepo,
		profileRepo: profileRepo,
		media:       media,
		logger:      logger,
		now:         time.Now,
	}
}

// Catalog 超過最後一頁回 404, 第一頁永遠合法
func (c *CatalogService) Catalog(ctx context.Context, filter model.ProductFilter) (*ProductPage, error) {
	if problems := filter.Validate(); problems != nil {
		return nil, invalid(problems)
	}
	products, total, err := c.productRepo.ListProducts(ctx, filter)
	if err != nil {
		return nil, internal(err)
	}
	lastPage := model.LastPage(total, filter.Limit)
	if filter.Page > lastPage {
		return nil, ErrInvalidPage
	}
	return &ProductPage{Items: products, CurrentPage: filter.Page, LastPage: lastPage}, nil
}

func (c *CatalogService) Product(ctx context.Context, id uint) (*model.Product, error) {
	product, err := c.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrProductNotFound)
	}
	return product, nil
}

// AddReview author/email 沒填時使用留言者的 profile
//
// 錯誤:
//   - 400: rate 不在 1..5, text 空白, 圖片格式不支援
//   - 404: 商品不存在
func (c *CatalogService) AddReview(ctx context.Context, productID, profileID uint, in ReviewInput) (*model.Review, error) {
	exists, err := c.productRepo.ExistsProduct(ctx, productID)
	if err != nil {
		return nil, internal(err)
	}
	if !exists {
		return nil, ErrProductNotFound
	}

	problems := map[string]string{}
	if in.Rate < 1 || in.Rate > 5 {
		problems["rate"] = "Ensure this value is between 1 and 5."
	}
	if strings.TrimSpace(in.Text) == "" {
		problems["text"] = "This field may not be blank."
	}
	if len(problems) > 0 {
		return nil, invalid(problems)
	}

	review := &model.Review{
		ProductID: productID,
		Author:    strings.TrimSpace(in.Author),
		Email:     strings.TrimSpace(in.Email),
		Text:      in.Text,
		Rate:      in.Rate,
		Date:      c.now().UTC(),
	}
	if review.Author == "" || review.Email == "" {
		profile, err := c.profileRepo.GetProfileByID(ctx, profileID)
		if err != nil {
			return nil, notFoundOr(err, ErrProfileNotFound)
		}
		if review.Author == "" {
			review.Author = profile.FullName
		}
		if review.Email == "" && profile.Email != nil {
			review.Email = *profile.Email
		}
	}

	images, err := c.saveReviewImages(ctx, in.Images)
	if err != nil {
		return nil, err
	}
	review.Images = images

	if err := c.reviewRepo.CreateReview(ctx, review); err != nil {
		c.dropMedia(images)
		return nil, internal(err)
	}
	return review, nil
}

// saveReviewImages 平行寫入, 任一失敗就把已寫入的檔案清掉
func (c *CatalogService) saveReviewImages(ctx context.Context, uploads []Upload) ([]model.ReviewImage, error) {
	images := make([]model.ReviewImage, len(uploads))
	if len(uploads) == 0 {
		return images, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, up := range uploads {
		i, up := i, up
		g.Go(func() error {
			src, err := c.media.Save(gctx, reviewImageDir, up.Filename, up.Reader)
			if err != nil {
				return err
			}
			images[i] = model.ReviewImage{Src: src, Alt: up.Filename}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		c.dropMedia(images)
		if errors.Is(err, storage.ErrUnsupportedMedia) {
			return nil, invalid(map[string]string{"images": "Upload a valid image."})
		}
		return nil, internal(err)
	}
	return images, nil
}

func (c *CatalogService) dropMedia(images []model.ReviewImage) {
	for _, img := range images {
		if img.Src == "" {
			continue
		}
		if err := c.media.Delete(context.Background(), img.Src); err != nil {
			c.logger.Warn().Err(err).Str("src", img.Src).Msg("failed to remove review image")
		}
	}
}

func (c *CatalogService) Tags(ctx context.Context) ([]model.Tag, error) {
	tags, err := c.catalogRepo.ListTags(ctx)
	if err != nil {
		return nil, internal(err)
	}
	return tags, nil
}

func (c *CatalogService) Tag(ctx context.Context, id uint) (*model.Tag, error) {
	tag, err := c.catalogRepo.GetTagByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrTagNotFound)
	}
	return tag, nil
}

func (c *CatalogService) Categories(ctx context.Context) ([]model.Category, error) {
	categories, err := c.catalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, internal(err)
	}
	return categories, nil
}

func (c *CatalogService) Popular(ctx context.Context) ([]model.Product, error) {
	products, err := c.productRepo.ListPopularProducts(ctx, PopularProductsSize)
	if err != nil {
		return nil, internal(err)
	}
	return products, nil
}

func (c *CatalogService) Limited(ctx context.Context) ([]model.Product, error) {
	products, err := c.productRepo.ListLimitedProducts(ctx, LimitedProductsSize)
	if err != nil {
		return nil, internal(err)
	}
	return products, nil
}

// Sales 以 UTC 當天判斷是否在特價期間
func (c *CatalogService) Sales(ctx context.Context, page int) (*SalePage, error) {
	if page < 1 {
		return nil, invalid(map[string]string{"currentPage": "must be a positive integer"})
	}
	now := c.now().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	sales, total, err := c.catalogRepo.ListActiveSales(ctx, day, (page-1)*SalesPageSize, SalesPageSize)
	if err != nil {
		return nil, internal(err)
	}
	lastPage := model.LastPage(total, SalesPageSize)
	if page > lastPage {
		return nil, ErrInvalidPage
	}
	return &SalePage{Items: sales, CurrentPage: page, LastPage: lastPage}, nil
}

func (c *CatalogService) Banners(ctx context.Context) ([]BannerCard, error) {
	banners, err := c.catalogRepo.ListBanners(ctx)
	if err != nil {
		return nil, internal(err)
	}
	ids := make([]uint, 0, len(banners))
	for _, b := range banners {
		ids = append(ids, b.ProductID)
	}
	counts, err := c.catalogRepo.CountReviewsByProductIDs(ctx, ids)
	if err != nil {
		return nil, internal(err)
	}

	cards := make([]BannerCard, 0, len(banners))
	for _, b := range banners {
		cards = append(cards, BannerCard{ID: b.ID, Product: *b.Product, ReviewCount: counts[b.ProductID]})
	}
	return cards, nil
}

var _ ICatalogService = (*CatalogService)(nil)
