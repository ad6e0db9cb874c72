package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/megano/internal/domain/model"
	er "github.com/RoyceAzure/lab/megano/internal/pkg/rj_error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	store *fakeStore
	media *fakeMedia
	svc   *CatalogService
	now   time.Time
}

func (s *CatalogServiceTestSuite) SetupTest() {
	s.store = newFakeStore()
	s.media = &fakeMedia{}
	s.svc = NewCatalogService(s.store, s.store, s.store, s.store, s.media, nil)
	s.now = time.Date(2024, 1, 15, 18, 30, 0, 0, time.UTC)
	s.svc.now = func() time.Time { return s.now }

	s.store.addProduct(1, "500", false)
	s.store.addProduct(2, "800", true)
	s.store.addProduct(3, "120.50", false)
	s.store.tags[1] = model.Tag{TagID: 1, Name: "new"}
}

func TestCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}

func (s *CatalogServiceTestSuite) filter(page, limit int) model.ProductFilter {
	return model.ProductFilter{Page: page, Limit: limit}
}

func (s *CatalogServiceTestSuite) TestCatalogPaging() {
	ctx := context.Background()

	page, err := s.svc.Catalog(ctx, s.filter(1, 2))
	s.Require().NoError(err)
	s.Len(page.Items, 2)
	s.Equal(1, page.CurrentPage)
	s.Equal(2, page.LastPage)

	page, err = s.svc.Catalog(ctx, s.filter(2, 2))
	s.Require().NoError(err)
	s.Require().Len(page.Items, 1)
	s.Equal(uint(3), page.Items[0].ID)

	_, err = s.svc.Catalog(ctx, s.filter(3, 2))
	s.Require().ErrorIs(err, ErrInvalidPage)
}

func (s *CatalogServiceTestSuite) TestCatalogEmptyFirstPage() {
	f := s.filter(1, 20)
	f.Name = "nothing matches"
	page, err := s.svc.Catalog(context.Background(), f)
	s.Require().NoError(err)
	s.Empty(page.Items)
	s.Equal(1, page.LastPage)
}

func (s *CatalogServiceTestSuite) TestCatalogInvalidFilter() {
	minPrice := decimal.NewFromInt(10)
	maxPrice := decimal.NewFromInt(5)
	f := s.filter(1, 20)
	f.MinPrice, f.MaxPrice = &minPrice, &maxPrice
	f.Sort = "weight"

	_, err := s.svc.Catalog(context.Background(), f)
	ae, ok := er.As(err)
	s.Require().True(ok)
	s.Equal(er.BadRequestCode, ae.Code)
	s.Contains(ae.Details, "filter[minPrice]")
	s.Contains(ae.Details, "sort")
}

func (s *CatalogServiceTestSuite) TestProductAndTag() {
	ctx := context.Background()
	product, err := s.svc.Product(ctx, 2)
	s.Require().NoError(err)
	s.Equal("800", product.Price.String())

	_, err = s.svc.Product(ctx, 42)
	s.ErrorIs(err, ErrProductNotFound)

	tag, err := s.svc.Tag(ctx, 1)
	s.Require().NoError(err)
	s.Equal("new", tag.Name)

	_, err = s.svc.Tag(ctx, 2)
	s.ErrorIs(err, ErrTagNotFound)
}

func (s *CatalogServiceTestSuite) TestPopularAndLimited() {
	ctx := context.Background()
	popular, err := s.svc.Popular(ctx)
	s.Require().NoError(err)
	s.Len(popular, 3)

	limited, err := s.svc.Limited(ctx)
	s.Require().NoError(err)
	s.Require().Len(limited, 1)
	s.Equal(uint(2), limited[0].ID)
}

func (s *CatalogServiceTestSuite) TestAddReviewDefaultsFromProfile() {
	ctx := context.Background()
	user := s.store.addUser("ivan", "secret", strPtr("ivan@example.com"))

	review, err := s.svc.AddReview(ctx, 1, user.Profile.ID, ReviewInput{Text: "good", Rate: 4})
	s.Require().NoError(err)
	s.Equal("ivan", review.Author)
	s.Equal("ivan@example.com", review.Email)
	s.Equal(s.now, review.Date)
	s.Len(s.store.reviews, 1)

	review, err = s.svc.AddReview(ctx, 1, user.Profile.ID, ReviewInput{Author: "Anon", Email: "a@b.c", Text: "ok", Rate: 5})
	s.Require().NoError(err)
	s.Equal("Anon", review.Author)
	s.Equal("a@b.c", review.Email)
}

func (s *CatalogServiceTestSuite) TestAddReviewRejected() {
	ctx := context.Background()
	user := s.store.addUser("ivan", "secret", nil)

	_, err := s.svc.AddReview(ctx, 42, user.Profile.ID, ReviewInput{Text: "x", Rate: 3})
	s.Require().ErrorIs(err, ErrProductNotFound)

	_, err = s.svc.AddReview(ctx, 1, user.Profile.ID, ReviewInput{Text: " ", Rate: 6})
	ae, ok := er.As(err)
	s.Require().True(ok)
	s.Equal(er.BadRequestCode, ae.Code)
	s.Contains(ae.Details, "rate")
	s.Contains(ae.Details, "text")
	s.Empty(s.store.reviews)
}

func (s *CatalogServiceTestSuite) TestAddReviewImages() {
	ctx := context.Background()
	user := s.store.addUser("ivan", "secret", nil)

	review, err := s.svc.AddReview(ctx, 1, user.Profile.ID, ReviewInput{
		Text: "with photos",
		Rate: 5,
		Images: []Upload{
			{Filename: "a.png", Reader: strings.NewReader("a")},
			{Filename: "b.jpg", Reader: strings.NewReader("b")},
		},
	})
	s.Require().NoError(err)
	s.Require().Len(review.Images, 2)
	s.Equal("a.png", review.Images[0].Alt)
	s.Equal("b.jpg", review.Images[1].Alt)

	_, err = s.svc.AddReview(ctx, 1, user.Profile.ID, ReviewInput{
		Text: "bad file",
		Rate: 5,
		Images: []Upload{
			{Filename: "c.png", Reader: strings.NewReader("c")},
			{Filename: "d.exe", Reader: strings.NewReader("d")},
		},
	})
	ae, ok := er.As(err)
	s.Require().True(ok)
	s.Equal(er.BadRequestCode, ae.Code)
	s.Contains(ae.Details, "images")
	s.Len(s.store.reviews, 1)
	s.Len(s.media.deleted, 1, "stored image of the failed review is removed")
}

func (s *CatalogServiceTestSuite) TestSales() {
	ctx := context.Background()
	day := func(m time.Month, d int) time.Time { return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC) }
	for i := 0; i < 12; i++ {
		s.store.sales = append(s.store.sales, model.Sale{ID: uint(i + 1), ProductID: 1, DateFrom: day(1, 1), DateTo: day(1, 31)})
	}
	s.store.sales = append(s.store.sales,
		model.Sale{ID: 50, ProductID: 2, DateFrom: day(2, 1), DateTo: day(2, 28)},
		model.Sale{ID: 51, ProductID: 2, DateFrom: day(1, 1), DateTo: day(1, 15)},
	)

	page, err := s.svc.Sales(ctx, 1)
	s.Require().NoError(err)
	s.Len(page.Items, SalesPageSize)
	s.Equal(2, page.LastPage)

	page, err = s.svc.Sales(ctx, 2)
	s.Require().NoError(err)
	s.Len(page.Items, 3, "sale ending today is still active")

	_, err = s.svc.Sales(ctx, 3)
	s.ErrorIs(err, ErrInvalidPage)

	_, err = s.svc.Sales(ctx, 0)
	s.ErrorIs(err, ErrInvalidRequest)
}

func (s *CatalogServiceTestSuite) TestBannersCarryReviewCount() {
	p2 := s.store.products[2]
	s.store.banners = []model.Banner{{ID: 1, ProductID: 2, Product: &p2}}
	s.store.reviews = []model.Review{{ProductID: 2}, {ProductID: 2}, {ProductID: 1}}

	cards, err := s.svc.Banners(context.Background())
	s.Require().NoError(err)
	s.Require().Len(cards, 1)
	s.Equal(uint(1), cards[0].ID)
	s.Equal(uint(2), cards[0].Product.ID)
	s.Equal(int64(2), cards[0].ReviewCount)
}

func TestCatalogService_TagsAndCategoriesFailure(t *testing.T) {
	svc := NewCatalogService(newFakeStore(), failingCatalog{}, nil, nil, nil, nil)

	_, err := svc.Tags(context.Background())
	ae, ok := er.As(err)
	require.True(t, ok)
	assert.Equal(t, er.InternalErrorCode, ae.Code)

	_, err = svc.Categories(context.Background())
	assert.ErrorIs(t, err, errFakeDown)
}

type failingCatalog struct {
	*fakeStore
}

func (failingCatalog) ListTags(context.Context) ([]model.Tag, error) {
	return nil, errFakeDown
}

func (failingCatalog) ListCategories(context.Context) ([]model.Category, error) {
	return nil, errFakeDown
}
