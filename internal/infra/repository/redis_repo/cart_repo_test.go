package redis_repo

import (
	"context"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/megano/internal/domain/model"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type CartRepoTestSuite struct {
	suite.Suite
	mr       *miniredis.Miniredis
	cartRepo *CartRepo
}

func (suite *CartRepoTestSuite) SetupTest() {
	mr, rdb := setupTestRedis(suite.T())
	suite.mr = mr
	suite.cartRepo = NewCartRepo(rdb, time.Hour)
}

func TestCartRepoTestSuite(t *testing.T) {
	suite.Run(t, new(CartRepoTestSuite))
}

func (suite *CartRepoTestSuite) TestAddIncrements() {
	ctx := context.Background()

	n, err := suite.cartRepo.Add(ctx, "s1", 1, 2)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, n)

	n, err = suite.cartRepo.Add(ctx, "s1", 1, 3)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 5, n)

	_, err = suite.cartRepo.Add(ctx, "s1", 7, 1)
	assert.NoError(suite.T(), err)

	got, err := suite.cartRepo.Get(ctx, "s1")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []model.CartItem{{ProductID: 1, Count: 5}, {ProductID: 7, Count: 1}}, got.Items)

	// 購物車跟著 session 過期
	assert.Equal(suite.T(), time.Hour, suite.mr.TTL(generateCartItemKey("s1")))
}

func (suite *CartRepoTestSuite) TestAddNegativeRemovesItem() {
	ctx := context.Background()
	suite.cartRepo.Add(ctx, "s1", 1, 2)

	n, err := suite.cartRepo.Add(ctx, "s1", 1, -5)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, n)

	got, _ := suite.cartRepo.Get(ctx, "s1")
	assert.Empty(suite.T(), got.Items)
}

func (suite *CartRepoTestSuite) TestRemove() {
	ctx := context.Background()
	suite.cartRepo.Add(ctx, "s1", 4, 1)
	suite.cartRepo.Add(ctx, "s1", 5, 2)

	assert.NoError(suite.T(), suite.cartRepo.Remove(ctx, "s1", 4))
	assert.NoError(suite.T(), suite.cartRepo.Remove(ctx, "s1", 99))

	got, _ := suite.cartRepo.Get(ctx, "s1")
	assert.Equal(suite.T(), []model.CartItem{{ProductID: 5, Count: 2}}, got.Items)
}

func (suite *CartRepoTestSuite) TestSessionsAreIsolated() {
	ctx := context.Background()
	suite.cartRepo.Add(ctx, "s1", 1, 1)
	suite.cartRepo.Add(ctx, "s2", 2, 1)

	got, _ := suite.cartRepo.Get(ctx, "s2")
	assert.Equal(suite.T(), "s2", got.SessionID)
	assert.Equal(suite.T(), []model.CartItem{{ProductID: 2, Count: 1}}, got.Items)
}

func (suite *CartRepoTestSuite) TestClearCart() {
	ctx := context.Background()
	suite.cartRepo.Add(ctx, "s1", 1, 2)

	assert.NoError(suite.T(), suite.cartRepo.Clear(ctx, "s1"))
	got, err := suite.cartRepo.Get(ctx, "s1")
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), got.Items)

	// 清空不存在的購物車不報錯
	assert.NoError(suite.T(), suite.cartRepo.Clear(ctx, "missing"))
}

func (suite *CartRepoTestSuite) TestMove() {
	ctx := context.Background()
	suite.cartRepo.Add(ctx, "old", 3, 4)

	assert.NoError(suite.T(), suite.cartRepo.Move(ctx, "old", "new"))

	got, _ := suite.cartRepo.Get(ctx, "new")
	assert.Equal(suite.T(), []model.CartItem{{ProductID: 3, Count: 4}}, got.Items)
	got, _ = suite.cartRepo.Get(ctx, "old")
	assert.Empty(suite.T(), got.Items)

	// 來源沒有購物車時不動目標
	suite.cartRepo.Add(ctx, "other", 1, 1)
	assert.NoError(suite.T(), suite.cartRepo.Move(ctx, "empty", "other"))
	got, _ = suite.cartRepo.Get(ctx, "other")
	assert.Len(suite.T(), got.Items, 1)
}
