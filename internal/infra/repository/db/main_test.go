package db

import (
	"context"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/megano/internal/config"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 每個測試一個獨立的記憶體資料庫
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	// :memory: 每條連線各自一個資料庫
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, NewDbDao(conn).InitMigrate())
	return conn
}

func testSeed() *config.SeedConfig {
	return &config.SeedConfig{
		Categories: []config.SeedCategory{
			{
				ID: 1, Title: "Electronics", Image: config.SeedImage{Src: "/media/categories/el.png", Alt: "el"},
				SubCategories: []config.SeedSubCategory{
					{ID: 1, Title: "Phones", Image: config.SeedImage{Src: "/media/categories/ph.png", Alt: "ph"}},
				},
			},
			{ID: 2, Title: "Books"},
		},
		Tags: []config.SeedTag{{ID: 1, Name: "new"}, {ID: 2, Name: "hit"}},
		Products: []config.SeedProduct{
			{
				ID: 1, Category: 1, Price: "500", Count: 10, Date: "2024-01-10", Title: "Phone Alpha",
				Description: "alpha", FreeDelivery: true, Available: true, SortIndex: 1, SalesCount: 5, Rating: "4.0",
				Tags:           []uint{1},
				Images:         []config.SeedImage{{Src: "/media/products/a.png", Alt: "a"}},
				Specifications: []config.SeedSpecification{{Name: "RAM", Value: "8GB"}},
			},
			{
				ID: 2, Category: 1, Price: "800", Count: 3, Date: "2024-02-10", Title: "Phone Beta",
				Available: true, LimitedEdition: true, SortIndex: 1, SalesCount: 20, Rating: "3.5",
				Tags: []uint{1, 2},
			},
			{
				ID: 3, Category: 2, Price: "120.50", Count: 0, Date: "2023-12-01", Title: "Go Book",
				Available: false, SortIndex: 0, SalesCount: 1, Rating: "5",
			},
		},
		Sales: []config.SeedSale{
			{ID: 1, Product: 1, Price: "500", SalePrice: "450", DateFrom: "2024-01-01", DateTo: "2024-01-31"},
			{ID: 2, Product: 2, Price: "800", SalePrice: "700", DateFrom: "2024-02-01", DateTo: "2024-02-28"},
		},
		Banners: []config.SeedBanner{{ID: 1, Product: 2}},
	}
}

func newSeededDB(t *testing.T) *UnifiedDBImpl {
	t.Helper()
	conn := newTestDB(t)
	require.NoError(t, SeedCatalog(context.Background(), conn, testSeed()))
	return NewUnifiedDB(conn)
}

func fixedNow() time.Time {
	return time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
}
