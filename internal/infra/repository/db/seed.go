package db

import (
	"context"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/megano/internal/config"
	"github.com/RoyceAzure/lab/megano/internal/domain/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const seedDateLayout = "2006-01-02"

func parseSeedDecimal(field, v string) (decimal.Decimal, error) {
	if v == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("seed %s %q: %w", field, v, err)
	}
	return d, nil
}

func parseSeedTime(field, v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, fmt.Errorf("seed %s is required", field)
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(seedDateLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("seed %s %q: %w", field, v, err)
	}
	return t.UTC(), nil
}

// SeedCatalog 冪等寫入目錄資料, 以 seed 檔中的 id 為準覆寫
func SeedCatalog(ctx context.Context, conn *gorm.DB, seed *config.SeedConfig) error {
	upsert := clause.OnConflict{UpdateAll: true}

	return conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range seed.Categories {
			subs := make([]model.SubCategory, 0, len(c.SubCategories))
			for _, s := range c.SubCategories {
				var existing model.SubCategory
				found := tx.Limit(1).Find(&existing, s.ID).RowsAffected > 0
				imageID, err := seedCategoryImage(tx, found, existing.ImageID, s.Image)
				if err != nil {
					return err
				}
				sub := model.SubCategory{ID: s.ID, Title: s.Title, ImageID: imageID}
				if err := tx.Omit("Image").Clauses(upsert).Create(&sub).Error; err != nil {
					return err
				}
				subs = append(subs, sub)
			}

			var existing model.Category
			found := tx.Limit(1).Find(&existing, c.ID).RowsAffected > 0
			imageID, err := seedCategoryImage(tx, found, existing.ImageID, c.Image)
			if err != nil {
				return err
			}
			category := model.Category{ID: c.ID, Title: c.Title, ImageID: imageID}
			if err := tx.Omit(clause.Associations).Clauses(upsert).Create(&category).Error; err != nil {
				return err
			}
			if err := tx.Model(&category).Omit("SubCategories.*").Association("SubCategories").Replace(subs); err != nil {
				return err
			}
		}

		for _, t := range seed.Tags {
			tag := model.Tag{TagID: t.ID, Name: t.Name}
			if err := tx.Clauses(upsert).Create(&tag).Error; err != nil {
				return err
			}
		}

		for _, p := range seed.Products {
			if err := seedProduct(tx, p, upsert); err != nil {
				return err
			}
		}

		for _, s := range seed.Sales {
			price, err := parseSeedDecimal("sale price", s.Price)
			if err != nil {
				return err
			}
			salePrice, err := parseSeedDecimal("sale sale_price", s.SalePrice)
			if err != nil {
				return err
			}
			from, err := parseSeedTime("sale date_from", s.DateFrom)
			if err != nil {
				return err
			}
			to, err := parseSeedTime("sale date_to", s.DateTo)
			if err != nil {
				return err
			}
			sale := model.Sale{ID: s.ID, ProductID: s.Product, Price: price, SalePrice: salePrice, DateFrom: from, DateTo: to}
			if err := tx.Omit("Product").Clauses(upsert).Create(&sale).Error; err != nil {
				return err
			}
		}

		for _, b := range seed.Banners {
			banner := model.Banner{ID: b.ID, ProductID: b.Product}
			if err := tx.Omit("Product").Clauses(upsert).Create(&banner).Error; err != nil {
				return err
			}
		}

		return resetSequences(tx)
	})
}

// seedCategoryImage 已有圖片時原地更新, 避免重跑 seed 產生孤兒圖片
func seedCategoryImage(tx *gorm.DB, found bool, imageID *uint, img config.SeedImage) (*uint, error) {
	if img.Src == "" {
		return nil, nil
	}
	if found && imageID != nil {
		err := tx.Model(&model.ImageCategory{}).Where("id = ?", *imageID).
			Updates(map[string]any{"src": img.Src, "alt": img.Alt}).Error
		return imageID, err
	}
	image := model.ImageCategory{Src: img.Src, Alt: img.Alt}
	if err := tx.Create(&image).Error; err != nil {
		return nil, err
	}
	return &image.ID, nil
}

func seedProduct(tx *gorm.DB, p config.SeedProduct, upsert clause.OnConflict) error {
	price, err := parseSeedDecimal("product price", p.Price)
	if err != nil {
		return err
	}
	rating, err := parseSeedDecimal("product rating", p.Rating)
	if err != nil {
		return err
	}
	date, err := parseSeedTime("product date", p.Date)
	if err != nil {
		return err
	}

	product := model.Product{
		ID:              p.ID,
		CategoryID:      p.Category,
		Price:           price,
		Count:           p.Count,
		Date:            date,
		Title:           p.Title,
		Description:     p.Description,
		FullDescription: p.FullDescription,
		FreeDelivery:    p.FreeDelivery,
		Rating:          rating,
		Available:       p.Available,
		LimitedEdition:  p.LimitedEdition,
		SortIndex:       p.SortIndex,
		SalesCount:      p.SalesCount,
	}
	if err := tx.Omit(clause.Associations).Clauses(upsert).Create(&product).Error; err != nil {
		return err
	}

	// 圖片與規格整批重建
	if err := tx.Where("product_id = ?", product.ID).Delete(&model.Image{}).Error; err != nil {
		return err
	}
	for _, img := range p.Images {
		if err := tx.Create(&model.Image{ProductID: product.ID, Src: img.Src, Alt: img.Alt}).Error; err != nil {
			return err
		}
	}
	if err := tx.Where("product_id = ?", product.ID).Delete(&model.Specification{}).Error; err != nil {
		return err
	}
	for _, spec := range p.Specifications {
		if err := tx.Create(&model.Specification{ProductID: product.ID, Name: spec.Name, Value: spec.Value}).Error; err != nil {
			return err
		}
	}

	tags := make([]model.Tag, 0, len(p.Tags))
	for _, id := range p.Tags {
		tags = append(tags, model.Tag{TagID: id})
	}
	return tx.Model(&product).Omit("Tags.*").Association("Tags").Replace(tags)
}

// resetSequences 明確指定 id 寫入後, postgres 的 sequence 需要往前推
func resetSequences(tx *gorm.DB) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	tables := map[string]string{
		"categories":       "id",
		"sub_categories":   "id",
		"tags":             "tag_id",
		"products":         "id",
		"sales":            "id",
		"banners":          "id",
	}
	for table, col := range tables {
		sql := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%s', '%s'), COALESCE((SELECT MAX(%s) FROM %s), 0) + 1, false)",
			table, col, col, table)
		if err := tx.Exec(sql).Error; err != nil {
			return err
		}
	}
	return nil
}
