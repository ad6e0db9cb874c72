package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type ProductSortField string

const (
	SortByPrice   ProductSortField = "price"
	SortByRating  ProductSortField = "rating"
	SortByReviews ProductSortField = "reviews"
	SortByDate    ProductSortField = "date"
	SortByTitle   ProductSortField = "title"
)

func (s ProductSortField) IsValid() bool {
	switch s {
	case SortByPrice, SortByRating, SortByReviews, SortByDate, SortByTitle:
		return true
	}
	return false
}

const (
	DefaultCatalogPageSize = 20
	MaxCatalogPageSize     = 1000
)

// ProductFilter 目錄查詢條件, 只能透過已列舉的欄位組出查詢
type ProductFilter struct {
	Name          string
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	FreeDelivery  bool
	Available     bool
	CategoryID    *uint
	SubCategoryID *uint
	Sort          ProductSortField
	SortDesc      bool
	Page          int
	Limit         int
}

// Validate 回傳欄位錯誤, 沒有錯誤時為 nil
func (f *ProductFilter) Validate() map[string]string {
	problems := map[string]string{}
	if f.MinPrice != nil && f.MinPrice.IsNegative() {
		problems["filter[minPrice]"] = "must not be negative"
	}
	if f.MaxPrice != nil && f.MaxPrice.IsNegative() {
		problems["filter[maxPrice]"] = "must not be negative"
	}
	if f.MinPrice != nil && f.MaxPrice != nil && f.MinPrice.GreaterThan(*f.MaxPrice) {
		problems["filter[minPrice]"] = "must not exceed filter[maxPrice]"
	}
	if f.Sort != "" && !f.Sort.IsValid() {
		problems["sort"] = fmt.Sprintf("unsupported sort field %q", f.Sort)
	}
	if f.Page < 1 {
		problems["currentPage"] = "must be a positive integer"
	}
	if f.Limit < 1 || f.Limit > MaxCatalogPageSize {
		problems["limit"] = fmt.Sprintf("must be between 1 and %d", MaxCatalogPageSize)
	}
	if len(problems) == 0 {
		return nil
	}
	return problems
}

func (f *ProductFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// LastPage 至少為 1, 空結果也視為一頁
func LastPage(total int64, size int) int {
	if size <= 0 || total <= 0 {
		return 1
	}
	return int((total + int64(size) - 1) / int64(size))
}
