package dto

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/RoyceAzure/lab/megano/internal/domain/model"
	"github.com/shopspring/decimal"
)

// ParsePage currentPage 沒帶時為 1
func ParsePage(q url.Values) (int, map[string]string) {
	raw := strings.TrimSpace(q.Get("currentPage"))
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, map[string]string{"currentPage": "must be a positive integer"}
	}
	return page, nil
}

func parseID(q url.Values, key string, problems map[string]string) *uint {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		problems[key] = "must be a positive integer"
		return nil
	}
	v := uint(id)
	return &v
}

func parsePrice(q url.Values, key string, problems map[string]string) *decimal.Decimal {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		problems[key] = "must be a number"
		return nil
	}
	return &d
}

// ParseProductFilter 只認得列舉的查詢參數, 其他參數忽略
//
// 回傳的 filter 仍需經過 Validate
func ParseProductFilter(q url.Values) (model.ProductFilter, map[string]string) {
	problems := map[string]string{}
	f := model.ProductFilter{
		Name:          strings.TrimSpace(q.Get("filter[name]")),
		MinPrice:      parsePrice(q, "filter[minPrice]", problems),
		MaxPrice:      parsePrice(q, "filter[maxPrice]", problems),
		FreeDelivery:  q.Get("filter[freeDelivery]") == "true",
		Available:     q.Get("filter[available]") == "true",
		CategoryID:    parseID(q, "category", problems),
		SubCategoryID: parseID(q, "subcategory", problems),
		Sort:          model.ProductSortField(strings.TrimSpace(q.Get("sort"))),
		SortDesc:      q.Get("sortType") == "dec",
		Limit:         model.DefaultCatalogPageSize,
	}

	page, pageProblems := ParsePage(q)
	for k, v := range pageProblems {
		problems[k] = v
	}
	f.Page = page

	if raw := strings.TrimSpace(q.Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			problems["limit"] = "must be an integer"
		} else {
			f.Limit = limit
		}
	}

	if len(problems) == 0 {
		return f, nil
	}
	return f, problems
}
