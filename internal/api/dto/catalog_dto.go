package dto

import (
	"time"

	"github.com/RoyceAzure/lab/megano/internal/domain/model"
	"github.com/RoyceAzure/lab/megano/internal/service"
	"github.com/shopspring/decimal"
)

const saleDateLayout = "2006-01-02"

type ImageDTO struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

type TagDTO struct {
	TagID uint   `json:"tag_id"`
	Name  string `json:"name"`
}

type ReviewDTO struct {
	Author string     `json:"author"`
	Email  string     `json:"email"`
	Text   string     `json:"text"`
	Rate   int        `json:"rate"`
	Date   time.Time  `json:"date"`
	Images []ImageDTO `json:"images,omitempty"`
}

type SpecificationDTO struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ProductDTO 商品卡片, 目錄/熱門/購物車/訂單共用
type ProductDTO struct {
	ID              uint               `json:"id"`
	Category        uint               `json:"category"`
	Price           string             `json:"price"`
	Count           int                `json:"count"`
	Date            time.Time          `json:"date"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	FullDescription string             `json:"fullDescription"`
	FreeDelivery    bool               `json:"freeDelivery"`
	Images          []ImageDTO         `json:"images"`
	Tags            []TagDTO           `json:"tags"`
	Reviews         []ReviewDTO        `json:"reviews"`
	Specifications  []SpecificationDTO `json:"specifications"`
	Rating          string             `json:"rating"`
}

type CatalogDTO struct {
	Items       []ProductDTO `json:"items"`
	CurrentPage int          `json:"currentPage"`
	LastPage    int          `json:"lastPage"`
}

type SubCategoryDTO struct {
	ID    uint      `json:"id"`
	Title string    `json:"title"`
	Image *ImageDTO `json:"image"`
}

type CategoryDTO struct {
	ID            uint             `json:"id"`
	Title         string           `json:"title"`
	Image         *ImageDTO        `json:"image"`
	SubCategories []SubCategoryDTO `json:"subcategories"`
}

type SaleDTO struct {
	ID        uint       `json:"id"`
	Price     string     `json:"price"`
	SalePrice string     `json:"salePrice"`
	DateFrom  string     `json:"dateFrom"`
	DateTo    string     `json:"dateTo"`
	Title     string     `json:"title"`
	Images    []ImageDTO `json:"images"`
}

type SalesDTO struct {
	Items       []SaleDTO `json:"items"`
	CurrentPage int       `json:"currentPage"`
	LastPage    int       `json:"lastPage"`
}

type BannerTagDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// BannerDTO reviews 為評論數
type BannerDTO struct {
	ID           uint           `json:"id"`
	Category     uint           `json:"category"`
	Price        string         `json:"price"`
	Count        int            `json:"count"`
	Date         time.Time      `json:"date"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	FreeDelivery bool           `json:"freeDelivery"`
	Images       []ImageDTO     `json:"images"`
	Tags         []BannerTagDTO `json:"tags"`
	Reviews      int64          `json:"reviews"`
	Rating       string         `json:"rating"`
}

type CreateReviewDTO struct {
	Author string `json:"author" validate:"omitempty,max=255"`
	Email  string `json:"email" validate:"omitempty,email,max=254"`
	Text   string `json:"text" validate:"required"`
	Rate   int    `json:"rate" validate:"required,min=1,max=5"`
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func NewImageDTOs(images []model.Image) []ImageDTO {
	res := make([]ImageDTO, 0, len(images))
	for _, img := range images {
		res = append(res, ImageDTO{Src: img.Src, Alt: img.Alt})
	}
	return res
}

func NewTagDTO(t model.Tag) TagDTO {
	return TagDTO{TagID: t.TagID, Name: t.Name}
}

func NewTagDTOs(tags []model.Tag) []TagDTO {
	res := make([]TagDTO, 0, len(tags))
	for _, t := range tags {
		res = append(res, NewTagDTO(t))
	}
	return res
}

func NewReviewDTO(r model.Review) ReviewDTO {
	res := ReviewDTO{
		Author: r.Author,
		Email:  r.Email,
		Text:   r.Text,
		Rate:   r.Rate,
		Date:   r.Date,
	}
	for _, img := range r.Images {
		res.Images = append(res.Images, ImageDTO{Src: img.Src, Alt: img.Alt})
	}
	return res
}

func NewProductDTO(p model.Product) ProductDTO {
	res := ProductDTO{
		ID:              p.ID,
		Category:        p.CategoryID,
		Price:           money(p.Price),
		Count:           p.Count,
		Date:            p.Date,
		Title:           p.Title,
		Description:     p.Description,
		FullDescription: p.FullDescription,
		FreeDelivery:    p.FreeDelivery,
		Images:          NewImageDTOs(p.Images),
		Tags:            NewTagDTOs(p.Tags),
		Reviews:         make([]ReviewDTO, 0, len(p.Reviews)),
		Specifications:  make([]SpecificationDTO, 0, len(p.Specifications)),
		Rating:          p.Rating.StringFixed(1),
	}
	for _, r := range p.Reviews {
		res.Reviews = append(res.Reviews, NewReviewDTO(r))
	}
	for _, s := range p.Specifications {
		res.Specifications = append(res.Specifications, SpecificationDTO{Name: s.Name, Value: s.Value})
	}
	return res
}

func NewProductDTOs(products []model.Product) []ProductDTO {
	res := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		res = append(res, NewProductDTO(p))
	}
	return res
}

func NewCatalogDTO(page *service.ProductPage) CatalogDTO {
	return CatalogDTO{
		Items:       NewProductDTOs(page.Items),
		CurrentPage: page.CurrentPage,
		LastPage:    page.LastPage,
	}
}

func categoryImage(img *model.ImageCategory) *ImageDTO {
	if img == nil {
		return nil
	}
	return &ImageDTO{Src: img.Src, Alt: img.Alt}
}

func NewCategoryDTOs(categories []model.Category) []CategoryDTO {
	res := make([]CategoryDTO, 0, len(categories))
	for _, c := range categories {
		dto := CategoryDTO{
			ID:            c.ID,
			Title:         c.Title,
			Image:         categoryImage(c.Image),
			SubCategories: make([]SubCategoryDTO, 0, len(c.SubCategories)),
		}
		for _, sub := range c.SubCategories {
			dto.SubCategories = append(dto.SubCategories, SubCategoryDTO{
				ID:    sub.ID,
				Title: sub.Title,
				Image: categoryImage(sub.Image),
			})
		}
		res = append(res, dto)
	}
	return res
}

func NewSaleDTO(s model.Sale) SaleDTO {
	res := SaleDTO{
		ID:        s.ID,
		Price:     money(s.Price),
		SalePrice: money(s.SalePrice),
		DateFrom:  s.DateFrom.Format(saleDateLayout),
		DateTo:    s.DateTo.Format(saleDateLayout),
		Images:    []ImageDTO{},
	}
	if s.Product != nil {
		res.Title = s.Product.Title
		res.Images = NewImageDTOs(s.Product.Images)
	}
	return res
}

func NewSalesDTO(page *service.SalePage) SalesDTO {
	res := SalesDTO{
		Items:       make([]SaleDTO, 0, len(page.Items)),
		CurrentPage: page.CurrentPage,
		LastPage:    page.LastPage,
	}
	for _, s := range page.Items {
		res.Items = append(res.Items, NewSaleDTO(s))
	}
	return res
}

func NewBannerDTO(card service.BannerCard) BannerDTO {
	p := card.Product
	res := BannerDTO{
		ID:           card.ID,
		Category:     p.CategoryID,
		Price:        money(p.Price),
		Count:        p.Count,
		Date:         p.Date,
		Title:        p.Title,
		Description:  p.Description,
		FreeDelivery: p.FreeDelivery,
		Images:       NewImageDTOs(p.Images),
		Tags:         make([]BannerTagDTO, 0, len(p.Tags)),
		Reviews:      card.ReviewCount,
		Rating:       p.Rating.StringFixed(1),
	}
	for _, t := range p.Tags {
		res.Tags = append(res.Tags, BannerTagDTO{ID: t.TagID, Name: t.Name})
	}
	return res
}

func NewBannerDTOs(cards []service.BannerCard) []BannerDTO {
	res := make([]BannerDTO, 0, len(cards))
	for _, c := range cards {
		res = append(res, NewBannerDTO(c))
	}
	return res
}
