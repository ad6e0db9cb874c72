package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/RoyceAzure/lab/megano/internal/api/dto"
	"github.com/RoyceAzure/lab/megano/internal/constants"
	"github.com/RoyceAzure/lab/megano/internal/pkg/api"
	"github.com/RoyceAzure/lab/megano/internal/service"
	"github.com/rs/zerolog"
)

type CatalogHandler struct {
	catalogService service.ICatalogService
	logger         *zerolog.Logger
}

func NewCatalogHandler(catalogService service.ICatalogService, logger *zerolog.Logger) *CatalogHandler {
	if catalogService == nil {
		panic("catalogService cannot be nil")
	}
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         nopIfNil(logger),
	}
}

// @Summary catalog
// @Description filtered, sorted and paginated product cards
// @Tags catalog
// @Produce json
// @Param filter[name] query string false "title contains"
// @Param filter[minPrice] query number false "min price"
// @Param filter[maxPrice] query number false "max price"
// @Param filter[freeDelivery] query bool false "free delivery only"
// @Param filter[available] query bool false "in stock only"
// @Param category query int false "category id"
// @Param subcategory query int false "subcategory id"
// @Param sort query string false "price | rating | reviews | date | title"
// @Param sortType query string false "inc | dec"
// @Param currentPage query int false "page, starts from 1"
// @Param limit query int false "page size"
// @Success 200 {object} dto.CatalogDTO "success"
// @Failure 400 {object} api.ResponseError "Invalid request"
// @Failure 404 {object} api.ResponseError "Invalid page."
// @Router /catalog [get]
func (c *CatalogHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	filter, problems := dto.ParseProductFilter(r.URL.Query())
	if problems != nil {
		badRequest(w, problems)
		return
	}

	page, err := c.catalogService.Catalog(r.Context(), filter)
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, dto.NewCatalogDTO(page))
}

// @Summary product detail
// @Tags catalog
// @Produce json
// @Param id path int true "product id"
// @Success 200 {object} dto.ProductDTO "success"
// @Failure 404 {object} api.ResponseMessage "Product not found"
// @Router /product/{id} [get]
func (c *CatalogHandler) Product(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		invalidID(w, "id")
		return
	}

	product, err := c.catalogService.Product(r.Context(), id)
	if err != nil {
		if notFoundMessage(w, err, service.ErrProductNotFound) {
			return
		}
		writeError(w, r, c.logger, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, dto.NewProductDTO(*product))
}

// @Summary add review
// @Description json body, or multipart form with optional images
// @Tags catalog
// @Accept json,mpfd
// @Produce json
// @Param id path int true "product id"
// @Param review body dto.CreateReviewDTO true "review"
// @Success 201 {object} dto.ReviewDTO "success"
// @Failure 400 {object} api.ResponseError "Invalid request"
// @Failure 401 {object} api.ResponseError "Authentication credentials were not provided"
// @Failure 404 {object} api.ResponseError "Product not found"
// @Router /product/{id}/review [post]
func (c *CatalogHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		invalidID(w, "id")
		return
	}

	var (
		in     dto.CreateReviewDTO
		images []service.Upload
	)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		r.Body = http.MaxBytesReader(w, r.Body, constants.MaxUploadSize)
		if err := r.ParseMultipartForm(constants.MaxUploadSize); err != nil {
			badRequest(w, map[string]string{"images": "The submitted data was not a file."})
			return
		}
		defer r.MultipartForm.RemoveAll()

		in.Author = r.FormValue("author")
		in.Email = r.FormValue("email")
		in.Text = r.FormValue("text")
		if raw := r.FormValue("rate"); raw != "" {
			rate, err := strconv.Atoi(raw)
			if err != nil {
				badRequest(w, map[string]string{"rate": "A valid integer is required."})
				return
			}
			in.Rate = rate
		}

		files, err := openUploads(r.MultipartForm.File["images"])
		if err != nil {
			badRequest(w, map[string]string{"images": "The submitted data was not a file."})
			return
		}
		defer closeUploads(files)
		for i, f := range files {
			images = append(images, service.Upload{Filename: r.MultipartForm.File["images"][i].Filename, Reader: f})
		}
	} else if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, c.logger, err)
		return
	}

	if err := validateDTO(in); err != nil {
		writeError(w, r, c.logger, err)
		return
	}

	review, err := c.catalogService.AddReview(r.Context(), id, currentSession(r).ProfileID, service.ReviewInput{
		Author: in.Author,
		Email:  in.Email,
		Text:   in.Text,
		Rate:   in.Rate,
		Images: images,
	})
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}
	api.SuccessJSON(w, http.StatusCreated, dto.NewReviewDTO(*review))
}

func openUploads(headers []*multipart.FileHeader) ([]multipart.File, error) {
	files := make([]multipart.File, 0, len(headers))
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			closeUploads(files)
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func closeUploads(files []multipart.File) {
	for _, f := range files {
		f.Close()
	}
}

// @Summary tags
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.TagDTO "success"
// @Router /tags [get]
func (c *CatalogHandler) Tags(w http.ResponseWriter, r *http.Request) {
	tags, err := c.catalogService.Tags(r.Context())
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, dto.NewTagDTOs(tags))
}

// @Summary tag detail
// @Tags catalog
// @Produce json
// @Param id path int true "tag id"
// @Success 200 {object} dto.TagDTO "success"
// @Failure 404 {object} api.ResponseError "Tag not found"
// @Router /tags/{id} [get]
func (c *CatalogHandler) Tag(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		invalidID(w, "id")
		return
	}
	tag, err := c.catalogService.Tag(r.Context(), id)
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, dto.NewTagDTO(*tag))
}

// @Summary categories
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.CategoryDTO "success"
// @Router /categories [get]
func (c *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.catalogService.Categories(r.Context())
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, dto.NewCategoryDTOs(categories))
}

// @Summary popular products
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.ProductDTO "success"
// @Router /products/popular [get]
func (c *CatalogHandler) Popular(w http.ResponseWriter, r *http.Request) {
	products, err := c.catalogService.Popular(r.Context())
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, dto.NewProductDTOs(products))
}

// @Summary limited edition products
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.ProductDTO "success"
// @Router /products/limited [get]
func (c *CatalogHandler) Limited(w http.ResponseWriter, r *http.Request) {
	products, err := c.catalogService.Limited(r.Context())
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, dto.NewProductDTOs(products))
}

// @Summary active sales
// @Tags catalog
// @Produce json
// @Param currentPage query int false "page, starts from 1"
// @Success 200 {object} dto.SalesDTO "success"
// @Failure 400 {object} api.ResponseError "Invalid request"
// @Router /sales [get]
func (c *CatalogHandler) Sales(w http.ResponseWriter, r *http.Request) {
	page, problems := dto.ParsePage(r.URL.Query())
	if problems != nil {
		badRequest(w, problems)
		return
	}
	sales, err := c.catalogService.Sales(r.Context(), page)
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, dto.NewSalesDTO(sales))
}

// @Summary banners
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.BannerDTO "success"
// @Router /banners [get]
func (c *CatalogHandler) Banners(w http.ResponseWriter, r *http.Request) {
	cards, err := c.catalogService.Banners(r.Context())
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, dto.NewBannerDTOs(cards))
}
