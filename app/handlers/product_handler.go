package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/quintory/storefront/app/helpers"
	"github.com/quintory/storefront/app/models"
	"github.com/quintory/storefront/app/repositories"
	"github.com/quintory/storefront/app/utils/breadcrumb"
	"github.com/unrolled/render"
)

const productPageSize = 9

type ProductHandler struct {
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	render       *render.Render
}

func NewProductHandler(productRepo repositories.ProductRepositoryImpl, categoryRepo repositories.CategoryRepositoryImpl, r *render.Render) *ProductHandler {
	return &ProductHandler{productRepo, categoryRepo, r}
}

// Products lists available products newest-first, optionally filtered
// by category slug.
func (h *ProductHandler) Products(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("category")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * productPageSize

	var (
		products        []models.Product
		total           int64
		err             error
		currentCategory *models.Category
	)

	if slug != "" {
		currentCategory, err = h.categoryRepo.GetBySlug(r.Context(), slug)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				http.NotFound(w, r)
				return
			}
			log.Printf("Products: failed to load category %s: %v", slug, err)
			http.Error(w, "failed to load category", http.StatusInternalServerError)
			return
		}
		products, total, err = h.productRepo.GetByCategorySlugPaginated(r.Context(), slug, productPageSize, offset)
	} else {
		products, total, err = h.productRepo.GetAvailablePaginated(r.Context(), productPageSize, offset)
	}
	if err != nil {
		log.Printf("Products: failed to load products: %v", err)
		http.Error(w, "failed to load products", http.StatusInternalServerError)
		return
	}

	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("Products: failed to load categories: %v", err)
		http.Error(w, "failed to load categories", http.StatusInternalServerError)
		return
	}

	breadcrumbs := []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Products", URL: "/products"},
	}

	datas := helpers.GetBaseData(r, map[string]interface{}{
		"Title":           "Products",
		"Products":        products,
		"Categories":      categories,
		"CurrentCategory": currentCategory,
		"CategorySlug":    slug,
		"CurrentPage":     page,
		"TotalPages":      int((total + productPageSize - 1) / productPageSize),
		"Breadcrumbs":     breadcrumbs,
	})

	_ = h.render.HTML(w, http.StatusOK, "products", datas)
}

// ProductDetail looks a product up by slug; unavailable products are a
// 404 like any other miss.
func (h *ProductHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	if slug == "" {
		http.NotFound(w, r)
		return
	}

	product, err := h.productRepo.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Printf("ProductDetail: failed to load product %s: %v", slug, err)
		http.Error(w, "failed to load product", http.StatusInternalServerError)
		return
	}

	breadcrumbs := []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Products", URL: "/products"},
		{Name: product.Title, URL: "/products/" + product.Slug},
	}

	datas := helpers.GetBaseData(r, map[string]interface{}{
		"Title":       product.Title,
		"Product":     product,
		"Breadcrumbs": breadcrumbs,
	})

	_ = h.render.HTML(w, http.StatusOK, "product", datas)
}
