package handlers

import (
	"log"
	"net/http"

	"github.com/quintory/storefront/app/helpers"
	"github.com/quintory/storefront/app/repositories"
	"github.com/unrolled/render"
)

type HomeHandler struct {
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	render       *render.Render
}

func NewHomeHandler(productRepo repositories.ProductRepositoryImpl, categoryRepo repositories.CategoryRepositoryImpl, r *render.Render) *HomeHandler {
	return &HomeHandler{productRepo, categoryRepo, r}
}

func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.GetLatest(r.Context(), 8)
	if err != nil {
		log.Printf("Home: failed to load latest products: %v", err)
		http.Error(w, "failed to load products", http.StatusInternalServerError)
		return
	}

	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("Home: failed to load categories: %v", err)
		http.Error(w, "failed to load categories", http.StatusInternalServerError)
		return
	}

	datas := helpers.GetBaseData(r, map[string]interface{}{
		"Title":      "Storefront",
		"Products":   products,
		"Categories": categories,
	})

	_ = h.render.HTML(w, http.StatusOK, "home", datas)
}
