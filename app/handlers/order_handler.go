package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/quintory/storefront/app/helpers"
	"github.com/quintory/storefront/app/repositories"
	"github.com/quintory/storefront/app/utils/breadcrumb"
	"github.com/unrolled/render"
)

type OrderHandler struct {
	orderRepo repositories.OrderRepositoryImpl
	render    *render.Render
}

func NewOrderHandler(orderRepo repositories.OrderRepositoryImpl, r *render.Render) *OrderHandler {
	return &OrderHandler{orderRepo, r}
}

// Confirmation shows the order created at checkout.
func (h *OrderHandler) Confirmation(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	order, err := h.orderRepo.GetByID(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Printf("Confirmation: failed to load order %s: %v", orderID, err)
		http.Error(w, "failed to load order", http.StatusInternalServerError)
		return
	}

	datas := helpers.GetBaseData(r, map[string]interface{}{
		"Title":       "Order Confirmation",
		"Order":       order,
		"Breadcrumbs": []breadcrumb.Breadcrumb{{Name: "Home", URL: "/"}, {Name: "Order", URL: "/orders/" + order.ID}},
	})

	_ = h.render.HTML(w, http.StatusOK, "order_confirmation", datas)
}
