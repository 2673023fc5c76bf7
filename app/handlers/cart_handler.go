package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/quintory/storefront/app/helpers"
	"github.com/quintory/storefront/app/repositories"
	"github.com/quintory/storefront/app/services"
	"github.com/quintory/storefront/app/utils/breadcrumb"
	"github.com/unrolled/render"
)

type CartHandler struct {
	cartSvc *services.CartService
	render  *render.Render
}

func NewCartHandler(cartSvc *services.CartService, r *render.Render) *CartHandler {
	return &CartHandler{cartSvc: cartSvc, render: r}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	identity := helpers.IdentityFromContext(r)

	cart, err := h.cartSvc.GetCart(r.Context(), identity)
	if err != nil {
		log.Printf("GetCart: failed to load cart: %v", err)
		http.Error(w, "failed to load cart", http.StatusInternalServerError)
		return
	}

	datas := helpers.GetBaseData(r, map[string]interface{}{
		"Title":         "Your Cart",
		"Cart":          cart,
		"Total":         cart.Total(),
		"Breadcrumbs":   []breadcrumb.Breadcrumb{{Name: "Home", URL: "/"}, {Name: "Cart", URL: "/cart"}},
		"MessageStatus": r.URL.Query().Get("status"),
		"Message":       r.URL.Query().Get("message"),
	})

	_ = h.render.HTML(w, http.StatusOK, "cart", datas)
}

// AddItem handles POST /cart/items. Quantity defaults to 1 when the
// field is absent.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	identity := helpers.IdentityFromContext(r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	productID := r.PostFormValue("product_id")
	if productID == "" {
		http.Error(w, "missing product", http.StatusBadRequest)
		return
	}

	qty, ok := parseQuantity(w, r.PostFormValue("quantity"))
	if !ok {
		return
	}

	cart, err := h.cartSvc.ResolveCart(r.Context(), identity)
	if err != nil {
		log.Printf("AddItem: failed to resolve cart: %v", err)
		http.Error(w, "failed to resolve cart", http.StatusInternalServerError)
		return
	}

	if err := h.cartSvc.AddItem(r.Context(), cart, productID, qty); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		if errors.Is(err, services.ErrInvalidQuantity) {
			http.Error(w, "invalid quantity", http.StatusBadRequest)
			return
		}
		log.Printf("AddItem: failed to add product %s: %v", productID, err)
		http.Error(w, "failed to add item", http.StatusInternalServerError)
		return
	}

	redirectToCart(w, r, "success", "Item added to your cart.")
}

// UpdateItem handles PUT /cart/items/{id}. A quantity of zero or less
// removes the item.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	identity := helpers.IdentityFromContext(r)
	itemID := mux.Vars(r)["id"]

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	qty, ok := parseQuantity(w, r.PostFormValue("quantity"))
	if !ok {
		return
	}

	cart, err := h.cartSvc.ResolveCart(r.Context(), identity)
	if err != nil {
		log.Printf("UpdateItem: failed to resolve cart: %v", err)
		http.Error(w, "failed to resolve cart", http.StatusInternalServerError)
		return
	}

	if err := h.cartSvc.UpdateItem(r.Context(), cart, itemID, qty); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Printf("UpdateItem: failed to update item %s: %v", itemID, err)
		http.Error(w, "failed to update item", http.StatusInternalServerError)
		return
	}

	redirectToCart(w, r, "success", "Cart updated.")
}

// RemoveItem handles DELETE /cart/items/{id}.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	identity := helpers.IdentityFromContext(r)
	itemID := mux.Vars(r)["id"]

	cart, err := h.cartSvc.ResolveCart(r.Context(), identity)
	if err != nil {
		log.Printf("RemoveItem: failed to resolve cart: %v", err)
		http.Error(w, "failed to resolve cart", http.StatusInternalServerError)
		return
	}

	if err := h.cartSvc.RemoveItem(r.Context(), cart, itemID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Printf("RemoveItem: failed to remove item %s: %v", itemID, err)
		http.Error(w, "failed to remove item", http.StatusInternalServerError)
		return
	}

	redirectToCart(w, r, "success", "Item removed from your cart.")
}

// parseQuantity treats a blank field as the default of 1. A value that
// is present but not an integer is a client error, not something to
// guess at.
func parseQuantity(w http.ResponseWriter, raw string) (int, bool) {
	if raw == "" {
		return 1, true
	}
	qty, err := strconv.Atoi(raw)
	if err != nil {
		http.Error(w, "invalid quantity", http.StatusBadRequest)
		return 0, false
	}
	return qty, true
}

func redirectToCart(w http.ResponseWriter, r *http.Request, status, message string) {
	http.Redirect(w, r, fmt.Sprintf("/cart?status=%s&message=%s", status, url.QueryEscape(message)), http.StatusSeeOther)
}
