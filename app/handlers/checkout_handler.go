package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/quintory/storefront/app/helpers"
	"github.com/quintory/storefront/app/services"
	"github.com/quintory/storefront/app/utils/breadcrumb"
	"github.com/unrolled/render"
)

type CheckoutHandler struct {
	cartSvc     *services.CartService
	checkoutSvc *services.CheckoutService
	validator   *validator.Validate
	render      *render.Render
}

func NewCheckoutHandler(cartSvc *services.CartService, checkoutSvc *services.CheckoutService, v *validator.Validate, r *render.Render) *CheckoutHandler {
	return &CheckoutHandler{
		cartSvc:     cartSvc,
		checkoutSvc: checkoutSvc,
		validator:   v,
		render:      r,
	}
}

// ShowForm renders the checkout form. An empty cart is sent back to the
// catalog rather than shown a form it cannot submit.
func (h *CheckoutHandler) ShowForm(w http.ResponseWriter, r *http.Request) {
	identity := helpers.IdentityFromContext(r)

	cart, err := h.cartSvc.GetCart(r.Context(), identity)
	if err != nil {
		log.Printf("ShowForm: failed to load cart: %v", err)
		http.Error(w, "failed to load cart", http.StatusInternalServerError)
		return
	}

	if len(cart.CartItems) == 0 {
		http.Redirect(w, r, "/products", http.StatusSeeOther)
		return
	}

	datas := helpers.GetBaseData(r, map[string]interface{}{
		"Title":       "Checkout",
		"Cart":        cart,
		"Total":       cart.Total(),
		"Breadcrumbs": []breadcrumb.Breadcrumb{{Name: "Home", URL: "/"}, {Name: "Cart", URL: "/cart"}, {Name: "Checkout", URL: "/checkout"}},
		"Form":        services.ContactDetails{},
		"Errors":      map[string]string{},
	})

	_ = h.render.HTML(w, http.StatusOK, "checkout", datas)
}

// Submit converts the cart into an order and redirects to the order
// confirmation page.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	identity := helpers.IdentityFromContext(r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	details := services.ContactDetails{
		FullName: r.PostFormValue("full_name"),
		Email:    r.PostFormValue("email"),
		Address:  r.PostFormValue("address"),
		City:     r.PostFormValue("city"),
		Postcode: r.PostFormValue("postcode"),
	}

	if err := h.validator.Struct(details); err != nil {
		h.renderFormErrors(w, r, details, err)
		return
	}

	cart, err := h.cartSvc.ResolveCart(r.Context(), identity)
	if err != nil {
		log.Printf("Submit: failed to resolve cart: %v", err)
		http.Error(w, "failed to resolve cart", http.StatusInternalServerError)
		return
	}

	order, err := h.checkoutSvc.Checkout(r.Context(), cart, details)
	if err != nil {
		if errors.Is(err, services.ErrCartEmpty) {
			http.Redirect(w, r, "/products", http.StatusSeeOther)
			return
		}
		log.Printf("Submit: checkout failed for cart %s: %v", cart.ID, err)
		http.Redirect(w, r, fmt.Sprintf("/cart?status=error&message=%s", url.QueryEscape("Checkout failed. Please try again.")), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/orders/"+order.ID, http.StatusSeeOther)
}

func (h *CheckoutHandler) renderFormErrors(w http.ResponseWriter, r *http.Request, details services.ContactDetails, validationErr error) {
	fieldErrors := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(validationErr, &verrs) {
		for _, fe := range verrs {
			fieldErrors[fe.Field()] = "This field is " + fe.Tag()
		}
	}

	cart, err := h.cartSvc.GetCart(r.Context(), helpers.IdentityFromContext(r))
	if err != nil {
		log.Printf("renderFormErrors: failed to reload cart: %v", err)
		http.Error(w, "failed to load cart", http.StatusInternalServerError)
		return
	}

	datas := helpers.GetBaseData(r, map[string]interface{}{
		"Title":       "Checkout",
		"Cart":        cart,
		"Total":       cart.Total(),
		"Form":        details,
		"Errors":      fieldErrors,
		"Breadcrumbs": []breadcrumb.Breadcrumb{{Name: "Home", URL: "/"}, {Name: "Cart", URL: "/cart"}, {Name: "Checkout", URL: "/checkout"}},
	})

	_ = h.render.HTML(w, http.StatusUnprocessableEntity, "checkout", datas)
}
