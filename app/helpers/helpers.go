package helpers

import (
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/quintory/storefront/app/models"
	"github.com/quintory/storefront/app/utils/breadcrumb"
)

type contextKey string

const (
	ContextKeyIdentity contextKey = "identity"
	CartCountKey       contextKey = "cart_count"
)

// IdentityFromContext returns the identity the middleware resolved for
// this request. The zero Identity means resolution did not run.
func IdentityFromContext(r *http.Request) models.Identity {
	identity, ok := r.Context().Value(ContextKeyIdentity).(models.Identity)
	if !ok {
		return models.Identity{}
	}
	return identity
}

// GetBaseData fills in the keys every template expects on top of the
// page-specific ones.
func GetBaseData(r *http.Request, pageSpecificData map[string]interface{}) map[string]interface{} {
	if pageSpecificData == nil {
		pageSpecificData = make(map[string]interface{})
	}

	if _, exists := pageSpecificData["Title"]; !exists {
		pageSpecificData["Title"] = "Storefront"
	}
	if _, exists := pageSpecificData["Breadcrumbs"]; !exists {
		pageSpecificData["Breadcrumbs"] = []breadcrumb.Breadcrumb{}
	}
	if _, exists := pageSpecificData["CartCount"]; !exists {
		pageSpecificData["CartCount"] = 0
	}

	if count, ok := r.Context().Value(CartCountKey).(int); ok {
		pageSpecificData["CartCount"] = count
	}

	identity := IdentityFromContext(r)
	pageSpecificData["IsLoggedIn"] = !identity.Anonymous()

	pageSpecificData["CSRFField"] = csrf.TemplateField(r)

	return pageSpecificData
}
