package middlewares

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/quintory/storefront/app/helpers"
	"github.com/quintory/storefront/app/models"
	"github.com/quintory/storefront/app/repositories"
	"github.com/quintory/storefront/app/services"
	"github.com/quintory/storefront/app/utils/sessions"
)

// IdentityMiddleware resolves the request identity once and stores it
// in the context, so nothing downstream reads ambient session state. A
// session user ID that no longer matches a user row falls back to the
// anonymous session key.
func IdentityMiddleware(store sessions.Store, userRepo repositories.UserRepositoryImpl) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var identity models.Identity

			if userID := store.GetUserID(r); userID != "" {
				if _, err := userRepo.FindByID(r.Context(), userID); err == nil {
					identity.UserID = userID
				} else if !errors.Is(err, repositories.ErrNotFound) {
					log.Printf("IdentityMiddleware: failed to verify user %s: %v", userID, err)
				}
			}

			if identity.UserID == "" {
				key, err := store.SessionKey(w, r)
				if err != nil {
					log.Printf("IdentityMiddleware: failed to allocate session key: %v", err)
					http.Error(w, "session unavailable", http.StatusInternalServerError)
					return
				}
				identity.SessionKey = key
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyIdentity, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CartCountMiddleware puts the active cart's item count into the
// context for the navbar badge. It never creates a cart.
func CartCountMiddleware(cartSvc *services.CartService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := helpers.IdentityFromContext(r)
			count, err := cartSvc.ItemCount(r.Context(), identity)
			if err != nil {
				log.Printf("CartCountMiddleware: failed to count cart items: %v", err)
				count = 0
			}
			ctx := context.WithValue(r.Context(), helpers.CartCountKey, count)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// MethodOverrideMiddleware lets HTML forms issue PUT and DELETE through
// a hidden _method field.
func MethodOverrideMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			_ = r.ParseForm()
			override := r.Form.Get("_method")
			if override != "" {
				r.Method = strings.ToUpper(override)
			}
		}
		next.ServeHTTP(w, r)
	})
}
