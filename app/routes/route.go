package routes

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/quintory/storefront/app/configs"
	"github.com/quintory/storefront/app/handlers"
	"github.com/quintory/storefront/app/middlewares"
	"github.com/quintory/storefront/app/repositories"
	"github.com/quintory/storefront/app/services"
	"github.com/quintory/storefront/app/utils/renderer"
	"github.com/quintory/storefront/app/utils/sessions"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, env configs.ENV, keys *configs.SessionKeys) http.Handler {
	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	cartItemRepo := repositories.NewCartItemRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	userRepo := repositories.NewUserRepository(db)

	cartSvc := services.NewCartService(cartRepo, cartItemRepo, productRepo)
	checkoutSvc := services.NewCheckoutService(db, cartRepo, orderRepo)

	render := renderer.New()
	validate := validator.New()
	sessionStore := sessions.NewCookieStore(keys.AuthKey, keys.EncKey)

	homeHandler := handlers.NewHomeHandler(productRepo, categoryRepo, render)
	productHandler := handlers.NewProductHandler(productRepo, categoryRepo, render)
	cartHandler := handlers.NewCartHandler(cartSvc, render)
	checkoutHandler := handlers.NewCheckoutHandler(cartSvc, checkoutSvc, validate, render)
	orderHandler := handlers.NewOrderHandler(orderRepo, render)

	router := mux.NewRouter()
	router.Use(middlewares.IdentityMiddleware(sessionStore, userRepo))
	router.Use(middlewares.CartCountMiddleware(cartSvc))

	router.HandleFunc("/", homeHandler.Home).Methods("GET")
	router.HandleFunc("/products", productHandler.Products).Methods("GET")
	router.HandleFunc("/products/{slug}", productHandler.ProductDetail).Methods("GET")

	router.HandleFunc("/cart", cartHandler.GetCart).Methods("GET")
	router.HandleFunc("/cart/items", cartHandler.AddItem).Methods("POST")
	router.HandleFunc("/cart/items/{id}", cartHandler.UpdateItem).Methods("PUT")
	router.HandleFunc("/cart/items/{id}", cartHandler.RemoveItem).Methods("DELETE")

	router.HandleFunc("/checkout", checkoutHandler.ShowForm).Methods("GET")
	router.HandleFunc("/checkout", checkoutHandler.Submit).Methods("POST")
	router.HandleFunc("/orders/{id}", orderHandler.Confirmation).Methods("GET")

	csrfMiddleware := csrf.Protect(
		keys.AuthKey,
		csrf.Secure(env.AppEnv == "production"),
		csrf.Path("/"),
	)

	// Method override has to run before mux matches a route, and csrf
	// has to see the overridden method as non-safe, so both sit outside
	// the router.
	return middlewares.MethodOverrideMiddleware(csrfMiddleware(router))
}
