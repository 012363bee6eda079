package routes

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/configs"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/handlers"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/handlers/admin"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/middlewares"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/repositories"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/services"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/utils/renderer"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/utils/sessions"
	"gorm.io/gorm"
)

// NewRouter wires repositories, services, and handlers onto the route table.
func NewRouter(db *gorm.DB, env configs.ENV, keys *configs.SessionKeys) http.Handler {
	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	wishlistRepo := repositories.NewWishlistRepository(db)
	cartItemRepo := repositories.NewCartItemRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	catalogSvc := services.NewCatalogService(productRepo, categoryRepo)
	wishlistSvc := services.NewWishlistService(wishlistRepo, productRepo)
	cartSvc := services.NewCartService(cartItemRepo, productRepo)
	checkoutSvc := services.NewCheckoutService(db, cartItemRepo, orderRepo)
	adminSvc := services.NewAdminService(productRepo, categoryRepo, orderRepo, userRepo)

	render := renderer.New()
	validate := validator.New()
	sessionStore := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)

	homeHandler := handlers.NewHomeHandler(render, catalogSvc)
	productHandler := handlers.NewProductHandler(render, catalogSvc, cartSvc, wishlistSvc)
	authHandler := handlers.NewAuthHandler(render, userRepo, sessionStore, validate)
	wishlistHandler := handlers.NewWishlistHandler(render, wishlistSvc)
	cartHandler := handlers.NewCartHandler(render, cartSvc)
	checkoutHandler := handlers.NewCheckoutHandler(render, checkoutSvc, cartSvc, validate)
	orderHandler := handlers.NewOrderHandler(render, checkoutSvc)
	adminHandler := admin.NewAdminHandler(render, adminSvc, productRepo, categoryRepo, orderRepo, userRepo, validate)

	router := mux.NewRouter()
	router.Use(middlewares.RecoverMiddleware(render))
	router.Use(middlewares.UserContextMiddleware(sessionStore, userRepo))
	router.Use(middlewares.BadgeCountMiddleware(cartSvc, wishlistSvc))

	router.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir("./static"))))

	router.HandleFunc("/", homeHandler.Home).Methods("GET")
	router.HandleFunc("/about", homeHandler.About).Methods("GET")
	router.HandleFunc("/contact", homeHandler.Contact).Methods("GET")
	router.HandleFunc("/categories", productHandler.Categories).Methods("GET")
	router.HandleFunc("/shop", productHandler.Shop).Methods("GET")
	router.HandleFunc("/product/{id}", productHandler.ProductDetail).Methods("GET")

	router.HandleFunc("/login", authHandler.LoginGet).Methods("GET")
	router.HandleFunc("/login", authHandler.LoginPost).Methods("POST")
	router.HandleFunc("/register", authHandler.RegisterGet).Methods("GET")
	router.HandleFunc("/register", authHandler.RegisterPost).Methods("POST")
	router.HandleFunc("/logout", authHandler.Logout).Methods("GET", "POST")

	authed := router.NewRoute().Subrouter()
	authed.Use(middlewares.LoginRequiredMiddleware)
	authed.HandleFunc("/wishlist", wishlistHandler.GetWishlist).Methods("GET")
	authed.HandleFunc("/wishlist/add/{productId}", wishlistHandler.TogglePost).Methods("POST")
	authed.HandleFunc("/wishlist/remove/{productId}", wishlistHandler.RemovePost).Methods("POST")
	authed.HandleFunc("/cart", cartHandler.GetCart).Methods("GET")
	authed.HandleFunc("/cart/add/{productId}", cartHandler.AddToCart).Methods("POST")
	authed.HandleFunc("/cart/update/{lineId}", cartHandler.UpdateCartItem).Methods("POST")
	authed.HandleFunc("/cart/set/{productId}", cartHandler.SetCartQuantity).Methods("POST")
	authed.HandleFunc("/cart/remove/{lineId}", cartHandler.RemoveFromCart).Methods("POST")
	authed.HandleFunc("/checkout", checkoutHandler.GetCheckout).Methods("GET")
	authed.HandleFunc("/checkout", checkoutHandler.PostCheckout).Methods("POST")
	authed.HandleFunc("/success/{orderId}", checkoutHandler.GetSuccess).Methods("GET")
	authed.HandleFunc("/account", orderHandler.GetAccount).Methods("GET")
	authed.HandleFunc("/order/{id}", orderHandler.GetOrderDetail).Methods("GET")
	authed.HandleFunc("/order/{id}/cancel", orderHandler.CancelOrder).Methods("POST")

	adminRouter := router.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middlewares.AdminRequiredMiddleware)
	adminRouter.HandleFunc("", adminHandler.GetDashboard).Methods("GET")
	adminRouter.HandleFunc("/products", adminHandler.GetProducts).Methods("GET")
	adminRouter.HandleFunc("/product/add", adminHandler.GetAddProduct).Methods("GET")
	adminRouter.HandleFunc("/product/add", adminHandler.PostAddProduct).Methods("POST")
	adminRouter.HandleFunc("/product/{id}/edit", adminHandler.GetEditProduct).Methods("GET")
	adminRouter.HandleFunc("/product/{id}/edit", adminHandler.PostEditProduct).Methods("POST")
	adminRouter.HandleFunc("/product/{id}/delete", adminHandler.PostDeleteProduct).Methods("POST")
	adminRouter.HandleFunc("/categories", adminHandler.GetCategories).Methods("GET")
	adminRouter.HandleFunc("/user/{id}/orders", adminHandler.GetUserOrders).Methods("GET")

	router.NotFoundHandler = http.HandlerFunc(homeHandler.NotFound)

	csrfMiddleware := csrf.Protect(
		keys.AuthKey,
		csrf.Secure(env.AppEnv == "production"),
		csrf.Path("/"),
	)
	return csrfMiddleware(router)
}
