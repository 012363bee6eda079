package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/helpers"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/services"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	render      *render.Render
	catalogSvc  *services.CatalogService
	cartSvc     *services.CartService
	wishlistSvc *services.WishlistService
}

func NewProductHandler(r *render.Render, catalogSvc *services.CatalogService, cartSvc *services.CartService, wishlistSvc *services.WishlistService) *ProductHandler {
	return &ProductHandler{
		render:      r,
		catalogSvc:  catalogSvc,
		cartSvc:     cartSvc,
		wishlistSvc: wishlistSvc,
	}
}

func parsePriceParam(raw string) *decimal.Decimal {
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &d
}

// Categories is the filtered, sorted, paginated catalog listing.
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))

	params := services.BrowseParams{
		CategoryID: q.Get("category"),
		Search:     q.Get("search"),
		Sort:       q.Get("sort"),
		PriceMin:   parsePriceParam(q.Get("price_min")),
		PriceMax:   parsePriceParam(q.Get("price_max")),
		Page:       page,
	}

	catalog, err := h.catalogSvc.Browse(r.Context(), params)
	if err != nil {
		logrus.Errorf("Categories: failed to browse catalog: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	pageData := map[string]interface{}{
		"Title":           "Categories",
		"Products":        catalog.Products,
		"Categories":      catalog.Categories,
		"CurrentCategory": catalog.CurrentCategory,
		"SearchQuery":     params.Search,
		"TotalProducts":   catalog.TotalProducts,
		"TotalPages":      catalog.TotalPages,
		"Page":            catalog.Page,
		"MinPrice":        catalog.PriceMin,
		"MaxPrice":        catalog.PriceMax,
	}

	h.attachUserCatalogState(r, pageData)

	data := helpers.GetBaseData(r, pageData)
	_ = h.render.HTML(w, http.StatusOK, "categories", data)
}

// Shop is the unfiltered listing with an optional category.
func (h *ProductHandler) Shop(w http.ResponseWriter, r *http.Request) {
	shop, err := h.catalogSvc.Shop(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		logrus.Errorf("Shop: failed to list products: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	pageData := map[string]interface{}{
		"Title":           "Shop",
		"Products":        shop.Products,
		"Categories":      shop.Categories,
		"CurrentCategory": shop.CurrentCategory,
	}
	h.attachUserCatalogState(r, pageData)

	data := helpers.GetBaseData(r, pageData)
	_ = h.render.HTML(w, http.StatusOK, "shop", data)
}

func (h *ProductHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	detail, err := h.catalogSvc.ProductDetail(r.Context(), productID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			data := helpers.GetBaseData(r, map[string]interface{}{"Title": "Page Not Found"})
			_ = h.render.HTML(w, http.StatusNotFound, "404", data)
			return
		}
		logrus.Errorf("ProductDetail: failed to load product %s: %v", productID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	inWishlist := false
	if userID := helpers.GetUserIDFromContext(r); userID != "" {
		wishlisted, err := h.wishlistSvc.ProductIDs(r.Context(), userID)
		if err != nil {
			logrus.Warnf("ProductDetail: failed to load wishlist state for user %s: %v", userID, err)
		} else {
			inWishlist = wishlisted[productID]
		}
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":           detail.Product.Name,
		"Product":         detail.Product,
		"RelatedProducts": detail.Related,
		"InWishlist":      inWishlist,
	})
	_ = h.render.HTML(w, http.StatusOK, "product", data)
}

// attachUserCatalogState prefills per-product cart quantities and wishlist
// flags for the inline controls on listing pages.
func (h *ProductHandler) attachUserCatalogState(r *http.Request, pageData map[string]interface{}) {
	userID := helpers.GetUserIDFromContext(r)
	if userID == "" {
		return
	}

	if quantities, err := h.cartSvc.Quantities(r.Context(), userID); err != nil {
		logrus.Warnf("attachUserCatalogState: cart quantities for user %s: %v", userID, err)
	} else {
		pageData["CartQuantities"] = quantities
	}
	if wishlisted, err := h.wishlistSvc.ProductIDs(r.Context(), userID); err != nil {
		logrus.Warnf("attachUserCatalogState: wishlist state for user %s: %v", userID, err)
	} else {
		pageData["WishlistedProducts"] = wishlisted
	}
}
