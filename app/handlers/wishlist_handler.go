package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/helpers"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/services"
	"github.com/unrolled/render"
)

type WishlistHandler struct {
	render      *render.Render
	wishlistSvc *services.WishlistService
}

func NewWishlistHandler(r *render.Render, wishlistSvc *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		render:      r,
		wishlistSvc: wishlistSvc,
	}
}

func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r)

	items, err := h.wishlistSvc.List(r.Context(), userID)
	if err != nil {
		logrus.Errorf("GetWishlist: failed to list wishlist for user %s: %v", userID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":         "My Wishlist",
		"WishlistItems": items,
	})
	_ = h.render.HTML(w, http.StatusOK, "wishlist", data)
}

// TogglePost flips wishlist membership and answers JSON for the heart icon.
func (h *WishlistHandler) TogglePost(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r)
	productID := mux.Vars(r)["productId"]

	action, count, err := h.wishlistSvc.Toggle(r.Context(), userID, productID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			_ = h.render.JSON(w, http.StatusNotFound, map[string]interface{}{
				"success": false,
				"message": "Product not found",
			})
			return
		}
		logrus.Errorf("TogglePost: failed to toggle wishlist for user %s: %v", userID, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"message": "Something went wrong",
		})
		return
	}

	message := "Added to wishlist"
	if action == services.WishlistActionRemoved {
		message = "Removed from wishlist"
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"message":        message,
		"wishlist_count": count,
		"action":         action,
	})
}

func (h *WishlistHandler) RemovePost(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r)
	productID := mux.Vars(r)["productId"]

	if err := h.wishlistSvc.Remove(r.Context(), userID, productID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			data := helpers.GetBaseData(r, map[string]interface{}{"Title": "Page Not Found"})
			_ = h.render.HTML(w, http.StatusNotFound, "404", data)
			return
		}
		logrus.Errorf("RemovePost: failed to remove wishlist entry for user %s: %v", userID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/wishlist?status=success&message="+url.QueryEscape("Product removed from wishlist"), http.StatusSeeOther)
}
