package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/helpers"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/services"
	"github.com/unrolled/render"
)

type CartHandler struct {
	render  *render.Render
	cartSvc *services.CartService
}

func NewCartHandler(r *render.Render, cartSvc *services.CartService) *CartHandler {
	return &CartHandler{
		render:  r,
		cartSvc: cartSvc,
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r)

	items, err := h.cartSvc.Items(r.Context(), userID)
	if err != nil {
		logrus.Errorf("GetCart: failed to list cart for user %s: %v", userID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	total, err := h.cartSvc.Total(r.Context(), userID)
	if err != nil {
		logrus.Errorf("GetCart: failed to total cart for user %s: %v", userID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":     "Shopping Cart",
		"CartItems": items,
		"Total":     total,
	})
	_ = h.render.HTML(w, http.StatusOK, "cart", data)
}

func wantsJSON(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json") ||
		r.Header.Get("X-Requested-With") == "XMLHttpRequest"
}

// AddToCart handles both the AJAX add buttons and the plain form post on the
// product page. JSON callers get the new line quantity and badge count back;
// form posts bounce to checkout, the cart, or wherever they came from.
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r)
	productID := mux.Vars(r)["productId"]

	qty := 1
	isJSON := wantsJSON(r)
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var body struct {
			Quantity int `json:"quantity"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil && body.Quantity > 0 {
			qty = body.Quantity
		}
	} else {
		if parsed, err := strconv.Atoi(r.FormValue("quantity")); err == nil && parsed > 0 {
			qty = parsed
		}
	}

	item, err := h.cartSvc.Add(r.Context(), userID, productID, qty)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			if isJSON {
				_ = h.render.JSON(w, http.StatusNotFound, map[string]interface{}{
					"success": false,
					"message": "Product not found",
				})
				return
			}
			data := helpers.GetBaseData(r, map[string]interface{}{"Title": "Page Not Found"})
			_ = h.render.HTML(w, http.StatusNotFound, "404", data)
			return
		}
		logrus.Errorf("AddToCart: failed to add product %s for user %s: %v", productID, userID, err)
		if isJSON {
			_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{
				"success": false,
				"message": "Something went wrong",
			})
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if isJSON {
		count, err := h.cartSvc.Count(r.Context(), userID)
		if err != nil {
			logrus.Errorf("AddToCart: failed to count cart for user %s: %v", userID, err)
		}
		_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
			"success":    true,
			"message":    "Product added to cart",
			"quantity":   item.Quantity,
			"cart_count": count,
		})
		return
	}

	switch {
	case r.FormValue("next") == "checkout":
		http.Redirect(w, r, "/checkout", http.StatusSeeOther)
	case r.FormValue("redirect_to") == "cart":
		http.Redirect(w, r, "/cart?status=success&message="+url.QueryEscape("Product added to cart"), http.StatusSeeOther)
	default:
		target := r.Referer()
		if target == "" {
			target = "/categories"
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
	}
}

// UpdateCartItem changes one line's quantity by line id. Zero removes it.
func (h *CartHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r)
	lineID := mux.Vars(r)["lineId"]

	qty, ok := h.decodeQuantity(w, r)
	if !ok {
		return
	}

	newQty, err := h.cartSvc.UpdateLine(r.Context(), userID, lineID, qty)
	if err != nil {
		h.writeLineError(w, userID, lineID, err)
		return
	}
	h.writeLineResult(w, r, userID, newQty)
}

// SetCartQuantity pins the line for a product to an exact quantity, creating
// or deleting the line as needed.
func (h *CartHandler) SetCartQuantity(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r)
	productID := mux.Vars(r)["productId"]

	qty, ok := h.decodeQuantity(w, r)
	if !ok {
		return
	}

	newQty, err := h.cartSvc.SetQuantity(r.Context(), userID, productID, qty)
	if err != nil {
		h.writeLineError(w, userID, productID, err)
		return
	}
	h.writeLineResult(w, r, userID, newQty)
}

func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r)
	lineID := mux.Vars(r)["lineId"]

	if err := h.cartSvc.RemoveLine(r.Context(), userID, lineID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			data := helpers.GetBaseData(r, map[string]interface{}{"Title": "Page Not Found"})
			_ = h.render.HTML(w, http.StatusNotFound, "404", data)
			return
		}
		logrus.Errorf("RemoveFromCart: failed to remove line %s for user %s: %v", lineID, userID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/cart?status=success&message="+url.QueryEscape("Product removed from cart"), http.StatusSeeOther)
}

func (h *CartHandler) decodeQuantity(w http.ResponseWriter, r *http.Request) (int, bool) {
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var body struct {
			Quantity *int `json:"quantity"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Quantity == nil {
			_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
				"success": false,
				"message": "Invalid quantity",
			})
			return 0, false
		}
		return *body.Quantity, true
	}

	qty, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": "Invalid quantity",
		})
		return 0, false
	}
	return qty, true
}

func (h *CartHandler) writeLineError(w http.ResponseWriter, userID, id string, err error) {
	if errors.Is(err, services.ErrNotFound) {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]interface{}{
			"success": false,
			"message": "Cart item not found",
		})
		return
	}
	logrus.Errorf("cart update failed for user %s, id %s: %v", userID, id, err)
	_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{
		"success": false,
		"message": "Something went wrong",
	})
}

func (h *CartHandler) writeLineResult(w http.ResponseWriter, r *http.Request, userID string, qty int) {
	count, err := h.cartSvc.Count(r.Context(), userID)
	if err != nil {
		logrus.Errorf("failed to count cart for user %s: %v", userID, err)
	}
	message := "Cart updated"
	if qty == 0 {
		message = "Product removed from cart"
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"message":    message,
		"quantity":   qty,
		"cart_count": count,
	})
}
