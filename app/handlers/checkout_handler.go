package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/helpers"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/services"
	"github.com/unrolled/render"
)

type CheckoutHandler struct {
	render      *render.Render
	checkoutSvc *services.CheckoutService
	cartSvc     *services.CartService
	validator   *validator.Validate
}

func NewCheckoutHandler(r *render.Render, checkoutSvc *services.CheckoutService, cartSvc *services.CartService, validate *validator.Validate) *CheckoutHandler {
	return &CheckoutHandler{
		render:      r,
		checkoutSvc: checkoutSvc,
		cartSvc:     cartSvc,
		validator:   validate,
	}
}

type CheckoutForm struct {
	Name       string `validate:"required,min=2,max=100"`
	Email      string `validate:"required,email"`
	Address    string `validate:"required,min=10,max=500"`
	City       string `validate:"required,min=2,max=100"`
	PostalCode string `validate:"required,min=3,max=20"`
	Country    string `validate:"required,min=2,max=100"`
}

func (h *CheckoutHandler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r)

	items, err := h.cartSvc.Items(r.Context(), userID)
	if err != nil {
		logrus.Errorf("GetCheckout: failed to list cart for user %s: %v", userID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if len(items) == 0 {
		http.Redirect(w, r, "/categories?status=warning&message="+url.QueryEscape("Your cart is empty."), http.StatusSeeOther)
		return
	}
	total, err := h.cartSvc.Total(r.Context(), userID)
	if err != nil {
		logrus.Errorf("GetCheckout: failed to total cart for user %s: %v", userID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"Title":     "Checkout",
		"CartItems": items,
		"Total":     total,
	}
	if user := helpers.GetUserFromContext(r); user != nil {
		data["Name"] = user.Name
		data["Email"] = user.Email
	}
	_ = h.render.HTML(w, http.StatusOK, "checkout", helpers.GetBaseData(r, data))
}

func (h *CheckoutHandler) PostCheckout(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r)

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/checkout?status=error&message="+url.QueryEscape("Failed to process form data."), http.StatusSeeOther)
		return
	}

	form := CheckoutForm{
		Name:       r.FormValue("name"),
		Email:      r.FormValue("email"),
		Address:    r.FormValue("address"),
		City:       r.FormValue("city"),
		PostalCode: r.FormValue("postal_code"),
		Country:    r.FormValue("country"),
	}
	if err := h.validator.Struct(form); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			h.renderCheckoutErrors(w, r, userID, form, helpers.FormatValidationErrors(validationErrs))
			return
		}
	}

	order, err := h.checkoutSvc.PlaceOrder(r.Context(), userID, services.ShippingDetails{
		Name:       form.Name,
		Email:      form.Email,
		Address:    form.Address,
		City:       form.City,
		PostalCode: form.PostalCode,
		Country:    form.Country,
	})
	if err != nil {
		if errors.Is(err, services.ErrCartEmpty) {
			http.Redirect(w, r, "/categories?status=warning&message="+url.QueryEscape("Your cart is empty."), http.StatusSeeOther)
			return
		}
		logrus.Errorf("PostCheckout: failed to place order for user %s: %v", userID, err)
		http.Redirect(w, r, "/checkout?status=error&message="+url.QueryEscape("Could not place your order. Please try again."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/success/"+order.ID, http.StatusSeeOther)
}

func (h *CheckoutHandler) renderCheckoutErrors(w http.ResponseWriter, r *http.Request, userID string, form CheckoutForm, formErrors map[string]string) {
	items, err := h.cartSvc.Items(r.Context(), userID)
	if err != nil {
		logrus.Errorf("renderCheckoutErrors: failed to list cart for user %s: %v", userID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	total, err := h.cartSvc.Total(r.Context(), userID)
	if err != nil {
		logrus.Errorf("renderCheckoutErrors: failed to total cart for user %s: %v", userID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":      "Checkout",
		"Errors":     formErrors,
		"CartItems":  items,
		"Total":      total,
		"Name":       form.Name,
		"Email":      form.Email,
		"Address":    form.Address,
		"City":       form.City,
		"PostalCode": form.PostalCode,
		"Country":    form.Country,
	})
	_ = h.render.HTML(w, http.StatusOK, "checkout", data)
}

// GetSuccess shows the confirmation page for a freshly placed order. The
// lookup is scoped to the session user so order ids cannot be probed.
func (h *CheckoutHandler) GetSuccess(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r)
	orderID := mux.Vars(r)["orderId"]

	order, err := h.checkoutSvc.OrderForUser(r.Context(), userID, orderID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			data := helpers.GetBaseData(r, map[string]interface{}{"Title": "Page Not Found"})
			_ = h.render.HTML(w, http.StatusNotFound, "404", data)
			return
		}
		logrus.Errorf("GetSuccess: failed to load order %s for user %s: %v", orderID, userID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Order Confirmed",
		"Order": order,
	})
	_ = h.render.HTML(w, http.StatusOK, "success", data)
}
