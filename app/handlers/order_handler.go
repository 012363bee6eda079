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

type OrderHandler struct {
	render      *render.Render
	checkoutSvc *services.CheckoutService
}

func NewOrderHandler(r *render.Render, checkoutSvc *services.CheckoutService) *OrderHandler {
	return &OrderHandler{
		render:      r,
		checkoutSvc: checkoutSvc,
	}
}

// GetAccount lists the user's orders, newest first.
func (h *OrderHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r)

	orders, err := h.checkoutSvc.OrdersForUser(r.Context(), userID)
	if err != nil {
		logrus.Errorf("GetAccount: failed to list orders for user %s: %v", userID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":  "My Account",
		"Orders": orders,
	})
	_ = h.render.HTML(w, http.StatusOK, "account", data)
}

func (h *OrderHandler) GetOrderDetail(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r)
	orderID := mux.Vars(r)["id"]

	order, err := h.checkoutSvc.OrderForUser(r.Context(), userID, orderID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			data := helpers.GetBaseData(r, map[string]interface{}{"Title": "Page Not Found"})
			_ = h.render.HTML(w, http.StatusNotFound, "404", data)
			return
		}
		logrus.Errorf("GetOrderDetail: failed to load order %s for user %s: %v", orderID, userID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":     "Order Details",
		"Order":     order,
		"CanCancel": order.CanCancel(),
	})
	_ = h.render.HTML(w, http.StatusOK, "order_detail", data)
}

// CancelOrder moves a pending or processing order to cancelled. Orders that
// have already shipped get a warning flash instead.
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r)
	orderID := mux.Vars(r)["id"]

	err := h.checkoutSvc.Cancel(r.Context(), userID, orderID)
	switch {
	case err == nil:
		http.Redirect(w, r, "/order/"+orderID+"?status=success&message="+url.QueryEscape("Order cancelled successfully."), http.StatusSeeOther)
	case errors.Is(err, services.ErrNotFound):
		data := helpers.GetBaseData(r, map[string]interface{}{"Title": "Page Not Found"})
		_ = h.render.HTML(w, http.StatusNotFound, "404", data)
	case errors.Is(err, services.ErrOrderNotCancellable):
		http.Redirect(w, r, "/order/"+orderID+"?status=warning&message="+url.QueryEscape("This order can no longer be cancelled."), http.StatusSeeOther)
	default:
		logrus.Errorf("CancelOrder: failed to cancel order %s for user %s: %v", orderID, userID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
