package admin

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/helpers"
	"gorm.io/gorm"
)

// GetUserOrders shows one customer's order history.
func (h *AdminHandler) GetUserOrders(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	user, err := h.userRepo.FindByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.renderNotFound(w, r)
			return
		}
		logrus.Errorf("GetUserOrders: failed to load user %s: %v", userID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	orders, err := h.orderRepo.FindByUserID(r.Context(), userID)
	if err != nil {
		logrus.Errorf("GetUserOrders: failed to list orders for user %s: %v", userID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":    "Customer Orders",
		"Customer": user,
		"Orders":   orders,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/user_orders", data)
}
