package admin

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/helpers"
)

// GetCategories lists every category with its product count.
func (h *AdminHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetWithProductCounts(r.Context())
	if err != nil {
		logrus.Errorf("GetCategories: failed to list categories: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":      "Manage Categories",
		"Categories": categories,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/categories", data)
}
