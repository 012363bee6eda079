package admin

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/helpers"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/repositories"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/services"
	"github.com/unrolled/render"
)

type AdminHandler struct {
	render       *render.Render
	adminSvc     *services.AdminService
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	orderRepo    repositories.OrderRepositoryImpl
	userRepo     repositories.UserRepositoryImpl
	validator    *validator.Validate
}

func NewAdminHandler(
	r *render.Render,
	adminSvc *services.AdminService,
	productRepo repositories.ProductRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	orderRepo repositories.OrderRepositoryImpl,
	userRepo repositories.UserRepositoryImpl,
	validate *validator.Validate,
) *AdminHandler {
	return &AdminHandler{
		render:       r,
		adminSvc:     adminSvc,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		orderRepo:    orderRepo,
		userRepo:     userRepo,
		validator:    validate,
	}
}

// GetDashboard renders the aggregate overview: totals, per-category product
// counts, per-customer order counts, and the latest products.
func (h *AdminHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminSvc.Dashboard(r.Context())
	if err != nil {
		logrus.Errorf("GetDashboard: failed to collect stats: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Admin Dashboard",
		"Stats": stats,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/dashboard", data)
}
