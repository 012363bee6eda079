package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/helpers"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/services"
	"github.com/unrolled/render"
)

type HomeHandler struct {
	render     *render.Render
	catalogSvc *services.CatalogService
}

func NewHomeHandler(r *render.Render, catalogSvc *services.CatalogService) *HomeHandler {
	return &HomeHandler{
		render:     r,
		catalogSvc: catalogSvc,
	}
}

func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	home, err := h.catalogSvc.Home(r.Context())
	if err != nil {
		logrus.Errorf("Home: failed to load home page data: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":      "Organic Store",
		"Categories": home.Categories,
		"Products":   home.Featured,
	})
	_ = h.render.HTML(w, http.StatusOK, "index", data)
}

func (h *HomeHandler) About(w http.ResponseWriter, r *http.Request) {
	data := helpers.GetBaseData(r, map[string]interface{}{"Title": "About Us"})
	_ = h.render.HTML(w, http.StatusOK, "about", data)
}

func (h *HomeHandler) Contact(w http.ResponseWriter, r *http.Request) {
	data := helpers.GetBaseData(r, map[string]interface{}{"Title": "Contact Us"})
	_ = h.render.HTML(w, http.StatusOK, "contact", data)
}

func (h *HomeHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	data := helpers.GetBaseData(r, map[string]interface{}{"Title": "Page Not Found"})
	_ = h.render.HTML(w, http.StatusNotFound, "404", data)
}
