package admin

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/helpers"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/models"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/repositories"
	"gorm.io/gorm"
)

type ProductForm struct {
	Name        string `validate:"required,min=2,max=200"`
	Description string `validate:"required,min=10,max=1000"`
	Price       string `validate:"required"`
	Stock       string `validate:"required"`
	CategoryID  string `validate:"required"`
	Image       string
}

func (h *AdminHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, _, err := h.productRepo.Browse(r.Context(), repositories.CatalogFilter{})
	if err != nil {
		logrus.Errorf("GetProducts: failed to list products: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":    "Manage Products",
		"Products": products,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/products", data)
}

func (h *AdminHandler) GetAddProduct(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		logrus.Errorf("GetAddProduct: failed to list categories: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":      "Add Product",
		"Categories": categories,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/product_form", data)
}

func (h *AdminHandler) PostAddProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin/product/add?status=error&message="+url.QueryEscape("Failed to process form data."), http.StatusSeeOther)
		return
	}

	form := h.productFormFromRequest(r)
	product, formErrors := h.validateProductForm(r, form)
	if len(formErrors) > 0 {
		h.renderProductForm(w, r, "Add Product", "", form, formErrors)
		return
	}

	if err := h.productRepo.Create(r.Context(), product); err != nil {
		logrus.Errorf("PostAddProduct: failed to create product: %v", err)
		http.Redirect(w, r, "/admin/product/add?status=error&message="+url.QueryEscape("Could not save the product."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/products?status=success&message="+url.QueryEscape("Product added successfully."), http.StatusSeeOther)
}

func (h *AdminHandler) GetEditProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.productRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.renderNotFound(w, r)
			return
		}
		logrus.Errorf("GetEditProduct: failed to load product %s: %v", id, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		logrus.Errorf("GetEditProduct: failed to list categories: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":      "Edit Product",
		"Product":    product,
		"Categories": categories,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/product_form", data)
}

func (h *AdminHandler) PostEditProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.productRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.renderNotFound(w, r)
			return
		}
		logrus.Errorf("PostEditProduct: failed to load product %s: %v", id, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin/product/"+id+"/edit?status=error&message="+url.QueryEscape("Failed to process form data."), http.StatusSeeOther)
		return
	}

	form := h.productFormFromRequest(r)
	parsed, formErrors := h.validateProductForm(r, form)
	if len(formErrors) > 0 {
		h.renderProductForm(w, r, "Edit Product", id, form, formErrors)
		return
	}

	product.Name = parsed.Name
	product.Description = parsed.Description
	product.Price = parsed.Price
	product.Stock = parsed.Stock
	product.CategoryID = parsed.CategoryID
	product.Image = parsed.Image
	if err := h.productRepo.Update(r.Context(), product); err != nil {
		logrus.Errorf("PostEditProduct: failed to update product %s: %v", id, err)
		http.Redirect(w, r, "/admin/product/"+id+"/edit?status=error&message="+url.QueryEscape("Could not save the product."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/products?status=success&message="+url.QueryEscape("Product updated successfully."), http.StatusSeeOther)
}

// PostDeleteProduct removes the product along with the cart and wishlist rows
// that point at it. Past order items are untouched.
func (h *AdminHandler) PostDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if _, err := h.productRepo.GetByID(r.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.renderNotFound(w, r)
			return
		}
		logrus.Errorf("PostDeleteProduct: failed to load product %s: %v", id, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := h.productRepo.Delete(r.Context(), id); err != nil {
		logrus.Errorf("PostDeleteProduct: failed to delete product %s: %v", id, err)
		http.Redirect(w, r, "/admin/products?status=error&message="+url.QueryEscape("Could not delete the product."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/products?status=success&message="+url.QueryEscape("Product deleted successfully."), http.StatusSeeOther)
}

func (h *AdminHandler) productFormFromRequest(r *http.Request) ProductForm {
	return ProductForm{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Price:       r.FormValue("price"),
		Stock:       r.FormValue("stock"),
		CategoryID:  r.FormValue("category_id"),
		Image:       r.FormValue("image"),
	}
}

// validateProductForm combines the tag checks with the parses the tags cannot
// express: price must be a decimal of at least 0.01, stock a non-negative
// integer, and the category must actually exist.
func (h *AdminHandler) validateProductForm(r *http.Request, form ProductForm) (*models.Product, map[string]string) {
	formErrors := map[string]string{}
	if err := h.validator.Struct(form); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			formErrors = helpers.FormatValidationErrors(validationErrs)
		}
	}

	product := &models.Product{
		Name:        form.Name,
		Description: form.Description,
		CategoryID:  form.CategoryID,
		Image:       form.Image,
	}

	if formErrors["price"] == "" {
		price, err := decimal.NewFromString(form.Price)
		if err != nil || price.LessThan(decimal.NewFromFloat(0.01)) {
			formErrors["price"] = "Price must be a number of at least 0.01."
		} else {
			product.Price = price
		}
	}
	if formErrors["stock"] == "" {
		stock, err := parseNonNegativeInt(form.Stock)
		if err != nil {
			formErrors["stock"] = "Stock must be a non-negative whole number."
		} else {
			product.Stock = stock
		}
	}
	if formErrors["categoryid"] == "" && form.CategoryID != "" {
		if _, err := h.categoryRepo.GetByID(r.Context(), form.CategoryID); err != nil {
			formErrors["categoryid"] = "Please choose a valid category."
		}
	}

	return product, formErrors
}

func parseNonNegativeInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative value %d", n)
	}
	return n, nil
}

func (h *AdminHandler) renderProductForm(w http.ResponseWriter, r *http.Request, title, id string, form ProductForm, formErrors map[string]string) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		logrus.Errorf("renderProductForm: failed to list categories: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":      title,
		"Errors":     formErrors,
		"Form":       form,
		"ProductID":  id,
		"Categories": categories,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/product_form", data)
}

func (h *AdminHandler) renderNotFound(w http.ResponseWriter, r *http.Request) {
	data := helpers.GetBaseData(r, map[string]interface{}{"Title": "Page Not Found"})
	_ = h.render.HTML(w, http.StatusNotFound, "404", data)
}
