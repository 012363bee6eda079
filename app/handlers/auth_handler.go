package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/helpers"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/models"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/repositories"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/utils/sessions"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

type AuthHandler struct {
	render       *render.Render
	userRepo     repositories.UserRepositoryImpl
	sessionStore sessions.SessionStore
	validator    *validator.Validate
}

func NewAuthHandler(r *render.Render, userRepo repositories.UserRepositoryImpl, sessionStore sessions.SessionStore, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{
		render:       r,
		userRepo:     userRepo,
		sessionStore: sessionStore,
		validator:    validate,
	}
}

type RegisterForm struct {
	Name            string `validate:"required,min=2,max=100"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// sanitizeNext only allows same-site relative redirect targets.
func sanitizeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return ""
	}
	return next
}

func (h *AuthHandler) LoginGet(w http.ResponseWriter, r *http.Request) {
	if helpers.GetUserIDFromContext(r) != "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Login",
		"Next":  sanitizeNext(r.URL.Query().Get("next")),
	})
	_ = h.render.HTML(w, http.StatusOK, "login", data)
}

func (h *AuthHandler) LoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("Failed to process form data."), http.StatusSeeOther)
		return
	}

	form := LoginForm{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
	if err := h.validator.Struct(form); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			data := helpers.GetBaseData(r, map[string]interface{}{
				"Title":  "Login",
				"Errors": helpers.FormatValidationErrors(validationErrs),
				"Email":  form.Email,
			})
			_ = h.render.HTML(w, http.StatusOK, "login", data)
			return
		}
	}

	user, err := h.userRepo.FindByEmail(r.Context(), form.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.Errorf("LoginPost: failed to look up user %s: %v", form.Email, err)
		}
		http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("Invalid email or password"), http.StatusSeeOther)
		return
	}

	if !helpers.PasswordCompare(user.PasswordHash, []byte(form.Password)) {
		http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("Invalid email or password"), http.StatusSeeOther)
		return
	}

	if err := h.sessionStore.SetUserID(w, r, user.ID); err != nil {
		logrus.Errorf("LoginPost: failed to set session for user %s: %v", user.ID, err)
		http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("Failed to create login session."), http.StatusSeeOther)
		return
	}

	target := sanitizeNext(r.FormValue("next"))
	if target == "" {
		target = "/?status=success&message=" + url.QueryEscape("Login successful!")
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *AuthHandler) RegisterGet(w http.ResponseWriter, r *http.Request) {
	if helpers.GetUserIDFromContext(r) != "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{"Title": "Register"})
	_ = h.render.HTML(w, http.StatusOK, "register", data)
}

func (h *AuthHandler) RegisterPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/register?status=error&message="+url.QueryEscape("Failed to process form data."), http.StatusSeeOther)
		return
	}

	form := RegisterForm{
		Name:            r.FormValue("name"),
		Email:           r.FormValue("email"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirm_password"),
	}

	formErrors := map[string]string{}
	if err := h.validator.Struct(form); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			formErrors = helpers.FormatValidationErrors(validationErrs)
		}
	}

	// Duplicate email surfaces as a field-level error, same as the other
	// validation failures.
	if formErrors["email"] == "" {
		if _, err := h.userRepo.FindByEmail(r.Context(), form.Email); err == nil {
			formErrors["email"] = "Email already registered. Please use a different email or login."
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.Errorf("RegisterPost: failed to check email %s: %v", form.Email, err)
			http.Redirect(w, r, "/register?status=error&message="+url.QueryEscape("Something went wrong. Please try again."), http.StatusSeeOther)
			return
		}
	}

	if len(formErrors) > 0 {
		data := helpers.GetBaseData(r, map[string]interface{}{
			"Title":  "Register",
			"Errors": formErrors,
			"Name":   form.Name,
			"Email":  form.Email,
		})
		_ = h.render.HTML(w, http.StatusOK, "register", data)
		return
	}

	user := &models.User{
		Name:         form.Name,
		Email:        form.Email,
		PasswordHash: helpers.HashPassword(form.Password),
	}
	if err := h.userRepo.Create(r.Context(), user); err != nil {
		logrus.Errorf("RegisterPost: failed to create user %s: %v", form.Email, err)
		http.Redirect(w, r, "/register?status=error&message="+url.QueryEscape("Something went wrong. Please try again."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/login?status=success&message="+url.QueryEscape("Registration successful! Please login with your credentials."), http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.ClearSession(w, r); err != nil {
		logrus.Warnf("Logout: failed to clear session: %v", err)
	}
	http.Redirect(w, r, "/?status=info&message="+url.QueryEscape("You have been logged out."), http.StatusSeeOther)
}
