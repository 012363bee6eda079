package helpers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/models"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

const (
	ContextKeyUserID      contextKey = "userID"
	ContextKeyUser        contextKey = "userObject"
	CartCountKey          contextKey = "cart_count"
	WishlistCountKey      contextKey = "wishlist_count"
)

func GetUserIDFromContext(r *http.Request) string {
	if userID, ok := r.Context().Value(ContextKeyUserID).(string); ok {
		return userID
	}
	return ""
}

func GetUserFromContext(r *http.Request) *models.User {
	if user, ok := r.Context().Value(ContextKeyUser).(*models.User); ok {
		return user
	}
	return nil
}

func GetBaseData(r *http.Request, pageSpecificData map[string]interface{}) map[string]interface{} {
	if pageSpecificData == nil {
		pageSpecificData = make(map[string]interface{})
	}

	if _, exists := pageSpecificData["Title"]; !exists {
		pageSpecificData["Title"] = "Organic Store"
	}
	pageSpecificData["IsLoggedIn"] = false
	pageSpecificData["IsAdmin"] = false
	pageSpecificData["User"] = nil
	pageSpecificData["CartCount"] = int64(0)
	pageSpecificData["WishlistCount"] = int64(0)

	if user := GetUserFromContext(r); user != nil {
		pageSpecificData["User"] = user
		pageSpecificData["IsLoggedIn"] = true
		pageSpecificData["IsAdmin"] = user.IsAdmin
	}

	if count, ok := r.Context().Value(CartCountKey).(int64); ok {
		pageSpecificData["CartCount"] = count
	}
	if count, ok := r.Context().Value(WishlistCountKey).(int64); ok {
		pageSpecificData["WishlistCount"] = count
	}

	pageSpecificData["MessageStatus"] = r.URL.Query().Get("status")
	pageSpecificData["Message"] = r.URL.Query().Get("message")

	return pageSpecificData
}

// FormatValidationErrors turns validator tag failures into the inline form
// messages the templates show next to each field.
func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := strings.ToLower(err.Field())
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("%s is required.", err.Field())
		case "email":
			errorMessages[field] = fmt.Sprintf("%s must be a valid email address.", err.Field())
		case "eqfield":
			errorMessages[field] = "Passwords must match."
		case "min":
			errorMessages[field] = fmt.Sprintf("%s must be at least %s characters.", err.Field(), err.Param())
		case "max":
			errorMessages[field] = fmt.Sprintf("%s must be at most %s characters.", err.Field(), err.Param())
		case "gte":
			errorMessages[field] = fmt.Sprintf("%s must be at least %s.", err.Field(), err.Param())
		default:
			errorMessages[field] = fmt.Sprintf("%s is invalid.", err.Field())
		}
	}
	return errorMessages
}

func PasswordCompare(hashPass string, password []byte) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashPass), password)
	return err == nil
}

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logrus.Errorf("Error hashing password: %v", err)
		return ""
	}
	return string(bytes)
}
