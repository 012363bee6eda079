package middlewares

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/helpers"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/repositories"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/services"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/utils/sessions"
)

// UserContextMiddleware resolves the session's user id to a User and stores
// both on the request context. Requests without a valid session pass through
// unauthenticated.
func UserContextMiddleware(sessionStore sessions.SessionStore, userRepo repositories.UserRepositoryImpl) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := sessionStore.GetUserID(r)
			if userID == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil || user == nil {
				logrus.Warnf("UserContextMiddleware: session user %s not found: %v", userID, err)
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyUserID, user.ID)
			ctx = context.WithValue(ctx, helpers.ContextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoginRequiredMiddleware redirects unauthenticated requests to the login
// page, preserving the original URL in ?next=.
func LoginRequiredMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if helpers.GetUserIDFromContext(r) == "" {
			http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// BadgeCountMiddleware injects the cart quantity sum and wishlist entry count
// shown in the navigation badges.
func BadgeCountMiddleware(cartSvc *services.CartService, wishlistSvc *services.WishlistService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := helpers.GetUserIDFromContext(r)
			if userID == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			if count, err := cartSvc.Count(ctx, userID); err != nil {
				logrus.Warnf("BadgeCountMiddleware: cart count for user %s: %v", userID, err)
			} else {
				ctx = context.WithValue(ctx, helpers.CartCountKey, count)
			}
			if count, err := wishlistSvc.Count(ctx, userID); err != nil {
				logrus.Warnf("BadgeCountMiddleware: wishlist count for user %s: %v", userID, err)
			} else {
				ctx = context.WithValue(ctx, helpers.WishlistCountKey, count)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
