package middlewares

import (
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/helpers"
)

// AdminRequiredMiddleware guards admin routes. Unauthenticated users go to
// the login page; authenticated non-admins are sent home with a warning.
// Runs after UserContextMiddleware so the user object is already loaded.
func AdminRequiredMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := helpers.GetUserFromContext(r)
		if user == nil {
			http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
			return
		}

		if !user.IsAdmin {
			logrus.Warnf("AdminRequiredMiddleware: user %s attempted to access %s without admin rights", user.ID, r.URL.Path)
			http.Redirect(w, r, "/?status=warning&message="+url.QueryEscape("You do not have permission to access this page."), http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}
