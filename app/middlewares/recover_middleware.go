package middlewares

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/helpers"
	"github.com/unrolled/render"
)

// RecoverMiddleware turns a handler panic into the 500 page instead of a
// dropped connection.
func RecoverMiddleware(r *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logrus.Errorf("panic serving %s %s: %v", req.Method, req.URL.Path, rec)
					data := helpers.GetBaseData(req, map[string]interface{}{"Title": "Something Went Wrong"})
					_ = r.HTML(w, http.StatusInternalServerError, "500", data)
				}
			}()
			next.ServeHTTP(w, req)
		})
	}
}
