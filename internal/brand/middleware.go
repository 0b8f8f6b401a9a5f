package brand

import (
	"net/http"

	"intake-gateway/pkg/requestcontext"
)

// Middleware applies host routing decisions and stashes the resolved brand
// key in the request context for downstream handlers.
func Middleware(reg *Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b := reg.ByHost(r.Host)
			ctx := requestcontext.WithBrandKey(r.Context(), b.Key)
			r = r.WithContext(ctx)

			switch d := reg.Route(r.Host, r.URL.Path); d.Action {
			case ActionRewrite:
				r.URL.Path = d.Target
			case ActionRedirect:
				http.Redirect(w, r, d.Target, http.StatusTemporaryRedirect)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
