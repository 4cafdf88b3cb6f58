package pagination

import (
	"context"
	"net/http"
)

type contextKey string

const paramsContextKey contextKey = "github.com/hanko-field/storefront-content/internal/platform/pagination/params"

// WithParams stores the parsed pagination parameters on the context.
func WithParams(ctx context.Context, params Params) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, paramsContextKey, params)
}

// FromContext retrieves parameters previously attached via WithParams.
func FromContext(ctx context.Context) (Params, bool) {
	if ctx == nil {
		return Params{}, false
	}
	params, ok := ctx.Value(paramsContextKey).(Params)
	return params, ok
}

// Middleware parses pagination parameters and stores them on the request context.
// Invalid parameters are passed to onError instead of the next handler.
func Middleware(opts Options, onError func(w http.ResponseWriter, r *http.Request, err error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			params, err := FromRequest(r, opts)
			if err != nil {
				if onError != nil {
					onError(w, r, err)
				} else {
					http.Error(w, err.Error(), http.StatusBadRequest)
				}
				return
			}
			next.ServeHTTP(w, r.WithContext(WithParams(r.Context(), params)))
		})
	}
}
