package binder

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Query binds URL query parameters into fields tagged `query:"name"`.
// Slices accept repeated or comma-separated values; pointers mark optional
// fields.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}

// Path binds chi URL parameters into fields tagged `path:"name"`.
func Path() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		values := make(map[string][]string)
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			for i, key := range rctx.URLParams.Keys {
				if i < len(rctx.URLParams.Values) {
					values[key] = []string{rctx.URLParams.Values[i]}
				}
			}
		}
		return bindToStruct(v, "path", values, ErrFailedToParsePath)
	}
}
