// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A request whose method is not served on its path gets 404 instead of
// chi's 405, so callers cannot probe which routes exist.
//
// Only static patterns are compared against the request path. Requests to
// parameterised routes with an unsupported method always get 404.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		w.WriteHeader(http.StatusNotFound)
	}
}
