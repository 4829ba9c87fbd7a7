// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler intended for [chi.Mux.MethodNotAllowed].
//
// It answers 405 Method Not Allowed with an Allow header listing the methods
// registered for the requested path. Only exact route patterns are matched;
// a path with no registered route gets 404.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute *chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = &route
				break
			}
		}

		if foundRoute == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.Header().Set("Allow", allowedMethods(*foundRoute))
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func allowedMethods(route chi.Route) string {
	methods := make([]string, 0, len(route.Handlers))
	for method := range route.Handlers {
		methods = append(methods, method)
	}
	sort.Strings(methods)

	return strings.Join(methods, ", ")
}
