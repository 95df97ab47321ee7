package handlers

import (
	"context"
	"net/http"
	"strings"
)

const (
	// MethodOverrideField is the form field HTML forms use to tunnel PUT and DELETE.
	MethodOverrideField = "_method"
	// MethodOverrideHeader is the header alternative to MethodOverrideField.
	MethodOverrideHeader = "X-HTTP-Method-Override"
)

var overridableMethods = map[string]bool{
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
}

type formErrorKey struct{}

// MethodOverride rewrites a POST into the method named by the override header
// or form field, so plain HTML forms can reach PUT and DELETE routes.
// Only PUT, PATCH and DELETE are accepted; anything else leaves the request as is.
// When the body cannot be parsed the request stays a POST and the parse
// error is kept for formError.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			method := r.Header.Get(MethodOverrideHeader)
			if method == "" {
				if err := parseForm(r); err != nil {
					r = r.WithContext(context.WithValue(r.Context(), formErrorKey{}, err))
				} else {
					method = r.PostFormValue(MethodOverrideField)
				}
			}
			method = strings.ToUpper(strings.TrimSpace(method))
			if overridableMethods[method] {
				r.Method = method
			}
		}
		next.ServeHTTP(w, r)
	})
}

// formError returns the body parse error MethodOverride ran into, if any.
func formError(r *http.Request) error {
	err, _ := r.Context().Value(formErrorKey{}).(error)
	return err
}
