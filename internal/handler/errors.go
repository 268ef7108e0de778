package handler

import (
	"errors"
	"net/http"

	"tiendaml-pc5/internal/service"
)

// writeErr traduce los errores centinela del service a códigos HTTP.
func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidArgument):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
