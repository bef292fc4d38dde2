// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/app"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	usernameParam = "username"
	todoIDParam   = "todoID"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.Recoverer,
		h.withTraceID,
		h.withLogging,
		middleware.Timeout(h.requestTimeout),
		middleware.Compress(5, "application/json"),
	)

	router.Get("/api/ping", h.ping)
	router.Get("/api/version", h.getServerVersion)

	router.Post("/api/user/register", h.register)
	router.Post("/api/user/login", h.login)

	router.Route("/api/user/{"+usernameParam+"}/todos", func(r chi.Router) {
		r.Post("/", h.saveTodo)
		r.Get("/", h.listTodos)
		r.Delete("/{"+todoIDParam+"}", h.deleteTodo)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusNotFound)}, http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusMethodNotAllowed)}, http.StatusMethodNotAllowed)
	})

	return router
}

// writeError writes err as an [models.ErrorResponse] with the status of its
// kind. Errors without a kind never reach the body.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	msg := app.MsgInternalServerError
	if isKnownError(err) {
		msg = err.Error()
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: msg}, status)
}
