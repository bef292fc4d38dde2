// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-todo-keeper/internal/app"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) saveTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	username, err := pathParam(r, usernameParam)
	if err != nil {
		log.Err(err).Msg("invalid username in path")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidDataProvided}, http.StatusBadRequest)
		return
	}

	var request models.SaveTodoRequest
	if err = json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize)).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidDataProvided}, http.StatusBadRequest)
		return
	}

	todo, err := h.services.TodoService.SaveTodo(ctx, username, request.Content)
	if err != nil {
		log.Err(err).Str("username", username).Msg("saving todo failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, todo, http.StatusCreated)
}

func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	username, err := pathParam(r, usernameParam)
	if err != nil {
		log.Err(err).Msg("invalid username in path")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidDataProvided}, http.StatusBadRequest)
		return
	}

	todos, err := h.services.TodoService.ListTodos(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("listing todos failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, todos, http.StatusOK)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	username, err := pathParam(r, usernameParam)
	if err != nil {
		log.Err(err).Msg("invalid username in path")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidDataProvided}, http.StatusBadRequest)
		return
	}

	todoID, err := strconv.ParseInt(chi.URLParam(r, todoIDParam), 10, 64)
	if err != nil {
		log.Err(err).Str("username", username).Msg("invalid todo id in path")
		writeError(w, service.ErrInvalidTodoID)
		return
	}

	if err = h.services.TodoService.DeleteTodo(ctx, username, todoID); err != nil {
		log.Err(err).Str("username", username).Int64("todo_id", todoID).Msg("deleting todo failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathParam returns the decoded value of a route parameter. chi matches on
// r.URL.RawPath whenever the request path needed non-default escaping, and
// its parameters are then still escaped.
func pathParam(r *http.Request, key string) (string, error) {
	value := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return value, nil
	}
	return url.PathUnescape(value)
}
