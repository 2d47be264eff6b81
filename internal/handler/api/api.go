// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package api provides the read-only public JSON API.
package api

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/olegiv/folio/internal/middleware"
	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/service"
)

// Handler holds shared dependencies for all API handlers.
type Handler struct {
	experiences *service.ExperienceService
	education   *service.EducationService
	blog        *service.BlogService
	products    *service.ProductService
	content     *service.ContentService
}

// NewHandler creates a new API handler.
func NewHandler(db *sql.DB) *Handler {
	return &Handler{
		experiences: service.NewExperienceService(db),
		education:   service.NewEducationService(db),
		blog:        service.NewBlogService(db),
		products:    service.NewProductService(db),
		content:     service.NewContentService(db),
	}
}

// Response is the standard API response wrapper.
type Response struct {
	Data any   `json:"data"`
	Meta *Meta `json:"meta,omitempty"`
}

// Meta describes the returned data.
type Meta struct {
	Lang  string `json:"lang"`
	Total int    `json:"total,omitempty"`
}

// ErrorResponse is the standard API error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a successful JSON response.
func WriteSuccess(w http.ResponseWriter, data any, meta *Meta) {
	WriteJSON(w, http.StatusOK, Response{
		Data: data,
		Meta: meta,
	})
}

// WriteError writes an error JSON response.
func WriteError(w http.ResponseWriter, statusCode int, code, message string, details map[string]string) {
	resp := ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
	WriteJSON(w, statusCode, resp)
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string, details map[string]string) {
	WriteError(w, http.StatusBadRequest, "bad_request", message, details)
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, "not_found", message, nil)
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, "internal_error", message, nil)
}

// StatusResponse contains API status information.
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Status returns the API status.
func (h *Handler) Status(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, StatusResponse{
		Status:  "ok",
		Version: "v1",
	}, nil)
}

// NotFound answers unmatched API routes.
func (h *Handler) NotFound(w http.ResponseWriter, _ *http.Request) {
	WriteNotFound(w, "Endpoint not found")
}

// requestLang returns the language of the request. An explicit ?lang value
// that is not supported is rejected with 400 (response written).
func requestLang(w http.ResponseWriter, r *http.Request) (model.Lang, bool) {
	raw := r.URL.Query().Get(middleware.LangParam)
	if raw == "" {
		return middleware.GetLang(r.Context()), true
	}
	lang, ok := model.ParseLang(raw)
	if !ok {
		WriteBadRequest(w, "Unsupported language", map[string]string{
			middleware.LangParam: "must be one of: en, vn",
		})
		return "", false
	}
	return lang, true
}
