package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"wellnest/wellness-service/internal/service"
	"wellnest/wellness-service/pkg/helpers"

	"github.com/go-playground/validator/v10"
)

// Helper functions shared by all HTTP handlers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps service sentinel errors to HTTP statuses. Anything
// unrecognized is a 500 with a generic message so storage details never leak.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrModuleNotFound),
		errors.Is(err, service.ErrChallengeNotFound),
		errors.Is(err, service.ErrAwardNotFound),
		errors.Is(err, service.ErrRedeemableNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrModuleExists),
		errors.Is(err, service.ErrChallengeExists),
		errors.Is(err, service.ErrRedeemableExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrInvalidPagination),
		errors.Is(err, service.ErrSearchTermRequired):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeAndValidate decodes the JSON body into dst and runs struct validation.
// It writes the error response itself and reports whether the caller may
// proceed.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, validate *helpers.CustomValidator, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	if err := validate.Validate(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			helpers.WriteValidationErrorResponse(w, validationErrors)
		} else {
			writeError(w, http.StatusBadRequest, "invalid request body")
		}
		return false
	}

	return true
}

// parsePagination reads page and per_page query parameters with Laravel-style
// defaults. Malformed values are rejected, missing ones fall back.
func parsePagination(r *http.Request) (page, perPage int32, err error) {
	page, perPage = 1, 15

	if raw := r.URL.Query().Get("page"); raw != "" {
		n, parseErr := strconv.ParseInt(raw, 10, 32)
		if parseErr != nil {
			return 0, 0, errors.New("invalid page parameter")
		}
		page = int32(n)
	}
	if raw := r.URL.Query().Get("per_page"); raw != "" {
		n, parseErr := strconv.ParseInt(raw, 10, 32)
		if parseErr != nil {
			return 0, 0, errors.New("invalid per_page parameter")
		}
		perPage = int32(n)
	}

	return page, perPage, nil
}

// listMeta is the pagination envelope attached to list responses
type listMeta struct {
	Total   int32 `json:"total"`
	Page    int32 `json:"page"`
	PerPage int32 `json:"per_page"`
}
