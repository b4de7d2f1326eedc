package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/platform/logger"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/port/repository"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/usecase"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// respondError maps domain errors onto HTTP statuses in one place so every
// handler reports failures the same way.
func respondError(w http.ResponseWriter, log logger.Logger, err error) {
	var status int
	switch {
	case errors.Is(err, usecase.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, usecase.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, usecase.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, repository.ErrAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, repository.ErrInsufficientFunds):
		status = http.StatusPaymentRequired
	case errors.Is(err, repository.ErrOutOfStock),
		errors.Is(err, repository.ErrOptimisticLock):
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
		log.Errorf("Unhandled error in HTTP handler: %v", err)
	}
	respondJSON(w, status, errorResponse{Error: err.Error()})
}

func decodeBody(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return usecase.ErrValidation
	}
	return nil
}

func pagination(r *http.Request) (page, pageSize int) {
	page, pageSize = 1, 20
	if n, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && n > 0 {
		page = n
	}
	if n, err := strconv.Atoi(r.URL.Query().Get("pageSize")); err == nil && n > 0 && n <= 100 {
		pageSize = n
	}
	return page, pageSize
}
