package handler

import (
	"net/http"
	"strconv"
	"strings"

	"wellnest/wellness-service/internal/service"
	"wellnest/wellness-service/pkg/helpers"
)

type AwardHandler struct {
	awardService service.AwardService
	validate     *helpers.CustomValidator
}

func NewAwardHandler(awardService service.AwardService, validate *helpers.CustomValidator) *AwardHandler {
	return &AwardHandler{awardService: awardService, validate: validate}
}

// RegisterRoutes wires the award endpoints onto the mux
func (h *AwardHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/awards", h.Collection)
	mux.HandleFunc("/api/awards/", h.Item)
}

type createAwardRequest struct {
	Name        string `json:"name" validate:"required,resource_name,max=255"`
	Description string `json:"description" validate:"omitempty"`
	Stock       int32  `json:"stock" validate:"gte=0"`
	Image       string `json:"image_url" validate:"omitempty,max=2048"`
}

type updateAwardRequest struct {
	Name        string `json:"name" validate:"omitempty,resource_name,max=255"`
	Description string `json:"description" validate:"omitempty"`
	Image       string `json:"image_url" validate:"omitempty,max=2048"`
	Stock       *int32 `json:"stock" validate:"omitempty,gte=0"`
}

// Collection handles POST /api/awards and GET /api/awards
func (h *AwardHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.create(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// Item handles GET, PUT and DELETE on /api/awards/{id}
func (h *AwardHandler) Item(w http.ResponseWriter, r *http.Request) {
	pathParts := strings.Split(strings.TrimPrefix(r.URL.Path, "/api/awards/"), "/")
	if len(pathParts) != 1 || pathParts[0] == "" {
		writeError(w, http.StatusBadRequest, "award ID is required")
		return
	}

	id, err := strconv.ParseUint(pathParts[0], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid award ID")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodPut:
		h.update(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *AwardHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createAwardRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	award, err := h.awardService.Create(r.Context(), service.CreateAwardInput{
		Name:        req.Name,
		Description: req.Description,
		Stock:       req.Stock,
		Image:       req.Image,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"data": award})
}

func (h *AwardHandler) list(w http.ResponseWriter, r *http.Request) {
	page, perPage, err := parsePagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	awards, total, err := h.awardService.List(r.Context(), page, perPage)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": awards,
		"meta": listMeta{Total: total, Page: page, PerPage: perPage},
	})
}

func (h *AwardHandler) get(w http.ResponseWriter, r *http.Request, id uint64) {
	award, err := h.awardService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": award})
}

func (h *AwardHandler) update(w http.ResponseWriter, r *http.Request, id uint64) {
	var req updateAwardRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	award, err := h.awardService.Update(r.Context(), service.UpdateAwardInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Stock:       req.Stock,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": award})
}

func (h *AwardHandler) delete(w http.ResponseWriter, r *http.Request, id uint64) {
	if err := h.awardService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
