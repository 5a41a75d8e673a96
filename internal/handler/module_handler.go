package handler

import (
	"net/http"
	"strings"

	"wellnest/wellness-service/internal/service"
	"wellnest/wellness-service/pkg/helpers"
)

type ModuleHandler struct {
	moduleService service.ModuleService
	validate      *helpers.CustomValidator
}

func NewModuleHandler(moduleService service.ModuleService, validate *helpers.CustomValidator) *ModuleHandler {
	return &ModuleHandler{moduleService: moduleService, validate: validate}
}

// RegisterRoutes wires the module endpoints onto the mux
func (h *ModuleHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/modules", h.Collection)
	mux.HandleFunc("/api/modules/", h.Item)
}

type createModuleRequest struct {
	Name        string `json:"name" validate:"required,resource_name,max=255"`
	Description string `json:"description" validate:"omitempty"`
	Image       string `json:"image_url" validate:"omitempty,max=2048"`
}

type updateModuleRequest struct {
	Description string `json:"description" validate:"omitempty"`
	Image       string `json:"image_url" validate:"omitempty,max=2048"`
}

// Collection handles POST /api/modules and GET /api/modules
func (h *ModuleHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.create(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// Item handles /api/modules/{name} and /api/modules/{name}/challenges
func (h *ModuleHandler) Item(w http.ResponseWriter, r *http.Request) {
	pathParts := strings.Split(strings.TrimPrefix(r.URL.Path, "/api/modules/"), "/")
	if len(pathParts) == 0 || pathParts[0] == "" {
		writeError(w, http.StatusBadRequest, "module name is required")
		return
	}
	name := pathParts[0]

	if len(pathParts) == 2 && pathParts[1] == "challenges" {
		h.challenges(w, r, name)
		return
	}
	if len(pathParts) > 1 {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, name)
	case http.MethodPut:
		h.update(w, r, name)
	case http.MethodDelete:
		h.delete(w, r, name)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *ModuleHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createModuleRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	module, err := h.moduleService.Create(r.Context(), service.CreateModuleInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"data": module})
}

func (h *ModuleHandler) list(w http.ResponseWriter, r *http.Request) {
	page, perPage, err := parsePagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	modules, total, err := h.moduleService.List(r.Context(), page, perPage)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": modules,
		"meta": listMeta{Total: total, Page: page, PerPage: perPage},
	})
}

func (h *ModuleHandler) get(w http.ResponseWriter, r *http.Request, name string) {
	module, err := h.moduleService.Get(r.Context(), name)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": module})
}

func (h *ModuleHandler) update(w http.ResponseWriter, r *http.Request, name string) {
	var req updateModuleRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	module, err := h.moduleService.Update(r.Context(), service.UpdateModuleInput{
		Name:        name,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": module})
}

func (h *ModuleHandler) challenges(w http.ResponseWriter, r *http.Request, name string) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	challenges, err := h.moduleService.Challenges(r.Context(), name)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": challenges})
}

func (h *ModuleHandler) delete(w http.ResponseWriter, r *http.Request, name string) {
	if err := h.moduleService.Delete(r.Context(), name); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
