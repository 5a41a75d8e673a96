package handler

import (
	"net/http"
	"strings"

	"wellnest/wellness-service/internal/service"
	"wellnest/wellness-service/pkg/helpers"
)

type UserHandler struct {
	userService service.UserService
	validate    *helpers.CustomValidator
}

func NewUserHandler(userService service.UserService, validate *helpers.CustomValidator) *UserHandler {
	return &UserHandler{userService: userService, validate: validate}
}

// RegisterRoutes wires the user endpoints onto the mux
func (h *UserHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/users", h.Collection)
	mux.HandleFunc("/api/users/", h.Item)
}

type createUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,max=255"`
	Role  string `json:"role" validate:"required,role"`
}

type updateUserRequest struct {
	Name string `json:"name" validate:"omitempty,max=255"`
	Role string `json:"role" validate:"omitempty,role"`
}

// Collection handles POST /api/users and GET /api/users
func (h *UserHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.create(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// Item handles /api/users/{email} and /api/users/{email}/medical-approval
func (h *UserHandler) Item(w http.ResponseWriter, r *http.Request) {
	pathParts := strings.Split(strings.TrimPrefix(r.URL.Path, "/api/users/"), "/")
	if len(pathParts) == 0 || pathParts[0] == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}
	email := pathParts[0]

	if len(pathParts) == 2 && pathParts[1] == "medical-approval" {
		h.approveMedical(w, r, email)
		return
	}
	if len(pathParts) > 1 {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, email)
	case http.MethodPut:
		h.update(w, r, email)
	case http.MethodDelete:
		h.delete(w, r, email)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *UserHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	user, err := h.userService.Create(r.Context(), service.CreateUserInput{
		Email: req.Email,
		Name:  req.Name,
		Role:  req.Role,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"data": user})
}

func (h *UserHandler) list(w http.ResponseWriter, r *http.Request) {
	page, perPage, err := parsePagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	users, total, err := h.userService.List(r.Context(), page, perPage)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": users,
		"meta": listMeta{Total: total, Page: page, PerPage: perPage},
	})
}

func (h *UserHandler) get(w http.ResponseWriter, r *http.Request, email string) {
	user, err := h.userService.GetByEmail(r.Context(), email)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": user})
}

func (h *UserHandler) update(w http.ResponseWriter, r *http.Request, email string) {
	var req updateUserRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	user, err := h.userService.Update(r.Context(), service.UpdateUserInput{
		Email: email,
		Name:  req.Name,
		Role:  req.Role,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": user})
}

func (h *UserHandler) approveMedical(w http.ResponseWriter, r *http.Request, email string) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	user, err := h.userService.ApproveMedical(r.Context(), email)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": user})
}

func (h *UserHandler) delete(w http.ResponseWriter, r *http.Request, email string) {
	if err := h.userService.Delete(r.Context(), email); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
