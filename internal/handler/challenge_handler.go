package handler

import (
	"net/http"
	"strings"
	"time"

	"wellnest/wellness-service/internal/models"
	"wellnest/wellness-service/internal/service"
	"wellnest/wellness-service/pkg/helpers"
)

type ChallengeHandler struct {
	challengeService     service.ChallengeService
	participationService service.ParticipationService
	validate             *helpers.CustomValidator
}

func NewChallengeHandler(
	challengeService service.ChallengeService,
	participationService service.ParticipationService,
	validate *helpers.CustomValidator,
) *ChallengeHandler {
	return &ChallengeHandler{
		challengeService:     challengeService,
		participationService: participationService,
		validate:             validate,
	}
}

// RegisterRoutes wires the challenge endpoints onto the mux
func (h *ChallengeHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/challenges", h.Collection)
	mux.HandleFunc("/api/challenges/search", h.Search)
	mux.HandleFunc("/api/challenges/", h.Item)
}

type createChallengeRequest struct {
	Name        string    `json:"name" validate:"required,resource_name,max=255"`
	ModuleName  string    `json:"module_name" validate:"required,max=255"`
	Description string    `json:"description" validate:"omitempty"`
	Image       string    `json:"image_url" validate:"omitempty,max=2048"`
	Phrase      string    `json:"phrase" validate:"omitempty,max=255"`
	Tips        []string  `json:"tips" validate:"omitempty,dive,max=500"`
	Goals       []string  `json:"goals" validate:"omitempty,dive,max=500"`
	Duration    time.Time `json:"duration" validate:"required,future"`
}

type updateChallengeRequest struct {
	ModuleName  string   `json:"module_name" validate:"omitempty,max=255"`
	Description string   `json:"description" validate:"omitempty"`
	Image       string   `json:"image_url" validate:"omitempty,max=2048"`
	Phrase      string   `json:"phrase" validate:"omitempty,max=255"`
	Tips        []string `json:"tips" validate:"omitempty,dive,max=500"`
	Goals       []string `json:"goals" validate:"omitempty,dive,max=500"`
}

type participationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Collection handles POST /api/challenges
func (h *ChallengeHandler) Collection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req createChallengeRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	challenge, err := h.challengeService.Create(r.Context(), service.CreateChallengeInput{
		Name:        req.Name,
		ModuleName:  req.ModuleName,
		Description: req.Description,
		Image:       req.Image,
		Phrase:      req.Phrase,
		Tips:        req.Tips,
		Goals:       req.Goals,
		Duration:    req.Duration,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"data": challenge})
}

// Search handles GET /api/challenges/search?name={term}. Results come back
// grouped by owning module.
func (h *ChallengeHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	groups, err := h.challengeService.SearchGroupedByModule(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": groups})
}

// Item handles /api/challenges/{name} and the participation subroutes
// register, confirm and participants.
func (h *ChallengeHandler) Item(w http.ResponseWriter, r *http.Request) {
	pathParts := strings.Split(strings.TrimPrefix(r.URL.Path, "/api/challenges/"), "/")
	if len(pathParts) == 0 || pathParts[0] == "" {
		writeError(w, http.StatusBadRequest, "challenge name is required")
		return
	}
	name := pathParts[0]

	if len(pathParts) == 2 {
		switch pathParts[1] {
		case "register":
			h.register(w, r, name)
		case "confirm":
			h.confirm(w, r, name)
		case "participants":
			h.participants(w, r, name)
		default:
			writeError(w, http.StatusNotFound, "not found")
		}
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

func (h *ChallengeHandler) get(w http.ResponseWriter, r *http.Request, name string) {
	challenge, err := h.challengeService.Get(r.Context(), name)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": challenge})
}

func (h *ChallengeHandler) update(w http.ResponseWriter, r *http.Request, name string) {
	var req updateChallengeRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	challenge, err := h.challengeService.Update(r.Context(), service.UpdateChallengeInput{
		Name:        name,
		ModuleName:  req.ModuleName,
		Description: req.Description,
		Image:       req.Image,
		Phrase:      req.Phrase,
		Tips:        req.Tips,
		Goals:       req.Goals,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": challenge})
}

func (h *ChallengeHandler) delete(w http.ResponseWriter, r *http.Request, name string) {
	if err := h.challengeService.Delete(r.Context(), name); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// register handles POST /api/challenges/{name}/register. Registering twice is
// a no-op, so success is reported either way.
func (h *ChallengeHandler) register(w http.ResponseWriter, r *http.Request, name string) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req participationRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	if err := h.participationService.Register(r.Context(), req.Email, name); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// confirm handles POST /api/challenges/{name}/confirm
func (h *ChallengeHandler) confirm(w http.ResponseWriter, r *http.Request, name string) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req participationRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	if err := h.participationService.Confirm(r.Context(), req.Email, name); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// participants handles GET /api/challenges/{name}/participants?state={state}
func (h *ChallengeHandler) participants(w http.ResponseWriter, r *http.Request, name string) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	state := models.ParticipationState(r.URL.Query().Get("state"))
	if state != models.StateRegistered && state != models.StateConfirmed {
		writeError(w, http.StatusBadRequest, "state must be registered or confirmed")
		return
	}

	participants, err := h.participationService.Participants(r.Context(), name, state)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": participants})
}
