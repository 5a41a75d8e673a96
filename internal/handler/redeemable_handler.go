package handler

import (
	"net/http"
	"strconv"
	"strings"

	"wellnest/wellness-service/internal/models"
	"wellnest/wellness-service/internal/service"
	"wellnest/wellness-service/pkg/helpers"
)

type RedeemableHandler struct {
	redeemableService service.RedeemableService
	validate          *helpers.CustomValidator
}

func NewRedeemableHandler(redeemableService service.RedeemableService, validate *helpers.CustomValidator) *RedeemableHandler {
	return &RedeemableHandler{redeemableService: redeemableService, validate: validate}
}

// RegisterRoutes wires the redeemable endpoints onto the mux
func (h *RedeemableHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/redeemables", h.Collection)
	mux.HandleFunc("/api/redeemables/batch", h.Batch)
	mux.HandleFunc("/api/redeemables/", h.Item)
}

type redeemableRequest struct {
	ChallengeName string `json:"challenge_name" validate:"required,max=255"`
	AwardID       uint64 `json:"award_id" validate:"required"`
	LimitDays     int32  `json:"limit_days" validate:"gt=0"`
}

type batchRedeemableRequest struct {
	Redeemables []redeemableRequest `json:"redeemables" validate:"required,min=1,dive"`
}

type updateRedeemableRequest struct {
	LimitDays *int32 `json:"limit_days" validate:"omitempty,gt=0"`
}

// Collection handles POST /api/redeemables
func (h *RedeemableHandler) Collection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req redeemableRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	redeemable, err := h.redeemableService.Create(r.Context(), service.RedeemableInput{
		ChallengeName: req.ChallengeName,
		AwardID:       req.AwardID,
		LimitDays:     req.LimitDays,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"data": redeemable})
}

// Batch handles POST /api/redeemables/batch. All links are created in one
// transaction; any bad entry aborts the whole batch.
func (h *RedeemableHandler) Batch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req batchRedeemableRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	inputs := make([]service.RedeemableInput, 0, len(req.Redeemables))
	for _, item := range req.Redeemables {
		inputs = append(inputs, service.RedeemableInput{
			ChallengeName: item.ChallengeName,
			AwardID:       item.AwardID,
			LimitDays:     item.LimitDays,
		})
	}

	if err := h.redeemableService.CreateBatch(r.Context(), inputs); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// Item handles /api/redeemables/{challenge} (bulk delete) and
// /api/redeemables/{challenge}/{award} (single link).
func (h *RedeemableHandler) Item(w http.ResponseWriter, r *http.Request) {
	pathParts := strings.Split(strings.TrimPrefix(r.URL.Path, "/api/redeemables/"), "/")
	if len(pathParts) == 0 || pathParts[0] == "" {
		writeError(w, http.StatusBadRequest, "challenge name is required")
		return
	}
	challengeName := pathParts[0]

	if len(pathParts) == 1 {
		switch r.Method {
		case http.MethodGet:
			h.listForChallenge(w, r, challengeName)
		case http.MethodDelete:
			h.deleteAllForChallenge(w, r, challengeName)
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
		return
	}

	if len(pathParts) != 2 {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	awardID, err := strconv.ParseUint(pathParts[1], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid award ID")
		return
	}
	key := models.RedeemableKey{ChallengeName: challengeName, AwardID: awardID}

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, key)
	case http.MethodPut:
		h.update(w, r, key)
	case http.MethodDelete:
		h.delete(w, r, key)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *RedeemableHandler) get(w http.ResponseWriter, r *http.Request, key models.RedeemableKey) {
	redeemable, err := h.redeemableService.Get(r.Context(), key)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": redeemable})
}

func (h *RedeemableHandler) update(w http.ResponseWriter, r *http.Request, key models.RedeemableKey) {
	var req updateRedeemableRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	redeemable, err := h.redeemableService.UpdateLimitDays(r.Context(), key, req.LimitDays)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": redeemable})
}

func (h *RedeemableHandler) delete(w http.ResponseWriter, r *http.Request, key models.RedeemableKey) {
	if err := h.redeemableService.Delete(r.Context(), key); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RedeemableHandler) listForChallenge(w http.ResponseWriter, r *http.Request, challengeName string) {
	redeemables, err := h.redeemableService.ListForChallenge(r.Context(), challengeName)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": redeemables})
}

func (h *RedeemableHandler) deleteAllForChallenge(w http.ResponseWriter, r *http.Request, challengeName string) {
	if err := h.redeemableService.DeleteAllForChallenge(r.Context(), challengeName); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
