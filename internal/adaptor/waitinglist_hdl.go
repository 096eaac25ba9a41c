package adaptor

import (
	"encoding/json"
	"net/http"

	"eventhub/internal/dto/request"
	"eventhub/internal/usecase"
	"eventhub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type WaitingListHandler struct {
	service usecase.WaitingListService
	log     *zap.Logger
}

func NewWaitingListHandler(service usecase.WaitingListService, log *zap.Logger) *WaitingListHandler {
	return &WaitingListHandler{
		service: service,
		log:     log.With(zap.String("handler", "waiting_list")),
	}
}

// Join handles POST /api/waiting-list (protected)
func (h *WaitingListHandler) Join(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	userEmail, _ := utils.GetUserEmailFromContext(r.Context())

	var req request.JoinWaitingListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	entry, err := h.service.JoinWaitingList(r.Context(), userID.String(), userEmail, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "join waiting list")
		return
	}

	utils.ResponseCreated(w, "success", entry)
}

// GetEventWaitingList handles GET /api/events/{id}/waiting-list (admin)
func (h *WaitingListHandler) GetEventWaitingList(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")
	if eventID == "" {
		utils.ResponseBadRequest(w, "Event ID is required", nil)
		return
	}

	entries, err := h.service.GetEventWaitingList(r.Context(), eventID)
	if err != nil {
		handleServiceError(h.log, w, err, "get event waiting list")
		return
	}

	utils.ResponseSuccess(w, "success", entries)
}

// GetMyEntries handles GET /api/my-waitlist (protected)
func (h *WaitingListHandler) GetMyEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	entries, err := h.service.GetMyEntries(r.Context(), userID.String())
	if err != nil {
		handleServiceError(h.log, w, err, "get waiting list entries")
		return
	}

	utils.ResponseSuccess(w, "success", entries)
}

// Remove handles DELETE /api/waiting-list/{id} (protected, owner or admin)
func (h *WaitingListHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	entryID := chi.URLParam(r, "id")
	if entryID == "" {
		utils.ResponseBadRequest(w, "Entry ID is required", nil)
		return
	}

	if err := h.service.RemoveEntry(r.Context(), userID.String(), utils.IsAdminContext(r.Context()), entryID); err != nil {
		handleServiceError(h.log, w, err, "remove waiting list entry")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
