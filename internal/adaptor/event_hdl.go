package adaptor

import (
	"encoding/json"
	"net/http"
	"time"

	"eventhub/internal/data/repository"
	"eventhub/internal/dto/request"
	"eventhub/internal/usecase"
	"eventhub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type EventHandler struct {
	service  usecase.EventService
	conflict usecase.ConflictService
	log      *zap.Logger
}

func NewEventHandler(service usecase.EventService, conflict usecase.ConflictService, log *zap.Logger) *EventHandler {
	return &EventHandler{
		service:  service,
		conflict: conflict,
		log:      log.With(zap.String("handler", "event")),
	}
}

// CreateEvent handles POST /api/events (admin)
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	events, err := h.service.CreateEvent(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create event")
		return
	}

	utils.ResponseCreated(w, "success", events)
}

// GetEvents handles GET /api/events (public)
func (h *EventHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filters := repository.EventFilters{
		Category: query.Get("category"),
		Status:   query.Get("status"),
	}
	if from := query.Get("date_from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			filters.DateFrom = &t
		}
	}
	if to := query.Get("date_to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			filters.DateTo = &t
		}
	}

	page := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	events, err := h.service.GetEvents(r.Context(), filters, query.Get("sort"), page)
	if err != nil {
		handleServiceError(h.log, w, err, "get events")
		return
	}

	utils.ResponseSuccess(w, "success", events)
}

// GetEvent handles GET /api/events/{id} (public)
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")
	if eventID == "" {
		utils.ResponseBadRequest(w, "Event ID is required", nil)
		return
	}

	event, err := h.service.GetEventByID(r.Context(), eventID)
	if err != nil {
		handleServiceError(h.log, w, err, "get event")
		return
	}

	utils.ResponseSuccess(w, "success", event)
}

// UpdateEvent handles PUT /api/events/{id} (admin)
func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")
	if eventID == "" {
		utils.ResponseBadRequest(w, "Event ID is required", nil)
		return
	}

	var req request.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	event, err := h.service.UpdateEvent(r.Context(), eventID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update event")
		return
	}

	utils.ResponseSuccess(w, "success", event)
}

// DeleteEvent handles DELETE /api/events/{id} (admin)
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")
	if eventID == "" {
		utils.ResponseBadRequest(w, "Event ID is required", nil)
		return
	}

	if err := h.service.DeleteEvent(r.Context(), eventID); err != nil {
		handleServiceError(h.log, w, err, "delete event")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CheckConflicts handles POST /api/events/check-conflicts (protected)
func (h *EventHandler) CheckConflicts(w http.ResponseWriter, r *http.Request) {
	var req request.CheckConflictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.conflict.CheckConflicts(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "check conflicts")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}
