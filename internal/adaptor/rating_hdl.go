package adaptor

import (
	"encoding/json"
	"net/http"

	"eventhub/internal/data/repository"
	"eventhub/internal/dto/request"
	"eventhub/internal/usecase"
	"eventhub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RatingHandler struct {
	service usecase.RatingService
	log     *zap.Logger
}

func NewRatingHandler(service usecase.RatingService, log *zap.Logger) *RatingHandler {
	return &RatingHandler{
		service: service,
		log:     log.With(zap.String("handler", "rating")),
	}
}

// CreateRating handles POST /api/ratings (protected)
func (h *RatingHandler) CreateRating(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	rating, err := h.service.CreateRating(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create rating")
		return
	}

	utils.ResponseCreated(w, "success", rating)
}

// GetRatings handles GET /api/ratings (public)
func (h *RatingHandler) GetRatings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filters := repository.RatingFilters{
		RatingType: query.Get("type"),
	}
	if raw := query.Get("event_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filters.EventID = &id
		}
	}
	if raw := query.Get("resource_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filters.ResourceID = &id
		}
	}

	page := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	ratings, err := h.service.GetRatings(r.Context(), filters, query.Get("sort"), page)
	if err != nil {
		handleServiceError(h.log, w, err, "get ratings")
		return
	}

	utils.ResponseSuccess(w, "success", ratings)
}

// UpdateRating handles PUT /api/ratings/{id} (protected, owner or admin)
func (h *RatingHandler) UpdateRating(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	ratingID := chi.URLParam(r, "id")
	if ratingID == "" {
		utils.ResponseBadRequest(w, "Rating ID is required", nil)
		return
	}

	var req request.UpdateRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	rating, err := h.service.UpdateRating(r.Context(), userID.String(), utils.IsAdminContext(r.Context()), ratingID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update rating")
		return
	}

	utils.ResponseSuccess(w, "success", rating)
}

// DeleteRating handles DELETE /api/ratings/{id} (protected, owner or admin)
func (h *RatingHandler) DeleteRating(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	ratingID := chi.URLParam(r, "id")
	if ratingID == "" {
		utils.ResponseBadRequest(w, "Rating ID is required", nil)
		return
	}

	if err := h.service.DeleteRating(r.Context(), userID.String(), utils.IsAdminContext(r.Context()), ratingID); err != nil {
		handleServiceError(h.log, w, err, "delete rating")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
