package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"eventhub/internal/data/repository"
	"eventhub/internal/dto/request"
	"eventhub/internal/usecase"
	"eventhub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ResourceHandler struct {
	service usecase.ResourceService
	log     *zap.Logger
}

func NewResourceHandler(service usecase.ResourceService, log *zap.Logger) *ResourceHandler {
	return &ResourceHandler{
		service: service,
		log:     log.With(zap.String("handler", "resource")),
	}
}

// CreateResource handles POST /api/resources (admin)
func (h *ResourceHandler) CreateResource(w http.ResponseWriter, r *http.Request) {
	var req request.CreateResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resource, err := h.service.CreateResource(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create resource")
		return
	}

	utils.ResponseCreated(w, "success", resource)
}

// GetResources handles GET /api/resources (public)
func (h *ResourceHandler) GetResources(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filters := repository.ResourceFilters{
		Type: query.Get("type"),
	}
	if raw := query.Get("available"); raw != "" {
		if available, err := strconv.ParseBool(raw); err == nil {
			filters.Available = &available
		}
	}

	resources, err := h.service.GetResources(r.Context(), filters, query.Get("sort"))
	if err != nil {
		handleServiceError(h.log, w, err, "get resources")
		return
	}

	utils.ResponseSuccess(w, "success", resources)
}

// GetResource handles GET /api/resources/{id} (public)
func (h *ResourceHandler) GetResource(w http.ResponseWriter, r *http.Request) {
	resourceID := chi.URLParam(r, "id")
	if resourceID == "" {
		utils.ResponseBadRequest(w, "Resource ID is required", nil)
		return
	}

	resource, err := h.service.GetResourceByID(r.Context(), resourceID)
	if err != nil {
		handleServiceError(h.log, w, err, "get resource")
		return
	}

	utils.ResponseSuccess(w, "success", resource)
}

// UpdateResource handles PUT /api/resources/{id} (admin)
func (h *ResourceHandler) UpdateResource(w http.ResponseWriter, r *http.Request) {
	resourceID := chi.URLParam(r, "id")
	if resourceID == "" {
		utils.ResponseBadRequest(w, "Resource ID is required", nil)
		return
	}

	var req request.UpdateResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resource, err := h.service.UpdateResource(r.Context(), resourceID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update resource")
		return
	}

	utils.ResponseSuccess(w, "success", resource)
}

// DeleteResource handles DELETE /api/resources/{id} (admin)
func (h *ResourceHandler) DeleteResource(w http.ResponseWriter, r *http.Request) {
	resourceID := chi.URLParam(r, "id")
	if resourceID == "" {
		utils.ResponseBadRequest(w, "Resource ID is required", nil)
		return
	}

	if err := h.service.DeleteResource(r.Context(), resourceID); err != nil {
		handleServiceError(h.log, w, err, "delete resource")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
