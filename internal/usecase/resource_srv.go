package usecase

import (
	"context"
	"fmt"
	"time"

	"eventhub/internal/data/entity"
	"eventhub/internal/data/repository"
	"eventhub/internal/dto/request"
	"eventhub/internal/dto/response"
	"eventhub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ResourceService interface {
	CreateResource(ctx context.Context, req *request.CreateResourceRequest) (*response.ResourceResponse, error)
	GetResources(ctx context.Context, filters repository.ResourceFilters, sort string) ([]response.ResourceResponse, error)
	GetResourceByID(ctx context.Context, resourceID string) (*response.ResourceResponse, error)
	UpdateResource(ctx context.Context, resourceID string, req *request.UpdateResourceRequest) (*response.ResourceResponse, error)
	DeleteResource(ctx context.Context, resourceID string) error
}

type resourceService struct {
	resources repository.ResourceRepository
	log       *zap.Logger
}

func NewResourceService(resources repository.ResourceRepository, log *zap.Logger) ResourceService {
	return &resourceService{
		resources: resources,
		log:       log.With(zap.String("service", "resource")),
	}
}

func (s *resourceService) CreateResource(ctx context.Context, req *request.CreateResourceRequest) (*response.ResourceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create resource validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	resource := &entity.Resource{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:      req.Name,
		Type:      entity.ResourceType(req.Type),
		Capacity:  req.Capacity,
		Location:  req.Location,
		Features:  req.Features,
		Available: true,
	}

	if err := s.resources.Create(ctx, resource); err != nil {
		s.log.Error("Failed to create resource", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create resource: %w", err)
	}

	s.log.Info("Resource created",
		zap.String("resource_id", resource.ID.String()),
		zap.String("name", resource.Name),
		zap.String("type", string(resource.Type)),
	)

	resp := response.ResourceToResponse(resource)
	return &resp, nil
}

func (s *resourceService) GetResources(ctx context.Context, filters repository.ResourceFilters, sort string) ([]response.ResourceResponse, error) {
	resources, err := s.resources.FindAll(ctx, filters, sort)
	if err != nil {
		s.log.Error("Failed to list resources", zap.Error(err))
		return nil, fmt.Errorf("list resources: %w", err)
	}

	return response.ResourcesToResponse(resources), nil
}

func (s *resourceService) GetResourceByID(ctx context.Context, resourceID string) (*response.ResourceResponse, error) {
	id, err := uuid.Parse(resourceID)
	if err != nil {
		return nil, fmt.Errorf("invalid resource ID format %s: %w", resourceID, err)
	}

	resource, err := s.resources.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find resource: %w", err)
	}
	if resource == nil {
		return nil, entity.ErrResourceNotFound
	}

	resp := response.ResourceToResponse(resource)
	return &resp, nil
}

func (s *resourceService) UpdateResource(ctx context.Context, resourceID string, req *request.UpdateResourceRequest) (*response.ResourceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update resource validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(resourceID)
	if err != nil {
		return nil, fmt.Errorf("invalid resource ID format %s: %w", resourceID, err)
	}

	resource, err := s.resources.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find resource: %w", err)
	}
	if resource == nil {
		return nil, entity.ErrResourceNotFound
	}

	if req.Name != nil {
		resource.Name = *req.Name
	}
	if req.Type != nil {
		resource.Type = entity.ResourceType(*req.Type)
	}
	if req.Capacity != nil {
		resource.Capacity = *req.Capacity
	}
	if req.Location != nil {
		resource.Location = *req.Location
	}
	if req.Features != nil {
		resource.Features = req.Features
	}
	if req.Available != nil {
		// Toggling off blocks new bookings only; existing ones stand.
		resource.Available = *req.Available
	}
	resource.UpdatedAt = time.Now()

	if err := s.resources.Update(ctx, resource); err != nil {
		s.log.Error("Failed to update resource", zap.Error(err), zap.String("resource_id", resourceID))
		return nil, fmt.Errorf("update resource: %w", err)
	}

	s.log.Info("Resource updated", zap.String("resource_id", resourceID))

	resp := response.ResourceToResponse(resource)
	return &resp, nil
}

func (s *resourceService) DeleteResource(ctx context.Context, resourceID string) error {
	id, err := uuid.Parse(resourceID)
	if err != nil {
		return fmt.Errorf("invalid resource ID format %s: %w", resourceID, err)
	}

	if err := s.resources.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete resource: %w", err)
	}

	s.log.Info("Resource deleted", zap.String("resource_id", resourceID))
	return nil
}
