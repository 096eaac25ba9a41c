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

type RatingService interface {
	CreateRating(ctx context.Context, userID string, req *request.CreateRatingRequest) (*response.RatingResponse, error)
	GetRatings(ctx context.Context, filters repository.RatingFilters, sort string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.RatingResponse], error)
	UpdateRating(ctx context.Context, userID string, isAdmin bool, ratingID string, req *request.UpdateRatingRequest) (*response.RatingResponse, error)
	DeleteRating(ctx context.Context, userID string, isAdmin bool, ratingID string) error
}

type ratingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRatingService(repo *repository.Repository, log *zap.Logger) RatingService {
	return &ratingService{
		repo: repo,
		log:  log.With(zap.String("service", "rating")),
	}
}

func (s *ratingService) CreateRating(ctx context.Context, userID string, req *request.CreateRatingRequest) (*response.RatingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create rating validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	creatorID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	now := time.Now()
	rating := &entity.Rating{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RatingType: entity.RatingType(req.RatingType),
		Rating:     req.Rating,
		Review:     req.Review,
		CreatedBy:  creatorID,
	}

	switch rating.RatingType {
	case entity.RatingTypeEvent:
		if req.EventID == nil {
			return nil, fmt.Errorf("event_id is required for event ratings")
		}
		eventID, err := uuid.Parse(*req.EventID)
		if err != nil {
			return nil, fmt.Errorf("invalid event ID format %s: %w", *req.EventID, err)
		}
		event, err := s.repo.Event.FindByID(ctx, eventID)
		if err != nil {
			return nil, fmt.Errorf("find event: %w", err)
		}
		if event == nil {
			return nil, entity.ErrEventNotFound
		}
		rating.EventID = &eventID

	case entity.RatingTypeResource:
		if req.ResourceID == nil {
			return nil, fmt.Errorf("resource_id is required for resource ratings")
		}
		resourceID, err := uuid.Parse(*req.ResourceID)
		if err != nil {
			return nil, fmt.Errorf("invalid resource ID format %s: %w", *req.ResourceID, err)
		}
		resource, err := s.repo.Resource.FindByID(ctx, resourceID)
		if err != nil {
			return nil, fmt.Errorf("find resource: %w", err)
		}
		if resource == nil {
			return nil, entity.ErrResourceNotFound
		}
		rating.ResourceID = &resourceID
	}

	if err := s.repo.Rating.Create(ctx, rating); err != nil {
		s.log.Error("Failed to create rating", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("create rating: %w", err)
	}

	s.log.Info("Rating created",
		zap.String("rating_id", rating.ID.String()),
		zap.String("rating_type", string(rating.RatingType)),
		zap.Int("rating", rating.Rating),
	)

	resp := response.RatingToResponse(rating)
	return &resp, nil
}

func (s *ratingService) GetRatings(ctx context.Context, filters repository.RatingFilters, sort string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.RatingResponse], error) {
	ratings, err := s.repo.Rating.FindAll(ctx, filters, sort)
	if err != nil {
		s.log.Error("Failed to list ratings", zap.Error(err))
		return nil, fmt.Errorf("list ratings: %w", err)
	}

	total := len(ratings)
	ratings = pageSlice(ratings, page.Offset(), page.Limit())

	resp := response.NewPaginatedResponse(response.RatingsToResponse(ratings), page.Page, page.PerPage, total)
	return &resp, nil
}

func (s *ratingService) UpdateRating(ctx context.Context, userID string, isAdmin bool, ratingID string, req *request.UpdateRatingRequest) (*response.RatingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update rating validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	rating, err := s.loadOwnedRating(ctx, userID, isAdmin, ratingID)
	if err != nil {
		return nil, err
	}

	if req.Rating != nil {
		rating.Rating = *req.Rating
	}
	if req.Review != nil {
		rating.Review = *req.Review
	}
	rating.UpdatedAt = time.Now()

	if err := s.repo.Rating.Update(ctx, rating); err != nil {
		s.log.Error("Failed to update rating", zap.Error(err), zap.String("rating_id", ratingID))
		return nil, fmt.Errorf("update rating: %w", err)
	}

	resp := response.RatingToResponse(rating)
	return &resp, nil
}

func (s *ratingService) DeleteRating(ctx context.Context, userID string, isAdmin bool, ratingID string) error {
	rating, err := s.loadOwnedRating(ctx, userID, isAdmin, ratingID)
	if err != nil {
		return err
	}

	if err := s.repo.Rating.Delete(ctx, rating.ID); err != nil {
		return fmt.Errorf("delete rating: %w", err)
	}

	s.log.Info("Rating deleted", zap.String("rating_id", ratingID))
	return nil
}

func (s *ratingService) loadOwnedRating(ctx context.Context, userID string, isAdmin bool, ratingID string) (*entity.Rating, error) {
	id, err := uuid.Parse(ratingID)
	if err != nil {
		return nil, fmt.Errorf("invalid rating ID format %s: %w", ratingID, err)
	}

	rating, err := s.repo.Rating.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find rating: %w", err)
	}
	if rating == nil {
		return nil, entity.ErrRatingNotFound
	}

	if !isAdmin && rating.CreatedBy.String() != userID {
		return nil, entity.ErrAccessDenied
	}

	return rating, nil
}
