package response

import (
	"time"

	"eventhub/internal/data/entity"
)

type RatingResponse struct {
	ID         string            `json:"id"`
	RatingType entity.RatingType `json:"rating_type"`
	EventID    *string           `json:"event_id,omitempty"`
	ResourceID *string           `json:"resource_id,omitempty"`
	Rating     int               `json:"rating"`
	Review     string            `json:"review,omitempty"`
	CreatedBy  string            `json:"created_by"`
	CreatedAt  time.Time         `json:"created_at"`
}

func RatingToResponse(rating *entity.Rating) RatingResponse {
	resp := RatingResponse{
		ID:         rating.ID.String(),
		RatingType: rating.RatingType,
		Rating:     rating.Rating,
		Review:     rating.Review,
		CreatedBy:  rating.CreatedBy.String(),
		CreatedAt:  rating.CreatedAt,
	}

	if rating.EventID != nil {
		id := rating.EventID.String()
		resp.EventID = &id
	}
	if rating.ResourceID != nil {
		id := rating.ResourceID.String()
		resp.ResourceID = &id
	}

	return resp
}

func RatingsToResponse(ratings []*entity.Rating) []RatingResponse {
	out := make([]RatingResponse, 0, len(ratings))
	for _, rating := range ratings {
		out = append(out, RatingToResponse(rating))
	}
	return out
}
