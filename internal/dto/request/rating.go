package request

type CreateRatingRequest struct {
	RatingType string  `json:"rating_type" validate:"required,oneof=event resource"`
	EventID    *string `json:"event_id,omitempty" validate:"omitempty,uuid4"`
	ResourceID *string `json:"resource_id,omitempty" validate:"omitempty,uuid4"`
	Rating     int     `json:"rating" validate:"required,min=1,max=5"`
	Review     string  `json:"review" validate:"max=2000"`
}

type UpdateRatingRequest struct {
	Rating *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Review *string `json:"review,omitempty" validate:"omitempty,max=2000"`
}
