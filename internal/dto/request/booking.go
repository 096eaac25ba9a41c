package request

type CreateResourceBookingRequest struct {
	ResourceID string `json:"resource_id" validate:"required,uuid4"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime  string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime    string `json:"end_time" validate:"required,datetime=15:04"`
	Purpose    string `json:"purpose" validate:"required,max=500"`
	Notes      string `json:"notes" validate:"max=1000"`
}

type RegisterForEventRequest struct {
	EventID string `json:"event_id" validate:"required,uuid4"`
	Notes   string `json:"notes" validate:"max=1000"`
}

type UpdateBookingRequest struct {
	Date      *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime *string `json:"start_time,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime   *string `json:"end_time,omitempty" validate:"omitempty,datetime=15:04"`
	Purpose   *string `json:"purpose,omitempty" validate:"omitempty,max=500"`
	Notes     *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}
