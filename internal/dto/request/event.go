package request

type CreateEventRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Category    string `json:"category" validate:"required,oneof=workshop seminar conference training meeting social other"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime   string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime     string `json:"end_time" validate:"required,datetime=15:04"`
	Location    string `json:"location" validate:"required,max=200"`
	Capacity    int    `json:"capacity" validate:"required,min=1"`

	IsRecurring       bool     `json:"is_recurring"`
	RecurrencePattern *string  `json:"recurrence_pattern,omitempty" validate:"omitempty,oneof=daily weekly biweekly monthly"`
	RecurrenceEndDate *string  `json:"recurrence_end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ResourceIDs       []string `json:"resource_ids,omitempty" validate:"omitempty,dive,uuid4"`
}

type UpdateEventRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,oneof=workshop seminar conference training meeting social other"`
	Date        *string  `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime   *string  `json:"start_time,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime     *string  `json:"end_time,omitempty" validate:"omitempty,datetime=15:04"`
	Location    *string  `json:"location,omitempty" validate:"omitempty,max=200"`
	Capacity    *int     `json:"capacity,omitempty" validate:"omitempty,min=1"`
	Status      *string  `json:"status,omitempty" validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
	ResourceIDs []string `json:"resource_ids,omitempty" validate:"omitempty,dive,uuid4"`
}

type CheckConflictRequest struct {
	Date           string   `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime      string   `json:"start_time" validate:"required,datetime=15:04"`
	EndTime        string   `json:"end_time" validate:"required,datetime=15:04"`
	ResourceIDs    []string `json:"resource_ids" validate:"required,min=1,dive,uuid4"`
	ExcludeEventID *string  `json:"exclude_event_id,omitempty" validate:"omitempty,uuid4"`
}
