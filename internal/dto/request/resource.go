package request

type CreateResourceRequest struct {
	Name     string   `json:"name" validate:"required,min=2,max=200"`
	Type     string   `json:"type" validate:"required,oneof=room equipment vehicle facility technology other"`
	Capacity int      `json:"capacity" validate:"min=0"`
	Location string   `json:"location" validate:"max=200"`
	Features []string `json:"features,omitempty" validate:"omitempty,dive,max=100"`
}

type UpdateResourceRequest struct {
	Name      *string  `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Type      *string  `json:"type,omitempty" validate:"omitempty,oneof=room equipment vehicle facility technology other"`
	Capacity  *int     `json:"capacity,omitempty" validate:"omitempty,min=0"`
	Location  *string  `json:"location,omitempty" validate:"omitempty,max=200"`
	Features  []string `json:"features,omitempty" validate:"omitempty,dive,max=100"`
	Available *bool    `json:"available,omitempty"`
}
