package response

import (
	"time"

	"eventhub/internal/data/entity"
)

type ResourceResponse struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Type      entity.ResourceType `json:"type"`
	Capacity  int                 `json:"capacity"`
	Location  string              `json:"location,omitempty"`
	Features  []string            `json:"features,omitempty"`
	Available bool                `json:"available"`
	CreatedAt time.Time           `json:"created_at"`
}

func ResourceToResponse(resource *entity.Resource) ResourceResponse {
	return ResourceResponse{
		ID:        resource.ID.String(),
		Name:      resource.Name,
		Type:      resource.Type,
		Capacity:  resource.Capacity,
		Location:  resource.Location,
		Features:  resource.Features,
		Available: resource.Available,
		CreatedAt: resource.CreatedAt,
	}
}

func ResourcesToResponse(resources []*entity.Resource) []ResourceResponse {
	out := make([]ResourceResponse, 0, len(resources))
	for _, resource := range resources {
		out = append(out, ResourceToResponse(resource))
	}
	return out
}
