package entity

type ResourceType string

const (
	ResourceRoom       ResourceType = "room"
	ResourceEquipment  ResourceType = "equipment"
	ResourceVehicle    ResourceType = "vehicle"
	ResourceFacility   ResourceType = "facility"
	ResourceTechnology ResourceType = "technology"
	ResourceOther      ResourceType = "other"
)

// Resource is a bookable asset. Available is a manual out-of-service
// toggle, independent of time-based conflicts; an unavailable resource
// rejects new bookings but keeps its existing commitments.
type Resource struct {
	Base
	Name      string       `db:"name"`
	Type      ResourceType `db:"type"`
	Capacity  int          `db:"capacity"`
	Location  string       `db:"location"`
	Features  []string     `db:"features"`
	Available bool         `db:"available"`
}
