package models

// Waypoint is a named point of interest on the floor plan.
type Waypoint struct {
	ID   string  `json:"id"`
	Name *string `json:"name"`
	PosX float64 `json:"pos_x"`
	PosY float64 `json:"pos_y"`
}

// TableName returns the name of the database table
// associated with the Waypoint model.
func (w Waypoint) TableName() string {
	return "waypoints"
}
