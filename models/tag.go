package models

import "time"

// Tag is a mobile positioning tag carried by a person or vehicle.
// Its position is reported by the positioning hardware.
type Tag struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`

	// PosX and PosY are nil until the hardware reports the first position.
	PosX *float64 `json:"pos_x"`
	PosY *float64 `json:"pos_y"`

	// LastContact is the time of the last position report, nil if none.
	LastContact *time.Time `json:"last_contact"`
}

// TableName returns the name of the database table
// associated with the Tag model.
func (t Tag) TableName() string {
	return "tags"
}
