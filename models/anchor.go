package models

// Anchor is a fixed radio beacon with a known position and mounting height.
type Anchor struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Height  float64 `json:"height"`
	PosX    float64 `json:"pos_x"`
	PosY    float64 `json:"pos_y"`
}

// TableName returns the name of the database table
// associated with the Anchor model.
func (a Anchor) TableName() string {
	return "anchors"
}
