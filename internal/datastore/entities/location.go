package entities

// Location represents a birdwatching site. Locations are seed data; the
// service references them but never deletes them.
type Location struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"uniqueIndex:idx_locations_name_region;not null"`
	Region    string  `gorm:"uniqueIndex:idx_locations_name_region;not null"`
	Latitude  float64
	Longitude float64
}

// TableName overrides the default table name.
func (Location) TableName() string {
	return "locations"
}
