package entities

import "time"

// Sighting is a timestamped record of one user observing one bird species
// at one event. Sightings are immutable once logged; the natural key over
// (user, event, bird, timestamp) prevents duplicate entries.
type Sighting struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"not null;index;uniqueIndex:idx_sightings_natural"`
	EventID      uint      `gorm:"not null;index;uniqueIndex:idx_sightings_natural"`
	BirdID       uint      `gorm:"not null;index;uniqueIndex:idx_sightings_natural"`
	SightedAt    time.Time `gorm:"not null;uniqueIndex:idx_sightings_natural"`
	LocationNote *string

	User  User        `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Event Event       `gorm:"foreignKey:EventID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Bird  BirdSpecies `gorm:"foreignKey:BirdID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName overrides the default table name.
func (Sighting) TableName() string {
	return "sightings"
}
