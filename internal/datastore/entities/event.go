package entities

import "time"

// Event represents a scheduled birdwatching event at a location.
// The date CHECK is enforced by the store so an inverted range can never
// be persisted regardless of the caller.
type Event struct {
	ID         uint      `gorm:"primaryKey"`
	Name       string    `gorm:"uniqueIndex:idx_events_name_start;not null"`
	LocationID uint      `gorm:"not null;index"`
	StartDate  time.Time `gorm:"uniqueIndex:idx_events_name_start;not null"`
	EndDate    time.Time `gorm:"not null;check:chk_events_dates,end_date >= start_date"`

	Location Location `gorm:"foreignKey:LocationID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName overrides the default table name.
func (Event) TableName() string {
	return "events"
}
