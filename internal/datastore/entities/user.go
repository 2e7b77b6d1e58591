// Package entities defines the persistent data model for the birdwatching
// service. All structs map to relational tables via GORM tags.
package entities

import "time"

// User represents a registered birdwatcher.
type User struct {
	ID               uint      `gorm:"primaryKey"`
	FullName         string    `gorm:"not null"`
	Email            string    `gorm:"uniqueIndex:idx_users_email;not null"`
	RegistrationDate time.Time `gorm:"autoCreateTime"`
}

// TableName overrides the default table name.
func (User) TableName() string {
	return "users"
}
