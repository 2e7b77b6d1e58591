package entities

import "time"

// Participation links one user to one event, at most once. The composite
// primary key is the uniqueness backstop for the lock-then-check-then-insert
// registration sequence.
type Participation struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false"`
	EventID   uint      `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	User  User  `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Event Event `gorm:"foreignKey:EventID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName overrides the default table name.
func (Participation) TableName() string {
	return "participations"
}
