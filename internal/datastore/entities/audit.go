package entities

import "time"

// SpeciesAudit records the removal of a bird species. The entry is written
// in the same transaction as the delete, replacing what a database-side
// trigger would do.
type SpeciesAudit struct {
	ID         uint      `gorm:"primaryKey"`
	EntryID    string    `gorm:"uniqueIndex:idx_species_audits_entry;not null"` // uuid correlation id
	SpeciesID  uint      `gorm:"not null;index"`
	CommonName string    `gorm:"not null"`
	Action     string    `gorm:"not null"`
	RecordedAt time.Time `gorm:"autoCreateTime"`
}

// TableName overrides the default table name.
func (SpeciesAudit) TableName() string {
	return "species_audits"
}
