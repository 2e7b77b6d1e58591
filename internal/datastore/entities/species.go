package entities

// BirdSpecies represents a species that can be sighted. Species are managed
// externally; the service only reads them, except for the audited delete.
type BirdSpecies struct {
	ID             uint    `gorm:"primaryKey"`
	CommonName     string  `gorm:"uniqueIndex:idx_bird_species_common_name;not null"`
	ScientificName *string
}

// TableName overrides the default table name.
func (BirdSpecies) TableName() string {
	return "bird_species"
}
