package repository

// Table name constants. Keep in sync with the entities' TableName methods.
const (
	tableUsers          = "users"
	tableLocations      = "locations"
	tableEvents         = "events"
	tableParticipations = "participations"
	tableBirdSpecies    = "bird_species"
	tableSightings      = "sightings"
	tableWeatherRecords = "weather_records"
	tableSpeciesAudits  = "species_audits"
)
